package config

import "testing"

func TestNew_defaults(t *testing.T) {
	c := New()

	if c.Verbose {
		t.Error("Verbose should default to false")
	}
	if c.MinIdentity != 0.8 {
		t.Errorf("MinIdentity = %v, want 0.8", c.MinIdentity)
	}
	if c.MinLength != 500 {
		t.Errorf("MinLength = %d, want 500", c.MinLength)
	}
}
