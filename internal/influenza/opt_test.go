package influenza

import (
	"encoding/json"
	"testing"
)

func TestOpt_Get(t *testing.T) {
	if v, ok := Some(42).Get(); !ok || v != 42 {
		t.Errorf("Some(42).Get() = %v, %v, want 42, true", v, ok)
	}
	if _, ok := None[int]().Get(); ok {
		t.Error("None().Get() reported a present value")
	}
}

func TestOpt_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   interface{ MarshalJSON() ([]byte, error) }
		want string
	}{
		{"present float", Some(0.85), "0.85"},
		{"absent float", None[float64](), "null"},
		{"present string", Some("HA"), `"HA"`},
		{"present slice", Some([]bool{true, false}), "[true,false]"},
		{"absent slice", None[[]bool](), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}
