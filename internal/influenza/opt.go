package influenza

import "encoding/json"

// Opt is an explicit present/absent value. A field that could not be
// computed stays absent, which is distinct from holding a zero value.
type Opt[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Opt[T] { return Opt[T]{value: v, ok: true} }

// None is the absent value.
func None[T any]() Opt[T] { return Opt[T]{} }

// Get returns the held value and whether one is present.
func (o Opt[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether a value is present.
func (o Opt[T]) IsSome() bool { return o.ok }

// MarshalJSON renders an absent value as null.
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
