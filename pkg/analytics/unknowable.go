package analytics

import "encoding/json"

// Unknowable is a value that may not be derivable from the data at hand.
// Unknown values serialize as null.
type Unknowable[T any] struct {
	value T
	known bool
}

func Known[T any](v T) Unknowable[T] {
	return Unknowable[T]{value: v, known: true}
}

func Unknown[T any]() Unknowable[T] {
	return Unknowable[T]{}
}

func (u Unknowable[T]) Get() (T, bool) {
	return u.value, u.known
}

func (u Unknowable[T]) IsKnown() bool {
	return u.known
}

func (u Unknowable[T]) MarshalJSON() ([]byte, error) {
	if !u.known {
		return []byte("null"), nil
	}
	return json.Marshal(u.value)
}

func (u *Unknowable[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = Unknowable[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*u = Known(v)
	return nil
}
