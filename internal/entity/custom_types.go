package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is an optional value for partial updates. Set distinguishes a
// field present in the request from one that was omitted; Valid
// distinguishes a real value from an explicit null.
type Field[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func NewField[T any](v T) Field[T] {
	return Field[T]{Set: true, Valid: true, Value: v}
}

func NullField[T any]() Field[T] {
	return Field[T]{Set: true}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(b, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// StringList accepts either a JSON array of strings or a string holding
// a serialized JSON array, the form some legacy clients still send.
type StringList []string

func (s *StringList) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		var items []string
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return fmt.Errorf("speakers is not a valid JSON array: %w", err)
		}
		*s = items
		return nil
	}

	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*s = items
	return nil
}
