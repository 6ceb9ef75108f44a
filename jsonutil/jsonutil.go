// Package jsonutil is a thin serialization façade so the rest of the
// module does not commit to a particular JSON implementation.
package jsonutil

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal encodes v as JSON.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent encodes v as indented JSON.
func MarshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ToString encodes v as a JSON string.
func ToString(v any) (string, error) {
	return json.MarshalToString(v)
}

// FromString decodes a JSON string into a value of type T.
func FromString[T any](s string) (T, error) {
	var out T
	err := json.UnmarshalFromString(s, &out)
	return out, err
}
