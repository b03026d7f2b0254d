// SPDX-License-Identifier: MIT
// Package: cssb/codec
//
// codec.go — JSON round-trip wrappers for plain data records.
//
// Design:
//   • Thin by intent: the package adds typing and error context around a
//     general-purpose JSON codec, nothing more.
//   • Unmarshal rehydrates into a caller-chosen concrete type, so method
//     sets resolve naturally after the round trip (record.Dimensions
//     answers Area() again). Field mismatches are NOT validated: unknown
//     keys are dropped, missing keys zero — by contract.
//   • Key ordering in Marshal output follows the encoder's defaults; no
//     stability guarantee is offered or needed.

// Package codec provides Marshal and Unmarshal helpers that round-trip
// plain data values through their JSON text form.
package codec

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// json is the shared codec instance, configured for bit-compatibility
// with encoding/json so callers can rely on standard struct tags.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal encodes v as a JSON string. Key ordering is the encoder's
// default; callers must not depend on it.
// Errors from the encoder (unsupported types, broken Marshaler
// implementations) are wrapped with context.
// Complexity: O(size of v).
func Marshal(v any) (string, error) {
	out, err := json.MarshalToString(v)
	if err != nil {
		return "", fmt.Errorf("codec: marshal: %w", err)
	}

	return out, nil
}

// Unmarshal parses text into a freshly allocated *T. The concrete type
// parameter plays the role of the prototype: once decoded, method calls
// resolve against T's method set. Fields present in text but absent
// from T pass through uninterpreted; fields of T absent from text stay
// zero — no mismatch validation is performed.
// Malformed text yields a wrapped parse error and a nil value.
// Complexity: O(len(text)).
func Unmarshal[T any](text string) (*T, error) {
	v := new(T)
	if err := json.UnmarshalFromString(text, v); err != nil {
		return nil, fmt.Errorf("codec: unmarshal: %w", err)
	}

	return v, nil
}
