// Package wire encodes geom values in a compact binary form.
//
// Values are written as their fields in declaration order, each in
// little-endian byte order with no padding. That makes the layout a
// stable contract: a Rect is left, top, right, bottom; a Vector is dx,
// dy; a Circle is the center's x and y followed by the radius. Only
// values whose scalar type has a fixed size can be encoded, so, for
// example, geom.Rect[int32] works but geom.Rect[int] does not.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotFixedSize is returned when a value's scalar type does not
	// have a fixed size, such as int or uint.
	ErrNotFixedSize = errors.New("value does not have a fixed size")

	// ErrShortBuffer is returned when decoding from a buffer that is
	// smaller than the encoded value.
	ErrShortBuffer = errors.New("buffer too short")

	// ErrUnexportedField is returned for values with unexported fields,
	// which could be encoded but never decoded again.
	ErrUnexportedField = errors.New("value has unexported fields")
)

var order = binary.LittleEndian

// Size returns the number of bytes that v occupies when encoded, or -1
// if v can not be encoded.
func Size[V any](v V) int {
	return binary.Size(v)
}

// Append appends the encoding of v to buf and returns the extended
// buffer.
func Append[V any](buf []byte, v V) ([]byte, error) {
	if Size(v) < 0 {
		return buf, fmt.Errorf("append %T: %w", v, ErrNotFixedSize)
	}
	if !settable(reflect.TypeFor[V]()) {
		return buf, fmt.Errorf("append %T: %w", v, ErrUnexportedField)
	}
	return binary.Append(buf, order, v)
}

// Marshal returns the encoding of v.
func Marshal[V any](v V) ([]byte, error) {
	return Append(nil, v)
}

// Decode decodes a value of type V from the beginning of data. It
// returns the value and the number of bytes consumed.
func Decode[V any](data []byte) (v V, n int, err error) {
	size := Size(v)
	if size < 0 {
		return v, 0, fmt.Errorf("decode %T: %w", v, ErrNotFixedSize)
	}
	if !settable(reflect.TypeFor[V]()) {
		return v, 0, fmt.Errorf("decode %T: %w", v, ErrUnexportedField)
	}
	if len(data) < size {
		return v, 0, fmt.Errorf("decode %T: need %v bytes but have %v: %w", v, size, len(data), ErrShortBuffer)
	}

	n, err = binary.Decode(data, order, &v)
	if err != nil {
		return v, n, fmt.Errorf("decode %T: %w", v, err)
	}
	return v, n, nil
}

// Unmarshal decodes data into a value of type V. It is an error for
// data to contain anything after the value.
func Unmarshal[V any](data []byte) (V, error) {
	v, n, err := Decode[V](data)
	if err != nil {
		return v, err
	}
	if n != len(data) {
		return v, fmt.Errorf("unmarshal %T: %v trailing bytes", v, len(data)-n)
	}
	return v, nil
}

// settable reports whether binary.Decode can set every field of a
// value of type t. Blank fields are skipped by the decoder.
func settable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if f.Name == "_" {
				continue
			}
			if !f.IsExported() || !settable(f.Type) {
				return false
			}
		}
	case reflect.Array, reflect.Slice, reflect.Pointer:
		return settable(t.Elem())
	}
	return true
}
