// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

// Package sample provides uniform access to PCM samples across the six
// supported numeric representations. Every reader widens to float64 so that
// analysis results are comparable regardless of how the audio was encoded.
package sample

// Type identifies the numeric representation of a PCM sample.
type Type int

// Supported sample representations.
const (
	NotSet Type = iota
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
)

// String returns a short name for the sample type.
func (t Type) String() string {
	switch t {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unset"
	}
}

// Valid reports whether t is one of the six supported representations.
func (t Type) Valid() bool {
	return t >= Int8 && t <= Float64
}

// Size returns the width of one sample in bytes, or 0 for an unset type.
func (t Type) Size() int {
	switch t {
	case Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		return 0
	}
}

// Normalizer returns the divisor that maps samples of this type onto a scale
// comparable to floating-point audio: half the span of the unsigned
// representation for the integer types, 1 for the floating types.
func (t Type) Normalizer() float64 {
	switch t {
	case Int8:
		return 1 << 7
	case Int16:
		return 1 << 15
	case Int32:
		return 1 << 31
	case Int64:
		return 1 << 63
	default:
		return 1
	}
}

// Inspect reports the sample type and length of a caller-supplied slice.
// ok is false when data is not one of the six supported slice types.
func Inspect(data any) (t Type, n int, ok bool) {
	switch s := data.(type) {
	case []int8:
		return Int8, len(s), true
	case []int16:
		return Int16, len(s), true
	case []int32:
		return Int32, len(s), true
	case []int64:
		return Int64, len(s), true
	case []float32:
		return Float32, len(s), true
	case []float64:
		return Float64, len(s), true
	default:
		return NotSet, 0, false
	}
}

// IsNil reports whether data is an untyped nil or a nil slice of a supported
// sample type.
func IsNil(data any) bool {
	switch s := data.(type) {
	case nil:
		return true
	case []int8:
		return s == nil
	case []int16:
		return s == nil
	case []int32:
		return s == nil
	case []int64:
		return s == nil
	case []float32:
		return s == nil
	case []float64:
		return s == nil
	default:
		return false
	}
}

// Clone returns a copy of a supported sample slice, or nil for anything else.
func Clone(data any) any {
	switch s := data.(type) {
	case []int8:
		return append([]int8(nil), s...)
	case []int16:
		return append([]int16(nil), s...)
	case []int32:
		return append([]int32(nil), s...)
	case []int64:
		return append([]int64(nil), s...)
	case []float32:
		return append([]float32(nil), s...)
	case []float64:
		return append([]float64(nil), s...)
	default:
		return nil
	}
}
