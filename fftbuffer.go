// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package fada

import (
	"math"

	"github.com/ief015/fada-go/internal/dsp"
)

// FFTBuffer stores one computed spectrum as N complex values in interleaved
// real/imaginary layout. N is always a power of two: a buffer requested at
// size S is created with the largest power of two not exceeding S. A buffer
// may be owned internally by a Manager or created externally with
// NewFFTBuffer and shared across computations.
type FFTBuffer struct {
	size int
	data []float64 // interleaved re/im, length 2*size
}

// NewFFTBuffer creates an external FFT buffer. If size is not a power of two,
// the largest power of two below it is used. Attach the buffer to a Manager
// with UseFFTBuffer and release it with Close.
func NewFFTBuffer(size int) (*FFTBuffer, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	n := dsp.FloorPow2(size)
	return &FFTBuffer{
		size: n,
		data: make([]float64, 2*n),
	}, nil
}

// Close releases the buffer's storage and sets its size to 0: Value then
// fails with ErrIndexOutOfBounds, and Values and ValuesRange have no bins to
// read.
// Closing a buffer still attached to a Manager is safe only after detaching
// it with UseFFTBuffer(nil).
func (b *FFTBuffer) Close() error {
	if b == nil {
		return ErrInvalidFFTBuffer
	}
	b.data = nil
	b.size = 0
	return nil
}

// Size returns the number of complex values the buffer holds.
func (b *FFTBuffer) Size() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Raw returns the interleaved real/imaginary cells of the last computed
// spectrum. The slice has length 2*Size and aliases the buffer's storage.
func (b *FFTBuffer) Raw() []float64 {
	if b == nil {
		return nil
	}
	return b.data
}

// magnitude returns the reported value of complex cell i: the L1 norm of the
// cell scaled by the buffer size. Downstream display code is calibrated
// against this exact form rather than the Euclidean magnitude.
func (b *FFTBuffer) magnitude(i int) float64 {
	return (math.Abs(b.data[2*i]) + math.Abs(b.data[2*i+1])) / float64(b.size)
}

// Value returns the spectrum magnitude at a bin position. The FFT must have
// been computed first; see Manager.CalcFFT.
func (b *FFTBuffer) Value(pos int) (float64, error) {
	if b == nil {
		return 0, ErrInvalidFFTBuffer
	}
	if pos < 0 || pos >= b.size {
		return 0, ErrIndexOutOfBounds
	}
	return b.magnitude(pos), nil
}

// Values fills out with every spectrum magnitude. out must hold at least
// Size values.
func (b *FFTBuffer) Values(out []float64) error {
	if b == nil {
		return ErrInvalidFFTBuffer
	}
	if out == nil || len(out) < b.size {
		return ErrInvalidParameter
	}
	for i := 0; i < b.size; i++ {
		out[i] = b.magnitude(i)
	}
	return nil
}

// ValuesRange fills out with length magnitudes starting at offset. A length
// of 0 reads everything from offset to the end of the buffer.
func (b *FFTBuffer) ValuesRange(out []float64, offset, length int) error {
	if b == nil {
		return ErrInvalidFFTBuffer
	}
	if offset < 0 || length < 0 {
		return ErrIndexOutOfBounds
	}
	if length == 0 {
		length = b.size - offset
		if length < 0 {
			return ErrIndexOutOfBounds
		}
	}
	if offset+length > b.size {
		return ErrIndexOutOfBounds
	}
	if out == nil || len(out) < length {
		return ErrInvalidParameter
	}
	for i := 0; i < length; i++ {
		out[i] = b.magnitude(i + offset)
	}
	return nil
}
