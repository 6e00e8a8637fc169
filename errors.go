// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package fada

import "errors"

// Every fallible Manager and FFTBuffer operation reports its failure through
// one of these sentinel errors, so callers can branch with errors.Is. OpenWAV
// and BindWAVFile also return file access and decode errors that are not
// among them.
var (
	// ErrInvalidManager is returned when a method is invoked on a nil Manager.
	ErrInvalidManager = errors.New("fada: invalid manager")

	// ErrInvalidParameter is returned when an output slice is nil or too short.
	ErrInvalidParameter = errors.New("fada: invalid parameter")

	// ErrInvalidType is returned when the sample type is unset, unrecognized,
	// or a pushed slice does not match the bound type.
	ErrInvalidType = errors.New("fada: invalid sample type")

	// ErrInvalidSize is returned when a size or count must be positive and is not.
	ErrInvalidSize = errors.New("fada: invalid size")

	// ErrInvalidSampleRate is returned when the sample rate is zero or negative.
	ErrInvalidSampleRate = errors.New("fada: invalid sample rate")

	// ErrInvalidChannel is returned for a zero channel count or a channel
	// index at or past the channel count.
	ErrInvalidChannel = errors.New("fada: invalid channel")

	// ErrInvalidFFTBuffer is returned when no FFT buffer is in use but one is required.
	ErrInvalidFFTBuffer = errors.New("fada: no FFT buffer in use")

	// ErrManagerNotReady is returned when audio information has not been bound yet.
	ErrManagerNotReady = errors.New("fada: manager not ready")

	// ErrNoData is returned when sample data is nil on bind or push.
	ErrNoData = errors.New("fada: no sample data")

	// ErrNotMultipleOfChannels is returned when a sample count does not divide
	// evenly across the bound channels.
	ErrNotMultipleOfChannels = errors.New("fada: sample count not a multiple of channels")

	// ErrOutOfMemory is declared for parity with the error taxonomy; Go
	// panics on allocation failure, so it is never returned.
	ErrOutOfMemory = errors.New("fada: not enough memory")

	// ErrIndexOutOfBounds is returned for a read index past the window or FFT buffer.
	ErrIndexOutOfBounds = errors.New("fada: index out of bounds")

	// ErrPositionOutOfBounds is returned for a frame position at or past the frame count.
	ErrPositionOutOfBounds = errors.New("fada: position out of bounds")

	// ErrFrequencyOutOfBounds is returned for a frequency at or above half the sample rate.
	ErrFrequencyOutOfBounds = errors.New("fada: frequency out of bounds")

	// ErrWindowNotCreated is returned when the analysis window buffer is absent.
	ErrWindowNotCreated = errors.New("fada: window buffer not created")
)
