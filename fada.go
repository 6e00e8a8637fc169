// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

// Package fada analyzes streams of PCM audio samples. A Manager consumes
// chunks of interleaved samples, slides an analysis window over them, and
// derives per-window beat and bass estimators along with an FFT magnitude
// spectrum. Samples may be 8/16/32/64-bit signed integers or 32/64-bit
// floats; every result is reported as float64. Samples, beat and bass keep the
// units of the bound representation, while FFT input is divided by Normalizer
// so spectra are on a scale comparable across representations.
//
// A Manager is not safe for concurrent use; serialize access externally.
// Distinct managers are independent.
package fada

import "github.com/ief015/fada-go/internal/sample"

// Library version.
const (
	VersionMajor = 0
	VersionMinor = 1
)

// DefaultWindowFrames is the analysis window size used until the caller sets
// one explicitly.
const DefaultWindowFrames = 1024

// NextWindow advances Continue by one whole window. Multiply to skip several
// windows at once: m.Continue(fada.NextWindow * 2) jumps two windows ahead.
const NextWindow = -1

// Manager holds bound audio information, the chunk backing store, the sliding
// analysis window, and the FFT buffer in use. Create one with NewManager and
// release it with Close.
type Manager struct {
	sampleType SampleType
	sampleRate int
	channels   int

	first   *chunk
	last    *chunk
	current *chunk

	currentSample int // sample offset of the cursor within the current chunk
	sampleCount   int // total samples across all chunks
	origin        int // samples discarded by TrimChunks, keeping Position absolute

	window struct {
		buf    sample.Buffer
		filled bool
		fills  int // fill counter, observable by tests
	}

	fft struct {
		buffer   *FFTBuffer
		internal bool
	}

	ready bool
}

// NewManager creates an empty audio manager. Bind audio information with
// BindSamples or BindStream before analyzing.
func NewManager() *Manager {
	return &Manager{}
}

// Close releases every chunk, the window buffer, and any internal FFT buffer.
// An FFT buffer supplied through UseFFTBuffer is left untouched. Close is
// idempotent.
func (m *Manager) Close() error {
	if m == nil {
		return ErrInvalidManager
	}
	m.FreeChunks()
	m.window.buf = nil
	m.window.filled = false
	if m.fft.buffer != nil && m.fft.internal {
		m.fft.buffer.Close()
	}
	m.fft.buffer = nil
	m.fft.internal = false
	m.ready = false
	return nil
}

// SampleType returns the sample representation bound to the manager.
func (m *Manager) SampleType() SampleType {
	return m.sampleType
}

// SampleRate returns the bound sample rate in Hertz.
func (m *Manager) SampleRate() int {
	return m.sampleRate
}

// Channels returns the bound channel count.
func (m *Manager) Channels() int {
	return m.channels
}

// SampleCount returns the total number of samples across all chunks, or 0 if
// the manager is not ready.
func (m *Manager) SampleCount() int {
	if !m.ready {
		return 0
	}
	return m.sampleCount
}

// FrameCount returns the total number of frames across all chunks, or 0 if
// the manager is not ready.
func (m *Manager) FrameCount() int {
	if !m.ready {
		return 0
	}
	return m.sampleCount / m.channels
}

// Position returns the analysis window position in frames from the beginning
// of the audio, including any prefix discarded by TrimChunks.
func (m *Manager) Position() int {
	if m.current == nil {
		return 0
	}
	return (m.origin + m.current.position + m.currentSample) / m.channels
}

// WindowSize returns the analysis window size in samples.
func (m *Manager) WindowSize() int {
	if m.window.buf == nil {
		return 0
	}
	return m.window.buf.Len()
}

// WindowFrames returns the analysis window size in frames.
func (m *Manager) WindowFrames() int {
	if m.window.buf == nil || m.channels == 0 {
		return 0
	}
	return m.window.buf.Len() / m.channels
}

// Normalizer returns the divisor applied to samples before the FFT to bring
// spectra onto a uniform scale across sample types: half the span of the
// unsigned representation for integer samples, 1 for floating-point samples.
func (m *Manager) Normalizer() float64 {
	if !m.ready {
		return 1
	}
	return m.sampleType.Normalizer()
}
