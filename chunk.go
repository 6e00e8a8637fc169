// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package fada

import "github.com/ief015/fada-go/internal/sample"

// chunk is one caller-supplied run of interleaved samples. Chunks form a
// doubly-linked list so appending is O(1) and trimming can walk backward from
// the cursor. position is the absolute sample offset of the chunk within the
// manager, kept equal to the sum of all preceding chunks' counts.
type chunk struct {
	samples  any // slice of the manager's native sample type
	count    int
	position int
	prev     *chunk
	next     *chunk
}

// BindSamples binds audio information and an initial block of samples to the
// manager. The sample type is taken from data's dynamic type, which must be
// one of []int8, []int16, []int32, []int64, []float32 or []float64. Any
// previously bound chunks are discarded and the analysis window is reset to
// DefaultWindowFrames. With copyData false the manager references the
// caller's slice, which must stay unmodified until the chunk is trimmed or
// freed.
func (m *Manager) BindSamples(data any, copyData bool, sampleRate, channels int) error {
	if m == nil {
		return ErrInvalidManager
	}
	if sample.IsNil(data) {
		return ErrNoData
	}
	typ, count, ok := sample.Inspect(data)
	if !ok {
		return ErrInvalidType
	}
	if channels <= 0 {
		return ErrInvalidChannel
	}
	if count == 0 {
		return ErrInvalidSize
	}
	if count%channels != 0 {
		return ErrNotMultipleOfChannels
	}
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	m.sampleType = typ
	m.channels = channels
	m.sampleRate = sampleRate
	m.ready = true

	if err := m.SetWindowFrames(DefaultWindowFrames); err != nil {
		m.ready = false
		return err
	}

	m.FreeChunks()
	return m.PushSamples(data, copyData)
}

// BindStream binds audio information only; samples arrive later through
// PushSamples. The analysis window is reset to DefaultWindowFrames and any
// previously bound chunks are discarded.
func (m *Manager) BindStream(typ SampleType, sampleRate, channels int) error {
	if m == nil {
		return ErrInvalidManager
	}
	if !typ.Valid() {
		return ErrInvalidType
	}
	if channels <= 0 {
		return ErrInvalidChannel
	}
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	m.sampleType = typ
	m.channels = channels
	m.sampleRate = sampleRate
	m.ready = true

	if err := m.SetWindowFrames(DefaultWindowFrames); err != nil {
		m.ready = false
		return err
	}

	m.FreeChunks()
	return nil
}

// PushSamples appends a chunk of samples at the tail of the manager. The
// slice's element type must match the bound sample type and its length must
// be a positive multiple of the channel count. With copyData true the samples
// are copied and the caller's slice may be reused immediately; otherwise the
// chunk references the caller's memory.
func (m *Manager) PushSamples(data any, copyData bool) error {
	if m == nil {
		return ErrInvalidManager
	}
	if !m.ready {
		return ErrManagerNotReady
	}
	if sample.IsNil(data) {
		return ErrNoData
	}
	typ, count, ok := sample.Inspect(data)
	if !ok || typ != m.sampleType {
		return ErrInvalidType
	}
	if count == 0 {
		return ErrInvalidSize
	}
	if count%m.channels != 0 {
		return ErrNotMultipleOfChannels
	}

	if copyData {
		data = sample.Clone(data)
	}
	c := &chunk{samples: data, count: count}

	if m.first != nil {
		m.last.next = c
		c.prev = m.last
		c.position = m.last.position + m.last.count
		m.last = c
	} else {
		m.first = c
		m.last = c
		m.current = c
	}
	m.sampleCount += c.count
	return nil
}

// TrimChunks discards every chunk strictly before the cursor chunk, which
// becomes the first chunk. Surviving chunk positions are rebased so the new
// first chunk starts at 0; the window position reported by Position is
// unchanged.
func (m *Manager) TrimChunks() {
	if m == nil || m.current == nil {
		return
	}

	freed := 0
	for c := m.current.prev; c != nil; c = c.prev {
		freed += c.count
	}
	m.current.prev = nil

	for c := m.current; c != nil; c = c.next {
		c.position -= freed
	}

	m.sampleCount -= freed
	m.origin += freed
	m.first = m.current
}

// FreeChunks discards every chunk and resets the cursor and sample count to
// zero. The bound audio information and the window buffer are kept.
func (m *Manager) FreeChunks() {
	if m == nil {
		return
	}
	m.first = nil
	m.current = nil
	m.last = nil
	m.currentSample = 0
	m.sampleCount = 0
	m.origin = 0
	m.window.filled = false
}

// SetPosition moves the analysis window to an absolute frame position, on the
// same scale Position reports. Positions inside a prefix discarded by
// TrimChunks, or at or past the end of the bound samples, fail with
// ErrPositionOutOfBounds.
func (m *Manager) SetPosition(frame int) error {
	if m == nil {
		return ErrInvalidManager
	}
	if !m.ready {
		return ErrManagerNotReady
	}

	pos := frame*m.channels - m.origin
	if frame < 0 || pos < 0 || pos >= m.sampleCount {
		return ErrPositionOutOfBounds
	}

	for c := m.first; c != nil; c = c.next {
		if c.position+c.count > pos {
			m.currentSample = pos - c.position
			m.current = c
			break
		}
	}
	m.window.filled = false
	return nil
}

// Continue advances the analysis window. A non-negative offsetFrames advances
// by that many frames; a negative value advances by whole windows, so
// NextWindow moves one window ahead and NextWindow*2 moves two. The position
// clamps at end of audio. Continue reports whether the end of audio has not
// been reached.
func (m *Manager) Continue(offsetFrames int) bool {
	if m == nil || !m.ready || m.current == nil {
		return false
	}
	if m.EndOfAudio() {
		return false
	}

	m.window.filled = false

	if offsetFrames < 0 {
		m.currentSample += -offsetFrames * m.window.buf.Len()
	} else {
		m.currentSample += offsetFrames * m.channels
	}

	c := m.current
	for m.currentSample >= c.count {
		if c.next == nil {
			m.currentSample = c.count
			break
		}
		m.currentSample -= c.count
		c = c.next
	}
	m.current = c

	return !m.EndOfAudio()
}

// ContinueToLast positions the analysis window over the last full window of
// bound samples, so the window ends exactly at the final sample. It returns
// false only when the manager is not ready or holds no chunks.
func (m *Manager) ContinueToLast() bool {
	if m == nil || !m.ready || m.current == nil {
		return false
	}

	m.window.filled = false

	n := m.window.buf.Len()
	c := m.last
	for {
		n -= c.count
		if n <= 0 {
			break
		}
		if c.prev == nil {
			// Less audio than one window; clamp to the very start.
			m.current = c
			m.currentSample = 0
			return true
		}
		c = c.prev
	}
	m.current = c
	m.currentSample = -n
	return true
}

// EndOfAudio reports whether the analysis window position has reached or
// surpassed the end of the bound samples.
func (m *Manager) EndOfAudio() bool {
	if m == nil || m.current == nil {
		return true
	}
	return m.current.position+m.currentSample >= m.sampleCount
}
