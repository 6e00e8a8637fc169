// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package fada

import "github.com/ief015/fada-go/internal/sample"

// SetWindowFrames sets the analysis window size in frames. The window scratch
// is reallocated in the bound sample representation and marked stale; it is
// refilled lazily on the next read. Setting the current size is a no-op.
func (m *Manager) SetWindowFrames(frames int) error {
	if m == nil {
		return ErrInvalidManager
	}
	if frames <= 0 {
		return ErrInvalidSize
	}
	if !m.ready {
		return ErrManagerNotReady
	}

	if m.window.buf != nil &&
		m.window.buf.Type() == m.sampleType &&
		m.window.buf.Len() == frames*m.channels {
		return nil
	}

	buf := sample.New(m.sampleType, frames*m.channels)
	if buf == nil {
		return ErrInvalidType
	}

	m.window.buf = buf
	m.window.filled = false
	return nil
}

// fillWindow regenerates the window scratch from the chunk list at the
// current cursor. Chunks are copied in order until the window is full; if the
// audio runs out first, the remainder is zero-filled. The fill happens at
// most once between cursor moves.
func (m *Manager) fillWindow() {
	if m.window.filled {
		return
	}

	buf := m.window.buf
	size := buf.Len()
	c := m.current
	o := m.currentSample

	for i := 0; i < size; {
		if c == nil {
			buf.Zero(i, size)
			break
		}
		n := min(c.count-o, size-i)
		buf.CopyFrom(c.samples, i, o, n)
		i += n
		c = c.next
		o = 0
	}

	m.window.filled = true
	m.window.fills++
}
