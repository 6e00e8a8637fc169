// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package fada

// CalcBeat measures the change between neighboring frames across the analysis
// window, channels mixed. Lots of spikes and high-frequency content produce a
// high beat value; silence and pure DC produce zero. Returns 0 before any
// samples have been pushed.
//
// The difference loop stops one frame before the window edge, since the final
// frame has no in-window successor; the divisor remains the full frame count.
func (m *Manager) CalcBeat() (float64, error) {
	ok, err := m.readyWindow()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	m.fillWindow()

	buf := m.window.buf
	ch := m.channels
	size := buf.Len()

	beat := 0.0
	for i := 0; i+2*ch <= size; i += ch {
		avg := 0.0
		for c := 0; c < ch; c++ {
			avg += buf.AbsDiff(i+c, i+c+ch)
		}
		beat += avg / float64(ch)
	}
	return beat / float64(size/ch), nil
}

// CalcBeatChannel is CalcBeat restricted to a single zero-based channel.
func (m *Manager) CalcBeatChannel(channel int) (float64, error) {
	ok, err := m.readyWindow()
	if err != nil {
		return 0, err
	}
	if channel < 0 || channel >= m.channels {
		return 0, ErrInvalidChannel
	}
	if !ok {
		return 0, nil
	}
	m.fillWindow()

	buf := m.window.buf
	ch := m.channels
	size := buf.Len()

	beat := 0.0
	for i := 0; i+2*ch <= size; i += ch {
		beat += buf.AbsDiff(i+channel, i+channel+ch)
	}
	return beat / float64(size/ch), nil
}
