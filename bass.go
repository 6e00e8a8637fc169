// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package fada

import "math"

// bassSubFrames is the sub-period of the bass estimator in frames. Signal
// components with wavelengths much longer than a sub-period survive the block
// average; anything faster cancels within it.
const bassSubFrames = 32

// CalcBass measures the amplitude of long-wavelength components across the
// analysis window, channels mixed: the window is cut into 32-frame blocks,
// each block's signed samples are averaged, and the absolute block averages
// are averaged in turn. The absolute value applies after the block sum, so
// the estimator responds to sustained low-frequency offsets rather than to
// overall energy. Returns 0 before any samples have been pushed.
func (m *Manager) CalcBass() (float64, error) {
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
	sub := bassSubFrames * ch

	bass := 0.0
	blocks := 0
	for i := 0; i < size; i += sub {
		subAvg := 0.0
		frames := 0
		for subi := i; subi < i+sub && subi < size; subi += ch {
			chanAvg := 0.0
			for c := 0; c < ch; c++ {
				chanAvg += buf.At(subi + c)
			}
			subAvg += chanAvg / float64(ch)
			frames++
		}
		bass += math.Abs(subAvg / float64(frames))
		blocks++
	}
	return bass / float64(blocks), nil
}

// CalcBassChannel is CalcBass restricted to a single zero-based channel.
func (m *Manager) CalcBassChannel(channel int) (float64, error) {
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
	sub := bassSubFrames * ch

	bass := 0.0
	blocks := 0
	for i := 0; i < size; i += sub {
		subAvg := 0.0
		frames := 0
		for subi := i; subi < i+sub && subi < size; subi += ch {
			subAvg += buf.At(subi + channel)
			frames++
		}
		bass += math.Abs(subAvg / float64(frames))
		blocks++
	}
	return bass / float64(blocks), nil
}
