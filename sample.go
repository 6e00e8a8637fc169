// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package fada

import "github.com/ief015/fada-go/internal/sample"

// SampleType identifies the numeric representation of bound PCM samples.
type SampleType = sample.Type

// Sample representations accepted by BindSamples, BindStream and PushSamples.
const (
	SampleNotSet  = sample.NotSet
	SampleInt8    = sample.Int8
	SampleInt16   = sample.Int16
	SampleInt32   = sample.Int32
	SampleInt64   = sample.Int64
	SampleFloat32 = sample.Float32
	SampleFloat64 = sample.Float64
)

// readyWindow validates the common reader preconditions and reports whether
// any sample data exists. When it returns ok=false with a nil error the
// caller should produce zero results, matching a stream that has not received
// samples yet.
func (m *Manager) readyWindow() (ok bool, err error) {
	if m == nil {
		return false, ErrInvalidManager
	}
	if m.window.buf == nil {
		return false, ErrWindowNotCreated
	}
	if m.current == nil {
		return false, nil
	}
	return true, nil
}

// Sample returns the value of one channel's sample at a frame position inside
// the analysis window, widened to float64.
func (m *Manager) Sample(frame, channel int) (float64, error) {
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
	if frame < 0 || frame >= m.WindowFrames() {
		return 0, ErrIndexOutOfBounds
	}
	m.fillWindow()
	return m.window.buf.At(frame*m.channels + channel), nil
}

// Samples fills out with every sample of one channel across the analysis
// window. out must hold at least WindowFrames values.
func (m *Manager) Samples(channel int, out []float64) error {
	ok, err := m.readyWindow()
	if err != nil {
		return err
	}
	if channel < 0 || channel >= m.channels {
		return ErrInvalidChannel
	}
	frames := m.WindowFrames()
	if out == nil || len(out) < frames {
		return ErrInvalidParameter
	}
	if !ok {
		clear(out[:frames])
		return nil
	}
	m.fillWindow()
	buf := m.window.buf
	for i := 0; i < frames; i++ {
		out[i] = buf.At(i*m.channels + channel)
	}
	return nil
}

// Frame returns the channel-mixed sample at a frame position inside the
// analysis window: the mean of the frame's samples across all channels.
func (m *Manager) Frame(frame int) (float64, error) {
	ok, err := m.readyWindow()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	if frame < 0 || frame >= m.WindowFrames() {
		return 0, ErrIndexOutOfBounds
	}
	m.fillWindow()
	buf := m.window.buf
	res := 0.0
	for c := 0; c < m.channels; c++ {
		res += buf.At(frame*m.channels + c)
	}
	return res / float64(m.channels), nil
}

// Frames fills out with every channel-mixed sample across the analysis
// window. out must hold at least WindowFrames values.
func (m *Manager) Frames(out []float64) error {
	ok, err := m.readyWindow()
	if err != nil {
		return err
	}
	frames := m.WindowFrames()
	if out == nil || len(out) < frames {
		return ErrInvalidParameter
	}
	if !ok {
		clear(out[:frames])
		return nil
	}
	m.fillWindow()
	buf := m.window.buf
	for i := 0; i < frames; i++ {
		res := 0.0
		for c := 0; c < m.channels; c++ {
			res += buf.At(i*m.channels + c)
		}
		out[i] = res / float64(m.channels)
	}
	return nil
}
