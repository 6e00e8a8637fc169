// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package fada

import "github.com/ief015/fada-go/internal/dsp"

// PreloadFFTBuffer allocates the manager's internal FFT buffer ahead of time.
// Computing an FFT does this automatically when no buffer is in use; calling
// it during initialization avoids the allocation on the first compute. The
// internal buffer is sized to the window's frame count, rounded down to a
// power of two. It does nothing while another buffer is still in use; detach
// with UseFFTBuffer(nil) first.
func (m *Manager) PreloadFFTBuffer() error {
	if m == nil {
		return ErrInvalidManager
	}
	if !m.ready {
		return ErrManagerNotReady
	}
	if m.fft.buffer == nil {
		b, err := NewFFTBuffer(m.WindowFrames())
		if err != nil {
			return err
		}
		m.fft.buffer = b
		m.fft.internal = true
	}
	return nil
}

// UseFFTBuffer assigns an external FFT buffer to the manager, destroying any
// internal buffer it previously owned. Passing nil detaches the current
// buffer without destroying an external one, after which PreloadFFTBuffer or
// the next compute recreates an internal buffer.
func (m *Manager) UseFFTBuffer(b *FFTBuffer) error {
	if m == nil {
		return ErrInvalidManager
	}
	if !m.ready {
		return ErrManagerNotReady
	}
	if m.fft.buffer != nil && m.fft.internal {
		m.fft.buffer.Close()
	}
	m.fft.buffer = b
	m.fft.internal = false
	return nil
}

// FFT returns the raw interleaved real/imaginary cells of the FFT buffer in
// use, or nil when no buffer is attached. The slice has length 2*FFTSize.
func (m *Manager) FFT() []float64 {
	if m == nil || m.fft.buffer == nil {
		return nil
	}
	return m.fft.buffer.Raw()
}

// FFTSize returns the size of the FFT buffer in use, or 0 when no buffer is
// attached.
func (m *Manager) FFTSize() int {
	if m == nil || m.fft.buffer == nil {
		return 0
	}
	return m.fft.buffer.size
}

// CalcFFT computes the spectrum of the current analysis window with channels
// mixed, writing into the FFT buffer in use (the internal one is created on
// demand). Samples are normalized by Normalizer before the transform. When
// the buffer is larger than the window, the missing samples contribute zero.
func (m *Manager) CalcFFT() error {
	return m.calcFFT(-1)
}

// CalcFFTChannel computes the spectrum of a single zero-based channel of the
// current analysis window.
func (m *Manager) CalcFFTChannel(channel int) error {
	if m != nil && m.ready && (channel < 0 || channel >= m.channels) {
		return ErrInvalidChannel
	}
	return m.calcFFT(channel)
}

// calcFFT prepares the complex input cells and runs the transform. A channel
// of -1 mixes all channels.
func (m *Manager) calcFFT(channel int) error {
	if m == nil {
		return ErrInvalidManager
	}
	if err := m.PreloadFFTBuffer(); err != nil {
		return err
	}
	if m.window.buf == nil {
		return ErrWindowNotCreated
	}
	if m.current == nil {
		return nil
	}
	m.fillWindow()

	buf := m.window.buf
	ch := m.channels
	size := buf.Len()
	norm := m.Normalizer()

	n := m.fft.buffer.size
	fft := m.fft.buffer.data

	for i, j := 0, 0; i < n; i, j = i+1, j+ch {
		if channel < 0 {
			avg := 0.0
			for c := 0; c < ch; c++ {
				if j+c < size {
					avg += buf.At(j+c) / norm
				}
			}
			fft[2*i] = avg / float64(ch)
		} else if j+channel < size {
			fft[2*i] = buf.At(j+channel) / norm
		} else {
			fft[2*i] = 0
		}
		fft[2*i+1] = 0
	}

	dsp.Transform(fft, n)
	return nil
}

// FFTValue returns the spectrum magnitude at a bin position of the FFT buffer
// in use. The FFT must have been computed first; see CalcFFT.
func (m *Manager) FFTValue(pos int) (float64, error) {
	if m == nil {
		return 0, ErrInvalidManager
	}
	if !m.ready {
		return 0, ErrManagerNotReady
	}
	return m.fft.buffer.Value(pos)
}

// FFTValues fills out with every spectrum magnitude of the FFT buffer in use.
// out must hold at least FFTSize values.
func (m *Manager) FFTValues(out []float64) error {
	if m == nil {
		return ErrInvalidManager
	}
	if !m.ready {
		return ErrManagerNotReady
	}
	return m.fft.buffer.Values(out)
}

// FFTValuesRange fills out with length magnitudes starting at offset. A
// length of 0 reads everything from offset to the end of the buffer.
func (m *Manager) FFTValuesRange(out []float64, offset, length int) error {
	if m == nil {
		return ErrInvalidManager
	}
	if !m.ready {
		return ErrManagerNotReady
	}
	return m.fft.buffer.ValuesRange(out, offset, length)
}

// FFTValueAtFrequency returns the spectrum magnitude of the bin containing a
// frequency in Hertz, bin freq*FFTSize/SampleRate rounded down. The frequency
// must be below half the sample rate.
func (m *Manager) FFTValueAtFrequency(freq float64) (float64, error) {
	if m == nil {
		return 0, ErrInvalidManager
	}
	if !m.ready {
		return 0, ErrManagerNotReady
	}
	if freq < 0 || freq >= float64(m.sampleRate)/2 {
		return 0, ErrFrequencyOutOfBounds
	}
	if m.fft.buffer == nil {
		return 0, ErrInvalidFFTBuffer
	}
	pos := int(freq*float64(m.fft.buffer.size)) / m.sampleRate
	return m.fft.buffer.Value(pos)
}
