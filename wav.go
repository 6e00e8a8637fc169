// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package fada

import (
	"fmt"
	"io"
	"os"

	"codeberg.org/go-mmap/mmap"
	"github.com/go-audio/wav"
)

// OpenWAV creates a manager bound to the contents of a PCM WAV file: the
// file's sample rate and channel count are bound and all of its samples are
// pushed as a single chunk. The file is memory-mapped for the duration of the
// decode and released before returning.
func OpenWAV(path string) (*Manager, error) {
	m := NewManager()
	if err := m.BindWAVFile(path); err != nil {
		return nil, err
	}
	return m, nil
}

// BindWAVFile binds the manager to the contents of a PCM WAV file. 8-bit
// audio is bound as int8, 16-bit as int16, and 24/32-bit as int32; the
// decoded samples are owned by the manager.
func (m *Manager) BindWAVFile(path string) error {
	if m == nil {
		return ErrInvalidManager
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("fada: failed to access %q: %w", path, err)
	}
	f, err := mmap.Open(path)
	if err != nil {
		return fmt.Errorf("fada: failed to map %q: %w", path, err)
	}
	defer f.Close()

	d := wav.NewDecoder(io.NewSectionReader(f, 0, info.Size()))
	if !d.IsValidFile() {
		return fmt.Errorf("fada: %q is not a valid WAV file", path)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("fada: failed to decode %q: %w", path, err)
	}

	rate := int(d.SampleRate)
	channels := int(d.NumChans)

	switch d.BitDepth {
	case 8:
		// WAV stores 8-bit PCM unsigned; recenter around zero.
		data := make([]int8, len(buf.Data))
		for i, v := range buf.Data {
			data[i] = int8(v - 128)
		}
		return m.BindSamples(data, false, rate, channels)
	case 16:
		data := make([]int16, len(buf.Data))
		for i, v := range buf.Data {
			data[i] = int16(v)
		}
		return m.BindSamples(data, false, rate, channels)
	case 24:
		// Scale up so full-scale 24-bit audio spans the int32 range.
		data := make([]int32, len(buf.Data))
		for i, v := range buf.Data {
			data[i] = int32(v) << 8
		}
		return m.BindSamples(data, false, rate, channels)
	case 32:
		data := make([]int32, len(buf.Data))
		for i, v := range buf.Data {
			data[i] = int32(v)
		}
		return m.BindSamples(data, false, rate, channels)
	default:
		return fmt.Errorf("fada: %q: unsupported bit depth %d: %w", path, d.BitDepth, ErrInvalidType)
	}
}
