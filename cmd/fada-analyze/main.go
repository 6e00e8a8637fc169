// Copyright (c) Nathan Cousins and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

// fada-analyze walks a WAV file window by window and prints the beat and bass
// estimators along with banded FFT magnitudes for each window.
//
// Usage:
//
//	fada-analyze [flags] <file.wav>
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	fada "github.com/ief015/fada-go"
)

func main() {
	var (
		configPath string
		preset     Preset
	)

	pflag.StringVarP(&configPath, "config", "c", "", "YAML preset file")
	pflag.IntVarP(&preset.WindowFrames, "window", "w", 2048, "analysis window size in frames")
	pflag.IntVarP(&preset.Bars, "bars", "b", 12, "number of frequency bars to print")
	pflag.IntVar(&preset.Channel, "channel", -1, "analyze a single channel instead of the mix")
	pflag.IntVar(&preset.Step, "step", fada.NextWindow, "frames to advance per row (negative: whole windows)")
	pflag.BoolVarP(&preset.Verbose, "verbose", "v", false, "log each window at debug level")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file.wav>\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(2)
	}

	if configPath != "" {
		if err := preset.Load(configPath); err != nil {
			log.Fatal("failed to load preset", "path", configPath, "err", err)
		}
	}
	if preset.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	path := pflag.Arg(0)
	m, err := fada.OpenWAV(path)
	if err != nil {
		log.Fatal("failed to open audio", "path", path, "err", err)
	}
	defer m.Close()

	if err := m.SetWindowFrames(preset.WindowFrames); err != nil {
		log.Fatal("failed to set window size", "frames", preset.WindowFrames, "err", err)
	}
	if err := m.PreloadFFTBuffer(); err != nil {
		log.Fatal("failed to allocate FFT buffer", "err", err)
	}

	log.Info("bound audio",
		"type", m.SampleType(),
		"rate", m.SampleRate(),
		"channels", m.Channels(),
		"frames", m.FrameCount(),
		"window", m.WindowFrames(),
		"fft", m.FFTSize())

	if err := analyze(m, &preset, os.Stdout); err != nil {
		log.Fatal("analysis failed", "err", err)
	}
}

// analyze walks the audio window by window, printing one row per window.
func analyze(m *fada.Manager, p *Preset, out *os.File) error {
	mags := make([]float64, m.FFTSize())

	for {
		beat, bass, err := calcEstimators(m, p.Channel)
		if err != nil {
			return err
		}
		if err := calcSpectrum(m, p.Channel, mags); err != nil {
			return err
		}

		pos := m.Position()
		log.Debug("window", "pos", pos, "beat", beat, "bass", bass)
		fmt.Fprintf(out, "%10d  beat %8.4f  bass %8.4f  %s\n",
			pos, beat, bass, bars(mags, p.Bars))

		if !m.Continue(p.Step) {
			return nil
		}
	}
}

func calcEstimators(m *fada.Manager, channel int) (beat, bass float64, err error) {
	if channel < 0 {
		if beat, err = m.CalcBeat(); err != nil {
			return 0, 0, err
		}
		bass, err = m.CalcBass()
		return beat, bass, err
	}
	if beat, err = m.CalcBeatChannel(channel); err != nil {
		return 0, 0, err
	}
	bass, err = m.CalcBassChannel(channel)
	return beat, bass, err
}

func calcSpectrum(m *fada.Manager, channel int, mags []float64) error {
	if channel < 0 {
		if err := m.CalcFFT(); err != nil {
			return err
		}
	} else if err := m.CalcFFTChannel(channel); err != nil {
		return err
	}
	return m.FFTValues(mags)
}

// bars folds the lower half of the spectrum into n bands and renders each
// band's mean magnitude as a height from ' ' to '#'.
func bars(mags []float64, n int) string {
	const ramp = " .:-=+*#"

	half := len(mags) / 2
	if n <= 0 || half == 0 {
		return ""
	}
	per := half / n
	if per == 0 {
		per = 1
	}

	var sb strings.Builder
	for b := 0; b < n; b++ {
		start := b * per
		if start >= half {
			break
		}
		end := min(start+per, half)
		sum := 0.0
		for i := start; i < end; i++ {
			sum += mags[i]
		}
		level := int(sum / float64(end-start) * float64(len(ramp)) * 8)
		if level >= len(ramp) {
			level = len(ramp) - 1
		}
		sb.WriteByte(ramp[level])
	}
	return sb.String()
}
