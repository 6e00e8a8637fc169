package fada

import "math"

// Signal generators shared by the package tests.

// toneInt16 returns frames of an interleaved int16 sinusoid at freq Hz with
// the given amplitude, identical on every channel.
func toneInt16(freq float64, rate, frames, channels int, amp float64) []int16 {
	out := make([]int16, frames*channels)
	for f := 0; f < frames; f++ {
		v := int16(amp * math.Sin(2*math.Pi*freq*float64(f)/float64(rate)))
		for c := 0; c < channels; c++ {
			out[f*channels+c] = v
		}
	}
	return out
}

// toneFloat64 returns frames of an interleaved float64 sinusoid at freq Hz
// with unit amplitude, identical on every channel.
func toneFloat64(freq float64, rate, frames, channels int) []float64 {
	out := make([]float64, frames*channels)
	for f := 0; f < frames; f++ {
		v := math.Sin(2 * math.Pi * freq * float64(f) / float64(rate))
		for c := 0; c < channels; c++ {
			out[f*channels+c] = v
		}
	}
	return out
}

// constInt16 returns frames of an interleaved constant int16 signal.
func constInt16(v int16, frames, channels int) []int16 {
	out := make([]int16, frames*channels)
	for i := range out {
		out[i] = v
	}
	return out
}
