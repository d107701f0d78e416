package wavegen

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

// Build synthesizes frames samples of w and returns them as a float
// buffer expanded to the requested channel layout. Every value in the
// returned buffer lies in [-1, 1].
//
// Harmonic stacks are generated in two passes: a raw pass over the whole
// buffer, then a uniform rescale by the observed peak so the maximum
// absolute value is exactly 1. The scale factor is not known until all
// raw samples exist, so the rescale cannot be streamed. A stack whose
// components are all zero-amplitude has peak 0 and is left untouched.
// Tones and sweeps are bounded by construction and are not rescaled.
func Build(w Waveform, sampleRate, frames int, layout ChannelLayout) (*audio.FloatBuffer, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d is not positive", ErrInvalidWaveformParameter, sampleRate)
	}

	if frames < 1 {
		return nil, fmt.Errorf("%w: frame count %d is not positive", ErrInvalidWaveformParameter, frames)
	}

	raw := make([]float64, frames)
	for n := range raw {
		raw[n] = sampleAt(w, n, frames, sampleRate)
	}

	if _, ok := w.(HarmonicStack); ok {
		normalizePeak(raw)
	}

	numChans := layout.NumChannels()

	buf := &audio.FloatBuffer{
		Format: &audio.Format{
			NumChannels: numChans,
			SampleRate:  sampleRate,
		},
		Data: make([]float64, frames*numChans),
	}

	for n, v := range raw {
		for c := 0; c < numChans; c++ {
			buf.Data[n*numChans+c] = v
		}
	}

	return buf, nil
}

// normalizePeak rescales data so its maximum absolute value is exactly 1.
// All-zero input is left as is.
func normalizePeak(data []float64) {
	var peak float64
	for _, v := range data {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	if peak == 0 {
		return
	}

	for i := range data {
		data[i] /= peak
	}
}
