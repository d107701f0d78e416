package wavegen

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// Waveform describes a parametric signal to synthesize. The set of kinds
// is closed: Tone, Sweep and HarmonicStack.
type Waveform interface {
	// Validate reports whether the parameters describe a synthesizable
	// signal. It wraps ErrInvalidWaveformParameter on failure.
	Validate() error

	waveform()
}

// Tone is a constant-frequency sine wave.
type Tone struct {
	// Frequency in hertz, must be positive.
	Frequency float64
}

// Sweep is a sine wave whose frequency ramps linearly from StartFreq to
// FinishFreq over the full buffer duration. A zero-width sweep
// (StartFreq == FinishFreq) is accepted and degenerates to a tone.
type Sweep struct {
	StartFreq  float64
	FinishFreq float64
}

// Harmonic is one component of a HarmonicStack.
type Harmonic struct {
	// Frequency in hertz, must be positive.
	Frequency float64
	// Amplitude is the raw weight of this component before peak
	// normalization. It does not need to sum to anything across the
	// stack; negative values are rejected, zero is allowed.
	Amplitude float64
}

// HarmonicStack is an additive sum of sine components. The summed signal
// is peak-normalized by Build, not by the oscillator.
type HarmonicStack struct {
	Components []Harmonic
}

func (Tone) waveform()          {}
func (Sweep) waveform()         {}
func (HarmonicStack) waveform() {}

// Validate implements Waveform.
func (w Tone) Validate() error {
	if w.Frequency <= 0 {
		return fmt.Errorf("%w: tone frequency %v is not positive", ErrInvalidWaveformParameter, w.Frequency)
	}

	return nil
}

// Validate implements Waveform.
func (w Sweep) Validate() error {
	if w.StartFreq <= 0 {
		return fmt.Errorf("%w: sweep start frequency %v is not positive", ErrInvalidWaveformParameter, w.StartFreq)
	}

	if w.FinishFreq <= 0 {
		return fmt.Errorf("%w: sweep finish frequency %v is not positive", ErrInvalidWaveformParameter, w.FinishFreq)
	}

	return nil
}

// Validate implements Waveform.
func (w HarmonicStack) Validate() error {
	if len(w.Components) == 0 {
		return fmt.Errorf("%w: empty harmonic list", ErrInvalidWaveformParameter)
	}

	for i, h := range w.Components {
		if h.Frequency <= 0 {
			return fmt.Errorf("%w: harmonic %d frequency %v is not positive", ErrInvalidWaveformParameter, i, h.Frequency)
		}

		if h.Amplitude < 0 {
			return fmt.Errorf("%w: harmonic %d amplitude %v is negative", ErrInvalidWaveformParameter, i, h.Amplitude)
		}
	}

	return nil
}

// fundamental returns the lowest component frequency. Call only on a
// validated, non-empty stack.
func (w HarmonicStack) fundamental() float64 {
	lowest := w.Components[0].Frequency
	for _, h := range w.Components[1:] {
		if h.Frequency < lowest {
			lowest = h.Frequency
		}
	}

	return lowest
}

// sampleAt returns the raw oscillator amplitude of w at frame n of a
// buffer spanning total frames. Tones and sweeps are bounded to [-1, 1]
// by construction; harmonic stacks are unnormalized sums.
//
// The sweep integrates its linear frequency ramp: frequency is the time
// derivative of phase, so phase(t) = 2π(f0·t + (f1-f0)·t²/(2T)) with
// T the buffer duration. Evaluating sin at the instantaneous frequency
// directly would glitch the phase.
//
// Frequencies at or above the Nyquist limit alias rather than fail; no
// band limiting is applied.
func sampleAt(w Waveform, n, total, sampleRate int) float64 {
	switch s := w.(type) {
	case Tone:
		return math.Sin(twoPi * s.Frequency * float64(n) / float64(sampleRate))
	case Sweep:
		t := float64(n) / float64(sampleRate)
		duration := float64(total) / float64(sampleRate)

		phase := twoPi * (s.StartFreq*t + (s.FinishFreq-s.StartFreq)*t*t/(2*duration))

		return math.Sin(phase)
	case HarmonicStack:
		var sum float64
		for _, h := range s.Components {
			sum += h.Amplitude * math.Sin(twoPi*h.Frequency*float64(n)/float64(sampleRate))
		}

		return sum
	default:
		return 0
	}
}
