package wavegen

import (
	"fmt"
	"math"
)

// OutputTarget selects the serialized representation of a generated
// buffer. The target also constrains which DurationPolicy applies, see
// FrameCount.
type OutputTarget int

const (
	// TargetWAV emits a RIFF/WAVE PCM byte stream.
	TargetWAV OutputTarget = iota
	// TargetSourceArray emits a source-code array literal.
	TargetSourceArray
)

func (t OutputTarget) String() string {
	switch t {
	case TargetWAV:
		return "wav"
	case TargetSourceArray:
		return "source array"
	default:
		return fmt.Sprintf("OutputTarget(%d)", int(t))
	}
}

// ChannelLayout selects mono or interleaved stereo output. Stereo
// duplicates every generated frame into identical left and right values;
// the channels are never synthesized independently.
type ChannelLayout int

const (
	Mono ChannelLayout = iota
	Stereo
)

// NumChannels returns the number of interleaved values per frame.
func (l ChannelLayout) NumChannels() int {
	if l == Stereo {
		return 2
	}

	return 1
}

func (l ChannelLayout) String() string {
	if l == Stereo {
		return "stereo"
	}

	return "mono"
}

// DurationPolicy determines how many sample frames to generate. The set
// of policies is closed: ByDuration, ByLength and SingleCycle.
type DurationPolicy interface {
	durationPolicy()
}

// ByDuration requests a buffer spanning a wall-clock duration. Valid only
// for the WAV target.
type ByDuration struct {
	Seconds float64
}

// ByLength requests an exact number of sample frames. Valid only for the
// source-array target.
type ByLength struct {
	Frames uint32
}

// SingleCycle requests the nearest whole number of frames spanning one
// period, so the emitted array can be looped without a seam. Valid only
// for tones and harmonic stacks on the source-array target; a sweep has
// no single period.
type SingleCycle struct{}

func (ByDuration) durationPolicy()  {}
func (ByLength) durationPolicy()    {}
func (SingleCycle) durationPolicy() {}

// FrameCount resolves the number of mono sample frames to generate for
// the given waveform, length policy and output target. Every invalid
// pairing is rejected here, before any sample is generated.
//
// Single-cycle counts are rounded to the nearest frame, which shifts the
// emitted frequency by the fractional remainder of sampleRate/frequency.
// For a harmonic stack the period is approximated by the period of the
// lowest listed frequency; components that are not exact integer
// multiples of it will not loop perfectly.
func FrameCount(w Waveform, policy DurationPolicy, target OutputTarget, sampleRate int) (int, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate %d is not positive", ErrInvalidWaveformParameter, sampleRate)
	}

	if err := w.Validate(); err != nil {
		return 0, err
	}

	switch p := policy.(type) {
	case ByDuration:
		if target != TargetWAV {
			return 0, fmt.Errorf("%w: duration given for %s output", ErrUnsupportedDurationPolicy, target)
		}

		if p.Seconds <= 0 {
			return 0, fmt.Errorf("%w: duration %v is not positive", ErrInvalidWaveformParameter, p.Seconds)
		}

		return int(math.Round(p.Seconds * float64(sampleRate))), nil
	case ByLength:
		if target != TargetSourceArray {
			return 0, fmt.Errorf("%w: fixed sample length given for %s output", ErrUnsupportedDurationPolicy, target)
		}

		if p.Frames == 0 {
			return 0, fmt.Errorf("%w: zero sample length", ErrInvalidWaveformParameter)
		}

		return int(p.Frames), nil
	case SingleCycle:
		if target != TargetSourceArray {
			return 0, fmt.Errorf("%w: single cycle given for %s output", ErrUnsupportedDurationPolicy, target)
		}

		switch s := w.(type) {
		case Tone:
			return cycleFrames(s.Frequency, sampleRate), nil
		case HarmonicStack:
			return cycleFrames(s.fundamental(), sampleRate), nil
		case Sweep:
			return 0, ErrUnsupportedCycleRequest
		}
	}

	return 0, fmt.Errorf("%w: unknown policy %T", ErrUnsupportedDurationPolicy, policy)
}

func cycleFrames(frequency float64, sampleRate int) int {
	frames := int(math.Round(float64(sampleRate) / frequency))
	if frames < 1 {
		// frequency above the sample rate still yields one frame
		frames = 1
	}

	return frames
}
