package wavegen

import "errors"

var (
	// ErrInvalidWaveformParameter indicates waveform parameters that cannot
	// describe a synthesizable signal, such as a non-positive frequency or
	// an empty harmonic list.
	ErrInvalidWaveformParameter = errors.New("invalid waveform parameter")

	// ErrUnsupportedDurationPolicy indicates a length policy paired with an
	// output target that does not accept it, such as a duration for the
	// source-array target.
	ErrUnsupportedDurationPolicy = errors.New("unsupported duration policy for output target")

	// ErrUnsupportedCycleRequest indicates a single-cycle request for a
	// waveform without a single period, i.e. a sweep.
	ErrUnsupportedCycleRequest = errors.New("single cycle unsupported for this waveform")

	// ErrNoHarmonics indicates a harmonics definition with no components.
	ErrNoHarmonics = errors.New("no harmonics found")
)
