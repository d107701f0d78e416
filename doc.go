// Package wavegen synthesizes discrete-time audio waveforms from
// parametric descriptions and serializes the resulting 16-bit PCM samples.
//
// Three waveform kinds are supported: a constant-frequency tone, a linear
// frequency sweep, and an additive harmonic stack. A generated buffer can
// be encoded either as a RIFF/WAVE PCM byte stream or as a source-code
// array literal suitable for embedding in firmware.
//
// The pipeline is purely functional: resolve the frame count for the
// requested length policy with FrameCount, synthesize with Build, quantize
// with Quantize, and hand the result to EncodeWAV or EncodeSourceArray.
// All errors are reported before any sample is generated or any byte is
// written; file output via WriteFile is all-or-nothing.
package wavegen
