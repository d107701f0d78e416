package wavegen

import (
	"math"

	"github.com/go-audio/audio"
)

const (
	scalePCM16 = 32767.0
	maxPCM16   = 32767
	minPCM16   = -32768
)

// Quantize converts a normalized float buffer to signed 16-bit PCM
// values. The scale factor targets 32767 for the positive peak, so
// -32768 is reachable only through clamping; this asymmetry matches
// 16-bit PCM convention.
func Quantize(buf *audio.FloatBuffer) *audio.IntBuffer {
	out := &audio.IntBuffer{
		Format:         buf.Format,
		SourceBitDepth: 16,
		Data:           make([]int, len(buf.Data)),
	}

	for i, v := range buf.Data {
		out.Data[i] = int(quantizeSample(v))
	}

	return out
}

// quantizeSample maps one normalized value to int16 using
// round-half-away-from-zero (math.Round), clamped to [-32768, 32767].
func quantizeSample(v float64) int16 {
	scaled := int64(math.Round(v * scalePCM16))

	if scaled > maxPCM16 {
		return maxPCM16
	}

	if scaled < minPCM16 {
		return minPCM16
	}

	return int16(scaled)
}
