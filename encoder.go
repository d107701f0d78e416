package wavegen

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

const (
	wavFormatPCM  = 1
	wavHeaderSize = 44
	bitDepth16    = 16
)

// wavWriter assembles a RIFF/WAVE byte stream in memory. All chunk sizes
// are known before the first byte is written, so no backpatching is
// needed.
type wavWriter struct {
	buf bytes.Buffer
}

// addLE serializes and appends the passed value using little endian.
func (w *wavWriter) addLE(src any) error {
	err := binary.Write(&w.buf, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

// EncodeWAV serializes a quantized, channel-expanded buffer into a
// RIFF/WAVE PCM container: the canonical 44-byte header followed by the
// little-endian 16-bit samples in interleaved order. The buffer's Format
// supplies the channel count and sample rate.
func EncodeWAV(buf *audio.IntBuffer) ([]byte, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidWaveformParameter)
	}

	numChans := buf.Format.NumChannels
	sampleRate := buf.Format.SampleRate
	blockAlign := numChans * bitDepth16 / 8
	dataSize := len(buf.Data) * bitDepth16 / 8

	w := &wavWriter{}
	w.buf.Grow(wavHeaderSize + dataSize)

	// riff ID and total size of everything that follows it
	if err := w.addLE(riff.RiffID); err != nil {
		return nil, err
	}

	if err := w.addLE(uint32(wavHeaderSize - 8 + dataSize)); err != nil {
		return nil, err
	}

	// wave headers
	if err := w.addLE(riff.WavFormatID); err != nil {
		return nil, err
	}

	// form
	if err := w.addLE(riff.FmtID); err != nil {
		return nil, err
	}

	if err := w.addLE(uint32(16)); err != nil {
		return nil, err
	}

	if err := w.addLE(uint16(wavFormatPCM)); err != nil {
		return nil, err
	}

	if err := w.addLE(uint16(numChans)); err != nil {
		return nil, fmt.Errorf("error encoding the number of channels - %w", err)
	}

	if err := w.addLE(uint32(sampleRate)); err != nil {
		return nil, fmt.Errorf("error encoding the sample rate - %w", err)
	}

	if err := w.addLE(uint32(sampleRate * blockAlign)); err != nil {
		return nil, fmt.Errorf("error encoding the avg bytes per sec - %w", err)
	}

	if err := w.addLE(uint16(blockAlign)); err != nil {
		return nil, err
	}

	if err := w.addLE(uint16(bitDepth16)); err != nil {
		return nil, fmt.Errorf("error encoding bits per sample - %w", err)
	}

	// sound header
	if err := w.addLE(riff.DataFormatID); err != nil {
		return nil, fmt.Errorf("error encoding sound header %w", err)
	}

	if err := w.addLE(uint32(dataSize)); err != nil {
		return nil, fmt.Errorf("%w when writing wav data chunk size header", err)
	}

	for _, v := range buf.Data {
		if err := w.addLE(int16(v)); err != nil {
			return nil, fmt.Errorf("failed to write 16-bit sample: %w", err)
		}
	}

	return w.buf.Bytes(), nil
}
