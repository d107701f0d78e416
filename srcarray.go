package wavegen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-audio/audio"
)

// valuesPerLine is the number of array literals emitted per line.
const valuesPerLine = 10

// EncodeSourceArray serializes a quantized, channel-expanded buffer into
// a source-code array declaration of the form
//
//	static NAME: [i16; count] = [
//	    0,  6393, 12539, ...
//	];
//
// with count the total element count (frames times channels), values
// rendered as right-aligned decimal literals, ten per line. The
// identifier is used as given; derive one from a file name with
// DeriveArrayName.
func EncodeSourceArray(buf *audio.IntBuffer, name string) ([]byte, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidWaveformParameter)
	}

	if name == "" {
		return nil, fmt.Errorf("%w: empty array identifier", ErrInvalidWaveformParameter)
	}

	var out bytes.Buffer

	fmt.Fprintf(&out, "static %s: [i16; %d] = [\n", name, len(buf.Data))

	for i, v := range buf.Data {
		if i%valuesPerLine == 0 {
			out.WriteString("   ")
		}

		fmt.Fprintf(&out, " %6d,", int16(v))

		if (i+1)%valuesPerLine == 0 {
			out.WriteByte('\n')
		}
	}

	if len(buf.Data)%valuesPerLine != 0 {
		out.WriteByte('\n')
	}

	out.WriteString("];\n")

	return out.Bytes(), nil
}

// DeriveArrayName derives a default array identifier from an output file
// name: the base name without extension, uppercased, with every rune
// that is not a letter or digit replaced by an underscore. A leading
// digit gets an underscore prefix so the result stays a valid
// identifier. An empty derivation falls back to "DATA".
func DeriveArrayName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	for _, r := range base {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	name := b.String()
	if name == "" {
		return "DATA"
	}

	if unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}

	return name
}
