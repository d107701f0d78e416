package wavegen

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/go-audio/audio"
)

var arrayLiteral = regexp.MustCompile(`-?\d+,`)

func TestEncodeSourceArrayMonoCount(t *testing.T) {
	buf, err := Build(Tone{Frequency: 440}, 44100, 1024, Mono)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := EncodeSourceArray(Quantize(buf), "TONE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(out)

	if !strings.HasPrefix(text, "static TONE: [i16; 1024] = [") {
		t.Fatalf("unexpected declaration: %q", firstLine(text))
	}

	if got := len(arrayLiteral.FindAllString(text, -1)); got != 1024 {
		t.Fatalf("found %d literals, want 1024", got)
	}

	if !strings.HasSuffix(strings.TrimRight(text, "\n"), "];") {
		t.Fatalf("missing closing bracket: %q", text[len(text)-20:])
	}
}

func TestEncodeSourceArrayStereoInterleaves(t *testing.T) {
	buf, err := Build(Tone{Frequency: 440}, 44100, 1024, Stereo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	quantized := Quantize(buf)

	out, err := EncodeSourceArray(quantized, "TONE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(out)

	if !strings.Contains(text, "[i16; 2048]") {
		t.Fatalf("unexpected declaration: %q", firstLine(text))
	}

	literals := arrayLiteral.FindAllString(text, -1)
	if len(literals) != 2048 {
		t.Fatalf("found %d literals, want 2048", len(literals))
	}

	// adjacent literals are the duplicated left/right of one frame
	for i := 0; i < len(literals); i += 2 {
		if literals[i] != literals[i+1] {
			t.Fatalf("frame %d: left %s != right %s", i/2, literals[i], literals[i+1])
		}
	}
}

func TestEncodeSourceArrayLineWrap(t *testing.T) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 44100},
		Data:   make([]int, 25),
	}

	out, err := EncodeSourceArray(buf, "PAD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")

	// declaration, two full rows of ten, one row of five, closer
	if len(lines) != 5 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}

	for _, line := range lines[1:3] {
		if got := len(arrayLiteral.FindAllString(line, -1)); got != 10 {
			t.Fatalf("line %q has %d values, want 10", line, got)
		}
	}

	if got := len(arrayLiteral.FindAllString(lines[3], -1)); got != 5 {
		t.Fatalf("line %q has %d values, want 5", lines[3], got)
	}
}

func TestEncodeSourceArrayValues(t *testing.T) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 44100},
		Data:   []int{0, 32767, -32768, -1},
	}

	out, err := EncodeSourceArray(buf, "V")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"0,", "32767,", "-32768,", "-1,"} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEncodeSourceArrayEmptyName(t *testing.T) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 44100},
		Data:   []int{0},
	}

	_, err := EncodeSourceArray(buf, "")
	if !errors.Is(err, ErrInvalidWaveformParameter) {
		t.Fatalf("error = %v, want ErrInvalidWaveformParameter", err)
	}
}

func TestDeriveArrayName(t *testing.T) {
	testCases := []struct {
		path string
		want string
	}{
		{"sine.rs", "SINE"},
		{"out/sweep-500.rs", "SWEEP_500"},
		{"tone 440hz.inc", "TONE_440HZ"},
		{"500hz.rs", "_500HZ"},
		{".rs", "DATA"},
		{"noext", "NOEXT"},
	}

	for _, testCase := range testCases {
		if got := DeriveArrayName(testCase.path); got != testCase.want {
			t.Errorf("DeriveArrayName(%q) = %q, want %q", testCase.path, got, testCase.want)
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}

	return s
}
