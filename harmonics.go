package wavegen

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadHarmonics reads a harmonic stack definition from CSV. The first
// record must be the header "frequency,amplitude"; every following
// record is one component. Whitespace around commas is tolerated. A file
// with a header but no components fails with ErrNoHarmonics; malformed
// rows are reported with their 1-based line number.
func LoadHarmonics(r io.Reader) (HarmonicStack, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return HarmonicStack{}, ErrNoHarmonics
		}

		return HarmonicStack{}, fmt.Errorf("failed to read harmonics header: %w", err)
	}

	if strings.TrimSpace(header[0]) != "frequency" || strings.TrimSpace(header[1]) != "amplitude" {
		return HarmonicStack{}, fmt.Errorf("harmonics header must be \"frequency,amplitude\", got %q", strings.Join(header, ","))
	}

	var stack HarmonicStack

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return HarmonicStack{}, fmt.Errorf("parse error in harmonics at line %d: %w", line, err)
		}

		frequency, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return HarmonicStack{}, fmt.Errorf("parse error in harmonics at line %d: %w", line, err)
		}

		amplitude, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return HarmonicStack{}, fmt.Errorf("parse error in harmonics at line %d: %w", line, err)
		}

		stack.Components = append(stack.Components, Harmonic{Frequency: frequency, Amplitude: amplitude})
	}

	if len(stack.Components) == 0 {
		return HarmonicStack{}, ErrNoHarmonics
	}

	return stack, stack.Validate()
}

// LoadHarmonicsFile reads a harmonic stack definition from the file at
// path.
func LoadHarmonicsFile(path string) (HarmonicStack, error) {
	f, err := os.Open(path)
	if err != nil {
		return HarmonicStack{}, fmt.Errorf("could not read file %s: %w", path, err)
	}
	defer f.Close()

	stack, err := LoadHarmonics(f)
	if err != nil {
		return HarmonicStack{}, fmt.Errorf("%s: %w", path, err)
	}

	return stack, nil
}
