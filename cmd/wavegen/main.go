// Command wavegen generates a parametric waveform and writes it either
// as a 16-bit PCM wav file or as a source-code array literal, depending
// on the output file extension.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavegen"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("wavegen", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "file to write; a .wav extension selects wav output, anything else a source array")
	rate := flagSet.Int("rate", 44100, "sample rate in frames per second")
	frequency := flagSet.Float64("frequency", 0, "tone frequency in hertz")
	start := flagSet.Float64("start", 0, "sweep start frequency in hertz")
	finish := flagSet.Float64("finish", 0, "sweep finish frequency in hertz")
	harmonics := flagSet.String("harmonics", "", "csv file with frequency,amplitude harmonic rows")
	duration := flagSet.Float64("duration", 0, "length in seconds of the output (wav only)")
	length := flagSet.Uint("length", 0, "length in sample frames of the output (source array only)")
	cycle := flagSet.Bool("cycle", false, "emit a single waveform cycle (source array only)")
	stereo := flagSet.Bool("stereo", false, "duplicate samples into interleaved stereo")
	name := flagSet.String("name", "", "array identifier, derived from the output name when empty")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	waveform, err := selectWaveform(*frequency, *start, *finish, *harmonics)
	if err != nil {
		return err
	}

	policy, err := selectPolicy(*duration, *length, *cycle)
	if err != nil {
		return err
	}

	target := wavegen.TargetSourceArray
	if strings.EqualFold(filepath.Ext(*output), ".wav") {
		target = wavegen.TargetWAV
	}

	layout := wavegen.Mono
	if *stereo {
		layout = wavegen.Stereo
	}

	frames, err := wavegen.FrameCount(waveform, policy, target, *rate)
	if err != nil {
		return err
	}

	log.Printf("generating %d frames (%s, %d hz) to %s", frames, layout, *rate, *output)

	buf, err := wavegen.Build(waveform, *rate, frames, layout)
	if err != nil {
		return err
	}

	quantized := wavegen.Quantize(buf)

	var encoded []byte

	if target == wavegen.TargetWAV {
		encoded, err = wavegen.EncodeWAV(quantized)
	} else {
		identifier := *name
		if identifier == "" {
			identifier = wavegen.DeriveArrayName(*output)
		}

		encoded, err = wavegen.EncodeSourceArray(quantized, identifier)
	}

	if err != nil {
		return err
	}

	return wavegen.WriteFile(*output, encoded)
}

func selectWaveform(frequency, start, finish float64, harmonics string) (wavegen.Waveform, error) {
	chosen := 0
	if frequency != 0 {
		chosen++
	}

	if start != 0 || finish != 0 {
		chosen++
	}

	if harmonics != "" {
		chosen++
	}

	if chosen != 1 {
		return nil, errors.New("pick exactly one of -frequency, -start/-finish or -harmonics")
	}

	switch {
	case frequency != 0:
		return wavegen.Tone{Frequency: frequency}, nil
	case harmonics != "":
		return wavegen.LoadHarmonicsFile(harmonics)
	default:
		return wavegen.Sweep{StartFreq: start, FinishFreq: finish}, nil
	}
}

func selectPolicy(duration float64, length uint, cycle bool) (wavegen.DurationPolicy, error) {
	chosen := 0
	if duration != 0 {
		chosen++
	}

	if length != 0 {
		chosen++
	}

	if cycle {
		chosen++
	}

	if chosen != 1 {
		return nil, errors.New("pick exactly one of -duration, -length or -cycle")
	}

	switch {
	case duration != 0:
		return wavegen.ByDuration{Seconds: duration}, nil
	case cycle:
		return wavegen.SingleCycle{}, nil
	default:
		if length > 1<<32-1 {
			return nil, fmt.Errorf("length %d does not fit in 32 bits", length)
		}

		return wavegen.ByLength{Frames: uint32(length)}, nil
	}
}
