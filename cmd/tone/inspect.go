package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/leandrodaf/tone/internal/sink/wavsink"
	"github.com/leandrodaf/tone/internal/waveform"
	"github.com/leandrodaf/tone/sdk/contracts"
)

// inspect prints the pitches heard in a WAV file, one line per segment.
func inspect(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tone inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: tone inspect file.wav")
		return 1
	}

	samples, rate, err := wavsink.Read(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if rate <= 0 {
		fmt.Fprintf(stderr, "%s: invalid sample rate %d\n", fs.Arg(0), rate)
		return 1
	}

	window := contracts.Eighth.Bytes() * rate / contracts.SampleRate
	for _, seg := range waveform.Transcribe(samples, rate, window) {
		fmt.Fprintf(stdout, "%-8s %-6s %s\n",
			offset(seg.Start, rate), seg.Pitch, offset(seg.Samples, rate))
	}
	return 0
}

func offset(samples, rate int) time.Duration {
	return (time.Duration(samples) * time.Second / time.Duration(rate)).Round(time.Millisecond)
}
