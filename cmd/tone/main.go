// Command tone plays a song file, one goroutine per pitch.
//
//	tone [-config tone.yaml] [-sink oto|speaker|wav|memory] [-out song.wav]
//	     [-log-level info] [-midi-device n] song.txt
//	tone inspect song.wav
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/leandrodaf/tone/internal/config"
	"github.com/leandrodaf/tone/internal/logger"
	"github.com/leandrodaf/tone/sdk/contracts"
	"github.com/leandrodaf/tone/sdk/midi"
	"github.com/leandrodaf/tone/sdk/tone"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "inspect" {
		return inspect(args[1:], stdout, stderr)
	}

	fs := flag.NewFlagSet("tone", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile = fs.String("config", "", "YAML settings file")
		sink       = fs.String("sink", "", "audio backend: oto, speaker, wav or memory")
		out        = fs.String("out", "", "WAV file written by the wav sink")
		logLevel   = fs.String("log-level", "", "debug, info, warn or error")
		midiDevice = fs.Int("midi-device", config.NoMIDIDevice, "echo notes to this MIDI output (-1 disables)")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: tone [flags] song.txt\n       tone inspect file.wav")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	// flags win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sink":
			cfg.Sink = *sink
		case "out":
			cfg.Output = *out
			if cfg.Sink == string(contracts.OtoSink) && *sink == "" {
				cfg.Sink = string(contracts.WAVSink)
			}
		case "log-level":
			cfg.LogLevel = *logLevel
		case "midi-device":
			cfg.MIDIDevice = midiDevice
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	song, err := tone.LoadScore(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log := logger.NewZapLogger()
	defer log.Sync()

	opts := append([]contracts.Option{contracts.WithLogger(log)}, cfg.Options()...)
	if device := cfg.Device(); device != config.NoMIDIDevice {
		echo, closeEcho, err := openEcho(log, cfg, device)
		if err != nil {
			log.Warn("MIDI echo disabled", log.Field().Int("device", device), log.Field().Error("error", err))
		} else {
			defer closeEcho()
			opts = append(opts, contracts.WithNoteListener(echo))
		}
	}

	player, err := tone.NewPlayer(opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := player.Play(ctx, song); err != nil {
		if errors.Is(err, contracts.ErrInterrupted) {
			fmt.Fprintln(stderr, "interrupted")
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func openEcho(log contracts.Logger, cfg config.Config, device int) (*midi.NoteEcho, func(), error) {
	clientOpts := append([]contracts.ClientOption{contracts.WithClientLogger(log)}, cfg.ClientOptions()...)
	client, err := midi.NewMIDIClient(clientOpts...)
	if err != nil {
		return nil, nil, err
	}
	if err := client.SelectDevice(device); err != nil {
		client.Stop()
		return nil, nil, err
	}
	return midi.NewNoteEcho(client, clientOpts...), func() { client.Stop() }, nil
}
