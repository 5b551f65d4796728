// Package config reads the optional YAML settings file of the tone command.
package config

import (
	"fmt"
	"os"

	"github.com/leandrodaf/tone/sdk/contracts"
	"gopkg.in/yaml.v3"
)

// NoMIDIDevice disables the MIDI echo.
const NoMIDIDevice = -1

// Config holds the settings of a playback run. Zero values mean "use the default".
type Config struct {
	Sink       string `yaml:"sink"`        // oto, speaker, wav or memory
	Output     string `yaml:"output"`      // WAV file written by the wav sink
	LogLevel   string `yaml:"log_level"`   // debug, info, warn, error
	LogFile    string `yaml:"log_file"`    // append logs here instead of stderr
	MIDIDevice *int   `yaml:"midi_device"` // echo notes to this MIDI output
	Velocity   int    `yaml:"velocity"`
	Channel    int    `yaml:"channel"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{Sink: string(contracts.OtoSink), LogLevel: "info"}
}

// Load reads the YAML file at path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be checked by the player itself.
func (c Config) Validate() error {
	if _, err := contracts.ParseLogLevel(c.LogLevel); c.LogLevel != "" && err != nil {
		return err
	}
	if c.Velocity < 0 || c.Velocity > 127 {
		return fmt.Errorf("velocity %d out of range 0-127", c.Velocity)
	}
	if c.Channel < 0 || c.Channel > 15 {
		return fmt.Errorf("channel %d out of range 0-15", c.Channel)
	}
	if c.Sink == string(contracts.WAVSink) && c.Output == "" {
		return fmt.Errorf("sink %q requires output", c.Sink)
	}
	return nil
}

// Device returns the MIDI output to echo to, or NoMIDIDevice.
func (c Config) Device() int {
	if c.MIDIDevice == nil {
		return NoMIDIDevice
	}
	return *c.MIDIDevice
}

// Options translates the settings into player options.
func (c Config) Options() []contracts.Option {
	var opts []contracts.Option
	switch c.Sink {
	case "":
	case string(contracts.WAVSink):
		opts = append(opts, contracts.WithWAVOutput(c.Output))
	default:
		opts = append(opts, contracts.WithSink(contracts.SinkKind(c.Sink)))
	}
	if level, err := contracts.ParseLogLevel(c.LogLevel); err == nil {
		opts = append(opts, contracts.WithLogLevel(level))
	}
	if c.LogFile != "" {
		opts = append(opts, contracts.WithLogFile(c.LogFile))
	}
	return opts
}

// ClientOptions translates the MIDI settings into client options.
func (c Config) ClientOptions() []contracts.ClientOption {
	var opts []contracts.ClientOption
	if level, err := contracts.ParseLogLevel(c.LogLevel); err == nil {
		opts = append(opts, contracts.WithClientLogLevel(level))
	}
	if c.Channel > 0 {
		opts = append(opts, contracts.WithChannel(byte(c.Channel)))
	}
	if c.Velocity > 0 {
		opts = append(opts, contracts.WithVelocity(byte(c.Velocity)))
	}
	return opts
}
