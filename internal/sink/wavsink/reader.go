package wavsink

import (
	"errors"
	"io"
	"os"

	wav "github.com/youpy/go-wav"
)

// Read decodes the first channel of the WAV file at path into samples in [-1, 1].
func Read(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	r := wav.NewReader(f)
	format, err := r.Format()
	if err != nil {
		return nil, 0, err
	}

	var out []float64
	for {
		samples, err := r.ReadSamples()
		for _, sample := range samples {
			out = append(out, r.FloatValue(sample, 0))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
	}
	return out, int(format.SampleRate), nil
}
