package waveform

import (
	"math"
	"math/cmplx"

	"github.com/leandrodaf/tone/sdk/contracts"
	"github.com/maddyblue/go-dsp/fft"
)

// silenceRMS is the normalized RMS level under which a window counts as a rest.
const silenceRMS = 0.02

// DominantFrequency returns the frequency, in Hz, of the strongest bin of the
// spectrum of samples (normalized to [-1, 1]).
func DominantFrequency(samples []float64, sampleRate int) float64 {
	if len(samples) < 2 {
		return 0
	}
	spectrum := fft.FFTReal(samples)
	half := len(spectrum) / 2

	best, bestMag := 0, 0.0
	for i := 1; i <= half; i++ {
		if mag := cmplx.Abs(spectrum[i]); mag > bestMag {
			best, bestMag = i, mag
		}
	}
	return float64(best) * float64(sampleRate) / float64(len(samples))
}

// RMS returns the root mean square of samples.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// Normalize converts 8-bit signed samples to floats in [-1, 1].
func Normalize(buf []byte) []float64 {
	out := make([]float64, len(buf))
	for i, b := range buf {
		out[i] = float64(int8(b)) / 128
	}
	return out
}

// Detect returns the pitch heard in samples: Rest for near silence, otherwise the
// pitch closest to the dominant frequency.
func Detect(samples []float64, sampleRate int) contracts.Pitch {
	if RMS(samples) < silenceRMS {
		return contracts.Rest
	}
	p, _ := contracts.NearestPitch(DominantFrequency(samples, sampleRate))
	return p
}

// Segment is a run of consecutive windows that detected the same pitch.
type Segment struct {
	Pitch   contracts.Pitch
	Start   int // first sample
	Samples int
}

// Transcribe splits samples into windows of the given size and collapses
// consecutive windows of the same pitch into segments.
func Transcribe(samples []float64, sampleRate, window int) []Segment {
	if window <= 0 {
		return nil
	}
	var out []Segment
	for start := 0; start+window <= len(samples); start += window {
		p := Detect(samples[start:start+window], sampleRate)
		if n := len(out); n > 0 && out[n-1].Pitch == p {
			out[n-1].Samples += window
			continue
		}
		out = append(out, Segment{Pitch: p, Start: start, Samples: window})
	}
	return out
}
