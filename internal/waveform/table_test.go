package waveform

import (
	"bytes"
	"sync"
	"testing"

	"github.com/leandrodaf/tone/sdk/contracts"
)

func TestSampleLengthIsOneMeasure(t *testing.T) {
	table := NewTable()
	for p := contracts.Rest; int(p) < contracts.NumPitches; p++ {
		if got := len(table.Sample(p)); got != contracts.SampleRate {
			t.Errorf("%s: len = %d, want %d", p, got, contracts.SampleRate)
		}
	}
}

func TestRestIsSilent(t *testing.T) {
	for i, b := range NewTable().Sample(contracts.Rest) {
		if b != 0 {
			t.Fatalf("rest sample %d = %d, want 0", i, b)
		}
	}
}

func TestSampleIsDeterministic(t *testing.T) {
	a := NewTable().Sample(contracts.E4)
	b := NewTable().Sample(contracts.E4)
	if !bytes.Equal(a, b) {
		t.Fatal("two tables synthesized different E4 buffers")
	}
	if bytes.Equal(a, NewTable().Sample(contracts.F4)) {
		t.Fatal("E4 and F4 buffers are identical")
	}
}

func TestSampleIsMemoized(t *testing.T) {
	table := NewTable()

	var wg sync.WaitGroup
	bufs := make([][]byte, 16)
	for i := range bufs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bufs[i] = table.Sample(contracts.G4)
		}(i)
	}
	wg.Wait()

	for i := range bufs {
		if &bufs[i][0] != &bufs[0][0] {
			t.Fatalf("goroutine %d got a different buffer", i)
		}
	}
}

func TestSynthesizeStaysInRange(t *testing.T) {
	buf := Synthesize(contracts.A5, contracts.SampleRate, 4096)
	var peak int8
	for _, b := range buf {
		if v := int8(b); v > peak {
			peak = v
		}
	}
	if peak != contracts.MaxVolume && peak != contracts.MaxVolume-1 {
		t.Errorf("peak = %d, want close to %v", peak, contracts.MaxVolume)
	}
}

func TestSpacer(t *testing.T) {
	spacer := Default().Spacer()
	if len(spacer) != contracts.SpacerBytes {
		t.Fatalf("len = %d, want %d", len(spacer), contracts.SpacerBytes)
	}
	if !bytes.Equal(spacer, make([]byte, contracts.SpacerBytes)) {
		t.Fatal("spacer is not silent")
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default returned two tables")
	}
}
