package otosink

import (
	"bytes"
	"testing"

	"github.com/leandrodaf/tone/internal/sink/linebuf"
)

func TestUnsignedReader(t *testing.T) {
	line := linebuf.New(8)
	line.Write([]byte{0x00, 0x7F, 0x80, 0xFF})

	p := make([]byte, 6)
	n, err := (&unsignedReader{line: line}).Read(p)
	if err != nil || n != len(p) {
		t.Fatalf("Read = %d, %v", n, err)
	}
	// silence, +127, -128, -1, then padded silence
	want := []byte{0x80, 0xFF, 0x00, 0x7F, 0x80, 0x80}
	if !bytes.Equal(p, want) {
		t.Fatalf("p = %x, want %x", p, want)
	}
}
