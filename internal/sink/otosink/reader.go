// Package otosink plays a performance on the system audio device through oto.
//
// Build with the headless tag to compile without a device backend; Open then
// always fails.
package otosink

import "github.com/leandrodaf/tone/internal/sink/linebuf"

// unsignedReader feeds oto from a line, converting signed samples to
// oto.FormatUnsignedInt8.
type unsignedReader struct {
	line *linebuf.Line
}

func (r *unsignedReader) Read(p []byte) (int, error) {
	n, err := r.line.Read(p)
	for i := range p[:n] {
		p[i] ^= 0x80
	}
	return n, err
}
