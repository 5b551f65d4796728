// Package midiport sends MIDI events through PortMidi. The real client needs the
// C library and is compiled only with the portmidi build tag; otherwise a dummy
// client is used.
package midiport
