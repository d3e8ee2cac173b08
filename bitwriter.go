package bed

import (
	"io"
)

// pairWriter packs 2-bit groups into bytes, least-significant pair first.
type pairWriter struct {
	writer io.ByteWriter
	byte   byte
	part   byte
}

func newPairWriter(w io.ByteWriter) *pairWriter {
	return &pairWriter{writer: w}
}

func (w *pairWriter) WritePair(pair uint8) error {
	w.byte |= (pair & 0x03) << (2 * w.part)
	w.part++
	if w.part == 4 {
		return w.Align()
	}
	return nil
}

// Align emits a partially filled byte, leaving its unused high bits zero.
// It is a no-op on a byte boundary.
func (w *pairWriter) Align() error {
	if w.part == 0 {
		return nil
	}
	err := w.writer.WriteByte(w.byte)
	w.byte, w.part = 0, 0
	return err
}
