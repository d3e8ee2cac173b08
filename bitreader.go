package bed

import (
	"io"
)

// pairReader yields 2-bit groups from a byte stream, least-significant pair
// first, four per byte.
type pairReader struct {
	reader io.ByteReader
	byte   byte
	left   byte

	errCache error
}

func newPairReader(r io.ByteReader) *pairReader {
	return &pairReader{r, 0, 0, nil}
}

func (r *pairReader) ReadPair() (uint8, error) {
	if r.left == 0 {
		if r.byte, r.errCache = r.reader.ReadByte(); r.errCache != nil {
			return 0, r.errCache
		}
		r.left = 4
	}
	pair := r.byte & 0x03
	r.byte >>= 2
	r.left--
	return pair, nil
}

// Align discards whatever remains of the current byte so that the next
// ReadPair starts on a fresh one.
func (r *pairReader) Align() {
	r.left = 0
}
