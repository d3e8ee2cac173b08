package bed

import (
	"bufio"
	"io"
)

// Read decodes a packed genotype matrix from r. The matrix dimensions come
// from the label slices, which are attached to the result as is.
func Read(r io.Reader, subjects, markers []string) (*Matrix, error) {
	header := make([]byte, HeaderSize)
	if n, err := io.ReadFull(r, header); err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, &FormatError{Header: header[:n]}
	} else if err != nil {
		return nil, err
	}
	if header[0] != MagicNumber[0] || header[1] != MagicNumber[1] {
		return nil, &FormatError{Header: header}
	}
	orientation := OrientationFromFlag(header[2])

	m := NewMatrix(subjects, markers)
	if len(m.Codes) == 0 {
		return m, nil
	}

	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	if err := decodeBody(newPairReader(br), m, orientation); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeBody(pr *pairReader, m *Matrix, o Orientation) error {
	t := newTraversal(m.NSubjects(), m.NMarkers(), o)

	decoded := 0
	for outer := 0; outer < t.outer; outer++ {
		for inner := 0; inner < t.inner; inner++ {
			pair, err := pr.ReadPair()
			if err == io.EOF {
				return &UnexpectedEOFError{Decoded: decoded, Expected: len(m.Codes)}
			} else if err != nil {
				return err
			}
			m.Codes[t.index(outer, inner)] = uint8(DecodeRaw(pair))
			decoded++
		}
		pr.Align()
	}

	return nil
}
