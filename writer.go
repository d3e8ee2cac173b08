package bed

import (
	"bufio"
	"io"
)

// Write encodes m to w in the given orientation. Every cell is checked
// before anything is written, so an uncertain code produces no output.
func Write(w io.Writer, m *Matrix, o Orientation) error {
	if err := checkEncodable(m, o); err != nil {
		return err
	}

	return writeChecked(w, m, o)
}

// writeChecked is Write for a matrix that already passed checkEncodable.
func writeChecked(w io.Writer, m *Matrix, o Orientation) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write([]byte{MagicNumber[0], MagicNumber[1], o.Flag()}); err != nil {
		return err
	}
	if err := encodeBody(newPairWriter(bw), m, o); err != nil {
		return err
	}

	return bw.Flush()
}

// checkEncodable returns the first cell, in file order, that cannot be
// stored.
func checkEncodable(m *Matrix, o Orientation) error {
	if err := m.Validate(); err != nil {
		return err
	}

	t := newTraversal(m.NSubjects(), m.NMarkers(), o)
	for outer := 0; outer < t.outer; outer++ {
		for inner := 0; inner < t.inner; inner++ {
			if code := m.Codes[t.index(outer, inner)]; !Genotype(code).Certain() {
				row, col := t.cell(outer, inner)
				return &UnsupportedCodeError{Row: row, Col: col, Code: code}
			}
		}
	}

	return nil
}

func encodeBody(pw *pairWriter, m *Matrix, o Orientation) error {
	t := newTraversal(m.NSubjects(), m.NMarkers(), o)

	for outer := 0; outer < t.outer; outer++ {
		for inner := 0; inner < t.inner; inner++ {
			code := m.Codes[t.index(outer, inner)]
			raw, err := EncodeRaw(Genotype(code))
			if err != nil {
				row, col := t.cell(outer, inner)
				return &UnsupportedCodeError{Row: row, Col: col, Code: code}
			}
			if err := pw.WritePair(raw); err != nil {
				return err
			}
		}
		if err := pw.Align(); err != nil {
			return err
		}
	}

	return nil
}

// BodySize is the number of body bytes, excluding the header, that a
// nSubjects x nMarkers matrix occupies in orientation o.
func BodySize(nSubjects, nMarkers int, o Orientation) int64 {
	t := newTraversal(nSubjects, nMarkers, o)
	return int64(t.outer) * int64(t.lineBytes())
}
