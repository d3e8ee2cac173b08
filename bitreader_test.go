package bed

import (
	"bytes"
	"io"
	"testing"
)

func TestPairReader(t *testing.T) {
	// 0b11_10_01_00 yields 0, 1, 2, 3
	data := []byte{0xE4, 0x1B}

	want := []uint8{0, 1, 2, 3, 3, 2, 1, 0}
	pr := newPairReader(bytes.NewBuffer(data))
	for i, w := range want {
		got, err := pr.ReadPair()
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Errorf("pair %d: got %d, expected %d", i, got, w)
		}
	}

	if _, err := pr.ReadPair(); err != io.EOF {
		t.Errorf("Got %v, expected io.EOF", err)
	}
}

func TestPairReaderAlign(t *testing.T) {
	data := []byte{0xFF, 0x02}

	pr := newPairReader(bytes.NewBuffer(data))
	if _, err := pr.ReadPair(); err != nil {
		t.Fatal(err)
	}
	pr.Align()

	got, err := pr.ReadPair()
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("Got %d, expected 2", got)
	}
}

func TestPairWriter(t *testing.T) {
	var buf bytes.Buffer
	pw := newPairWriter(&buf)

	for _, p := range []uint8{0, 1, 2, 3, 3} {
		if err := pw.WritePair(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := pw.Align(); err != nil {
		t.Fatal(err)
	}
	// A second Align on a boundary writes nothing.
	if err := pw.Align(); err != nil {
		t.Fatal(err)
	}

	if got, want := buf.Bytes(), []byte{0xE4, 0x03}; !bytes.Equal(got, want) {
		t.Errorf("Got %X, expected %X", got, want)
	}
}
