package bed

import (
	"fmt"
	"io"

	"github.com/carbocation/genomisc"
	"github.com/carbocation/pfx"
)

// Fileset is a PLINK binary fileset: prefix.bed, prefix.bim and prefix.fam.
type Fileset struct {
	Subjects []Subject
	Markers  []genomisc.BIMRow
	Matrix   *Matrix
}

// ReadFileset loads prefix.fam and prefix.bim for the labels, then decodes
// prefix.bed against them.
func ReadFileset(prefix string) (*Fileset, error) {
	subjects, err := ReadFam(prefix + ".fam")
	if err != nil {
		return nil, err
	}

	markers, err := ReadBim(prefix + ".bim")
	if err != nil {
		return nil, err
	}

	m, err := ReadFile(prefix+".bed", SubjectIDs(subjects), MarkerIDs(markers))
	if err != nil {
		return nil, err
	}

	return &Fileset{Subjects: subjects, Markers: markers, Matrix: m}, nil
}

// WriteFileset writes all three files under prefix. The .bed is written
// first so that an unsupported code leaves no files behind; if a label file
// then fails, the files already written are removed.
func WriteFileset(prefix string, fs *Fileset, o Orientation) error {
	if len(fs.Subjects) != fs.Matrix.NSubjects() {
		return &InvalidArgumentError{What: "subject list", Expected: fs.Matrix.NSubjects(), Actual: len(fs.Subjects)}
	}
	if len(fs.Markers) != fs.Matrix.NMarkers() {
		return &InvalidArgumentError{What: "marker list", Expected: fs.Matrix.NMarkers(), Actual: len(fs.Markers)}
	}

	if err := WriteFile(prefix+".bed", fs.Matrix, o); err != nil {
		return err
	}

	if err := writeTextFile(prefix+".bim", func(w io.Writer) error { return WriteBim(w, fs.Markers) }); err != nil {
		removePath(prefix + ".bed")
		return err
	}

	if err := writeTextFile(prefix+".fam", func(w io.Writer) error { return WriteFam(w, fs.Subjects) }); err != nil {
		removePath(prefix + ".bed")
		removePath(prefix + ".bim")
		return err
	}

	return nil
}

// SelectMarkers returns a fileset restricted to the markers at idx. The
// subjects are shared with fs.
func (fs *Fileset) SelectMarkers(idx []int) *Fileset {
	markers := make([]genomisc.BIMRow, len(idx))
	for k, j := range idx {
		markers[k] = fs.Markers[j]
	}

	return &Fileset{
		Subjects: fs.Subjects,
		Markers:  markers,
		Matrix:   fs.Matrix.SelectMarkers(idx),
	}
}

func writeTextFile(path string, fill func(io.Writer) error) (err error) {
	f, err := createOutput(path)
	if err != nil {
		return &FileOpenError{Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			f.Abort()
			return
		}
		if err = f.Close(); err != nil {
			err = pfx.Err(fmt.Errorf("%s: %w", path, err))
		}
	}()

	return fill(f)
}
