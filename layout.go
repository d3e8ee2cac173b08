package bed

// Orientation is the physical storage order of the packed body, taken from
// the third header byte.
type Orientation uint8

const (
	// MarkerMajor stores each subject's calls for all markers contiguously
	// (PLINK's "individual-major" mode). Header byte 0x00.
	MarkerMajor Orientation = iota

	// SubjectMajor stores each marker's calls for all subjects contiguously
	// (PLINK's "SNP-major" mode, the default). Header byte 0x01.
	SubjectMajor
)

// OrientationFromFlag interprets the header orientation byte. Any nonzero
// value is subject-major.
func OrientationFromFlag(flag byte) Orientation {
	if flag != 0 {
		return SubjectMajor
	}
	return MarkerMajor
}

// Flag is the canonical header byte for o.
func (o Orientation) Flag() byte {
	if o == SubjectMajor {
		return 0x01
	}
	return 0x00
}

func (o Orientation) String() string {
	switch o {
	case MarkerMajor:
		return "MarkerMajor"
	case SubjectMajor:
		return "SubjectMajor"

	default:
		return "Illegal selection"
	}
}

// traversal describes the order in which cells of an nSubjects x nMarkers
// column-major matrix are visited in the packed body. The inner dimension is
// the packed one: every outer line starts on a fresh byte.
type traversal struct {
	outer, inner int
	nSubjects    int
	orientation  Orientation
}

func newTraversal(nSubjects, nMarkers int, o Orientation) traversal {
	t := traversal{nSubjects: nSubjects, orientation: o}
	if o == SubjectMajor {
		t.outer, t.inner = nMarkers, nSubjects
	} else {
		t.outer, t.inner = nSubjects, nMarkers
	}
	return t
}

// cell returns the (subject, marker) coordinates visited at outer line o,
// inner position i.
func (t traversal) cell(o, i int) (row, col int) {
	if t.orientation == SubjectMajor {
		return i, o
	}
	return o, i
}

// index returns the column-major offset of the cell visited at (o, i).
func (t traversal) index(o, i int) int {
	row, col := t.cell(o, i)
	return col*t.nSubjects + row
}

// lineBytes is the number of body bytes occupied by one outer line.
func (t traversal) lineBytes() int {
	return (t.inner + 3) / 4
}
