package bed

// Matrix is a dense genotype matrix with one row per subject and one column
// per marker. Codes is column-major: the subject index varies fastest.
type Matrix struct {
	Subjects []string
	Markers  []string
	Codes    []uint8
}

// NewMatrix allocates a zeroed (all Missing) matrix sized to the labels.
func NewMatrix(subjects, markers []string) *Matrix {
	return &Matrix{
		Subjects: subjects,
		Markers:  markers,
		Codes:    make([]uint8, len(subjects)*len(markers)),
	}
}

func (m *Matrix) NSubjects() int { return len(m.Subjects) }

func (m *Matrix) NMarkers() int { return len(m.Markers) }

// At returns the code for subject i at marker j.
func (m *Matrix) At(i, j int) uint8 {
	return m.Codes[j*len(m.Subjects)+i]
}

func (m *Matrix) Set(i, j int, code uint8) {
	m.Codes[j*len(m.Subjects)+i] = code
}

// Column returns the calls of marker j. The slice aliases the matrix.
func (m *Matrix) Column(j int) []uint8 {
	n := len(m.Subjects)
	return m.Codes[j*n : (j+1)*n : (j+1)*n]
}

// Validate checks that the code slice matches the label dimensions.
func (m *Matrix) Validate() error {
	if want := len(m.Subjects) * len(m.Markers); len(m.Codes) != want {
		return &InvalidArgumentError{What: "genotype matrix", Expected: want, Actual: len(m.Codes)}
	}
	return nil
}

// Clone returns a deep copy. Label slices are copied too, so the result can
// be relabelled without affecting m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		Subjects: append([]string(nil), m.Subjects...),
		Markers:  append([]string(nil), m.Markers...),
		Codes:    make([]uint8, len(m.Codes)),
	}
	copy(out.Codes, m.Codes)
	return out
}

// SelectMarkers copies the columns listed in idx, in that order, into a new
// matrix.
func (m *Matrix) SelectMarkers(idx []int) *Matrix {
	markers := make([]string, len(idx))
	for k, j := range idx {
		markers[k] = m.Markers[j]
	}
	out := NewMatrix(append([]string(nil), m.Subjects...), markers)
	for k, j := range idx {
		copy(out.Column(k), m.Column(j))
	}
	return out
}
