package bed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixLayout(t *testing.T) {
	m := NewMatrix(labels("id", 3), labels("rs", 2))
	m.Set(2, 1, 3)
	m.Set(0, 1, 1)

	assert.Equal(t, []uint8{0, 0, 0, 1, 0, 3}, m.Codes)
	assert.Equal(t, uint8(3), m.At(2, 1))
	assert.Equal(t, []uint8{1, 0, 3}, m.Column(1))
	assert.NoError(t, m.Validate())
}

func TestMatrixCloneIsDeep(t *testing.T) {
	m := smallMatrix()
	c := m.Clone()
	c.Set(0, 0, 3)
	c.Subjects[0] = "z"

	assert.Equal(t, uint8(1), m.At(0, 0))
	assert.Equal(t, "a", m.Subjects[0])
}

func TestSelectMarkers(t *testing.T) {
	m := smallMatrix()

	s := m.SelectMarkers([]int{1, 0})
	assert.Equal(t, []string{"rs2", "rs1"}, s.Markers)
	assert.Equal(t, []uint8{0, 1, 1, 1, 2, 3}, s.Codes)

	empty := m.SelectMarkers(nil)
	assert.Equal(t, 0, empty.NMarkers())
	assert.Empty(t, empty.Codes)
}
