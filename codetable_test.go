package bed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRaw(t *testing.T) {
	assert.Equal(t, HomozygousA, DecodeRaw(0))
	assert.Equal(t, Missing, DecodeRaw(1))
	assert.Equal(t, Heterozygous, DecodeRaw(2))
	assert.Equal(t, HomozygousB, DecodeRaw(3))

	// Only the low pair matters.
	assert.Equal(t, Missing, DecodeRaw(0xFD))
}

func TestEncodeRawInvertsDecodeRaw(t *testing.T) {
	for raw := uint8(0); raw < 4; raw++ {
		got, err := EncodeRaw(DecodeRaw(raw))
		require.NoError(t, err)
		assert.Equal(t, raw, got)
	}
}

func TestEncodeRawRejectsUncertain(t *testing.T) {
	for _, g := range []Genotype{4, 100, 253, 255} {
		_, err := EncodeRaw(g)
		assert.True(t, errors.Is(err, ErrInvalidCode), "code %d", g)
	}
}

func TestGenotypeString(t *testing.T) {
	assert.Equal(t, "Heterozygous", Heterozygous.String())
	assert.Equal(t, "Uncertain(17)", Genotype(17).String())
}
