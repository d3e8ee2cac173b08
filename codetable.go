package bed

import (
	"errors"
	"fmt"
)

// Genotype is an in-memory genotype code. Values above HomozygousB are
// uncertain calls whose meaning is only available through a Resolver.
type Genotype uint8

const (
	Missing Genotype = iota
	HomozygousA
	Heterozygous
	HomozygousB
)

// ErrInvalidCode is returned when an uncertain code is handed to the 2-bit
// encoder.
var ErrInvalidCode = errors.New("uncertain genotype code cannot be stored in a .bed file")

// rawToGenotype is indexed by the 2-bit on-disk value. 0b01 is PLINK's
// missing call, so the mapping swaps 0 and 1 and is its own inverse.
var rawToGenotype = [4]Genotype{HomozygousA, Missing, Heterozygous, HomozygousB}

var genotypeToRaw = [4]uint8{1, 0, 2, 3}

// DecodeRaw maps a 2-bit on-disk value to its genotype. Bits above the low
// pair are ignored.
func DecodeRaw(raw uint8) Genotype {
	return rawToGenotype[raw&0x03]
}

// EncodeRaw maps a canonical genotype to its 2-bit on-disk value.
func EncodeRaw(g Genotype) (uint8, error) {
	if !g.Certain() {
		return 0, fmt.Errorf("code %d: %w", uint8(g), ErrInvalidCode)
	}
	return genotypeToRaw[g], nil
}

// Certain reports whether g is one of the four canonical codes.
func (g Genotype) Certain() bool {
	return g <= HomozygousB
}

func (g Genotype) String() string {
	switch g {
	case Missing:
		return "Missing"
	case HomozygousA:
		return "HomozygousA"
	case Heterozygous:
		return "Heterozygous"
	case HomozygousB:
		return "HomozygousB"
	}

	return fmt.Sprintf("Uncertain(%d)", uint8(g))
}
