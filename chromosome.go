package bed

import "strings"

// Chromosome takes a PLINK chromosome code and returns its standard string
// translation. PLINK writes the sex chromosomes numerically in .bim files.
func Chromosome(chr string) string {
	chromosome := strings.ToUpper(strings.TrimPrefix(strings.TrimPrefix(chr, "chr"), "CHR"))
	switch chromosome {
	case "23":
		chromosome = "X"
	case "24":
		chromosome = "Y"
	case "25":
		chromosome = "XY"
	case "26", "M":
		chromosome = "MT"
	case "0":
		chromosome = "NA"
	default:
		chromosome = strings.TrimLeft(chromosome, "0")
		if chromosome == "" {
			chromosome = "NA"
		}
	}

	return chromosome
}

// IsHemizygous reports whether markers on chr are carried in a single copy
// by male subjects. The pseudo-autosomal XY region is diploid and is not.
func IsHemizygous(chr string) bool {
	return Chromosome(chr) == "X"
}
