package bed

// MarkerSummary counts the calls of one marker by genotype.
type MarkerSummary struct {
	Marker       string `db:"marker"`
	Chromosome   string `db:"chromosome"`
	Missing      int    `db:"missing"`
	HomozygousA  int    `db:"homozygous_a"`
	Heterozygous int    `db:"heterozygous"`
	HomozygousB  int    `db:"homozygous_b"`
	Uncertain    int    `db:"uncertain"`
}

// Called is the number of non-missing calls.
func (s MarkerSummary) Called() int {
	return s.HomozygousA + s.Heterozygous + s.HomozygousB + s.Uncertain
}

// CallRate is the fraction of subjects with a non-missing call.
func (s MarkerSummary) CallRate() float64 {
	total := s.Called() + s.Missing
	if total == 0 {
		return 0
	}
	return float64(s.Called()) / float64(total)
}

// Summarize counts the calls of every marker in m.
func Summarize(m *Matrix) []MarkerSummary {
	out := make([]MarkerSummary, m.NMarkers())
	for j := range out {
		s := &out[j]
		s.Marker = m.Markers[j]
		for _, code := range m.Column(j) {
			switch Genotype(code) {
			case Missing:
				s.Missing++
			case HomozygousA:
				s.HomozygousA++
			case Heterozygous:
				s.Heterozygous++
			case HomozygousB:
				s.HomozygousB++
			default:
				s.Uncertain++
			}
		}
	}
	return out
}

// SummarizeFileset is Summarize with chromosomes taken from the .bim rows.
func SummarizeFileset(fs *Fileset) []MarkerSummary {
	out := Summarize(fs.Matrix)
	for j := range out {
		out[j].Chromosome = Chromosome(fs.Markers[j].Chromosome)
	}
	return out
}
