package bed

// ApplySexFilter returns a copy of m in which calls that are impossible for
// a hemizygous (male, X-linked) subject are set to Missing. female[i]
// classifies subject i. A heterozygous call is always cleared; an uncertain
// call is cleared when res gives it any heterozygous probability. A nil res
// means DefaultResolver. m itself is never modified.
func ApplySexFilter(m *Matrix, female []bool, res Resolver) (*Matrix, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(female) != m.NSubjects() {
		return nil, &InvalidArgumentError{What: "sex vector", Expected: m.NSubjects(), Actual: len(female)}
	}
	if res == nil {
		res = DefaultResolver
	}

	out := m.Clone()
	for j := 0; j < out.NMarkers(); j++ {
		column := out.Column(j)
		for i, code := range column {
			if female[i] || code == uint8(Missing) {
				continue
			}
			if hemizygousConflict(code, res) {
				column[i] = uint8(Missing)
			}
		}
	}

	return out, nil
}

func hemizygousConflict(code uint8, res Resolver) bool {
	g := Genotype(code)
	if g.Certain() {
		return g == Heterozygous
	}
	_, pHet, _ := res.Posterior(code)
	return pHet > 0
}
