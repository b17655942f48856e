package suggest

// Select trims a best-first candidate list with greedy max-count
// elimination. Each accepted candidate evicts from the remainder every
// near-duplicate that differs from it only at a slot whose cap is already
// spent, so the single best-ranked representative of each distinct-enough
// combination survives. Input order is preserved.
func Select(candidates []Candidate) []Candidate {
	chosen := make([]Candidate, 0, len(candidates))
	rest := append([]Candidate(nil), candidates...)

	for len(rest) > 0 {
		c := rest[0]
		rest = rest[1:]
		chosen = append(chosen, c)

		for i, s := range c {
			switch {
			case s.MaxCount <= 0:
				continue
			case s.MaxCount == 1:
				rest = dropEqualExcept(rest, c, i)
			default:
				used := 0
				for _, prior := range chosen {
					if equalExceptNth(c, prior, i) {
						used++
					}
				}
				if used >= s.MaxCount {
					rest = dropEqualExcept(rest, c, i)
				}
			}
		}
	}
	return chosen
}

func dropEqualExcept(rest []Candidate, c Candidate, n int) []Candidate {
	kept := rest[:0]
	for _, r := range rest {
		if !equalExceptNth(c, r, n) {
			kept = append(kept, r)
		}
	}
	return kept
}

// equalExceptNth reports whether two candidates are the same combination up
// to slot n. Candidates from different templates, or of different lengths,
// never compare equal.
func equalExceptNth(a, b Candidate, n int) bool {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return false
	}
	if a[0].TemplateIndex != b[0].TemplateIndex {
		return false
	}
	for i := range a {
		if i == n {
			continue
		}
		if a[i].Text != b[i].Text {
			return false
		}
	}
	return true
}
