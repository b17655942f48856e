package suggest

import "github.com/charmbracelet/log"

// Combine expands variant slots into the full Cartesian product of their
// options, in slot order with the last slot varying fastest. A slot with no
// options zeroes the whole template; a product larger than limit is dropped
// with a warning instead of being expanded, so one pathological template
// cannot exhaust memory.
func Combine(slots []VariantSlot, limit int) []Candidate {
	if len(slots) == 0 {
		return nil
	}
	count := 1
	for _, slot := range slots {
		count *= len(slot.Options)
		if count == 0 {
			return nil
		}
	}
	if limit > 0 && count > limit {
		log.Warnf("suggestion template expands to %d candidates, over the cap of %d, skipping", count, limit)
		return nil
	}

	candidates := make([]Candidate, 0, count)
	current := make(Candidate, len(slots))
	var walk func(i int)
	walk = func(i int) {
		if i == len(slots) {
			candidates = append(candidates, append(Candidate(nil), current...))
			return
		}
		slot := slots[i]
		for _, option := range slot.Options {
			current[i] = Suggestion{
				Text:          option,
				MaxCount:      slot.MaxCount,
				TemplateIndex: slot.TemplateIndex,
			}
			walk(i + 1)
		}
	}
	walk(0)
	return candidates
}
