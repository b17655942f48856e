package engine

import (
	"sort"

	"github.com/bastiangx/rephrase/pkg/match"
	"github.com/bastiangx/rephrase/pkg/scorer"
	"github.com/bastiangx/rephrase/pkg/suggest"
)

// Default pipeline stage names.
const (
	StageSorter = "sorter"
	StageFilter = "filter"
	StageJoiner = "joiner"
)

// SorterStage ranks every span's candidates best-first with sc.
func SorterStage(sc scorer.Scorer) Stage {
	return Stage{
		Name: StageSorter,
		Run: func(spans []*Span) []*Span {
			for _, s := range spans {
				if len(s.Candidates) > 1 {
					s.Candidates = sc.SortCandidates(s.Doc, match.Span{Start: s.Start, End: s.End}, s.Candidates)
				}
			}
			return spans
		},
	}
}

// FilterStage applies greedy max-count elimination to every span's sorted
// candidates.
func FilterStage() Stage {
	return Stage{
		Name: StageFilter,
		Run: func(spans []*Span) []*Span {
			for _, s := range spans {
				s.Candidates = suggest.Select(s.Candidates)
			}
			return spans
		},
	}
}

// JoinerStage renders each span's candidates to flat suggestion strings.
func JoinerStage() Stage {
	return Stage{
		Name: StageJoiner,
		Run: func(spans []*Span) []*Span {
			for _, s := range spans {
				s.Suggestions = make([]string, len(s.Candidates))
				for i, c := range s.Candidates {
					s.Suggestions[i] = c.Join()
				}
			}
			return spans
		},
	}
}

// ZeroDistanceStage drops joined suggestions identical to the matched text,
// and spans left with no suggestions at all. Spans that never had any
// suggestions pass through untouched. Must run after the joiner.
func ZeroDistanceStage() Stage {
	return Stage{
		Name: "zero_distance",
		Run: func(spans []*Span) []*Span {
			kept := spans[:0]
			for _, s := range spans {
				if len(s.Suggestions) == 0 {
					kept = append(kept, s)
					continue
				}
				text := s.Text()
				var suggestions []string
				for _, sug := range s.Suggestions {
					if sug != text {
						suggestions = append(suggestions, sug)
					}
				}
				if len(suggestions) > 0 {
					s.Suggestions = suggestions
					kept = append(kept, s)
				}
			}
			return kept
		},
	}
}

// CategoryOverlapStage resolves overlapping spans within each category,
// keeping the longest span and breaking ties in favor of the earlier
// start. Spans of different categories never suppress each other.
func CategoryOverlapStage() Stage {
	return Stage{
		Name: "category_overlap",
		Run: func(spans []*Span) []*Span {
			groups := map[string][]*Span{}
			var order []string
			for _, s := range spans {
				if _, ok := groups[s.Category]; !ok {
					order = append(order, s.Category)
				}
				groups[s.Category] = append(groups[s.Category], s)
			}
			var out []*Span
			for _, cat := range order {
				out = append(out, filterOverlapping(groups[cat])...)
			}
			return out
		},
	}
}

// filterOverlapping keeps a maximal set of non-overlapping spans, longest
// first, earlier start on equal length. Output preserves document order.
func filterOverlapping(spans []*Span) []*Span {
	ranked := append([]*Span(nil), spans...)
	sort.SliceStable(ranked, func(a, b int) bool {
		la, lb := ranked[a].Len(), ranked[b].Len()
		if la != lb {
			return la > lb
		}
		return ranked[a].Start < ranked[b].Start
	})

	taken := map[int]bool{}
	chosen := map[*Span]bool{}
	for _, s := range ranked {
		overlaps := false
		for i := s.Start; i < s.End; i++ {
			if taken[i] {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		for i := s.Start; i < s.End; i++ {
			taken[i] = true
		}
		chosen[s] = true
	}

	var out []*Span
	for _, s := range spans {
		if chosen[s] {
			out = append(out, s)
		}
	}
	return out
}
