/*
Package scorer ranks replacement candidates by splicing each one into the
original sentence and scoring the full hypothesis. Lower scores sort first.

The default scorer is a stable identity sort so the engine behaves
deterministically without a language model; Ngram ranks by perplexity over
a caller-supplied bigram table.
*/
package scorer

import (
	"sort"
	"strings"

	"github.com/bastiangx/rephrase/pkg/match"
	"github.com/bastiangx/rephrase/pkg/suggest"
	"github.com/bastiangx/rephrase/pkg/token"
)

// Scorer is the pluggable ranking interface. Score returns a value where
// lower is better; SortCandidates orders candidates best-first for one
// matched span.
type Scorer interface {
	Score(text string) float64
	SortCandidates(doc *token.Doc, span match.Span, candidates []suggest.Candidate) []suggest.Candidate
}

// Default scores everything equally and keeps the input order.
type Default struct{}

func (Default) Score(string) float64 { return 0 }

func (Default) SortCandidates(_ *token.Doc, _ match.Span, candidates []suggest.Candidate) []suggest.Candidate {
	return candidates
}

// Hypothesis splices a candidate's joined text into the sentence at the
// span boundaries.
func Hypothesis(doc *token.Doc, span match.Span, c suggest.Candidate) string {
	parts := make([]string, 0, 3)
	if before := doc.TextBefore(span.Start); before != "" {
		parts = append(parts, strings.TrimSpace(before))
	}
	parts = append(parts, c.Join())
	if after := doc.TextAfter(span.End); after != "" {
		parts = append(parts, strings.TrimSpace(after))
	}
	return strings.Join(parts, " ")
}

// SortBy is the shared sort loop: score every candidate's hypothesis with
// score and return them ascending, ties keeping input order.
func SortBy(doc *token.Doc, span match.Span, candidates []suggest.Candidate, score func(string) float64) []suggest.Candidate {
	if len(candidates) < 2 {
		return candidates
	}
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = score(Hypothesis(doc, span, c))
	}
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})
	out := make([]suggest.Candidate, len(candidates))
	for i, idx := range order {
		out[i] = candidates[idx]
	}
	return out
}
