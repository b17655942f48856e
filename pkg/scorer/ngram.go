package scorer

import (
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/rephrase/pkg/match"
	"github.com/bastiangx/rephrase/pkg/suggest"
	"github.com/bastiangx/rephrase/pkg/token"
)

// Ngram ranks hypotheses by bigram perplexity. Probs maps a lowercased
// "first second" word pair to its log10 probability; pairs not in the
// table get the unseen penalty.
type Ngram struct {
	probs  map[string]float64
	unseen float64
}

// NewNgram builds a bigram scorer. unseen is the log10 probability charged
// for pairs missing from the table, typically well below every table
// entry.
func NewNgram(probs map[string]float64, unseen float64) *Ngram {
	return &Ngram{probs: probs, unseen: unseen}
}

// Score returns the perplexity of text under the bigram table. Texts under
// two words cannot be scored and get the worst possible value.
func (n *Ngram) Score(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) < 2 {
		log.Warnf("scorer received %d words, expected at least 2", len(words))
		return math.Inf(1)
	}
	logProb := 0.0
	for i := 0; i+1 < len(words); i++ {
		pair := words[i] + " " + words[i+1]
		if p, ok := n.probs[pair]; ok {
			logProb += p
		} else {
			logProb += n.unseen
		}
	}
	return math.Pow(10, -logProb/float64(len(words)))
}

func (n *Ngram) SortCandidates(doc *token.Doc, span match.Span, candidates []suggest.Candidate) []suggest.Candidate {
	return SortBy(doc, span, candidates, n.Score)
}
