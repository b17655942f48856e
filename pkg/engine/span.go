package engine

import (
	"github.com/bastiangx/rephrase/pkg/rules"
	"github.com/bastiangx/rephrase/pkg/suggest"
	"github.com/bastiangx/rephrase/pkg/token"
)

// Span is one rule match over a document, carrying the rule's metadata and
// the replacement candidates as they move through the pipeline. Candidates
// hold the structured per-slot form; Suggestions is filled by the joiner
// stage with the final flat strings.
//
// Extra carries any rule-definition fields beyond the known ones, typed
// and defaulted at rule-set load time.
type Span struct {
	Doc   *token.Doc
	Start int
	End   int

	RuleName    string
	Description string
	Category    string
	Comment     string

	Candidates  []suggest.Candidate
	Suggestions []string
	Extra       map[string]rules.Value
}

// Text returns the matched source text.
func (s *Span) Text() string {
	return s.Doc.Slice(s.Start, s.End)
}

// Len returns the number of tokens the span covers.
func (s *Span) Len() int { return s.End - s.Start }
