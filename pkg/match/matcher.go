/*
Package match implements token-pattern matching over annotated documents.

A pattern is an ordered list of attribute slots, each optionally carrying an
arity operator: ? (zero or one), * (zero or more), + (one or more) and
! (the token at this position must not match; consumes nothing). Matching
prefers the longest span when several lengths are possible for one start.
*/
package match

import (
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/rephrase/pkg/rules"
	"github.com/bastiangx/rephrase/pkg/token"
)

// Span is one accepted match over a document's token indices, end exclusive.
type Span struct {
	Start int
	End   int
}

var regexCache = sync.Map{}

func compiled(expr string) *regexp.Regexp {
	if cached, ok := regexCache.Load(expr); ok {
		return cached.(*regexp.Regexp)
	}
	// rule regexes are matched case-insensitively, mirroring how the
	// suggestion rewrite consumes them
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		log.Errorf("Invalid pattern regex %q: %v", expr, err)
		regexCache.Store(expr, (*regexp.Regexp)(nil))
		return nil
	}
	regexCache.Store(expr, re)
	return re
}

func matchString(sm *rules.StringMatch, value string) bool {
	if sm == nil {
		return true
	}
	if sm.Regex != "" {
		re := compiled(sm.Regex)
		return re != nil && re.MatchString(value)
	}
	if len(sm.In) > 0 {
		for _, s := range sm.In {
			if s == value {
				return true
			}
		}
		return false
	}
	if len(sm.NotIn) > 0 {
		for _, s := range sm.NotIn {
			if s == value {
				return false
			}
		}
		return true
	}
	return sm.Equals == value
}

// tokenMatches checks the attribute predicates of one slot against one
// token, ignoring the arity operator.
func tokenMatches(slot rules.PatternSlot, tok token.Token) bool {
	if !matchString(slot.Text, tok.Text) {
		return false
	}
	if !matchString(slot.Lower, strings.ToLower(tok.Text)) {
		return false
	}
	if !matchString(slot.Lemma, tok.Lemma) {
		return false
	}
	if !matchString(slot.POS, tok.POS) {
		return false
	}
	if !matchString(slot.Tag, tok.Tag) {
		return false
	}
	if !matchString(slot.Dep, tok.Dep) {
		return false
	}
	if slot.IsPunct != nil && *slot.IsPunct != tok.IsPunct {
		return false
	}
	return true
}

// matchFrom returns the largest token index reachable by matching
// pattern[pi:] starting at toks[ti], or -1 when no match exists.
// When anchorEnd is set, only matches consuming every remaining token count.
func matchFrom(toks []token.Token, pattern []rules.PatternSlot, ti, pi int, anchorEnd bool) int {
	if pi == len(pattern) {
		if anchorEnd && ti != len(toks) {
			return -1
		}
		return ti
	}
	slot := pattern[pi]
	switch slot.Op {
	case rules.OpNegate:
		// negative lookahead: the token here must not satisfy the slot
		if ti < len(toks) && tokenMatches(slot, toks[ti]) {
			return -1
		}
		return matchFrom(toks, pattern, ti, pi+1, anchorEnd)
	case rules.OpOptional:
		best := -1
		if ti < len(toks) && tokenMatches(slot, toks[ti]) {
			best = matchFrom(toks, pattern, ti+1, pi+1, anchorEnd)
		}
		if r := matchFrom(toks, pattern, ti, pi+1, anchorEnd); r > best {
			best = r
		}
		return best
	case rules.OpZeroOrMore, rules.OpOneOrMore:
		run := 0
		for ti+run < len(toks) && tokenMatches(slot, toks[ti+run]) {
			run++
		}
		minRun := 0
		if slot.Op == rules.OpOneOrMore {
			minRun = 1
		}
		best := -1
		// greedy first: longer consumption wins ties on total length
		for k := run; k >= minRun; k-- {
			if r := matchFrom(toks, pattern, ti+k, pi+1, anchorEnd); r > best {
				best = r
			}
		}
		return best
	default:
		if ti < len(toks) && tokenMatches(slot, toks[ti]) {
			return matchFrom(toks, pattern, ti+1, pi+1, anchorEnd)
		}
		return -1
	}
}

// Find scans every start position and reports the longest match per start.
// Zero-length matches (all-droppable patterns) are not reported.
func Find(doc *token.Doc, pattern []rules.PatternSlot) []Span {
	toks := doc.Tokens()
	var spans []Span
	for start := 0; start < len(toks); start++ {
		end := matchFrom(toks, pattern, start, 0, false)
		if end > start {
			spans = append(spans, Span{Start: start, End: end})
		}
	}
	return spans
}

// MatchesSpan reports whether pattern matches the token slice exactly,
// consuming every token.
func MatchesSpan(toks []token.Token, pattern []rules.PatternSlot) bool {
	return matchFrom(toks, pattern, 0, 0, true) >= 0
}
