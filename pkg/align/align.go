/*
Package align recovers the correspondence between a matched token span and
the slots of the pattern that matched it.

Variable-arity slots (?, *, +, !) make that correspondence ambiguous: a
slot may have consumed zero, one or several of the span's tokens. Alignment
re-runs the matcher against restricted and cropped pattern variants to
resolve the ambiguity, trying the cheapest case first.
*/
package align

import (
	"github.com/charmbracelet/log"

	"github.com/bastiangx/rephrase/pkg/match"
	"github.com/bastiangx/rephrase/pkg/rules"
	"github.com/bastiangx/rephrase/pkg/token"
)

// PatternRefs maps each pattern slot index to the span token indices the
// slot consumed, in increasing order. Slots that consumed nothing map to an
// empty list. Token indices are relative to the span start.
type PatternRefs map[int][]int

// Tokens returns the consumed token indices for slot idx, resolving a
// negative idx from the end of the pattern. The second result is false when
// idx is out of range.
func (pr PatternRefs) Tokens(idx, patternLen int) ([]int, bool) {
	if idx < 0 {
		idx = patternLen + idx
	}
	toks, ok := pr[idx]
	return toks, ok
}

// Align computes the slot-to-token mapping for a span accepted by pattern.
//
// Case A: no arity operators and matching lengths: identity, O(1).
// Case B: arity present but every slot consumed at most one token. Detect
// which droppable slots were skipped by forcing each to match at least
// once, then lay out the identity over the remaining slots.
// Case C: multi-token slots. Walk the span left to right, assigning each
// token to the earliest slot, at or after the previous token's slot, that
// can consume it while the cropped pattern still matches the remaining
// span. This recovers the matcher's own greedy parse; when several slots
// could take a token, the earliest such slot wins (documented tie-break).
func Align(spanTokens []token.Token, pattern []rules.PatternSlot) PatternRefs {
	hasOp := false
	for _, slot := range pattern {
		if slot.Op != rules.OpNone {
			hasOp = true
			break
		}
	}
	if !hasOp && len(spanTokens) == len(pattern) {
		refs := make(PatternRefs, len(pattern))
		for i := range pattern {
			refs[i] = []int{i}
		}
		return refs
	}

	skipped := detectSkipped(spanTokens, pattern)
	if len(spanTokens) == len(pattern)-len(skipped) {
		// every surviving slot consumed exactly one token
		refs := make(PatternRefs, len(pattern))
		next := 0
		for i := range pattern {
			if skipped[i] {
				refs[i] = []int{}
				continue
			}
			refs[i] = []int{next}
			next++
		}
		return refs
	}

	return alignCropped(spanTokens, pattern)
}

// detectSkipped reports which droppable slots did not participate in the
// match: for each one, the slot is forced to consume at least one token and
// the span is re-matched in isolation; failure means the slot was skipped.
// Negated slots never consume tokens and are always skipped.
func detectSkipped(spanTokens []token.Token, pattern []rules.PatternSlot) map[int]bool {
	skipped := map[int]bool{}
	for i, slot := range pattern {
		if !slot.Droppable() {
			continue
		}
		if slot.Op == rules.OpNegate {
			skipped[i] = true
			continue
		}
		forced := make([]rules.PatternSlot, len(pattern))
		copy(forced, pattern)
		if slot.Op == rules.OpOptional {
			forced[i].Op = rules.OpNone
		} else {
			forced[i].Op = rules.OpOneOrMore
		}
		if !match.MatchesSpan(spanTokens, forced) {
			skipped[i] = true
		}
	}
	return skipped
}

// alignCropped is the general case. Slot assignment is monotonic: token j
// may only land in the previous token's slot (when that slot is multi
// token) or a later one. A candidate slot must consume the token itself,
// so its crop is re-matched with the slot forced to take at least one
// token, and the cropped pattern must still account for the whole rest of
// the span. Successive tokens claimed by the same slot accumulate, which
// is how multi-token * and + slots come out as ranges.
func alignCropped(spanTokens []token.Token, pattern []rules.PatternSlot) PatternRefs {
	refs := make(PatternRefs, len(pattern))
	for i := range pattern {
		refs[i] = []int{}
	}
	next := 0
	for j := range spanTokens {
		assigned := false
		for k := next; k < len(pattern); k++ {
			if pattern[k].Op == rules.OpNegate {
				continue
			}
			forced := make([]rules.PatternSlot, len(pattern)-k)
			copy(forced, pattern[k:])
			switch forced[0].Op {
			case rules.OpOptional:
				forced[0].Op = rules.OpNone
			case rules.OpZeroOrMore:
				forced[0].Op = rules.OpOneOrMore
			}
			if !match.MatchesSpan(spanTokens[j:], forced) {
				continue
			}
			refs[k] = append(refs[k], j)
			if pattern[k].MultiToken() {
				next = k
			} else {
				next = k + 1
			}
			assigned = true
			break
		}
		if !assigned {
			// should not happen for a genuinely accepted match; the token
			// is excluded and downstream treats the mapping defensively
			log.Warnf("Alignment could not place span token %d", j)
		}
	}
	return refs
}
