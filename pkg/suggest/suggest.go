/*
Package suggest turns the suggestion templates of a matched rule into
concrete replacement candidates.

A template is a list of items; the Resolver expands each item into a
variant slot (its surface options plus a repetition cap), the builder takes
the Cartesian product of the slots, and the selector trims the scored
product back down with greedy max-count elimination.
*/
package suggest

import "strings"

// Suggestion is one chosen option occupying one slot of a candidate.
// MaxCount is the repetition cap inherited from the slot, 0 meaning
// unconstrained. TemplateIndex tags which suggestion template of the rule
// the slot came from.
type Suggestion struct {
	Text          string
	MaxCount      int
	TemplateIndex int
}

// VariantSlot is one resolved template item: every surface option it can
// produce, with the shared cap and template tag.
type VariantSlot struct {
	Options       []string
	MaxCount      int
	TemplateIndex int
}

// Candidate is one fully resolved, not-yet-joined replacement: one
// Suggestion per slot, in template order.
type Candidate []Suggestion

// Join renders the candidate to its flat replacement text.
func (c Candidate) Join() string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}
