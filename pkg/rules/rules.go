/*
Package rules holds the rule definitions the engine matches and rewrites
with: token patterns, suggestion templates, match hooks and test blocks.

Rule files are JSON or YAML mappings from rule name to definition. Anything
beyond the known fields is kept as typed extra properties and surfaced on
matched spans, defaulted per rule set at load time.
*/
package rules

// Valid arity operators for a pattern slot.
const (
	OpNone       = ""
	OpOptional   = "?"
	OpZeroOrMore = "*"
	OpOneOrMore  = "+"
	OpNegate     = "!"
)

// Case operators for a suggestion item.
const (
	CaseLower = "LOWER"
	CaseTitle = "TITLE"
	CaseUpper = "UPPER"
)

// InflectAll requests every known surface form of an option.
const InflectAll = "ALL"

// StringMatch is one attribute predicate of a pattern slot: an exact value,
// a choice set, an exclusion set, or a regular expression. At most one of
// the fields is set.
type StringMatch struct {
	Equals string
	In     []string
	NotIn  []string
	Regex  string
}

// PatternSlot is one element of a rule's token pattern. Attribute fields
// are nil when the slot does not constrain that attribute. TemplateID links
// the slot to suggestion items that copy its matched token's inflection;
// zero means unset.
type PatternSlot struct {
	Text       *StringMatch
	Lower      *StringMatch
	Lemma      *StringMatch
	POS        *StringMatch
	Tag        *StringMatch
	Dep        *StringMatch
	IsPunct    *bool
	Op         string
	TemplateID int
}

// Droppable reports whether the slot may legitimately consume zero tokens.
func (s PatternSlot) Droppable() bool {
	return s.Op == OpOptional || s.Op == OpZeroOrMore || s.Op == OpNegate
}

// MultiToken reports whether the slot may consume more than one token.
func (s PatternSlot) MultiToken() bool {
	return s.Op == OpZeroOrMore || s.Op == OpOneOrMore
}

// SuggestionItem is one slot of a suggestion template. Exactly one of Text,
// TextIn and PatternRef is set; the rest are optional modifiers applied in
// resolution order (regex rewrite, suffix, inflection, case).
type SuggestionItem struct {
	Text           *string
	TextIn         []string
	PatternRef     *int
	Inflection     string
	FromTemplateID int
	Op             string
	MaxCount       int
	Regex          string
	Suffix         string
}

// Hook names a match predicate with its arguments. MatchIf controls the
// accept polarity: a match is kept only when the predicate result equals
// MatchIf (false by default, mirroring "discard when the predicate holds").
type Hook struct {
	Name    string
	Args    OneOrMany
	MatchIf bool
}

// TestBlock carries the example sentences a rule must and must not fire on.
type TestBlock struct {
	Positive []string
	Negative []string
}

// Rule is one named correction rule.
type Rule struct {
	Name        string
	Patterns    []PatternSlot
	Suggestions [][]SuggestionItem
	Hooks       []Hook
	Test        TestBlock
	Description string
	Category    string
	Comment     string
	Extra       map[string]Value
}

// TemplateSlotIndex returns the index of the first pattern slot tagged with
// the given template id, or -1 when absent.
func (r *Rule) TemplateSlotIndex(templateID int) int {
	for i, p := range r.Patterns {
		if p.TemplateID == templateID && templateID != 0 {
			return i
		}
	}
	return -1
}
