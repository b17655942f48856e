package suggest

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/rephrase/internal/utils"
	"github.com/bastiangx/rephrase/pkg/align"
	"github.com/bastiangx/rephrase/pkg/inflect"
	"github.com/bastiangx/rephrase/pkg/match"
	"github.com/bastiangx/rephrase/pkg/rules"
	"github.com/bastiangx/rephrase/pkg/token"
)

// articles that must never be offered as interchangeable options
var articles = []string{"a", "an", "the"}

// irregular plural pairs that slip past the shared-lemma check
var pluralPairs = [][]string{
	{"person", "people"},
	{"ox", "oxen"},
}

// Resolver expands suggestion template items into variant slots. The
// repetition cap of a slot is decided before inflection, on the raw option
// count, so an item that fans out under inflection still counts as one
// deliberate choice.
type Resolver struct {
	inflector       inflect.Service
	defaultMaxCount int
	filter          bool
}

// NewResolver builds a resolver. defaultMaxCount of 0 leaves the soft cap
// at the option count; filter enables the grammaticality heuristics that
// force a cap of 1 on option sets a user should not mix freely.
func NewResolver(inflector inflect.Service, defaultMaxCount int, filter bool) *Resolver {
	return &Resolver{
		inflector:       inflector,
		defaultMaxCount: defaultMaxCount,
		filter:          filter,
	}
}

// Resolve expands one suggestion template for one accepted match. Items
// that resolve to no options (a reference to a slot that consumed nothing)
// are dropped from the result rather than killing the template.
func (r *Resolver) Resolve(template []rules.SuggestionItem, doc *token.Doc, span match.Span,
	pattern []rules.PatternSlot, refs align.PatternRefs, templateIndex int) []VariantSlot {

	slots := make([]VariantSlot, 0, len(template))
	for _, item := range template {
		options := r.options(item, doc, span, pattern, refs)
		maxCount := r.maxCount(item, options)
		options = r.inflectOptions(item, options, doc, span, pattern, refs)
		options = applyCase(item, options)
		if len(options) == 0 {
			continue
		}
		slots = append(slots, VariantSlot{
			Options:       options,
			MaxCount:      maxCount,
			TemplateIndex: templateIndex,
		})
	}
	return slots
}

// options resolves the item's text source: a literal, a choice set, or a
// copy of the tokens a referenced pattern slot consumed.
func (r *Resolver) options(item rules.SuggestionItem, doc *token.Doc, span match.Span,
	pattern []rules.PatternSlot, refs align.PatternRefs) []string {

	switch {
	case item.Text != nil:
		return []string{*item.Text}
	case len(item.TextIn) > 0:
		return append([]string(nil), item.TextIn...)
	case item.PatternRef != nil:
		return r.referencedText(item, doc, span, pattern, refs)
	}
	return nil
}

func (r *Resolver) referencedText(item rules.SuggestionItem, doc *token.Doc, span match.Span,
	pattern []rules.PatternSlot, refs align.PatternRefs) []string {

	ref := *item.PatternRef
	toks, ok := refs.Tokens(ref, len(pattern))
	var text string
	if !ok {
		// alignment came back without this slot; degrade to direct
		// positional indexing
		log.Warnf("pattern ref %d unresolved for span %q, falling back to positional index", ref, doc.Slice(span.Start, span.End))
		var i int
		if ref >= 0 {
			i = span.Start + ref
		} else {
			i = span.End + ref
		}
		if i < 0 || i >= doc.Len() {
			return nil
		}
		text = doc.At(i).Text
	} else {
		if len(toks) == 0 {
			// the slot legitimately consumed nothing
			return nil
		}
		min, max := toks[0], toks[0]
		for _, t := range toks[1:] {
			if t < min {
				min = t
			}
			if t > max {
				max = t
			}
		}
		text = doc.Slice(span.Start+min, span.Start+max+1)
	}

	if item.Regex != "" {
		if rewritten, ok := rewrite(item, pattern, text); ok {
			text = rewritten
		}
	}
	if item.Suffix != "" {
		text += item.Suffix
	}
	return []string{text}
}

// rewrite substitutes the referenced pattern slot's own regex, replacing
// with the item's REGEX value, case-insensitively.
func rewrite(item rules.SuggestionItem, pattern []rules.PatternSlot, text string) (string, bool) {
	idx := *item.PatternRef
	if idx < 0 {
		idx = len(pattern) + idx
	}
	if idx < 0 || idx >= len(pattern) {
		return "", false
	}
	slot := pattern[idx]
	var expr string
	switch {
	case slot.Lower != nil && slot.Lower.Regex != "":
		expr = slot.Lower.Regex
	case slot.Text != nil && slot.Text.Regex != "":
		expr = slot.Text.Regex
	default:
		return "", false
	}
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		log.Warnf("bad rewrite regex %q: %v", expr, err)
		return "", false
	}
	return re.ReplaceAllString(text, item.Regex), true
}

// maxCount decides the slot's repetition cap. A hard MAX_COUNT on the item
// wins; otherwise the soft cap is the option count, clamped to the
// configured default. With filtering on, heuristics force the cap to 1
// whenever mixing the options freely would read as ungrammatical.
func (r *Resolver) maxCount(item rules.SuggestionItem, options []string) int {
	if item.MaxCount > 0 {
		return item.MaxCount
	}

	maxCount := len(options)
	if r.defaultMaxCount > 0 && r.defaultMaxCount < maxCount {
		maxCount = r.defaultMaxCount
	}
	if !r.filter {
		return maxCount
	}

	if len(options) == 0 {
		return 1
	}
	for _, o := range options {
		if !utils.IsAlpha(o) {
			return 1
		}
	}
	for _, o := range options {
		if utils.IsMultiWord(o) {
			return 1
		}
	}
	// non-tag inflection fans out into forms the cap cannot reason about
	if item.Inflection != "" && inflect.Type(item.Inflection) != inflect.TypeTag {
		return 1
	}

	if len(options) > 1 {
		if sharesLemma(r.inflector, options) {
			return 1
		}
		for _, a := range articles {
			if contains(options, a) {
				return 1
			}
		}
		for _, pair := range pluralPairs {
			if contains(options, pair[0]) && contains(options, pair[1]) {
				return 1
			}
		}
	}
	return maxCount
}

func sharesLemma(inflector inflect.Service, options []string) bool {
	seen := map[string]bool{}
	for _, o := range options {
		lemmas := inflector.Lemmas(o)
		for _, l := range lemmas {
			if seen[l] {
				return true
			}
		}
		for _, l := range lemmas {
			seen[l] = true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// inflectOptions applies the item's inflection request, flat-mapping the
// service results over the current options. An option the service cannot
// inflect passes through literally.
func (r *Resolver) inflectOptions(item rules.SuggestionItem, options []string, doc *token.Doc,
	span match.Span, pattern []rules.PatternSlot, refs align.PatternRefs) []string {

	switch {
	case item.Inflection != "":
		return r.flatMap(options, func(o string) []string {
			switch inflect.Type(item.Inflection) {
			case inflect.TypePOS:
				return r.inflector.InflectPOS(o, item.Inflection)
			case inflect.TypeAll:
				return r.inflector.AllForms(o)
			default:
				return r.inflector.Inflect(o, item.Inflection)
			}
		})
	case item.FromTemplateID != 0:
		return r.inflectFromTemplate(item, options, doc, span, pattern, refs)
	}
	return options
}

// inflectFromTemplate copies the inflectional form of the token matched by
// the pattern slot tagged with the item's template id.
func (r *Resolver) inflectFromTemplate(item rules.SuggestionItem, options []string, doc *token.Doc,
	span match.Span, pattern []rules.PatternSlot, refs align.PatternRefs) []string {

	slotIdx := -1
	for i, slot := range pattern {
		if slot.TemplateID == item.FromTemplateID {
			slotIdx = i
			break
		}
	}
	if slotIdx < 0 {
		return options
	}

	docIdx := slotIdx
	if toks, ok := refs.Tokens(slotIdx, len(pattern)); ok && len(toks) > 0 {
		docIdx = toks[0]
	} else {
		log.Warnf("template id %d unresolved for span %q, falling back to positional index", item.FromTemplateID, doc.Slice(span.Start, span.End))
	}
	i := span.Start + docIdx
	if i < 0 || i >= doc.Len() {
		return options
	}
	tag := doc.At(i).Tag
	return r.flatMap(options, func(o string) []string {
		return r.inflector.Inflect(o, tag)
	})
}

func (r *Resolver) flatMap(options []string, f func(string) []string) []string {
	var out []string
	for _, o := range options {
		forms := f(o)
		if len(forms) == 0 {
			out = append(out, o)
			continue
		}
		out = append(out, forms...)
	}
	return out
}

// applyCase folds every option per the item's case operator, last.
func applyCase(item rules.SuggestionItem, options []string) []string {
	var fold func(string) string
	switch item.Op {
	case rules.CaseLower:
		fold = strings.ToLower
	case rules.CaseTitle:
		fold = utils.TitleCase
	case rules.CaseUpper:
		fold = strings.ToUpper
	default:
		return options
	}
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = fold(o)
	}
	return out
}
