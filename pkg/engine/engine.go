/*
Package engine wires matching, alignment, suggestion expansion and the
post-match pipeline into the rule-correction entry point.

One sentence flows deterministically through annotate, match, hook
filtering, candidate expansion and the pipeline stages. A single Engine
may serve concurrent Process calls as long as its rule set and pipeline
are not mutated at the same time; no internal locking is provided.
*/
package engine

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/rephrase/internal/utils"
	"github.com/bastiangx/rephrase/pkg/align"
	"github.com/bastiangx/rephrase/pkg/inflect"
	"github.com/bastiangx/rephrase/pkg/match"
	"github.com/bastiangx/rephrase/pkg/rules"
	"github.com/bastiangx/rephrase/pkg/scorer"
	"github.com/bastiangx/rephrase/pkg/suggest"
	"github.com/bastiangx/rephrase/pkg/token"
)

// DefaultExpansionCap bounds the Cartesian product of one suggestion
// template. A template expanding past it is dropped with a warning.
const DefaultExpansionCap = 10000

// Options configures a new Engine. Zero values select the defaults: the
// builtin English inflector, the stable identity scorer, the builtin hook
// registry and DefaultExpansionCap.
type Options struct {
	Annotator token.Annotator
	Inflector inflect.Service
	Scorer    scorer.Scorer
	Hooks     *match.Registry

	ExpansionCap             int
	DefaultMaxCount          int
	FilterSuggestions        bool
	AllowMultipleWhitespaces bool
}

type compiledRule struct {
	rule  *rules.Rule
	hooks []match.CompiledHook
}

// Engine matches a rule set against sentences and renders replacement
// suggestions.
type Engine struct {
	rules     []compiledRule
	annotator token.Annotator
	resolver  *suggest.Resolver
	scorer    scorer.Scorer
	pipeline  *Pipeline

	expansionCap int
	collapseWS   bool
}

// New compiles the rule set into an engine. Every hook named by a rule
// must exist in the registry; an unknown hook is a configuration error
// reported here, not at match time.
func New(ruleSet map[string]*rules.Rule, opts Options) (*Engine, error) {
	if opts.Inflector == nil {
		opts.Inflector = inflect.NewEnglish(nil)
	}
	if opts.Scorer == nil {
		opts.Scorer = scorer.Default{}
	}
	if opts.Hooks == nil {
		opts.Hooks = match.NewRegistry()
	}
	if opts.ExpansionCap <= 0 {
		opts.ExpansionCap = DefaultExpansionCap
	}

	names := make([]string, 0, len(ruleSet))
	for name := range ruleSet {
		names = append(names, name)
	}
	sort.Strings(names)

	compiled := make([]compiledRule, 0, len(ruleSet))
	for _, name := range names {
		rule := ruleSet[name]
		hooks, err := opts.Hooks.Compile(rule.Hooks)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		compiled = append(compiled, compiledRule{rule: rule, hooks: hooks})
	}

	e := &Engine{
		rules:        compiled,
		annotator:    opts.Annotator,
		resolver:     suggest.NewResolver(opts.Inflector, opts.DefaultMaxCount, opts.FilterSuggestions),
		scorer:       opts.Scorer,
		expansionCap: opts.ExpansionCap,
		collapseWS:   opts.AllowMultipleWhitespaces,
	}
	e.pipeline = NewPipeline(SorterStage(e.scorer), FilterStage(), JoinerStage())
	return e, nil
}

// Pipeline exposes the stage list for callers that inject or remove
// stages. Mutate only between Process calls.
func (e *Engine) Pipeline() *Pipeline { return e.pipeline }

// Process annotates one sentence and returns its rule matches with
// rendered suggestions.
func (e *Engine) Process(sentence string) ([]*Span, error) {
	if e.annotator == nil {
		return nil, fmt.Errorf("no annotator configured")
	}
	if e.collapseWS {
		sentence = utils.CollapseWhitespace(sentence)
	}
	doc, err := e.annotator.Annotate(sentence)
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}
	return e.ProcessDoc(doc), nil
}

// ProcessDoc runs the rule set over an already annotated document.
func (e *Engine) ProcessDoc(doc *token.Doc) []*Span {
	var spans []*Span
	for _, cr := range e.rules {
		for _, m := range match.Find(doc, cr.rule.Patterns) {
			if !e.accepted(cr.hooks, doc, m) {
				continue
			}
			spans = append(spans, e.expand(cr.rule, doc, m))
		}
	}
	return e.pipeline.Run(spans)
}

func (e *Engine) accepted(hooks []match.CompiledHook, doc *token.Doc, m match.Span) bool {
	for _, h := range hooks {
		if !h.Accept(doc, m.Start, m.End) {
			return false
		}
	}
	return true
}

// expand builds the span for one accepted match: align the span tokens
// back to the pattern slots, then resolve and combine every suggestion
// template. One template blowing its expansion budget only zeroes that
// template.
func (e *Engine) expand(rule *rules.Rule, doc *token.Doc, m match.Span) *Span {
	spanTokens := doc.Tokens()[m.Start:m.End]
	refs := align.Align(spanTokens, rule.Patterns)

	var candidates []suggest.Candidate
	for i, template := range rule.Suggestions {
		slots := e.resolver.Resolve(template, doc, m, rule.Patterns, refs, i)
		candidates = append(candidates, suggest.Combine(slots, e.expansionCap)...)
	}
	log.Debugf("rule %s matched %q with %d candidates", rule.Name, doc.Slice(m.Start, m.End), len(candidates))

	extra := make(map[string]rules.Value, len(rule.Extra))
	for k, v := range rule.Extra {
		extra[k] = v
	}
	return &Span{
		Doc:         doc,
		Start:       m.Start,
		End:         m.End,
		RuleName:    rule.Name,
		Description: rule.Description,
		Category:    rule.Category,
		Comment:     rule.Comment,
		Candidates:  candidates,
		Extra:       extra,
	}
}
