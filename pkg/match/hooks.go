package match

import (
	"fmt"
	"strings"

	"github.com/bastiangx/rephrase/pkg/rules"
	"github.com/bastiangx/rephrase/pkg/token"
)

// Predicate inspects a candidate match and returns whether it holds.
type Predicate func(doc *token.Doc, start, end int) bool

// Factory builds a Predicate from the hook's normalized argument list.
type Factory func(args rules.OneOrMany) (Predicate, error)

// CompiledHook is a predicate paired with its accept polarity. A match is
// kept only when every compiled hook accepts it.
type CompiledHook struct {
	Name    string
	pred    Predicate
	matchIf bool
}

// Accept reports whether the match at [start, end) passes this hook.
func (h CompiledHook) Accept(doc *token.Doc, start, end int) bool {
	return h.pred(doc, start, end) == h.matchIf
}

// Registry maps hook names to predicate factories. It is built once at
// startup from the built-in set plus any caller-supplied factories; a rule
// referencing an unknown name is a load-time configuration error.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry preloaded with the built-in hooks.
func NewRegistry() *Registry {
	r := &Registry{factories: map[string]Factory{}}
	for name, f := range builtinHooks {
		r.factories[name] = f
	}
	return r
}

// Register adds a caller-supplied factory. Overriding a built-in is allowed;
// registering the same custom name twice is not.
func (r *Registry) Register(name string, f Factory) error {
	if _, builtin := builtinHooks[name]; !builtin {
		if _, ok := r.factories[name]; ok {
			return fmt.Errorf("hook %q already registered", name)
		}
	}
	r.factories[name] = f
	return nil
}

// Compile resolves the hooks of one rule against the registry.
func (r *Registry) Compile(hooks []rules.Hook) ([]CompiledHook, error) {
	out := make([]CompiledHook, 0, len(hooks))
	for _, h := range hooks {
		factory, ok := r.factories[h.Name]
		if !ok {
			return nil, fmt.Errorf("unknown match hook %q", h.Name)
		}
		pred, err := factory(h.Args)
		if err != nil {
			return nil, fmt.Errorf("hook %q: %w", h.Name, err)
		}
		out = append(out, CompiledHook{Name: h.Name, pred: pred, matchIf: h.MatchIf})
	}
	return out, nil
}

func requireArgs(name string, args rules.OneOrMany) error {
	if len(args) == 0 {
		return fmt.Errorf("%s requires at least one argument", name)
	}
	return nil
}

var currencySymbols = map[string]bool{
	"$": true, "€": true, "£": true, "¥": true, "₹": true, "¢": true,
}

var builtinHooks = map[string]Factory{
	"succeeded_by_phrase": func(args rules.OneOrMany) (Predicate, error) {
		if err := requireArgs("succeeded_by_phrase", args); err != nil {
			return nil, err
		}
		return func(doc *token.Doc, start, end int) bool {
			after := strings.ToLower(doc.TextAfter(end))
			for _, phrase := range args {
				if strings.HasPrefix(after, strings.ToLower(phrase)) {
					return true
				}
			}
			return false
		}, nil
	},
	"preceded_by_phrase": func(args rules.OneOrMany) (Predicate, error) {
		if err := requireArgs("preceded_by_phrase", args); err != nil {
			return nil, err
		}
		return func(doc *token.Doc, start, end int) bool {
			before := strings.ToLower(doc.TextBefore(start))
			for _, phrase := range args {
				if strings.HasSuffix(before, strings.ToLower(phrase)) {
					return true
				}
			}
			return false
		}, nil
	},
	"surrounded_by_phrase": func(args rules.OneOrMany) (Predicate, error) {
		if err := requireArgs("surrounded_by_phrase", args); err != nil {
			return nil, err
		}
		phrase := strings.ToLower(args[0])
		return func(doc *token.Doc, start, end int) bool {
			return strings.HasSuffix(strings.ToLower(doc.TextBefore(start)), phrase) &&
				strings.HasPrefix(strings.ToLower(doc.TextAfter(end)), phrase)
		}, nil
	},
	"succeeded_by_pos": attrHook("succeeded_by_pos", after, func(t token.Token) string { return t.POS }),
	"preceded_by_pos":  attrHook("preceded_by_pos", before, func(t token.Token) string { return t.POS }),
	"succeeded_by_dep": attrHook("succeeded_by_dep", after, func(t token.Token) string { return t.Dep }),
	"preceded_by_dep":  attrHook("preceded_by_dep", before, func(t token.Token) string { return t.Dep }),
	"part_of_compound": func(args rules.OneOrMany) (Predicate, error) {
		return func(doc *token.Doc, start, end int) bool {
			head := doc.At(start)
			if head.Dep == "compound" {
				return true
			}
			for _, t := range doc.Tokens() {
				if t.Dep == "compound" && t.Head == start {
					return true
				}
			}
			return false
		}, nil
	},
	"succeeded_by_num": func(args rules.OneOrMany) (Predicate, error) {
		return func(doc *token.Doc, start, end int) bool {
			if end >= doc.Len() {
				return false
			}
			t := doc.At(end)
			return t.POS == "NUM" || isDigits(t.Text)
		}, nil
	},
	"succeeded_by_currency": func(args rules.OneOrMany) (Predicate, error) {
		return func(doc *token.Doc, start, end int) bool {
			return end < doc.Len() && currencySymbols[doc.At(end).Text]
		}, nil
	},
	"relative_x_is_y": func(args rules.OneOrMany) (Predicate, error) {
		if len(args) != 3 {
			return nil, fmt.Errorf("relative_x_is_y requires [children|ancestors, pos|dep, value]")
		}
		relation, attr, want := args[0], args[1], args[2]
		if relation != "children" && relation != "ancestors" {
			return nil, fmt.Errorf("relative_x_is_y: first arg must be children or ancestors, got %q", relation)
		}
		if attr != "pos" && attr != "dep" {
			return nil, fmt.Errorf("relative_x_is_y: second arg must be pos or dep, got %q", attr)
		}
		return func(doc *token.Doc, start, end int) bool {
			if end-start != 1 {
				// single-token patterns only; a span has no one head
				return false
			}
			for i, t := range doc.Tokens() {
				var related bool
				if relation == "children" {
					related = t.Head == start && i != start
				} else {
					related = isAncestor(doc, start, i)
				}
				if !related {
					continue
				}
				value := t.Dep
				if attr == "pos" {
					value = t.POS
				}
				if value == want {
					return true
				}
			}
			return false
		}, nil
	},
}

type side int

const (
	before side = iota
	after
)

// attrHook builds a boundary-checked predicate comparing one token
// attribute on either side of the match against the argument set.
func attrHook(name string, s side, attr func(token.Token) string) Factory {
	return func(args rules.OneOrMany) (Predicate, error) {
		if err := requireArgs(name, args); err != nil {
			return nil, err
		}
		return func(doc *token.Doc, start, end int) bool {
			idx := end
			if s == before {
				idx = start - 1
			}
			if idx < 0 || idx >= doc.Len() {
				return false
			}
			value := attr(doc.At(idx))
			for _, want := range args {
				if value == want {
					return true
				}
			}
			return false
		}, nil
	}
}

// isAncestor reports whether candidate lies on the head chain of tok.
func isAncestor(doc *token.Doc, tok, candidate int) bool {
	seen := map[int]bool{}
	for cur := doc.At(tok).Head; cur >= 0 && cur < doc.Len() && !seen[cur]; cur = doc.At(cur).Head {
		if cur == candidate {
			return true
		}
		seen[cur] = true
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
