package rules

import (
	"fmt"
	"sort"
)

// OneOrMany is a hook argument list. Rule files may give a single scalar or
// a list; both normalize to a list at the parse boundary so hook logic never
// has to duck-type.
type OneOrMany []string

func normalizeOneOrMany(raw any) (OneOrMany, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return OneOrMany{v}, nil
	case []any:
		out := make(OneOrMany, 0, len(v))
		for _, el := range v {
			s, ok := el.(string)
			if !ok {
				return nil, fmt.Errorf("hook args must be strings, got %T", el)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("hook args must be a string or list of strings, got %T", raw)
	}
}

var knownRuleFields = map[string]bool{
	"patterns":    true,
	"suggestions": true,
	"match_hook":  true,
	"test":        true,
	"description": true,
	"category":    true,
	"comment":     true,
}

// ParseRuleSet converts a decoded rule-file mapping into validated rules.
// Unknown top-level fields become typed extra properties; every rule in the
// set gets a zero-valued default for each extra key any rule defines, so
// span consumers can read them uniformly.
func ParseRuleSet(raw map[string]map[string]any) (map[string]*Rule, error) {
	set := make(map[string]*Rule, len(raw))
	extraDefaults := map[string]Value{}

	// deterministic parse order for stable error reporting
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rule, err := parseRule(name, raw[name])
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		for k, v := range rule.Extra {
			if _, seen := extraDefaults[k]; !seen {
				extraDefaults[k] = v.Zero()
			}
		}
		set[name] = rule
	}

	// default missing extra properties across the whole set
	for _, rule := range set {
		for k, def := range extraDefaults {
			if _, ok := rule.Extra[k]; !ok {
				rule.Extra[k] = def
			}
		}
	}
	return set, nil
}

func parseRule(name string, def map[string]any) (*Rule, error) {
	rule := &Rule{Name: name, Extra: map[string]Value{}}

	rawPatterns, ok := def["patterns"].([]any)
	if !ok || len(rawPatterns) == 0 {
		return nil, fmt.Errorf("missing or empty patterns")
	}
	for i, rp := range rawPatterns {
		m, ok := rp.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("pattern %d: expected a mapping, got %T", i, rp)
		}
		slot, err := parsePatternSlot(m)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", i, err)
		}
		rule.Patterns = append(rule.Patterns, slot)
	}

	if rawSuggs, ok := def["suggestions"].([]any); ok {
		for i, rs := range rawSuggs {
			items, ok := rs.([]any)
			if !ok {
				return nil, fmt.Errorf("suggestion %d: expected a list of items", i)
			}
			var template []SuggestionItem
			for j, ri := range items {
				m, ok := ri.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("suggestion %d item %d: expected a mapping", i, j)
				}
				item, err := parseSuggestionItem(m)
				if err != nil {
					return nil, fmt.Errorf("suggestion %d item %d: %w", i, j, err)
				}
				template = append(template, item)
			}
			rule.Suggestions = append(rule.Suggestions, template)
		}
	}

	if rawHooks, ok := def["match_hook"].([]any); ok {
		for i, rh := range rawHooks {
			m, ok := rh.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("match_hook %d: expected a mapping", i)
			}
			hook, err := parseHook(m)
			if err != nil {
				return nil, fmt.Errorf("match_hook %d: %w", i, err)
			}
			rule.Hooks = append(rule.Hooks, hook)
		}
	}

	if rawTest, ok := def["test"].(map[string]any); ok {
		rule.Test.Positive = stringList(rawTest["positive"])
		rule.Test.Negative = stringList(rawTest["negative"])
	}
	rule.Description, _ = def["description"].(string)
	rule.Category, _ = def["category"].(string)
	rule.Comment, _ = def["comment"].(string)

	for k, v := range def {
		if !knownRuleFields[k] {
			rule.Extra[k] = valueOf(v)
		}
	}
	return rule, nil
}

func parsePatternSlot(m map[string]any) (PatternSlot, error) {
	var slot PatternSlot
	for key, raw := range m {
		switch key {
		case "TEXT", "LOWER", "LEMMA", "POS", "TAG", "DEP":
			sm, err := parseStringMatch(raw)
			if err != nil {
				return slot, fmt.Errorf("%s: %w", key, err)
			}
			switch key {
			case "TEXT":
				slot.Text = sm
			case "LOWER":
				slot.Lower = sm
			case "LEMMA":
				slot.Lemma = sm
			case "POS":
				slot.POS = sm
			case "TAG":
				slot.Tag = sm
			case "DEP":
				slot.Dep = sm
			}
		case "IS_PUNCT":
			b, ok := raw.(bool)
			if !ok {
				return slot, fmt.Errorf("IS_PUNCT: expected bool, got %T", raw)
			}
			slot.IsPunct = &b
		case "OP":
			op, _ := raw.(string)
			switch op {
			case OpOptional, OpZeroOrMore, OpOneOrMore, OpNegate:
				slot.Op = op
			default:
				return slot, fmt.Errorf("OP: invalid operator %q", raw)
			}
		case "TEMPLATE_ID":
			id, ok := asInt(raw)
			if !ok {
				return slot, fmt.Errorf("TEMPLATE_ID: expected int, got %T", raw)
			}
			slot.TemplateID = id
		default:
			return slot, fmt.Errorf("unknown pattern attribute %q", key)
		}
	}
	return slot, nil
}

func parseStringMatch(raw any) (*StringMatch, error) {
	switch v := raw.(type) {
	case string:
		return &StringMatch{Equals: v}, nil
	case map[string]any:
		sm := &StringMatch{}
		for key, val := range v {
			switch key {
			case "IN":
				sm.In = stringList(val)
			case "NOT_IN":
				sm.NotIn = stringList(val)
			case "REGEX":
				s, _ := val.(string)
				sm.Regex = s
			default:
				return nil, fmt.Errorf("unknown matcher key %q", key)
			}
		}
		return sm, nil
	default:
		return nil, fmt.Errorf("expected string or mapping, got %T", raw)
	}
}

func parseSuggestionItem(m map[string]any) (SuggestionItem, error) {
	var item SuggestionItem
	for key, raw := range m {
		switch key {
		case "TEXT":
			switch v := raw.(type) {
			case string:
				s := v
				item.Text = &s
			case map[string]any:
				item.TextIn = stringList(v["IN"])
				if item.TextIn == nil {
					return item, fmt.Errorf("TEXT: mapping form requires IN")
				}
			default:
				return item, fmt.Errorf("TEXT: expected string or {IN: [...]}, got %T", raw)
			}
		case "PATTERN_REF":
			ref, ok := asInt(raw)
			if !ok {
				return item, fmt.Errorf("PATTERN_REF: expected int, got %T", raw)
			}
			item.PatternRef = &ref
		case "INFLECTION":
			item.Inflection, _ = raw.(string)
		case "FROM_TEMPLATE_ID":
			id, ok := asInt(raw)
			if !ok {
				return item, fmt.Errorf("FROM_TEMPLATE_ID: expected int, got %T", raw)
			}
			item.FromTemplateID = id
		case "REPLACY_OP":
			op, _ := raw.(string)
			switch op {
			case CaseLower, CaseTitle, CaseUpper:
				item.Op = op
			default:
				return item, fmt.Errorf("REPLACY_OP: invalid op %q", raw)
			}
		case "MAX_COUNT":
			n, ok := asInt(raw)
			if !ok || n < 1 {
				return item, fmt.Errorf("MAX_COUNT: expected positive int, got %v", raw)
			}
			item.MaxCount = n
		case "REGEX":
			item.Regex, _ = raw.(string)
		case "SUFFIX":
			item.Suffix, _ = raw.(string)
		default:
			return item, fmt.Errorf("unknown suggestion key %q", key)
		}
	}
	sources := 0
	if item.Text != nil {
		sources++
	}
	if item.TextIn != nil {
		sources++
	}
	if item.PatternRef != nil {
		sources++
	}
	if sources != 1 {
		return item, fmt.Errorf("exactly one of TEXT and PATTERN_REF required")
	}
	return item, nil
}

func parseHook(m map[string]any) (Hook, error) {
	var hook Hook
	hook.Name, _ = m["name"].(string)
	if hook.Name == "" {
		return hook, fmt.Errorf("missing hook name")
	}
	args, err := normalizeOneOrMany(m["args"])
	if err != nil {
		return hook, err
	}
	hook.Args = args
	if v, ok := m["match_if_predicate_is"].(bool); ok {
		hook.MatchIf = v
	}
	for key := range m {
		switch key {
		case "name", "args", "match_if_predicate_is":
		default:
			return hook, fmt.Errorf("unknown hook key %q", key)
		}
	}
	return hook, nil
}

func stringList(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, el := range list {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}
