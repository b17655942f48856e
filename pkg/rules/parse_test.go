package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fullRule = `{
	"swap-colour": {
		"patterns": [
			{"LOWER": "colour", "TEMPLATE_ID": 1},
			{"POS": {"IN": ["NOUN", "PROPN"]}, "OP": "?"}
		],
		"suggestions": [
			[{"TEXT": "color"}],
			[{"PATTERN_REF": 0, "REPLACY_OP": "TITLE", "MAX_COUNT": 2}]
		],
		"match_hook": [
			{"name": "succeeded_by_phrase", "args": "scheme", "match_if_predicate_is": true}
		],
		"test": {"positive": ["I like this colour"], "negative": ["color is fine"]},
		"description": "prefer US spelling",
		"category": "spelling",
		"comment": "internal note"
	}
}`

func TestParseFullRule(t *testing.T) {
	set, err := LoadJSON([]byte(fullRule))
	if err != nil {
		t.Fatal(err)
	}
	rule, ok := set["swap-colour"]
	if !ok {
		t.Fatal("rule missing from set")
	}

	if len(rule.Patterns) != 2 {
		t.Fatalf("patterns = %d", len(rule.Patterns))
	}
	if rule.Patterns[0].Lower == nil || rule.Patterns[0].Lower.Equals != "colour" {
		t.Errorf("pattern 0 LOWER = %+v", rule.Patterns[0].Lower)
	}
	if rule.Patterns[0].TemplateID != 1 {
		t.Errorf("pattern 0 template id = %d", rule.Patterns[0].TemplateID)
	}
	if got := rule.Patterns[1].POS.In; len(got) != 2 || got[0] != "NOUN" {
		t.Errorf("pattern 1 POS IN = %v", got)
	}
	if rule.Patterns[1].Op != OpOptional {
		t.Errorf("pattern 1 op = %q", rule.Patterns[1].Op)
	}

	if len(rule.Suggestions) != 2 {
		t.Fatalf("suggestions = %d", len(rule.Suggestions))
	}
	if rule.Suggestions[0][0].Text == nil || *rule.Suggestions[0][0].Text != "color" {
		t.Errorf("suggestion 0 text = %+v", rule.Suggestions[0][0].Text)
	}
	second := rule.Suggestions[1][0]
	if second.PatternRef == nil || *second.PatternRef != 0 {
		t.Errorf("suggestion 1 ref = %+v", second.PatternRef)
	}
	if second.Op != CaseTitle || second.MaxCount != 2 {
		t.Errorf("suggestion 1 modifiers = %+v", second)
	}

	if len(rule.Hooks) != 1 {
		t.Fatalf("hooks = %d", len(rule.Hooks))
	}
	h := rule.Hooks[0]
	if h.Name != "succeeded_by_phrase" || !h.MatchIf {
		t.Errorf("hook = %+v", h)
	}
	if len(h.Args) != 1 || h.Args[0] != "scheme" {
		t.Errorf("hook args should normalize a scalar to a list: %v", h.Args)
	}

	if len(rule.Test.Positive) != 1 || len(rule.Test.Negative) != 1 {
		t.Errorf("test block = %+v", rule.Test)
	}
	if rule.Description != "prefer US spelling" || rule.Category != "spelling" {
		t.Errorf("metadata = %q / %q", rule.Description, rule.Category)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		frag string
	}{
		{"no patterns", `{"r": {"suggestions": []}}`, "patterns"},
		{"bad op", `{"r": {"patterns": [{"LOWER": "x", "OP": "%"}]}}`, "invalid operator"},
		{"unknown pattern key", `{"r": {"patterns": [{"SHAPE": "Xx"}]}}`, "unknown pattern attribute"},
		{"unknown matcher key", `{"r": {"patterns": [{"LOWER": {"LIKE": "x"}}]}}`, "unknown matcher key"},
		{"suggestion both sources", `{"r": {"patterns": [{"LOWER": "x"}],
			"suggestions": [[{"TEXT": "a", "PATTERN_REF": 0}]]}}`, "exactly one"},
		{"suggestion no source", `{"r": {"patterns": [{"LOWER": "x"}],
			"suggestions": [[{"INFLECTION": "VBD"}]]}}`, "exactly one"},
		{"bad case op", `{"r": {"patterns": [{"LOWER": "x"}],
			"suggestions": [[{"TEXT": "a", "REPLACY_OP": "SHOUT"}]]}}`, "invalid op"},
		{"bad max count", `{"r": {"patterns": [{"LOWER": "x"}],
			"suggestions": [[{"TEXT": "a", "MAX_COUNT": 0}]]}}`, "MAX_COUNT"},
		{"hook without name", `{"r": {"patterns": [{"LOWER": "x"}],
			"match_hook": [{"args": "y"}]}}`, "missing hook name"},
		{"unknown hook key", `{"r": {"patterns": [{"LOWER": "x"}],
			"match_hook": [{"name": "h", "when": "always"}]}}`, "unknown hook key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON([]byte(tt.json))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.frag) {
				t.Errorf("error %q does not mention %q", err, tt.frag)
			}
		})
	}
}

func TestExtraPropertiesDefaultAcrossSet(t *testing.T) {
	set, err := LoadJSON([]byte(`{
		"a": {"patterns": [{"LOWER": "x"}], "severity": "high", "weight": 3},
		"b": {"patterns": [{"LOWER": "y"}]}
	}`))
	if err != nil {
		t.Fatal(err)
	}

	a, b := set["a"], set["b"]
	if v := a.Extra["severity"]; v.Kind != KindString || v.Str != "high" {
		t.Errorf("a severity = %+v", v)
	}
	if v := a.Extra["weight"]; v.Kind != KindInt || v.Int != 3 {
		t.Errorf("whole JSON numbers should fold to ints: %+v", v)
	}
	// rule b never set them but still carries typed zero defaults
	if v := b.Extra["severity"]; v.Kind != KindString || v.Str != "" {
		t.Errorf("b severity default = %+v", v)
	}
	if v := b.Extra["weight"]; v.Kind != KindInt || v.Int != 0 {
		t.Errorf("b weight default = %+v", v)
	}
}

func TestTemplateSlotIndex(t *testing.T) {
	set, err := LoadJSON([]byte(`{
		"r": {"patterns": [{"LOWER": "a"}, {"LOWER": "b", "TEMPLATE_ID": 1}]}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	rule := set["r"]
	if got := rule.TemplateSlotIndex(1); got != 1 {
		t.Errorf("TemplateSlotIndex(1) = %d", got)
	}
	if got := rule.TemplateSlotIndex(2); got != -1 {
		t.Errorf("TemplateSlotIndex(2) = %d", got)
	}
	if got := rule.TemplateSlotIndex(0); got != -1 {
		t.Errorf("zero template id is unset, got %d", got)
	}
}

func TestLoadYAML(t *testing.T) {
	yamlRules := `
too-dear:
  patterns:
    - LOWER: dear
      OP: "+"
  suggestions:
    - - TEXT: expensive
  match_hook:
    - name: preceded_by_phrase
      args: [really, very]
  test:
    positive: ["that is too dear"]
    negative: ["dear sir"]
`
	set, err := LoadYAML([]byte(yamlRules))
	if err != nil {
		t.Fatal(err)
	}
	rule := set["too-dear"]
	if rule == nil {
		t.Fatal("rule missing")
	}
	if rule.Patterns[0].Op != OpOneOrMore {
		t.Errorf("op = %q", rule.Patterns[0].Op)
	}
	if len(rule.Hooks[0].Args) != 2 {
		t.Errorf("args = %v", rule.Hooks[0].Args)
	}
	if *rule.Suggestions[0][0].Text != "expensive" {
		t.Errorf("text = %v", rule.Suggestions[0][0].Text)
	}
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "rules.json")
	if err := os.WriteFile(jsonPath, []byte(`{"r": {"patterns": [{"LOWER": "x"}]}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	set, err := LoadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 1 {
		t.Fatalf("loaded %d rules", len(set))
	}

	txtPath := filepath.Join(dir, "rules.txt")
	if err := os.WriteFile(txtPath, []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(txtPath); err == nil {
		t.Error("unsupported extension should fail")
	}

	if _, err := LoadFile(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("missing file should fail")
	}
}
