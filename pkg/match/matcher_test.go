package match

import (
	"strings"
	"testing"

	"github.com/bastiangx/rephrase/pkg/rules"
	"github.com/bastiangx/rephrase/pkg/token"
)

func makeDoc(words ...string) *token.Doc {
	toks := make([]token.Token, len(words))
	for i, w := range words {
		toks[i] = token.Token{Text: w, Lemma: strings.ToLower(w), Whitespace: " "}
	}
	return token.NewDoc(toks)
}

func lower(s string) rules.PatternSlot {
	return rules.PatternSlot{Lower: &rules.StringMatch{Equals: s}}
}

func lowerOp(s, op string) rules.PatternSlot {
	return rules.PatternSlot{Lower: &rules.StringMatch{Equals: s}, Op: op}
}

func TestFindExactSequence(t *testing.T) {
	doc := makeDoc("The", "cat", "sat", "on", "the", "cat")
	spans := Find(doc, []rules.PatternSlot{lower("the"), lower("cat")})
	want := []Span{{Start: 0, End: 2}, {Start: 4, End: 6}}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d", len(spans), len(want))
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d: got %+v, want %+v", i, spans[i], want[i])
		}
	}
}

func TestStringMatchVariants(t *testing.T) {
	doc := makeDoc("Colour", "is", "nice")
	tests := []struct {
		name    string
		slot    rules.PatternSlot
		matches bool
	}{
		{"text exact is case sensitive", rules.PatternSlot{Text: &rules.StringMatch{Equals: "colour"}}, false},
		{"lower folds case", lower("colour"), true},
		{"in set", rules.PatternSlot{Lower: &rules.StringMatch{In: []string{"color", "colour"}}}, true},
		{"not in set", rules.PatternSlot{Lower: &rules.StringMatch{NotIn: []string{"colour"}}}, false},
		{"regex", rules.PatternSlot{Text: &rules.StringMatch{Regex: "colou?r"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := Find(doc, []rules.PatternSlot{tt.slot})
			matched := false
			for _, s := range spans {
				if s.Start == 0 {
					matched = true
				}
			}
			if matched != tt.matches {
				t.Errorf("match = %v, want %v", matched, tt.matches)
			}
		})
	}
}

func TestOptionalSlot(t *testing.T) {
	pattern := []rules.PatternSlot{lower("the"), lowerOp("very", "?"), lower("cat")}

	spans := Find(makeDoc("the", "very", "cat"), pattern)
	if len(spans) != 1 || spans[0] != (Span{Start: 0, End: 3}) {
		t.Fatalf("optional present: got %+v", spans)
	}

	spans = Find(makeDoc("the", "cat"), pattern)
	if len(spans) != 1 || spans[0] != (Span{Start: 0, End: 2}) {
		t.Fatalf("optional absent: got %+v", spans)
	}
}

func TestZeroOrMoreIsGreedy(t *testing.T) {
	pattern := []rules.PatternSlot{
		lower("a"),
		{POS: &rules.StringMatch{Equals: "ADJ"}, Op: rules.OpZeroOrMore},
		lower("cat"),
	}
	toks := []token.Token{
		{Text: "a", Whitespace: " "},
		{Text: "big", POS: "ADJ", Whitespace: " "},
		{Text: "fluffy", POS: "ADJ", Whitespace: " "},
		{Text: "cat", Whitespace: " "},
	}
	spans := Find(token.NewDoc(toks), pattern)
	if len(spans) != 1 || spans[0] != (Span{Start: 0, End: 4}) {
		t.Fatalf("got %+v, want one span covering all four tokens", spans)
	}
}

func TestOneOrMoreRequiresOne(t *testing.T) {
	pattern := []rules.PatternSlot{lower("the"), lowerOp("very", "+"), lower("cat")}
	if spans := Find(makeDoc("the", "cat"), pattern); len(spans) != 0 {
		t.Fatalf("+ slot matched zero tokens: %+v", spans)
	}
	spans := Find(makeDoc("the", "very", "very", "cat"), pattern)
	if len(spans) != 1 || spans[0] != (Span{Start: 0, End: 4}) {
		t.Fatalf("got %+v", spans)
	}
}

func TestNegatedSlotConsumesNothing(t *testing.T) {
	pattern := []rules.PatternSlot{lower("the"), lowerOp("big", "!"), lower("cat")}

	spans := Find(makeDoc("the", "cat"), pattern)
	if len(spans) != 1 || spans[0] != (Span{Start: 0, End: 2}) {
		t.Fatalf("negated slot should not consume: got %+v", spans)
	}
	if spans := Find(makeDoc("the", "big", "cat"), pattern); len(spans) != 0 {
		t.Fatalf("negated token present, expected no match: %+v", spans)
	}
}

func TestLongestMatchPerStart(t *testing.T) {
	pattern := []rules.PatternSlot{lowerOp("cat", "+")}
	spans := Find(makeDoc("cat", "cat", "dog"), pattern)
	want := []Span{{Start: 0, End: 2}, {Start: 1, End: 2}}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans %+v, want %d", len(spans), spans, len(want))
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d: got %+v, want %+v", i, spans[i], want[i])
		}
	}
}

func TestIsPunctSlot(t *testing.T) {
	yes := true
	toks := []token.Token{
		{Text: "end", Whitespace: ""},
		{Text: ".", IsPunct: true, Whitespace: ""},
	}
	pattern := []rules.PatternSlot{lower("end"), {IsPunct: &yes}}
	spans := Find(token.NewDoc(toks), pattern)
	if len(spans) != 1 || spans[0] != (Span{Start: 0, End: 2}) {
		t.Fatalf("got %+v", spans)
	}
}

func TestMatchesSpanIsAnchored(t *testing.T) {
	pattern := []rules.PatternSlot{lower("the"), lower("cat")}
	full := makeDoc("the", "cat").Tokens()
	longer := makeDoc("the", "cat", "sat").Tokens()

	if !MatchesSpan(full, pattern) {
		t.Error("exact span should match")
	}
	if MatchesSpan(longer, pattern) {
		t.Error("trailing token left unconsumed, should not match")
	}
}

func TestInvalidRegexNeverMatches(t *testing.T) {
	pattern := []rules.PatternSlot{{Text: &rules.StringMatch{Regex: "("}}}
	if spans := Find(makeDoc("anything"), pattern); len(spans) != 0 {
		t.Fatalf("invalid regex matched: %+v", spans)
	}
}
