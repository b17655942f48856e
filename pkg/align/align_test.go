package align

import (
	"reflect"
	"testing"

	"github.com/bastiangx/rephrase/pkg/rules"
	"github.com/bastiangx/rephrase/pkg/token"
)

func lower(s string) rules.PatternSlot {
	return rules.PatternSlot{Lower: &rules.StringMatch{Equals: s}}
}

func lowerOp(s, op string) rules.PatternSlot {
	return rules.PatternSlot{Lower: &rules.StringMatch{Equals: s}, Op: op}
}

func toks(words ...string) []token.Token {
	out := make([]token.Token, len(words))
	for i, w := range words {
		out[i] = token.Token{Text: w, Whitespace: " "}
	}
	return out
}

func checkRefs(t *testing.T, got PatternRefs, want map[int][]int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d slots %v, want %d", len(got), got, len(want))
	}
	for k, w := range want {
		if !reflect.DeepEqual(got[k], w) {
			t.Errorf("slot %d: got %v, want %v", k, got[k], w)
		}
	}
}

func TestAlignIdentity(t *testing.T) {
	pattern := []rules.PatternSlot{lower("the"), lower("cat")}
	refs := Align(toks("the", "cat"), pattern)
	checkRefs(t, refs, map[int][]int{0: {0}, 1: {1}})
}

func TestAlignSkippedOptional(t *testing.T) {
	pattern := []rules.PatternSlot{lower("the"), lowerOp("very", "?"), lower("cat")}

	refs := Align(toks("the", "cat"), pattern)
	checkRefs(t, refs, map[int][]int{0: {0}, 1: {}, 2: {1}})

	refs = Align(toks("the", "very", "cat"), pattern)
	checkRefs(t, refs, map[int][]int{0: {0}, 1: {1}, 2: {2}})
}

func TestAlignNegatedSlotAlwaysEmpty(t *testing.T) {
	pattern := []rules.PatternSlot{lower("the"), lowerOp("big", "!"), lower("cat")}
	refs := Align(toks("the", "cat"), pattern)
	checkRefs(t, refs, map[int][]int{0: {0}, 1: {}, 2: {1}})
}

func TestAlignMultiTokenSlot(t *testing.T) {
	pattern := []rules.PatternSlot{
		lower("a"),
		{POS: &rules.StringMatch{Equals: "ADJ"}, Op: rules.OpZeroOrMore},
		lower("cat"),
	}
	span := []token.Token{
		{Text: "a", Whitespace: " "},
		{Text: "big", POS: "ADJ", Whitespace: " "},
		{Text: "fluffy", POS: "ADJ", Whitespace: " "},
		{Text: "cat", Whitespace: " "},
	}
	refs := Align(span, pattern)
	checkRefs(t, refs, map[int][]int{0: {0}, 1: {1, 2}, 2: {3}})
}

// A permissive trailing slot must not swallow tokens that belong to the
// slots before it: the parse is monotonic and each token stays with the
// slot the matcher consumed it under.
func TestAlignTrailingPermissiveSlot(t *testing.T) {
	yes, no := true, false
	pattern := []rules.PatternSlot{
		{POS: &rules.StringMatch{NotIn: []string{"ADJ"}}, Op: rules.OpZeroOrMore},
		{POS: &rules.StringMatch{Equals: "ADJ"}, Op: rules.OpZeroOrMore},
		{POS: &rules.StringMatch{Equals: "NOUN"}},
		{Lemma: &rules.StringMatch{Equals: "be"}},
		{Lemma: &rules.StringMatch{Equals: "deliver"}},
		{IsPunct: &no, Op: rules.OpZeroOrMore},
		{IsPunct: &yes},
	}
	span := []token.Token{
		{Text: "The", POS: "DET", Whitespace: " "},
		{Text: "fresh", POS: "ADJ", Whitespace: " "},
		{Text: "juicy", POS: "ADJ", Whitespace: " "},
		{Text: "sandwiches", POS: "NOUN", Lemma: "sandwich", Whitespace: " "},
		{Text: "were", POS: "AUX", Lemma: "be", Whitespace: " "},
		{Text: "delivered", POS: "VERB", Lemma: "deliver", Whitespace: " "},
		{Text: "to", POS: "ADP", Whitespace: " "},
		{Text: "everyone", POS: "PRON", Whitespace: " "},
		{Text: ".", IsPunct: true, Whitespace: ""},
	}
	refs := Align(span, pattern)
	checkRefs(t, refs, map[int][]int{
		0: {0}, 1: {1, 2}, 2: {3}, 3: {4}, 4: {5}, 5: {6, 7}, 6: {8},
	})
}

// When a star slot and its successor accept the same tokens, the successor
// must still receive the token the matcher's greedy parse left for it.
func TestAlignStarDoesNotStarveSuccessor(t *testing.T) {
	pattern := []rules.PatternSlot{
		{POS: &rules.StringMatch{Equals: "NOUN"}, Op: rules.OpZeroOrMore},
		{POS: &rules.StringMatch{Equals: "NOUN"}},
	}
	span := []token.Token{
		{Text: "cats", POS: "NOUN", Whitespace: " "},
		{Text: "dogs", POS: "NOUN", Whitespace: " "},
		{Text: "birds", POS: "NOUN", Whitespace: " "},
	}
	refs := Align(span, pattern)
	checkRefs(t, refs, map[int][]int{0: {0, 1}, 1: {2}})
}

func TestAlignSkippedZeroOrMore(t *testing.T) {
	pattern := []rules.PatternSlot{
		lower("the"),
		{POS: &rules.StringMatch{Equals: "ADJ"}, Op: rules.OpZeroOrMore},
		lower("dog"),
	}
	refs := Align(toks("the", "dog"), pattern)
	checkRefs(t, refs, map[int][]int{0: {0}, 1: {}, 2: {1}})
}

func TestTokensResolvesNegativeIndex(t *testing.T) {
	refs := PatternRefs{0: {0}, 1: {1, 2}, 2: {3}}

	got, ok := refs.Tokens(-1, 3)
	if !ok || !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("Tokens(-1) = %v, %v", got, ok)
	}
	got, ok = refs.Tokens(-2, 3)
	if !ok || !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Tokens(-2) = %v, %v", got, ok)
	}
	if _, ok := refs.Tokens(5, 3); ok {
		t.Error("out-of-range index should report false")
	}
}
