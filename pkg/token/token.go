/*
Package token defines the annotated token model consumed by the matching and
suggestion engine.

Tokens are produced by an external annotation provider (anything that can
assign part-of-speech, dependency and lemma attributes) and are immutable for
the duration of one match. The Doc type wraps an ordered token sequence and
preserves the original inter-token whitespace so that slices of the document
round-trip to the exact source text.
*/
package token

import "strings"

// Token is one annotated token. Text is the surface form, Lemma the base
// form, Tag the fine-grained tag (ex. VBD, NNS), POS the coarse class
// (ex. VERB, NOUN), Dep the dependency label and Head the index of the
// syntactic head token (-1 when the provider does not produce parses).
// Whitespace is the spacing that followed the token in the source sentence.
type Token struct {
	Text       string
	Lemma      string
	Tag        string
	POS        string
	Dep        string
	Head       int
	Offset     int
	Whitespace string
	IsPunct    bool
}

// Annotator produces an annotated Doc from a raw sentence.
// Implementations wrap whatever annotation provider the caller uses.
type Annotator interface {
	Annotate(sentence string) (*Doc, error)
}

// Doc is an immutable annotated token sequence.
type Doc struct {
	tokens []Token
	text   string
}

// NewDoc assembles a Doc from externally annotated tokens.
// Offsets are recomputed from Text and Whitespace so callers only need to
// fill the linguistic attributes.
func NewDoc(tokens []Token) *Doc {
	var sb strings.Builder
	offset := 0
	toks := make([]Token, len(tokens))
	for i, t := range tokens {
		t.Offset = offset
		sb.WriteString(t.Text)
		sb.WriteString(t.Whitespace)
		offset += len(t.Text) + len(t.Whitespace)
		toks[i] = t
	}
	return &Doc{tokens: toks, text: strings.TrimRight(sb.String(), " ")}
}

// Len returns the number of tokens.
func (d *Doc) Len() int { return len(d.tokens) }

// At returns the token at index i. Callers are expected to bounds-check;
// out-of-range access is a programming error, same as slice indexing.
func (d *Doc) At(i int) Token { return d.tokens[i] }

// Tokens returns the underlying token slice. The slice must not be mutated.
func (d *Doc) Tokens() []Token { return d.tokens }

// Text returns the full document text.
func (d *Doc) Text() string { return d.text }

// Slice returns the contiguous source text covering tokens [i, j), with
// whitespace between tokens preserved and trailing whitespace trimmed.
// An empty or inverted range yields "".
func (d *Doc) Slice(i, j int) string {
	if i < 0 {
		i = 0
	}
	if j > len(d.tokens) {
		j = len(d.tokens)
	}
	if i >= j {
		return ""
	}
	var sb strings.Builder
	for k := i; k < j; k++ {
		sb.WriteString(d.tokens[k].Text)
		if k != j-1 {
			sb.WriteString(d.tokens[k].Whitespace)
		}
	}
	return sb.String()
}

// TextBefore returns the source text preceding token i, trailing whitespace
// trimmed. Used by match hooks that look at the left context.
func (d *Doc) TextBefore(i int) string {
	if i <= 0 {
		return ""
	}
	if i >= len(d.tokens) {
		return strings.TrimRight(d.text, " ")
	}
	end := d.tokens[i].Offset
	return strings.TrimRight(d.text[:min(end, len(d.text))], " ")
}

// TextAfter returns the source text from token i onward, or "" when i is
// past the last token.
func (d *Doc) TextAfter(i int) string {
	if i >= len(d.tokens) {
		return ""
	}
	if i < 0 {
		i = 0
	}
	return d.text[d.tokens[i].Offset:]
}
