/*
Package annotate provides a small self-contained English annotator: a
tokenizer plus a lexicon-and-heuristics part-of-speech tagger. It exists so
the engine can run without an external NLP service; callers with a real
tagger feed the engine pre-annotated documents instead.
*/
package annotate

import (
	"strings"
	"unicode"

	"github.com/bastiangx/rephrase/pkg/inflect"
	"github.com/bastiangx/rephrase/pkg/token"
)

// Tagger tags tokens in two passes: a baseline of lexicon lookup plus
// suffix heuristics, then contextual correction rules.
type Tagger struct {
	lexicon   map[string]string
	lemmaFix  map[string]string
	inflector inflect.Service
}

// New builds a tagger with the builtin lexicon and the default English
// inflector for lemmatization.
func New() *Tagger {
	return NewWithInflector(inflect.NewEnglish(nil))
}

// NewWithInflector builds a tagger sharing the caller's inflection service.
func NewWithInflector(inflector inflect.Service) *Tagger {
	return &Tagger{
		lexicon:   defaultLexicon(),
		lemmaFix:  lemmaExceptions(),
		inflector: inflector,
	}
}

// Annotate tokenizes and tags one sentence.
func (t *Tagger) Annotate(text string) (*token.Doc, error) {
	words, spaces := tokenize(text)

	toks := make([]token.Token, len(words))
	for i, w := range words {
		tag := t.baseline(w, i == 0)
		toks[i] = token.Token{
			Text:       w,
			Tag:        tag,
			Whitespace: spaces[i],
			IsPunct:    isPunct(w),
		}
	}

	// context pass
	for i := range toks {
		prev := ""
		if i > 0 {
			prev = strings.ToLower(toks[i-1].Text)
		}
		switch {
		// determiner or adjective before a verb reading means a noun
		case i > 0 && (toks[i-1].Tag == "DT" || toks[i-1].Tag == "JJ") && strings.HasPrefix(toks[i].Tag, "VB") && toks[i].Tag != "VBG":
			toks[i].Tag = "NN"
		// infinitive marker; plain nouns after "to" are usually
		// prepositional objects, so only past forms are folded back
		case prev == "to" && toks[i].Tag == "VBD":
			toks[i].Tag = "VB"
		// perfect auxiliaries take the participle
		case (prev == "had" || prev == "has" || prev == "have") && toks[i].Tag == "VBD":
			toks[i].Tag = "VBN"
		// passive: a be-form before a past form
		case isBeForm(prev) && toks[i].Tag == "VBD":
			toks[i].Tag = "VBN"
		}
	}

	for i := range toks {
		toks[i].POS = coarsePOS(toks[i].Tag)
		toks[i].Lemma = t.lemma(toks[i].Text, toks[i].Tag)
		toks[i].Head = headOf(toks, i)
		toks[i].Dep = depOf(toks[i])
	}
	return token.NewDoc(toks), nil
}

// tokenize splits text into words and the whitespace that follows each,
// breaking punctuation runes off as their own tokens.
func tokenize(text string) ([]string, []string) {
	var words, spaces []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			spaces = append(spaces, "")
			current.Reset()
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
			if n := len(spaces); n > 0 {
				spaces[n-1] += string(r)
			}
		case r == '\'' && current.Len() > 0:
			// keep contractions together
			current.WriteRune(r)
		case isPunctRune(r):
			flush()
			words = append(words, string(r))
			spaces = append(spaces, "")
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words, spaces
}

func (t *Tagger) baseline(word string, sentenceStart bool) string {
	lower := strings.ToLower(word)
	if tag, ok := t.lexicon[lower]; ok {
		return tag
	}
	if isPunct(word) {
		return "."
	}
	if isDigits(word) {
		return "CD"
	}
	if !sentenceStart && len(word) > 0 && unicode.IsUpper(rune(word[0])) {
		return "NNP"
	}
	switch {
	case strings.HasSuffix(lower, "ly"):
		return "RB"
	case strings.HasSuffix(lower, "ing") && len(lower) > 4:
		return "VBG"
	case strings.HasSuffix(lower, "ed") && len(lower) > 3:
		return "VBD"
	case strings.HasSuffix(lower, "est") && len(lower) > 4:
		return "JJS"
	case strings.HasSuffix(lower, "ous") || strings.HasSuffix(lower, "ful") ||
		strings.HasSuffix(lower, "able") || strings.HasSuffix(lower, "ive"):
		return "JJ"
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(lower) > 3:
		return "NNS"
	}
	return "NN"
}

// lemma picks the base form whose re-inflection under the token's tag
// round-trips to the surface word, falling back to the lowercased word.
func (t *Tagger) lemma(word, tag string) string {
	lower := strings.ToLower(word)
	if l, ok := t.lemmaFix[lower]; ok {
		return l
	}
	switch tag {
	case "NNS", "NNPS", "VBD", "VBG", "VBN", "VBZ", "JJR", "JJS", "RBR", "RBS":
	default:
		return lower
	}
	for _, cand := range t.inflector.Lemmas(lower) {
		if cand == lower {
			continue
		}
		forms := t.inflector.Inflect(cand, tag)
		if len(forms) == 1 && forms[0] == lower {
			return cand
		}
	}
	return lower
}

// headOf hangs every token off the first verb, a flat approximation that
// keeps the ancestor hooks usable.
func headOf(toks []token.Token, _ int) int {
	for j, tok := range toks {
		if strings.HasPrefix(tok.Tag, "VB") {
			return j
		}
	}
	return 0
}

func depOf(tok token.Token) string {
	switch {
	case tok.IsPunct:
		return "punct"
	case tok.Tag == "DT":
		return "det"
	case strings.HasPrefix(tok.Tag, "VB"):
		return "ROOT"
	case strings.HasPrefix(tok.Tag, "NN"):
		return "nsubj"
	case tok.Tag == "JJ" || tok.Tag == "JJR" || tok.Tag == "JJS":
		return "amod"
	case strings.HasPrefix(tok.Tag, "RB"):
		return "advmod"
	case tok.Tag == "IN":
		return "prep"
	}
	return "dep"
}

func coarsePOS(tag string) string {
	switch {
	case tag == "." || tag == "," || tag == ":":
		return "PUNCT"
	case tag == "DT":
		return "DET"
	case tag == "IN":
		return "ADP"
	case tag == "CD":
		return "NUM"
	case tag == "PRP" || tag == "PRP$" || tag == "WP":
		return "PRON"
	case tag == "CC":
		return "CCONJ"
	case tag == "MD":
		return "AUX"
	case tag == "NNP" || tag == "NNPS":
		return "PROPN"
	case strings.HasPrefix(tag, "NN"):
		return "NOUN"
	case strings.HasPrefix(tag, "VB"):
		return "VERB"
	case strings.HasPrefix(tag, "JJ"):
		return "ADJ"
	case strings.HasPrefix(tag, "RB"):
		return "ADV"
	case tag == "UH":
		return "INTJ"
	}
	return "X"
}

func isBeForm(w string) bool {
	switch w {
	case "is", "are", "was", "were", "be", "been", "being", "am":
		return true
	}
	return false
}

func isPunct(w string) bool {
	for _, r := range w {
		if !isPunctRune(r) {
			return false
		}
	}
	return len(w) > 0
}

func isPunctRune(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func isDigits(w string) bool {
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(w) > 0
}
