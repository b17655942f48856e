package inflect

import (
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// English inflects English words from an irregular-forms table plus regular
// suffix rules. The zero value is not usable; construct with NewEnglish.
type English struct {
	// lemma -> tag -> form, irregulars first, then any caller-supplied
	// entries layered on top
	forms map[string]map[string]string
	// surface form -> lemmas, for Lemmas and shared-lemma checks
	index *patricia.Trie
}

// NewEnglish builds the inflector. extraForms (may be nil) is a
// caller-supplied lemma -> tag -> form table consulted before the regular
// rules, the moral equivalent of the original forms-lookup file.
func NewEnglish(extraForms map[string]map[string]string) *English {
	e := &English{
		forms: map[string]map[string]string{},
		index: patricia.NewTrie(),
	}
	for lemma, tags := range irregularForms {
		e.addForms(lemma, tags)
	}
	for lemma, tags := range extraForms {
		e.addForms(lemma, tags)
	}
	return e
}

func (e *English) addForms(lemma string, tags map[string]string) {
	dst, ok := e.forms[lemma]
	if !ok {
		dst = map[string]string{}
		e.forms[lemma] = dst
	}
	for tag, form := range tags {
		dst[tag] = form
		e.indexForm(form, lemma)
	}
	e.indexForm(lemma, lemma)
}

func (e *English) indexForm(form, lemma string) {
	key := patricia.Prefix(form)
	if item := e.index.Get(key); item != nil {
		lemmas := item.([]string)
		for _, l := range lemmas {
			if l == lemma {
				return
			}
		}
		e.index.Set(key, append(lemmas, lemma))
		return
	}
	e.index.Insert(key, []string{lemma})
}

// Inflect returns the form(s) of word under one fine-grained tag, or nil
// when the tag is unknown.
func (e *English) Inflect(word, tag string) []string {
	lemma := e.baseForm(word)
	if tags, ok := e.forms[lemma]; ok {
		if form, ok := tags[tag]; ok {
			return []string{form}
		}
	}
	if form, ok := regularInflect(lemma, tag); ok {
		return []string{form}
	}
	return nil
}

// InflectPOS fans out over every tag of the coarse class, deduplicated in
// tag order.
func (e *English) InflectPOS(word, pos string) []string {
	tags, ok := posTags[pos]
	if !ok {
		return nil
	}
	return e.collect(word, tags)
}

// AllForms returns every distinct form of word across all known tags.
func (e *English) AllForms(word string) []string {
	var all []string
	for _, tags := range [][]string{posTags["NOUN"], posTags["VERB"], posTags["ADJ"], posTags["ADV"]} {
		all = append(all, tags...)
	}
	return e.collect(word, all)
}

func (e *English) collect(word string, tags []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, tag := range tags {
		for _, form := range e.Inflect(word, tag) {
			if !seen[form] {
				seen[form] = true
				out = append(out, form)
			}
		}
	}
	return out
}

// Lemmas returns the candidate base forms of a surface word: indexed
// irregular lemmas first, then heuristic suffix stripping, always
// including the lowercased word itself.
func (e *English) Lemmas(word string) []string {
	lower := strings.ToLower(word)
	var out []string
	seen := map[string]bool{}
	add := func(l string) {
		if l != "" && !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	if item := e.index.Get(patricia.Prefix(lower)); item != nil {
		for _, l := range item.([]string) {
			add(l)
		}
	}
	add(lower)
	for _, l := range stripSuffixes(lower) {
		add(l)
	}
	return out
}

// baseForm resolves a possibly inflected word to its lemma so Inflect can
// start from the base.
func (e *English) baseForm(word string) string {
	lower := strings.ToLower(word)
	if _, ok := e.forms[lower]; ok {
		return lower
	}
	if item := e.index.Get(patricia.Prefix(lower)); item != nil {
		lemmas := item.([]string)
		if len(lemmas) > 0 {
			return lemmas[0]
		}
	}
	return lower
}

// stripSuffixes applies the regular de-inflection heuristics.
func stripSuffixes(word string) []string {
	var out []string
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 3:
		out = append(out, word[:len(word)-3]+"y")
	case strings.HasSuffix(word, "es") && len(word) > 2:
		out = append(out, word[:len(word)-2], word[:len(word)-1])
	case strings.HasSuffix(word, "s") && len(word) > 1 && !strings.HasSuffix(word, "ss"):
		out = append(out, word[:len(word)-1])
	}
	if strings.HasSuffix(word, "ed") && len(word) > 3 {
		stem := word[:len(word)-2]
		out = append(out, stem, stem+"e")
		if n := len(stem); n > 1 && stem[n-1] == stem[n-2] {
			out = append(out, stem[:n-1])
		}
	}
	if strings.HasSuffix(word, "ing") && len(word) > 4 {
		stem := word[:len(word)-3]
		out = append(out, stem, stem+"e")
		if n := len(stem); n > 1 && stem[n-1] == stem[n-2] {
			out = append(out, stem[:n-1])
		}
	}
	if strings.HasSuffix(word, "ly") && len(word) > 3 {
		out = append(out, word[:len(word)-2])
	}
	return out
}

// regularInflect applies suffix rules for regular words.
func regularInflect(lemma, tag string) (string, bool) {
	if lemma == "" {
		return "", false
	}
	switch tag {
	case "NN", "NNP", "VB", "VBP", "JJ", "RB":
		return lemma, true
	case "NNS", "NNPS", "VBZ":
		return pluralize(lemma), true
	case "VBD", "VBN":
		return pastTense(lemma), true
	case "VBG":
		return gerund(lemma), true
	case "JJR", "RBR":
		return comparative(lemma, "er"), true
	case "JJS", "RBS":
		return comparative(lemma, "est"), true
	}
	return "", false
}

func pluralize(w string) string {
	switch {
	case endsConsonantY(w):
		return w[:len(w)-1] + "ies"
	case strings.HasSuffix(w, "s"), strings.HasSuffix(w, "x"), strings.HasSuffix(w, "z"),
		strings.HasSuffix(w, "ch"), strings.HasSuffix(w, "sh"):
		return w + "es"
	default:
		return w + "s"
	}
}

func pastTense(w string) string {
	switch {
	case strings.HasSuffix(w, "e"):
		return w + "d"
	case endsConsonantY(w):
		return w[:len(w)-1] + "ied"
	case shouldDouble(w):
		return w + string(w[len(w)-1]) + "ed"
	default:
		return w + "ed"
	}
}

func gerund(w string) string {
	switch {
	case strings.HasSuffix(w, "ie"):
		return w[:len(w)-2] + "ying"
	case strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "ee"):
		return w[:len(w)-1] + "ing"
	case shouldDouble(w):
		return w + string(w[len(w)-1]) + "ing"
	default:
		return w + "ing"
	}
}

func comparative(w, suffix string) string {
	switch {
	case strings.HasSuffix(w, "e"):
		return w + suffix[1:]
	case endsConsonantY(w):
		return w[:len(w)-1] + "i" + suffix
	case shouldDouble(w):
		return w + string(w[len(w)-1]) + suffix
	default:
		return w + suffix
	}
}

func isVowel(b byte) bool {
	return b == 'a' || b == 'e' || b == 'i' || b == 'o' || b == 'u'
}

func endsConsonantY(w string) bool {
	return len(w) > 1 && strings.HasSuffix(w, "y") && !isVowel(w[len(w)-2])
}

// shouldDouble reports the consonant-vowel-consonant shape that doubles the
// final consonant in short words (run -> running).
func shouldDouble(w string) bool {
	n := len(w)
	if n < 3 {
		return false
	}
	last, mid, first := w[n-1], w[n-2], w[n-3]
	if isVowel(last) || last == 'w' || last == 'x' || last == 'y' {
		return false
	}
	return isVowel(mid) && !isVowel(first) && n <= 4
}
