/*
Package inflect provides the grammatical inflection service suggestion
resolution depends on: given a base word and a target tag or coarse
part-of-speech, it produces the inflected surface forms.

The English implementation combines an irregular-forms table (indexed in a
patricia trie for surface-to-lemma lookups), an optional caller-supplied
forms table, and regular suffix rules. Callers that need a different
language or a smarter morphology plug in their own Service.
*/
package inflect

// Service is the narrow interface the engine consumes.
// Inflect returns the forms of word for one fine-grained tag (ex. VBD);
// InflectPOS fans out over every tag of a coarse class (ex. NOUN -> NN,
// NNS); AllForms returns every form known for the word. All three return
// nil when the word cannot be inflected. Lemmas returns the candidate base
// forms for a surface word, always at least the word itself.
type Service interface {
	Inflect(word, tag string) []string
	InflectPOS(word, pos string) []string
	AllForms(word string) []string
	Lemmas(word string) []string
}

// Inflection request kinds, derived from a suggestion item's INFLECTION
// value.
const (
	TypeTag = "tag"
	TypePOS = "pos"
	TypeAll = "all"
)

// coarse classes with their fine-grained tags, in fan-out order
var posTags = map[string][]string{
	"NOUN":  {"NNS", "NN"},
	"PROPN": {"NNPS", "NNP"},
	"VERB":  {"VB", "VBD", "VBG", "VBN", "VBZ"},
	"AUX":   {"VB", "VBD", "VBG", "VBN", "VBZ"},
	"ADJ":   {"JJ", "JJR", "JJS"},
	"ADV":   {"RB", "RBR", "RBS"},
}

// Type classifies an INFLECTION value: "ALL", a coarse part-of-speech, or
// anything else which is treated as a fine-grained tag.
func Type(inflection string) string {
	if inflection == "ALL" {
		return TypeAll
	}
	if _, ok := posTags[inflection]; ok {
		return TypePOS
	}
	return TypeTag
}
