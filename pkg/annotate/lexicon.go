package annotate

// defaultLexicon covers the closed-class words and the common irregular
// verb forms suffix heuristics get wrong.
func defaultLexicon() map[string]string {
	return map[string]string{
		// pronouns
		"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
		"we": "PRP", "they": "PRP", "me": "PRP", "him": "PRP", "her": "PRP",
		"us": "PRP", "them": "PRP", "myself": "PRP", "yourself": "PRP",
		"himself": "PRP", "herself": "PRP", "itself": "PRP",
		"ourselves": "PRP", "yourselves": "PRP", "themselves": "PRP",
		"my": "PRP$", "your": "PRP$", "his": "PRP$", "its": "PRP$",
		"our": "PRP$", "their": "PRP$",
		"who": "WP", "whom": "WP", "what": "WP", "which": "WDT",

		// determiners
		"a": "DT", "an": "DT", "the": "DT", "this": "DT", "that": "DT",
		"these": "DT", "those": "DT", "some": "DT", "any": "DT", "no": "DT",
		"every": "DT", "each": "DT", "all": "DT", "both": "DT",

		// prepositions and subordinators
		"of": "IN", "in": "IN", "on": "IN", "at": "IN", "by": "IN",
		"for": "IN", "with": "IN", "about": "IN", "against": "IN",
		"between": "IN", "into": "IN", "through": "IN", "during": "IN",
		"before": "IN", "after": "IN", "above": "IN", "below": "IN",
		"from": "IN", "up": "IN", "down": "IN", "out": "IN", "over": "IN",
		"under": "IN", "if": "IN", "because": "IN", "while": "IN",
		"since": "IN", "until": "IN", "to": "IN",

		// conjunctions
		"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "so": "CC",
		"yet": "CC",

		// modals
		"can": "MD", "could": "MD", "may": "MD", "might": "MD",
		"must": "MD", "shall": "MD", "should": "MD", "will": "MD",
		"would": "MD",

		// be, have, do
		"am": "VBP", "is": "VBZ", "are": "VBP", "was": "VBD", "were": "VBD",
		"be": "VB", "been": "VBN", "being": "VBG",
		"have": "VBP", "has": "VBZ", "had": "VBD", "having": "VBG",
		"do": "VBP", "does": "VBZ", "did": "VBD", "doing": "VBG",

		// irregular pasts and participles the -ed rule misses
		"went": "VBD", "gone": "VBN", "said": "VBD", "made": "VBD",
		"took": "VBD", "taken": "VBN", "came": "VBD", "saw": "VBD",
		"seen": "VBN", "knew": "VBD", "known": "VBN", "got": "VBD",
		"gave": "VBD", "given": "VBN", "found": "VBD", "thought": "VBD",
		"told": "VBD", "wrote": "VBD", "written": "VBN", "read": "VBD",
		"sang": "VBD", "sung": "VBN", "ate": "VBD", "eaten": "VBN",
		"ran": "VBD", "spoke": "VBD", "spoken": "VBN", "broke": "VBD",
		"broken": "VBN", "brought": "VBD", "bought": "VBD", "began": "VBD",
		"begun": "VBN", "kept": "VBD", "held": "VBD", "stood": "VBD",
		"heard": "VBD", "meant": "VBD", "met": "VBD", "paid": "VBD",
		"sat": "VBD", "led": "VBD", "grew": "VBD", "grown": "VBN",
		"lost": "VBD", "fell": "VBD", "fallen": "VBN", "sent": "VBD",
		"built": "VBD", "spent": "VBD", "drove": "VBD", "driven": "VBN",
		"wore": "VBD", "worn": "VBN", "chose": "VBD", "chosen": "VBN",
		"left": "VBD", "felt": "VBD", "fed": "VBD",

		// frequent adverbs and particles
		"not": "RB", "n't": "RB", "very": "RB", "too": "RB", "also": "RB",
		"just": "RB", "now": "RB", "then": "RB", "here": "RB",
		"there": "EX", "never": "RB", "always": "RB", "often": "RB",

		// words the suffix rules misread
		"as": "IN",
		"fresh": "JJ", "juicy": "JJ", "big": "JJ", "small": "JJ",
		"new": "JJ", "old": "JJ", "good": "JJ", "bad": "JJ",
		"yes": "UH", "hello": "UH", "oh": "UH",
	}
}

// lemmaExceptions maps surface forms the round-trip heuristic cannot
// recover, mostly suppletive forms.
func lemmaExceptions() map[string]string {
	return map[string]string{
		"am": "be", "is": "be", "are": "be", "was": "be", "were": "be",
		"been": "be", "being": "be",
		"has": "have", "had": "have", "having": "have",
		"does": "do", "did": "do", "done": "do",
		"went": "go", "gone": "go",
		"better": "good", "best": "good",
		"worse": "bad", "worst": "bad",
		"people": "person", "oxen": "ox", "children": "child",
		"men": "man", "women": "woman", "feet": "foot", "teeth": "tooth",
		"mice": "mouse", "geese": "goose",
	}
}
