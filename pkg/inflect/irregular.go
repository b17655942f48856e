package inflect

// irregularForms is the builtin lemma -> tag -> form table for the common
// English irregulars. Callers extend it through NewEnglish.
var irregularForms = map[string]map[string]string{
	"be":    {"VB": "be", "VBP": "are", "VBZ": "is", "VBD": "was", "VBG": "being", "VBN": "been"},
	"have":  {"VB": "have", "VBZ": "has", "VBD": "had", "VBG": "having", "VBN": "had"},
	"do":    {"VB": "do", "VBZ": "does", "VBD": "did", "VBG": "doing", "VBN": "done"},
	"go":    {"VB": "go", "VBZ": "goes", "VBD": "went", "VBG": "going", "VBN": "gone"},
	"say":   {"VBD": "said", "VBN": "said"},
	"make":  {"VBD": "made", "VBN": "made"},
	"take":  {"VBD": "took", "VBN": "taken"},
	"come":  {"VBD": "came", "VBN": "come"},
	"see":   {"VBD": "saw", "VBN": "seen"},
	"know":  {"VBD": "knew", "VBN": "known"},
	"get":   {"VBD": "got", "VBN": "gotten"},
	"give":  {"VBD": "gave", "VBN": "given"},
	"find":  {"VBD": "found", "VBN": "found"},
	"think": {"VBD": "thought", "VBN": "thought"},
	"tell":  {"VBD": "told", "VBN": "told"},
	"write": {"VBD": "wrote", "VBN": "written"},
	"read":  {"VBD": "read", "VBN": "read"},
	"sing":  {"VBD": "sang", "VBN": "sung"},
	"eat":   {"VBD": "ate", "VBN": "eaten"},
	"run":   {"VBD": "ran", "VBN": "run"},
	"speak": {"VBD": "spoke", "VBN": "spoken"},
	"break": {"VBD": "broke", "VBN": "broken"},
	"bring": {"VBD": "brought", "VBN": "brought"},
	"buy":   {"VBD": "bought", "VBN": "bought"},
	"begin": {"VBD": "began", "VBN": "begun"},
	"keep":  {"VBD": "kept", "VBN": "kept"},
	"hold":  {"VBD": "held", "VBN": "held"},
	"stand": {"VBD": "stood", "VBN": "stood"},
	"hear":  {"VBD": "heard", "VBN": "heard"},
	"mean":  {"VBD": "meant", "VBN": "meant"},
	"meet":  {"VBD": "met", "VBN": "met"},
	"pay":   {"VBD": "paid", "VBN": "paid"},
	"sit":   {"VBD": "sat", "VBN": "sat"},
	"lead":  {"VBD": "led", "VBN": "led"},
	"grow":  {"VBD": "grew", "VBN": "grown"},
	"lose":  {"VBD": "lost", "VBN": "lost"},
	"fall":  {"VBD": "fell", "VBN": "fallen"},
	"send":  {"VBD": "sent", "VBN": "sent"},
	"build": {"VBD": "built", "VBN": "built"},
	"spend": {"VBD": "spent", "VBN": "spent"},
	"drive": {"VBD": "drove", "VBN": "driven"},
	"wear":  {"VBD": "wore", "VBN": "worn"},
	"choose": {"VBD": "chose", "VBN": "chosen"},
	"leave":  {"VBD": "left", "VBN": "left"},
	"feel":   {"VBD": "felt", "VBN": "felt"},
	"feed":   {"VBD": "fed", "VBN": "fed"},

	"person": {"NNS": "people"},
	"ox":     {"NNS": "oxen"},
	"child":  {"NNS": "children"},
	"man":    {"NNS": "men"},
	"woman":  {"NNS": "women"},
	"foot":   {"NNS": "feet"},
	"tooth":  {"NNS": "teeth"},
	"mouse":  {"NNS": "mice"},
	"goose":  {"NNS": "geese"},
	"sheep":  {"NNS": "sheep"},
	"deer":   {"NNS": "deer"},
	"fish":   {"NNS": "fish"},

	"good":   {"JJR": "better", "JJS": "best"},
	"bad":    {"JJR": "worse", "JJS": "worst"},
	"far":    {"JJR": "farther", "JJS": "farthest"},
	"little": {"JJR": "less", "JJS": "least"},
	"many":   {"JJR": "more", "JJS": "most"},
	"much":   {"JJR": "more", "JJS": "most"},
	"well":   {"RBR": "better", "RBS": "best"},
}
