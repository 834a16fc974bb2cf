// grammar.go: the word-shape transforms behind pastTense, presentTense,
// futureTense, pluralForm, singularForm, possessiveForm, and negativeForm.
//
// What this file does
// --------------------
// Ported from original_source/src/evaluator/grammar.rs's irregular-word
// tables and suffix rules (to_past_tense, to_present_tense, to_plural,
// etc.), which is the only place in the corpus any of this logic exists.
// Renamed from to_x/x_form to the Go-idiomatic pastTense/pluralForm/etc.
// used by methods.go's dispatch table.
package loom

import "strings"

var irregularPastTense = map[string]string{
	"be": "was", "have": "had", "do": "did", "say": "said", "go": "went",
	"get": "got", "make": "made", "know": "knew", "think": "thought",
	"take": "took", "see": "saw", "come": "came", "want": "wanted",
	"give": "gave", "use": "used", "find": "found", "tell": "told",
	"ask": "asked", "work": "worked", "feel": "felt", "leave": "left",
	"put": "put", "mean": "meant", "keep": "kept", "let": "let",
	"begin": "began", "seem": "seemed", "help": "helped", "show": "showed",
	"hear": "heard", "play": "played", "run": "ran", "move": "moved",
	"live": "lived", "believe": "believed", "bring": "brought",
	"write": "wrote", "sit": "sat", "stand": "stood", "lose": "lost",
	"pay": "paid", "meet": "met", "include": "included",
	"continue": "continued", "set": "set", "learn": "learned",
	"change": "changed", "lead": "led", "understand": "understood",
	"watch": "watched", "follow": "followed", "stop": "stopped",
	"create": "created", "speak": "spoke", "read": "read",
	"spend": "spent", "grow": "grew", "open": "opened", "walk": "walked",
	"win": "won", "teach": "taught", "offer": "offered",
	"remember": "remembered", "consider": "considered", "appear": "appeared",
	"buy": "bought", "serve": "served", "die": "died", "send": "sent",
	"build": "built", "stay": "stayed", "fall": "fell", "cut": "cut",
	"reach": "reached", "kill": "killed", "raise": "raised",
	"pass": "passed", "sell": "sold", "decide": "decided",
	"return": "returned", "explain": "explained", "hope": "hoped",
	"develop": "developed", "carry": "carried", "break": "broke",
	"receive": "received", "agree": "agreed", "support": "supported",
	"hit": "hit", "produce": "produced", "eat": "ate", "cover": "covered",
	"catch": "caught", "draw": "drew",
}

var irregularPresentTense = map[string]string{
	"be": "is", "have": "has", "do": "does", "go": "goes", "was": "is",
	"were": "are", "had": "has", "did": "does", "went": "goes",
	"got": "gets", "made": "makes", "knew": "knows", "thought": "thinks",
	"took": "takes", "saw": "sees", "came": "comes", "gave": "gives",
	"found": "finds", "told": "tells", "asked": "asks", "felt": "feels",
	"left": "leaves", "put": "puts", "meant": "means", "kept": "keeps",
	"let": "lets", "began": "begins", "seemed": "seems", "showed": "shows",
	"heard": "hears", "ran": "runs", "moved": "moves", "lived": "lives",
	"brought": "brings", "wrote": "writes", "sat": "sits",
	"stood": "stands", "lost": "loses", "paid": "pays", "met": "meets",
	"set": "sets", "led": "leads", "understood": "understands",
	"followed": "follows", "stopped": "stops", "spoke": "speaks",
	"read": "reads", "spent": "spends", "grew": "grows",
	"walked": "walks", "won": "wins", "taught": "teaches",
	"remembered": "remembers", "appeared": "appears", "bought": "buys",
	"served": "serves", "died": "dies", "sent": "sends",
	"built": "builds", "stayed": "stays", "fell": "falls", "cut": "cuts",
	"reached": "reaches", "killed": "kills", "raised": "raises",
	"passed": "passes", "sold": "sells", "decided": "decides",
	"returned": "returns", "explained": "explains", "hoped": "hopes",
	"carried": "carries", "broke": "breaks", "received": "receives",
	"agreed": "agrees", "hit": "hits", "produced": "produces",
	"ate": "eats", "caught": "catches", "drew": "draws",
}

var irregularPlural = map[string]string{
	"child": "children", "person": "people", "man": "men",
	"woman": "women", "tooth": "teeth", "foot": "feet", "mouse": "mice",
	"goose": "geese", "ox": "oxen", "sheep": "sheep", "deer": "deer",
	"fish": "fish",
}

var irregularSingular = map[string]string{
	"children": "child", "people": "person", "men": "man",
	"women": "woman", "teeth": "tooth", "feet": "foot", "mice": "mouse",
	"geese": "goose", "oxen": "ox", "sheep": "sheep", "deer": "deer",
	"fish": "fish",
}

var negativeAuxiliaries = map[string]bool{
	"is": true, "are": true, "am": true, "was": true, "were": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "should": true,
	"could": true, "can": true, "may": true, "might": true, "must": true,
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiou", r)
}

func secondToLast(s string) (rune, bool) {
	r := []rune(s)
	if len(r) < 2 {
		return 0, false
	}
	return r[len(r)-2], true
}

func pastTense(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	lower := strings.ToLower(trimmed)
	if past, ok := irregularPastTense[lower]; ok {
		return past
	}
	if strings.HasSuffix(lower, "e") {
		return trimmed + "d"
	}
	if strings.HasSuffix(lower, "y") {
		if c, ok := secondToLast(trimmed); ok && !isVowel(toLowerRune(c)) {
			return trimmed[:len(trimmed)-1] + "ied"
		}
	}
	return trimmed + "ed"
}

func presentTense(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	lower := strings.ToLower(trimmed)
	if present, ok := irregularPresentTense[lower]; ok {
		return present
	}
	if strings.HasSuffix(lower, "s") || strings.HasSuffix(lower, "es") {
		return trimmed
	}
	if strings.HasSuffix(lower, "y") {
		if c, ok := secondToLast(trimmed); ok && !isVowel(toLowerRune(c)) {
			return trimmed[:len(trimmed)-1] + "ies"
		}
	}
	switch {
	case strings.HasSuffix(lower, "ss"), strings.HasSuffix(lower, "sh"),
		strings.HasSuffix(lower, "ch"), strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "z"), strings.HasSuffix(lower, "o"):
		return trimmed + "es"
	}
	return trimmed + "s"
}

func futureTense(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	return "will " + trimmed
}

func pluralForm(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	lower := strings.ToLower(trimmed)
	if plural, ok := irregularPlural[lower]; ok {
		return plural
	}
	switch {
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "ss"),
		strings.HasSuffix(lower, "sh"), strings.HasSuffix(lower, "ch"),
		strings.HasSuffix(lower, "x"), strings.HasSuffix(lower, "z"):
		return trimmed + "es"
	case strings.HasSuffix(lower, "y"):
		if c, ok := secondToLast(trimmed); ok && !isVowel(toLowerRune(c)) {
			return trimmed[:len(trimmed)-1] + "ies"
		}
	case strings.HasSuffix(lower, "fe"):
		return trimmed[:len(trimmed)-2] + "ves"
	case strings.HasSuffix(lower, "f"):
		return trimmed[:len(trimmed)-1] + "ves"
	case strings.HasSuffix(lower, "o"):
		if c, ok := secondToLast(trimmed); ok && !isVowel(toLowerRune(c)) {
			return trimmed + "es"
		}
	}
	return trimmed + "s"
}

func singularForm(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	lower := strings.ToLower(trimmed)
	if singular, ok := irregularSingular[lower]; ok {
		return singular
	}
	n := len(trimmed)
	switch {
	case strings.HasSuffix(lower, "ies") && n > 3:
		return trimmed[:n-3] + "y"
	case strings.HasSuffix(lower, "ves") && n > 3:
		return trimmed[:n-3] + "fe"
	case strings.HasSuffix(lower, "oes") && n > 3:
		return trimmed[:n-2] + "o"
	case strings.HasSuffix(lower, "ses") && n > 3:
		return trimmed[:n-2]
	case strings.HasSuffix(lower, "xes"), strings.HasSuffix(lower, "zes"),
		strings.HasSuffix(lower, "ches"), strings.HasSuffix(lower, "shes"):
		if n > 2 {
			return trimmed[:n-2]
		}
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss"):
		if n > 1 {
			return trimmed[:n-1]
		}
	}
	return trimmed
}

func possessiveForm(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	if strings.HasSuffix(trimmed, "s") {
		return trimmed + "'"
	}
	return trimmed + "'s"
}

func negativeForm(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	lower := strings.ToLower(trimmed)
	if negativeAuxiliaries[lower] {
		return trimmed + " not"
	}
	return "does not " + trimmed
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
