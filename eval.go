// eval.go: CompiledProgram -> string.
//
// What this file does
// --------------------
// Evaluate walks a list's items (weighted selection via selection.go),
// renders the chosen item's body, and recurses through any [...] references
// it contains. {a}/{A} can't be resolved at the point it's encountered
// because it depends on what comes *after* it once the whole body is
// assembled: it looks at the next rendered word to choose "a" or "an". So a
// body render is a two-pass operation: first render everything to a string
// with {a}/{A} left as a private-use placeholder rune, then a single
// postprocess pass resolves each placeholder against its right-hand
// neighbor. This mirrors the placeholder-then-fixup approach
// daios-ai-msg/interpreter.go uses for its own forward-reference formatting
// directives.
//
// {s} is different: it depends on what came *before* it (the most recently
// rendered number in the same body), which is already known by the time
// the renderer reaches it, so it resolves inline without a placeholder.
package loom

import (
	"context"
	"strconv"
	"strings"
	"unicode"
)

// Evaluator holds everything one Evaluate call needs: the program being
// rendered, the PRNG, the import boundary, and variable scope.
type Evaluator struct {
	Program *CompiledProgram
	rng     *rng
	imports *importCache
	scope   *scope
	trace   []string
}

// NewEvaluator builds an Evaluator for one run. loader may be nil if the
// program is known not to use {import:...}.
func NewEvaluator(ctx context.Context, program *CompiledProgram, seed int64, loader GeneratorLoader) *Evaluator {
	return &Evaluator{
		Program: program,
		rng:     newRNG(seed),
		imports: newImportCache(ctx, loader),
		scope:   newScope(),
	}
}

// Evaluate renders the program's entry list to text.
func (e *Evaluator) Evaluate() (string, error) {
	list, ok := e.Program.Lists[e.Program.Entry]
	if !ok {
		return "", newRuntimeError("no entry list named " + e.Program.Entry)
	}
	return e.evalList(list)
}

func (e *Evaluator) evalList(list *CompiledList) (string, error) {
	e.trace = append(e.trace, list.Name)
	defer func() { e.trace = e.trace[:len(e.trace)-1] }()

	if list.Output != nil {
		return e.evalBody(list.Output)
	}
	item, err := e.pickItem(list)
	if err != nil {
		return "", e.wrapErr(err)
	}
	return e.evalItem(item)
}

func (e *Evaluator) pickItem(list *CompiledList) (*CompiledItem, error) {
	if len(list.Items) == 0 {
		return nil, newRuntimeError("list " + list.Name + " has no items")
	}
	weights := make([]float64, len(list.Items))
	for i, it := range list.Items {
		weights[i] = it.Weight
	}
	idx := weightedPick(weights, e.rng)
	return list.Items[idx], nil
}

func (e *Evaluator) evalItem(item *CompiledItem) (string, error) {
	e.scope.push()
	defer e.scope.pop()
	body, err := e.evalBody(item.Content)
	if err != nil {
		return "", err
	}
	// An item that carries sub-lists but renders no body of its own falls
	// back to its name as the body.
	if body == "" && item.Name != "" && len(item.SubLists) > 0 {
		return item.Name, nil
	}
	return body, nil
}

// bodyState carries the "most recent number rendered" left-context that
// {s} needs, threaded through one evalBody call and the inline blocks it
// evaluates directly. It does not cross into a [reference]'s own list
// evaluation, since that renders as its own independent body.
type bodyState struct {
	lastNumber float64
	haveNumber bool
}

// noteNumber records the last numeric word of s, if it has one, as the
// body's most recently rendered number.
func noteNumber(st *bodyState, s string) {
	for _, w := range strings.Fields(s) {
		if c := w[0]; c != '-' && (c < '0' || c > '9') {
			continue
		}
		if n, err := strconv.ParseFloat(w, 64); err == nil {
			st.lastNumber, st.haveNumber = n, true
		}
	}
}

// evalBody is the two-pass render described in the file comment.
func (e *Evaluator) evalBody(parts []ContentPart) (string, error) {
	var b strings.Builder
	st := &bodyState{}
	for _, part := range parts {
		switch t := part.(type) {
		case TextPart:
			b.WriteString(t.Text)
			noteNumber(st, t.Text)
		case ReferencePart:
			v, err := e.evalExpr(t.Expr)
			if err != nil {
				return "", e.wrapErr(err)
			}
			if n, ok := v.(Number); ok {
				st.lastNumber, st.haveNumber = float64(n), true
			}
			s, err := e.render(v)
			if err != nil {
				return "", e.wrapErr(err)
			}
			b.WriteString(s)
			noteNumber(st, s)
		case ImportPart:
			if _, err := e.imports.resolve(t.Name); err != nil {
				return "", e.wrapErr(err)
			}
		case InlineBlockPart:
			s, err := e.evalInlineBlock(t, st)
			if err != nil {
				return "", e.wrapErr(err)
			}
			b.WriteString(s)
		}
	}
	return resolvePlaceholders(b.String()), nil
}

// placeholderArticle is a private-use-area rune standing in for an
// unresolved {a}/{A} until resolvePlaceholders sees what follows it.
const placeholderArticle = '\uE000'

func (e *Evaluator) evalInlineBlock(blk InlineBlockPart, st *bodyState) (string, error) {
	switch blk.Kind {
	case InlineAlternation:
		weights := make([]float64, len(blk.Alts))
		for i, alt := range blk.Alts {
			weights[i] = alt.Weight
		}
		idx := weightedPick(weights, e.rng)
		return e.evalBody(blk.Alts[idx].Content)
	case InlineIntRange:
		lo, hi := blk.RangeLo, blk.RangeHi
		n := lo + e.rng.Intn(hi-lo+1)
		st.lastNumber, st.haveNumber = float64(n), true
		return formatNumber(float64(n)), nil
	case InlineLetterRangeLower, InlineLetterRangeUpper:
		span := int(blk.LetterHi-blk.LetterLo) + 1
		r := blk.LetterLo + rune(e.rng.Intn(span))
		return string(r), nil
	case InlineArticle:
		return string(placeholderArticle), nil
	case InlinePluralize:
		if st.haveNumber && st.lastNumber == 1 {
			return "", nil
		}
		return "s", nil
	}
	return "", newRuntimeError("unknown inline block kind")
}

// resolvePlaceholders resolves every {a} marker against the word that
// follows it in the fully rendered text.
func resolvePlaceholders(s string) string {
	if !strings.ContainsRune(s, placeholderArticle) {
		return s
	}
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] != placeholderArticle {
			out = append(out, runes[i])
			continue
		}
		word := nextWord(runes[i+1:])
		article := "a"
		if startsWithVowelSound(word) {
			article = "an"
		}
		out = append(out, []rune(article)...)
	}
	return string(out)
}

func nextWord(runes []rune) string {
	start := 0
	for start < len(runes) && unicode.IsSpace(runes[start]) {
		start++
	}
	end := start
	for end < len(runes) && !unicode.IsSpace(runes[end]) {
		end++
	}
	return string(runes[start:end])
}

func startsWithVowelSound(word string) bool {
	if word == "" {
		return false
	}
	r := unicode.ToLower([]rune(word)[0])
	return strings.ContainsRune("aeiou", r)
}

func (e *Evaluator) wrapErr(err error) error {
	if re, ok := err.(*RuntimeError); ok && len(e.trace) > 0 {
		return re.withFrame(e.trace[len(e.trace)-1])
	}
	return err
}
