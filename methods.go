// methods.go: MethodCallExpr -> Value.
//
// What this file does
// --------------------
// Three families of methods:
//
//   - selection: selectOne/selectAll/selectMany(n) (weighted, with
//     replacement — duplicates expected)/selectUnique(n) (weighted, without
//     replacement — errors if n exceeds the list length)/consumableList,
//     which only make sense on a ListHandle.
//   - text transform: upperCase/lowerCase/titleCase/sentenceCase, which work
//     on any value by stringifying it first.
//   - grammar: pastTense/presentTense/futureTense/pluralForm/singularForm/
//     possessiveForm/negativeForm (grammar.go), same calling convention.
//
// Plus joinItems(sep), which turns an Array from a multi-select method back
// into Text. Dispatch is a flat name switch, the same shape
// daios-ai-msg/interpreter.go uses for its own builtin-method table rather
// than a registry/plugin abstraction, since the method set is fixed and
// small.
package loom

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func (e *Evaluator) evalMethodCall(mc MethodCallExpr) (Value, error) {
	target, err := e.evalExpr(mc.Target)
	if err != nil {
		return nil, err
	}

	if cursor, ok := target.(*ConsumableCursor); ok {
		return e.evalCursorMethod(cursor, mc)
	}

	switch mc.Method {
	case "selectOne", "selectAll", "selectMany", "selectUnique", "consumableList":
		list, ok := target.(ListHandle)
		if !ok {
			return nil, newRuntimeError(mc.Method + " requires a list, got a " + target.Kind())
		}
		return e.evalSelection(list.List, mc)
	case "joinItems":
		return e.evalJoinItems(target, mc)
	case "upperCase", "lowerCase", "titleCase", "sentenceCase":
		s, err := e.render(target)
		if err != nil {
			return nil, err
		}
		return Text(textTransform(mc.Method, s)), nil
	case "pastTense", "presentTense", "futureTense", "pluralForm", "singularForm", "possessiveForm", "negativeForm":
		s, err := e.render(target)
		if err != nil {
			return nil, err
		}
		return Text(grammarTransform(mc.Method, s)), nil
	}
	return nil, newRuntimeError("unknown method " + mc.Method)
}

func (e *Evaluator) evalSelection(list *CompiledList, mc MethodCallExpr) (Value, error) {
	switch mc.Method {
	case "selectOne":
		item, err := e.pickItem(list)
		if err != nil {
			return nil, err
		}
		return ItemHandle{Item: item}, nil
	case "selectAll":
		out := make([]Value, len(list.Items))
		for i, it := range list.Items {
			out[i] = ItemHandle{Item: it}
		}
		return Array{Elements: out}, nil
	case "selectMany":
		n, err := e.intArg(mc, 0)
		if err != nil {
			return nil, err
		}
		weights := make([]float64, len(list.Items))
		for i, it := range list.Items {
			weights[i] = it.Weight
		}
		idxs := weightedPickMany(weights, n, e.rng)
		out := make([]Value, len(idxs))
		for i, idx := range idxs {
			out[i] = ItemHandle{Item: list.Items[idx]}
		}
		return Array{Elements: out}, nil
	case "selectUnique":
		n, err := e.intArg(mc, 0)
		if err != nil {
			return nil, err
		}
		weights := make([]float64, len(list.Items))
		for i, it := range list.Items {
			weights[i] = it.Weight
		}
		idxs, err := weightedPickUnique(weights, n, e.rng)
		if err != nil {
			return nil, err
		}
		out := make([]Value, len(idxs))
		for i, idx := range idxs {
			out[i] = ItemHandle{Item: list.Items[idx]}
		}
		return Array{Elements: out}, nil
	case "consumableList":
		return newConsumableCursor(list), nil
	}
	return nil, newRuntimeError("unknown selection method " + mc.Method)
}

// evalCursorMethod handles the two operations a ConsumableCursor supports:
// next() draws the next item without replacement; isExhausted() reports
// whether any remain.
func (e *Evaluator) evalCursorMethod(cursor *ConsumableCursor, mc MethodCallExpr) (Value, error) {
	switch mc.Method {
	case "next":
		item, err := cursor.next(e.rng)
		if err != nil {
			return nil, err
		}
		return ItemHandle{Item: item}, nil
	case "isExhausted":
		return Boolean(cursor.State == CursorExhausted), nil
	}
	return nil, newRuntimeError("unknown cursor method " + mc.Method)
}

func (e *Evaluator) intArg(mc MethodCallExpr, idx int) (int, error) {
	if idx >= len(mc.Args) {
		return 0, newRuntimeError(mc.Method + " requires an argument")
	}
	v, err := e.evalExpr(mc.Args[idx])
	if err != nil {
		return 0, err
	}
	n, ok := v.(Number)
	if !ok {
		return 0, newRuntimeError(mc.Method + " argument must be a number")
	}
	return int(n), nil
}

// evalJoinItems renders an Array (from selectAll/selectMany/selectUnique)
// back to text, joined by an optional separator argument (", " if absent).
// Each ItemHandle renders the same way a chosen item renders in a body: its
// Content, not its struct fields.
func (e *Evaluator) evalJoinItems(target Value, mc MethodCallExpr) (Value, error) {
	arr, ok := target.(Array)
	if !ok {
		return nil, newRuntimeError("joinItems requires an array, got a " + target.Kind())
	}
	sep := ", "
	if len(mc.Args) > 0 {
		v, err := e.evalExpr(mc.Args[0])
		if err != nil {
			return nil, err
		}
		sep, err = e.render(v)
		if err != nil {
			return nil, err
		}
	}
	rendered := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		s, err := e.render(el)
		if err != nil {
			return nil, err
		}
		rendered[i] = s
	}
	return Text(strings.Join(rendered, sep)), nil
}

var titleCaser = cases.Title(language.English)

func textTransform(method, s string) string {
	switch method {
	case "upperCase":
		return strings.ToUpper(s)
	case "lowerCase":
		return strings.ToLower(s)
	case "titleCase":
		return titleCaser.String(s)
	case "sentenceCase":
		return sentenceCase(s)
	}
	return s
}

func sentenceCase(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	lower := strings.ToLower(s)
	lr := []rune(lower)
	return strings.ToUpper(string(lr[0])) + string(lr[1:])
}

func grammarTransform(method, s string) string {
	switch method {
	case "pastTense":
		return pastTense(s)
	case "presentTense":
		return presentTense(s)
	case "futureTense":
		return futureTense(s)
	case "pluralForm":
		return pluralForm(s)
	case "singularForm":
		return singularForm(s)
	case "possessiveForm":
		return possessiveForm(s)
	case "negativeForm":
		return negativeForm(s)
	}
	return s
}
