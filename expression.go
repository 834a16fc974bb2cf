// expression.go: Expression -> Value.
//
// What this file does
// --------------------
// Evaluates everything that can appear inside a bracketed reference:
// identifier lookup (scope frame, then top-level list, then an import),
// property/dynamic access on whichever Value kind the receiver turned out
// to be, method dispatch (selection.go/methods.go), assignment into the
// current scope frame, sequencing (evaluate each, keep the last), binary
// comparisons/boolean operators, and the ternary. Structured the way
// daios-ai-msg/interpreter.go's own expression evaluator is: one big type
// switch over the AST node, each case doing just enough work and
// delegating the heavy lifting (selection, grammar, scope) to its own file.
package loom

import "strings"

func (e *Evaluator) evalExpr(expr Expression) (Value, error) {
	switch t := expr.(type) {
	case IdentExpr:
		return e.evalIdent(t)
	case PropertyExpr:
		return e.evalProperty(t)
	case DynamicAccessExpr:
		return e.evalDynamicAccess(t)
	case MethodCallExpr:
		return e.evalMethodCall(t)
	case AssignExpr:
		return e.evalAssign(t)
	case SequenceExpr:
		return e.evalSequence(t)
	case StringLiteralExpr:
		return Text(t.Value), nil
	case NumberLiteralExpr:
		return Number(t.Value), nil
	case BinaryExpr:
		return e.evalBinary(t)
	case TernaryExpr:
		return e.evalTernary(t)
	}
	return nil, newRuntimeError("unhandled expression kind")
}

func (e *Evaluator) evalIdent(id IdentExpr) (Value, error) {
	if v, ok := e.scope.lookup(id.Name); ok {
		return v, nil
	}
	if list, ok := e.Program.Lists[id.Name]; ok {
		return ListHandle{List: list}, nil
	}
	if g, err := e.imports.resolve(id.Name); err == nil {
		return *g, nil
	}
	return nil, newRuntimeError("undefined name " + id.Name)
}

// evalProperty dispatches property/sub-list access by receiver kind: a
// ListHandle's property looks up a named sub-list or flat property on the
// list itself; an ItemHandle's looks the same up on the selected item; an
// ImportedGenerator's property is resolved against its entry list.
func (e *Evaluator) evalProperty(pe PropertyExpr) (Value, error) {
	target, err := e.evalExpr(pe.Target)
	if err != nil {
		return nil, err
	}
	switch t := target.(type) {
	case ListHandle:
		return e.listProperty(t.List, pe.Prop)
	case ItemHandle:
		return e.itemProperty(t.Item, pe.Prop)
	case ImportedGenerator:
		entry, ok := t.Program.Lists[t.Program.Entry]
		if !ok {
			return nil, newRuntimeError("import " + t.Name + " has no entry list")
		}
		// Properties on an import are resolved under the imported program's
		// own Lists map, since its property bodies may reference sibling
		// lists by name. Only flat properties are supported across the
		// import boundary; a sub-list handle can't outlive this swap once
		// Program is restored, so chaining further selection methods onto an
		// imported sub-list isn't supported.
		if _, isSubList := entry.SubLists[pe.Prop]; isSubList {
			return nil, newRuntimeError("cannot access sub-list " + pe.Prop + " across an import boundary")
		}
		saved := e.Program
		e.Program = t.Program
		v, err := e.listProperty(entry, pe.Prop)
		e.Program = saved
		return v, err
	}
	return nil, newRuntimeError("cannot access property " + pe.Prop + " on a " + target.Kind())
}

func (e *Evaluator) listProperty(list *CompiledList, name string) (Value, error) {
	if sub, ok := list.SubLists[name]; ok {
		return ListHandle{List: sub}, nil
	}
	if prop, ok := list.Properties[name]; ok {
		s, err := e.evalBody(prop.Body)
		if err != nil {
			return nil, err
		}
		return Text(s), nil
	}
	return nil, newRuntimeError("list " + list.Name + " has no property " + name)
}

func (e *Evaluator) itemProperty(item *CompiledItem, name string) (Value, error) {
	if sub, ok := item.SubLists[name]; ok {
		return ListHandle{List: sub}, nil
	}
	if prop, ok := item.Properties[name]; ok {
		s, err := e.evalBody(prop.Body)
		if err != nil {
			return nil, err
		}
		return Text(s), nil
	}
	return nil, newRuntimeError("item has no property " + name)
}

// evalDynamicAccess implements "[x]" used as a key: list[expr] looks up a
// sub-list/property by a computed name.
func (e *Evaluator) evalDynamicAccess(de DynamicAccessExpr) (Value, error) {
	target, err := e.evalExpr(de.Target)
	if err != nil {
		return nil, err
	}
	key, err := e.evalExpr(de.Key)
	if err != nil {
		return nil, err
	}
	name, err := e.render(key)
	if err != nil {
		return nil, err
	}
	switch t := target.(type) {
	case ListHandle:
		return e.listProperty(t.List, name)
	case ItemHandle:
		return e.itemProperty(t.Item, name)
	}
	return nil, newRuntimeError("cannot index a " + target.Kind())
}

// evalAssign binds Name in the current scope frame. A bare list on the
// right is selected from once, so every later "[name]" renders that item.
func (e *Evaluator) evalAssign(ae AssignExpr) (Value, error) {
	v, err := e.evalExpr(ae.Rhs)
	if err != nil {
		return nil, err
	}
	if lh, ok := v.(ListHandle); ok {
		item, err := e.pickItem(lh.List)
		if err != nil {
			return nil, err
		}
		v = ItemHandle{Item: item}
	}
	e.scope.define(ae.Name, v)
	return v, nil
}

func (e *Evaluator) evalSequence(se SequenceExpr) (Value, error) {
	var last Value = Text("")
	for _, sub := range se.Exprs {
		v, err := e.evalExpr(sub)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

// evalBinary implements comparisons, &&/||, and the property-fallback
// reading of ||: "[x.prop || default]" evaluates x.prop, and if that
// raised a RuntimeError (missing property) rather than a comparison
// failure, treats the left side as falsy and falls through to the right
// instead of propagating the error. Equality/inequality compare numerically
// when both sides are Number and compare rendered text otherwise; ordering
// likewise compares numerically when both sides are Number.
func (e *Evaluator) evalBinary(be BinaryExpr) (Value, error) {
	if be.Op == OpOr {
		left, err := e.evalExpr(be.Left)
		if err != nil {
			if _, ok := err.(*RuntimeError); !ok {
				return nil, err
			}
			left = Boolean(false)
		}
		if truthy(left) {
			return left, nil
		}
		return e.evalExpr(be.Right)
	}
	if be.Op == OpAnd {
		left, err := e.evalExpr(be.Left)
		if err != nil {
			return nil, err
		}
		if !truthy(left) {
			return left, nil
		}
		return e.evalExpr(be.Right)
	}

	left, err := e.evalExpr(be.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(be.Right)
	if err != nil {
		return nil, err
	}

	if be.Op == OpEq || be.Op == OpNe {
		eq, err := e.valuesEqual(left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(eq == (be.Op == OpEq)), nil
	}

	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if lok && rok {
		switch be.Op {
		case OpLt:
			return Boolean(ln < rn), nil
		case OpLe:
			return Boolean(ln <= rn), nil
		case OpGt:
			return Boolean(ln > rn), nil
		case OpGe:
			return Boolean(ln >= rn), nil
		}
	}
	ls, err := e.render(left)
	if err != nil {
		return nil, err
	}
	rs, err := e.render(right)
	if err != nil {
		return nil, err
	}
	switch be.Op {
	case OpLt:
		return Boolean(ls < rs), nil
	case OpLe:
		return Boolean(ls <= rs), nil
	case OpGt:
		return Boolean(ls > rs), nil
	case OpGe:
		return Boolean(ls >= rs), nil
	}
	return nil, newRuntimeError("unsupported comparison operator")
}

// render turns any Value into the text that gets spliced into a body,
// exactly the way stringify does for Text/Number/Boolean. An Array renders
// each element through render and joins them with ", ". Four kinds need the
// Evaluator to finish the job: a ListHandle auto-selects one item (a bare
// "[animal]" reference is shorthand for "[animal.selectOne()]"), an
// ItemHandle renders its selected item's body, an ImportedGenerator renders
// its own entry list under its own program, and a *ConsumableCursor draws
// its next remaining item and renders it. An assignment's value is rendered
// too, so "[deck = card.consumableList(), \"\"][deck], [deck]" draws two
// distinct cards the same way two ".next()" calls would; the empty-text
// tail keeps the assignment itself from drawing one. A method call needs
// its parentheses: "card.consumableList" without them is a property lookup
// and fails. Property/sub-list access on a
// ListHandle or ItemHandle never goes through render — listProperty/
// itemProperty resolve those directly, since a flat property is
// independent of item selection.
func (e *Evaluator) render(v Value) (string, error) {
	switch t := v.(type) {
	case ListHandle:
		item, err := e.pickItem(t.List)
		if err != nil {
			return "", err
		}
		return e.evalItem(item)
	case ItemHandle:
		e.scope.push()
		defer e.scope.pop()
		return e.evalBody(t.Item.Content)
	case ImportedGenerator:
		saved := e.Program
		e.Program = t.Program
		defer func() { e.Program = saved }()
		return e.Evaluate()
	case *ConsumableCursor:
		item, err := t.next(e.rng)
		if err != nil {
			return "", err
		}
		return e.evalItem(item)
	case Array:
		parts := make([]string, len(t.Elements))
		for i, el := range t.Elements {
			s, err := e.render(el)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ", "), nil
	default:
		return stringify(v), nil
	}
}

func (e *Evaluator) valuesEqual(a, b Value) (bool, error) {
	an, aok := a.(Number)
	bn, bok := b.(Number)
	if aok && bok {
		return an == bn, nil
	}
	as, err := e.render(a)
	if err != nil {
		return false, err
	}
	bs, err := e.render(b)
	if err != nil {
		return false, err
	}
	return as == bs, nil
}

func (e *Evaluator) evalTernary(te TernaryExpr) (Value, error) {
	cond, err := e.evalExpr(te.Cond)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return e.evalExpr(te.Then)
	}
	return e.evalExpr(te.Else)
}
