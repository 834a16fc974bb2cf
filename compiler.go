// compiler.go: Program (AST) -> CompiledProgram.
//
// What this file does
// --------------------
// Compilation does three things the evaluator should never have to redo on
// every run: resolve every list/sub-list into one addressable tree with
// name lookups pre-built, validate method calls that are knowable without
// running anything (arity, and the two constructs this language rejects
// outright --- selectMany(min,max) and the arithmetic operators, the latter
// already rejected by the parser), and reject non-positive weights. Each
// weight is a constant the parser already read from a trailing ^N; the
// cumulative tables a draw uses are built at draw time in selection.go.
// This mirrors daios-ai-msg/compiler.go's own shape: walk the AST once,
// build a lookup-friendly IR, and surface every static mistake as a
// CompileError instead of deferring it to a panic at run time.
package loom

import "fmt"

// CompiledProgram is the unit the evaluator runs: every top-level list,
// indexed by name, plus the entry point's resolved name ("output" unless
// Program had some other single list and no "output" was present).
type CompiledProgram struct {
	Lists map[string]*CompiledList
	Entry string
}

type CompiledList struct {
	Name       string
	Items      []*CompiledItem
	Properties map[string]*CompiledProperty
	SubLists   map[string]*CompiledList
	Output     []ContentPart
	Span       Span
}

type CompiledItem struct {
	Content    []ContentPart
	Name       string
	Weight     float64
	Properties map[string]*CompiledProperty
	SubLists   map[string]*CompiledList
	Span       Span
}

type CompiledProperty struct {
	Name string
	Body []ContentPart
	Span Span
}

// selectionArity holds the required/maximum argument counts of the
// selection methods, consumableList and joinItems. Methods not listed here
// (the grammar, text-transform and cursor methods in methods.go) take no
// arguments at all.
var selectionArity = map[string]struct{ min, max int }{
	"selectOne":      {0, 0},
	"selectAll":      {0, 0},
	"selectUnique":   {1, 1},
	"selectMany":     {1, 2},
	"consumableList": {0, 0},
	"joinItems":      {0, 1},
}

func Compile(prog *Program) (*CompiledProgram, error) {
	cp := &CompiledProgram{Lists: map[string]*CompiledList{}}
	for _, l := range prog.Lists {
		cl, err := compileList(l)
		if err != nil {
			return nil, err
		}
		cp.Lists[l.Name] = cl
	}
	if _, ok := cp.Lists["output"]; ok {
		cp.Entry = "output"
	} else if len(prog.Lists) == 1 {
		cp.Entry = prog.Lists[0].Name
	} else {
		return nil, &CompileError{Msg: "no list named \"output\" and more than one top-level list"}
	}
	for _, l := range prog.Lists {
		if err := validateBody(l.Name, l.Output); err != nil {
			return nil, err
		}
		for _, it := range l.Items {
			if err := validateItem(l.Name, it); err != nil {
				return nil, err
			}
		}
		for _, prop := range l.Properties {
			if err := validateBody(l.Name, prop.Body); err != nil {
				return nil, err
			}
		}
	}
	return cp, nil
}

func compileList(l *List) (*CompiledList, error) {
	cl := &CompiledList{
		Name:       l.Name,
		Properties: map[string]*CompiledProperty{},
		SubLists:   map[string]*CompiledList{},
		Output:     l.Output,
		Span:       l.Span,
	}
	for _, it := range l.Items {
		ci, err := compileItem(it)
		if err != nil {
			return nil, err
		}
		cl.Items = append(cl.Items, ci)
	}
	for name, prop := range l.Properties {
		cl.Properties[name] = &CompiledProperty{Name: prop.Name, Body: prop.Body, Span: prop.Span}
	}
	for name, sub := range l.SubLists {
		csub, err := compileList(sub)
		if err != nil {
			return nil, err
		}
		cl.SubLists[name] = csub
	}
	return cl, nil
}

func compileItem(it *Item) (*CompiledItem, error) {
	ci := &CompiledItem{
		Content:    it.Content,
		Name:       it.Name,
		Weight:     it.Weight,
		Properties: map[string]*CompiledProperty{},
		SubLists:   map[string]*CompiledList{},
		Span:       it.Span,
	}
	if it.Weight <= 0 {
		return nil, &CompileError{Span: it.Span, Msg: "item weight must be greater than zero"}
	}
	for name, prop := range it.Properties {
		ci.Properties[name] = &CompiledProperty{Name: prop.Name, Body: prop.Body, Span: prop.Span}
	}
	for name, sub := range it.SubLists {
		csub, err := compileList(sub)
		if err != nil {
			return nil, err
		}
		ci.SubLists[name] = csub
	}
	return ci, nil
}

func validateItem(listName string, it *Item) error {
	if err := validateBody(listName, it.Content); err != nil {
		return err
	}
	for _, prop := range it.Properties {
		if err := validateBody(listName, prop.Body); err != nil {
			return err
		}
	}
	for _, sub := range it.SubLists {
		for _, sit := range sub.Items {
			if err := validateItem(listName, sit); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateBody(listName string, parts []ContentPart) error {
	for _, part := range parts {
		switch t := part.(type) {
		case ReferencePart:
			if err := validateExpr(listName, t.Expr); err != nil {
				return err
			}
		case InlineBlockPart:
			if t.Kind == InlineAlternation {
				for _, alt := range t.Alts {
					if alt.Weight <= 0 {
						return &CompileError{ListName: listName, Span: t.Span, Msg: "alternative weight must be greater than zero"}
					}
					if err := validateBody(listName, alt.Content); err != nil {
						return err
					}
				}
			}
			if t.Kind == InlineIntRange && t.RangeLo > t.RangeHi {
				return &CompileError{ListName: listName, Span: t.Span, Msg: "integer range lower bound exceeds upper bound"}
			}
		}
	}
	return nil
}

func validateExpr(listName string, e Expression) error {
	switch t := e.(type) {
	case MethodCallExpr:
		if spec, ok := selectionArity[t.Method]; ok {
			if len(t.Args) < spec.min || len(t.Args) > spec.max {
				return &CompileError{ListName: listName, Span: t.Sp, Msg: fmt.Sprintf("%s takes %d argument(s), got %d", t.Method, spec.min, len(t.Args))}
			}
			if t.Method == "selectMany" && len(t.Args) == 2 {
				return &CompileError{ListName: listName, Span: t.Sp, Msg: "selectMany(min, max) is not supported; use selectMany(count)"}
			}
		}
		if err := validateExpr(listName, t.Target); err != nil {
			return err
		}
		for _, a := range t.Args {
			if err := validateExpr(listName, a); err != nil {
				return err
			}
		}
	case PropertyExpr:
		return validateExpr(listName, t.Target)
	case DynamicAccessExpr:
		if err := validateExpr(listName, t.Target); err != nil {
			return err
		}
		return validateExpr(listName, t.Key)
	case AssignExpr:
		return validateExpr(listName, t.Rhs)
	case SequenceExpr:
		for _, sub := range t.Exprs {
			if err := validateExpr(listName, sub); err != nil {
				return err
			}
		}
	case BinaryExpr:
		if err := validateExpr(listName, t.Left); err != nil {
			return err
		}
		return validateExpr(listName, t.Right)
	case TernaryExpr:
		if err := validateExpr(listName, t.Cond); err != nil {
			return err
		}
		if err := validateExpr(listName, t.Then); err != nil {
			return err
		}
		return validateExpr(listName, t.Else)
	}
	return nil
}
