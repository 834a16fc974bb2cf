// errors.go: the four error kinds and caret-snippet formatting.
//
// What this file does
// --------------------
// Every stage of the pipeline returns one of four error kinds rather than
// a bare error string, so callers (and the CLI) can tell a syntax mistake
// from a missing reference from a dynamic failure:
//
//   - ParseError   — produced by parser.go. Line/col of the offending token.
//   - CompileError — produced by compiler.go. Names the list it occurred in.
//   - RuntimeError — produced by eval.go/expression.go/methods.go. Carries a
//     Trace of list/item names the evaluator was inside of.
//   - ImportError  — wraps any of the above, or a raw Loader failure, with
//     the generator name that triggered the import.
//
// FormatWithSource renders a ParseError or CompileError as a Python-style
// caret snippet:
//
//	parse error at 3:12: unterminated bracket
//
//	   2 | output
//	   3 |   [animal
//	     |            ^
//
// This mirrors daios-ai-msg/errors.go's WrapErrorWithSource, adapted from
// wrapping an arbitrary lex/parse error value to formatting loom's own
// typed error structs directly.
package loom

import (
	"fmt"
	"strings"
)

type ParseError struct {
	Span Span
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Span, e.Msg)
}

type CompileError struct {
	ListName string
	Span     Span
	Msg      string
}

func (e *CompileError) Error() string {
	if e.ListName != "" {
		return fmt.Sprintf("compile error in list %q at %s: %s", e.ListName, e.Span, e.Msg)
	}
	return fmt.Sprintf("compile error at %s: %s", e.Span, e.Msg)
}

type RuntimeError struct {
	Msg   string
	Trace []string
}

func (e *RuntimeError) Error() string {
	if len(e.Trace) == 0 {
		return fmt.Sprintf("runtime error: %s", e.Msg)
	}
	return fmt.Sprintf("runtime error: %s (in %s)", e.Msg, strings.Join(e.Trace, " -> "))
}

func newRuntimeError(msg string) *RuntimeError {
	return &RuntimeError{Msg: msg}
}

// withFrame returns a copy of e with name prepended to its trace, used as the
// evaluator unwinds out of nested list/item evaluations.
func (e *RuntimeError) withFrame(name string) *RuntimeError {
	trace := make([]string, 0, len(e.Trace)+1)
	trace = append(trace, name)
	trace = append(trace, e.Trace...)
	return &RuntimeError{Msg: e.Msg, Trace: trace}
}

type ImportError struct {
	Name  string
	Cause error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import error for %q: %s", e.Name, e.Cause)
}

func (e *ImportError) Unwrap() error { return e.Cause }

// FormatWithSource renders a ParseError or CompileError as a caret-annotated
// snippet of src. Any other error is returned unchanged via err.Error().
func FormatWithSource(err error, src string) string {
	var line, col int
	var header, msg string

	switch e := err.(type) {
	case *ParseError:
		line, col, header, msg = e.Span.Line, e.Span.Col, "parse error", e.Msg
	case *CompileError:
		line, col, header, msg = e.Span.Line, e.Span.Col, "compile error", e.Msg
	default:
		return err.Error()
	}

	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		return fmt.Sprintf("%s at %d:%d: %s", header, line, col, msg)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	caretCol := col
	if caretCol < 1 {
		caretCol = 1
	}
	b.WriteString("     | ")
	b.WriteString(strings.Repeat(" ", caretCol-1))
	b.WriteString("^\n")
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
