package loom

import (
	"strings"
	"testing"
)

func TestFormatWithSourceCaret(t *testing.T) {
	src := "output\n  [animal\n"
	err := &ParseError{Span: Span{Line: 2, Col: 10}, Msg: "unterminated bracket"}
	out := FormatWithSource(err, src)
	if !strings.Contains(out, "parse error at 2:10: unterminated bracket") {
		t.Errorf("missing header in output: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret in output: %q", out)
	}
	if !strings.Contains(out, "[animal") {
		t.Errorf("missing offending line in output: %q", out)
	}
}

func TestRuntimeErrorTrace(t *testing.T) {
	err := newRuntimeError("boom")
	err = err.withFrame("inner")
	err = err.withFrame("outer")
	want := "runtime error: boom (in outer -> inner)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestImportErrorUnwrap(t *testing.T) {
	cause := newRuntimeError("file missing")
	err := &ImportError{Name: "animals", Cause: cause}
	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() did not return the wrapped cause")
	}
}
