package loom

import "testing"

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return prog
}

func TestParseSimpleList(t *testing.T) {
	prog := mustParse(t, "output\n\tcat\n\tdog\n")
	list := prog.FindList("output")
	if list == nil {
		t.Fatal("expected list \"output\"")
	}
	if len(list.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(list.Items))
	}
}

func TestParseTwoSpaceIndent(t *testing.T) {
	prog := mustParse(t, "output\n  cat\n  dog\n")
	list := prog.FindList("output")
	if list == nil || len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %+v", list)
	}
}

func TestParseWeight(t *testing.T) {
	prog := mustParse(t, "output\n\tcat^3\n\tdog\n")
	list := prog.FindList("output")
	if list.Items[0].Weight != 3 {
		t.Errorf("weight = %v, want 3", list.Items[0].Weight)
	}
	if list.Items[1].Weight != 1 {
		t.Errorf("default weight = %v, want 1", list.Items[1].Weight)
	}
}

func TestParseOutputDirective(t *testing.T) {
	prog := mustParse(t, "output\n\t$output = hello\n")
	list := prog.FindList("output")
	if list.Output == nil {
		t.Fatal("expected $output body to be set")
	}
	text, ok := list.Output[0].(TextPart)
	if !ok || text.Text != "hello" {
		t.Errorf("got %#v", list.Output[0])
	}
}

// A bare identifier line with nothing else on it, followed by a deeper
// block, is always a named sub-list header of the enclosing list or
// item — never a plain item, regardless of what the nested block turns
// out to contain (a property, more items, or further nested names).
func TestParseProperty(t *testing.T) {
	prog := mustParse(t, "animal\n\tcat\n\t\tsound = meow\n")
	list := prog.FindList("animal")
	sub, ok := list.SubLists["cat"]
	if !ok {
		t.Fatal("expected sub-list \"cat\"")
	}
	prop, ok := sub.Properties["sound"]
	if !ok {
		t.Fatal("expected property \"sound\"")
	}
	text := prop.Body[0].(TextPart)
	if text.Text != "meow" {
		t.Errorf("got %q", text.Text)
	}
}

func TestParseSubList(t *testing.T) {
	prog := mustParse(t, "animal\n\tcat\n\t\tnicknames\n\t\t\twhiskers\n\t\t\tmittens\n")
	list := prog.FindList("animal")
	cat, ok := list.SubLists["cat"]
	if !ok {
		t.Fatal("expected sub-list \"cat\"")
	}
	sub, ok := cat.SubLists["nicknames"]
	if !ok {
		t.Fatal("expected sub-list \"nicknames\"")
	}
	if len(sub.Items) != 2 {
		t.Fatalf("got %d sub-items, want 2", len(sub.Items))
	}
}

// A bare identifier that has a weight marker or other trailing content on
// its own line can't be a sub-list header (nothing else may follow the
// name on that line for it to qualify), so it parses as a regular item
// whose own nested block still becomes its Properties/SubLists.
func TestParseItemOwnedSubList(t *testing.T) {
	prog := mustParse(t, "animal\n\tcat^2\n\t\tnicknames\n\t\t\twhiskers\n\t\t\tmittens\n")
	list := prog.FindList("animal")
	if len(list.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(list.Items))
	}
	item := list.Items[0]
	sub, ok := item.SubLists["nicknames"]
	if !ok {
		t.Fatal("expected sub-list \"nicknames\"")
	}
	if len(sub.Items) != 2 {
		t.Fatalf("got %d sub-items, want 2", len(sub.Items))
	}
}

func TestParseReference(t *testing.T) {
	prog := mustParse(t, "output\n\tthe [animal]\n")
	list := prog.FindList("output")
	parts := list.Items[0].Content
	found := false
	for _, p := range parts {
		if _, ok := p.(ReferencePart); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a ReferencePart, got %#v", parts)
	}
}

func TestParseInlineAlternation(t *testing.T) {
	prog := mustParse(t, "output\n\t{red|blue|green}\n")
	parts := prog.FindList("output").Items[0].Content
	blk, ok := parts[0].(InlineBlockPart)
	if !ok || blk.Kind != InlineAlternation {
		t.Fatalf("got %#v", parts[0])
	}
	if len(blk.Alts) != 3 {
		t.Fatalf("got %d alternatives, want 3", len(blk.Alts))
	}
}

func TestParseInlineIntRange(t *testing.T) {
	prog := mustParse(t, "output\n\t{1-10}\n")
	blk := prog.FindList("output").Items[0].Content[0].(InlineBlockPart)
	if blk.Kind != InlineIntRange || blk.RangeLo != 1 || blk.RangeHi != 10 {
		t.Fatalf("got %#v", blk)
	}
}

func TestParseInlineLetterRange(t *testing.T) {
	prog := mustParse(t, "output\n\t{a-z}\n")
	blk := prog.FindList("output").Items[0].Content[0].(InlineBlockPart)
	if blk.Kind != InlineLetterRangeLower || blk.LetterLo != 'a' || blk.LetterHi != 'z' {
		t.Fatalf("got %#v", blk)
	}
}

func TestParseArticleAndPluralize(t *testing.T) {
	prog := mustParse(t, "output\n\t{a} cat{s}\n")
	parts := prog.FindList("output").Items[0].Content
	blk0, ok := parts[0].(InlineBlockPart)
	if !ok || blk0.Kind != InlineArticle {
		t.Fatalf("got %#v", parts[0])
	}
	found := false
	for _, p := range parts {
		if ib, ok := p.(InlineBlockPart); ok && ib.Kind == InlinePluralize {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an InlinePluralize part in %#v", parts)
	}
}

func TestParseImportMarker(t *testing.T) {
	prog := mustParse(t, "output\n\t{import:animals}\n")
	parts := prog.FindList("output").Items[0].Content
	ip, ok := parts[0].(ImportPart)
	if !ok || ip.Name != "animals" {
		t.Fatalf("got %#v", parts[0])
	}
}

func TestParseRejectsArithmeticOperator(t *testing.T) {
	_, err := Parse("output\n\t[a * b]\n")
	if err == nil {
		t.Fatal("expected an error for arithmetic operator")
	}
}

func TestParseEscapedCaretIsLiteral(t *testing.T) {
	prog := mustParse(t, "output\n\tcat\\^3\n")
	text := prog.FindList("output").Items[0].Content[0].(TextPart)
	if text.Text != "cat^3" {
		t.Errorf("got %q, want %q", text.Text, "cat^3")
	}
}

func TestParseUnknownEscapePreservedLiterally(t *testing.T) {
	prog := mustParse(t, "output\n\ta\\qb\n")
	text := prog.FindList("output").Items[0].Content[0].(TextPart)
	if text.Text != "a\\qb" {
		t.Errorf("got %q, want %q", text.Text, "a\\qb")
	}
}

func TestParseEscapedSpaceSurvivesTrim(t *testing.T) {
	prog := mustParse(t, "output\n\t\\s cat \\s\n")
	text := prog.FindList("output").Items[0].Content[0].(TextPart)
	if text.Text != "  cat  " {
		t.Errorf("got %q, want %q", text.Text, "  cat  ")
	}
}

func TestParseDuplicateListNameError(t *testing.T) {
	_, err := Parse("output\n\tcat\noutput\n\tdog\n")
	if err == nil {
		t.Fatal("expected an error for duplicate list name")
	}
}
