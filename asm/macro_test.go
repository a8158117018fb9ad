package asm

import "testing"

func TestSubstituteIdentifierParamsIsWordBounded(t *testing.T) {
	line := newFstring(0, 1, ".byte x, x+1, party")
	out := substituteIdentifierParams(line, []string{"x"}, []string{"parity"})
	want := ".byte parity, parity+1, party"
	if out.str != want {
		t.Fatalf("got %q, want %q", out.str, want)
	}
}

func TestSubstituteMerlinParamsHandlesMultiDigit(t *testing.T) {
	line := newFstring(0, 1, "lda ]1,]10")
	args := make([]string, 10)
	args[0] = "foo"
	args[9] = "bar"
	out := substituteMerlinParams(line, args)
	if out.str != "lda foo,bar" {
		t.Fatalf("got %q, want %q", out.str, "lda foo,bar")
	}
}

func TestMacroDefineDuplicateIsError(t *testing.T) {
	tbl := newMacroTable()
	m := &macro{name: "m"}
	if err := tbl.define(m); err != nil {
		t.Fatalf("first define failed: %v", err)
	}
	if err := tbl.define(&macro{name: "M"}); err == nil {
		t.Fatal("expected duplicate-macro error (case-insensitive)")
	}
}

func TestMacroFrameExpandsAllBodyLines(t *testing.T) {
	m := &macro{
		name:   "m",
		params: []string{"x"},
		body: []fstring{
			newFstring(0, 2, ".byte x"),
			newFstring(0, 3, ".byte x+1"),
		},
	}
	c := newMacroFrame(m, []fstring{newFstring(0, 10, "parity")}, DialectSane)
	if len(c.lines) != 2 || c.lines[0].str != ".byte parity" || c.lines[1].str != ".byte parity+1" {
		t.Fatalf("expanded lines = %+v", c.lines)
	}
	if !c.scopeOpened {
		t.Error("sane-dialect macro expansion should open a scope")
	}
}

func TestReptFrameLoopsThroughContextStack(t *testing.T) {
	var stack contextStack
	body := []fstring{newFstring(0, 5, ".byte REPT")}
	stack.push(newReptFrame(4, body))

	var seen []fstring
	for {
		line, _, ok := stack.nextLine()
		if !ok {
			break
		}
		seen = append(seen, line)
	}
	if len(seen) != 4 {
		t.Fatalf("rept should yield 4 lines, got %d", len(seen))
	}
}

func TestContextStackPopsExhaustedFrames(t *testing.T) {
	var stack contextStack
	stack.push(&context{kind: ctxFile, lines: []fstring{newFstring(0, 1, "a"), newFstring(0, 2, "b")}})
	l1, _, ok := stack.nextLine()
	if !ok || l1.str != "a" {
		t.Fatalf("first line = %q,%v", l1.str, ok)
	}
	l2, _, ok := stack.nextLine()
	if !ok || l2.str != "b" {
		t.Fatalf("second line = %q,%v", l2.str, ok)
	}
	_, _, ok = stack.nextLine()
	if ok {
		t.Fatal("expected the stack to drain after the last line")
	}
	if stack.depth() != 0 {
		t.Errorf("depth = %d, want 0 after draining", stack.depth())
	}
}
