package asm

import "testing"

func TestConditionalSimpleIfElse(t *testing.T) {
	var c condStack
	c.pushIf(false)
	if c.enabled() {
		t.Fatal("expected disabled inside a false #if")
	}
	c.elseOrElif(true)
	if !c.enabled() {
		t.Fatal("expected enabled after #else following a false #if")
	}
	c.endif()
	if !c.enabled() {
		t.Fatal("expected enabled at top level after #endif")
	}
}

func TestConditionalElifOnlyFiresOnce(t *testing.T) {
	var c condStack
	c.pushIf(true)
	c.elseOrElif(true) // should not re-fire since the #if branch already consumed
	if c.enabled() {
		t.Fatal("expected the elif to stay inactive since the if branch already ran")
	}
}

func TestConditionalNestedInsideInactiveBranchIsAbsorbed(t *testing.T) {
	var c condStack
	c.pushIf(false)
	c.pushIf(true) // nested #if while outer is false: absorbed via nesting, not a new level
	if len(c.levels) != 1 || c.levels[0].nesting != 1 {
		t.Fatalf("levels = %+v, want single level with nesting=1", c.levels)
	}
	c.endif()
	if len(c.levels) != 1 || c.levels[0].nesting != 0 {
		t.Fatalf("levels after inner endif = %+v, want nesting=0", c.levels)
	}
	c.endif()
	if len(c.levels) != 0 {
		t.Fatalf("levels after outer endif = %+v, want empty", c.levels)
	}
}

func TestConditionalEndifWithoutIfIsError(t *testing.T) {
	var c condStack
	if err := c.endif(); err == nil {
		t.Fatal("expected EndifWithoutIf")
	}
}

func TestConditionalUnterminatedDetection(t *testing.T) {
	var c condStack
	c.pushIf(true)
	if !c.unterminated() {
		t.Fatal("expected unterminated to report true with an open #if")
	}
}
