package asm

import "testing"

// tableEnv adapts a labelTable plus fixed PC values into a full evalEnv.
type tableEnv struct {
	*labelTable
	pc, scopeStart, scopeEnd int
	pcOK, scopeStartOK, scopeEndOK bool
}

func (e *tableEnv) currentPC() (int, bool)    { return e.pc, e.pcOK }
func (e *tableEnv) scopeStartPC() (int, bool) { return e.scopeStart, e.scopeStartOK }
func (e *tableEnv) scopeEndPC() (int, bool)   { return e.scopeEnd, e.scopeEndOK }

func newTableEnv() (*labelTable, *tableEnv) {
	mgr := newSectionManager()
	mgr.setFixedSection("code", 0x1000)
	lt := newLabelTable(mgr)
	return lt, &tableEnv{labelTable: lt, pcOK: true, scopeStartOK: true, scopeEndOK: true}
}

func TestAssignLabelImmediate(t *testing.T) {
	lt, env := newTableEnv()
	e := parseExpr(t, "1+2", DialectSane)
	if err := lt.assignLabel("count", e, false, env, newFstring(0, 1, ""), newFstring(0, 1, "")); err != nil {
		t.Fatalf("assignLabel failed: %v", err)
	}
	l := lt.get("count")
	if l == nil || !l.flags.evaluated || l.value != 3 {
		t.Fatalf("count = %+v, want evaluated value 3", l)
	}
}

func TestAssignLabelDeferredThenResolved(t *testing.T) {
	lt, env := newTableEnv()
	e := parseExpr(t, "later+1", DialectSane)
	if err := lt.assignLabel("early", e, false, env, newFstring(0, 1, ""), newFstring(0, 1, "")); err != nil {
		t.Fatalf("assignLabel failed: %v", err)
	}
	if l := lt.get("early"); l != nil && l.flags.evaluated {
		t.Fatal("early should not be evaluated until later is known")
	}
	if len(lt.queue) != 1 {
		t.Fatalf("expected 1 queued late-eval, got %d", len(lt.queue))
	}

	e2 := parseExpr(t, "5", DialectSane)
	if err := lt.assignLabel("later", e2, false, env, newFstring(0, 1, ""), newFstring(0, 1, "")); err != nil {
		t.Fatalf("assignLabel(later) failed: %v", err)
	}
	l := lt.get("early")
	if l == nil || !l.flags.evaluated || l.value != 6 {
		t.Fatalf("early = %+v, want evaluated value 6 after re-check", l)
	}
	if len(lt.queue) != 0 {
		t.Errorf("queue should be drained, has %d entries", len(lt.queue))
	}
}

func TestModifyingConstIsRejected(t *testing.T) {
	lt, env := newTableEnv()
	e1 := parseExpr(t, "1", DialectSane)
	if err := lt.assignLabel("k", e1, true, env, newFstring(0, 1, ""), newFstring(0, 1, "")); err != nil {
		t.Fatalf("first assign failed: %v", err)
	}
	e2 := parseExpr(t, "2", DialectSane)
	err := lt.assignLabel("k", e2, true, env, newFstring(0, 1, ""), newFstring(0, 1, ""))
	ae, ok := err.(asmerror)
	if !ok || ae.status != ModifyingConst {
		t.Fatalf("expected ModifyingConst, got %v", err)
	}
}

func TestAddressLabelRelative(t *testing.T) {
	lt, env := newTableEnv()
	lt.addressLabel("loop", 0x1010, 0, false, env)
	l := lt.get("loop")
	if !l.flags.evaluated || !l.flags.pcRelative || l.sectionID != 0 || l.value != 0x1010 {
		t.Fatalf("loop = %+v, want relative to section 0 at 0x1010", l)
	}
}

func TestLateEvalByteWriteBack(t *testing.T) {
	lt, env := newTableEnv()
	sec := lt.sections.current()
	sec.addByte(0) // placeholder for the forward reference
	e := parseExpr(t, "target", DialectSane)
	lt.enqueue(&lateEval{tree: e, exprText: e.String(), typ: evalByte, owningSection: 0, targetOffset: 0, scopeEndPC: -1})

	target := parseExpr(t, "0x42", DialectSane)
	if err := lt.assignLabel("target", target, false, env, newFstring(0, 1, ""), newFstring(0, 1, "")); err != nil {
		t.Fatalf("assignLabel failed: %v", err)
	}
	if sec.data[0] != 0x42 {
		t.Errorf("byte write-back = 0x%x, want 0x42", sec.data[0])
	}
}

func TestLateEvalBranchOutOfRange(t *testing.T) {
	lt, env := newTableEnv()
	sec := lt.sections.current()
	sec.addByte(0)
	e := parseExpr(t, "far", DialectSane)
	lt.enqueue(&lateEval{tree: e, exprText: e.String(), typ: evalBranch8, owningSection: 0, targetOffset: 0, pcAtEmission: 0x1000, scopeEndPC: -1})

	target := parseExpr(t, "0x2000", DialectSane)
	err := lt.assignLabel("far", target, false, env, newFstring(0, 1, ""), newFstring(0, 1, ""))
	if err == nil {
		t.Fatal("expected BranchOutOfRange surfaced from the re-check pass")
	}
}
