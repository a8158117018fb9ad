package asm

import (
	"testing"

	"github.com/sixty502/x65asm/cpu"
)

func newEmitEnv(cpuID cpu.ID) (*cpu.InstructionSet, *sectionManager, *labelTable, *tableEnv, *exprParser) {
	iset := cpu.Get(cpuID)
	mgr := newSectionManager()
	mgr.setFixedSection("code", 0x1000)
	lt := newLabelTable(mgr)
	env := &tableEnv{labelTable: lt, pcOK: true, scopeStartOK: true, scopeEndOK: true}
	return iset, mgr, lt, env, &exprParser{}
}

func emitLine(t *testing.T, iset *cpu.InstructionSet, sec *section, lt *labelTable, env evalEnv, exprP *exprParser, mnemonic, operand string) error {
	t.Helper()
	return emitInstruction(iset, mnemonic, newFstring(0, 1, operand), sec, lt, env, exprP, newFstring(0, 1, ""), DialectSane, false, false)
}

func TestDisambiguateImmediate(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "LDA", "#$42"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if len(sec.data) != 2 || sec.data[1] != 0x42 {
		t.Fatalf("data = %v, want [opcode 0x42]", sec.data)
	}
}

func TestDisambiguateZeroPageDemotion(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "LDA", "$10"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	inst := lookupByMode(iset, "LDA", cpu.ModeZP)
	if sec.data[0] != inst.Opcode || len(sec.data) != 2 {
		t.Fatalf("data = %v, want zero-page LDA (opcode 0x%x, 1 operand byte)", sec.data, inst.Opcode)
	}
}

func TestDisambiguateAbsoluteWhenValueTooLarge(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "LDA", "$1234"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	inst := lookupByMode(iset, "LDA", cpu.ModeAbs)
	if sec.data[0] != inst.Opcode || len(sec.data) != 3 {
		t.Fatalf("data = %v, want absolute LDA (opcode 0x%x, 2 operand bytes)", sec.data, inst.Opcode)
	}
	if sec.data[1] != 0x34 || sec.data[2] != 0x12 {
		t.Errorf("operand bytes = %v, want little-endian $1234", sec.data[1:])
	}
}

func TestDisambiguateIndirectX(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "LDA", "($20,x)"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	inst := lookupByMode(iset, "LDA", cpu.ModeZPIndX)
	if sec.data[0] != inst.Opcode || sec.data[1] != 0x20 {
		t.Fatalf("data = %v, want indirect-X LDA opcode 0x%x", sec.data, inst.Opcode)
	}
}

func TestDisambiguateIndirectY(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "LDA", "($20),y"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	inst := lookupByMode(iset, "LDA", cpu.ModeZPIndY)
	if sec.data[0] != inst.Opcode || sec.data[1] != 0x20 {
		t.Fatalf("data = %v, want indirect-Y LDA opcode 0x%x", sec.data, inst.Opcode)
	}
}

func TestDisambiguateAccumulator(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "ASL", "A"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	inst := lookupByMode(iset, "ASL", cpu.ModeAcc)
	if sec.data[0] != inst.Opcode || len(sec.data) != 1 {
		t.Fatalf("data = %v, want accumulator-mode ASL", sec.data)
	}
}

func TestDisambiguateImplied(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "NOP", ""); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	inst := lookupByMode(iset, "NOP", cpu.ModeImpl)
	if len(sec.data) != 1 || sec.data[0] != inst.Opcode {
		t.Fatalf("data = %v, want implied NOP", sec.data)
	}
}

func TestFlipXYRejectsCommaX(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "STX", "$10,x"); err == nil {
		t.Fatal("STX does not support ,x indexing, expected an error")
	}
}

func TestFlipXYAcceptsCommaYAsZPX(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "STX", "$10,y"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	inst := lookupByMode(iset, "STX", cpu.ModeZPX)
	if sec.data[0] != inst.Opcode {
		t.Fatalf("data = %v, want STX zp,x-slot opcode 0x%x (source wrote zp,y)", sec.data, inst.Opcode)
	}
}

func TestForwardReferenceQueuesLateEval(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "JMP", "later"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if len(lt.queue) != 1 {
		t.Fatalf("expected 1 queued late-eval for the forward reference, got %d", len(lt.queue))
	}
	if err := lt.addressLabel("later", 0x2000, 0, false, env); err != nil {
		t.Fatalf("addressLabel failed: %v", err)
	}
	inst := lookupByMode(iset, "JMP", cpu.ModeAbs)
	if sec.data[0] != inst.Opcode || sec.data[1] != 0x00 || sec.data[2] != 0x20 {
		t.Fatalf("data = %v, want JMP $2000 written back after resolution", sec.data)
	}
}

func TestBranchEmitsAndResolves(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "BNE", "loop"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if err := lt.addressLabel("loop", 0x1000, 0, false, env); err != nil {
		t.Fatalf("addressLabel failed: %v", err)
	}
	if int8(sec.data[1]) != -2 {
		t.Fatalf("branch displacement = %d, want -2 (branch to self)", int8(sec.data[1]))
	}
}

func TestBranchOutOfRangeIsError(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "BEQ", "far"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	err := lt.addressLabel("far", 0x2000, 0, false, env)
	if err == nil {
		t.Fatal("expected BranchOutOfRange for a target far outside a signed byte's range")
	}
}

func TestBlockMoveEmitsTwoBankBytes(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.CMOS65816)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "MVP", "$01,$02"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	inst := lookupByMode(iset, "MVP", cpu.ModeBlockMove)
	if sec.data[0] != inst.Opcode || sec.data[1] != 0x02 || sec.data[2] != 0x01 {
		t.Fatalf("data = %v, want [opcode dstBank srcBank]", sec.data)
	}
}

func TestLongIndirectBracket(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.CMOS65816)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "LDA", "[$10]"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	inst := lookupByMode(iset, "LDA", cpu.ModeZPIndL)
	if sec.data[0] != inst.Opcode || sec.data[1] != 0x10 {
		t.Fatalf("data = %v, want long-indirect LDA opcode 0x%x", sec.data, inst.Opcode)
	}
}

func TestStackRelativeIndirectIndexed(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.CMOS65816)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "LDA", "($04,s),y"); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	inst := lookupByMode(iset, "LDA", cpu.ModeStackIndY)
	if sec.data[0] != inst.Opcode || sec.data[1] != 0x04 {
		t.Fatalf("data = %v, want stack-relative-indirect-indexed LDA opcode 0x%x", sec.data, inst.Opcode)
	}
}

func TestUnknownMnemonicIsError(t *testing.T) {
	iset, mgr, lt, env, exprP := newEmitEnv(cpu.NMOS6502)
	sec := mgr.current()
	if err := emitLine(t, iset, sec, lt, env, exprP, "XYZZY", ""); err == nil {
		t.Fatal("expected UnknownMnemonic for a nonexistent mnemonic")
	}
}
