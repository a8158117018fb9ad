// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"
	"testing"

	"github.com/sixty502/x65asm/cpu"
)

func assembleSane(t *testing.T, cpuID cpu.ID, src string) *Assembler {
	t.Helper()
	a := NewAssembler(Options{CPU: cpuID})
	if err := a.AssembleFrom(strings.NewReader(src), "t.asm", DialectSane); err != nil {
		t.Fatalf("AssembleFrom: %v", err)
	}
	if err := a.finish(true); err != nil {
		t.Fatalf("finish: %v (errs=%v)", err, a.Errors())
	}
	return a
}

func TestAssembleForwardBranchResolves(t *testing.T) {
	src := "  org $1000\n  bne skip\n  nop\nskip:\n  rts\n"
	a := assembleSane(t, cpu.NMOS6502, src)
	sec := a.sections.current()
	if len(sec.data) != 4 {
		t.Fatalf("data = %v, want 4 bytes", sec.data)
	}
	bne := lookupByMode(a.iset, "BNE", cpu.ModeAbs)
	if sec.data[0] != bne.Opcode {
		t.Fatalf("data[0] = %#x, want BNE opcode %#x", sec.data[0], bne.Opcode)
	}
	if sec.data[1] != 1 {
		t.Errorf("branch offset = %d, want 1 (skip over the one-byte nop)", sec.data[1])
	}
	if sec.data[2] != 0xEA {
		t.Errorf("data[2] = %#x, want NOP (0xEA)", sec.data[2])
	}
	if sec.data[3] != 0x60 {
		t.Errorf("data[3] = %#x, want RTS (0x60)", sec.data[3])
	}
}

// TestAssembleRelativeSectionLinksAtFixedAddress mirrors the two-section
// LINK example: a relative section named "code" holding a forward
// reference to a label defined later in the same section, linked into a
// fixed section at $2000.
func TestAssembleRelativeSectionLinksAtFixedAddress(t *testing.T) {
	src := "  section code\n  lda data\ndata:\n  byte 7\n  org $2000\n  link code\n"
	a := assembleSane(t, cpu.NMOS6502, src)
	sec := a.sections.current()
	if !sec.isFixed() || sec.startAddress != 0x2000 {
		t.Fatalf("current section = %+v, want fixed at 0x2000", sec)
	}
	want := []byte{0xAD, 0x03, 0x20, 0x07}
	if len(sec.data) != len(want) {
		t.Fatalf("data = %v, want %v", sec.data, want)
	}
	for i := range want {
		if sec.data[i] != want[i] {
			t.Errorf("data[%d] = %#x, want %#x", i, sec.data[i], want[i])
		}
	}
}

func TestAssembleMacroSubstitutesParameters(t *testing.T) {
	src := "macro loadval(val)\n  lda #val\nendm\n  org $2000\n  loadval $5\n"
	a := assembleSane(t, cpu.NMOS6502, src)
	sec := a.sections.current()
	if len(sec.data) != 2 || sec.data[1] != 0x05 {
		t.Fatalf("data = %v, want [LDA# opcode, 0x05]", sec.data)
	}
}

func TestAssembleReptExpandsBody(t *testing.T) {
	src := "  org $3000\nrept 3\n  nop\nendr\n"
	a := assembleSane(t, cpu.NMOS6502, src)
	sec := a.sections.current()
	if len(sec.data) != 3 {
		t.Fatalf("data = %v, want 3 NOPs", sec.data)
	}
	for i, b := range sec.data {
		if b != 0xEA {
			t.Errorf("data[%d] = %#x, want 0xEA", i, b)
		}
	}
	if len(a.scopes) != 0 {
		t.Fatalf("scopes left open after rept frame drained: %v", a.scopes)
	}
}

func TestAssemble65816AccumulatorWidthTogglesImmediateSize(t *testing.T) {
	src := "  org $4000\n  a16\n  lda #$1234\n  a8\n  lda #$56\n"
	a := assembleSane(t, cpu.CMOS65816, src)
	sec := a.sections.current()
	if len(sec.data) != 5 {
		t.Fatalf("data = %v, want 3+2 bytes (wide then narrow immediate)", sec.data)
	}
	if sec.data[1] != 0x34 || sec.data[2] != 0x12 {
		t.Errorf("wide immediate bytes = %v, want little-endian $1234", sec.data[1:3])
	}
	if sec.data[4] != 0x56 {
		t.Errorf("narrow immediate byte = %#x, want 0x56", sec.data[4])
	}
}

// TestAssembleExplicitWideImmediateLiteralForcesTwoBytes exercises the
// case the width-toggle test above deliberately skips: an explicit
// 4-hex-digit literal forces a 2-byte immediate even under a8.
func TestAssembleExplicitWideImmediateLiteralForcesTwoBytes(t *testing.T) {
	src := "  org $4000\n  a8\n  lda #$1234\n"
	a := assembleSane(t, cpu.CMOS65816, src)
	sec := a.sections.current()
	want := []byte{0xA9, 0x34, 0x12}
	if len(sec.data) != len(want) {
		t.Fatalf("data = %v, want %v", sec.data, want)
	}
	for i := range want {
		if sec.data[i] != want[i] {
			t.Errorf("data[%d] = %#x, want %#x", i, sec.data[i], want[i])
		}
	}
}

func TestAssembleStructMemberOffsetResolves(t *testing.T) {
	src := "struct point\nx byte\ny byte\nendstruct\n  org $5000\n  lda #point.y\n"
	a := assembleSane(t, cpu.NMOS6502, src)
	sec := a.sections.current()
	if len(sec.data) != 2 || sec.data[1] != 1 {
		t.Fatalf("data = %v, want immediate value 1 (point.y's offset)", sec.data)
	}
}

func TestAssembleBraceScopePurgesLocalLabel(t *testing.T) {
	src := "  org $6000\n{\n.loop:\n  nop\n  bne .loop\n}\n"
	a := assembleSane(t, cpu.NMOS6502, src)
	if _, ok := a.labels.labels[".loop"]; ok {
		t.Fatal(".loop should have been purged when its scope closed")
	}
	sec := a.sections.current()
	if len(sec.data) != 3 || sec.data[2] != 0xFD {
		// BNE .loop branches back over [nop, bne opcode, bne operand] == -3 == 0xFD
		t.Fatalf("data = %v, want [NOP, BNE opcode, 0xFD]", sec.data)
	}
}

func TestAssembleUnterminatedConditionalReportsError(t *testing.T) {
	a := NewAssembler(Options{CPU: cpu.NMOS6502})
	src := "  if 1\n  org $1000\n"
	if err := a.AssembleFrom(strings.NewReader(src), "t.asm", DialectSane); err != nil {
		t.Fatalf("AssembleFrom: %v", err)
	}
	err := a.finish(false)
	ae, ok := err.(asmerror)
	if !ok || ae.status != UnterminatedCondition {
		t.Fatalf("finish() = %v, want UnterminatedCondition", err)
	}
}

func TestAssembleMerlinDialectAcceptsAliasesAndColumnComments(t *testing.T) {
	src := " org $7000\n* full-line comment\n dfb $01,$02\n"
	a := NewAssembler(Options{CPU: cpu.NMOS6502, Dialect: DialectMerlin})
	if err := a.AssembleFrom(strings.NewReader(src), "t.asm", DialectMerlin); err != nil {
		t.Fatalf("AssembleFrom: %v", err)
	}
	if err := a.finish(true); err != nil {
		t.Fatalf("finish: %v", err)
	}
	sec := a.sections.current()
	if len(sec.data) != 2 || sec.data[0] != 1 || sec.data[1] != 2 {
		t.Fatalf("data = %v, want [1, 2]", sec.data)
	}
}

func TestAssembleExportBinaryPrefixesLoadAddressAndLength(t *testing.T) {
	a := assembleSane(t, cpu.NMOS6502, "  org $C000\n  nop\n  nop\n  nop\n")
	out, err := a.ExportBinary(true, true)
	if err != nil {
		t.Fatalf("ExportBinary: %v", err)
	}
	bin, ok := out[""]
	if !ok {
		t.Fatalf("expected an unnamed export group, got %v", out)
	}
	if len(bin) != 2+2+3 {
		t.Fatalf("exported binary = %v, want load-address word + length word + 3 bytes", bin)
	}
	if bin[0] != 0x00 || bin[1] != 0xC0 {
		t.Errorf("load address = %v, want little-endian $C000", bin[0:2])
	}
	if bin[2] != 3 || bin[3] != 0 {
		t.Errorf("length word = %v, want little-endian 3", bin[2:4])
	}
}

// TestAssembleFinishReportsUnresolvedForwardReferenceForBinary exercises
// the missingIsError re-check: a binary build has nowhere to carry a
// still-open late-eval the way an object file's late-eval table does,
// so finish(true) must report it instead of leaving it silently queued.
func TestAssembleFinishReportsUnresolvedForwardReferenceForBinary(t *testing.T) {
	a := NewAssembler(Options{CPU: cpu.NMOS6502})
	src := "  org $1000\n  lda nowhere\n"
	if err := a.AssembleFrom(strings.NewReader(src), "t.asm", DialectSane); err != nil {
		t.Fatalf("AssembleFrom: %v", err)
	}
	if err := a.finish(true); err == nil {
		t.Fatal("finish(true) = nil, want an unresolved-label error for \"nowhere\"")
	}
	if len(a.labels.queue) != 0 {
		t.Fatalf("queue after finish(true) = %v, want it drained", a.labels.queue)
	}
}

// TestAssembleExportBinaryReportsUnresolvedForwardReference exercises
// the same missingIsError re-check from ExportBinary directly, in case
// a caller reaches it without first calling finish(true).
func TestAssembleExportBinaryReportsUnresolvedForwardReference(t *testing.T) {
	a := NewAssembler(Options{CPU: cpu.NMOS6502})
	src := "  org $1000\n  lda nowhere\n"
	if err := a.AssembleFrom(strings.NewReader(src), "t.asm", DialectSane); err != nil {
		t.Fatalf("AssembleFrom: %v", err)
	}
	if err := a.finish(false); err != nil {
		t.Fatalf("finish(false): %v", err)
	}
	if _, err := a.ExportBinary(false, false); err == nil {
		t.Fatal("ExportBinary = nil error, want an unresolved-label error")
	} else if !strings.Contains(err.Error(), "nowhere") {
		t.Fatalf("ExportBinary error = %v, want it to name \"nowhere\"", err)
	}
}

func TestAssembleObjectRoundTripsThroughImport(t *testing.T) {
	lib := NewAssembler(Options{CPU: cpu.NMOS6502})
	if err := lib.AssembleFrom(strings.NewReader("  org $9000\nentry:\n  rts\n  xdef entry\n"), "lib.asm", DialectSane); err != nil {
		t.Fatalf("AssembleFrom(lib): %v", err)
	}
	if err := lib.finish(false); err != nil {
		t.Fatalf("finish(lib): %v", err)
	}
	objData := lib.WriteObject()

	obj, err := readObjectFile(objData)
	if err != nil {
		t.Fatalf("readObjectFile: %v", err)
	}

	main := NewAssembler(Options{CPU: cpu.NMOS6502})
	main.sections.setFixedSection("code", 0xA000)
	ref := main.labels.define("entry")
	ref.flags.reference = true
	if err := mergeImportedObject(main.sections, main.labels, obj, 1); err != nil {
		t.Fatalf("mergeImportedObject: %v", err)
	}
	got := main.labels.get("entry")
	if got == nil || !got.flags.evaluated || got.value != 0x9000 {
		t.Fatalf("entry after merge = %+v, want evaluated at 0x9000", got)
	}

	m := lib.SymbolMap()
	if len(m.Exports) != 1 || m.Exports[0].Label != "entry" || m.Exports[0].Address != 0x9000 {
		t.Fatalf("SymbolMap = %+v, want a single \"entry\" export at 0x9000", m.Exports)
	}
	if label, base, ok := m.Search(0x9001); !ok || label != "entry" || base != 0x9000 {
		t.Fatalf("Search(0x9001) = (%q, %#x, %v), want (\"entry\", 0x9000, true)", label, base, ok)
	}
}
