package cpu

import "testing"

func TestLookupID(t *testing.T) {
	cases := []struct {
		name string
		id   ID
	}{
		{"6502", NMOS6502},
		{"6502X", NMOS6502Illegal},
		{"65c02", CMOS65C02},
		{"65C02WDC", CMOS65C02WDC},
		{"65816", CMOS65816},
	}
	for _, c := range cases {
		got, ok := LookupID(c.name)
		if !ok {
			t.Errorf("LookupID(%q): not found", c.name)
			continue
		}
		if got != c.id {
			t.Errorf("LookupID(%q) = %v, want %v", c.name, got, c.id)
		}
	}
	if _, ok := LookupID("z80"); ok {
		t.Error("LookupID(\"z80\"): expected not found")
	}
}

func TestNMOS6502LacksIllegalOpcodes(t *testing.T) {
	s := Get(NMOS6502)
	if variants := s.Mnemonics("SLO"); variants != nil {
		t.Errorf("6502 should not know SLO, got %v", variants)
	}
	if variants := s.Mnemonics("LDA"); len(variants) == 0 {
		t.Error("6502 should know LDA")
	}
}

func TestNMOS6502IllegalHasUndocumented(t *testing.T) {
	s := Get(NMOS6502Illegal)
	variants := s.Mnemonics("LAX")
	if len(variants) == 0 {
		t.Fatal("6502x should know LAX")
	}
	found := false
	for _, v := range variants {
		if v.Mode == ModeZP && v.Opcode == 0xa7 {
			found = true
		}
	}
	if !found {
		t.Error("LAX zp should assemble to 0xa7")
	}
}

func TestBRKIsZeroOpcode(t *testing.T) {
	s := Get(NMOS6502)
	variants := s.Mnemonics("BRK")
	if len(variants) != 1 {
		t.Fatalf("BRK should have exactly one addressing mode, got %d", len(variants))
	}
	if variants[0].Opcode != 0x00 || variants[0].Mode != ModeImpl {
		t.Errorf("BRK = %+v, want opcode 0x00 mode ModeImpl", variants[0])
	}
	if s.Lookup(0x00) == nil || s.Lookup(0x00).Name != "BRK" {
		t.Error("byte 0x00 should reverse-lookup to BRK")
	}
}

func TestLDAAddressingModes(t *testing.T) {
	s := Get(NMOS6502)
	want := map[Mode]byte{
		ModeZPIndX: 0xa1,
		ModeZP:     0xa5,
		ModeImm:    0xa9,
		ModeAbs:    0xad,
		ModeZPIndY: 0xb1,
		ModeZPX:    0xb5,
		ModeAbsY:   0xb9,
		ModeAbsX:   0xbd,
	}
	byMode := map[Mode]*Instruction{}
	for _, v := range s.Mnemonics("LDA") {
		byMode[v.Mode] = v
	}
	for mode, opcode := range want {
		v, ok := byMode[mode]
		if !ok {
			t.Errorf("LDA missing mode %v", mode)
			continue
		}
		if v.Opcode != opcode {
			t.Errorf("LDA mode %v = 0x%02x, want 0x%02x", mode, v.Opcode, opcode)
		}
	}
}

func TestStxFlipXY(t *testing.T) {
	s := Get(NMOS6502)
	if !s.AllowedModes("STX").Has(ModeZPX) {
		t.Error("STX should list ModeZPX in its raw mask (meaning zp,y once flipped)")
	}
	if s.AllowedModes("STX")&MaskFlipXY == 0 {
		t.Error("STX should carry the FlipXY pseudo-bit")
	}
}

func TestBranchAliases(t *testing.T) {
	s := Get(NMOS6502)
	bcc := s.Mnemonics("BCC")
	blt := s.Mnemonics("BLT")
	if len(bcc) == 0 || len(blt) == 0 {
		t.Fatal("expected both BCC and BLT to resolve")
	}
	if bcc[0].Opcode != blt[0].Opcode {
		t.Errorf("BLT should alias BCC: got %02x vs %02x", blt[0].Opcode, bcc[0].Opcode)
	}
}

func TestWDCExtensionsGatedByID(t *testing.T) {
	base := Get(CMOS65C02)
	if variants := base.Mnemonics("STP"); variants != nil {
		t.Errorf("plain 65C02 should not know STP, got %v", variants)
	}
	wdc := Get(CMOS65C02WDC)
	if variants := wdc.Mnemonics("STP"); len(variants) == 0 {
		t.Error("65C02WDC should know STP")
	}
	if variants := wdc.Mnemonics("BBR0"); len(variants) == 0 {
		t.Error("65C02WDC should know BBR0")
	}
}

func TestBBRUsesZPAbsMode(t *testing.T) {
	s := Get(CMOS65C02WDC)
	variants := s.Mnemonics("BBR3")
	if len(variants) != 1 || variants[0].Mode != ModeZPAbs {
		t.Fatalf("BBR3 = %v, want single ModeZPAbs variant", variants)
	}
	if variants[0].Opcode != 0x3f {
		t.Errorf("BBR3 opcode = 0x%02x, want 0x3f", variants[0].Opcode)
	}
}

func TestLongAddressingOn65816(t *testing.T) {
	s := Get(CMOS65816)
	variants := s.Mnemonics("LDA")
	found := map[Mode]bool{}
	for _, v := range variants {
		found[v.Mode] = true
	}
	for _, m := range []Mode{ModeAbsL, ModeAbsLX, ModeZPIndL, ModeZPIndYL, ModeStack, ModeStackIndY} {
		if !found[m] {
			t.Errorf("65816 LDA missing long-addressing mode %v", m)
		}
	}
	if !Get(CMOS65816).CPU.Is65816() {
		t.Error("Is65816 should be true for CMOS65816")
	}
	if NMOS6502.Is65816() {
		t.Error("Is65816 should be false for NMOS6502")
	}
}

func TestBlockMoveOpcodes(t *testing.T) {
	s := Get(CMOS65816)
	mvp := s.Mnemonics("MVP")
	mvn := s.Mnemonics("MVN")
	if len(mvp) != 1 || mvp[0].Opcode != 0x44 || mvp[0].Mode != ModeBlockMove {
		t.Errorf("MVP = %v, want single ModeBlockMove opcode 0x44", mvp)
	}
	if len(mvn) != 1 || mvn[0].Opcode != 0x54 {
		t.Errorf("MVN = %v, want single opcode 0x54", mvn)
	}
}

func TestTimingOnlyOnCPUsThatCarryIt(t *testing.T) {
	if Get(NMOS6502).Cycles(0xea) == 0 {
		t.Error("6502 NOP should have nonzero advisory cycle count")
	}
	if Get(CMOS65C02).Cycles(0xea) != 0 {
		t.Error("65C02 table carries no timing data in this port")
	}
	if Get(CMOS65816).Cycles(0xea) == 0 {
		t.Error("65816 NOP should have nonzero advisory cycle count")
	}
}

func TestAhxShxByteCollisionResolvesToFirstTableEntry(t *testing.T) {
	s := Get(NMOS6502Illegal)
	inst := s.Lookup(0x93)
	if inst == nil {
		t.Fatal("byte 0x93 should resolve to something on the illegal 6502 table")
	}
	if inst.Name != "AHX" {
		t.Errorf("byte 0x93 reverse-lookup = %s, want AHX (first table entry wins ties)", inst.Name)
	}
}
