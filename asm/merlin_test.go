package asm

import "testing"

func TestMerlinAliasesResolveViaMergedTable(t *testing.T) {
	d := newDirectiveTable()
	d.mergeMerlinAliases()
	cases := map[string]pseudoOp{
		"db":  pseudoByte,
		"dfb": pseudoByte,
		"da":  pseudoWord,
		"dw":  pseudoWord,
		"dum": pseudoDummy,
		"mac": pseudoMacro,
		"eom": pseudoEndMacro,
		"lup": pseudoRept,
		"do":  pseudoIf,
		"fin": pseudoEndif,
		"ent": pseudoEnt,
		"ext": pseudoExt,
	}
	for name, want := range cases {
		got, err := d.lookup(name)
		if err != nil {
			t.Fatalf("lookup(%s) errored: %v", name, err)
		}
		if got != want {
			t.Errorf("lookup(%s) = %v, want %v", name, got, want)
		}
	}
}

func TestNextDirectiveTokenRecognizesPunctuationTerminators(t *testing.T) {
	if op, ok := nextDirectiveToken("<<<"); !ok || op != pseudoEndMacro {
		t.Fatalf("<<< = %v,%v want pseudoEndMacro,true", op, ok)
	}
	if op, ok := nextDirectiveToken("--^"); !ok || op != pseudoEndRept {
		t.Fatalf("--^ = %v,%v want pseudoEndRept,true", op, ok)
	}
	if _, ok := nextDirectiveToken("endm"); ok {
		t.Fatal("endm is not a punctuation terminator")
	}
}

func TestParseImportKind(t *testing.T) {
	k, ok := parseImportKind("C64")
	if !ok || k != importC64 {
		t.Fatalf("parseImportKind(C64) = %v,%v want importC64,true", k, ok)
	}
	if _, ok := parseImportKind("bogus"); ok {
		t.Fatal("expected bogus import kind to fail")
	}
}

func TestParseTextEncoding(t *testing.T) {
	e, ok := parseTextEncoding("PETSCII")
	if !ok || e != encodingPETSCII {
		t.Fatalf("parseTextEncoding(PETSCII) = %v,%v want encodingPETSCII,true", e, ok)
	}
}

func TestEncodeTextBytePETSCII(t *testing.T) {
	if got := encodeTextByte('a', encodingPETSCII); got != 'A' {
		t.Errorf("petscii lowercase = %q, want 'A'", got)
	}
	if got := encodeTextByte(0x0a, encodingPETSCII); got != ' ' {
		t.Errorf("petscii control char = %q, want space", got)
	}
}

func TestEncodeTextBytePETSCIIShiftedSwapsCase(t *testing.T) {
	if got := encodeTextByte('a', encodingPETSCIIShifted); got != 'A' {
		t.Errorf("shifted lowercase = %q, want 'A'", got)
	}
	if got := encodeTextByte('A', encodingPETSCIIShifted); got != 'a' {
		t.Errorf("shifted uppercase = %q, want 'a'", got)
	}
}

func TestMerlinPutPathRewrite(t *testing.T) {
	paths := merlinPutPath("!foo")
	want := []string{"T.foo", "foo.S", "foo"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestMXFlagsIsBitwise(t *testing.T) {
	x8, a8 := mxFlags(3)
	if !x8 || !a8 {
		t.Fatalf("MX %%11 should set both 8-bit flags, got x8=%v a8=%v", x8, a8)
	}
	x8, a8 = mxFlags(1)
	if !x8 || a8 {
		t.Fatalf("MX %%01 should set only x8, got x8=%v a8=%v", x8, a8)
	}
}
