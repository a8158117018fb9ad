package asm

import "strings"

// merlinAliasNames maps every Merlin-only directive spelling onto the
// same pseudoOp the sane dialect resolves to, so the rest of the
// assembler never has to know which dialect selected a directive.
var merlinAliasNames = []directiveName{
	{"db", pseudoByte}, {"dfb", pseudoByte},
	{"da", pseudoWord}, {"dw", pseudoWord},
	{"ddb", pseudoDDB},
	{"asc", pseudoText},
	{"hex", pseudoHex},
	{"dum", pseudoDummy}, {"dend", pseudoDummyEnd},
	{"put", pseudoInclude},
	{"lnk", pseudoLink},
	{"sav", pseudoSave}, {"dsk", pseudoSave},
	{"mac", pseudoMacro}, {"eom", pseudoEndMacro},
	{"lup", pseudoRept}, {"endr", pseudoEndRept},
	{"do", pseudoIf}, {"fin", pseudoEndif},
	{"mx", pseudoMX},
	{"xc", pseudoXC},
	{"ent", pseudoEnt}, {"ext", pseudoExt},
}

// mergeMerlinAliases layers the Merlin alias set on top of an existing
// directive table. Merlin source also spells "<<<" and "--^" as
// macro/rept terminators; those aren't identifiers, so the tokenizer
// recognizes them directly (see nextDirectiveToken) rather than
// through the prefix tree.
func (d *directiveTable) mergeMerlinAliases() {
	for _, e := range merlinAliasNames {
		// Duplicate Add calls on an existing exact key are harmless:
		// prefixtree.Tree treats a repeat Add as a rebind, and the
		// spellings shared with the sane table (hex, lnk, sav, dsk, mx,
		// xc, ent, ext, endr) rebind to the pseudoOp they already had.
		d.tree.Add(strings.ToLower(e.name), e.op)
	}
}

// nextDirectiveToken recognizes the two punctuation-only Merlin
// terminators that aren't valid identifiers and so can't live in the
// prefix tree.
func nextDirectiveToken(word string) (pseudoOp, bool) {
	switch word {
	case "<<<":
		return pseudoEndMacro, true
	case "--^":
		return pseudoEndRept, true
	}
	return 0, false
}

// importKind is the sub-form selected by an IMPORT directive's leading
// keyword.
type importKind byte

const (
	importSource importKind = iota
	importBinary
	importC64
	importText
	importObject
	importSymbols
)

var importKindNames = map[string]importKind{
	"source":  importSource,
	"binary":  importBinary,
	"c64":     importC64,
	"text":    importText,
	"object":  importObject,
	"symbols": importSymbols,
}

func parseImportKind(word string) (importKind, bool) {
	k, ok := importKindNames[strings.ToLower(word)]
	return k, ok
}

// textEncoding is the optional prefix word on TEXT selecting how
// source characters map to emitted bytes.
type textEncoding byte

const (
	encodingASCII textEncoding = iota
	encodingPETSCII
	encodingPETSCIIShifted
)

var textEncodingNames = map[string]textEncoding{
	"ascii":            encodingASCII,
	"petscii":          encodingPETSCII,
	"petscii_shifted":  encodingPETSCIIShifted,
}

func parseTextEncoding(word string) (textEncoding, bool) {
	e, ok := textEncodingNames[strings.ToLower(word)]
	return e, ok
}

// encodeTextByte converts one source character to its emitted byte
// under the given encoding.
func encodeTextByte(c byte, enc textEncoding) byte {
	switch enc {
	case encodingPETSCII:
		if c >= 'a' && c <= 'z' {
			return c - 32
		}
		if c < 0x20 {
			return ' '
		}
		return c
	case encodingPETSCIIShifted:
		if c >= 'a' && c <= 'z' {
			return c - 32
		}
		if c >= 'A' && c <= 'Z' {
			return c + 32
		}
		return c
	default:
		return c
	}
}

// merlinPutPath rewrites a PUT filename argument into the ordered list
// of candidate paths Merlin actually searches: strip a leading "!" or
// "&", then try "T.<name>" and "<name>.S" alongside the bare name.
func merlinPutPath(name string) []string {
	name = strings.TrimPrefix(name, "!")
	name = strings.TrimPrefix(name, "&")
	return []string{"T." + name, name + ".S", name}
}

// mxFlags decodes the MX directive's bitwise argument: bit 0 selects
// 8-bit index registers, bit 1 selects an 8-bit accumulator.
func mxFlags(n int) (x8, a8 bool) {
	return n&1 != 0, n&2 != 0
}
