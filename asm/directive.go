package asm

import (
	"strings"

	"github.com/beevik/prefixtree/v2"
)

// pseudoOp identifies one directive, independent of which dialect
// spelling (or abbreviation) selected it.
type pseudoOp byte

const (
	pseudoCPU pseudoOp = iota
	pseudoOrg
	pseudoLoad
	pseudoExport
	pseudoSection
	pseudoLink
	pseudoXdef
	pseudoXref
	pseudoIncObj
	pseudoAlign
	pseudoMacro
	pseudoEndMacro
	pseudoEval
	pseudoByte
	pseudoWord
	pseudoDDB
	pseudoLong
	pseudoDC
	pseudoText
	pseudoInclude
	pseudoIncBin
	pseudoImport
	pseudoConst
	pseudoLabel
	pseudoIncSym
	pseudoLabPool
	pseudoIf
	pseudoIfDef
	pseudoElse
	pseudoElif
	pseudoEndif
	pseudoStruct
	pseudoEndStruct
	pseudoEnum
	pseudoEndEnum
	pseudoRept
	pseudoEndRept
	pseudoIncDir
	pseudoA16
	pseudoA8
	pseudoXY16
	pseudoXY8
	pseudoHex
	pseudoEject // cosmetic listing directive; accepted, no effect
	pseudoLst   // cosmetic listing directive; accepted, no effect
	pseudoDummy
	pseudoDummyEnd
	pseudoDS
	pseudoUsr
	pseudoSave
	pseudoXC
	pseudoMX
	pseudoEnt
	pseudoExt
	pseudoCyc // cycle-count annotation; accepted, no effect on emitted bytes
	pseudoScopeOpen
	pseudoScopeClose
)

// directiveTable resolves a directive spelling (any accepted alias, in
// either dialect) to its pseudoOp, using a prefix tree so unambiguous
// abbreviations are accepted the way the teacher's command dispatcher
// accepts abbreviated debugger commands.
type directiveTable struct {
	tree *prefixtree.Tree[pseudoOp]
}

func newDirectiveTable() *directiveTable {
	d := &directiveTable{tree: prefixtree.New[pseudoOp]()}
	for _, e := range saneDirectiveNames {
		d.tree.Add(strings.ToLower(e.name), e.op)
	}
	return d
}

type directiveName struct {
	name string
	op   pseudoOp
}

// saneDirectiveNames enumerates every directive accepted in the sane
// dialect, including its documented aliases. Merlin's alias set lives
// in merlin.go and is layered on top via mergeMerlinAliases.
var saneDirectiveNames = []directiveName{
	{"cpu", pseudoCPU}, {"processor", pseudoCPU},
	{"org", pseudoOrg}, {"pc", pseudoOrg},
	{"load", pseudoLoad},
	{"export", pseudoExport},
	{"section", pseudoSection}, {"seg", pseudoSection}, {"segment", pseudoSection},
	{"link", pseudoLink},
	{"xdef", pseudoXdef},
	{"xref", pseudoXref},
	{"incobj", pseudoIncObj},
	{"align", pseudoAlign},
	{"macro", pseudoMacro},
	{"endm", pseudoEndMacro},
	{"eval", pseudoEval}, {"print", pseudoEval},
	{"byte", pseudoByte}, {"bytes", pseudoByte},
	{"word", pseudoWord}, {"words", pseudoWord},
	{"long", pseudoLong}, {"adrl", pseudoLong},
	{"dc", pseudoDC}, {"dc.b", pseudoDC}, {"dc.w", pseudoDC},
	{"text", pseudoText},
	{"include", pseudoInclude},
	{"incbin", pseudoIncBin},
	{"import", pseudoImport},
	{"const", pseudoConst},
	{"label", pseudoLabel},
	{"incsym", pseudoIncSym},
	{"labpool", pseudoLabPool}, {"pool", pseudoLabPool},
	{"if", pseudoIf},
	{"ifdef", pseudoIfDef},
	{"else", pseudoElse},
	{"elif", pseudoElif},
	{"endif", pseudoEndif},
	{"struct", pseudoStruct},
	{"endstruct", pseudoEndStruct},
	{"enum", pseudoEnum},
	{"endenum", pseudoEndEnum},
	{"rept", pseudoRept}, {"repeat", pseudoRept},
	{"endr", pseudoEndRept},
	{"incdir", pseudoIncDir},
	{"a16", pseudoA16},
	{"a8", pseudoA8},
	{"xy16", pseudoXY16}, {"i16", pseudoXY16},
	{"xy8", pseudoXY8}, {"i8", pseudoXY8},
	{"hex", pseudoHex},
	{"eject", pseudoEject},
	{"lst", pseudoLst},
	{"dummy", pseudoDummy},
	{"dummy_end", pseudoDummyEnd},
	{"ds", pseudoDS},
	{"usr", pseudoUsr},
	{"sav", pseudoSave}, {"dsk", pseudoSave},
	{"xc", pseudoXC},
	{"mx", pseudoMX},
	{"lnk", pseudoLink},
	{"adr", pseudoLong},
	{"ent", pseudoEnt},
	{"ext", pseudoExt},
	{"cyc", pseudoCyc},
}

// lookup resolves a directive spelling to its pseudoOp. An ambiguous
// or unrecognized prefix reports UnknownDirective.
func (d *directiveTable) lookup(name string) (pseudoOp, error) {
	op, err := d.tree.FindValue(strings.ToLower(name))
	if err != nil {
		return 0, asmerror{status: UnknownDirective, msg: "unknown directive \"" + name + "\""}
	}
	return op, nil
}
