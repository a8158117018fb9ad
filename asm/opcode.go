package asm

import (
	"strings"

	"github.com/sixty502/x65asm/cpu"
)

// argShape classifies how many operand bytes follow an opcode byte and
// how those bytes are computed once the operand expression resolves.
type argShape byte

const (
	argNone argShape = iota
	argOneByte
	argTwoBytes
	argThreeBytes
	argBranch      // 8-bit PC-relative
	argBranch16    // 16-bit PC-relative (65816 BRL/PER)
	argByteBranch  // zp byte + 8-bit branch (65C02 BBRx/BBSx)
	argTwoArgBytes // two literal bytes (65816 MVP/MVN)
)

var modeShapeTable = map[cpu.Mode]argShape{
	cpu.ModeImpl:      argNone,
	cpu.ModeAcc:       argNone,
	cpu.ModeZPIndX:    argOneByte,
	cpu.ModeZP:        argOneByte,
	cpu.ModeZPIndY:    argOneByte,
	cpu.ModeZPX:       argOneByte,
	cpu.ModeZPInd:     argOneByte,
	cpu.ModeZPIndL:    argOneByte,
	cpu.ModeZPIndYL:   argOneByte,
	cpu.ModeStack:     argOneByte,
	cpu.ModeStackIndY: argOneByte,
	cpu.ModeAbs:       argTwoBytes,
	cpu.ModeAbsY:      argTwoBytes,
	cpu.ModeAbsX:      argTwoBytes,
	cpu.ModeInd:       argTwoBytes,
	cpu.ModeIndL:      argTwoBytes,
	cpu.ModeAbsL:      argThreeBytes,
	cpu.ModeAbsLX:     argThreeBytes,
}

//
// addressing-mode disambiguator
//

// guessMode is the disambiguator's coarse read of operand *syntax*,
// before the evaluated operand size and the mnemonic's allowed-mode
// mask narrow it down to a single concrete cpu.Mode.
type guessMode byte

const (
	guessImpl guessMode = iota
	guessAcc
	guessImm
	guessAbs
	guessAbsX
	guessAbsY
	guessInd
	guessIndX
	guessIndY
	guessIndL
	guessIndYL
	guessStack
	guessStackIndY
)

// operandOverride is the optional ".z"/".b"/".w"/".l"/".a" length
// prefix that forces a specific operand width regardless of the
// expression's evaluated size.
type operandOverride byte

const (
	overrideNone operandOverride = iota
	overrideZP
	overrideAbs
	overrideLong
	overrideForceAbs
)

// parsedOperand is what the disambiguator extracts from operand text
// before its expression is evaluated: everything that can be decided
// from syntax alone.
type parsedOperand struct {
	guess    guessMode
	override operandOverride
	expr     fstring
}

// consumeBracketed returns the text strictly between line's opening
// bracket character and its matching close, plus whatever follows the
// close. line must start with open.
func consumeBracketed(line fstring, open, closeCh byte) (inner, remain fstring) {
	depth := 0
	i := 0
	for ; i < len(line.str); i++ {
		switch line.str[i] {
		case open:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				i++
				goto done
			}
		}
	}
done:
	inner = line.consume(1).trunc(maxInt(0, i-2))
	remain = line.consume(i)
	return
}

// parseOperandSyntax implements steps 1-6 of the addressing-mode
// disambiguator. It never evaluates the operand expression, only
// classifies its textual shape.
func parseOperandSyntax(line fstring) (parsedOperand, error) {
	var p parsedOperand

	switch {
	case len(line.str) > 2 && identifierChar(line.str[2]):
		// a local label such as ".loop", not a length override
	case line.startsWithString(".z") || line.startsWithString(".b"):
		p.override, line = overrideZP, line.consume(2).consumeWhitespace()
	case line.startsWithString(".w"):
		p.override, line = overrideAbs, line.consume(2).consumeWhitespace()
	case line.startsWithString(".l"):
		p.override, line = overrideLong, line.consume(2).consumeWhitespace()
	case line.startsWithString(".a"):
		p.override, line = overrideForceAbs, line.consume(2).consumeWhitespace()
	}

	switch {
	case line.isEmpty():
		p.guess = guessImpl
		return p, nil

	case len(line.str) == 1 && (line.str[0] == 'A' || line.str[0] == 'a'):
		p.guess = guessAcc
		return p, nil

	case line.startsWithChar('#'):
		p.guess, p.expr = guessImm, line.consume(1)
		return p, nil

	case line.startsWithChar('['):
		inner, remain := consumeBracketed(line, '[', ']')
		p.expr = inner
		switch {
		case remain.startsWithString(",y") || remain.startsWithString(",Y"):
			p.guess = guessIndYL
			remain = remain.consume(2)
		case remain.isEmpty():
			p.guess = guessIndL
		default:
			return p, errParse
		}
		if !remain.isEmpty() {
			return p, errParse
		}
		return p, nil

	case line.startsWithChar('('):
		inner, remain := consumeBracketed(line, '(', ')')
		lower := strings.ToLower(inner.str)
		switch {
		case strings.HasSuffix(lower, ",x"):
			p.expr = inner.trunc(len(inner.str) - 2)
			if !remain.isEmpty() {
				return p, errParse
			}
			p.guess = guessIndX

		case strings.HasSuffix(lower, ",s"):
			p.expr = inner.trunc(len(inner.str) - 2)
			if !(remain.startsWithString(",y") || remain.startsWithString(",Y")) {
				return p, errParse
			}
			p.guess = guessStackIndY

		case remain.startsWithString(",y") || remain.startsWithString(",Y"):
			p.expr = inner
			p.guess = guessIndY

		case remain.isEmpty():
			p.expr = inner
			p.guess = guessInd

		default:
			return p, errParse
		}
		return p, nil

	default:
		expr, remain := line.consumeUntilUnquotedChar(',')
		p.expr = expr
		lower := strings.ToLower(remain.str)
		switch {
		case remain.isEmpty():
			p.guess = guessAbs
		case strings.HasPrefix(lower, ",x"):
			p.guess = guessAbsX
		case strings.HasPrefix(lower, ",y"):
			p.guess = guessAbsY
		case strings.HasPrefix(lower, ",s"):
			p.guess = guessStack
		default:
			return p, errParse
		}
		return p, nil
	}
}

// explicitLongLiteral reports whether expr text is an explicit 6-hex
// digit $ literal, which forces 24-bit addressing even when the value
// would otherwise fit in fewer bytes.
func explicitLongLiteral(expr fstring) bool {
	s := expr.str
	return len(s) >= 7 && s[0] == '$' && len(strings.TrimRight(s[1:7], "0123456789abcdefABCDEF")) == 0 && len(s) == 7
}

// explicitWideImmediate reports whether expr text is an explicit
// 4-hex-digit $ literal, which forces a 2-byte immediate even when the
// accumulator/index register is 8 bits.
func explicitWideImmediate(expr fstring) bool {
	s := expr.str
	return len(s) == 5 && s[0] == '$' && len(strings.TrimRight(s[1:5], "0123456789abcdefABCDEF")) == 0
}

// resolveConcreteMode implements the remainder of the disambiguator:
// given the coarse guess, the mnemonic's allowed-mode mask, the
// evaluated operand's byte width, and whether this mnemonic flips the
// meaning of X and Y (STX/LDX-family), choose the single addressing
// mode to emit.
func resolveConcreteMode(p parsedOperand, allowed cpu.ModeMask, size int, flipXY bool) (cpu.Mode, error) {
	var invalidAddr = asmerror{status: InvalidAddressingMode}
	pick := func(candidates ...cpu.Mode) (cpu.Mode, error) {
		for _, m := range candidates {
			if allowed.Has(m) {
				return m, nil
			}
		}
		return 0, invalidAddr
	}

	switch p.guess {
	case guessImpl:
		return pick(cpu.ModeImpl)
	case guessAcc:
		return pick(cpu.ModeAcc, cpu.ModeImpl)
	case guessImm:
		return pick(cpu.ModeImm)

	case guessAbs:
		switch p.override {
		case overrideZP:
			return pick(cpu.ModeZP)
		case overrideAbs, overrideForceAbs:
			return pick(cpu.ModeAbs)
		case overrideLong:
			return pick(cpu.ModeAbsL)
		}
		if explicitLongLiteral(p.expr) {
			return pick(cpu.ModeAbsL, cpu.ModeAbs)
		}
		switch {
		case size <= 1:
			return pick(cpu.ModeZP, cpu.ModeAbs, cpu.ModeAbsL)
		case size == 2:
			return pick(cpu.ModeAbs, cpu.ModeAbsL)
		default:
			return pick(cpu.ModeAbsL, cpu.ModeAbs)
		}

	case guessAbsX:
		if flipXY {
			return 0, invalidAddr
		}
		if p.override == overrideLong {
			return pick(cpu.ModeAbsLX)
		}
		if p.override == overrideAbs || p.override == overrideForceAbs {
			return pick(cpu.ModeAbsX)
		}
		if size <= 1 {
			return pick(cpu.ModeZPX, cpu.ModeAbsX, cpu.ModeAbsLX)
		}
		return pick(cpu.ModeAbsX, cpu.ModeAbsLX)

	case guessAbsY:
		if flipXY {
			if size <= 1 {
				return pick(cpu.ModeZPX, cpu.ModeAbsX)
			}
			return pick(cpu.ModeAbsX)
		}
		return pick(cpu.ModeAbsY)

	case guessInd:
		if size <= 1 {
			return pick(cpu.ModeZPInd, cpu.ModeInd)
		}
		return pick(cpu.ModeInd)

	case guessIndX:
		return pick(cpu.ModeZPIndX)

	case guessIndY:
		return pick(cpu.ModeZPIndY)

	case guessIndL:
		if size <= 1 {
			return pick(cpu.ModeZPIndL, cpu.ModeIndL)
		}
		return pick(cpu.ModeIndL)

	case guessIndYL:
		return pick(cpu.ModeZPIndYL)

	case guessStack:
		return pick(cpu.ModeStack)

	case guessStackIndY:
		return pick(cpu.ModeStackIndY)
	}
	return 0, invalidAddr
}

//
// opcode emitter
//

func lookupByMode(iset *cpu.InstructionSet, mnemonic string, mode cpu.Mode) *cpu.Instruction {
	for _, v := range iset.Mnemonics(mnemonic) {
		if v.Mode == mode {
			return v
		}
	}
	return nil
}

// operandSize returns the byte width to use for disambiguation: an
// explicit override wins, otherwise a resolved value's natural width,
// otherwise (a not-yet-resolved forward reference) 2 bytes, matching
// the traditional assembler default of assuming absolute addressing
// until proven otherwise.
func operandSize(p parsedOperand, out evalOutcome, resolved bool) int {
	switch p.override {
	case overrideZP:
		return 1
	case overrideAbs, overrideForceAbs:
		return 2
	case overrideLong:
		return 3
	}
	if !resolved {
		return 2
	}
	v := out.value
	switch {
	case v >= 0 && v < 0x100:
		return 1
	case v < 0x10000:
		return 2
	default:
		return 3
	}
}

// emitInstruction implements the opcode emitter: disambiguate the
// addressing mode, emit the opcode byte, and emit or defer the operand
// bytes.
func emitInstruction(iset *cpu.InstructionSet, mnemonic string, operand fstring, sec *section, labels *labelTable, env evalEnv, exprP *exprParser, scopeLabel fstring, dialect Dialect, m16, x16 bool) error {
	allowed := iset.AllowedModes(mnemonic)
	if allowed == 0 {
		return asmerror{line: operand, status: UnknownMnemonic}
	}

	if allowed.Has(cpu.ModeBlockMove) {
		return emitBlockMove(iset, mnemonic, operand, sec, exprP, scopeLabel, dialect)
	}
	if allowed.Has(cpu.ModeZPAbs) {
		return emitByteBranch(iset, mnemonic, operand, sec, labels, env, exprP, scopeLabel, dialect)
	}

	p, err := parseOperandSyntax(operand)
	if err != nil {
		return asmerror{line: operand, status: InvalidAddressingMode}
	}

	var tree *expr
	var out evalOutcome
	haveExpr := p.guess != guessImpl && p.guess != guessAcc
	if haveExpr {
		tree, _, err = exprP.parse(p.expr, scopeLabel, true, dialect)
		if err != nil {
			return asmerror{line: p.expr, status: UnexpectedCharacter}
		}
		out = tree.resolve(env)
	}
	resolved := haveExpr && out.status == Ok
	size := operandSize(p, out, resolved)
	flipXY := allowed&cpu.MaskFlipXY != 0

	mode, err := resolveConcreteMode(p, allowed, size, flipXY)
	if err != nil {
		return asmerror{line: operand, status: InvalidAddressingMode}
	}
	inst := lookupByMode(iset, mnemonic, mode)
	if inst == nil {
		return asmerror{line: operand, status: InvalidAddressingMode}
	}

	sec.addByte(inst.Opcode)

	shape := modeShapeTable[mode]
	if mode == cpu.ModeImm {
		wide := (allowed&cpu.MaskImmDoubleA != 0 && m16) || (allowed&cpu.MaskImmDoubleXY != 0 && x16) ||
			p.override == overrideAbs || explicitWideImmediate(p.expr)
		if wide {
			shape = argTwoBytes
		} else {
			shape = argOneByte
		}
	}
	if allowed&cpu.MaskBranch != 0 {
		shape = argBranch
	} else if allowed&cpu.MaskBranchLong != 0 {
		shape = argBranch16
	}

	pcAtEmission := sec.cursor - 1
	return emitOperandBytes(sec, labels, tree, out, haveExpr, shape, pcAtEmission, p.expr)
}

// emitOperandBytes writes the operand bytes following an opcode,
// either immediately (if resolved) or as zero placeholders with a
// queued late-eval (if not).
func emitOperandBytes(sec *section, labels *labelTable, tree *expr, out evalOutcome, haveExpr bool, shape argShape, pcAtEmission int, line fstring) error {
	width := 0
	var typ lateEvalType
	switch shape {
	case argNone:
		return nil
	case argOneByte:
		width, typ = 1, evalByte
	case argTwoBytes:
		width, typ = 2, evalAbsRef16
	case argThreeBytes:
		width, typ = 3, evalAbsRefL24
	case argBranch:
		width, typ = 1, evalBranch8
	case argBranch16:
		width, typ = 2, evalBranch16
	}

	offset := len(sec.data)
	for i := 0; i < width; i++ {
		sec.addByte(0)
	}
	if !haveExpr {
		return nil
	}

	if out.status == Ok || out.status == RelativeSection {
		return (&lateEval{
			tree: tree, line: line, typ: typ, owningSection: 0, targetOffset: offset, pcAtEmission: pcAtEmission,
		}).writeNow(sec, labels, out)
	}

	labels.enqueue(&lateEval{
		tree: tree, exprText: tree.String(), line: line, typ: typ,
		owningSection: sectionIndexOf(labels, sec), targetOffset: offset, pcAtEmission: pcAtEmission, scopeEndPC: -1,
		usesScopeEnd: tree.containsScopeEnd(),
	})
	return nil
}

// writeNow applies an already-resolved outcome immediately rather than
// through the late-eval queue, reusing labelTable.writeBack's logic.
func (e *lateEval) writeNow(sec *section, labels *labelTable, out evalOutcome) error {
	e.owningSection = sectionIndexOf(labels, sec)
	return labels.writeBack(e, out)
}

func sectionIndexOf(labels *labelTable, sec *section) int {
	for i, s := range labels.sections.sections {
		if s == sec {
			return i
		}
	}
	return -1
}

// emitBlockMove handles the 65816 MVP/MVN instructions, whose operand
// is two bank-byte expressions separated by a comma rather than a
// single addressing-mode expression.
func emitBlockMove(iset *cpu.InstructionSet, mnemonic string, operand fstring, sec *section, exprP *exprParser, scopeLabel fstring, dialect Dialect) error {
	first, remain := operand.consumeUntilUnquotedChar(',')
	if !remain.startsWithChar(',') {
		return asmerror{line: operand, status: InvalidAddressingMode}
	}
	second := remain.consume(1).consumeWhitespace()

	inst := lookupByMode(iset, mnemonic, cpu.ModeBlockMove)
	if inst == nil {
		return asmerror{line: operand, status: UnknownMnemonic}
	}
	srcBank, err := parseImmediateByte(exprP, first, scopeLabel, dialect)
	if err != nil {
		return err
	}
	dstBank, err := parseImmediateByte(exprP, second, scopeLabel, dialect)
	if err != nil {
		return err
	}
	sec.addByte(inst.Opcode)
	sec.addByte(dstBank)
	sec.addByte(srcBank)
	return nil
}

// emitByteBranch handles the 65C02 BBRx/BBSx family: a zero-page byte
// operand followed by a branch target, e.g. "bbr3 flags,label".
func emitByteBranch(iset *cpu.InstructionSet, mnemonic string, operand fstring, sec *section, labels *labelTable, env evalEnv, exprP *exprParser, scopeLabel fstring, dialect Dialect) error {
	zpText, remain := operand.consumeUntilUnquotedChar(',')
	if !remain.startsWithChar(',') {
		return asmerror{line: operand, status: InvalidAddressingMode}
	}
	branchText := remain.consume(1).consumeWhitespace()

	inst := lookupByMode(iset, mnemonic, cpu.ModeZPAbs)
	if inst == nil {
		return asmerror{line: operand, status: UnknownMnemonic}
	}
	zpByte, err := parseImmediateByte(exprP, zpText, scopeLabel, dialect)
	if err != nil {
		return err
	}
	sec.addByte(inst.Opcode)
	sec.addByte(zpByte)

	tree, _, err := exprP.parse(branchText, scopeLabel, true, dialect)
	if err != nil {
		return asmerror{line: branchText, status: UnexpectedCharacter}
	}
	out := tree.resolve(env)
	pcAtEmission := sec.cursor - 1
	return emitOperandBytes(sec, labels, tree, out, true, argBranch, pcAtEmission, branchText)
}

func parseImmediateByte(exprP *exprParser, text, scopeLabel fstring, dialect Dialect) (byte, error) {
	text = text.consumeWhitespace()
	if text.startsWithChar('#') {
		text = text.consume(1)
	}
	tree, _, err := exprP.parse(text, scopeLabel, true, dialect)
	if err != nil {
		return 0, asmerror{line: text, status: UnexpectedCharacter}
	}
	out := tree.resolve(&constOnlyEnv{})
	if out.status != Ok {
		return 0, asmerror{line: text, status: DSNotImmediatelyResolvable}
	}
	return byte(out.value), nil
}

// constOnlyEnv is a placeholder evalEnv for the rare operand (a bank
// byte in a block-move instruction) that this port requires to be a
// compile-time constant; it resolves no identifiers or PC tokens.
type constOnlyEnv struct{}

func (constOnlyEnv) lookupLabel(name string) labelInfo { return labelInfo{} }
func (constOnlyEnv) currentPC() (int, bool)            { return 0, false }
func (constOnlyEnv) scopeStartPC() (int, bool)         { return 0, false }
func (constOnlyEnv) scopeEndPC() (int, bool)           { return 0, false }
