// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm implements a multi-pass macro assembler for the 6502
// family: 6502, 6502 with undocumented opcodes, 65C02, 65C02 with the
// WDC extensions, and the 65816.
package asm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"

	"github.com/sixty502/x65asm/cpu"
)

// Options configures an assembly session.
type Options struct {
	CPU     cpu.ID
	Dialect Dialect
	Out     io.Writer
	Verbose bool

	// ObjectFile selects AssembleFile's finish() mode: false (the
	// default) means the caller intends a final binary, so an
	// unresolved forward reference is reported as an error; true means
	// the caller intends an object file, so it stays queued for
	// WriteObject's late-eval table instead.
	ObjectFile bool
}

// scopeFrame tracks one open brace scope: the PC where it began (for
// '!' in expressions), and the local label names defined while it was
// open so they can be dropped from the label table when it closes.
type scopeFrame struct {
	startPC    int
	localNames []string
	poolLocals []string // "poolName/labelName" pairs reserved inside this scope
}

const maxScopeDepth = 32

// Assembler is the session object. Every mutable piece of assembler
// state lives here; nothing is a package-level global.
type Assembler struct {
	opts  Options
	iset  *cpu.InstructionSet
	cpuID cpu.ID

	sections   *sectionManager
	labels     *labelTable
	cond       condStack
	macros     *macroTable
	contexts   contextStack
	structs    *structTable
	pools      *poolTable
	directives *directiveTable
	exprP      exprParser

	files    []string
	dialects []Dialect

	scopes []scopeFrame

	m16, x16 bool // 65816 register widths: true means 16-bit (wide immediates)

	activeStruct   *labelStruct
	activeEnum     *labelStruct
	enumNext       int

	capturing *blockCapture

	exportAppends map[string]bool // append-names seen, for binary export grouping
	externalFiles int             // count of IMPORT object files merged so far, for label namespacing

	lastDefinedLabel string // most recent non-local label, for Merlin ENT

	out     io.Writer
	verbose bool

	errs []error
}

// blockCapture accumulates the raw body lines of a macro or rept block
// between its opening directive and matching terminator, tracking
// nested same-kind blocks so an inner "endm"/"endr" doesn't end the
// outer one prematurely.
type blockCapture struct {
	kind      pseudoOp // pseudoMacro or pseudoRept
	depth     int
	name      string
	params    []string
	countText fstring
	lines     []fstring
	dialect   Dialect
}

// NewAssembler creates a session ready to assemble one or more files.
func NewAssembler(opts Options) *Assembler {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	sections := newSectionManager()
	a := &Assembler{
		opts:          opts,
		iset:          cpu.Get(opts.CPU),
		cpuID:         opts.CPU,
		sections:      sections,
		labels:        newLabelTable(sections),
		macros:        newMacroTable(),
		structs:       newStructTable(),
		pools:         newPoolTable(),
		directives:    newDirectiveTable(),
		exportAppends: map[string]bool{},
		out:           opts.Out,
		verbose:       opts.Verbose,
	}
	if opts.Dialect == DialectMerlin {
		a.directives.mergeMerlinAliases()
	}
	return a
}

func (a *Assembler) fileName(fileIndex int) string {
	if fileIndex >= 0 && fileIndex < len(a.files) {
		return a.files[fileIndex]
	}
	return fmt.Sprintf("<file %d>", fileIndex)
}

// stamp attaches this session's file list to an asmerror so its Error()
// resolves fileIndex to a real name instead of the generic fallback.
// Errors not tied to a source line (e.g. object-file-format errors)
// pass through unchanged.
func (a *Assembler) stamp(err error) error {
	if ae, ok := err.(asmerror); ok {
		ae.files = a.files
		return ae
	}
	return err
}

// AssembleFile reads path from disk and assembles it, per opts.
func AssembleFile(path string, opts Options) (*Assembler, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	a := NewAssembler(opts)
	if err := a.AssembleFrom(f, path, opts.Dialect); err != nil {
		return a, err
	}
	return a, a.finish(!opts.ObjectFile)
}

// AssembleFrom reads source from r under the given file name and
// dialect, pushing it as the outermost context frame.
func (a *Assembler) AssembleFrom(r io.Reader, name string, dialect Dialect) error {
	fileIndex := len(a.files)
	a.files = append(a.files, name)
	a.dialects = append(a.dialects, dialect)
	a.log("assembling %s (cpu=%v, dialect=%d)\n", name, a.cpuID, dialect)

	var lines []fstring
	scanner := bufio.NewScanner(r)
	row := 1
	for scanner.Scan() {
		lines = append(lines, newFstring(fileIndex, row, scanner.Text()))
		row++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := a.contexts.push(&context{kind: ctxFile, lines: lines}); err != nil {
		return err
	}
	return a.run()
}

// finish reports the fatal end-of-assembly diagnostics the propagation
// policy names: an unterminated conditional, or (only when finalBinary
// is set, meaning the caller intends to produce a final binary rather
// than an object file for later linking) any late-eval that never
// resolved. An object-producing caller must pass false here so a
// still-open XREF stays queued for the object file's late-eval table
// instead of being reported as an error.
func (a *Assembler) finish(finalBinary bool) error {
	if a.cond.unterminated() {
		a.errs = append(a.errs, a.stamp(asmerror{status: UnterminatedCondition}))
	}
	if finalBinary {
		for _, err := range a.labels.reCheck("", -1, true, a) {
			a.errs = append(a.errs, a.stamp(err))
		}
	}
	for _, sec := range a.sections.sections {
		a.logValue("section", sec)
	}
	if len(a.errs) > 0 {
		return a.errs[len(a.errs)-1]
	}
	return nil
}

// Errors returns every diagnostic collected during assembly.
func (a *Assembler) Errors() []error { return a.errs }

//
// evalEnv implementation
//

func (a *Assembler) lookupLabel(name string) labelInfo {
	if strings.Contains(name, ".") {
		if value, ok, err := a.structs.evalStruct(name); ok {
			if err != nil {
				return labelInfo{}
			}
			return labelInfo{defined: true, resolved: true, number: value}
		}
	}
	return a.labels.lookupLabel(name)
}

func (a *Assembler) currentPC() (int, bool) {
	sec := a.sections.current()
	if sec == nil {
		return 0, false
	}
	return sec.cursor, true
}

func (a *Assembler) scopeStartPC() (int, bool) {
	if len(a.scopes) == 0 {
		return 0, false
	}
	return a.scopes[len(a.scopes)-1].startPC, true
}

func (a *Assembler) scopeEndPC() (int, bool) {
	return 0, false // only meaningful during a post-scope-close recheck; see scopeEndOverride
}

// scopeEndOverride lets a recheck pass answer '%' with the PC the
// just-closed scope ended at, without every other evalEnv caller
// needing to know about it.
type scopeEndOverride struct {
	evalEnv
	endPC int
}

func (o scopeEndOverride) scopeEndPC() (int, bool) { return o.endPC, true }

//
// verbose tracing
//

// log writes a plain progress line when the session was opened with
// Options.Verbose, mirroring the teacher's a.log gating.
func (a *Assembler) log(format string, args ...interface{}) {
	if !a.verbose {
		return
	}
	fmt.Fprintf(a.out, format, args...)
}

// logLine echoes the source line about to be assembled.
func (a *Assembler) logLine(line fstring) {
	if !a.verbose || line.str == "" {
		return
	}
	fmt.Fprintf(a.out, "%s(%d): %s\n", a.fileName(line.fileIndex), line.row, line.str)
}

// logValue pretty-prints a structured value (a section, a reloc list,
// an object-file header) the way pedropsouza-dubcc's assembler and
// linker dump their internal tables in verbose mode.
func (a *Assembler) logValue(label string, v interface{}) {
	if !a.verbose {
		return
	}
	fmt.Fprintf(a.out, "%s:\n", label)
	pp.Fprintln(a.out, v)
}

//
// main loop
//

func (a *Assembler) run() error {
	for {
		line, ctx, ok := a.contexts.nextLine()
		for _, popped := range a.contexts.drainPopped() {
			if popped.scopeOpened {
				if err := a.closeScope(fstring{}); err != nil {
					a.errs = append(a.errs, a.stamp(err))
				}
			}
		}
		if !ok {
			break
		}
		a.logLine(line)
		before := 0
		sec := a.sections.current()
		if sec != nil {
			before = len(sec.data)
		}
		if err := a.processLine(line, ctx); err != nil {
			err = a.stamp(err)
			ae, isAsmErr := err.(asmerror)
			a.errs = append(a.errs, err)
			if isAsmErr && ae.status.IsFatal() {
				return err
			}
			if !isAsmErr {
				return err
			}
		}
		if sec != nil && sec == a.sections.current() && len(sec.data) > before {
			a.logBytes(sec.startAddress+before, sec.data[before:])
		}
	}
	return nil
}

// logBytes hex-dumps bytes just appended to a section, in the
// teacher's space-separated hex format.
func (a *Assembler) logBytes(addr int, data []byte) {
	if !a.verbose {
		return
	}
	fmt.Fprintf(a.out, "  %04X: %s\n", addr, byteString(data))
}

func (a *Assembler) dialectFor(fileIndex int) Dialect {
	if fileIndex >= 0 && fileIndex < len(a.dialects) {
		return a.dialects[fileIndex]
	}
	return a.opts.Dialect
}

func (a *Assembler) processLine(line fstring, ctx *context) error {
	if a.capturing != nil {
		return a.captureLine(line)
	}

	line = line.stripTrailingComment(a.dialectFor(line.fileIndex))
	if line.isEmpty() {
		return nil
	}
	if a.dialectFor(line.fileIndex) == DialectMerlin && line.startsWithChar('*') {
		return nil
	}

	dialect := a.dialectFor(line.fileIndex)

	// Struct/enum bodies are a flat list of member declarations, one per
	// line, conventionally written at column 0 the same way the struct's
	// own header is - so they must be intercepted before the ordinary
	// leading-label parse below mistakes the member name for a label and
	// defineLabelHere fails outright (no section exists yet). endstruct
	// and endenum still terminate the body normally.
	if a.activeStruct != nil || a.activeEnum != nil {
		word, afterWord := line.consumeWhitespace().consumeWhile(wordChar)
		if op, isDirective := a.matchDirective(word.str); isDirective {
			if op == pseudoEndStruct || op == pseudoEndEnum {
				return a.doStructEnd(line)
			}
		}
		if word.isEmpty() {
			return nil
		}
		return a.emitStructMember(word.str, afterWord.consumeWhitespace(), line)
	}

	var label fstring
	rest := line
	if !line.startsWith(whitespace) {
		var err error
		label, rest, err = a.parseLeadingLabel(line)
		if err != nil {
			return err
		}
	} else {
		rest = line.consumeWhitespace()
	}

	// Brace scopes may open or close with no other content on the line.
	if rest.startsWithChar('{') {
		a.openScope()
		rest = rest.consume(1).consumeWhitespace()
		if rest.isEmpty() {
			return nil
		}
	}
	if rest.startsWithChar('}') {
		if err := a.closeScope(line); err != nil {
			return err
		}
		rest = rest.consume(1).consumeWhitespace()
		if rest.isEmpty() {
			return nil
		}
	}

	word, afterWord := rest.consumeWhile(wordChar)

	// Conditional directives run even while a branch is inactive, so
	// nesting depth tracks correctly.
	if op, isDirective := a.matchDirective(word.str); isDirective {
		switch op {
		case pseudoIf, pseudoIfDef, pseudoElse, pseudoElif, pseudoEndif:
			return a.handleConditional(op, line, afterWord.consumeWhitespace())
		}
	}

	if !a.cond.enabled() {
		return nil
	}

	if !label.isEmpty() {
		if err := a.defineLabelHere(label, line); err != nil {
			return err
		}
	}

	if word.isEmpty() {
		return nil
	}

	if op, isDirective := a.matchDirective(word.str); isDirective {
		return a.dispatchDirective(op, word, line, afterWord.consumeWhitespace())
	}

	if end, ok := nextDirectiveToken(word.str); ok {
		return a.dispatchDirective(end, word, line, afterWord.consumeWhitespace())
	}

	if m := a.macros.lookup(word.str); m != nil {
		return a.invokeMacro(m, afterWord.consumeWhitespace(), dialect)
	}

	if assignRest, isAssign := matchAssignment(rest); isAssign {
		return a.assignConst(word, assignRest, line)
	}

	return a.emitMnemonic(word.str, afterWord.consumeWhitespace(), line)
}

// matchAssignment recognizes "name = expr" / "name := expr" once name
// has already been consumed from rest; rest here still begins at name.
func matchAssignment(rest fstring) (fstring, bool) {
	name, after := rest.consumeWhile(identifierChar)
	if name.isEmpty() {
		return fstring{}, false
	}
	after = after.consumeWhitespace()
	if after.startsWithString(":=") {
		return after.consume(2).consumeWhitespace(), true
	}
	if after.startsWithChar('=') && !after.startsWithString("==") {
		return after.consume(1).consumeWhitespace(), true
	}
	return fstring{}, false
}

func (a *Assembler) matchDirective(word string) (pseudoOp, bool) {
	if word == "" {
		return 0, false
	}
	op, err := a.directives.lookup(word)
	if err != nil {
		return 0, false
	}
	return op, true
}

//
// labels and scopes
//

func (a *Assembler) parseLeadingLabel(line fstring) (label, remain fstring, err error) {
	if !line.startsWith(labelStartChar) {
		return fstring{}, line, nil
	}
	label, remain = line.consumeWhile(labelChar)
	if remain.startsWithChar(':') {
		remain = remain.consume(1).consumeWhitespace()
		return label, remain, nil
	}
	// An unadorned column-0 word (no colon) that is itself a directive
	// keyword - struct, enum, macro, and their kin - is the directive,
	// not a label; struct/enum/macro headers are conventionally written
	// at column 0 with no colon.
	if _, isDirective := a.matchDirective(label.str); isDirective {
		return fstring{}, line, nil
	}
	remain = remain.consumeWhitespace()
	return label, remain, nil
}

func (a *Assembler) defineLabelHere(label, line fstring) error {
	pc, ok := a.currentPC()
	if !ok {
		return asmerror{line: line, status: UnprocessableLine, msg: "label outside any section"}
	}
	name := label.str
	if !isLocalLabel(name) {
		if existing := a.labels.get(name); existing != nil && existing.flags.evaluated {
			return asmerror{line: label, status: LabelAlreadyDefined, msg: "label \"" + name + "\" already defined"}
		}
		a.lastDefinedLabel = name
	} else if len(a.scopes) > 0 {
		top := &a.scopes[len(a.scopes)-1]
		top.localNames = append(top.localNames, name)
	}
	sectionID := a.sections.currentIndex()
	if a.sections.current() != nil && a.sections.current().isFixed() {
		sectionID = -1
	}
	return a.labels.addressLabel(name, pc, sectionID, false, a)
}

func (a *Assembler) openScope() error {
	if len(a.scopes) >= maxScopeDepth {
		return asmerror{status: ScopeTooDeep}
	}
	pc, _ := a.currentPC()
	a.scopes = append(a.scopes, scopeFrame{startPC: pc})
	return nil
}

func (a *Assembler) closeScope(line fstring) error {
	if len(a.scopes) == 0 {
		return asmerror{line: line, status: UnbalancedScopeClosure}
	}
	top := a.scopes[len(a.scopes)-1]
	a.scopes = a.scopes[:len(a.scopes)-1]
	endPC, _ := a.currentPC()

	for _, name := range top.localNames {
		delete(a.labels.labels, name)
	}
	for _, key := range top.poolLocals {
		parts := strings.SplitN(key, "/", 2)
		if len(parts) == 2 {
			if p := a.pools.pools[parts[0]]; p != nil {
				if addr, ok := p.labels[parts[1]]; ok {
					p.release(addr)
				}
			}
		}
	}

	env := scopeEndOverride{evalEnv: a, endPC: endPC}
	errs := a.labels.reCheck("", endPC, false, env)
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

//
// block capture: macro and rept bodies
//

func (a *Assembler) beginCapture(op pseudoOp, name string, params []string, countText fstring, dialect Dialect) {
	a.capturing = &blockCapture{kind: op, name: name, params: params, countText: countText, dialect: dialect}
}

func matchingEnd(kind pseudoOp) pseudoOp {
	if kind == pseudoMacro {
		return pseudoEndMacro
	}
	return pseudoEndRept
}

func (a *Assembler) captureLine(line fstring) error {
	c := a.capturing
	stripped := line.stripTrailingComment(a.dialectFor(line.fileIndex))
	trimmed := stripped
	if trimmed.startsWith(whitespace) {
		trimmed = trimmed.consumeWhitespace()
	}
	word, _ := trimmed.consumeWhile(wordChar)

	if end, ok := nextDirectiveToken(strings.TrimSpace(trimmed.str)); ok && end == matchingEnd(c.kind) {
		if c.depth > 0 {
			c.depth--
			c.lines = append(c.lines, line)
			return nil
		}
		return a.endCapture()
	}

	if op, isDirective := a.matchDirective(word.str); isDirective {
		if op == c.kind {
			c.depth++
		} else if op == matchingEnd(c.kind) {
			if c.depth > 0 {
				c.depth--
			} else {
				return a.endCapture()
			}
		}
	}
	c.lines = append(c.lines, line)
	return nil
}

func (a *Assembler) endCapture() error {
	c := a.capturing
	a.capturing = nil
	switch c.kind {
	case pseudoMacro:
		return a.macros.define(&macro{name: c.name, params: c.params, body: c.lines, dialect: c.dialect})
	case pseudoRept:
		tree, _, err := a.exprP.parse(c.countText, fstring{}, true, c.dialect)
		if err != nil {
			return asmerror{line: c.countText, status: UnresolvableReptCount}
		}
		out := tree.resolve(a)
		if out.status != Ok {
			return asmerror{line: c.countText, status: UnresolvableReptCount}
		}
		if err := a.openScope(); err != nil {
			return err
		}
		return a.contexts.push(newReptFrame(out.value, c.lines))
	}
	return nil
}

func (a *Assembler) invokeMacro(m *macro, argsText fstring, dialect Dialect) error {
	var args []fstring
	rest := argsText
	for !rest.isEmpty() {
		arg, remain := rest.consumeUntilUnquotedChar(',')
		args = append(args, arg)
		rest = remain
		if rest.startsWithChar(',') {
			rest = rest.consume(1).consumeWhitespace()
		}
	}
	frame := newMacroFrame(m, args, dialect)
	if frame.scopeOpened {
		if err := a.openScope(); err != nil {
			return err
		}
	}
	return a.contexts.push(frame)
}

//
// conditionals
//

func (a *Assembler) handleConditional(op pseudoOp, line, rest fstring) error {
	switch op {
	case pseudoIf:
		cond, err := a.evalConditionExpr(rest, line)
		if err != nil {
			return err
		}
		return a.cond.pushIf(cond)
	case pseudoIfDef:
		name := strings.TrimSpace(rest.str)
		defined := a.labels.get(name) != nil || a.macros.lookup(name) != nil
		return a.cond.pushIf(defined)
	case pseudoElif:
		cond, err := a.evalConditionExpr(rest, line)
		if err != nil {
			return err
		}
		return a.cond.elseOrElif(cond)
	case pseudoElse:
		return a.cond.elseOrElif(true)
	case pseudoEndif:
		return a.cond.endif()
	}
	return nil
}

func (a *Assembler) evalConditionExpr(rest, line fstring) (bool, error) {
	tree, _, err := a.exprP.parse(rest, fstring{}, true, a.dialectFor(line.fileIndex))
	if err != nil {
		return false, asmerror{line: line, status: ConditionalCannotBeResolved}
	}
	out := tree.resolve(a)
	if out.status != Ok {
		return false, asmerror{line: line, status: ConditionalCannotBeResolved}
	}
	return out.value != 0, nil
}

//
// directive dispatch
//

func (a *Assembler) dispatchDirective(op pseudoOp, word, line, rest fstring) error {
	dialect := a.dialectFor(line.fileIndex)
	switch op {
	case pseudoCPU:
		return a.doCPU(rest, line)
	case pseudoOrg:
		return a.doOrg(rest, line)
	case pseudoSection:
		return a.doSection(rest, line)
	case pseudoLink:
		return a.doLink(rest, line)
	case pseudoXdef:
		return a.doXdef(rest)
	case pseudoXref:
		return a.doXref(rest)
	case pseudoAlign:
		return a.doAlign(rest, line)
	case pseudoMacro:
		return a.doMacroStart(rest, dialect)
	case pseudoEndMacro:
		return asmerror{line: line, status: BadMacroFormat, msg: "endm without macro"}
	case pseudoRept:
		return a.doReptStart(rest, dialect)
	case pseudoEndRept:
		return asmerror{line: line, status: ReptMissingScope, msg: "endr without rept"}
	case pseudoEval:
		return a.doEval(rest, line)
	case pseudoByte:
		return a.doData(rest, line, 1)
	case pseudoWord:
		return a.doData(rest, line, 2)
	case pseudoDDB:
		return a.doDataBigEndianWord(rest, line)
	case pseudoLong:
		return a.doData(rest, line, 3)
	case pseudoDC:
		return a.doDC(word, rest, line)
	case pseudoText:
		return a.doText(rest, line, dialect)
	case pseudoInclude:
		return a.doInclude(rest, line, dialect)
	case pseudoIncBin:
		return a.doIncbin(rest, line)
	case pseudoImport:
		return a.doImport(rest, line, dialect)
	case pseudoConst:
		return a.doConst(rest, line, dialect)
	case pseudoLabel:
		return a.doLabelDirective(rest, line)
	case pseudoIncSym:
		return nil // symbol-table include; no listing/map consumer exists yet
	case pseudoLabPool:
		return a.doLabPool(rest, line)
	case pseudoStruct:
		return a.doStructStart(rest, line, false)
	case pseudoEnum:
		return a.doStructStart(rest, line, true)
	case pseudoEndStruct, pseudoEndEnum:
		return a.doStructEnd(line)
	case pseudoIncDir:
		return nil // include search path; this port resolves paths as given
	case pseudoA16:
		a.m16 = true
		return nil
	case pseudoA8:
		a.m16 = false
		return nil
	case pseudoXY16:
		a.x16 = true
		return nil
	case pseudoXY8:
		a.x16 = false
		return nil
	case pseudoHex:
		return a.doHex(rest, line)
	case pseudoEject, pseudoLst, pseudoCyc:
		return nil // listing/cycle-count annotations; no effect on emitted bytes
	case pseudoDummy:
		return a.doDummy(rest, line)
	case pseudoDummyEnd:
		if !a.sections.endSection() {
			return asmerror{line: line, status: UnprocessableLine, msg: "dummy_end without dummy"}
		}
		return nil
	case pseudoDS:
		return a.doDS(rest, line)
	case pseudoUsr:
		return nil // host-specific USR vector; no target machine to bind it to
	case pseudoSave:
		return nil // disk-image directives are a host/file-system concern, not code generation
	case pseudoXC:
		return a.doXC(line)
	case pseudoMX:
		return a.doMX(rest, line, dialect)
	case pseudoEnt:
		return a.doEnt(line)
	case pseudoExt:
		return a.doExt(word)
	case pseudoLoad:
		return nil // load address is applied at export time from the fixed section's start address
	case pseudoExport:
		return a.doExportAppend(rest)
	case pseudoIncObj:
		return a.doImportObject(rest, line)
	}
	return asmerror{line: line, status: UnknownDirective, msg: "unhandled directive \"" + word.str + "\""}
}

func (a *Assembler) doCPU(rest fstring, line fstring) error {
	name := strings.TrimSpace(rest.str)
	id, ok := cpu.LookupID(name)
	if !ok {
		return asmerror{line: line, status: CPUUnsupported, msg: "unsupported cpu \"" + name + "\""}
	}
	a.cpuID = id
	a.iset = cpu.Get(id)
	return nil
}

func (a *Assembler) parseExprArg(text, line fstring) (evalOutcome, error) {
	dialect := a.dialectFor(line.fileIndex)
	scopeLabel := fstring{}
	tree, _, err := a.exprP.parse(text, scopeLabel, true, dialect)
	if err != nil {
		return evalOutcome{}, asmerror{line: line, status: UnexpectedCharacter}
	}
	return tree.resolve(a), nil
}

func (a *Assembler) doOrg(rest, line fstring) error {
	out, err := a.parseExprArg(rest, line)
	if err != nil {
		return err
	}
	if out.status != Ok {
		return asmerror{line: line, status: AlignNotImmediatelyResolvable, msg: "org must be immediately resolvable"}
	}
	// Reuse the current section's name only when it is already fixed, so
	// consecutive orgs keep extending the same output block. A relative
	// section's name is reserved for its own later LINK and must never
	// be shadowed by an org-created fixed section of the same name.
	if cur := a.sections.current(); cur != nil && cur.isFixed() {
		a.sections.setFixedSection(cur.name, out.value)
		return nil
	}
	name := "code"
	for {
		s, i := a.sections.find(name)
		if i < 0 || s.isFixed() {
			break
		}
		name += "$"
	}
	a.sections.setFixedSection(name, out.value)
	return nil
}

func (a *Assembler) doSection(rest, line fstring) error {
	name, remain := rest.consumeWhile(identifierChar)
	remain = remain.consumeWhitespace()
	typ := sectCode
	align := 1
	if !remain.isEmpty() {
		word, after := remain.consumeWhile(wordChar)
		switch strings.ToLower(word.str) {
		case "bss":
			typ = sectBSS
		case "data":
			typ = sectData
		case "zp", "zeropage":
			typ = sectZeroPage
		}
		after = after.consumeWhitespace()
		if !after.isEmpty() {
			if out, err := a.parseExprArg(after, line); err == nil && out.status == Ok {
				align = out.value
			}
		}
	}
	a.sections.setRelativeSection(name.str, typ, align)
	return nil
}

func (a *Assembler) doLink(rest, line fstring) error {
	name := strings.TrimSpace(rest.str)
	if err := a.sections.linkSections(name); err != nil {
		return asmerror{line: line, status: LinkInRelativeOrDummySection, msg: err.Error()}
	}
	a.sections.resolveRelocs()
	if sec, i := a.sections.find(name); i >= 0 {
		a.logValue("linked "+name, sec.relocs)
	}
	return nil
}

func (a *Assembler) doXdef(rest fstring) error {
	name := strings.TrimSpace(rest.str)
	l := a.labels.define(name)
	l.flags.external = true
	return nil
}

func (a *Assembler) doXref(rest fstring) error {
	name := strings.TrimSpace(rest.str)
	l := a.labels.define(name)
	l.flags.reference = true
	return nil
}

func (a *Assembler) doEnt(line fstring) error {
	if len(a.labels.labels) == 0 {
		return nil
	}
	// ENT marks the most recently *defined* label external. Since
	// labelTable doesn't track definition order, callers are expected to
	// issue ENT immediately after the label it applies to; we resolve it
	// via the label captured by the last defineLabelHere call.
	if a.lastDefinedLabel == "" {
		return asmerror{line: line, status: UnprocessableLine, msg: "ent with no preceding label"}
	}
	l := a.labels.define(a.lastDefinedLabel)
	l.flags.external = true
	return nil
}

func (a *Assembler) doExt(word fstring) error {
	return nil
}

func (a *Assembler) doAlign(rest, line fstring) error {
	out, err := a.parseExprArg(rest, line)
	if err != nil {
		return err
	}
	if out.status != Ok {
		return asmerror{line: line, status: AlignNotImmediatelyResolvable}
	}
	sec := a.sections.current()
	if sec == nil {
		return asmerror{line: line, status: UnprocessableLine}
	}
	padTo(sec, out.value)
	return nil
}

func (a *Assembler) doMacroStart(rest fstring, dialect Dialect) error {
	name, after := rest.consumeWhile(identifierChar)
	var params []string
	after = after.consumeWhitespace()
	if after.startsWithChar('(') {
		inner, remain := consumeBracketed(after, '(', ')')
		for _, p := range strings.Split(inner.str, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				params = append(params, p)
			}
		}
		after = remain
	} else if !after.isEmpty() && dialect != DialectMerlin {
		for _, p := range strings.Split(after.str, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				params = append(params, p)
			}
		}
	}
	a.beginCapture(pseudoMacro, name.str, params, fstring{}, dialect)
	return nil
}

func (a *Assembler) doReptStart(rest fstring, dialect Dialect) error {
	countText := rest
	if idx := strings.IndexByte(rest.str, '{'); idx >= 0 {
		countText = rest.trunc(idx)
	}
	a.beginCapture(pseudoRept, "", nil, countText, dialect)
	return nil
}

func (a *Assembler) doEval(rest, line fstring) error {
	out, err := a.parseExprArg(rest, line)
	if err != nil {
		return err
	}
	if out.status == Ok {
		fmt.Fprintf(a.out, "%s(%d): %d\n", a.fileName(line.fileIndex), line.row, out.value)
	}
	return nil
}

func (a *Assembler) doData(rest, line fstring, width int) error {
	sec := a.sections.current()
	if sec == nil {
		return asmerror{line: line, status: UnprocessableLine}
	}
	for _, item := range splitTopLevelCommas(rest) {
		if item.isEmpty() {
			continue
		}
		tree, _, err := a.exprP.parse(item, fstring{}, true, a.dialectFor(line.fileIndex))
		if err != nil {
			return asmerror{line: item, status: UnexpectedCharacter}
		}
		out := tree.resolve(a)
		typ := evalByte
		switch width {
		case 2:
			typ = evalAbsRef16
		case 3:
			typ = evalAbsRefL24
		case 4:
			typ = evalAbsRef32
		}
		if err := emitDataValue(sec, a.labels, tree, out, typ, width, item); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler) doDataBigEndianWord(rest, line fstring) error {
	sec := a.sections.current()
	if sec == nil {
		return asmerror{line: line, status: UnprocessableLine}
	}
	for _, item := range splitTopLevelCommas(rest) {
		if item.isEmpty() {
			continue
		}
		tree, _, err := a.exprP.parse(item, fstring{}, true, a.dialectFor(line.fileIndex))
		if err != nil {
			return asmerror{line: item, status: UnexpectedCharacter}
		}
		out := tree.resolve(a)
		if out.status != Ok {
			return asmerror{line: item, status: NotReady, msg: "DDB requires an immediately resolvable value"}
		}
		sec.addByte(byte(out.value >> 8))
		sec.addByte(byte(out.value))
	}
	return nil
}

func emitDataValue(sec *section, labels *labelTable, tree *expr, out evalOutcome, typ lateEvalType, width int, line fstring) error {
	offset := len(sec.data)
	for i := 0; i < width; i++ {
		sec.addByte(0)
	}
	switch out.status {
	case Ok, RelativeSection:
		return labels.writeBack(&lateEval{tree: tree, targetOffset: offset, owningSection: sectionIndexOf(labels, sec), typ: typ, line: line}, out)
	case NotReady, XrefDependent:
		labels.enqueue(&lateEval{tree: tree, exprText: tree.String(), line: line, typ: typ, owningSection: sectionIndexOf(labels, sec), targetOffset: offset, scopeEndPC: -1, usesScopeEnd: tree.containsScopeEnd()})
		return nil
	default:
		return asmerror{line: line, status: out.status}
	}
}

func (a *Assembler) doDC(word, rest, line fstring) error {
	width := 1
	if strings.Contains(strings.ToLower(word.str), ".w") {
		width = 2
	}
	return a.doData(rest, line, width)
}

func (a *Assembler) doText(rest, line fstring, dialect Dialect) error {
	sec := a.sections.current()
	if sec == nil {
		return asmerror{line: line, status: UnprocessableLine}
	}
	enc := encodingASCII
	trimmed := rest.consumeWhitespace()
	if word, after := trimmed.consumeWhile(alpha); !word.isEmpty() {
		if e, ok := parseTextEncoding(word.str); ok {
			enc = e
			trimmed = after.consumeWhitespace()
		}
	}
	for _, item := range splitTopLevelCommas(trimmed) {
		item = fstring{item.fileIndex, item.row, item.column, item.offset, strings.TrimSpace(item.str), item.full}
		if len(item.str) >= 2 && stringQuote(item.str[0]) && item.str[len(item.str)-1] == item.str[0] {
			inner := item.str[1 : len(item.str)-1]
			for i := 0; i < len(inner); i++ {
				sec.addByte(encodeTextByte(inner[i], enc))
			}
			continue
		}
		tree, _, err := a.exprP.parse(item, fstring{}, true, dialect)
		if err != nil {
			return asmerror{line: item, status: UnexpectedCharacter}
		}
		out := tree.resolve(a)
		if err := emitDataValue(sec, a.labels, tree, out, evalByte, 1, item); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler) doInclude(rest, line fstring, dialect Dialect) error {
	name := unquote(strings.TrimSpace(rest.str))
	f, err := os.Open(name)
	if err != nil {
		for _, cand := range merlinPutPath(name) {
			if f2, err2 := os.Open(cand); err2 == nil {
				f = f2
				err = nil
				break
			}
		}
	}
	if err != nil {
		return asmerror{line: line, status: IncludeNotFound, msg: name}
	}
	defer f.Close()

	fileIndex := len(a.files)
	a.files = append(a.files, name)
	a.dialects = append(a.dialects, dialect)

	var lines []fstring
	scanner := bufio.NewScanner(f)
	row := 1
	for scanner.Scan() {
		lines = append(lines, newFstring(fileIndex, row, scanner.Text()))
		row++
	}
	return a.contexts.push(&context{kind: ctxFile, lines: lines})
}

func (a *Assembler) doIncbin(rest, line fstring) error {
	sec := a.sections.current()
	if sec == nil {
		return asmerror{line: line, status: UnprocessableLine}
	}
	name := unquote(strings.TrimSpace(rest.str))
	data, err := os.ReadFile(name)
	if err != nil {
		return asmerror{line: line, status: IncludeNotFound, msg: name}
	}
	sec.addBin(data)
	return nil
}

func (a *Assembler) doImport(rest, line fstring, dialect Dialect) error {
	kindWord, after := rest.consumeWhitespace().consumeWhile(alpha)
	kind, ok := parseImportKind(kindWord.str)
	if !ok {
		return asmerror{line: line, status: UnprocessableLine, msg: "unknown import kind"}
	}
	pathText := after.consumeWhitespace()
	name := unquote(strings.TrimSpace(pathText.str))

	switch kind {
	case importObject:
		return a.importObjectFile(name, line)
	case importC64:
		data, err := os.ReadFile(name)
		if err != nil {
			return asmerror{line: line, status: IncludeNotFound, msg: name}
		}
		if len(data) > 2 {
			data = data[2:]
		}
		if sec := a.sections.current(); sec != nil {
			sec.addBin(data)
		}
		return nil
	case importBinary:
		return a.doIncbin(pathText, line)
	case importSource:
		return a.doInclude(pathText, line, dialect)
	case importText, importSymbols:
		return nil // no listing/symbol export target exists to receive these yet
	}
	return nil
}

func (a *Assembler) doImportObject(rest, line fstring) error {
	return a.importObjectFile(unquote(strings.TrimSpace(rest.str)), line)
}

func (a *Assembler) importObjectFile(name string, line fstring) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return asmerror{line: line, status: IncludeNotFound, msg: name}
	}
	obj, err := readObjectFile(data)
	if err != nil {
		return err
	}
	a.externalFiles++
	if err := mergeImportedObject(a.sections, a.labels, obj, a.externalFiles); err != nil {
		return err
	}
	return nil
}

func (a *Assembler) doConst(rest, line fstring, dialect Dialect) error {
	name, after := rest.consumeWhile(identifierChar)
	after = after.consumeWhitespace()
	if !after.startsWithChar('=') {
		return asmerror{line: line, status: BadAssignmentSyntax}
	}
	after = after.consume(1).consumeWhitespace()
	tree, _, err := a.exprP.parse(after, fstring{}, true, dialect)
	if err != nil {
		return asmerror{line: line, status: UnexpectedCharacter}
	}
	return a.labels.assignLabel(name.str, tree, true, a, line, fstring{})
}

func (a *Assembler) doLabelDirective(rest, line fstring) error {
	name := strings.TrimSpace(rest.str)
	pc, ok := a.currentPC()
	if !ok {
		return asmerror{line: line, status: UnprocessableLine}
	}
	return a.labels.addressLabel(name, pc, a.sections.currentIndex(), false, a)
}

func (a *Assembler) assignConst(nameTok, rest, line fstring) error {
	tree, _, err := a.exprP.parse(rest, fstring{}, true, a.dialectFor(line.fileIndex))
	if err != nil {
		return asmerror{line: line, status: UnexpectedCharacter}
	}
	return a.labels.assignLabel(nameTok.str, tree, false, a, line, fstring{})
}

func (a *Assembler) doLabPool(rest, line fstring) error {
	name, after := rest.consumeWhile(identifierChar)
	after = after.consumeWhitespace()
	var ranges []poolRange
	for _, part := range splitTopLevelCommas(after) {
		part = fstring{part.fileIndex, part.row, part.column, part.offset, strings.TrimSpace(part.str), part.full}
		if !part.startsWithChar('[') {
			continue
		}
		inner, _ := consumeBracketed(part, '[', ']')
		bounds := strings.SplitN(inner.str, ",", 2)
		if len(bounds) != 2 {
			continue
		}
		startOut, err1 := a.parseExprArg(newFstring(line.fileIndex, line.row, strings.TrimSpace(bounds[0])), line)
		endOut, err2 := a.parseExprArg(newFstring(line.fileIndex, line.row, strings.TrimSpace(bounds[1])), line)
		if err1 != nil || err2 != nil || startOut.status != Ok || endOut.status != Ok {
			continue
		}
		ranges = append(ranges, poolRange{start: startOut.value, end: endOut.value})
	}
	_, err := a.pools.declare(name.str, ranges)
	return err
}

func (a *Assembler) doStructStart(rest, line fstring, isEnum bool) error {
	name := strings.TrimSpace(rest.str)
	s, err := a.structs.define(name)
	if err != nil {
		return err
	}
	s.isEnum = isEnum
	if isEnum {
		a.activeEnum = s
		a.enumNext = 0
	} else {
		a.activeStruct = s
	}
	return nil
}

func (a *Assembler) doStructEnd(line fstring) error {
	if a.activeStruct == nil && a.activeEnum == nil {
		return asmerror{line: line, status: StructCannotBeAssembled, msg: "end without struct/enum"}
	}
	a.activeStruct = nil
	a.activeEnum = nil
	return nil
}

func (a *Assembler) doHex(rest, line fstring) error {
	sec := a.sections.current()
	if sec == nil {
		return asmerror{line: line, status: UnprocessableLine}
	}
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, rest.str)
	if len(digits)%2 != 0 {
		return asmerror{line: line, status: OddNibbleHexString}
	}
	for i := 0; i < len(digits); i += 2 {
		v, err := strconv.ParseUint(digits[i:i+2], 16, 8)
		if err != nil {
			return asmerror{line: line, status: OddNibbleHexString}
		}
		sec.addByte(byte(v))
	}
	return nil
}

func (a *Assembler) doDummy(rest, line fstring) error {
	trimmed := strings.TrimSpace(rest.str)
	addr := -1
	if trimmed != "" {
		out, err := a.parseExprArg(newFstring(line.fileIndex, line.row, trimmed), line)
		if err == nil && out.status == Ok {
			addr = out.value
		}
	}
	a.sections.dummySection(addr)
	return nil
}

func (a *Assembler) doDS(rest, line fstring) error {
	sec := a.sections.current()
	if sec == nil {
		return asmerror{line: line, status: UnprocessableLine}
	}
	out, err := a.parseExprArg(rest, line)
	if err != nil {
		return err
	}
	if out.status != Ok {
		return asmerror{line: line, status: DSNotImmediatelyResolvable}
	}
	for i := 0; i < out.value; i++ {
		sec.addByte(0)
	}
	return nil
}

func (a *Assembler) doXC(line fstring) error {
	// Successive XC directives step 6502 -> 65C02 -> 65816, Merlin's own
	// convention for enabling wider opcode sets one XC at a time.
	switch a.cpuID {
	case cpu.NMOS6502, cpu.NMOS6502Illegal:
		a.cpuID = cpu.CMOS65C02
	case cpu.CMOS65C02, cpu.CMOS65C02WDC:
		a.cpuID = cpu.CMOS65816
	}
	a.iset = cpu.Get(a.cpuID)
	return nil
}

func (a *Assembler) doMX(rest, line fstring, dialect Dialect) error {
	out, err := a.parseExprArg(rest, line)
	if err != nil {
		return err
	}
	if out.status != Ok {
		return asmerror{line: line, status: UnprocessableLine}
	}
	x8, m8 := mxFlags(out.value)
	a.x16, a.m16 = !x8, !m8
	return nil
}

func (a *Assembler) doExportAppend(rest fstring) error {
	name := strings.TrimSpace(rest.str)
	if sec := a.sections.current(); sec != nil {
		sec.appendName = name
	}
	a.exportAppends[name] = true
	return nil
}

//
// mnemonic emission
//

func (a *Assembler) emitMnemonic(mnemonic string, operand, line fstring) error {
	if a.iset.AllowedModes(mnemonic) == 0 {
		return asmerror{line: line, status: UnknownMnemonic, msg: "unknown mnemonic \"" + mnemonic + "\""}
	}
	sec := a.sections.current()
	if sec == nil {
		return asmerror{line: line, status: UnprocessableLine}
	}
	dialect := a.dialectFor(line.fileIndex)
	err := emitInstruction(a.iset, mnemonic, operand, sec, a.labels, a, &a.exprP, fstring{}, dialect, a.m16, a.x16)
	if ae, ok := err.(asmerror); ok && ae.line.full == "" {
		ae.line = line
		return ae
	}
	return err
}

func (a *Assembler) emitStructMember(name string, rest, line fstring) error {
	if a.activeEnum != nil {
		a.activeEnum.addMember(name, memberByte)
		a.enumNext++
		return nil
	}
	width, _ := rest.consumeWhile(labelChar)
	switch strings.ToLower(width.str) {
	case "word", ".word":
		a.activeStruct.addMember(name, memberWord)
	case "byte", ".byte", "":
		a.activeStruct.addMember(name, memberByte)
	default:
		inner, ok := a.structs.structs[width.str]
		if !ok {
			return asmerror{line: line, status: StructNotFound, msg: "unknown member type \"" + width.str + "\""}
		}
		a.activeStruct.addStructMember(name, inner)
	}
	return nil
}

//
// small text helpers
//

func splitTopLevelCommas(line fstring) []fstring {
	var out []fstring
	rest := line
	for {
		item, remain := rest.consumeUntilUnquotedChar(',')
		out = append(out, item)
		if !remain.startsWithChar(',') {
			break
		}
		rest = remain.consume(1).consumeWhitespace()
	}
	return out
}

func unquote(s string) string {
	if len(s) >= 2 && stringQuote(s[0]) && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

//
// binary export
//

// ExportBinary implements the section 6.3 grouping rule: every relative
// section is appended (in declaration order) onto the most recent fixed
// section sharing its export-append name, synthesizing a fixed section
// at $1000 if none exists, then each resulting buffer is optionally
// prefixed with a load-address word and/or a length word.
func (a *Assembler) ExportBinary(loadAddress, lengthWord bool) (map[string][]byte, error) {
	// A binary has nowhere to put a still-open forward reference the
	// way an object file's late-eval table does, so this is the last
	// chance to report one instead of silently emitting whatever
	// zero/placeholder bytes were written when the operand was queued.
	if errs := a.labels.reCheck("", -1, true, a); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := a.sections.linkZeroPage(); err != nil {
		return nil, asmerror{status: ZeroPageSectionOutOfRange, msg: err.Error()}
	}
	a.sections.resolveRelocs()

	names := map[string]bool{"": true}
	for name := range a.exportAppends {
		names[name] = true
	}

	out := map[string][]byte{}
	for name := range names {
		var fixedSections []*section
		for _, s := range a.sections.sections {
			if s.appendName != name || s.dummy || s.typ == sectZeroPage {
				continue
			}
			if s.isFixed() && !s.isMerged() {
				fixedSections = append(fixedSections, s)
			}
		}
		if len(fixedSections) == 0 {
			s := a.sections.setFixedSection(name+"$synth", 0x1000)
			a.sections.endSection()
			fixedSections = append(fixedSections, s)
		}
		dst := fixedSections[len(fixedSections)-1]
		for _, s := range a.sections.sections {
			if s.appendName == name && !s.isFixed() && !s.isMerged() {
				a.sections.append(s, dst)
			}
		}
		a.sections.resolveRelocs()

		start := fixedSections[0].startAddress
		end := start
		for _, s := range fixedSections {
			if s.startAddress < start {
				start = s.startAddress
			}
			if s.startAddress+s.size() > end {
				end = s.startAddress + s.size()
			}
		}

		buf := make([]byte, end-start)
		for _, s := range fixedSections {
			copy(buf[s.startAddress-start:], s.data)
		}

		var prefixed []byte
		if loadAddress {
			prefixed = append(prefixed, byte(start), byte(start>>8))
		}
		if lengthWord {
			n := len(buf)
			prefixed = append(prefixed, byte(n), byte(n>>8))
		}
		prefixed = append(prefixed, buf...)
		out[name] = prefixed
	}
	return out, nil
}

// WriteObject serializes the current session into the object-file
// format for later linking (see object.go).
func (a *Assembler) WriteObject() []byte {
	data := writeObjectFile(a.sections, a.labels)
	a.logValue("object header", data[:headerSize])
	return data
}
