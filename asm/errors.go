package asm

import (
	"errors"
	"fmt"
)

// errParse is a sentinel returned by low-level parsing helpers whose
// caller will translate it into a proper Status/asmerror at the point
// where the offending fstring is still in scope.
var errParse = errors.New("parse error")

// Status is the flat tagged result code every parser and evaluator in
// this package returns. Values below FirstError are not errors: they
// are outcomes an evaluator or resolver legitimately produces (a
// not-yet-resolvable expression, a section-relative result, a name
// that isn't a struct). Values at or above StopProcessingOnHigher are
// fatal: the enclosing source segment is abandoned rather than resumed
// at the next line.
type Status int

// Non-error outcomes.
const (
	Ok Status = iota
	RelativeSection
	NotReady
	XrefDependent
	NotStruct
)

// Recoverable errors: printed, assembly continues with the next line.
// FirstError is the threshold Status.IsError() tests against.
const (
	UndefinedCode Status = iota + 100
	UnexpectedCharacter
	TooManyOperands
	TooManyOperators
	UnbalancedRightParen
	InvalidAddressingMode
	BranchOutOfRange
	BadAddressingChar
	BadAssignmentSyntax
	ModifyingConst
	OutOfLabelsInPool
	PoolRedeclared
	PoolLabelAlreadyDefined
	StructAlreadyDefined
	StructNotFound
	BadDataDirectiveType
	UnresolvableReptCount
	OddNibbleHexString
	DSNotImmediatelyResolvable
	MalformedObjectFile
	IncludeNotFound
	LabelAlreadyDefined
	UnknownDirective
	UnknownMnemonic

	FirstError = UndefinedCode
)

// Fatal errors: assembly of the current segment aborts.
// StopProcessingOnHigher is the threshold Status.IsFatal() tests against.
const (
	ScopeTooDeep Status = iota + 200
	UnbalancedScopeClosure
	BadMacroFormat
	AlignNotImmediatelyResolvable
	OutOfMemoryOnMacroExpansion
	ConditionalCannotBeResolved
	EndifWithoutIf
	StructCannotBeAssembled
	UnterminatedCondition
	ReptMissingScope
	LinkInRelativeOrDummySection
	UnprocessableLine
	RelocOffsetOutOfRange
	CPUUnsupported
	CannotAppendSection
	ZeroPageSectionOutOfRange
	NotAnObjectFile

	StopProcessingOnHigher = ScopeTooDeep
)

var statusText = map[Status]string{
	Ok:                            "ok",
	RelativeSection:               "relative section",
	NotReady:                      "not ready",
	XrefDependent:                 "xref dependent",
	NotStruct:                     "not a struct",
	UndefinedCode:                 "undefined code",
	UnexpectedCharacter:           "unexpected character in expression",
	TooManyOperands:               "too many operands",
	TooManyOperators:              "too many operators",
	UnbalancedRightParen:          "unbalanced right parenthesis",
	InvalidAddressingMode:         "invalid addressing mode",
	BranchOutOfRange:              "branch out of range",
	BadAddressingChar:             "bad addressing-mode character",
	BadAssignmentSyntax:           "bad assignment syntax",
	ModifyingConst:                "modifying a const",
	OutOfLabelsInPool:             "out of labels in pool",
	PoolRedeclared:                "pool redeclared",
	PoolLabelAlreadyDefined:       "pool label already defined",
	StructAlreadyDefined:          "struct or enum already defined",
	StructNotFound:                "referenced struct not found",
	BadDataDirectiveType:          "bad dc.? type",
	UnresolvableReptCount:         "unresolvable rept count",
	OddNibbleHexString:            "odd-nibble hex string",
	DSNotImmediatelyResolvable:    "ds not immediately resolvable",
	MalformedObjectFile:           "malformed object file",
	IncludeNotFound:               "include not found",
	LabelAlreadyDefined:           "label already defined",
	UnknownDirective:              "unknown directive",
	UnknownMnemonic:               "unknown mnemonic",
	ScopeTooDeep:                  "scope too deep",
	UnbalancedScopeClosure:        "unbalanced scope closure",
	BadMacroFormat:                "bad macro format",
	AlignNotImmediatelyResolvable: "align not immediately resolvable",
	OutOfMemoryOnMacroExpansion:   "out of memory on macro expansion",
	ConditionalCannotBeResolved:   "conditional cannot be resolved",
	EndifWithoutIf:                "#endif or #else without #if",
	StructCannotBeAssembled:       "struct or enum cannot be assembled",
	UnterminatedCondition:         "unterminated conditional",
	ReptMissingScope:              "rept missing scope",
	LinkInRelativeOrDummySection:  "link used in relative or dummy section",
	UnprocessableLine:             "general unprocessable line",
	RelocOffsetOutOfRange:         "reloc offset out of range",
	CPUUnsupported:                "cpu unsupported",
	CannotAppendSection:           "cannot append section",
	ZeroPageSectionOutOfRange:     "zeropage section out of range",
	NotAnObjectFile:               "not an object file",
}

func (s Status) String() string {
	if t, ok := statusText[s]; ok {
		return t
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// IsError reports whether s represents a diagnostic (recoverable or fatal).
func (s Status) IsError() bool { return s >= FirstError }

// IsFatal reports whether s must abort the current source segment rather
// than let the outer loop resume at the next line.
func (s Status) IsFatal() bool { return s >= StopProcessingOnHigher }

// asmerror pairs a diagnostic Status with the source position and
// offending text that produced it. files is the owning session's file
// list, stamped on by (*Assembler).stamp before the error leaves the
// session; nil for errors with no session of their own (object-file
// format errors, decoded before any session exists).
type asmerror struct {
	line   fstring
	status Status
	msg    string
	files  []string
}

func (e asmerror) Error() string {
	msg := e.msg
	if msg == "" {
		msg = e.status.String()
	}
	return fmt.Sprintf("Error %s(%d): %s \"%s\"", e.fileLabel(), e.line.row, msg, e.line.full)
}

// fileLabel resolves e.line.fileIndex against e.files, falling back to
// a numeric index when there is no session file list to consult.
func (e asmerror) fileLabel() string {
	if i := e.line.fileIndex; i >= 0 && i < len(e.files) {
		return e.files[i]
	}
	return fmt.Sprintf("<file %d>", e.line.fileIndex)
}

// unresolvedError formats the end-of-assembly diagnostic for a label or
// late-eval that never resolved, per the propagation policy: this is
// reported without the offending-text quoting used for asmerror because
// no single source line owns it any longer.
type unresolvedError struct {
	line       int
	expression string
}

func (e unresolvedError) Error() string {
	return fmt.Sprintf("Error (%d): Failed to evaluate label \"%s\"", e.line, e.expression)
}
