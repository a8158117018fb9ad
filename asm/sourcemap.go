package asm

import (
	"encoding/json"
	"io"
	"sort"
)

// A SymbolMap lists every label an assembled session marked external
// with XDEF, in the form consumers of a linked object file need: the
// name and its final resolved address. This is the "map-symbol list"
// half of what a listing tool consumes; the source-line-to-address
// half stays with the (out-of-scope) listing generator.
type SymbolMap struct {
	Exports []Export
}

// An Export describes one XDEF'd label and the address it resolved to.
type Export struct {
	Label   string
	Address int
}

// SymbolMap collects every XDEF'd label currently resolved, sorted by
// address so a linker or debugger can binary-search it the way the
// teacher's SourceMap.Search does for line numbers.
func (a *Assembler) SymbolMap() SymbolMap {
	var m SymbolMap
	for name, l := range a.labels.labels {
		if !l.flags.external || !l.flags.evaluated {
			continue
		}
		m.Exports = append(m.Exports, Export{Label: name, Address: l.value})
	}
	sort.Slice(m.Exports, func(i, j int) bool {
		if m.Exports[i].Address != m.Exports[j].Address {
			return m.Exports[i].Address < m.Exports[j].Address
		}
		return m.Exports[i].Label < m.Exports[j].Label
	})
	return m
}

// Search returns the exported label at or immediately below addr, the
// way a debugger resolves a program counter to the nearest symbol.
func (m *SymbolMap) Search(addr int) (label string, base int, ok bool) {
	i := sort.Search(len(m.Exports), func(i int) bool {
		return m.Exports[i].Address > addr
	})
	if i == 0 {
		return "", 0, false
	}
	e := m.Exports[i-1]
	return e.Label, e.Address, true
}

// ReadFrom reads a symbol map previously written by WriteTo.
func (m *SymbolMap) ReadFrom(r io.Reader) (n int64, err error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	if err := json.Unmarshal(b, m); err != nil {
		return 0, err
	}
	return int64(len(b)), nil
}

// WriteTo writes the symbol map as JSON.
func (m *SymbolMap) WriteTo(w io.Writer) (n int64, err error) {
	b, err := json.Marshal(*m)
	if err != nil {
		return 0, err
	}
	nn, err := w.Write(b)
	return int64(nn), err
}
