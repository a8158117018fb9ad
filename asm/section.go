package asm

import "fmt"

// sectionType classifies what a section's bytes mean to the linker and
// to link_zero_page's packing pass.
type sectionType byte

const (
	sectUndefined sectionType = iota
	sectCode
	sectData
	sectBSS
	sectZeroPage
)

func (t sectionType) String() string {
	switch t {
	case sectCode:
		return "code"
	case sectData:
		return "data"
	case sectBSS:
		return "bss"
	case sectZeroPage:
		return "zeropage"
	default:
		return "undefined"
	}
}

// reloc is a pending fixup: at link time, write
// base+target.startAddress, shifted by shift, as a little-endian value
// of the given width into the owning section's buffer at
// sectionOffset.
type reloc struct {
	baseValue      int
	sectionOffset  int
	targetSection  int
	bytes          int
	shift          int8
}

// section is a named byte buffer with either a fixed load address or a
// relative one resolved later by link_sections/link_zero_page.
type section struct {
	name            string
	appendName      string
	typ             sectionType
	dummy           bool
	addressAssigned bool
	startAddress    int
	cursor          int // == startAddress + len(data) for non-dummy, non-BSS sections
	align           int
	data            []byte
	relocs          []reloc

	mergedInto   int // index into mgr.sections, or -1
	mergedOffset int
}

func (s *section) isFixed() bool { return s.addressAssigned }
func (s *section) isMerged() bool { return s.mergedInto >= 0 }

func (s *section) size() int {
	if s.dummy || s.typ == sectBSS {
		return s.cursor - s.startAddress
	}
	return len(s.data)
}

// addByte appends a single byte, or (for dummy/BSS sections) just
// advances the cursor. Zeropage sections store their bytes like code
// and data sections do.
func (s *section) addByte(b byte) {
	s.cursor++
	if s.dummy || s.typ == sectBSS {
		return
	}
	s.data = append(s.data, b)
}

func (s *section) addWord(w uint16) {
	s.addByte(byte(w))
	s.addByte(byte(w >> 8))
}

func (s *section) addBin(b []byte) {
	for _, c := range b {
		s.addByte(c)
	}
}

// sectionManager owns the section list and the stack of sections
// currently being assembled into (set_section/end_section nest via
// this stack; dummy_section and the "current output section" concept
// share it).
type sectionManager struct {
	sections []*section
	stack    []int // indices into sections, top = current
}

func newSectionManager() *sectionManager {
	return &sectionManager{}
}

func (m *sectionManager) current() *section {
	if len(m.stack) == 0 {
		return nil
	}
	return m.sections[m.stack[len(m.stack)-1]]
}

func (m *sectionManager) currentIndex() int {
	if len(m.stack) == 0 {
		return -1
	}
	return m.stack[len(m.stack)-1]
}

func (m *sectionManager) find(name string) (*section, int) {
	for i, s := range m.sections {
		if s.name == name {
			return s, i
		}
	}
	return nil, -1
}

// setFixedSection implements set_section(name, address): reuse an
// existing section with that name, or create a fixed one at address.
func (m *sectionManager) setFixedSection(name string, address int) *section {
	if s, i := m.find(name); i >= 0 {
		m.stack = append(m.stack, i)
		return s
	}
	s := &section{name: name, addressAssigned: true, startAddress: address, cursor: address, mergedInto: -1}
	m.sections = append(m.sections, s)
	m.stack = append(m.stack, len(m.sections)-1)
	return s
}

// setRelativeSection implements set_section(name): a relative section
// whose final address is fixed only by a later link_sections call.
// typ and align come from parsing the words after the name (done by
// the caller, doSection in asm.go).
func (m *sectionManager) setRelativeSection(name string, typ sectionType, align int) *section {
	if s, i := m.find(name); i >= 0 {
		m.stack = append(m.stack, i)
		return s
	}
	s := &section{name: name, typ: typ, align: align, mergedInto: -1}
	m.sections = append(m.sections, s)
	m.stack = append(m.stack, len(m.sections)-1)
	return s
}

// dummySection implements dummy_section([address]): a section that
// only ever advances the cursor. Passing address < 0 continues from
// the current section's cursor.
func (m *sectionManager) dummySection(address int) *section {
	start := address
	if start < 0 {
		if c := m.current(); c != nil {
			start = c.cursor
		}
	}
	s := &section{name: fmt.Sprintf("$dummy%d", len(m.sections)), dummy: true, addressAssigned: true, startAddress: start, cursor: start, mergedInto: -1}
	m.sections = append(m.sections, s)
	m.stack = append(m.stack, len(m.sections)-1)
	return s
}

// endSection implements end_section(): pop to the previously active
// section. Returns false if there was nothing to pop to.
func (m *sectionManager) endSection() bool {
	if len(m.stack) <= 1 {
		return false
	}
	m.stack = m.stack[:len(m.stack)-1]
	return true
}

// padTo appends zero bytes until dst's cursor satisfies align.
func padTo(dst *section, align int) {
	if align <= 1 {
		return
	}
	for (dst.startAddress+len(dst.data))%align != 0 {
		dst.addByte(0)
	}
}

// append implements the append(src, dst) operation: pad dst to src's
// alignment, copy src's bytes and relocs into dst, and mark src as
// merged at mergedOffset with its final startAddress, so a later
// resolveRelocs patches references to src's labels.
func (m *sectionManager) append(src, dst *section) {
	padTo(dst, src.align)
	offset := len(dst.data)
	dst.data = append(dst.data, src.data...)
	dst.cursor = dst.startAddress + len(dst.data)
	for _, r := range src.relocs {
		dst.relocs = append(dst.relocs, reloc{
			baseValue:     r.baseValue,
			sectionOffset: r.sectionOffset + offset,
			targetSection: r.targetSection,
			bytes:         r.bytes,
			shift:         r.shift,
		})
	}
	src.mergedOffset = offset
	_, dstIndex := m.find(dst.name)
	src.mergedInto = dstIndex
	src.startAddress = dst.startAddress + offset
	src.addressAssigned = true
}

// resolveRelocs writes every pending reloc whose target section now has
// a final address into its owning section's buffer and drops it from
// the list. A reloc whose target is still relative is left in place for
// a later resolveRelocs call, once link_sections or link_zero_page gives
// that target a startAddress.
func (m *sectionManager) resolveRelocs() {
	for _, s := range m.sections {
		if len(s.relocs) == 0 {
			continue
		}
		pending := s.relocs[:0]
		for _, r := range s.relocs {
			target := m.sections[r.targetSection]
			if !target.isFixed() {
				pending = append(pending, r)
				continue
			}
			value := r.baseValue + target.startAddress
			if r.shift > 0 {
				value <<= uint(r.shift)
			} else if r.shift < 0 {
				value >>= uint(-r.shift)
			}
			for i := 0; i < r.bytes && r.sectionOffset+i < len(s.data); i++ {
				s.data[r.sectionOffset+i] = byte(value >> uint(8*i))
			}
		}
		s.relocs = pending
	}
}

// linkSections implements link_sections(name): append every unmerged
// relative section matching name (or every relative section, if name
// is empty) into the current section, in declaration order. The
// current section must be fixed and non-dummy.
func (m *sectionManager) linkSections(name string) error {
	dst := m.current()
	if dst == nil || !dst.isFixed() || dst.dummy {
		return fmt.Errorf("link used outside a fixed, non-dummy section")
	}
	for _, s := range m.sections {
		if s == dst || s.isFixed() || s.isMerged() {
			continue
		}
		if name != "" && s.name != name {
			continue
		}
		if s.typ == sectZeroPage && dst.typ != sectZeroPage {
			return fmt.Errorf("zero-page section %q may only be linked into a zero-page section", s.name)
		}
		m.append(s, dst)
	}
	return nil
}

// linkZeroPage implements link_zero_page(), invoked once by the driver
// before export: places every unassigned zeropage section into
// [0,256), preferring the first feasible slot adjacent to an already
// fixed zeropage section, and otherwise packing descending from 256.
func (m *sectionManager) linkZeroPage() error {
	var zp []*section
	fixedRanges := [][2]int{}
	for _, s := range m.sections {
		if s.typ != sectZeroPage || s.isMerged() {
			continue
		}
		if s.isFixed() {
			fixedRanges = append(fixedRanges, [2]int{s.startAddress, s.startAddress + s.size()})
		} else {
			zp = append(zp, s)
		}
	}

	occupied := func(start, size int) bool {
		if start < 0 || start+size > 256 {
			return true
		}
		for _, r := range fixedRanges {
			if start < r[1] && start+size > r[0] {
				return true
			}
		}
		return false
	}
	adjacent := func(start, size int) bool {
		for _, r := range fixedRanges {
			if start == r[1] || start+size == r[0] {
				return true
			}
		}
		return false
	}

	if len(fixedRanges) > 0 {
		for _, s := range zp {
			size := s.size()
			placed := false
			for start := 0; start+size <= 256; start++ {
				if !occupied(start, size) && adjacent(start, size) {
					s.startAddress = start
					s.cursor = start + size
					s.addressAssigned = true
					fixedRanges = append(fixedRanges, [2]int{start, start + size})
					placed = true
					break
				}
			}
			if !placed {
				return fmt.Errorf("zero-page section %q out of range", s.name)
			}
		}
	} else {
		cursor := 256
		for _, s := range zp {
			size := s.size()
			cursor -= size
			if cursor < 0 {
				return fmt.Errorf("zero-page section %q out of range", s.name)
			}
			s.startAddress = cursor
			s.cursor = cursor + size
			s.addressAssigned = true
		}
	}

	total := 0
	for _, s := range m.sections {
		if s.typ == sectZeroPage && !s.isMerged() {
			total += s.size()
		}
	}
	if total > 256 {
		return fmt.Errorf("total zero-page usage %d exceeds 256 bytes", total)
	}
	return nil
}
