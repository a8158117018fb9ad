package asm

import "strings"

// structMemberType is a struct member's declared type: a primitive
// width or a reference to a previously-declared struct.
type structMemberType byte

const (
	memberByte structMemberType = iota
	memberWord
	memberStruct
)

// structMember is one field of a labelStruct: its byte offset within
// the struct, its width (for byte/word), or the name of the nested
// struct it refers to.
type structMember struct {
	name       string
	typ        structMemberType
	offset     int
	size       int
	structName string // valid when typ == memberStruct
}

// labelStruct is a named aggregate of members, or (isEnum) a run of
// same-size members a fixed distance apart used purely to hand out
// sequential constant values.
type labelStruct struct {
	name    string
	members []structMember
	size    int
	isEnum  bool
}

// structTable owns every declared struct/enum by name.
type structTable struct {
	structs map[string]*labelStruct
}

func newStructTable() *structTable {
	return &structTable{structs: map[string]*labelStruct{}}
}

func (t *structTable) define(name string) (*labelStruct, error) {
	if _, ok := t.structs[name]; ok {
		return nil, asmerror{status: StructAlreadyDefined, msg: "struct \"" + name + "\" already defined"}
	}
	s := &labelStruct{name: name}
	t.structs[name] = s
	return s, nil
}

// addMember appends a byte/word member and returns its offset.
func (s *labelStruct) addMember(name string, typ structMemberType) int {
	size := 1
	if typ == memberWord {
		size = 2
	}
	offset := s.size
	s.members = append(s.members, structMember{name: name, typ: typ, offset: offset, size: size})
	s.size += size
	return offset
}

// addStructMember appends a nested-struct member sized by inner's
// total size.
func (s *labelStruct) addStructMember(name string, inner *labelStruct) int {
	offset := s.size
	s.members = append(s.members, structMember{name: name, typ: memberStruct, offset: offset, size: inner.size, structName: inner.name})
	s.size += inner.size
	return offset
}

// find returns the member named name, or nil.
func (s *labelStruct) find(name string) *structMember {
	for i := range s.members {
		if s.members[i].name == name {
			return &s.members[i]
		}
	}
	return nil
}

// evalStruct implements eval_struct("Outer.Inner.field"): walk a
// dotted name through nested structs, summing offsets. Returns
// NotStruct (via the bool) if the root name is not a known struct, so
// the caller can fall through to ordinary label lookup.
func (t *structTable) evalStruct(dotted string) (value int, ok bool, err error) {
	parts := strings.Split(dotted, ".")
	root, ok := t.structs[parts[0]]
	if !ok {
		return 0, false, nil
	}

	offset := 0
	cur := root
	for i := 1; i < len(parts); i++ {
		m := cur.find(parts[i])
		if m == nil {
			return 0, true, asmerror{status: StructNotFound, msg: "no member \"" + parts[i] + "\" in struct \"" + cur.name + "\""}
		}
		offset += m.offset
		if m.typ == memberStruct {
			next, ok2 := t.structs[m.structName]
			if !ok2 {
				return 0, true, asmerror{status: StructNotFound}
			}
			cur = next
		} else if i != len(parts)-1 {
			return 0, true, asmerror{status: StructNotFound, msg: "\"" + parts[i] + "\" is not a struct"}
		}
	}
	return offset, true, nil
}

//
// label pools
//

// poolRange is one address range a pool draws allocations from.
type poolRange struct {
	start, end int // [start, end)
}

// labelPool hands out fixed-size byte ranges from a set of address
// ranges and reclaims them on scope exit. The bitmap uses 2 bits per
// byte: 00 free, and a nonzero value on the highest-address byte of an
// allocation records that allocation's width (1..3, meaning 1/2/4
// bytes) so release can recover it from the address alone.
type labelPool struct {
	name   string
	ranges []poolRange
	bitmap map[int]byte // address -> width code, set only on the top byte of each allocation
	labels map[string]int
}

func newLabelPool(name string, ranges []poolRange) *labelPool {
	return &labelPool{name: name, ranges: ranges, bitmap: map[int]byte{}, labels: map[string]int{}}
}

func widthCode(size int) byte {
	switch size {
	case 1:
		return 1
	case 2:
		return 2
	case 4:
		return 3
	default:
		return 0
	}
}

func codeWidth(code byte) int {
	switch code {
	case 1:
		return 1
	case 2:
		return 2
	case 3:
		return 4
	default:
		return 0
	}
}

// occupied reports whether any byte in [addr, addr+size) is already
// allocated.
func (p *labelPool) occupied(addr, size int) bool {
	for a := addr; a < addr+size; a++ {
		for existing, code := range p.bitmap {
			w := codeWidth(code)
			top := existing
			bottom := existing - w + 1
			if a >= bottom && a <= top {
				return true
			}
		}
	}
	return false
}

// reserve scans ranges high-address-first for the first run of size
// free bytes and marks it allocated.
func (p *labelPool) reserve(name string, size int) (int, error) {
	if _, ok := p.labels[name]; ok {
		return 0, asmerror{status: PoolLabelAlreadyDefined, msg: "pool label \"" + name + "\" already defined"}
	}
	for i := len(p.ranges) - 1; i >= 0; i-- {
		r := p.ranges[i]
		for addr := r.end - size; addr >= r.start; addr-- {
			if !p.occupied(addr, size) {
				p.bitmap[addr+size-1] = widthCode(size)
				p.labels[name] = addr
				return addr, nil
			}
		}
	}
	return 0, asmerror{status: OutOfLabelsInPool, msg: "pool \"" + p.name + "\" is out of space"}
}

// release frees the allocation that reserve most recently returned for
// addr, restoring the bitmap to its pre-reserve state.
func (p *labelPool) release(addr int) {
	for top, code := range p.bitmap {
		w := codeWidth(code)
		if top-w+1 == addr {
			delete(p.bitmap, top)
			break
		}
	}
	for name, a := range p.labels {
		if a == addr {
			delete(p.labels, name)
		}
	}
}

// poolTable owns every declared pool by name.
type poolTable struct {
	pools map[string]*labelPool
}

func newPoolTable() *poolTable {
	return &poolTable{pools: map[string]*labelPool{}}
}

func (t *poolTable) declare(name string, ranges []poolRange) (*labelPool, error) {
	if _, ok := t.pools[name]; ok {
		return nil, asmerror{status: PoolRedeclared, msg: "pool \"" + name + "\" already declared"}
	}
	p := newLabelPool(name, ranges)
	t.pools[name] = p
	return p, nil
}
