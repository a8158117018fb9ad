package asm

import "encoding/binary"

// Object file magic and the bit layout of a Labels[] entry's flags
// word, per the on-disk format documented alongside XDEF/XREF linking.
const (
	objectMagic = 0x7836

	labelFlagEval    = 1 << 15
	labelFlagAddr    = 1 << 14
	labelFlagConst   = 1 << 13
	labelFileMask    = 0x1fff // bits 0..12: external file index, 0 = shared XDEF
)

const (
	headerSize     = 20
	sectionEntSize = 24
	relocEntSize   = 12
	labelEntSize   = 16
	lateEvalEntSize = 24
	mapSymEntSize  = 11
)

// objSection, objReloc, objLabel, objLateEval and objMapSym mirror the
// wire records exactly; conversion to and from the live sectionManager/
// labelTable types happens in writeObjectFile/mergeImportedObject.
type objSection struct {
	nameOffs      int32
	expAppOffs    int32
	startAddress  int32
	outputSize    int32
	alignAddress  int32
	relocs        uint16
	typ           byte
	flags         byte // b0=dummy, b1=fixed, b2=merged
}

type objReloc struct {
	baseValue     int32
	sectionOffset int32
	targetSection uint16
	bytes         int8
	shift         int8
}

type objLabel struct {
	nameOffs int32
	value    int32
	flags    int32
	section  uint16
	mapIndex uint16
}

type objLateEval struct {
	labelOffs      int32
	expressionOffs int32
	address        int32
	target         int32
	section        uint16
	rept           uint16
	scope          uint16
	typ            uint16
}

type objMapSym struct {
	nameOffs int32
	value    int32
	section  uint16
	local    byte
}

// stringPool accumulates nul-terminated names for the object file's
// StringPool table. Offset 0 is reserved to mean "no string" so it is
// never handed out.
type stringPool struct {
	data []byte
}

func newStringPool() *stringPool {
	return &stringPool{data: []byte{0}}
}

func (p *stringPool) intern(s string) int32 {
	if s == "" {
		return 0
	}
	off := len(p.data)
	p.data = append(p.data, s...)
	p.data = append(p.data, 0)
	return int32(off)
}

func (p *stringPool) at(off int32) string {
	if off <= 0 || int(off) >= len(p.data) {
		return ""
	}
	end := int(off)
	for end < len(p.data) && p.data[end] != 0 {
		end++
	}
	return string(p.data[off:end])
}

// writeObjectFile serializes every section, reloc, label and pending
// late-eval into the on-disk object format so a later assembly can
// IMPORT it.
func writeObjectFile(sections *sectionManager, labels *labelTable) []byte {
	pool := newStringPool()

	objSections := make([]objSection, 0, len(sections.sections))
	sectionIndex := map[*section]int{}
	var binData []byte
	for i, s := range sections.sections {
		sectionIndex[s] = i
		var flags byte
		if s.dummy {
			flags |= 1
		}
		if s.isFixed() {
			flags |= 2
		}
		if s.isMerged() {
			flags |= 4
		}
		objSections = append(objSections, objSection{
			nameOffs:     pool.intern(s.name),
			expAppOffs:   pool.intern(s.appendName),
			startAddress: int32(s.startAddress),
			outputSize:   int32(s.size()),
			alignAddress: int32(s.align),
			relocs:       uint16(len(s.relocs)),
			typ:          byte(s.typ),
			flags:        flags,
		})
		if !s.dummy && !s.isMerged() {
			binData = append(binData, s.data...)
		}
	}

	var objRelocs []objReloc
	for _, s := range sections.sections {
		for _, r := range s.relocs {
			objRelocs = append(objRelocs, objReloc{
				baseValue:     int32(r.baseValue),
				sectionOffset: int32(r.sectionOffset),
				targetSection: uint16(r.targetSection),
				bytes:         int8(r.bytes),
				shift:         r.shift,
			})
		}
	}

	objLabels := make([]objLabel, 0, len(labels.labels))
	for name, l := range labels.labels {
		var flags int32
		if l.flags.evaluated {
			flags |= labelFlagEval
		}
		if l.flags.pcRelative {
			flags |= labelFlagAddr
		}
		if l.flags.constant {
			flags |= labelFlagConst
		}
		sec := uint16(0xffff)
		if l.sectionID >= 0 {
			sec = uint16(l.sectionID)
		}
		objLabels = append(objLabels, objLabel{
			nameOffs: pool.intern(name),
			value:    int32(l.value),
			flags:    flags,
			section:  sec,
			mapIndex: uint16(l.mapIndex),
		})
	}

	var objLateEvals []objLateEval
	for _, e := range labels.queue {
		sec := uint16(0xffff)
		if e.owningSection >= 0 {
			sec = uint16(e.owningSection)
		}
		objLateEvals = append(objLateEvals, objLateEval{
			labelOffs:      pool.intern(e.targetLabel),
			expressionOffs: pool.intern(e.exprText),
			address:        int32(e.pcAtEmission),
			target:         int32(e.targetOffset),
			section:        sec,
			rept:           0,
			scope:          uint16(e.scopeDepth),
			typ:            uint16(e.typ),
		})
	}

	buf := make([]byte, headerSize)
	binary.LittleEndian.PutUint16(buf[0:2], objectMagic)
	binary.LittleEndian.PutUint16(buf[2:4], uint16(len(objSections)))
	binary.LittleEndian.PutUint16(buf[4:6], uint16(len(objRelocs)))
	binary.LittleEndian.PutUint16(buf[6:8], uint16(len(objLabels)))
	binary.LittleEndian.PutUint16(buf[8:10], uint16(len(objLateEvals)))
	binary.LittleEndian.PutUint16(buf[10:12], 0) // map_symbols: none until a listing/map export exists
	binary.LittleEndian.PutUint32(buf[12:16], uint32(len(pool.data)))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(len(binData)))

	for _, s := range objSections {
		buf = appendSection(buf, s)
	}
	for _, r := range objRelocs {
		buf = appendReloc(buf, r)
	}
	for _, l := range objLabels {
		buf = appendLabel(buf, l)
	}
	for _, e := range objLateEvals {
		buf = appendLateEval(buf, e)
	}
	buf = append(buf, pool.data...)
	buf = append(buf, binData...)
	return buf
}

func appendSection(buf []byte, s objSection) []byte {
	var b [sectionEntSize]byte
	binary.LittleEndian.PutUint32(b[0:4], uint32(s.nameOffs))
	binary.LittleEndian.PutUint32(b[4:8], uint32(s.expAppOffs))
	binary.LittleEndian.PutUint32(b[8:12], uint32(s.startAddress))
	binary.LittleEndian.PutUint32(b[12:16], uint32(s.outputSize))
	binary.LittleEndian.PutUint32(b[16:20], uint32(s.alignAddress))
	binary.LittleEndian.PutUint16(b[20:22], s.relocs)
	b[22] = s.typ
	b[23] = s.flags
	return append(buf, b[:]...)
}

func appendReloc(buf []byte, r objReloc) []byte {
	var b [relocEntSize]byte
	binary.LittleEndian.PutUint32(b[0:4], uint32(r.baseValue))
	binary.LittleEndian.PutUint32(b[4:8], uint32(r.sectionOffset))
	binary.LittleEndian.PutUint16(b[8:10], r.targetSection)
	b[10] = byte(r.bytes)
	b[11] = byte(r.shift)
	return append(buf, b[:]...)
}

func appendLabel(buf []byte, l objLabel) []byte {
	var b [labelEntSize]byte
	binary.LittleEndian.PutUint32(b[0:4], uint32(l.nameOffs))
	binary.LittleEndian.PutUint32(b[4:8], uint32(l.value))
	binary.LittleEndian.PutUint32(b[8:12], uint32(l.flags))
	binary.LittleEndian.PutUint16(b[12:14], l.section)
	binary.LittleEndian.PutUint16(b[14:16], l.mapIndex)
	return append(buf, b[:]...)
}

func appendLateEval(buf []byte, e objLateEval) []byte {
	var b [lateEvalEntSize]byte
	binary.LittleEndian.PutUint32(b[0:4], uint32(e.labelOffs))
	binary.LittleEndian.PutUint32(b[4:8], uint32(e.expressionOffs))
	binary.LittleEndian.PutUint32(b[8:12], uint32(e.address))
	binary.LittleEndian.PutUint32(b[12:16], uint32(e.target))
	binary.LittleEndian.PutUint16(b[16:18], e.section)
	binary.LittleEndian.PutUint16(b[18:20], e.rept)
	binary.LittleEndian.PutUint16(b[20:22], e.scope)
	binary.LittleEndian.PutUint16(b[22:24], e.typ)
	return append(buf, b[:]...)
}

// importedObject is the fully-parsed contents of a read object file,
// prior to being merged into a live session.
type importedObject struct {
	sections   []objSection
	relocs     []objReloc
	labels     []objLabel
	lateEvals  []objLateEval
	pool       *stringPool
	binData    []byte
}

// readObjectFile validates and parses an object file's bytes. Any
// structural mismatch (bad magic, or a size that doesn't reconcile the
// header's counts against the file length) reports NotAnObjectFile.
func readObjectFile(data []byte) (*importedObject, error) {
	if len(data) < headerSize {
		return nil, asmerror{status: NotAnObjectFile, msg: "object file too short"}
	}
	if binary.LittleEndian.Uint16(data[0:2]) != objectMagic {
		return nil, asmerror{status: NotAnObjectFile, msg: "bad magic"}
	}
	numSections := int(binary.LittleEndian.Uint16(data[2:4]))
	numRelocs := int(binary.LittleEndian.Uint16(data[4:6]))
	numLabels := int(binary.LittleEndian.Uint16(data[6:8]))
	numLateEvals := int(binary.LittleEndian.Uint16(data[8:10]))
	numMapSyms := int(binary.LittleEndian.Uint16(data[10:12]))
	stringBytes := int(binary.LittleEndian.Uint32(data[12:16]))
	binBytes := int(binary.LittleEndian.Uint32(data[16:20]))

	want := headerSize +
		numSections*sectionEntSize +
		numRelocs*relocEntSize +
		numLabels*labelEntSize +
		numLateEvals*lateEvalEntSize +
		numMapSyms*mapSymEntSize +
		stringBytes + binBytes
	if want != len(data) {
		return nil, asmerror{status: NotAnObjectFile, msg: "size does not match header"}
	}

	off := headerSize
	obj := &importedObject{}

	for i := 0; i < numSections; i++ {
		b := data[off : off+sectionEntSize]
		obj.sections = append(obj.sections, objSection{
			nameOffs:     int32(binary.LittleEndian.Uint32(b[0:4])),
			expAppOffs:   int32(binary.LittleEndian.Uint32(b[4:8])),
			startAddress: int32(binary.LittleEndian.Uint32(b[8:12])),
			outputSize:   int32(binary.LittleEndian.Uint32(b[12:16])),
			alignAddress: int32(binary.LittleEndian.Uint32(b[16:20])),
			relocs:       binary.LittleEndian.Uint16(b[20:22]),
			typ:          b[22],
			flags:        b[23],
		})
		off += sectionEntSize
	}
	for i := 0; i < numRelocs; i++ {
		b := data[off : off+relocEntSize]
		obj.relocs = append(obj.relocs, objReloc{
			baseValue:     int32(binary.LittleEndian.Uint32(b[0:4])),
			sectionOffset: int32(binary.LittleEndian.Uint32(b[4:8])),
			targetSection: binary.LittleEndian.Uint16(b[8:10]),
			bytes:         int8(b[10]),
			shift:         int8(b[11]),
		})
		off += relocEntSize
	}
	for i := 0; i < numLabels; i++ {
		b := data[off : off+labelEntSize]
		obj.labels = append(obj.labels, objLabel{
			nameOffs: int32(binary.LittleEndian.Uint32(b[0:4])),
			value:    int32(binary.LittleEndian.Uint32(b[4:8])),
			flags:    int32(binary.LittleEndian.Uint32(b[8:12])),
			section:  binary.LittleEndian.Uint16(b[12:14]),
			mapIndex: binary.LittleEndian.Uint16(b[14:16]),
		})
		off += labelEntSize
	}
	for i := 0; i < numLateEvals; i++ {
		b := data[off : off+lateEvalEntSize]
		obj.lateEvals = append(obj.lateEvals, objLateEval{
			labelOffs:      int32(binary.LittleEndian.Uint32(b[0:4])),
			expressionOffs: int32(binary.LittleEndian.Uint32(b[4:8])),
			address:        int32(binary.LittleEndian.Uint32(b[8:12])),
			target:         int32(binary.LittleEndian.Uint32(b[12:16])),
			section:        binary.LittleEndian.Uint16(b[16:18]),
			rept:           binary.LittleEndian.Uint16(b[18:20]),
			scope:          binary.LittleEndian.Uint16(b[20:22]),
			typ:            binary.LittleEndian.Uint16(b[22:24]),
		})
		off += lateEvalEntSize
	}
	// map symbols are parsed only to advance the cursor correctly; this
	// port has no listing/map export yet to consume them (see directive.go's
	// pseudoEject/pseudoLst, which are accepted but produce no output).
	off += numMapSyms * mapSymEntSize

	obj.pool = &stringPool{data: data[off : off+stringBytes]}
	off += stringBytes
	obj.binData = data[off : off+binBytes]
	return obj, nil
}

// mergeImportedObject adds an imported object's sections and labels
// into a live session. fileIndex identifies this import for the
// purposes of the labelFileMask bits: labels with file index 0 (shared
// XDEF) merge by name into any existing reference; all others are
// scoped as externals of this one import.
func mergeImportedObject(sections *sectionManager, labels *labelTable, obj *importedObject, fileIndex int) error {
	remap := make([]int, len(obj.sections))
	binOff := 0
	for i, s := range obj.sections {
		name := obj.pool.at(s.nameOffs)
		dummy := s.flags&1 != 0
		merged := s.flags&4 != 0
		sec := &section{
			name:            name,
			appendName:      obj.pool.at(s.expAppOffs),
			typ:             sectionType(s.typ),
			dummy:           dummy,
			addressAssigned: s.flags&2 != 0,
			startAddress:    int(s.startAddress),
			align:           int(s.alignAddress),
			mergedInto:      -1,
		}
		if !dummy && !merged {
			size := int(s.outputSize)
			if binOff+size > len(obj.binData) {
				return asmerror{status: NotAnObjectFile, msg: "bin data shorter than section sizes"}
			}
			sec.data = append([]byte(nil), obj.binData[binOff:binOff+size]...)
			binOff += size
		}
		sec.cursor = sec.startAddress + sec.size()
		sections.sections = append(sections.sections, sec)
		remap[i] = len(sections.sections) - 1
	}

	remapSection := func(idx uint16) int {
		if int(idx) >= len(remap) {
			return -1
		}
		return remap[idx]
	}

	// Relocs are grouped contiguously by owning section, in section
	// order, with each section's wire entry recording how many of the
	// following entries are its own (mirroring how writeObjectFile lays
	// them out).
	relocCursor := 0
	for i, s := range obj.sections {
		target := remapSection(uint16(i))
		count := int(s.relocs)
		for j := 0; j < count && relocCursor < len(obj.relocs); j++ {
			r := obj.relocs[relocCursor]
			relocCursor++
			if target < 0 {
				continue
			}
			ts := remapSection(r.targetSection)
			if ts < 0 {
				continue
			}
			sections.sections[target].relocs = append(sections.sections[target].relocs, reloc{
				baseValue:     int(r.baseValue),
				sectionOffset: int(r.sectionOffset),
				targetSection: ts,
				bytes:         int(r.bytes),
				shift:         r.shift,
			})
		}
	}

	for _, l := range obj.labels {
		name := obj.pool.at(l.nameOffs)
		fileRef := int(l.flags) & labelFileMask
		local := &label{name: name, sectionID: -1}
		if sec := remapSection(l.section); sec >= 0 {
			local.sectionID = sec
		}
		local.value = int(l.value)
		local.flags.evaluated = l.flags&labelFlagEval != 0
		local.flags.pcRelative = l.flags&labelFlagAddr != 0
		local.flags.constant = l.flags&labelFlagConst != 0

		if fileRef == 0 {
			if existing, ok := labels.labels[name]; ok && existing.flags.reference {
				existing.value, existing.sectionID = local.value, local.sectionID
				existing.flags.evaluated = local.flags.evaluated
				existing.flags.reference = false
				continue
			}
			labels.labels[name] = local
		} else {
			labels.labels[externalLabelKey(fileIndex, name)] = local
		}
	}
	return nil
}

// externalLabelKey namespaces a non-shared imported label so it never
// collides with a same-named label from a different import file.
func externalLabelKey(fileIndex int, name string) string {
	return "$ext" + itoa(fileIndex) + "$" + name
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		b[i] = '-'
	}
	return string(b[i:])
}
