package asm

import "testing"

func TestSetFixedSectionReusesExisting(t *testing.T) {
	m := newSectionManager()
	a := m.setFixedSection("code", 0x8000)
	m.endSection()
	b := m.setFixedSection("code", 0x9000)
	if a != b {
		t.Fatal("set_section with an existing name should reuse the section")
	}
	if b.startAddress != 0x8000 {
		t.Errorf("reused section start = 0x%x, want 0x8000 (address ignored on reuse)", b.startAddress)
	}
}

func TestDummySectionAdvancesCursorOnly(t *testing.T) {
	m := newSectionManager()
	m.setFixedSection("code", 0x1000)
	m.dummySection(0x2000)
	d := m.current()
	d.addByte(1)
	d.addWord(2)
	if len(d.data) != 0 {
		t.Errorf("dummy section should not store bytes, got %d", len(d.data))
	}
	if d.cursor != 0x2003 {
		t.Errorf("dummy cursor = 0x%x, want 0x2003", d.cursor)
	}
}

func TestEndSectionPopsStack(t *testing.T) {
	m := newSectionManager()
	m.setFixedSection("a", 0)
	m.setFixedSection("b", 0x100)
	if m.current().name != "b" {
		t.Fatal("expected b to be current")
	}
	if !m.endSection() {
		t.Fatal("endSection should succeed with two sections on the stack")
	}
	if m.current().name != "a" {
		t.Fatal("expected a to be current after end_section")
	}
	if m.endSection() {
		t.Fatal("endSection with only one section on the stack should fail")
	}
}

func TestAppendMergesAndRelocates(t *testing.T) {
	m := newSectionManager()
	src := m.setRelativeSection("strings", sectData, 1)
	src.addByte(0xAA)
	src.addByte(0xBB)
	src.relocs = append(src.relocs, reloc{sectionOffset: 0, targetSection: 0, bytes: 2})
	m.endSection()

	dst := m.setFixedSection("code", 0x1000)
	dst.addByte(0xEA)
	m.append(src, dst)

	if len(dst.data) != 3 || dst.data[1] != 0xAA || dst.data[2] != 0xBB {
		t.Fatalf("dst.data = %v, want [0xEA 0xAA 0xBB]", dst.data)
	}
	if !src.isMerged() || src.mergedOffset != 1 {
		t.Errorf("src merge state = merged:%v offset:%d, want true/1", src.isMerged(), src.mergedOffset)
	}
	if src.startAddress != 0x1001 {
		t.Errorf("src.startAddress = 0x%x, want 0x1001", src.startAddress)
	}
	if len(dst.relocs) != 1 || dst.relocs[0].sectionOffset != 1 {
		t.Errorf("reloc offset not rebased: %+v", dst.relocs)
	}
}

// TestResolveRelocsPatchesFinalAddress exercises the reloc-resolution
// step append doesn't perform on its own (TestAppendMergesAndRelocates
// above only rebases): once the target section has a startAddress,
// resolveRelocs must write base+startAddress into the owning buffer.
func TestResolveRelocsPatchesFinalAddress(t *testing.T) {
	m := newSectionManager()
	src := m.setRelativeSection("strings", sectData, 1)
	src.addByte(0xAA)
	src.addByte(0xBB)
	src.relocs = append(src.relocs, reloc{baseValue: 1, sectionOffset: 0, targetSection: 0, bytes: 2})
	m.endSection()

	dst := m.setFixedSection("code", 0x1000)
	dst.addByte(0xEA)
	m.append(src, dst)
	m.resolveRelocs()

	want := []byte{0xEA, 0x02, 0x10}
	if len(dst.data) != len(want) {
		t.Fatalf("dst.data = %v, want %v", dst.data, want)
	}
	for i := range want {
		if dst.data[i] != want[i] {
			t.Errorf("dst.data[%d] = %#x, want %#x", i, dst.data[i], want[i])
		}
	}
	if len(dst.relocs) != 0 {
		t.Errorf("resolved reloc should be dropped, got %+v", dst.relocs)
	}
}

func TestLinkSectionsRequiresFixedNonDummyCurrent(t *testing.T) {
	m := newSectionManager()
	m.setRelativeSection("rel", sectCode, 1)
	m.endSection()
	m.dummySection(0x1000)
	if err := m.linkSections(""); err == nil {
		t.Error("link_sections from a dummy section should fail")
	}
}

func TestLinkSectionsAppendsMatchingByName(t *testing.T) {
	m := newSectionManager()
	a := m.setRelativeSection("data", sectData, 1)
	a.addByte(1)
	m.endSection()
	b := m.setRelativeSection("other", sectData, 1)
	b.addByte(2)
	m.endSection()

	m.setFixedSection("code", 0x1000)
	if err := m.linkSections("data"); err != nil {
		t.Fatalf("link_sections failed: %v", err)
	}
	if !a.isMerged() {
		t.Error("section named data should have merged")
	}
	if b.isMerged() {
		t.Error("section named other should not have merged")
	}
}

func TestLinkZeroPagePacksDescendingWithoutFixedAnchor(t *testing.T) {
	m := newSectionManager()
	a := m.setRelativeSection("zp1", sectZeroPage, 1)
	a.addByte(0)
	a.addByte(0)
	m.endSection()
	b := m.setRelativeSection("zp2", sectZeroPage, 1)
	b.addByte(0)
	m.endSection()

	if err := m.linkZeroPage(); err != nil {
		t.Fatalf("link_zero_page failed: %v", err)
	}
	if a.startAddress != 254 {
		t.Errorf("zp1 start = %d, want 254", a.startAddress)
	}
	if b.startAddress != 253 {
		t.Errorf("zp2 start = %d, want 253", b.startAddress)
	}
}

func TestLinkZeroPageOverflowIsError(t *testing.T) {
	m := newSectionManager()
	s := m.setRelativeSection("huge", sectZeroPage, 1)
	for i := 0; i < 300; i++ {
		s.addByte(0)
	}
	m.endSection()
	if err := m.linkZeroPage(); err == nil {
		t.Error("expected an error when zero-page usage exceeds 256 bytes")
	}
}
