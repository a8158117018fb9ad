package asm

import "testing"

func TestObjectRoundTripPreservesSectionBytes(t *testing.T) {
	mgr := newSectionManager()
	sec := mgr.setFixedSection("code", 0x2000)
	sec.typ = sectCode
	sec.addBin([]byte{0xa9, 0x01, 0x60})

	labels := newLabelTable(mgr)
	env := &tableEnv{labelTable: labels, pcOK: true, scopeStartOK: true, scopeEndOK: true}
	labels.addressLabel("start", 0x2000, -1, false, env)

	data := writeObjectFile(mgr, labels)
	obj, err := readObjectFile(data)
	if err != nil {
		t.Fatalf("readObjectFile: %v", err)
	}
	if len(obj.sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(obj.sections))
	}
	if obj.pool.at(obj.sections[0].nameOffs) != "code" {
		t.Fatalf("section name = %q", obj.pool.at(obj.sections[0].nameOffs))
	}
	if string(obj.binData) != "\xa9\x01\x60" {
		t.Fatalf("bindata = %x", obj.binData)
	}

	var foundStart bool
	for _, l := range obj.labels {
		if obj.pool.at(l.nameOffs) == "start" {
			foundStart = true
			if l.value != 0x2000 {
				t.Errorf("start label value = %#x, want 0x2000", l.value)
			}
		}
	}
	if !foundStart {
		t.Fatal("expected a \"start\" label in the object file")
	}
}

func TestReadObjectFileRejectsBadMagic(t *testing.T) {
	data := make([]byte, headerSize)
	_, err := readObjectFile(data)
	ae, ok := err.(asmerror)
	if !ok || ae.status != NotAnObjectFile {
		t.Fatalf("expected NotAnObjectFile, got %v", err)
	}
}

func TestReadObjectFileRejectsSizeMismatch(t *testing.T) {
	mgr := newSectionManager()
	mgr.setFixedSection("s", 0)
	labels := newLabelTable(mgr)
	data := writeObjectFile(mgr, labels)
	truncated := data[:len(data)-1]
	_, err := readObjectFile(truncated)
	ae, ok := err.(asmerror)
	if !ok || ae.status != NotAnObjectFile {
		t.Fatalf("expected NotAnObjectFile on truncated file, got %v", err)
	}
}

func TestMergeImportedObjectResolvesSharedXref(t *testing.T) {
	// File A defines and exports "foo".
	mgrA := newSectionManager()
	secA := mgrA.setFixedSection("code", 0x1234)
	secA.typ = sectCode
	labelsA := newLabelTable(mgrA)
	envA := &tableEnv{labelTable: labelsA, pcOK: true, scopeStartOK: true, scopeEndOK: true}
	tree := parseExpr(t, "4660", DialectSane) // 0x1234
	labelsA.assignLabel("foo", tree, false, envA, newFstring(0, 1, ""), newFstring(0, 1, ""))
	data := writeObjectFile(mgrA, labelsA)

	// File B has an XREF placeholder for "foo".
	mgrB := newSectionManager()
	labelsB := newLabelTable(mgrB)
	ref := labelsB.define("foo")
	ref.flags.reference = true

	obj, err := readObjectFile(data)
	if err != nil {
		t.Fatalf("readObjectFile: %v", err)
	}
	if err := mergeImportedObject(mgrB, labelsB, obj, 0); err != nil {
		t.Fatalf("mergeImportedObject: %v", err)
	}
	got := labelsB.get("foo")
	if got == nil || !got.flags.evaluated || got.value != 0x1234 || got.flags.reference {
		t.Fatalf("foo after merge = %+v", got)
	}
}
