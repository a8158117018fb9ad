package asm

import "testing"

func TestStructMemberOffsets(t *testing.T) {
	tbl := newStructTable()
	s, err := tbl.define("Point")
	if err != nil {
		t.Fatalf("define failed: %v", err)
	}
	s.addMember("x", memberByte)
	s.addMember("y", memberWord)
	if s.size != 3 {
		t.Fatalf("size = %d, want 3", s.size)
	}
	v, ok, err := tbl.evalStruct("Point.y")
	if err != nil || !ok || v != 1 {
		t.Fatalf("Point.y = %d,%v,%v want 1,true,nil", v, ok, err)
	}
}

func TestStructNestedDottedPath(t *testing.T) {
	tbl := newStructTable()
	inner, _ := tbl.define("Inner")
	inner.addMember("field", memberByte)
	outer, _ := tbl.define("Outer")
	outer.addStructMember("in", inner)

	v, ok, err := tbl.evalStruct("Outer.in.field")
	if err != nil || !ok || v != 0 {
		t.Fatalf("Outer.in.field = %d,%v,%v want 0,true,nil", v, ok, err)
	}
}

func TestStructRootNotFoundFallsThrough(t *testing.T) {
	tbl := newStructTable()
	_, ok, err := tbl.evalStruct("NotAStruct.field")
	if ok || err != nil {
		t.Fatalf("expected ok=false, err=nil for a non-struct root, got %v %v", ok, err)
	}
}

func TestStructAlreadyDefinedIsError(t *testing.T) {
	tbl := newStructTable()
	tbl.define("Dup")
	_, err := tbl.define("Dup")
	ae, ok := err.(asmerror)
	if !ok || ae.status != StructAlreadyDefined {
		t.Fatalf("expected StructAlreadyDefined, got %v", err)
	}
}

func TestPoolReserveHighAddressFirst(t *testing.T) {
	pool := newLabelPool("zp", []poolRange{{start: 0x80, end: 0x90}})
	addr, err := pool.reserve("a", 2)
	if err != nil || addr != 0x8e {
		t.Fatalf("reserve = %d,%v want 0x8e,nil", addr, err)
	}
	addr2, err := pool.reserve("b", 4)
	if err != nil || addr2 != 0x8a {
		t.Fatalf("reserve2 = %d,%v want 0x8a,nil", addr2, err)
	}
}

func TestPoolReleaseThenReserveReusesSpace(t *testing.T) {
	pool := newLabelPool("zp", []poolRange{{start: 0, end: 4}})
	before := map[int]byte{}
	addr, _ := pool.reserve("a", 2)
	pool.release(addr)
	for k, v := range pool.bitmap {
		before[k] = v
	}
	if len(before) != 0 {
		t.Fatalf("bitmap after release = %v, want empty", before)
	}
	if _, ok := pool.labels["a"]; ok {
		t.Fatal("label should be removed from the pool after release")
	}
	if again, err := pool.reserve("a", 2); err != nil || again != addr {
		t.Errorf("reserve after release = %#x, %v; want %#x, nil", again, err, addr)
	}
}

func TestPoolOutOfSpaceIsError(t *testing.T) {
	pool := newLabelPool("zp", []poolRange{{start: 0, end: 2}})
	if _, err := pool.reserve("a", 4); err == nil {
		t.Fatal("expected OutOfLabelsInPool")
	}
}

func TestPoolLabelAlreadyDefinedIsError(t *testing.T) {
	pool := newLabelPool("zp", []poolRange{{start: 0, end: 4}})
	pool.reserve("a", 1)
	if _, err := pool.reserve("a", 1); err == nil {
		t.Fatal("expected PoolLabelAlreadyDefined")
	}
}
