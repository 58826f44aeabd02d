package ana

import (
	"testing"

	"github.com/simple555a/libfirm/ir"
)

func TestPeelOffsetConstants(t *testing.T) {
	g := ir.NewGraph("f", ir.NewClass("f.frame", 0, nil))
	base := g.ArgProj(ir.ModeRef, 0)

	addr := g.NewAdd(ir.ModeRef, base, g.NewConst(ir.ModeInt64, ir.NewLongTarval(4)))
	addr = g.NewAdd(ir.ModeRef, g.NewConst(ir.ModeInt64, ir.NewLongTarval(8)), addr)

	n := PeelOffset(addr)
	if n.Base != base {
		t.Errorf("expected base %v, got %v", base, n.Base)
	}
	if n.ConstOffset != 12 {
		t.Errorf("expected const offset 12, got %d", n.ConstOffset)
	}
	if n.SymOffset != nil || n.SymOverflow {
		t.Errorf("did not expect any symbolic offset")
	}
}

func TestPeelOffsetSymbolic(t *testing.T) {
	g := ir.NewGraph("f", ir.NewClass("f.frame", 0, nil))
	base := g.ArgProj(ir.ModeRef, 0)
	i := g.ArgProj(ir.ModeInt64, 1)

	addr := g.NewAdd(ir.ModeRef, base, i)
	n := PeelOffset(addr)
	if n.Base != base || n.SymOffset != i || n.SymOverflow {
		t.Errorf("unexpected normalization: base=%v sym=%v overflow=%v", n.Base, n.SymOffset, n.SymOverflow)
	}
}

func TestPeelOffsetSymbolicOverflow(t *testing.T) {
	g := ir.NewGraph("f", ir.NewClass("f.frame", 0, nil))
	base := g.ArgProj(ir.ModeRef, 0)
	i := g.ArgProj(ir.ModeInt64, 1)
	j := g.ArgProj(ir.ModeInt64, 2)

	addr := g.NewAdd(ir.ModeRef, base, i)
	addr = g.NewAdd(ir.ModeRef, addr, j)

	n := PeelOffset(addr)
	if !n.SymOverflow {
		t.Errorf("expected symbolic overflow once a second symbolic addend appears")
	}
}

func TestPeelOffsetTieBreakBothReference(t *testing.T) {
	g := ir.NewGraph("f", ir.NewClass("f.frame", 0, nil))
	left := g.ArgProj(ir.ModeRef, 0)
	right := g.ArgProj(ir.ModeRef, 1)

	addr := g.NewAdd(ir.ModeRef, left, right)
	n := PeelOffset(addr)
	if n.Base != left {
		t.Errorf("expected left operand to win the reference/reference tie-break, got %v", n.Base)
	}
	if n.SymOffset != right {
		t.Errorf("expected right operand folded in as the symbolic addend, got %v", n.SymOffset)
	}
}

func TestPeelFieldMemberChain(t *testing.T) {
	g := ir.NewGraph("f", ir.NewClass("f.frame", 0, nil))
	base := g.ArgProj(ir.ModeRef, 0)

	outerType := ir.NewStruct("Outer", 16)
	inner := ir.NewEntity("inner", ir.NewStruct("Inner", 8))
	outerType.AddMember(inner)
	innerType := inner.Type
	field := ir.NewEntity("field", ir.NewPrimitive("int32", 4, ir.ModeInt32))
	innerType.AddMember(field)

	m1 := g.NewMember(base, inner)
	idx := g.NewConst(ir.ModeInt64, ir.NewLongTarval(0))
	sel := g.NewSel(m1, idx)
	m2 := g.NewMember(sel, field)

	root, ent := PeelField(m2)
	if root != base {
		t.Errorf("expected root %v, got %v", base, root)
	}
	if ent != field {
		t.Errorf("expected selected entity %v, got %v", field, ent)
	}
}

func TestPeelFieldNoMember(t *testing.T) {
	g := ir.NewGraph("f", ir.NewClass("f.frame", 0, nil))
	base := g.ArgProj(ir.ModeRef, 0)

	root, ent := PeelField(base)
	if root != base || ent != nil {
		t.Errorf("expected (base, nil), got (%v, %v)", root, ent)
	}
}
