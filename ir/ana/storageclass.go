package ana

import (
	"github.com/simple555a/libfirm/debug"
	"github.com/simple555a/libfirm/ir"
)

// StorageClassClass is the base storage class a pointer root resolves to:
// one of {pointer, localvar, globalvar, tls, globaladdr, malloced}. Named
// after libfirm's ir_storage_class_class_t.
type StorageClassClass uint8

const (
	ClassPointer StorageClassClass = iota
	ClassLocalVar
	ClassGlobalVar
	ClassTLS
	ClassGlobalAddr
	ClassMalloced
)

func (c StorageClassClass) String() string {
	switch c {
	case ClassPointer:
		return "pointer"
	case ClassLocalVar:
		return "localvar"
	case ClassGlobalVar:
		return "globalvar"
	case ClassTLS:
		return "tls"
	case ClassGlobalAddr:
		return "globaladdr"
	case ClassMalloced:
		return "malloced"
	default:
		return "unknown"
	}
}

// Modifier bits, OR-ed onto a StorageClassClass to make a StorageClass.
type Modifier uint8

const (
	ModNone Modifier = 0
	// ModNotTaken means the entity's address was never taken.
	ModNotTaken Modifier = 1 << iota
	// ModArgument means the node is a formal-parameter projection.
	ModArgument
)

// StorageClass is a base class OR-ed with zero or more modifier bits.
type StorageClass struct {
	Class     StorageClassClass
	Modifiers Modifier
}

func (sc StorageClass) Has(m Modifier) bool { return sc.Modifiers&m != 0 }

// isMallocResult matches the Proj(Proj(Call)) pattern: node is a projection
// of a projection of a call whose callee carries the malloc property.
func isMallocResult(n *ir.Node) bool {
	if n.Op != ir.OpProj {
		return false
	}
	pred := n.Arg(0)
	if pred.Op != ir.OpProj {
		return false
	}
	call := pred.Arg(0)
	if call.Op != ir.OpCall {
		return false
	}
	return call.CalleeEntity != nil && call.CalleeEntity.HasProperty(ir.PropMalloc)
}

// isArgProj reports whether n is a formal-parameter projection: a Proj
// whose direct predecessor is the owning graph's Args node.
func isArgProj(n *ir.Node) bool {
	return n.Op == ir.OpProj && n.Arg(0) == n.Graph.Args
}

// ClassifyPointer classifies a base address into a storage class plus
// modifier bits. ent is the entity selected through b, if any — used only
// to check the localvar nottaken modifier; it has no bearing on any other
// rule.
//
// Rules are evaluated in order; the first match wins. Panics if b has no
// owning graph, the one invariant violation this rule ladder can hit.
func ClassifyPointer(b *ir.Node, ent *ir.Entity) StorageClass {
	g := b.Graph
	if g == nil {
		debug.Fatalf(b, "classify_pointer: node has no owning graph")
	}

	switch {
	case b.Op == ir.OpAddress:
		entity := b.Entity
		class := ClassGlobalVar
		if entity.Owner == ir.TLSSegment {
			class = ClassTLS
		}
		mod := ModNone
		if !entity.Usage.Implies(ir.UsageAddressTaken) {
			mod = ModNotTaken
		}
		return StorageClass{Class: class, Modifiers: mod}

	case b == g.Frame:
		mod := ModNone
		if ent != nil && !ent.Usage.Implies(ir.UsageAddressTaken) {
			mod = ModNotTaken
		}
		return StorageClass{Class: ClassLocalVar, Modifiers: mod}

	case isMallocResult(b):
		return StorageClass{Class: ClassMalloced}

	case b.Op == ir.OpConst:
		return StorageClass{Class: ClassGlobalAddr}

	case isArgProj(b):
		return StorageClass{Class: ClassPointer, Modifiers: ModArgument}

	default:
		return StorageClass{Class: ClassPointer}
	}
}
