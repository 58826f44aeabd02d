package ana

import "github.com/simple555a/libfirm/ir"

// NormalizedAddress is the (base, constant offset, at-most-one symbolic
// offset) tuple that offset peeling produces.
type NormalizedAddress struct {
	Base          *ir.Node
	ConstOffset   int64
	SymOffset     *ir.Node // nil if none was seen
	SymOverflow   bool     // true once a second symbolic addend was seen
}

// PeelOffset repeatedly rewrites addr while it is an Add, splitting it into
// a base pointer, an accumulated constant offset and at most one symbolic
// addend. Only one symbolic addend can ever be tracked per side; a second
// one sets SymOverflow and peeling continues regardless — a deliberately
// preserved, slightly surprising behaviour (see DESIGN.md).
func PeelOffset(addr *ir.Node) NormalizedAddress {
	var constOffset int64
	var symOffset *ir.Node
	var overflow bool

	for addr.Op == ir.OpAdd {
		left, right := addr.Arg(0), addr.Arg(1)

		var ptrPart, intPart *ir.Node
		if left.Mode.IsReference() {
			ptrPart, intPart = left, right
		} else {
			ptrPart, intPart = right, left
		}

		if intPart.Op == ir.OpConst && intPart.Const.FitsLong {
			constOffset += intPart.Const.Value
		} else if symOffset == nil {
			symOffset = intPart
		} else {
			// A second symbolic addend on this side: give up comparing
			// offsets for it, but keep peeling constants off further adds.
			overflow = true
		}

		addr = ptrPart
	}

	return NormalizedAddress{
		Base:        addr,
		ConstOffset: constOffset,
		SymOffset:   symOffset,
		SymOverflow: overflow,
	}
}

// PeelField repeatedly unwraps Sel (discarding the index) and Member
// (remembering the last field entity selected), terminating at the first
// node that is neither. selectedEntity is nil if no Member was traversed.
func PeelField(addr *ir.Node) (base *ir.Node, selectedEntity *ir.Entity) {
	var member *ir.Node
loop:
	for {
		switch addr.Op {
		case ir.OpSel:
			addr = addr.Arg(0)
		case ir.OpMember:
			member = addr
			addr = addr.Arg(0)
		default:
			break loop
		}
	}
	if member != nil {
		selectedEntity = member.Entity
	}
	return addr, selectedEntity
}
