package ana

import "github.com/simple555a/libfirm/ir"

// IsPartlyVolatile reports whether a load/store through ptr may touch
// volatile-qualified storage. The root entity is found by peeling
// Address/Member nodes and the reference-typed
// side of Add/Sub (Sel is peeled too, since array indexing introduces no
// new entity); if no entity can be found at all, the answer conservatively
// defaults to true.
func IsPartlyVolatile(ptr *ir.Node) bool {
	n := ptr
	var chain []*ir.Entity

	for {
		switch n.Op {
		case ir.OpAddress:
			chain = append(chain, n.Entity)
			return chainTouchesVolatile(chain)

		case ir.OpMember:
			chain = append(chain, n.Entity)
			n = n.Arg(0)

		case ir.OpSel:
			n = n.Arg(0)

		case ir.OpAdd, ir.OpSub:
			left, right := n.Arg(0), n.Arg(1)
			switch {
			case left.Mode.IsReference():
				n = left
			case right.Mode.IsReference():
				n = right
			default:
				return true
			}

		default:
			return true
		}
	}
}

// chainTouchesVolatile checks every entity passed through on the way from
// ptr down to its root (the selections in between are "enclosing
// entities"), each transitively through its own compound members.
func chainTouchesVolatile(chain []*ir.Entity) bool {
	for _, e := range chain {
		if e != nil && entityTransitivelyVolatile(e) {
			return true
		}
	}
	return false
}

func entityTransitivelyVolatile(e *ir.Entity) bool {
	if e.Volatile {
		return true
	}
	if e.Type != nil && e.Type.IsCompound() {
		for _, m := range e.Type.Members {
			if entityTransitivelyVolatile(m) {
				return true
			}
		}
	}
	return false
}
