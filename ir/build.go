package ir

// build.go is this module's stand-in for cmd/compile/internal/ssa's test
// DSL (Fun/Bloc/Valu in its test harness): a small set of fluent
// constructors used to hand-assemble graphs in tests, since real IR
// construction is kept out of this core's scope and no external IR module
// exists to import one from.

// NewConst creates a constant node carrying tv.
func (g *Graph) NewConst(mode Mode, tv Tarval) *Node {
	n := g.newNode(OpConst, mode)
	n.Const = tv
	return g.link(n)
}

// NewAdd/NewSub create binary arithmetic nodes.
func (g *Graph) NewAdd(mode Mode, left, right *Node) *Node {
	n := g.newNode(OpAdd, mode)
	n.Args = []*Node{left, right}
	return g.link(n)
}

func (g *Graph) NewSub(mode Mode, left, right *Node) *Node {
	n := g.newNode(OpSub, mode)
	n.Args = []*Node{left, right}
	return g.link(n)
}

// NewAddress creates an address-literal node for ent.
func (g *Graph) NewAddress(ent *Entity) *Node {
	n := g.newNode(OpAddress, ModeRef)
	n.Entity = ent
	return g.link(n)
}

// NewMember creates a field-projection node selecting ent through ptr.
func (g *Graph) NewMember(ptr *Node, ent *Entity) *Node {
	n := g.newNode(OpMember, ModeRef)
	n.Args = []*Node{ptr}
	n.Entity = ent
	return g.link(n)
}

// NewSel creates an array-index projection node; the index value is kept
// only for graph well-formedness, never inspected by any rule.
func (g *Graph) NewSel(ptr, index *Node) *Node {
	n := g.newNode(OpSel, ModeRef)
	n.Args = []*Node{ptr, index}
	return g.link(n)
}

// NewLoad creates a load of the given mode through ptr, depending on mem.
func (g *Graph) NewLoad(mode Mode, ptr, mem *Node) *Node {
	n := g.newNode(OpLoad, mode)
	n.Args = []*Node{ptr, mem}
	return g.link(n)
}

// NewStore creates a store of value through ptr, depending on mem.
func (g *Graph) NewStore(ptr, value, mem *Node) *Node {
	n := g.newNode(OpStore, ModeMemory)
	n.Args = []*Node{ptr, value, mem}
	return g.link(n)
}

// NewCopyB creates a CopyB of the given declared type from src to dst.
func (g *Graph) NewCopyB(dst, src, mem *Node, copyType *Type) *Node {
	n := g.newNode(OpCopyB, ModeMemory)
	n.Args = []*Node{dst, src, mem}
	n.CopyType = copyType
	return g.link(n)
}

// NewCall creates a call node. callee is the node computing the call
// target (typically an Address of a method entity, or an arbitrary value
// for an indirect call); calleeEntity may be nil when the target isn't
// statically known.
func (g *Graph) NewCall(callee *Node, calleeEntity *Entity, mem *Node, args ...*Node) *Node {
	n := g.newNode(OpCall, ModeMemory)
	n.Args = append([]*Node{callee, mem}, args...)
	n.CalleeEntity = calleeEntity
	if calleeEntity != nil {
		n.CallType = calleeEntity.Type
	}
	return g.link(n)
}

// NewProj creates a projection of pred at index idx.
func (g *Graph) NewProj(mode Mode, pred *Node, idx int) *Node {
	n := g.newNode(OpProj, mode)
	n.Args = []*Node{pred}
	n.Index = idx
	return g.link(n)
}

// NewTuple creates a tuple bundling inputs together.
func (g *Graph) NewTuple(inputs ...*Node) *Node {
	n := g.newNode(OpTuple, Mode{})
	n.Args = inputs
	return g.link(n)
}

// NewBuiltin creates a builtin call of the given kind over operands.
func (g *Graph) NewBuiltin(kind BuiltinKind, operands ...*Node) *Node {
	n := g.newNode(OpBuiltin, Mode{})
	n.Args = operands
	n.Builtin = kind
	return g.link(n)
}

// NewId creates an SSA identity/copy of pred.
func (g *Graph) NewId(pred *Node) *Node {
	n := g.newNode(OpId, pred.Mode)
	n.Args = []*Node{pred}
	return g.link(n)
}

// NewOther creates a generic node of an opcode this core does not
// special-case, used in tests to stand in for "some other real opcode".
func (g *Graph) NewOther(mode Mode, args ...*Node) *Node {
	n := g.newNode(OpOther, mode)
	n.Args = args
	return g.link(n)
}

// ArgProj returns the formal-parameter projection for parameter index idx,
// i.e. Proj(Args, idx) — the canonical shape the classifier's
// argument-projection rule matches.
func (g *Graph) ArgProj(mode Mode, idx int) *Node {
	return g.NewProj(mode, g.Args, idx)
}
