package ana

import (
	"github.com/simple555a/libfirm/debug"
	"github.com/simple555a/libfirm/ir"
)

// staticLinkArgIndex is the formal-parameter index this core assumes the
// static-link (enclosing-frame pointer) argument occupies on a nested
// method's graph — a convention the external IR is assumed to follow
// consistently, not something this core can discover on its own.
const staticLinkArgIndex = 0

// AssureGraphEntityUsage computes g's per-graph entity-usage pass if its
// consistency bit is clear, and is a no-op otherwise.
func AssureGraphEntityUsage(g *ir.Graph) {
	if g.HasConsistentEntityUsage() {
		return
	}
	computeGraphEntityUsage(g)
	g.MarkEntityUsageConsistent()
	debug.Channel(debug.ChannelMemory).Debugw("graph entity usage computed", "graph", g.Name)
}

func computeGraphEntityUsage(g *ir.Graph) {
	release := g.ReserveVisited()
	defer release()

	if g.FrameType == nil {
		return
	}

	for _, member := range g.FrameType.Members {
		if member.IsMethod() {
			continue
		}
		if member.IsHiddenUser() {
			member.Usage = ir.Combine(member.Usage, ir.UsageUnknown)
		}
	}

	for _, succ := range g.Outs(g.Frame) {
		if succ.Op != ir.OpMember || succ.Entity == nil || succ.Entity.IsMethod() {
			continue
		}
		visitUsage(succ, succ.Entity)
	}

	for _, member := range g.FrameType.Members {
		if member.IsMethod() {
			walkStaticLink(g.FrameType, member)
		}
	}
}

// walkStaticLink inspects a nested method's static-link formal parameter:
// any Member reached through it whose owner is the outer frame type is an
// outer-frame access, walked with the same successor classifier.
func walkStaticLink(outerFrameType *ir.Type, method *ir.Entity) {
	inner := method.Graph
	if inner == nil {
		return
	}
	link := findArgProj(inner, staticLinkArgIndex)
	if link == nil {
		return
	}

	release := inner.ReserveVisited()
	defer release()

	for _, succ := range inner.Outs(link) {
		if succ.Op != ir.OpMember || succ.Entity == nil {
			continue
		}
		if succ.Entity.Owner != outerFrameType {
			continue
		}
		visitUsage(succ, succ.Entity)
	}
}

func findArgProj(g *ir.Graph, idx int) *ir.Node {
	for _, succ := range g.Outs(g.Args) {
		if succ.Op == ir.OpProj && succ.Index == idx {
			return succ
		}
	}
	return nil
}

// visitUsage marks n visited in g's current visited reservation (breaking
// Id-node cycles) and applies the successor classifier to each of n's
// out-neighbours, accumulating usage bits into ent.
func visitUsage(n *ir.Node, ent *ir.Entity) {
	g := n.Graph
	if g.VisitedElseMark(n) {
		return
	}
	for _, succ := range g.Outs(n) {
		applyUsageSuccessor(n, succ, ent)
	}
}

// applyUsageSuccessor is the successor-classifier table: it decides what
// using n as succ's operand implies about ent's usage.
func applyUsageSuccessor(n, succ *ir.Node, ent *ir.Entity) {
	switch succ.Op {
	case ir.OpLoad:
		ent.Usage = ir.Combine(ent.Usage, ir.UsageRead)
		if !isCompatibleMode(succ.Mode, ent.Type.Mode) {
			ent.Usage = ir.Combine(ent.Usage, ir.UsageReinterpretCast)
		}

	case ir.OpStore:
		switch n {
		case succ.Arg(1): // value input: the entity has escaped into memory
			ent.Usage = ir.Combine(ent.Usage, ir.UsageUnknown)
		case succ.Arg(0): // address input
			ent.Usage = ir.Combine(ent.Usage, ir.UsageWrite)
			if !isCompatibleMode(succ.Arg(1).Mode, ent.Type.Mode) {
				ent.Usage = ir.Combine(ent.Usage, ir.UsageReinterpretCast)
			}
		}

	case ir.OpCopyB:
		switch n {
		case succ.Arg(0):
			ent.Usage = ir.Combine(ent.Usage, ir.UsageWrite)
		case succ.Arg(1):
			ent.Usage = ir.Combine(ent.Usage, ir.UsageRead)
		}
		if succ.CopyType != ent.Type {
			ent.Usage = ir.Combine(ent.Usage, ir.UsageReinterpretCast)
		}

	case ir.OpSel, ir.OpAdd, ir.OpSub, ir.OpId:
		visitUsage(succ, ent)

	case ir.OpMember:
		member := succ.Entity
		if member.Owner.IsUnion() {
			ent.Usage = ir.Combine(ent.Usage, ir.UsageUnknown)
		} else {
			visitUsage(succ, member)
		}

	case ir.OpCall:
		if n == succ.Arg(0) {
			ent.Usage = ir.Combine(ent.Usage, ir.UsageRead)
		} else {
			ent.Usage = ir.Combine(ent.Usage, ir.UsageUnknown)
		}

	case ir.OpTuple:
		for i, in := range succ.Args {
			if in != n {
				continue
			}
			if proj := findTupleProj(succ, i); proj != nil {
				visitUsage(proj, ent)
			}
		}

	case ir.OpBuiltin:
		if succ.Builtin != ir.BuiltinMayAlias {
			ent.Usage = ir.Combine(ent.Usage, ir.UsageUnknown)
		}

	default:
		ent.Usage = ir.Combine(ent.Usage, ir.UsageUnknown)
	}
}

func findTupleProj(tuple *ir.Node, idx int) *ir.Node {
	for _, succ := range tuple.Graph.Outs(tuple) {
		if succ.Op == ir.OpProj && succ.Index == idx {
			return succ
		}
	}
	return nil
}

// isCompatibleMode is the "hidden cast" test: access and natural agree
// outright, or merely differ in twos-complement signedness at the same
// width.
func isCompatibleMode(access, natural ir.Mode) bool {
	if access == natural {
		return true
	}
	return access.SizeBits == natural.SizeBits &&
		access.Arithmetic == ir.ArithmeticTwosComplement &&
		natural.Arithmetic == ir.ArithmeticTwosComplement
}

// AssureProgramGlobalsEntityUsage computes the program-wide entity-usage
// pass if it hasn't been computed yet; idempotent.
func AssureProgramGlobalsEntityUsage(p *ir.Program) {
	if p.GlobalUsageState == ir.UsageComputed {
		return
	}
	computeProgramGlobalsUsage(p)
	p.GlobalUsageState = ir.UsageComputed
	debug.Channel(debug.ChannelMemory).Debugw("program globals usage computed", "graphs", len(p.Graphs), "segments", len(p.Segments))
}

// ProgramGlobalsUsageState returns p's current globals-usage state.
func ProgramGlobalsUsageState(p *ir.Program) ir.GlobalUsageState {
	return p.GlobalUsageState
}

func computeProgramGlobalsUsage(p *ir.Program) {
	for _, seg := range p.Segments {
		for _, member := range seg.Members {
			if member.IsExternallyVisible() {
				member.Usage = ir.Combine(member.Usage, ir.UsageUnknown)
			}
		}
	}

	for _, seg := range p.Segments {
		for _, member := range seg.Members {
			if member.Initializer != nil {
				walkInitializer(member, member.Initializer, make(map[*ir.Node]bool))
			}
		}
	}

	for _, g := range p.Graphs {
		func() {
			release := g.ReserveVisited()
			defer release()
			for _, n := range g.Nodes() {
				if n.Op != ir.OpAddress || n.Entity == nil {
					continue
				}
				visitUsage(n, n.Entity)
			}
		}()
	}
}

// walkInitializer marks Unknown on every entity an Address node embedded in
// init refers to, except a method entity's own self-referential initializer
// ("methods are initialised with themselves"; preserved as-is rather than
// "fixed" — see DESIGN.md).
func walkInitializer(owner *ir.Entity, init ir.Initializer, visited map[*ir.Node]bool) {
	switch v := init.(type) {
	case ir.ConstInitializer:
		walkInitializerNode(owner, v.Value, visited)
	case ir.CompoundInitializer:
		for _, child := range v.Children {
			walkInitializer(owner, child, visited)
		}
	case ir.TarvalInitializer, ir.NullInitializer:
		// contribute no usage
	}
}

func walkInitializerNode(owner *ir.Entity, n *ir.Node, visited map[*ir.Node]bool) {
	if n == nil || visited[n] {
		return
	}
	visited[n] = true

	if n.Op == ir.OpAddress && n.Entity != nil {
		if !(owner.IsMethod() && n.Entity == owner) {
			n.Entity.Usage = ir.Combine(n.Entity.Usage, ir.UsageUnknown)
		}
	}

	for _, a := range n.Args {
		walkInitializerNode(owner, a, visited)
	}
}
