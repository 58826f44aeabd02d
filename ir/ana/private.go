package ana

import (
	"github.com/simple555a/libfirm/debug"
	"github.com/simple555a/libfirm/ir"
)

// MarkPrivateMethods marks every non-address-taken, non-externally-visible
// method entity that is the Entity of a graph in p.Graphs private (method
// entities with no graph are not visited), cloning its method type
// through a short-lived {original → clone} dedup cache, then rewrites
// call-site types to match. Implicitly ensures program-wide entity usage is
// computed first.
func MarkPrivateMethods(p *ir.Program) {
	AssureProgramGlobalsEntityUsage(p)

	log := debug.Channel(debug.ChannelCC)

	// Local to this call, and never promoted to long-lived state.
	clones := make(map[*ir.Type]*ir.Type)
	changed := false
	marked := 0

	for _, g := range p.Graphs {
		ent := g.Entity
		if ent == nil || !ent.IsMethod() {
			continue
		}
		if ent.Usage.Implies(ir.UsageAddressTaken) || ent.IsExternallyVisible() {
			continue
		}

		ent.Properties |= ir.PropPrivate
		marked++

		if ent.Type.Private {
			continue
		}

		clone, ok := clones[ent.Type]
		if !ok {
			clone = ent.Type.CloneMethod()
			clone.Private = true
			clones[ent.Type] = clone
		}
		ent.Type = clone
		changed = true
	}

	log.Debugw("methods marked private", "count", marked, "cloned_types", len(clones))

	if !changed {
		return
	}

	rewritten := 0
	for _, g := range p.Graphs {
		for _, n := range g.Nodes() {
			if n.Op != ir.OpCall || n.CalleeEntity == nil {
				continue
			}
			if !n.CalleeEntity.HasProperty(ir.PropPrivate) {
				continue
			}
			if n.CallType != nil && n.CallType.Private {
				continue
			}
			n.CallType = n.CalleeEntity.Type
			rewritten++
		}
	}
	log.Debugw("call sites rewritten to private method type", "count", rewritten)
}
