package ana

import (
	"testing"

	"github.com/simple555a/libfirm/ir"
)

func newMethod(name string, prog *ir.Program, seg *ir.Type, shared *ir.Type) (*ir.Entity, *ir.Graph) {
	ent := ir.NewEntity(name, shared)
	seg.AddMember(ent)
	g := ir.NewGraph(name, ir.NewClass(name+".frame", 0, nil))
	g.Entity = ent
	ent.Graph = g
	prog.AddGraph(g)
	return ent, g
}

func TestMarkPrivateMethodsBasic(t *testing.T) {
	prog := ir.NewProgram()
	seg := ir.NewSegment("code")
	prog.AddSegment(seg)

	sharedType := &ir.Type{Kind: ir.KindMethod, Name: "void()"}
	notTaken, _ := newMethod("notTaken", prog, seg, sharedType)
	exported, gExported := newMethod("exported", prog, seg, sharedType)
	exported.Linkage |= ir.LinkageExternallyVisible
	_ = gExported

	MarkPrivateMethods(prog)

	if !notTaken.HasProperty(ir.PropPrivate) {
		t.Errorf("expected notTaken to be marked private")
	}
	if !notTaken.Type.Private {
		t.Errorf("expected notTaken's type to be the private clone")
	}
	if exported.HasProperty(ir.PropPrivate) {
		t.Errorf("did not expect an externally visible entity to be marked private")
	}
	if notTaken.Type == sharedType {
		t.Errorf("expected notTaken's type to have been replaced by a clone, not the shared original")
	}
}

func TestMarkPrivateMethodsSharesCloneAcrossCallers(t *testing.T) {
	prog := ir.NewProgram()
	seg := ir.NewSegment("code")
	prog.AddSegment(seg)

	sharedType := &ir.Type{Kind: ir.KindMethod, Name: "void()"}
	m1, _ := newMethod("m1", prog, seg, sharedType)
	m2, _ := newMethod("m2", prog, seg, sharedType)

	MarkPrivateMethods(prog)

	if m1.Type != m2.Type {
		t.Errorf("expected both private methods that shared a type to share one clone")
	}
}

func TestMarkPrivateMethodsRewritesCallSites(t *testing.T) {
	prog := ir.NewProgram()
	seg := ir.NewSegment("code")
	prog.AddSegment(seg)

	sharedType := &ir.Type{Kind: ir.KindMethod, Name: "void()"}
	callee, _ := newMethod("callee", prog, seg, sharedType)

	callerFrame := ir.NewClass("caller.frame", 0, nil)
	caller := ir.NewGraph("caller", callerFrame)
	prog.AddGraph(caller)
	mem := caller.NewConst(ir.ModeMemory, ir.Tarval{})
	call := caller.NewCall(caller.NewAddress(callee), callee, mem)

	MarkPrivateMethods(prog)

	if !call.CallType.Private {
		t.Errorf("expected the call site's type to be rewritten to the private clone, got %v", call.CallType)
	}
	if call.CallType != callee.Type {
		t.Errorf("expected the call site's type to be the callee's own (now private) type")
	}
}

func TestMarkPrivateMethodsAddressTakenStaysPublic(t *testing.T) {
	prog := ir.NewProgram()
	seg := ir.NewSegment("code")
	prog.AddSegment(seg)

	sharedType := &ir.Type{Kind: ir.KindMethod, Name: "void()"}
	taken, g := newMethod("taken", prog, seg, sharedType)
	_ = g
	taken.Usage = ir.UsageAddressTaken

	MarkPrivateMethods(prog)

	if taken.HasProperty(ir.PropPrivate) {
		t.Errorf("did not expect an address-taken method to be marked private")
	}
}
