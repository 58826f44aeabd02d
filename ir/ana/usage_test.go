package ana

import (
	"testing"

	"github.com/simple555a/libfirm/ir"
)

// boundary scenario 9: a local written but never read, whose address is
// taken via a Store of itself, carries write+unknown but not read.
func TestEntityUsageWriteAndUnknownWithoutRead(t *testing.T) {
	frameType := ir.NewClass("f.frame", 16, nil)
	local := ir.NewEntity("x", int32Type)
	escapeSlot := ir.NewEntity("slot", ir.NewPointer("*int32", int32Type))
	frameType.AddMember(local)
	frameType.AddMember(escapeSlot)
	g := ir.NewGraph("f", frameType)

	localAddr := g.NewMember(g.Frame, local)
	mem0 := g.NewConst(ir.ModeMemory, ir.Tarval{})
	slotAddr := g.NewMember(g.Frame, escapeSlot)
	// store localAddr (the entity's own address) into slot: localAddr is the
	// value input, so this marks `local` Unknown without touching Read.
	g.NewStore(slotAddr, localAddr, mem0)

	// also write through localAddr directly, as the address input.
	g.NewStore(localAddr, g.NewConst(ir.ModeInt32, ir.NewLongTarval(1)), mem0)

	AssureGraphEntityUsage(g)

	if !local.Usage.Implies(ir.UsageWrite) {
		t.Errorf("expected write bit set")
	}
	if !local.Usage.Implies(ir.UsageUnknown) {
		t.Errorf("expected unknown bit set")
	}
	if local.Usage&ir.UsageRead != 0 {
		t.Errorf("expected literal read bit to stay clear, got usage %v", local.Usage)
	}
}

func TestEntityUsageLoadMarksRead(t *testing.T) {
	frameType := ir.NewClass("f.frame", 8, nil)
	local := ir.NewEntity("x", int32Type)
	frameType.AddMember(local)
	g := ir.NewGraph("f", frameType)

	localAddr := g.NewMember(g.Frame, local)
	mem0 := g.NewConst(ir.ModeMemory, ir.Tarval{})
	g.NewLoad(ir.ModeInt32, localAddr, mem0)

	AssureGraphEntityUsage(g)

	if !local.Usage.Implies(ir.UsageRead) {
		t.Errorf("expected read bit set")
	}
	if local.Usage.Implies(ir.UsageWrite) {
		t.Errorf("did not expect write bit")
	}
}

func TestEntityUsageHiddenCastOnLoad(t *testing.T) {
	frameType := ir.NewClass("f.frame", 8, nil)
	local := ir.NewEntity("x", int32Type)
	frameType.AddMember(local)
	g := ir.NewGraph("f", frameType)

	localAddr := g.NewMember(g.Frame, local)
	mem0 := g.NewConst(ir.ModeMemory, ir.Tarval{})
	// load as uint32 (same bit-width, twos-complement): not a reinterpret cast.
	g.NewLoad(ir.ModeUint32, localAddr, mem0)
	AssureGraphEntityUsage(g)
	if local.Usage.Implies(ir.UsageReinterpretCast) {
		t.Errorf("signed/unsigned load at the same width should not be a reinterpret cast")
	}
}

func TestEntityUsageReinterpretCastOnLoad(t *testing.T) {
	frameType := ir.NewClass("f.frame", 8, nil)
	local := ir.NewEntity("x", int32Type)
	frameType.AddMember(local)
	g := ir.NewGraph("f", frameType)

	localAddr := g.NewMember(g.Frame, local)
	mem0 := g.NewConst(ir.ModeMemory, ir.Tarval{})
	g.NewLoad(ir.ModeFloat32, localAddr, mem0)
	AssureGraphEntityUsage(g)
	if !local.Usage.Implies(ir.UsageReinterpretCast) {
		t.Errorf("expected a float load of an int32 local to be a reinterpret cast")
	}
}

func TestEntityUsageUnionMemberAlwaysUnknown(t *testing.T) {
	frameType := ir.NewClass("f.frame", 8, nil)
	union := ir.NewUnion("U", 4)
	member := ir.NewEntity("u", union)
	frameType.AddMember(member)
	field := ir.NewEntity("f1", int32Type)
	union.AddMember(field)
	g := ir.NewGraph("f", frameType)

	base := g.NewMember(g.Frame, member)
	g.NewMember(base, field)

	AssureGraphEntityUsage(g)
	if !member.Usage.Implies(ir.UsageUnknown) {
		t.Errorf("expected accessing a union member to mark the union entity unknown")
	}
}

func TestAssureGraphEntityUsageIdempotent(t *testing.T) {
	frameType := ir.NewClass("f.frame", 8, nil)
	local := ir.NewEntity("x", int32Type)
	frameType.AddMember(local)
	g := ir.NewGraph("f", frameType)

	localAddr := g.NewMember(g.Frame, local)
	mem0 := g.NewConst(ir.ModeMemory, ir.Tarval{})
	g.NewLoad(ir.ModeInt32, localAddr, mem0)

	AssureGraphEntityUsage(g)
	first := local.Usage
	AssureGraphEntityUsage(g)
	if local.Usage != first {
		t.Errorf("expected idempotent usage bits, got %v then %v", first, local.Usage)
	}
}

func TestUsageMonotonicityWithUnknown(t *testing.T) {
	combos := []ir.Usage{ir.UsageNone, ir.UsageRead, ir.UsageWrite, ir.UsageReinterpretCast, ir.UsageAddressTaken}
	for _, u := range combos {
		if got := ir.Combine(u, ir.UsageUnknown); got&ir.UsageUnknown == 0 {
			t.Errorf("combining %v with unknown should keep the unknown bit, got %v", u, got)
		}
	}
}

// The program-wide Address-node loop must open its own visited reservation
// per graph rather than relying on one primed by a prior
// AssureGraphEntityUsage call — a graph's visitedGen/visitedStamp both
// start at the Go zero value, so without a fresh ReserveVisited the very
// first VisitedElseMark call would report "already visited" and the walk
// would silently no-op.
func TestProgramWideUsageWalksAddressNodeWithoutPriorGraphPass(t *testing.T) {
	prog := ir.NewProgram()
	seg := ir.NewSegment("data")
	prog.AddSegment(seg)

	global := ir.NewEntity("g", int32Type)
	seg.AddMember(global)

	g := ir.NewGraph("f", ir.NewClass("f.frame", 0, nil))
	prog.AddGraph(g)

	addr := g.NewAddress(global)
	mem0 := g.NewConst(ir.ModeMemory, ir.Tarval{})
	g.NewLoad(ir.ModeInt32, addr, mem0)
	g.NewStore(addr, g.NewConst(ir.ModeInt32, ir.NewLongTarval(1)), mem0)

	// Deliberately no AssureGraphEntityUsage(g) call before this.
	AssureProgramGlobalsEntityUsage(prog)

	if !global.Usage.Implies(ir.UsageRead) {
		t.Errorf("expected the program-wide pass to reach the Load through g's Address node and mark read")
	}
	if !global.Usage.Implies(ir.UsageWrite) {
		t.Errorf("expected the program-wide pass to reach the Store through g's Address node and mark write")
	}
}

func TestMethodSelfInitializerNotAddressTaken(t *testing.T) {
	prog := ir.NewProgram()
	seg := ir.NewSegment("code")
	prog.AddSegment(seg)

	methodType := &ir.Type{Kind: ir.KindMethod, Name: "method.type"}
	method := ir.NewEntity("m", methodType)
	seg.AddMember(method)

	g := ir.NewGraph("m", ir.NewClass("m.frame", 0, nil))
	g.Entity = method
	method.Graph = g
	prog.AddGraph(g)

	self := g.NewAddress(method)
	method.Initializer = ir.ConstInitializer{Value: self}

	AssureProgramGlobalsEntityUsage(prog)

	if method.Usage.Implies(ir.UsageUnknown) {
		t.Errorf("a method's self-referential initializer must not mark it unknown/address-taken")
	}
}
