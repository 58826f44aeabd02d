package ir

// Linkage mirrors libfirm's ir_linkage bits relevant to this core.
type Linkage uint8

const (
	LinkageNone Linkage = 0
	// LinkageExternallyVisible marks an entity as reachable from outside
	// this program (exported symbol, address taken by a dynamic linker,
	// etc.) — the program-wide usage pass seeds these to Unknown.
	LinkageExternallyVisible Linkage = 1 << iota

	// LinkageHiddenUser marks an entity as read/written by hand-written
	// code the IR can't see (e.g. assembly stubs); the per-graph usage
	// pass seeds these to Unknown instead of None.
	LinkageHiddenUser
)

// Properties mirrors libfirm's mtp_property / entity additional-properties
// bits this core consults or sets.
type Properties uint8

const (
	PropNone Properties = 0
	// PropMalloc marks a callee whose result is a fresh, non-aliasing
	// allocation.
	PropMalloc Properties = 1 << iota
	// PropPrivate marks a method entity (and its cloned type) as callable
	// only through a private calling convention.
	PropPrivate
)

// Usage is the per-entity usage bitset: read, write, address-taken,
// reinterpret-cast and unknown are independent bits — OR'd together as the
// entity-usage walk discovers more about how an entity is used. Unknown is
// not the union of the other bits (a write and an unknown use can coexist
// without a read); instead it is the conservative "could be any of the
// above" bit a consumer should treat as implying any single one of them —
// see Implies.
type Usage uint8

const (
	UsageNone Usage = 0
	UsageRead Usage = 1 << iota
	UsageWrite
	UsageAddressTaken
	UsageReinterpretCast
	UsageUnknown
)

// Combine ORs two usage bitsets together — the accumulation operation the
// entity-usage walk uses at every step. Combining any usage bitset with
// unknown yields unknown, trivially true of OR since the Unknown bit, once
// set, can never be cleared by a further Combine.
func Combine(a, b Usage) Usage { return a | b }

// Implies reports whether usage u should be treated as having flag set,
// treating UsageUnknown as conservatively dominant over every other flag —
// it subsumes read+write+address-taken. Implies(UsageUnknown) only matches
// the literal bit, since nothing dominates unknown itself.
func (u Usage) Implies(flag Usage) bool {
	if u&flag != 0 {
		return true
	}
	if flag == UsageUnknown {
		return false
	}
	return u&UsageUnknown != 0
}

// Entity is the named storage location this core models: owner aggregate,
// type, linkage, additional properties, usage, volatility, optional
// initializer and (for methods) an associated graph.
type Entity struct {
	Name string

	Owner *Type // the aggregate type (class/struct/union/segment) this belongs to
	Type  *Type

	Linkage    Linkage
	Properties Properties
	Usage      Usage
	Volatile   bool

	// BitfieldSize is > 0 for bitfield members; the oracle treats two
	// different bitfield entities sharing storage as possibly overlapping
	// even when they're not literally the same field.
	BitfieldSize int64

	Initializer Initializer // optional

	// Graph is set for method entities that have an associated IR graph;
	// nil for data entities and for declarations with no body.
	Graph *Graph
}

func (e *Entity) String() string {
	if e == nil {
		return "<nil entity>"
	}
	return e.Name
}

func (e *Entity) IsMethod() bool { return e.Type != nil && e.Type.Kind == KindMethod }

func (e *Entity) HasProperty(p Properties) bool { return e.Properties&p != 0 }

// IsExternallyVisible reports whether e is reachable from outside the
// program — the program-wide usage pass seeds these to Unknown rather than
// None.
func (e *Entity) IsExternallyVisible() bool { return e.Linkage&LinkageExternallyVisible != 0 }

func (e *Entity) IsHiddenUser() bool { return e.Linkage&LinkageHiddenUser != 0 }

// NewEntity constructs a bare entity; attach it to an owner via
// Type.AddMember, which also sets Owner.
func NewEntity(name string, typ *Type) *Entity {
	return &Entity{Name: name, Type: typ}
}
