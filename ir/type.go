package ir

// TypeKind enumerates the type constructors the memory disambiguator cares
// about. libfirm has a much larger type zoo (arrays, enums, ...); the
// disambiguator's component design only ever asks "is this a
// pointer/class/union/primitive", so that's all that's modeled here.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindPointer
	KindStruct
	KindUnion
	KindClass
	KindMethod
	KindSegment // a global/TLS segment "owner" type, not a real aggregate
)

// Type is the external-IR type stand-in. Only the fields the analysis
// passes actually consult are here; Members backs the entity-usage walk
// over compound members, Super backs the subclass check used by
// type-based pruning.
type Type struct {
	Kind TypeKind
	Name string

	Size int64 // bytes; meaningless for Method/Segment
	Mode Mode  // valid for KindPrimitive and KindPointer

	PointsTo *Type // valid for KindPointer

	Members []*Entity // valid for KindStruct/KindUnion/KindClass/KindSegment
	Super   *Type     // valid for KindClass; nil if it has no superclass

	Variadic bool // valid for KindMethod
	Private  bool // valid for KindMethod; set by the private-method marker

	ReadOnly bool // entities owned by this type live in read-only memory
}

func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}
	return t.Name
}

func (t *Type) IsPointer() bool { return t.Kind == KindPointer }
func (t *Type) IsUnion() bool   { return t.Kind == KindUnion }
func (t *Type) IsClass() bool   { return t.Kind == KindClass }
func (t *Type) IsPrimitive() bool { return t.Kind == KindPrimitive }
func (t *Type) IsMethod() bool  { return t.Kind == KindMethod }

// CloneMethod returns a new method type with the same variadicity as t but
// a distinct identity, for the private-method marker's clone cache: two
// callers of the same entity must share one clone, never reuse t itself.
func (t *Type) CloneMethod() *Type {
	return &Type{Kind: KindMethod, Name: t.Name, Variadic: t.Variadic}
}
func (t *Type) IsCompound() bool {
	switch t.Kind {
	case KindStruct, KindUnion, KindClass, KindSegment:
		return true
	default:
		return false
	}
}

// IsSubclassOf reports whether t is other or a (transitive) subclass of
// other, mirroring libfirm's is_SubClass_of. Only meaningful for KindClass.
func (t *Type) IsSubclassOf(other *Type) bool {
	for c := t; c != nil; c = c.Super {
		if c == other {
			return true
		}
	}
	return false
}

// TLSSegment is the sentinel owner type for thread-local entities — the
// stand-in for libfirm's get_tls_type().
var TLSSegment = &Type{Kind: KindSegment, Name: "tls"}

// NewPrimitive builds a primitive scalar type of the given size and mode.
func NewPrimitive(name string, size int64, mode Mode) *Type {
	return &Type{Kind: KindPrimitive, Name: name, Size: size, Mode: mode}
}

// NewPointer builds a pointer-to-t type.
func NewPointer(name string, pointsTo *Type) *Type {
	return &Type{Kind: KindPointer, Name: name, Size: 8, Mode: ModeRef, PointsTo: pointsTo}
}

// NewStruct/NewUnion/NewClass build empty compound types; members are
// attached afterward via AddMember so the entity can point back at its
// owner (entities and their owning type are mutually referential).
func NewStruct(name string, size int64) *Type {
	return &Type{Kind: KindStruct, Name: name, Size: size}
}

func NewUnion(name string, size int64) *Type {
	return &Type{Kind: KindUnion, Name: name, Size: size}
}

func NewClass(name string, size int64, super *Type) *Type {
	return &Type{Kind: KindClass, Name: name, Size: size, Super: super}
}

func NewSegment(name string) *Type {
	return &Type{Kind: KindSegment, Name: name}
}

// AddMember appends ent to t's member list and sets ent's Owner to t.
func (t *Type) AddMember(ent *Entity) {
	ent.Owner = t
	t.Members = append(t.Members, ent)
}
