package ana

import (
	"fmt"

	"github.com/simple555a/libfirm/debug"
	"github.com/simple555a/libfirm/ir"
)

// AliasRelation is the tri-valued result of the oracle.
type AliasRelation uint8

const (
	AliasNo AliasRelation = iota
	AliasMay
	AliasSure
)

// String produces the canonical relation name. Panics on any value outside
// the three declared constants — relation-name stringification treats
// anything else as a programmer error.
func (r AliasRelation) String() string {
	switch r {
	case AliasNo:
		return "no"
	case AliasMay:
		return "may"
	case AliasSure:
		return "sure"
	default:
		panic(fmt.Sprintf("alias_relation: invalid relation value %d", uint8(r)))
	}
}

// LanguageDisambiguator is the optional host-language-specific alias hook
// consulted at oracle step 14 — modeled as a nilable function value rather
// than a tagged {None|Installed} variant.
type LanguageDisambiguator func(addr1 *ir.Node, type1 *ir.Type, addr2 *ir.Node, type2 *ir.Type) AliasRelation

// languageDisambiguator is program-wide, write-mostly-once state — the
// grounding source's static language_disambuigator (package-local to
// irmemory.c, not an ir_prog field; see ir/ana/options.go for the sibling
// programOptions).
var languageDisambiguator LanguageDisambiguator

// RegisterLanguageDisambiguator installs (or, passed nil, removes) the
// language callback.
func RegisterLanguageDisambiguator(fn LanguageDisambiguator) {
	languageDisambiguator = fn
}

func maxSize(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func absSize(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// entityTypeOf returns the entity type an Address/Member node denotes, or
// nil if addr is neither — the entity-type pruning sub-rule's way of
// fetching the entity referenced by an Address/Member node.
func entityTypeOf(addr *ir.Node) *ir.Type {
	if (addr.Op == ir.OpAddress || addr.Op == ir.OpMember) && addr.Entity != nil {
		return addr.Entity.Type
	}
	return nil
}

// entityTypePrune is the step 13 fallback: dereference pointer envelopes on
// both original (pre-peel) addresses in lock-step, then compare the
// resulting type constructors.
func entityTypePrune(addr1 *ir.Node, type1 *ir.Type, addr2 *ir.Node, type2 *ir.Type) AliasRelation {
	t1 := entityTypeOf(addr1)
	if t1 == nil {
		t1 = type1
	}
	t2 := entityTypeOf(addr2)
	if t2 == nil {
		t2 = type2
	}
	for t1.IsPointer() && t2.IsPointer() {
		t1 = t1.PointsTo
		t2 = t2.PointsTo
	}
	if t1.Kind != t2.Kind {
		return AliasNo
	}
	if t1.IsClass() && t2.IsClass() && !t1.IsSubclassOf(t2) && !t2.IsSubclassOf(t1) {
		return AliasNo
	}
	return AliasMay
}

// Alias is the public oracle. It never errors — every branch either
// returns a decisive relation or degrades to AliasMay; the only panic is
// the invariant violation of a node with no owning graph.
func Alias(addr1 *ir.Node, type1 *ir.Type, addr2 *ir.Node, type2 *ir.Type) (rel AliasRelation) {
	g := addr1.Graph
	if g == nil {
		debug.Fatalf(addr1, "alias: node has no owning graph")
	}
	defer func() {
		debug.Channel(debug.ChannelMemory).Debugw("alias", "addr1", addr1.Op, "addr2", addr2.Op, "relation", rel.String())
	}()

	// 1. Global kill-switch.
	if ProgramOptions().Has(ir.OptNoAliasAnalysis) {
		return AliasMay
	}

	// 2. Trivial identity.
	if addr1 == addr2 {
		return AliasSure
	}

	// 3. Per-graph switch.
	opts := GraphOptions(g)
	if opts.Has(ir.OptNoAlias) {
		return AliasNo
	}

	// 4. Offset normalisation.
	n1 := PeelOffset(addr1)
	n2 := PeelOffset(addr2)
	typeSize := maxSize(type1.Size, type2.Size)

	// 5. Same-base-and-same-symbolic comparison.
	if n1.Base == n2.Base && n1.SymOffset == n2.SymOffset && !n1.SymOverflow && !n2.SymOverflow {
		firstOff, firstSize := n1.ConstOffset, type1.Size
		secondOff := n2.ConstOffset
		if firstOff > secondOff {
			firstOff, secondOff = secondOff, firstOff
			firstSize = type2.Size
		}
		if firstOff+firstSize <= secondOff {
			return AliasNo
		}
		return AliasSure
	}

	// 6. Field peeling.
	root1, ent1 := PeelField(n1.Base)
	root2, ent2 := PeelField(n2.Base)

	// 7. Field-selection reasoning.
	if ent1 != nil && ent2 != nil {
		if ent1 == ent2 {
			if root1 == root2 {
				return AliasSure
			}
			return AliasMay
		}
		if ent1.Owner == ent2.Owner {
			if ent1.Owner.IsUnion() || ent1.BitfieldSize != 0 || ent2.BitfieldSize != 0 {
				return AliasMay
			}
			return AliasNo
		}
		// Different owners: a union could still make the fields overlap.
		return AliasMay
	}

	// 8. Classify each root.
	class1 := ClassifyPointer(root1, ent1)
	class2 := ClassifyPointer(root2, ent2)

	isConcrete := func(c StorageClass) bool {
		return c.Class != ClassPointer
	}

	// 9. Struct-vs-variable asymmetry.
	switch {
	case ent1 != nil && ent2 == nil && isOther(class2.Class):
		return AliasNo
	case ent2 != nil && ent1 == nil && isOther(class1.Class):
		return AliasNo
	}

	// 10. Pointer-vs-concrete interaction.
	if (class1.Class == ClassPointer) != (class2.Class == ClassPointer) {
		side1, side2 := class1, class2
		if side1.Class != ClassPointer {
			side1, side2 = side2, side1
		}
		switch {
		case side2.Has(ModNotTaken):
			return AliasNo
		case side1.Has(ModArgument) && opts.Has(ir.OptNoAliasArgs) && side2.Has(ModArgument):
			return AliasNo
		case side1.Has(ModArgument) && opts.Has(ir.OptNoAliasArgsGlobal) && isGlobalLike(side2.Class):
			return AliasNo
		}
	}

	// 11. Different storage classes.
	if isConcrete(class1) && isConcrete(class2) && class1.Class != class2.Class {
		return AliasNo
	}

	// 12. Same concrete class.
	if isConcrete(class1) && isConcrete(class2) && class1.Class == class2.Class {
		switch class1.Class {
		case ClassGlobalVar:
			if root1.Entity == root2.Entity {
				return AliasMay
			}
			return AliasNo
		case ClassGlobalAddr:
			off1, off2 := n1.ConstOffset, n2.ConstOffset
			if root1.Op == ir.OpConst && root1.Const.FitsLong {
				off1 += root1.Const.Value
			}
			if root2.Op == ir.OpConst && root2.Const.FitsLong {
				off2 += root2.Const.Value
			}
			if absSize(off1-off2) >= typeSize {
				return AliasNo
			}
			return AliasSure
		case ClassMalloced:
			if root1 == root2 {
				return AliasSure
			}
			return AliasNo
		}
	}

	// 13. Type-based pruning.
	if opts.Has(ir.OptTypeBased) {
		byteSized := type1.Size == 1 || type2.Size == 1
		if !(opts.Has(ir.OptByteTypeMayAlias) && byteSized) {
			switch {
			case type1.Size != type2.Size:
				return AliasNo
			case type1.IsPointer() != type2.IsPointer():
				return AliasNo
			case type1.IsPrimitive() && type2.IsPrimitive() && type1.Mode.Arithmetic != type2.Mode.Arithmetic:
				return AliasNo
			default:
				if rel := entityTypePrune(addr1, type1, addr2, type2); rel != AliasMay {
					return rel
				}
			}
		}
	}

	// 14. Language callback.
	if languageDisambiguator != nil {
		if rel := languageDisambiguator(addr1, type1, addr2, type2); rel != AliasMay {
			return rel
		}
	}

	// 15. Default.
	return AliasMay
}

// isOther reports whether c is one of the "concrete variable-ish" classes
// step 9 singles out: globalvar, localvar, tls or globaladdr.
func isOther(c StorageClassClass) bool {
	switch c {
	case ClassGlobalVar, ClassLocalVar, ClassTLS, ClassGlobalAddr:
		return true
	default:
		return false
	}
}

// isGlobalLike reports whether c is globalvar, tls or globaladdr — the
// narrower three-class predicate step 10's OptNoAliasArgsGlobal rule needs.
// Deliberately excludes localvar: a formal-parameter pointer can still
// alias a plain local variable under this option.
func isGlobalLike(c StorageClassClass) bool {
	switch c {
	case ClassGlobalVar, ClassTLS, ClassGlobalAddr:
		return true
	default:
		return false
	}
}
