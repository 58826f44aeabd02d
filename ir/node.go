package ir

import "fmt"

// Opcode enumerates the node shapes this core's rules ever destructure,
// modeling the IR as a tagged variant trimmed to exactly the opcodes the
// analysis passes pattern-match on.
type Opcode int

const (
	OpConst   Opcode = iota // constant value; Const holds the tarval
	OpAdd                   // Args = [left, right]
	OpSub                   // Args = [left, right]
	OpAddress               // address-of-entity literal; Entity set, no args
	OpMember                // field projection; Args = [ptr], Entity = selected field
	OpSel                   // array-index projection; Args = [ptr, index]
	OpLoad                  // Args = [ptr, mem]
	OpStore                 // Args = [ptr, value, mem]
	OpCopyB                 // Args = [dst, src, mem]; CopyType set
	OpCall                  // Args = [callee, mem, arg0, arg1, ...]; CalleeEntity optional
	OpProj                  // Args = [pred]; Index selects a tuple/arg slot
	OpTuple                 // Args = the tupled inputs
	OpBuiltin               // Args = operands; Builtin selects the kind
	OpFrame                 // the owning graph's frame node; no args
	OpArgs                  // the owning graph's formal-parameter tuple; no args
	OpId                    // SSA identity/copy; Args = [pred]
	OpOther                 // any other real-world opcode this core doesn't special-case
)

func (op Opcode) String() string {
	switch op {
	case OpConst:
		return "Const"
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpAddress:
		return "Address"
	case OpMember:
		return "Member"
	case OpSel:
		return "Sel"
	case OpLoad:
		return "Load"
	case OpStore:
		return "Store"
	case OpCopyB:
		return "CopyB"
	case OpCall:
		return "Call"
	case OpProj:
		return "Proj"
	case OpTuple:
		return "Tuple"
	case OpBuiltin:
		return "Builtin"
	case OpFrame:
		return "Frame"
	case OpArgs:
		return "Args"
	case OpId:
		return "Id"
	default:
		return "Other"
	}
}

// BuiltinKind distinguishes the one builtin this core special-cases (the
// may_alias builtin whose operands convey no usage) from every other
// builtin, which conservatively escapes its operands.
type BuiltinKind int

const (
	BuiltinOther BuiltinKind = iota
	BuiltinMayAlias
)

// Node is the opaque IR node handle this core models: opcode tag, mode,
// arity (len(Args)), i-th input (Args[i]), out-edges (via Graph.Outs) and
// owning graph.
type Node struct {
	ID    int
	Op    Opcode
	Mode  Mode
	Args  []*Node
	Graph *Graph

	Entity       *Entity     // OpAddress, OpMember
	Const        Tarval      // OpConst
	Index        int         // OpProj
	CopyType     *Type       // OpCopyB
	CalleeEntity *Entity     // OpCall, optional (nil => indirect call)
	CallType     *Type       // OpCall; the method type the call site was built against
	Builtin      BuiltinKind // OpBuiltin
}

func (n *Node) String() string {
	if n == nil {
		return "<nil node>"
	}
	return fmt.Sprintf("v%d:%s", n.ID, n.Op)
}

// Arg returns the i-th input.
func (n *Node) Arg(i int) *Node { return n.Args[i] }

// Arity returns the number of inputs.
func (n *Node) Arity() int { return len(n.Args) }
