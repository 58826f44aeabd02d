package ir

// Graph is a single function's Sea-of-Nodes graph — the "owning graph"
// every Node points back to. It deliberately carries none of dominance,
// blocks or printing; it carries just enough structure (frame, formal
// parameters, out-edges, a visited arena) for the analysis passes to do
// their work.
type Graph struct {
	Name    string
	Program *Program

	// Frame is the per-graph frame node; its Member out-neighbours select
	// frame entities (the graph's locals and nested methods).
	Frame     *Node
	FrameType *Type // class type whose members are this graph's locals + nested methods

	// Args is the formal-parameter tuple node; Proj children with Args as
	// their direct predecessor are formal-parameter projections.
	Args *Node

	// Entity is the method entity this graph is the body of, if any.
	Entity *Entity

	Options Options

	usageComputed bool // CONSISTENT_ENTITY_USAGE property

	nodes []*Node
	outs  map[*Node][]*Node

	visitedGen   int
	visitedStamp map[*Node]int
	visitedDepth int
}

// NewGraph creates an empty graph with its Frame and Args nodes wired up.
func NewGraph(name string, frameType *Type) *Graph {
	g := &Graph{
		Name:         name,
		FrameType:    frameType,
		outs:         make(map[*Node][]*Node),
		visitedStamp: make(map[*Node]int),
	}
	g.Frame = g.newNode(OpFrame, Mode{})
	g.Args = g.newNode(OpArgs, Mode{})
	return g
}

func (g *Graph) String() string { return "graph:" + g.Name }

// NumNodes returns the number of nodes allocated in this graph so far.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Nodes returns every node allocated in this graph, in allocation order —
// the "walk all nodes" primitive the program-wide usage pass needs to find
// every Address node.
func (g *Graph) Nodes() []*Node { return g.nodes }

func (g *Graph) newNode(op Opcode, mode Mode) *Node {
	n := &Node{ID: len(g.nodes), Op: op, Mode: mode, Graph: g}
	g.nodes = append(g.nodes, n)
	return n
}

// link registers n's out-edges: every one of n's inputs gets n added to its
// out-neighbour list. Called by every constructor in build.go once Args is
// set, mirroring libfirm's irg_outs being kept current incrementally.
func (g *Graph) link(n *Node) *Node {
	for _, a := range n.Args {
		g.outs[a] = append(g.outs[a], n)
	}
	return n
}

// Outs returns n's out-neighbours — the successors the usage walk
// iterates.
func (g *Graph) Outs(n *Node) []*Node { return g.outs[n] }

// ReserveVisited opens a scoped visited-marker bracket and returns the
// release function; callers must defer it so the reservation is released
// on every exit path, including a panic mid-walk.
func (g *Graph) ReserveVisited() func() {
	g.visitedDepth++
	g.visitedGen++
	gen := g.visitedGen
	return func() {
		g.visitedDepth--
		_ = gen
	}
}

// VisitedElseMark reports whether n was already marked in the current
// reservation, marking it if not — the single primitive initializer/frame
// walks use to break cycles through owner-graph references.
func (g *Graph) VisitedElseMark(n *Node) bool {
	if g.visitedStamp[n] == g.visitedGen {
		return true
	}
	g.visitedStamp[n] = g.visitedGen
	return false
}

// MarkEntityUsageConsistent / HasConsistentEntityUsage / InvalidateEntityUsage
// implement the per-graph usage-consistency lifecycle: computed once,
// invalidated by the host whenever a mutation could take a new address.
func (g *Graph) MarkEntityUsageConsistent() { g.usageComputed = true }

func (g *Graph) HasConsistentEntityUsage() bool { return g.usageComputed }

// InvalidateEntityUsage clears the per-graph usage-consistency bit. The
// host calls this after any IR mutation that could change what an entity's
// address escapes into — invalidation is the host's responsibility, not
// something this core tracks on its own.
func (g *Graph) InvalidateEntityUsage() { g.usageComputed = false }
