package ir

// GlobalUsageState is the program-level usage-computation state. Partial
// exists for host bookkeeping (e.g. a host that wants to mark the usage
// summary invalid mid-incremental-update) but this core's own analysis only
// ever transitions NotComputed -> Computed.
type GlobalUsageState int

const (
	UsageNotComputed GlobalUsageState = iota
	UsagePartial
	UsageComputed
)

// Program is the process-wide IR state this core models: the set of graphs
// and global/TLS segment types, and the lazily-computed globals-usage
// state. The program-wide option mask and language-callback slot are
// deliberately NOT here — in the grounding source they are package-local
// statics of the disambiguator itself (irmemory.c's
// global_mem_disamgig_opt / language_disambuigator), not fields of ir_prog,
// so they live in package ana (see ana/options.go, ana/alias.go) rather than
// on this struct.
type Program struct {
	Graphs   []*Graph
	Segments []*Type // one compound type per global/TLS segment

	GlobalUsageState GlobalUsageState
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{}
}

// AddGraph registers a graph with the program and back-links it.
func (p *Program) AddGraph(g *Graph) {
	g.Program = p
	p.Graphs = append(p.Graphs, g)
}

// AddSegment registers a global/TLS segment type with the program.
func (p *Program) AddSegment(t *Type) {
	p.Segments = append(p.Segments, t)
}

// InvalidateGlobalsUsage resets the program-wide usage state to
// NotComputed — the host-facing "invalidate" hook paired with
// ProgramGlobalsUsageState's getter.
func (p *Program) InvalidateGlobalsUsage() {
	p.GlobalUsageState = UsageNotComputed
}
