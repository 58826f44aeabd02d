package ir

// Options is the configuration-mask bitset. Graph carries its own mask
// field exactly the way libfirm stores mem_disambig_opt directly on
// ir_graph; the program-wide default lives in package ana instead (see
// ana/options.go), since the grounding source keeps it as a
// disambiguator-local static rather than an ir_prog field.
type Options uint32

const (
	OptNone Options = 0

	// OptNoAliasAnalysis is the global kill-switch: the oracle always
	// returns May. Only meaningful as a program-wide option (see
	// ana.ProgramOptions).
	OptNoAliasAnalysis Options = 1 << iota

	// OptNoAlias is the per-graph "Armageddon switch": the oracle always
	// returns No.
	OptNoAlias

	// OptTypeBased enables the type-based pruning block.
	OptTypeBased

	// OptByteTypeMayAlias, only meaningful together with OptTypeBased,
	// skips type pruning for byte-sized accesses.
	OptByteTypeMayAlias

	// OptNoAliasArgs: two distinct formal-parameter-derived pointers
	// cannot alias.
	OptNoAliasArgs

	// OptNoAliasArgsGlobal: a formal-parameter-derived pointer cannot
	// alias a global/TLS/global-address.
	OptNoAliasArgsGlobal

	// OptInherited, only meaningful on Graph.Options, defers to the
	// program-wide mask.
	OptInherited
)

// Has reports whether all bits in flag are set.
func (o Options) Has(flag Options) bool { return o&flag == flag }
