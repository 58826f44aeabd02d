// Package ana is the memory disambiguator itself — the core of this
// repository, grounded on libfirm's ir/ana/irmemory.c and styled after
// cmd/compile/internal/ssa's alias-analysis pass (alias.go, alias_test.go).
package ana

import "github.com/simple555a/libfirm/ir"

// programOptions is the program-wide memory-disambiguator option mask.
// In the grounding source this is irmemory.c's static global_mem_disamgig_opt
// — package-local state of the analysis module, not a field on ir_prog —
// so it is kept here rather than on ir.Program.
var programOptions ir.Options

// SetProgramOptions installs the program-wide option mask.
func SetProgramOptions(opts ir.Options) {
	programOptions = opts
}

// ProgramOptions returns the program-wide option mask.
func ProgramOptions() ir.Options {
	return programOptions
}

// SetGraphOptions installs g's per-graph option mask, stripping the
// OptInherited bit exactly as set_irg_memory_disambiguator_options does
// (the inherited bit only ever matters on read).
func SetGraphOptions(g *ir.Graph, opts ir.Options) {
	g.Options = opts &^ ir.OptInherited
}

// GraphOptions returns g's effective option mask: the program-wide mask if
// g's own mask carries OptInherited, else g's own mask.
func GraphOptions(g *ir.Graph) ir.Options {
	if g.Options.Has(ir.OptInherited) {
		return programOptions
	}
	return g.Options
}
