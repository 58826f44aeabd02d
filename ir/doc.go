// Package ir is the external-IR stand-in the memory-disambiguation core
// (package ana) consumes: a Sea-of-Nodes graph, its entities and types.
// Construction, printing, dominance and graph walkers are treated as out of
// scope for the core; this package carries exactly enough of them — and no
// more — for the analysis passes to have something concrete to operate on,
// since no real external IR library exists to import in a standalone
// module.
package ir
