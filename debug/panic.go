package debug

import "fmt"

// Subject is anything a panic message can be attributed to — ir.Node and
// ir.Entity both implement it the way cmd/compile/internal/ssa's Value
// implements fmt.Stringer for its own Fatalf.
type Subject interface {
	String() string
}

// Fatalf panics with a message of the form "<subject>: <message>",
// mirroring ssa.Value.Fatalf/ssa.Block.Fatalf. It is reserved for invariant
// violations — malformed IR, an out-of-range enum — never for ordinary
// imprecision, which the core degrades safely instead.
func Fatalf(subject Subject, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(fmt.Sprintf("%s: %s", subject.String(), msg))
}
