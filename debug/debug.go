// Package debug is the minimal stand-in for the logging and panic-reporting
// collaborator the memory-disambiguation core treats as external. It has no
// state of its own beyond a swappable base logger: callers
// that want to see the core's reasoning install a real *zap.Logger; absent
// that, every channel is silent.
package debug

import "go.uber.org/zap"

// Named debug channels, matching libfirm's firm_dbg_module_t names exactly.
const (
	ChannelMemory = "firm.ana.irmemory" // alias/usage decisions
	ChannelCC     = "firm.opt.cc"       // private calling-convention rewrites
)

var base = zap.NewNop()

// SetLogger installs the base logger that named channels derive from. A nil
// logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	base = l
}

// Channel returns a sugared logger scoped to the given debug channel name.
func Channel(name string) *zap.SugaredLogger {
	return base.Named(name).Sugar()
}
