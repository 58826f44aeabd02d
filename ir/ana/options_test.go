package ana

import (
	"testing"

	"github.com/simple555a/libfirm/ir"
)

func TestGraphOptionsInheritance(t *testing.T) {
	g := ir.NewGraph("f", ir.NewClass("f.frame", 0, nil))

	SetProgramOptions(ir.OptNoAlias)
	// SetGraphOptions strips OptInherited, so put it on the stored mask directly.
	g.Options = ir.OptInherited

	if got := GraphOptions(g); got != ir.OptNoAlias {
		t.Errorf("expected inherited graph options to equal the program default, got %v", got)
	}

	SetGraphOptions(g, ir.OptTypeBased)
	if got := GraphOptions(g); got != ir.OptTypeBased {
		t.Errorf("expected the graph's own mask to win once set, got %v", got)
	}

	SetProgramOptions(ir.OptNone)
}

func TestSetGraphOptionsStripsInheritedBit(t *testing.T) {
	g := ir.NewGraph("f", ir.NewClass("f.frame", 0, nil))
	SetGraphOptions(g, ir.OptTypeBased|ir.OptInherited)
	if g.Options.Has(ir.OptInherited) {
		t.Errorf("expected OptInherited to be stripped from the stored mask")
	}
}
