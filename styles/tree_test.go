package styles

import (
	"strings"
	"testing"

	"github.com/npillmayer/cssgen/value"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTreeOrderPreserved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssgen.styles")
	defer teardown()
	//
	tree := Tree{}.
		Rule(".b", Body{}).
		Rule(".a", Body{}).
		Rule(".b", Body{})
	rules := tree.Rules()
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, have %d", len(rules))
	}
	if rules[0].Selector != ".b" || rules[1].Selector != ".a" || rules[2].Selector != ".b" {
		t.Errorf("expected insertion order with duplicates kept, have %v", rules)
	}
}

func TestTreeValueSemantics(t *testing.T) {
	base := Tree{}.Rule(".a", Body{})
	extended := base.Rule(".b", Body{})
	if len(base.Rules()) != 1 {
		t.Errorf("expected base tree to stay at 1 rule, has %d", len(base.Rules()))
	}
	if len(extended.Rules()) != 2 {
		t.Errorf("expected extended tree to have 2 rules, has %d", len(extended.Rules()))
	}
}

func TestBodyDeclOrder(t *testing.T) {
	body := Body{}.
		Prop("color", "red").
		Prop("color", "blue").
		Prop("width", 10)
	decls := body.Decls()
	if len(decls) != 3 {
		t.Fatalf("expected 3 declarations, have %d", len(decls))
	}
	if decls[0].Key != "color" || decls[1].Key != "color" || decls[2].Key != "width" {
		t.Errorf("expected declarations in insertion order, have %v", decls)
	}
}

func TestPropertyValueMatchLeaf(t *testing.T) {
	pv := Leaf("red")
	var v value.T
	switch m := pv.Match(); m {
	case m.Leaf(&v):
		if v.String() != "red" {
			t.Errorf("expected leaf to hold 'red', is %q", v.String())
		}
	default:
		t.Errorf("expected value to match leaf case, doesn't: %#v", pv)
	}
}

func TestPropertyValueMatchNested(t *testing.T) {
	sub := Body{}.Prop("width", "100%")
	pv := Nested(sub)
	var b Body
	switch m := pv.Match(); m {
	case m.Nested(&b):
		if len(b.Decls()) != 1 {
			t.Errorf("expected nested body with 1 declaration, has %d", len(b.Decls()))
		}
	case m.Leaf(nil):
		t.Error("expected value not to match leaf case, does")
	}
}

func TestPropertyValueMatchInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssgen.styles")
	defer teardown()
	//
	pv := Leaf(struct{ x int }{1})
	var err error
	switch m := pv.Match(); m {
	case m.Invalid(&err):
		if err == nil {
			t.Error("expected invalid value to carry an error, doesn't")
		}
	default:
		t.Errorf("expected value to match invalid case, doesn't: %#v", pv)
	}
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssgen.styles")
	defer teardown()
	//
	tree := Tree{}.
		Rule(".layer", Body{}.Prop("color", "red")).
		Rule("@media screen", Body{}.
			Block(".layer", Body{}.Prop("width", "100%")))
	out := Dump(tree)
	t.Logf("tree =\n%s", out)
	for _, want := range []string{".layer", "color: red", "@media screen", "width: 100%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected dump to contain %q, doesn't", want)
		}
	}
}
