package styles

import (
	"github.com/npillmayer/cssgen/value"
	tp "github.com/xlab/treeprint"
)

// Dump renders the shape of a style tree for debugging. Selectors
// become branches, declarations become leaves, nested bodies recurse.
func Dump(t Tree) string {
	printer := tp.New()
	for _, rule := range t.rules {
		dumpRule(printer, rule)
	}
	return printer.String()
}

func dumpRule(printer tp.Tree, rule Rule) {
	branch := printer.AddBranch(rule.Selector)
	for _, d := range rule.Body.decls {
		var leaf value.T
		var sub Body
		var err error
		switch m := d.Value.Match(); m {
		case m.Leaf(&leaf):
			branch.AddNode(d.Key + ": " + leaf.String())
		case m.Nested(&sub):
			dumpRule(branch, Rule{Selector: d.Key, Body: sub})
		case m.Invalid(&err):
			branch.AddNode(d.Key + ": <" + err.Error() + ">")
		}
	}
}
