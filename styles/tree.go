package styles

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/cssgen/value"
)

// Tree is an ordered collection of style rules. An empty instance is
// usable as an empty tree, i.e. this is legal:
//
//     tree := styles.Tree{}.Rule(".layer", body)
//
// returning a tree containing a single rule for selector ".layer".
// Rules appear in output in insertion order; adding a selector twice
// yields two independent rules.
type Tree struct {
	rules []Rule
}

// Rule pairs a selector with the body of declarations it selects.
type Rule struct {
	Selector string
	Body     Body
}

// Rule returns a tree extended by a rule for the given selector.
// The receiver is left untouched.
func (t Tree) Rule(selector string, body Body) Tree {
	rules := make([]Rule, len(t.rules), len(t.rules)+1)
	copy(rules, t.rules)
	return Tree{rules: append(rules, Rule{Selector: selector, Body: body})}
}

// Rules returns the rules of the tree, in insertion order.
func (t Tree) Rules() []Rule {
	return t.rules
}

// IsEmpty denotes whether the tree contains any rules.
func (t Tree) IsEmpty() bool {
	return len(t.rules) == 0
}

// --- Bodies ------------------------------------------------------------

// Decl is a single property declaration within a rule body.
type Decl struct {
	Key   string
	Value PropertyValue
}

// Body is an ordered set of property declarations. Like Tree it has
// value semantics; Prop and Block return extended copies.
type Body struct {
	decls []Decl
}

// Prop returns a body extended by a leaf declaration. v may be any
// type package value accepts: bool, number, string, or a value.T
// (possibly a list). Unsupported types are kept and reported when the
// body is rendered.
func (b Body) Prop(key string, v interface{}) Body {
	return b.with(Decl{Key: key, Value: Leaf(v)})
}

// Block returns a body extended by a nested sub-body. The key of a
// nested declaration is treated as a selector of its own, one level
// deeper; this models at-rules and keyframe blocks.
func (b Body) Block(key string, sub Body) Body {
	return b.with(Decl{Key: key, Value: Nested(sub)})
}

func (b Body) with(d Decl) Body {
	decls := make([]Decl, len(b.decls), len(b.decls)+1)
	copy(decls, b.decls)
	return Body{decls: append(decls, d)}
}

// Decls returns the declarations of the body, in insertion order.
func (b Body) Decls() []Decl {
	return b.decls
}

// IsEmpty denotes whether the body contains any declarations.
func (b Body) IsEmpty() bool {
	return len(b.decls) == 0
}

// --- Property values ----------------------------------------------------

type valueKind uint8

const (
	invalidValue valueKind = iota
	leafValue
	nestedValue
)

// PropertyValue is an option type for the value of a declaration:
// either a leaf scalar/list, or a nested body. The two cases are
// decided with a Matcher:
//
//     var v value.T
//     var sub styles.Body
//     switch m := pv.Match(); m {
//     case m.Leaf(&v):
//     	// v holds the leaf value
//     case m.Nested(&sub):
//     	// sub holds the nested body
//     }
//
// A PropertyValue constructed from an unsupported Go type matches
// neither case; its Invalid case carries the conversion error.
type PropertyValue struct {
	kind   valueKind
	leaf   value.T
	nested Body
	err    error
}

// Leaf wraps a scalar or list property value.
func Leaf(v interface{}) PropertyValue {
	t, err := value.Of(v)
	if err != nil {
		tracer().Errorf("leaf declaration: %v", err)
		return PropertyValue{kind: invalidValue, err: err}
	}
	return PropertyValue{kind: leafValue, leaf: t}
}

// Nested wraps a sub-body.
func Nested(sub Body) PropertyValue {
	return PropertyValue{kind: nestedValue, nested: sub}
}

// Match returns a Matcher used to decompose a PropertyValue.
func (pv PropertyValue) Match() *Matcher {
	return &Matcher{pv: pv}
}

// Matcher is the pattern-matching helper for PropertyValue.
type Matcher struct {
	pv PropertyValue
}

func (m *Matcher) Leaf(v *value.T) *Matcher {
	if m.pv.kind == leafValue {
		if v != nil {
			*v = m.pv.leaf
		}
		return m
	}
	return nil
}

func (m *Matcher) Nested(sub *Body) *Matcher {
	if m.pv.kind == nestedValue {
		if sub != nil {
			*sub = m.pv.nested
		}
		return m
	}
	return nil
}

func (m *Matcher) Invalid(err *error) *Matcher {
	if m.pv.kind != invalidValue {
		return nil
	}
	if err != nil {
		if m.pv.err != nil {
			*err = m.pv.err
		} else {
			*err = value.ErrUnsupported
		}
	}
	return m
}
