package cssgen

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cssgen/styles"
	"github.com/npillmayer/cssgen/value"
)

// indentUnit is the indentation per nesting level in pretty mode.
const indentUnit = "    "

// Renderer converts style trees to CSS text. The zero value renders
// compact, lenient and without a namespace; deviations are configured
// at construction time with options:
//
//     r := cssgen.New(cssgen.WithNamespace("frame"), cssgen.Pretty())
//     css, err := r.Render(tree)
//
// Renderers are immutable values; a renderer may be shared and used
// for concurrent renders without coordination.
type Renderer struct {
	namespace string
	withNS    bool
	pretty    bool
	strict    bool
}

// Option is a type to help configuring renderers at creation time.
type Option func(Renderer) Renderer

// New creates a Renderer with options, if you need any.
func New(opts ...Option) Renderer {
	var r Renderer
	for _, option := range opts {
		r = option(r)
	}
	return r
}

// WithNamespace is an option to rewrite class selectors with a
// namespace prefix (see SelectorNamespaced).
func WithNamespace(ns string) Option {
	return func(r Renderer) Renderer {
		r.namespace = ns
		r.withNS = true
		return r
	}
}

// Pretty is an option to emit indented multi-line output instead of
// the compact single-line form.
func Pretty() Option {
	return func(r Renderer) Renderer {
		r.pretty = true
		return r
	}
}

// Strict is an option making unknown property names a hard error
// instead of passing them through. Strictness is fixed per renderer,
// not per call.
func Strict() Option {
	return func(r Renderer) Renderer {
		r.strict = true
		return r
	}
}

// Render walks the style tree and returns the resulting CSS text.
// Rule order is the tree's insertion order. On error no partial output
// is returned.
func (r Renderer) Render(tree styles.Tree) (string, error) {
	var out strings.Builder
	for _, rule := range tree.Rules() {
		if r.pretty {
			out.WriteString("\n")
		}
		if err := r.renderRule(&out, rule, 0); err != nil {
			tracer().Errorf(err.Error())
			return "", err
		}
	}
	if r.pretty && !tree.IsEmpty() {
		out.WriteString("\n")
	}
	return out.String(), nil
}

// RenderInline renders a bare declaration body without any enclosing
// selector, the form used for the style attribute of an element.
// Inline style is always compact:
//
//     body := styles.Body{}.Prop("background_color", "red")
//     s, err := r.RenderInline(body)  // "background-color:red;"
func (r Renderer) RenderInline(body styles.Body) (string, error) {
	inline := r
	inline.pretty = false
	var out strings.Builder
	if err := inline.renderBody(&out, "", body, -1); err != nil {
		tracer().Errorf(err.Error())
		return "", err
	}
	return out.String(), nil
}

// renderRule emits one selector block: the (possibly namespaced)
// selector, braces, and the rule's body one level deeper.
func (r Renderer) renderRule(out *strings.Builder, rule styles.Rule, indent int) error {
	selector := rule.Selector
	if r.withNS {
		selector = SelectorNamespaced(r.namespace, selector)
	}
	if r.pretty {
		writeIndent(out, indent)
		out.WriteString(selector)
		out.WriteString(" {\n")
	} else {
		out.WriteString(selector)
		out.WriteString("{")
	}
	if err := r.renderBody(out, rule.Selector, rule.Body, indent); err != nil {
		return err
	}
	if r.pretty {
		writeIndent(out, indent)
	}
	out.WriteString("}")
	return nil
}

// renderBody emits the declarations of a body at indent+1. Nested
// declarations recurse into renderRule with their key acting as the
// selector; the parent block stays open until all inner blocks have
// been emitted.
func (r Renderer) renderBody(out *strings.Builder, selector string, body styles.Body, indent int) error {
	for _, decl := range body.Decls() {
		var leaf value.T
		var sub styles.Body
		var err error
		switch m := decl.Value.Match(); m {
		case m.Nested(&sub):
			inner := styles.Rule{Selector: decl.Key, Body: sub}
			if err := r.renderRule(out, inner, indent+1); err != nil {
				return err
			}
			if r.pretty {
				out.WriteString("\n")
			}
		case m.Leaf(&leaf):
			name, known := styles.PropertyName(decl.Key)
			if !known {
				if r.strict {
					return UnknownPropertyError{Key: decl.Key, Selector: selector}
				}
				tracer().Debugf("property %q not in table, passing through", decl.Key)
			}
			if r.pretty {
				writeIndent(out, indent+1)
				out.WriteString(name)
				out.WriteString(": ")
			} else {
				out.WriteString(name)
				out.WriteString(":")
			}
			out.WriteString(leaf.String())
			out.WriteString(";")
			if r.pretty {
				out.WriteString("\n")
			}
		case m.Invalid(&err):
			if selector != "" {
				return fmt.Errorf("%w (property %q in selector %q)", err, decl.Key, selector)
			}
			return fmt.Errorf("%w (property %q)", err, decl.Key)
		}
	}
	return nil
}

func writeIndent(out *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		out.WriteString(indentUnit)
	}
}
