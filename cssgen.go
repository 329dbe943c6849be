package cssgen

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/cssgen/styles"
)

// CSS renders a style tree in compact form:
//
//     .layer{background-color:red;border:1px solid green;}.hide .layer{opacity:0;}
//
// Unknown property names pass through unchanged; use New(Strict())
// for a renderer which refuses them.
func CSS(tree styles.Tree) (string, error) {
	return New().Render(tree)
}

// CSSPretty renders a style tree with newlines and 4-space indentation:
//
//     .layer {
//         background-color: red;
//         border: 1px solid green;
//     }
//     .hide .layer {
//         opacity: 0;
//     }
func CSSPretty(tree styles.Tree) (string, error) {
	return New(Pretty()).Render(tree)
}

// CSSNamespaced renders a style tree in compact form, rewriting class
// selectors with the namespace prefix (see SelectorNamespaced).
func CSSNamespaced(ns string, tree styles.Tree) (string, error) {
	return New(WithNamespace(ns)).Render(tree)
}

// CSSNamespacedPretty renders a style tree with indentation, rewriting
// class selectors with the namespace prefix.
func CSSNamespacedPretty(ns string, tree styles.Tree) (string, error) {
	return New(WithNamespace(ns), Pretty()).Render(tree)
}

// InlineStyle renders a bare declaration body for use in the style
// attribute of an element:
//
//     body := styles.Body{}.Prop("background_color", "red")
//     s, err := cssgen.InlineStyle(body)  // "background-color:red;"
func InlineStyle(body styles.Body) (string, error) {
	return New().RenderInline(body)
}
