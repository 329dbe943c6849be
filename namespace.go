package cssgen

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// SelectorNamespaced prepends a namespace to the class tokens of a
// selector. Other selector tokens, such as element selectors, id
// selectors or pseudo selectors, are left untouched:
//
//     SelectorNamespaced("frame", ".text-anim")    // ".frame__text-anim"
//     SelectorNamespaced("frame", ".hide .corner") // ".frame__hide .frame__corner"
//     SelectorNamespaced("frame", ".hide button")  // ".frame__hide button"
//
// Compound classes stay adjacent and comma-separated selector lists
// keep their commas:
//
//     SelectorNamespaced("frame", ".expand.hovered")  // ".frame__expand.frame__hovered"
//     SelectorNamespaced("frame", ".expand,.hovered") // ".frame__expand,.frame__hovered"
//
// The degenerate selector "." denotes the namespace root itself and
// yields the bare namespace class ".frame".
func SelectorNamespaced(namespace string, selector string) string {
	sel := strings.TrimSpace(selector)
	if sel == "." {
		return "." + namespace
	}
	parts := strings.Split(sel, " ")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if !strings.HasPrefix(part, ".") {
			parts[i] = part // element, attribute or pseudo selector
			continue
		}
		groups := strings.Split(strings.TrimLeft(part, "."), ",")
		for j, group := range groups {
			classes := strings.Split(strings.TrimLeft(group, "."), ".")
			var compound strings.Builder
			for _, class := range classes {
				compound.WriteString(".")
				compound.WriteString(namespace)
				compound.WriteString("__")
				compound.WriteString(class)
			}
			groups[j] = compound.String()
		}
		parts[i] = strings.Join(groups, ",")
	}
	return strings.Join(parts, " ")
}

// ClassNamespaced prepends a namespace to plain class names, the form
// used when assigning classes to an element (no leading dots):
//
//     ClassNamespaced("frame", "text-anim")  // "frame__text-anim"
//
// An empty class string yields the namespace itself. Multiple
// space-separated classes are each namespaced.
func ClassNamespaced(namespace string, classNames string) string {
	trimmed := strings.TrimSpace(classNames)
	if trimmed == "" {
		return namespace
	}
	parts := strings.Split(trimmed, " ")
	for i, part := range parts {
		parts[i] = namespace + "__" + strings.TrimSpace(part)
	}
	return strings.Join(parts, " ")
}
