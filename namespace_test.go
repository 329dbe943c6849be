package cssgen_test

import (
	"testing"

	"github.com/npillmayer/cssgen"
)

func TestSelectorNamespacedRoot(t *testing.T) {
	if s := cssgen.SelectorNamespaced("frame", "."); s != ".frame" {
		t.Errorf("expected '.' to namespace to .frame, is %q", s)
	}
	if s := cssgen.SelectorNamespaced("frame", "  .  "); s != ".frame" {
		t.Errorf("expected padded '.' to namespace to .frame, is %q", s)
	}
}

func TestSelectorNamespacedNoClasses(t *testing.T) {
	if s := cssgen.SelectorNamespaced("frame", "button"); s != "button" {
		t.Errorf("expected element selector to pass through, is %q", s)
	}
	if s := cssgen.SelectorNamespaced("frame", "rect"); s != "rect" {
		t.Errorf("expected element selector to pass through, is %q", s)
	}
}

func TestSelectorNamespacedSingleClass(t *testing.T) {
	if s := cssgen.SelectorNamespaced("frame", ".text-anim"); s != ".frame__text-anim" {
		t.Errorf("expected .frame__text-anim, is %q", s)
	}
}

func TestSelectorNamespacedDescendants(t *testing.T) {
	s := cssgen.SelectorNamespaced("frame", ".hide .corner")
	if s != ".frame__hide .frame__corner" {
		t.Errorf("expected .frame__hide .frame__corner, is %q", s)
	}
	s = cssgen.SelectorNamespaced("frame", ".hide button")
	if s != ".frame__hide button" {
		t.Errorf("expected element token to stay untouched, is %q", s)
	}
}

func TestSelectorNamespacedSelectorList(t *testing.T) {
	s := cssgen.SelectorNamespaced("frame", ".expand_corners,.hovered")
	if s != ".frame__expand_corners,.frame__hovered" {
		t.Errorf("expected comma list to be rewritten per group, is %q", s)
	}
	s = cssgen.SelectorNamespaced("frame", ".expand_corners,.hovered button .highlight")
	if s != ".frame__expand_corners,.frame__hovered button .frame__highlight" {
		t.Errorf("expected mixed list/descendant rewrite, is %q", s)
	}
}

func TestSelectorNamespacedCompoundClasses(t *testing.T) {
	s := cssgen.SelectorNamespaced("frame", ".expand_corners.hovered button .highlight")
	if s != ".frame__expand_corners.frame__hovered button .frame__highlight" {
		t.Errorf("expected compound classes to stay adjacent, is %q", s)
	}
}

func TestClassNamespaced(t *testing.T) {
	if s := cssgen.ClassNamespaced("frame", "text-anim"); s != "frame__text-anim" {
		t.Errorf("expected frame__text-anim, is %q", s)
	}
	if s := cssgen.ClassNamespaced("frame", ""); s != "frame" {
		t.Errorf("expected empty class list to yield the namespace, is %q", s)
	}
	if s := cssgen.ClassNamespaced("frame", "hide corner"); s != "frame__hide frame__corner" {
		t.Errorf("expected every class to be namespaced, is %q", s)
	}
}
