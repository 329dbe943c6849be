package styles

import (
	"testing"
)

func TestPropertyNameFromIdent(t *testing.T) {
	name, known := PropertyName("background_color")
	if !known || name != "background-color" {
		t.Errorf("expected background_color to resolve to background-color, is %q", name)
	}
	name, known = PropertyName("z_index")
	if !known || name != "z-index" {
		t.Errorf("expected z_index to resolve to z-index, is %q", name)
	}
}

func TestPropertyNameCanonical(t *testing.T) {
	name, known := PropertyName("background-color")
	if !known || name != "background-color" {
		t.Errorf("expected canonical name to resolve to itself, is %q", name)
	}
}

func TestPropertyNameUnknown(t *testing.T) {
	name, known := PropertyName("background-color-typo")
	if known {
		t.Error("expected typo name to be flagged unknown, isn't")
	}
	if name != "background-color-typo" {
		t.Errorf("expected unknown name to pass through unchanged, is %q", name)
	}
	// vendor prefixed and SVG-only names are not in the table
	if _, known = PropertyName("-webkit-line-clamp"); known {
		t.Error("expected vendor prefixed name to be flagged unknown, isn't")
	}
	if _, known = PropertyName("gradientUnits"); known {
		t.Error("expected SVG attribute name to be flagged unknown, isn't")
	}
}

// Every entry of the table resolves stably in both spellings.
func TestPropertyNameRoundTrip(t *testing.T) {
	for ident, canonical := range propertyFromIdent {
		if name, known := PropertyName(ident); !known || name != canonical {
			t.Errorf("expected %q to resolve to %q, is %q", ident, canonical, name)
		}
		if name, known := PropertyName(canonical); !known || name != canonical {
			t.Errorf("expected %q to resolve to itself, is %q", canonical, name)
		}
	}
}
