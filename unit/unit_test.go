package unit

import (
	"testing"

	"github.com/npillmayer/cssgen/value"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestUnits(t *testing.T) {
	if s := Px(1); s != "1px" {
		t.Errorf("expected 1px, is %q", s)
	}
	if s := Mm(1); s != "1mm" {
		t.Errorf("expected 1mm, is %q", s)
	}
	if s := Cm(2); s != "2cm" {
		t.Errorf("expected 2cm, is %q", s)
	}
	if s := Pt(5); s != "5pt" {
		t.Errorf("expected 5pt, is %q", s)
	}
	if s := Pc(5); s != "5pc" {
		t.Errorf("expected 5pc, is %q", s)
	}
	if s := In(2.5); s != "2.5in" {
		t.Errorf("expected 2.5in, is %q", s)
	}
	if s := Ch(1); s != "1ch" {
		t.Errorf("expected 1ch, is %q", s)
	}
	if s := Deg(10); s != "10deg" {
		t.Errorf("expected 10deg, is %q", s)
	}
	if s := Rad(10); s != "10rad" {
		t.Errorf("expected 10rad, is %q", s)
	}
	if s := Ms(500); s != "500ms" {
		t.Errorf("expected 500ms, is %q", s)
	}
	if s := S(5); s != "5s" {
		t.Errorf("expected 5s, is %q", s)
	}
}

func TestUnitLists(t *testing.T) {
	if s := Px(10, 12); s != "10px 12px" {
		t.Errorf("expected 10px 12px, is %q", s)
	}
	if s := Px(1, 2, 3, 4, 5); s != "1px 2px 3px 4px 5px" {
		t.Errorf("expected every element suffixed, is %q", s)
	}
	if s := Percent(10, 12); s != "10% 12%" {
		t.Errorf("expected 10%% 12%%, is %q", s)
	}
	if s := In(10, 12); s != "10in 12in" {
		t.Errorf("expected 10in 12in, is %q", s)
	}
	// list values are suffixed per element as well
	if s := Px(value.List(value.Int(10), value.Int(12))); s != "10px 12px" {
		t.Errorf("expected list value to be suffixed per element, is %q", s)
	}
}

func TestPercentScalar(t *testing.T) {
	if s := Percent(100); s != "100%" {
		t.Errorf("expected 100%%, is %q", s)
	}
}

func TestColorFns(t *testing.T) {
	if s := Rgb(0, 255, 0); s != "rgb(0, 255, 0)" {
		t.Errorf("expected rgb(0, 255, 0), is %q", s)
	}
	if s := Rgba(0, 0, 0, 0.5); s != "rgba(0, 0, 0, 0.5)" {
		t.Errorf("expected rgba(0, 0, 0, 0.5), is %q", s)
	}
	if s := URL("img/bg.png"); s != `url("img/bg.png")` {
		t.Errorf("expected quoted url(), is %q", s)
	}
}

func TestDimenBridge(t *testing.T) {
	if s := Du(10 * dimen.PT); s != "10pt" {
		t.Errorf("expected 10pt, is %q", s)
	}
	p := Pct(percent.FromInt(80))
	t.Logf("Pct(80) = %q", p)
	if p == "" {
		t.Error("expected percentage to render non-empty, doesn't")
	}
}
