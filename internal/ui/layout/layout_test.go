package layout

import (
	"strings"
	"testing"
)

func TestRenderTabs(t *testing.T) {
	tabs := []Tab{{Label: "Home"}, {Label: "Goals", Badge: 2}, {Label: "Study"}}

	wide := RenderTabs(tabs, 0, 120)
	for _, want := range []string{"1 Home", "2 Goals (2)", "3 Study"} {
		if !strings.Contains(wide, want) {
			t.Errorf("wide tabs missing %q: %q", want, wide)
		}
	}

	compact := RenderTabs(tabs, 0, 70)
	if !strings.Contains(compact, "1 Home") {
		t.Errorf("compact tabs should keep the active label: %q", compact)
	}
	if strings.Contains(compact, "Study") {
		t.Errorf("compact tabs should drop inactive labels: %q", compact)
	}
	if !strings.Contains(compact, "2 (2)") {
		t.Errorf("compact tabs should keep badges: %q", compact)
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected narrow terminal to be too small")
	}
	if !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("expected short terminal to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should be usable")
	}
}
