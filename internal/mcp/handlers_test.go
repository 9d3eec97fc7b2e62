package mcp

import (
	"strings"
	"testing"

	"elemex/internal/elements"
)

func testDataset() *elements.Dataset {
	return elements.NewDataset([]elements.Element{
		{Number: 1, Symbol: "H", Name: "Hydrogen", Period: 1, Group: 1,
			Category: "diatomic nonmetal", Phase: "gas", AtomicMass: 1.008,
			ElectronConfiguration: "1s1"},
		{Number: 2, Symbol: "He", Name: "Helium", Period: 1, Group: 18,
			Category: "noble gas", Phase: "gas", AtomicMass: 4.0026,
			ElectronConfiguration: "1s2"},
		{Number: 26, Symbol: "Fe", Name: "Iron", Period: 4, Group: 8,
			Category: "transition metal", Phase: "solid", AtomicMass: 55.845},
	})
}

func TestFindElement(t *testing.T) {
	ds := testDataset()

	tests := []struct {
		key  string
		want int // 0 means not found
	}{
		{"26", 26},
		{"Fe", 26},
		{"fe", 26},
		{"Iron", 26},
		{"IRON", 26},
		{" He ", 2},
		{"999", 0},
		{"Unobtainium", 0},
		{"", 0},
	}
	for _, tt := range tests {
		e := findElement(ds, tt.key)
		switch {
		case tt.want == 0 && e != nil:
			t.Errorf("findElement(%q) = %d, want no match", tt.key, e.Number)
		case tt.want != 0 && (e == nil || e.Number != tt.want):
			t.Errorf("findElement(%q) = %v, want %d", tt.key, e, tt.want)
		}
	}
}

func TestFormatElement(t *testing.T) {
	ds := testDataset()
	e, _ := ds.ByNumber(1)

	out := formatElement(e, ds)
	for _, want := range []string{
		"Hydrogen",
		"(H, 1)",
		"1.0080 u",
		"Category: Diatomic Nonmetal",
		"Electron configuration: 1s1",
		"Physical properties:",
		"Chemical properties:",
		"Atomic Number: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("formatted element missing %q:\n%s", want, out)
		}
	}
}

func TestFormatList(t *testing.T) {
	ds := testDataset()
	out := formatList(ds.Filter(elements.Criteria{Phases: []string{"gas"}}))

	if !strings.HasPrefix(out, "2 element(s):") {
		t.Errorf("header = %q", out)
	}
	if !strings.Contains(out, "Hydrogen") || !strings.Contains(out, "Helium") {
		t.Errorf("list missing elements:\n%s", out)
	}
	if strings.Contains(out, "Iron") {
		t.Errorf("list contains unmatched element:\n%s", out)
	}
}
