package elements

import "testing"

func filterDataset() *Dataset {
	return NewDataset([]Element{
		{Number: 1, Symbol: "H", Name: "Hydrogen", Category: "diatomic nonmetal", Phase: "gas"},
		{Number: 2, Symbol: "He", Name: "Helium", Category: "noble gas", Phase: "gas"},
		{Number: 3, Symbol: "Li", Name: "Lithium", Category: "alkali metal", Phase: "solid"},
		{Number: 26, Symbol: "Fe", Name: "Iron", Category: "transition metal", Phase: "solid"},
	})
}

func numbers(list []*Element) []int {
	out := make([]int, len(list))
	for i, e := range list {
		out[i] = e.Number
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterZeroCriteriaMatchesAll(t *testing.T) {
	ds := filterDataset()
	got := numbers(ds.Filter(Criteria{}))
	if !equalInts(got, []int{1, 2, 3, 26}) {
		t.Errorf("Filter(zero) = %v", got)
	}
}

func TestFilterByCategory(t *testing.T) {
	ds := filterDataset()
	got := numbers(ds.Filter(Criteria{Categories: []string{"Noble Gas"}}))
	if !equalInts(got, []int{2}) {
		t.Errorf("category filter = %v", got)
	}
}

func TestFilterByPhase(t *testing.T) {
	ds := filterDataset()
	got := numbers(ds.Filter(Criteria{Phases: []string{"solid"}}))
	if !equalInts(got, []int{3, 26}) {
		t.Errorf("phase filter = %v", got)
	}
}

func TestFilterByQuery(t *testing.T) {
	ds := filterDataset()

	tests := []struct {
		query string
		want  []int
	}{
		{"iron", []int{26}},
		{"FE", []int{26}},
		{"h", []int{1, 2, 3}}, // Hydrogen, Helium, lit-H-ium by name substring
		{"xyz", nil},
	}
	for _, tt := range tests {
		got := numbers(ds.Filter(Criteria{Query: tt.query}))
		if !equalInts(got, tt.want) {
			t.Errorf("query %q = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilterCombined(t *testing.T) {
	ds := filterDataset()
	got := numbers(ds.Filter(Criteria{
		Categories: []string{"alkali metal", "transition metal"},
		Phases:     []string{"solid"},
		Query:      "li",
	}))
	if !equalInts(got, []int{3}) {
		t.Errorf("combined filter = %v", got)
	}
}

func TestCriteriaIsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Errorf("empty criteria not zero")
	}
	if (Criteria{Query: "h"}).IsZero() {
		t.Errorf("query criteria reported zero")
	}
	if !(Criteria{Query: "   "}).IsZero() {
		t.Errorf("whitespace query reported non-zero")
	}
}

func TestDatasetCategoriesAndPhases(t *testing.T) {
	ds := filterDataset()

	cats := ds.Categories()
	want := []string{"alkali metal", "diatomic nonmetal", "noble gas", "transition metal"}
	if len(cats) != len(want) {
		t.Fatalf("Categories() = %v", cats)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, cats[i], want[i])
		}
	}

	phases := ds.Phases()
	if len(phases) != 2 || phases[0] != "gas" || phases[1] != "solid" {
		t.Errorf("Phases() = %v", phases)
	}
}

func TestDatasetPicklistSortedByName(t *testing.T) {
	ds := filterDataset()
	pick := ds.Picklist()
	if len(pick) != 4 {
		t.Fatalf("picklist has %d entries", len(pick))
	}
	for i := 1; i < len(pick); i++ {
		if pick[i-1].Name > pick[i].Name {
			t.Errorf("picklist not sorted: %q before %q", pick[i-1].Name, pick[i].Name)
		}
	}
}
