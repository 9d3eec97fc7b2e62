package elements

import (
	"sort"
	"time"
)

// Element is one chemical element record, decoded and normalized once at
// load time. Optional numeric attributes are pointers; nil means the
// upstream dataset did not carry the value.
type Element struct {
	Number int    `json:"number"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`

	Period int `json:"period"`
	Group  int `json:"group"`
	XPos   int `json:"xpos"`
	YPos   int `json:"ypos"`

	Category string `json:"category"`

	AtomicMass            float64 `json:"atomic_mass"`
	Phase                 string  `json:"phase"`
	ElectronConfiguration string  `json:"electron_configuration"`
	SemanticConfiguration string  `json:"electron_configuration_semantic,omitempty"`

	Summary      string `json:"summary,omitempty"`
	DiscoveredBy string `json:"discovered_by,omitempty"`
	NamedBy      string `json:"named_by,omitempty"`

	Melt              *float64 `json:"melt,omitempty"`
	Boil              *float64 `json:"boil,omitempty"`
	Density           *float64 `json:"density,omitempty"`
	Electronegativity *float64 `json:"electronegativity_pauling,omitempty"`
	AtomicRadius      *float64 `json:"atomic_radius,omitempty"`
	ElectronAffinity  *float64 `json:"electron_affinity,omitempty"`

	OxidationStates    string    `json:"oxidation_states,omitempty"`
	IonizationEnergies []float64 `json:"ionization_energies,omitempty"`
}

// PicklistEntry is one entry of the direct element picklist.
type PicklistEntry struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Dataset is an ordered, immutable collection of elements. It is created
// wholesale by the Loader and replaced wholesale on refresh; callers must
// never mutate the records it hands out.
type Dataset struct {
	elements  []Element
	byNumber  map[int]*Element
	Fallback  bool
	Stale     bool
	FetchedAt time.Time
}

// NewDataset builds a dataset and its number index from the given records.
func NewDataset(list []Element) *Dataset {
	ds := &Dataset{
		elements: list,
		byNumber: make(map[int]*Element, len(list)),
	}
	for i := range ds.elements {
		e := &ds.elements[i]
		if _, dup := ds.byNumber[e.Number]; !dup {
			ds.byNumber[e.Number] = e
		}
	}
	return ds
}

// Elements returns the records in dataset order.
func (d *Dataset) Elements() []Element { return d.elements }

// Len returns the number of elements.
func (d *Dataset) Len() int { return len(d.elements) }

// ByNumber looks up an element by its atomic number.
func (d *Dataset) ByNumber(n int) (*Element, bool) {
	e, ok := d.byNumber[n]
	return e, ok
}

// Contains reports whether an atomic number is part of the dataset.
func (d *Dataset) Contains(n int) bool {
	_, ok := d.byNumber[n]
	return ok
}

// Categories returns the sorted set of category labels in the dataset.
func (d *Dataset) Categories() []string {
	return d.distinct(func(e *Element) string { return e.Category })
}

// Phases returns the sorted set of phase labels in the dataset.
func (d *Dataset) Phases() []string {
	return d.distinct(func(e *Element) string { return e.Phase })
}

func (d *Dataset) distinct(key func(*Element) string) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range d.elements {
		k := key(&d.elements[i])
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Picklist returns all elements ordered alphabetically by name.
func (d *Dataset) Picklist() []PicklistEntry {
	out := make([]PicklistEntry, 0, len(d.elements))
	for i := range d.elements {
		e := &d.elements[i]
		out = append(out, PicklistEntry{Number: e.Number, Name: e.Name, Symbol: e.Symbol})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
