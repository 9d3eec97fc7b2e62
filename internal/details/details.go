// Package details renders the structured details view for a selected
// element. Rendering is pure given its inputs and never fails: missing
// attributes and unparseable sub-sections degrade to explicit
// "not available" placeholders.
package details

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"elemex/internal/colors"
	"elemex/internal/elements"
)

// View is the full details panel for one element, or a prompt-to-select
// placeholder when nothing is selected.
type View struct {
	Available bool   `json:"available"`
	Prompt    string `json:"prompt,omitempty"`

	Header     *Header    `json:"header,omitempty"`
	Overview   *Overview  `json:"overview,omitempty"`
	Physical   []Property `json:"physical,omitempty"`
	Chemical   []Property `json:"chemical,omitempty"`
	Shells     *ShellViz  `json:"shells,omitempty"`
	PointCloud *CloudViz  `json:"point_cloud,omitempty"`
}

// Header carries the card headline values.
type Header struct {
	Symbol     string  `json:"symbol"`
	Number     int     `json:"number"`
	Name       string  `json:"name"`
	AtomicMass float64 `json:"atomic_mass"`
	Color      string  `json:"color"`
}

// Overview is the summary block beneath the header.
type Overview struct {
	Summary               string `json:"summary"`
	Category              string `json:"category"`
	Period                int    `json:"period"`
	Group                 int    `json:"group"`
	Phase                 string `json:"phase"`
	DiscoveredBy          string `json:"discovered_by"`
	NamedBy               string `json:"named_by"`
	ElectronConfiguration string `json:"electron_configuration"`
}

// Property is one row of a property table.
type Property struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

const selectPrompt = "Select an element from the periodic table to view its details."

// Render produces the details view for the given atomic number. A number
// of 0 (no selection) or one not present in the dataset yields the
// placeholder prompt view.
func Render(number int, ds *elements.Dataset) View {
	if number <= 0 || ds == nil {
		return View{Prompt: selectPrompt}
	}
	e, ok := ds.ByNumber(number)
	if !ok {
		return View{Prompt: selectPrompt}
	}

	cfg := e.ElectronConfiguration
	if e.SemanticConfiguration != "" {
		cfg = e.SemanticConfiguration
	}

	return View{
		Available: true,
		Header: &Header{
			Symbol:     e.Symbol,
			Number:     e.Number,
			Name:       e.Name,
			AtomicMass: e.AtomicMass,
			Color:      colors.ColorOf(e.Category),
		},
		Overview: &Overview{
			Summary:               defaultText(e.Summary, "No summary available."),
			Category:              titleCase(e.Category),
			Period:                e.Period,
			Group:                 e.Group,
			Phase:                 titleCase(e.Phase),
			DiscoveredBy:          defaultText(e.DiscoveredBy, "N/A"),
			NamedBy:               defaultText(e.NamedBy, "N/A"),
			ElectronConfiguration: defaultText(cfg, "N/A"),
		},
		Physical:   physicalProperties(e),
		Chemical:   chemicalProperties(e),
		Shells:     buildShellViz(e.ElectronConfiguration),
		PointCloud: buildCloudViz(e.Symbol),
	}
}

func physicalProperties(e *elements.Element) []Property {
	return []Property{
		{"Melting Point", withUnit(e.Melt, "K")},
		{"Boiling Point", withUnit(e.Boil, "K")},
		{"Density", withUnit(e.Density, "g/cm³")},
		{"Phase at STP", titleCase(e.Phase)},
		{"Electronegativity (Pauling)", plain(e.Electronegativity)},
		{"Atomic Radius", withUnit(e.AtomicRadius, "pm")},
	}
}

func chemicalProperties(e *elements.Element) []Property {
	return []Property{
		{"Atomic Number", fmt.Sprintf("%d", e.Number)},
		{"Atomic Mass", fmt.Sprintf("%.4f u", e.AtomicMass)},
		{"Oxidation States", defaultText(e.OxidationStates, "N/A")},
		{"Electron Affinity", withUnit(e.ElectronAffinity, "kJ/mol")},
		{"Ionization Energies", ionizationSummary(e.IonizationEnergies)},
	}
}

// ionizationSummary shows the first three energies in eV; longer lists are
// truncated with an ellipsis.
func ionizationSummary(energies []float64) string {
	if len(energies) == 0 {
		return "N/A"
	}
	shown := energies
	truncated := false
	if len(shown) > 3 {
		shown = shown[:3]
		truncated = true
	}
	parts := make([]string, len(shown))
	for i, v := range shown {
		parts[i] = fmt.Sprintf("%.1f", v)
	}
	s := strings.Join(parts, ", ") + " eV"
	if truncated {
		s += " …"
	}
	return s
}

func withUnit(v *float64, unit string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g %s", *v, unit)
}

func plain(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g", *v)
}

func defaultText(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// titleCase uppercases the first rune of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
