package elements

import (
	"encoding/json"
	"fmt"
	"strings"
)

// upstreamDocument is the top-level shape of the upstream JSON.
type upstreamDocument struct {
	Elements []rawElement `json:"elements"`
}

// rawElement mirrors one upstream element object before normalization.
// Numeric identity fields use json.Number because some mirrors of the
// dataset encode them as floats.
type rawElement struct {
	Name                  string      `json:"name"`
	Symbol                string      `json:"symbol"`
	Number                json.Number `json:"number"`
	Category              string      `json:"category"`
	Period                json.Number `json:"period"`
	Group                 json.Number `json:"group"`
	XPos                  json.Number `json:"xpos"`
	YPos                  json.Number `json:"ypos"`
	AtomicMass            float64     `json:"atomic_mass"`
	Phase                 string      `json:"phase"`
	ElectronConfiguration string      `json:"electron_configuration"`
	SemanticConfiguration string      `json:"electron_configuration_semantic"`
	Summary               string      `json:"summary"`
	DiscoveredBy          string      `json:"discovered_by"`
	NamedBy               string      `json:"named_by"`
	Melt                  *float64    `json:"melt"`
	Boil                  *float64    `json:"boil"`
	Density               *float64    `json:"density"`
	Electronegativity     *float64    `json:"electronegativity_pauling"`
	AtomicRadius          *float64    `json:"atomic_radius"`
	ElectronAffinity      *float64    `json:"electron_affinity"`
	OxidationStates       string      `json:"oxidation_states"`
	IonizationEnergies    []float64   `json:"ionization_energies"`
}

// parseDocument decodes the upstream payload and normalizes every record.
// It fails only on malformed JSON or a missing/empty "elements" key; per-field
// problems are absorbed by normalization defaults.
func parseDocument(payload []byte) ([]Element, error) {
	var doc upstreamDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decoding element dataset: %w", err)
	}
	if len(doc.Elements) == 0 {
		return nil, fmt.Errorf("element dataset has no %q entries", "elements")
	}

	out := make([]Element, 0, len(doc.Elements))
	for i := range doc.Elements {
		out = append(out, normalize(&doc.Elements[i]))
	}
	return out, nil
}

// normalize converts a raw record into a fully typed Element. Missing
// numerics become 0, missing strings become "Unknown"/"unknown", so
// downstream code never re-derives defaults.
func normalize(r *rawElement) Element {
	e := Element{
		Name:                  defaultString(r.Name, "Unknown"),
		Symbol:                defaultString(r.Symbol, "?"),
		Number:                toInt(r.Number),
		Category:              strings.ToLower(defaultString(r.Category, "unknown")),
		Period:                toInt(r.Period),
		Group:                 toInt(r.Group),
		XPos:                  toInt(r.XPos),
		YPos:                  toInt(r.YPos),
		AtomicMass:            r.AtomicMass,
		Phase:                 strings.ToLower(defaultString(r.Phase, "unknown")),
		ElectronConfiguration: r.ElectronConfiguration,
		SemanticConfiguration: r.SemanticConfiguration,
		Summary:               r.Summary,
		DiscoveredBy:          r.DiscoveredBy,
		NamedBy:               r.NamedBy,
		Melt:                  r.Melt,
		Boil:                  r.Boil,
		Density:               r.Density,
		Electronegativity:     r.Electronegativity,
		AtomicRadius:          r.AtomicRadius,
		ElectronAffinity:      r.ElectronAffinity,
		OxidationStates:       r.OxidationStates,
		IonizationEnergies:    r.IonizationEnergies,
	}
	return e
}

func defaultString(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// toInt coerces a JSON number to an int, accepting float encodings and
// mapping anything unparseable to 0.
func toInt(n json.Number) int {
	if n == "" {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	if f, err := n.Float64(); err == nil {
		return int(f)
	}
	return 0
}
