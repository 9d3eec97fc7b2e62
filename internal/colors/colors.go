// Package colors maps element category labels to display colors.
package colors

import "strings"

// categoryTable is the canonical category -> color table, keyed by
// normalized labels (lowercase, hyphens collapsed to spaces). Compound
// labels ("unknown, probably transition metal") are intentionally absent;
// they resolve through the fallback chain below.
var categoryTable = map[string]string{
	"diatomic nonmetal":     "#7dd3fc",
	"polyatomic nonmetal":   "#22d3ee",
	"noble gas":             "#a78bfa",
	"alkali metal":          "#fb923c",
	"alkaline earth metal":  "#facc15",
	"metalloid":             "#4ade80",
	"post transition metal": "#a3a3a3",
	"transition metal":      "#f472b6",
	"lanthanide":            "#d8b4fe",
	"actinide":              "#fda4af",
	"nonmetal":              "#67e8f9",
	"unknown":               "#e0e0e0",
}

// genericMetal is the color for labels that only match the "metal"
// substring heuristic.
const genericMetal = "#f472b6"

// unknownColor is the final fallback.
const unknownColor = "#e0e0e0"

// rule is one step of the resolution chain.
type rule struct {
	name    string
	resolve func(label string) (string, bool)
}

// rules is the ordered decision table. Reordering changes which ambiguous
// labels receive which color, so the order is part of the contract:
//
//  1. exact:    direct table lookup
//  2. comma:    exact lookup of the portion before the first comma
//  3. nonmetal: any label containing "nonmetal"
//  4. metal:    any remaining label containing "metal"
//  5. unknown:  final fallback, total, never misses
var rules = []rule{
	{"exact", func(label string) (string, bool) {
		c, ok := categoryTable[label]
		return c, ok
	}},
	{"comma", func(label string) (string, bool) {
		head, _, found := strings.Cut(label, ",")
		if !found {
			return "", false
		}
		c, ok := categoryTable[strings.TrimSpace(head)]
		return c, ok
	}},
	{"nonmetal", func(label string) (string, bool) {
		if strings.Contains(label, "nonmetal") {
			return categoryTable["nonmetal"], true
		}
		return "", false
	}},
	{"metal", func(label string) (string, bool) {
		if strings.Contains(label, "metal") {
			return genericMetal, true
		}
		return "", false
	}},
	{"unknown", func(string) (string, bool) {
		return unknownColor, true
	}},
}

// ColorOf resolves a category label to a display color. It is total: every
// input, including the empty string, yields a color.
func ColorOf(category string) string {
	label := Normalize(category)
	for _, r := range rules {
		if c, ok := r.resolve(label); ok {
			return c
		}
	}
	return unknownColor
}

// Normalize lowercases a label and collapses hyphens to spaces. Missing
// input maps to the literal category "unknown".
func Normalize(category string) string {
	s := strings.TrimSpace(strings.ToLower(category))
	if s == "" {
		return "unknown"
	}
	return strings.ReplaceAll(s, "-", " ")
}

// LegendEntry is one category/color pair for the viewer legend.
type LegendEntry struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}

// Legend resolves a color for each given category, preserving order.
func Legend(categories []string) []LegendEntry {
	out := make([]LegendEntry, 0, len(categories))
	for _, c := range categories {
		out = append(out, LegendEntry{Category: c, Color: ColorOf(c)})
	}
	return out
}
