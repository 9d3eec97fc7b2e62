package elements

import "strings"

// Criteria is a transient, request-scoped filter over a dataset. Empty
// category/phase sets match everything, matching the viewer's default of
// all options selected.
type Criteria struct {
	Categories []string
	Phases     []string
	Query      string
}

// IsZero reports whether the criteria filter nothing out.
func (c Criteria) IsZero() bool {
	return len(c.Categories) == 0 && len(c.Phases) == 0 && strings.TrimSpace(c.Query) == ""
}

// Filter returns the matching elements in dataset order. The returned
// slice shares records with the dataset; no copies are made.
func (d *Dataset) Filter(c Criteria) []*Element {
	cats := toSet(c.Categories)
	phases := toSet(c.Phases)
	query := strings.ToLower(strings.TrimSpace(c.Query))

	var out []*Element
	for i := range d.elements {
		e := &d.elements[i]
		if len(cats) > 0 && !cats[strings.ToLower(e.Category)] {
			continue
		}
		if len(phases) > 0 && !phases[strings.ToLower(e.Phase)] {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Name), query) &&
			!strings.Contains(strings.ToLower(e.Symbol), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = true
		}
	}
	return set
}
