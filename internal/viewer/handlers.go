package viewer

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"elemex/internal/colors"
	"elemex/internal/details"
	"elemex/internal/elements"
	"elemex/internal/layout"
)

// elementView is one element as served to the grid: the record plus its
// resolved color and photo URL.
type elementView struct {
	elements.Element
	Color    string `json:"color"`
	PhotoURL string `json:"photo_url"`
}

// elementsResponse is the JSON response for the elements endpoint.
type elementsResponse struct {
	Elements []elementView `json:"elements"`
	Count    int           `json:"count"`
	Fallback bool          `json:"fallback"`
}

// statsResponse is the JSON response for the stats endpoint.
type statsResponse struct {
	Count           int      `json:"count"`
	Fallback        bool     `json:"fallback"`
	Stale           bool     `json:"stale"`
	FetchedAt       string   `json:"fetched_at"`
	CacheAgeSeconds int      `json:"cache_age_seconds"`
	Categories      []string `json:"categories"`
	Phases          []string `json:"phases"`
	Warning         string   `json:"warning,omitempty"`
}

func (v *Viewer) handleElements(w http.ResponseWriter, r *http.Request) {
	ds := v.loader.Load(r.Context())

	q := r.URL.Query()
	criteria := elements.Criteria{
		Categories: q["category"],
		Phases:     q["phase"],
		Query:      q.Get("q"),
	}

	matched := ds.Filter(criteria)
	views := make([]elementView, 0, len(matched))
	for _, e := range matched {
		views = append(views, v.viewOf(e))
	}

	writeJSON(w, http.StatusOK, elementsResponse{
		Elements: views,
		Count:    len(views),
		Fallback: ds.Fallback,
	})
}

func (v *Viewer) handleElement(w http.ResponseWriter, r *http.Request) {
	ds := v.loader.Load(r.Context())

	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid element number"})
		return
	}
	e, ok := ds.ByNumber(number)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "element not found"})
		return
	}
	writeJSON(w, http.StatusOK, v.viewOf(e))
}

// handleDetails always answers 200: an unknown id renders the
// prompt-to-select placeholder rather than an error.
func (v *Viewer) handleDetails(w http.ResponseWriter, r *http.Request) {
	ds := v.loader.Load(r.Context())

	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		number = 0
	}
	writeJSON(w, http.StatusOK, detailsEnvelope{
		Details:  details.Render(number, ds),
		PhotoURL: v.photoURLFor(ds, number),
	})
}

// detailsEnvelope pairs a details view with its photo URL.
type detailsEnvelope struct {
	Details  details.View `json:"details"`
	PhotoURL string       `json:"photo_url,omitempty"`
}

func (v *Viewer) handleLayout(w http.ResponseWriter, r *http.Request) {
	ds := v.loader.Load(r.Context())
	writeJSON(w, http.StatusOK, layout.Build(ds))
}

func (v *Viewer) handleLegend(w http.ResponseWriter, r *http.Request) {
	ds := v.loader.Load(r.Context())
	writeJSON(w, http.StatusOK, colors.Legend(ds.Categories()))
}

func (v *Viewer) handlePicklist(w http.ResponseWriter, r *http.Request) {
	ds := v.loader.Load(r.Context())
	writeJSON(w, http.StatusOK, ds.Picklist())
}

func (v *Viewer) handleStats(w http.ResponseWriter, r *http.Request) {
	ds := v.loader.Load(r.Context())

	stats := statsResponse{
		Count:      ds.Len(),
		Fallback:   ds.Fallback,
		Stale:      ds.Stale,
		FetchedAt:  ds.FetchedAt.UTC().Format(time.RFC3339),
		Categories: ds.Categories(),
		Phases:     ds.Phases(),
	}
	if !ds.FetchedAt.IsZero() {
		stats.CacheAgeSeconds = int(time.Since(ds.FetchedAt).Seconds())
	}
	switch {
	case ds.Fallback:
		stats.Warning = "Upstream dataset unavailable; using the built-in fallback dataset."
	case ds.Stale:
		stats.Warning = "Upstream dataset unavailable; serving the last cached copy."
	}
	writeJSON(w, http.StatusOK, stats)
}

func (v *Viewer) viewOf(e *elements.Element) elementView {
	return elementView{
		Element:  *e,
		Color:    colors.ColorOf(e.Category),
		PhotoURL: v.photoURL(e.Name),
	}
}

func (v *Viewer) photoURL(name string) string {
	if v.photos == nil {
		return ""
	}
	return v.photos.URL(name)
}

func (v *Viewer) photoURLFor(ds *elements.Dataset, number int) string {
	e, ok := ds.ByNumber(number)
	if !ok {
		return ""
	}
	return v.photoURL(e.Name)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
