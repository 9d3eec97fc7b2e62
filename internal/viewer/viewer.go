// Package viewer serves the periodic-table UI: the grid page, its JSON
// API, and the WebSocket event channel that carries grid clicks back to
// the per-session selection state.
package viewer

import (
	"github.com/go-chi/chi/v5"

	"elemex/internal/elements"
	"elemex/internal/photos"
)

// Viewer owns the rendered surface. The dataset comes from the loader on
// every request, so all handlers observe cache refreshes wholesale.
type Viewer struct {
	loader           *elements.Loader
	photos           *photos.Client
	initialSelection int
}

// New creates a viewer. initialSelection is the atomic number selected
// when a session opens; 0 starts with no selection.
func New(loader *elements.Loader, photoClient *photos.Client, initialSelection int) *Viewer {
	return &Viewer{
		loader:           loader,
		photos:           photoClient,
		initialSelection: initialSelection,
	}
}

// RegisterRoutes mounts all viewer routes onto the given router.
func (v *Viewer) RegisterRoutes(r chi.Router) {
	r.Get("/", v.ServeIndex)
	r.Get("/about", v.handleAbout)
	r.Get("/api/elements", v.handleElements)
	r.Get("/api/elements/{number}", v.handleElement)
	r.Get("/api/elements/{number}/details", v.handleDetails)
	r.Get("/api/layout", v.handleLayout)
	r.Get("/api/legend", v.handleLegend)
	r.Get("/api/picklist", v.handlePicklist)
	r.Get("/api/stats", v.handleStats)
	r.Get("/ws/events", v.handleEvents)
}
