package details

import (
	"fmt"
	"math/rand"
)

// CloudViz is the illustrative 3D point-cloud scene description. Points
// are seeded from the element symbol so the figure is stable across
// renders for the same element.
type CloudViz struct {
	Available bool      `json:"available"`
	Title     string    `json:"title,omitempty"`
	Points    []Point3D `json:"points,omitempty"`
}

// Point3D is one sphere of the cloud.
type Point3D struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Color string  `json:"color"`
}

var cloudPalette = []string{"#ef4444", "#3b82f6", "#22c55e", "#eab308", "#a855f7"}

// buildCloudViz places one sphere per symbol character (up to five) at
// deterministic pseudo-random coordinates.
func buildCloudViz(symbol string) *CloudViz {
	if symbol == "" {
		return &CloudViz{}
	}

	n := len(symbol)
	if n > 5 {
		n = 5
	}

	var seed int64
	for _, b := range []byte(symbol) {
		seed = seed*31 + int64(b)
	}
	rng := rand.New(rand.NewSource(seed))

	viz := &CloudViz{
		Available: true,
		Title:     fmt.Sprintf("Simplified structure of %s", symbol),
	}
	for i := 0; i < n; i++ {
		viz.Points = append(viz.Points, Point3D{
			X:     rng.Float64() * 5,
			Y:     rng.Float64() * 5,
			Z:     rng.Float64() * 5,
			Color: cloudPalette[i%len(cloudPalette)],
		})
	}
	return viz
}
