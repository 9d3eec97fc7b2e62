package details

import (
	"math"
	"strconv"
	"strings"
)

// ShellViz is the illustrative electron-shell scene description: a nucleus
// plus one ring per shell with electrons spread evenly around it. It is a
// declarative descriptor for the renderer, not a physical model.
type ShellViz struct {
	Available bool        `json:"available"`
	Note      string      `json:"note,omitempty"`
	Shells    []ShellRing `json:"shells,omitempty"`
}

// ShellRing is one shell ring.
type ShellRing struct {
	Shell     int       `json:"shell"`
	Electrons int       `json:"electrons"`
	Radius    float64   `json:"radius"`
	Positions []Point2D `json:"positions"`
}

// Point2D is one electron position on a ring.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

const shellsUnavailable = "Electron shell data not available or unparsable."

// buildShellViz parses an electron configuration best-effort and lays the
// electrons out. Parse failure yields an unavailable descriptor, never an
// error.
func buildShellViz(config string) *ShellViz {
	counts := parseShells(config)
	if len(counts) == 0 {
		return &ShellViz{Note: shellsUnavailable}
	}

	maxShell := 0
	for shell := range counts {
		if shell > maxShell {
			maxShell = shell
		}
	}

	viz := &ShellViz{Available: true}
	for shell := 1; shell <= maxShell; shell++ {
		radius := float64(shell) * 1.5
		ring := ShellRing{Shell: shell, Electrons: counts[shell], Radius: radius}
		for i := 0; i < ring.Electrons; i++ {
			angle := float64(i) / float64(ring.Electrons) * 2 * math.Pi
			ring.Positions = append(ring.Positions, Point2D{
				X: radius * math.Cos(angle),
				Y: radius * math.Sin(angle),
			})
		}
		viz.Shells = append(viz.Shells, ring)
	}
	return viz
}

// parseShells turns a configuration like "1s2 2s2 2p4" into shell ->
// electron counts. Bracketed noble-gas cores ("[He] 2s2") are skipped and
// malformed tokens are ignored.
func parseShells(config string) map[int]int {
	counts := make(map[int]int)
	for _, token := range strings.Fields(config) {
		if strings.HasPrefix(token, "[") {
			continue
		}
		shell, electrons, ok := parseSubshell(token)
		if !ok {
			continue
		}
		counts[shell] += electrons
	}
	if len(counts) == 0 {
		return nil
	}
	return counts
}

// parseSubshell splits a token like "3d10" into shell number and electron
// count.
func parseSubshell(token string) (shell, electrons int, ok bool) {
	idx := strings.IndexAny(token, "spdf")
	if idx <= 0 || idx == len(token)-1 {
		return 0, 0, false
	}
	shell, err := strconv.Atoi(token[:idx])
	if err != nil || shell < 1 {
		return 0, 0, false
	}
	electrons, err = strconv.Atoi(token[idx+1:])
	if err != nil || electrons < 1 {
		return 0, 0, false
	}
	return shell, electrons, true
}
