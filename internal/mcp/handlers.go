package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"elemex/internal/details"
	"elemex/internal/elements"
)

// handleLookupElement resolves one element by number, symbol, or name.
func (s *Server) handleLookupElement(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("element")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: element"), nil
	}

	ds := s.loader.Load(ctx)
	e := findElement(ds, key)
	if e == nil {
		return mcp.NewToolResultText(fmt.Sprintf("No element matches %q.", key)), nil
	}

	return mcp.NewToolResultText(formatElement(e, ds)), nil
}

// handleSearchElements performs a substring search over names and symbols.
func (s *Server) handleSearchElements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	ds := s.loader.Load(ctx)
	matched := ds.Filter(elements.Criteria{Query: query})
	if len(matched) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No elements match %q.", query)), nil
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}

	return mcp.NewToolResultText(formatList(matched)), nil
}

// handleListCategory lists every element of one category.
func (s *Server) handleListCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := request.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: category"), nil
	}

	ds := s.loader.Load(ctx)
	matched := ds.Filter(elements.Criteria{Categories: []string{category}})
	if len(matched) == 0 {
		known := strings.Join(ds.Categories(), ", ")
		return mcp.NewToolResultText(fmt.Sprintf("No elements in category %q. Known categories: %s.", category, known)), nil
	}

	return mcp.NewToolResultText(formatList(matched)), nil
}

// findElement matches an atomic number, then a symbol, then a name,
// case-insensitively.
func findElement(ds *elements.Dataset, key string) *elements.Element {
	key = strings.TrimSpace(key)
	if n, err := strconv.Atoi(key); err == nil {
		if e, ok := ds.ByNumber(n); ok {
			return e
		}
		return nil
	}
	for _, e := range ds.Elements() {
		if strings.EqualFold(e.Symbol, key) || strings.EqualFold(e.Name, key) {
			found, _ := ds.ByNumber(e.Number)
			return found
		}
	}
	return nil
}

// formatElement renders one element as readable text, reusing the same
// property tables the viewer shows.
func formatElement(e *elements.Element, ds *elements.Dataset) string {
	view := details.Render(e.Number, ds)

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, %d), %.4f u\n", e.Name, e.Symbol, e.Number, e.AtomicMass)
	if view.Overview != nil {
		fmt.Fprintf(&b, "Category: %s | Period %d, Group %d | Phase: %s\n",
			view.Overview.Category, e.Period, e.Group, view.Overview.Phase)
		fmt.Fprintf(&b, "Electron configuration: %s\n", view.Overview.ElectronConfiguration)
		if view.Overview.Summary != "" {
			fmt.Fprintf(&b, "\n%s\n", view.Overview.Summary)
		}
	}
	b.WriteString("\nPhysical properties:\n")
	for _, p := range view.Physical {
		fmt.Fprintf(&b, "  %s: %s\n", p.Label, p.Value)
	}
	b.WriteString("Chemical properties:\n")
	for _, p := range view.Chemical {
		fmt.Fprintf(&b, "  %s: %s\n", p.Label, p.Value)
	}
	return b.String()
}

// formatList renders a compact one-line-per-element listing.
func formatList(list []*elements.Element) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d element(s):\n", len(list))
	for _, e := range list {
		fmt.Fprintf(&b, "  %3d %-3s %-14s %s, %s\n", e.Number, e.Symbol, e.Name, e.Category, e.Phase)
	}
	return b.String()
}
