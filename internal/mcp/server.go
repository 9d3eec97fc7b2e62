// Package mcp exposes element lookup tools to AI agents over the Model
// Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"elemex/internal/elements"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes periodic-table tools.
type Server struct {
	loader *elements.Loader
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server backed by the given dataset loader.
func NewServer(loader *elements.Loader) *Server {
	s := &Server{loader: loader}

	s.mcp = server.NewMCPServer(
		"elemex",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(lookupElementTool, s.handleLookupElement)
	s.mcp.AddTool(searchElementsTool, s.handleSearchElements)
	s.mcp.AddTool(listCategoryTool, s.handleListCategory)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
