package mcp

import "github.com/mark3labs/mcp-go/mcp"

// lookupElementTool defines the lookup_element MCP tool.
var lookupElementTool = mcp.NewTool("lookup_element",
	mcp.WithDescription("Look up a single chemical element by atomic number, symbol, or name. Returns its properties."),
	mcp.WithString("element",
		mcp.Required(),
		mcp.Description("Atomic number, symbol (e.g. 'O'), or name (e.g. 'Oxygen')"),
	),
)

// searchElementsTool defines the search_elements MCP tool.
var searchElementsTool = mcp.NewTool("search_elements",
	mcp.WithDescription("Search elements by a case-insensitive substring of their name or symbol."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Substring to match against element names and symbols"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
)

// listCategoryTool defines the list_category MCP tool.
var listCategoryTool = mcp.NewTool("list_category",
	mcp.WithDescription("List all elements in a chemistry category such as 'noble gas' or 'alkali metal'."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description("Category label, case-insensitive"),
	),
)
