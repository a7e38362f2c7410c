package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/pcbuild/internal/catalog"
)

func categoryNames() []string {
	cats := catalog.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

var catalogListToolDef = mcp.NewTool("catalog_list",
	mcp.WithDescription("List catalog components with prices, marking the ones in the current build. Omit category to list all seven categories."),
	mcp.WithString("category",
		mcp.Description("Component category"),
		mcp.Enum(categoryNames()...),
	),
)

var selectToolDef = mcp.NewTool("build_select",
	mcp.WithDescription("Select a component for a category, replacing any previous choice. Catalog components take their catalog price; pass price to select a custom part."),
	mcp.WithString("category",
		mcp.Required(),
		mcp.Description("Component category"),
		mcp.Enum(categoryNames()...),
	),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Exact component name"),
	),
	mcp.WithNumber("price",
		mcp.Description("Whole-dollar price for a component not in the catalog"),
		mcp.Min(0),
	),
)

var summaryToolDef = mcp.NewTool("build_summary",
	mcp.WithDescription("Show the current build: selected parts in category order, total, progress, and missing categories."),
)

var checkToolDef = mcp.NewTool("build_check",
	mcp.WithDescription("Run the compatibility check (issues and warnings) and the advisory recommendations on the current build."),
)

var saveToolDef = mcp.NewTool("build_save",
	mcp.WithDescription("Save the current build, replacing any previously saved build. Returns a notice; failures are reported as error notices."),
)

var loadToolDef = mcp.NewTool("build_load",
	mcp.WithDescription("Restore the saved build into the session. Reports loaded=false when nothing usable is saved."),
)

var shareTextToolDef = mcp.NewTool("build_share_text",
	mcp.WithDescription("Return the plain-text share summary of the current build."),
)

var resetToolDef = mcp.NewTool("build_reset",
	mcp.WithDescription("Discard the current build and start over. The saved build is not touched."),
)
