package mcp

import "github.com/mark3labs/mcp-go/mcp"

func scanTokensTool() mcp.Tool {
	return mcp.NewTool("scan_tokens",
		mcp.WithDescription("Extract design tokens (colors, fonts, spacing, variables) from a stylesheet"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Stylesheet text to scan"),
		),
	)
}

func analyzeStylesTool() mcp.Tool {
	return mcp.NewTool("analyze_styles",
		mcp.WithDescription("Score a stylesheet against known generic AI design patterns"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Stylesheet text to analyze"),
		),
	)
}

func analyzeProjectTool() mcp.Tool {
	return mcp.NewTool("analyze_project",
		mcp.WithDescription("Discover and analyze all style files under a project root, returning an aggregate report"),
		mcp.WithString("root",
			mcp.Required(),
			mcp.Description("Project root directory to analyze"),
		),
	)
}

func buildMigrationTool() mcp.Tool {
	return mcp.NewTool("build_migration",
		mcp.WithDescription("Map detected generic values to a target token set and emit replacement directives"),
		mcp.WithString("current",
			mcp.Required(),
			mcp.Description("Current stylesheet text to extract tokens from"),
		),
		mcp.WithString("target",
			mcp.Required(),
			mcp.Description("Target token set as JSON (colors plus typography)"),
		),
		mcp.WithString("preserve_colors",
			mcp.Description("Comma-separated color values to keep as-is"),
		),
		mcp.WithString("preserve_fonts",
			mcp.Description("Comma-separated font families to keep as-is"),
		),
		mcp.WithBoolean("script",
			mcp.Description("Return a shell migration script instead of JSON mappings"),
		),
	)
}

func renderTokensTool() mcp.Tool {
	return mcp.NewTool("render_tokens",
		mcp.WithDescription("Render a token set as a tokens document, CSS custom properties, or a Tailwind theme snippet"),
		mcp.WithString("target",
			mcp.Required(),
			mcp.Description("Token set as JSON (colors plus typography)"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: json (default), css, or tailwind"),
		),
		mcp.WithString("brand",
			mcp.Description("Brand name recorded in the document metadata (json format only)"),
		),
	)
}

func referencePatternsTool() mcp.Tool {
	return mcp.NewTool("get_reference_patterns",
		mcp.WithDescription("Return the reference lists of overused colors and fonts the analyzer penalizes"),
	)
}

func generateTokensTool() mcp.Tool {
	return mcp.NewTool("generate_tokens",
		mcp.WithDescription("Generate a differentiated brand token set for a brief (requires a configured model provider)"),
		mcp.WithString("brief",
			mcp.Required(),
			mcp.Description("Brand brief as JSON: name, industry, personality, competitors, mood"),
		),
	)
}
