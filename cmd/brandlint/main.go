package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnana997/brandlint/pkg/analyzer"
	"github.com/gnana997/brandlint/pkg/generator"
	mcpserver "github.com/gnana997/brandlint/pkg/mcp"
	"github.com/gnana997/brandlint/pkg/mcplog"
	"github.com/gnana997/brandlint/pkg/migration"
	"github.com/gnana997/brandlint/pkg/patterns"
	"github.com/gnana997/brandlint/pkg/tokens"
	"github.com/gnana997/brandlint/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "analyze":
		err = cmdAnalyze(args)
	case "score":
		err = cmdScore(args)
	case "migrate":
		err = cmdMigrate(args)
	case "render":
		err = cmdRender(args)
	case "generate":
		err = cmdGenerate(args)
	case "serve":
		err = cmdServe(args)
	case "watch":
		err = cmdWatch(args)
	case "version":
		fmt.Printf("brandlint %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: brandlint <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  analyze    Analyze style files under a directory and report a score")
	fmt.Println("  score      Score a single stylesheet against generic patterns")
	fmt.Println("  migrate    Build a migration from detected tokens to a target set")
	fmt.Println("  render     Render a token set as JSON, CSS, or a Tailwind snippet")
	fmt.Println("  generate   Generate a differentiated token set from a brand brief")
	fmt.Println("  serve      Start MCP server on stdio")
	fmt.Println("  watch      Watch a directory and re-score on style changes")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
}

// newAnalyzer builds the shared analyzer with project-config excludes.
func newAnalyzer(cfg *ProjectConfig) *analyzer.Analyzer {
	acfg := analyzer.DefaultConfig()
	if cfg != nil {
		acfg.Excludes = cfg.Excludes
	}
	log := util.NewLogger(util.DefaultLoggerConfig())
	return analyzer.New(acfg, log)
}

func cmdAnalyze(args []string) error {
	root := positionalArg(args, ".")
	asJSON := hasFlag(args, "--json")

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	report, err := newAnalyzer(cfg).AnalyzeDir(root)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(report)
	}

	fmt.Printf("Score: %d/100 (%d files, %d issues)\n",
		report.CurrentScore, report.Stats.FilesAnalyzed, len(report.Issues))
	for _, issue := range report.Issues {
		fmt.Printf("  [%s] %s: %s\n", issue.Severity, issue.Kind, issue.Description)
	}
	if len(report.Recommendations) > 0 {
		fmt.Println()
		for _, rec := range report.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
	return nil
}

func cmdScore(args []string) error {
	path := positionalArg(args, "")
	if path == "" {
		return fmt.Errorf("usage: brandlint score <file> [--json]")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	report := patterns.Analyze(string(data))
	if hasFlag(args, "--json") {
		return printJSON(report)
	}

	fmt.Printf("Score: %d/100\n", report.Score)
	for _, issue := range report.Issues {
		fmt.Printf("  [%s] %s (%s)\n", issue.Severity, issue.Description, issue.OffendingValue)
	}
	for _, s := range report.Strengths {
		fmt.Printf("  + %s\n", s)
	}
	return nil
}

func cmdMigrate(args []string) error {
	root := positionalArg(args, ".")
	tokensPath := stringFlag(args, "--tokens", "")
	if tokensPath == "" {
		return fmt.Errorf("usage: brandlint migrate [dir] --tokens <tokens.json> [--script]")
	}

	target, err := loadTokenSet(tokensPath)
	if err != nil {
		return err
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	report, err := newAnalyzer(cfg).AnalyzeDir(root)
	if err != nil {
		return err
	}

	preserve := migration.Preserve{
		Colors: splitList(stringFlag(args, "--preserve-colors", "")),
		Fonts:  splitList(stringFlag(args, "--preserve-fonts", "")),
	}

	m := migration.Build(report.ExtractedTokens, target, preserve)
	if hasFlag(args, "--script") {
		fmt.Print(migration.RenderScript(m))
		return nil
	}
	return printJSON(m)
}

func cmdRender(args []string) error {
	tokensPath := stringFlag(args, "--tokens", "")
	if tokensPath == "" {
		return fmt.Errorf("usage: brandlint render --tokens <tokens.json> [--format json|css|tailwind] [--brand name]")
	}

	target, err := loadTokenSet(tokensPath)
	if err != nil {
		return err
	}

	switch format := stringFlag(args, "--format", "json"); format {
	case "css":
		fmt.Print(tokens.RenderCSS(target))
	case "tailwind":
		fmt.Print(tokens.RenderTailwind(target))
	case "json":
		doc := tokens.BuildDocument(stringFlag(args, "--brand", ""), target)
		out, err := doc.RenderJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		return fmt.Errorf("unknown format %q: must be json, css, or tailwind", format)
	}
	return nil
}

func cmdGenerate(args []string) error {
	briefPath := stringFlag(args, "--brief", "")
	if briefPath == "" {
		return fmt.Errorf("usage: brandlint generate --brief <brief.json> [--model name] [--out tokens.json]")
	}

	data, err := os.ReadFile(briefPath)
	if err != nil {
		return err
	}
	var brief generator.BrandBrief
	if err := json.Unmarshal(data, &brief); err != nil {
		return fmt.Errorf("invalid brief file: %w", err)
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	provider, err := generator.NewAnthropicProvider("", resolveModel(stringFlag(args, "--model", ""), cfg))
	if err != nil {
		return err
	}
	log := util.NewLogger(util.DefaultLoggerConfig())
	gen := generator.New(provider, log)

	set, err := gen.GenerateTokenSet(context.Background(), brief)
	if err != nil {
		return err
	}

	doc := tokens.BuildDocument(brief.Name, set)
	out, err := doc.RenderJSON()
	if err != nil {
		return err
	}

	if outPath := stringFlag(args, "--out", ""); outPath != "" {
		return os.WriteFile(outPath, append(out, '\n'), 0644)
	}
	fmt.Println(string(out))
	return nil
}

func cmdServe(args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	logger, err := mcplog.NewLogger(resolveLogPath(stringFlag(args, "--log", ""), cfg))
	if err != nil {
		return err
	}
	if logger != nil {
		defer logger.Close()
	}

	// The generator is optional; without an API key the server still
	// exposes every analysis tool.
	var gen *generator.Generator
	if provider, err := generator.NewAnthropicProvider("", resolveModel("", cfg)); err == nil {
		gen = generator.New(provider, util.NewLogger(util.DefaultLoggerConfig()))
	}

	srv := mcpserver.NewServer(newAnalyzer(cfg), gen, logger)
	if err := srv.ServeStdio(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func cmdWatch(args []string) error {
	root := positionalArg(args, ".")

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	log := util.NewLogger(util.DefaultLoggerConfig())
	a := newAnalyzer(cfg)

	onReport := func(report *analyzer.ProjectReport) {
		fmt.Printf("Score: %d/100 (%d files, %d issues)\n",
			report.CurrentScore, report.Stats.FilesAnalyzed, len(report.Issues))
	}

	w, err := analyzer.NewWatcher(a, analyzer.DefaultWatchOptions(), onReport, log)
	if err != nil {
		return err
	}
	if err := w.Start(root); err != nil {
		return err
	}
	defer w.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

// loadTokenSet reads a token set from a JSON file. Both a bare set and
// a full tokens document (with meta) are accepted.
func loadTokenSet(path string) (*tokens.TokenSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var set tokens.TokenSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("invalid token set file %s: %w", path, err)
	}
	if !set.Complete() {
		var doc tokens.Document
		if err := json.Unmarshal(data, &doc); err == nil {
			if fromDoc := documentToSet(&doc); fromDoc.Complete() {
				return fromDoc, nil
			}
		}
		return nil, fmt.Errorf("token set in %s is incomplete: six color roles and two font roles are required", path)
	}
	return &set, nil
}

// documentToSet lifts a persisted tokens document back into a set.
func documentToSet(doc *tokens.Document) *tokens.TokenSet {
	return &tokens.TokenSet{
		Colors: tokens.ColorRoles{
			Primary:    doc.Colors["primary"],
			Secondary:  doc.Colors["secondary"],
			Accent:     doc.Colors["accent"],
			Background: doc.Colors["background"],
			Surface:    doc.Colors["surface"],
			Text:       doc.Colors["text"],
		},
		Typography: doc.Typography,
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
