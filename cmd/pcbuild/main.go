package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/pcbuild/internal/catalog"
	"github.com/hpungsan/pcbuild/internal/config"
	"github.com/hpungsan/pcbuild/internal/db"
	"github.com/hpungsan/pcbuild/internal/logging"
	"github.com/hpungsan/pcbuild/internal/mcp"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"catalog": true, "select": true, "show": true, "check": true,
	"share": true, "reset": true, "ui": true, "tui": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	if cliCommands[arg] {
		return true
	}
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v"
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func printBanner() {
	fmt.Println(`
   ___  ___ _            _ _    _
  | _ \/ __| |__ _  _ _ (_) |__| |
  |  _/ (__| '_ \ || | || | / _' |
  |_|  \___|_.__/\_,_|_||_|_\__,_|

  PC build configurator

  Usage: pcbuild <command> [options]
         pcbuild tui      interactive terminal UI
         pcbuild ui       local web UI
         pcbuild --help

  MCP server mode requires piped input.`)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil)
		if err := app.Run(os.Args); err != nil {
			fail("%v", err)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fail("could not determine home directory: %v", err)
	}
	baseDir := filepath.Join(homeDir, ".pcbuild")

	cwd, err := os.Getwd()
	if err != nil {
		fail("could not determine working directory: %v", err)
	}
	cfg, err := config.LoadWithRepo(baseDir, cwd)
	if err != nil {
		fail("failed to load config: %v", err)
	}

	logger := logging.New(baseDir, cfg, nil)
	defer logger.Close()

	database, err := db.Init(baseDir)
	if err != nil {
		fail("failed to initialize database: %v", err)
	}
	defer database.Close()
	db.ConfigurePool(database, cfg)

	cat, rules, err := loadCatalog(cfg)
	if err != nil {
		fail("failed to load catalog: %v", err)
	}

	e := &env{cfg: cfg, db: database, logger: logger, catalog: cat, rules: rules}

	if isCLIMode() {
		app := newCLIApp(e)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			logger.Close()
			database.Close()
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'pcbuild --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default). Stdout carries the protocol, so the
	// manual share tier writes to stderr.
	for _, name := range mcp.ValidateDisabledTools(cfg.DisabledTools) {
		logger.Printf("mcp: unknown disabled tool %q", name)
	}
	if err := mcp.Run(e.newSession(os.Stderr), cfg, Version); err != nil {
		fail("%v", err)
	}
}

// loadCatalog returns the configured catalog, or the embedded one.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, *catalog.RuleSet, error) {
	if path := cfg.ResolveCatalogPath(); path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Default()
}
