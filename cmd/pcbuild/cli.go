package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/pcbuild/internal/build"
	"github.com/hpungsan/pcbuild/internal/catalog"
	"github.com/hpungsan/pcbuild/internal/config"
	"github.com/hpungsan/pcbuild/internal/errors"
	"github.com/hpungsan/pcbuild/internal/logging"
	"github.com/hpungsan/pcbuild/internal/ops"
	"github.com/hpungsan/pcbuild/internal/share"
	"github.com/hpungsan/pcbuild/internal/store"
	"github.com/hpungsan/pcbuild/internal/tui"
	"github.com/hpungsan/pcbuild/internal/web"
)

// env carries the process-wide collaborators every command needs.
type env struct {
	cfg     *config.Config
	db      *sql.DB
	logger  *logging.Logger
	catalog *catalog.Catalog
	rules   *catalog.RuleSet
}

func (e *env) store() *store.SQLite {
	return store.NewSQLite(e.db, e.cfg.StorageKey, e.logger.Logger)
}

// newSession wires a session over the saved-build store. manual receives
// the text when the share chain falls back to manual copy.
func (e *env) newSession(manual io.Writer) *ops.Session {
	return ops.NewSession(ops.Options{
		Catalog: e.catalog,
		Rules:   e.rules,
		Store:   e.store(),
		Sharer:  share.Default(e.cfg.ShareCommand, manual, e.logger.Logger),
		Logger:  e.logger.Logger,
	})
}

// loadedSession returns a session holding the saved build, if any.
func (e *env) loadedSession(ctx context.Context, manual io.Writer) (*ops.Session, *ops.Notice) {
	sess := e.newSession(manual)
	if out, ok := sess.Load(ctx); ok {
		return sess, &out.Notice
	}
	return sess, nil
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(e *env) *cli.App {
	app := &cli.App{
		Name:    "pcbuild",
		Usage:   "PC build configurator",
		Version: Version,
		Commands: []*cli.Command{
			catalogCmd(e),
			selectCmd(e),
			showCmd(e),
			checkCmd(e),
			shareCmd(e),
			resetCmd(e),
			uiCmd(e),
			tuiCmd(e),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// catalogCmd creates the catalog command.
func catalogCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "catalog",
		Usage:     "List catalog components, marking the current selection",
		ArgsUsage: "[category]",
		Action: func(c *cli.Context) error {
			sess, _ := e.loadedSession(c.Context, io.Discard)
			output, err := sess.ListCatalog(c.Args().First())
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

type selectResult struct {
	*ops.SelectOutput
	Saved ops.Notice `json:"saved"`
}

// selectCmd creates the select command.
func selectCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "select",
		Usage:     "Select a component and save the build",
		ArgsUsage: "<category> <name>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "price", Aliases: []string{"p"}, Usage: "Custom price (allows components outside the catalog)"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return outputError(errors.NewInvalidRequest("usage: pcbuild select <category> <name>"))
			}
			category, name := c.Args().Get(0), c.Args().Get(1)

			sess, _ := e.loadedSession(c.Context, io.Discard)
			var (
				output *ops.SelectOutput
				err    error
			)
			if c.IsSet("price") {
				output, err = sess.SelectCustom(category, name, c.Int("price"))
			} else {
				output, err = sess.Select(category, name)
			}
			if err != nil {
				return outputError(err)
			}

			saved := sess.Save(c.Context)
			if err := outputJSON(selectResult{SelectOutput: output, Saved: saved}); err != nil {
				return err
			}
			if saved.Level == ops.LevelError {
				return cli.Exit(fmt.Sprintf("[%s] %s", errors.ErrStorage, saved.Message), 1)
			}
			return nil
		},
	}
}

// showCmd creates the show command.
func showCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Show the saved build",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "markdown", Aliases: []string{"m"}, Usage: "Print a markdown table instead of JSON"},
		},
		Action: func(c *cli.Context) error {
			sess, _ := e.loadedSession(c.Context, io.Discard)
			if c.Bool("markdown") {
				_, err := fmt.Fprint(os.Stdout, build.Markdown(sess.State()))
				return err
			}
			return outputJSON(sess.Summary())
		},
	}
}

// checkCmd creates the check command.
func checkCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check compatibility and list recommendations for the saved build",
		Action: func(c *cli.Context) error {
			sess, _ := e.loadedSession(c.Context, io.Discard)
			return outputJSON(sess.Check())
		},
	}
}

// shareCmd creates the share command.
func shareCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "share",
		Usage: "Share the saved build (command, clipboard, then manual copy)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "text", Usage: "Print the share text only"},
		},
		Action: func(c *cli.Context) error {
			// Manual copy goes to stderr so stdout stays JSON.
			sess, _ := e.loadedSession(c.Context, os.Stderr)
			if c.Bool("text") {
				st := sess.State()
				if st.IsEmpty() {
					return outputError(errors.NewEmptyBuild("share"))
				}
				_, err := fmt.Fprintln(os.Stdout, build.ShareText(st))
				return err
			}
			return outputJSON(sess.Share(c.Context))
		},
	}
}

// resetCmd creates the reset command.
func resetCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Discard the saved build",
		Action: func(c *cli.Context) error {
			if err := e.store().Clear(c.Context); err != nil {
				return outputError(err)
			}
			sess := e.newSession(io.Discard)
			sess.Reset()
			return outputJSON(sess.Summary())
		},
	}
}

// uiCmd creates the ui command.
func uiCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "ui",
		Usage: "Serve the configurator in the browser",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Bind address (default from config)"},
			&cli.IntFlag{Name: "port", Usage: "Port (default from config)"},
		},
		Action: func(c *cli.Context) error {
			bind, port := e.cfg.WebBind, e.cfg.WebPort
			if c.IsSet("bind") {
				bind = c.String("bind")
			}
			if c.IsSet("port") {
				port = c.Int("port")
			}

			logger := log.New(io.MultiWriter(e.logger.Writer(), os.Stderr), e.logger.Prefix(), e.logger.Flags())
			sess, notice := e.loadedSession(c.Context, io.Discard)
			if notice != nil {
				logger.Print(notice.Message)
			}

			srv := web.NewServer(sess, e.cfg, Version, bind, port, logger)
			return web.Run(srv, logger)
		},
	}
}

// tuiCmd creates the tui command.
func tuiCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Run the interactive terminal configurator",
		Action: func(c *cli.Context) error {
			// The terminal UI shows manual-copy text itself.
			sess, notice := e.loadedSession(c.Context, io.Discard)
			return tui.Run(c.Context, sess, notice)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if buildErr, ok := errors.As(err); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", buildErr.Code, buildErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
