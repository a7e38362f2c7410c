// Package share hands a build summary to the user through a chain of
// fallbacks: an external share command, the system clipboard, and finally
// a manual copy written to a terminal or page.
package share

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnsupported reports that a tier is unavailable on this system.
var ErrUnsupported = stderrors.New("share: unsupported")

// Tier names.
const (
	TierCommand   = "command"
	TierClipboard = "clipboard"
	TierManual    = "manual"
)

// Provider delivers text through one share mechanism.
type Provider interface {
	Name() string
	Share(ctx context.Context, text string) error
}

// Result identifies the tier that succeeded and the notice to show.
type Result struct {
	Tier   string `json:"tier"`
	Notice string `json:"notice"`
}

var notices = map[string]string{
	TierCommand:   "Configuración compartida",
	TierClipboard: "Configuración copiada al portapapeles",
	TierManual:    "Copia la configuración manualmente",
}

// Notice returns the user-facing message for a tier.
func Notice(tier string) string {
	if n, ok := notices[tier]; ok {
		return n
	}
	return "Configuración compartida"
}

// Chain tries providers in order until one succeeds.
type Chain struct {
	providers []Provider
	logger    *log.Logger
}

// NewChain builds a chain. A nil logger discards fall-through logs.
func NewChain(logger *log.Logger, providers ...Provider) *Chain {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Chain{providers: providers, logger: logger}
}

// Default returns the standard three-tier chain.
func Default(command []string, manual io.Writer, logger *log.Logger) *Chain {
	return NewChain(logger, &Command{Args: command}, Clipboard{}, &Manual{W: manual})
}

// Share runs the chain. Any provider error, including ErrUnsupported, falls
// through to the next tier. An error is returned only when every tier fails.
func (c *Chain) Share(ctx context.Context, text string) (Result, error) {
	var errs []error
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		err := p.Share(ctx, text)
		if err == nil {
			return Result{Tier: p.Name(), Notice: Notice(p.Name())}, nil
		}
		if !stderrors.Is(err, ErrUnsupported) {
			c.logger.Printf("share: tier=%s failed: %v", p.Name(), err)
		}
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	if len(errs) == 0 {
		return Result{}, fmt.Errorf("share: no providers configured")
	}
	return Result{}, stderrors.Join(errs...)
}

// Command pipes the text to an external program on stdin.
type Command struct {
	Args []string
}

func (c *Command) Name() string { return TierCommand }

func (c *Command) Share(ctx context.Context, text string) error {
	if len(c.Args) == 0 || strings.TrimSpace(c.Args[0]) == "" {
		return ErrUnsupported
	}
	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// Clipboard writes the text to the system clipboard.
type Clipboard struct{}

func (Clipboard) Name() string { return TierClipboard }

func (Clipboard) Share(_ context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Manual prints the text framed for copying by hand.
type Manual struct {
	W io.Writer
}

func (m *Manual) Name() string { return TierManual }

func (m *Manual) Share(_ context.Context, text string) error {
	if m.W == nil {
		return ErrUnsupported
	}
	rule := strings.Repeat("─", 40)
	_, err := fmt.Fprintf(m.W, "%s\n%s\n%s\n", rule, text, rule)
	return err
}
