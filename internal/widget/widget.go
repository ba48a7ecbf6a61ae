// Package widget holds the state of a password generator widget: the current
// configuration and the password derived from it.
package widget

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/generator"
)

// State is a snapshot of the widget.
type State struct {
	Config   generator.Config
	Password string
	Strength generator.Strength
}

// Patch carries optional configuration changes. Nil fields are left as is.
type Patch struct {
	Length         *int
	IncludeDigits  *bool
	IncludeSymbols *bool
}

// Option configures a Widget.
type Option func(*Widget)

// WithNotifier sets the receiver of copy results.
func WithNotifier(n clipboard.Notifier) Option {
	return func(w *Widget) { w.notifier = n }
}

// WithConfig overrides the starting configuration. The length is clamped.
func WithConfig(cfg generator.Config) Option {
	return func(w *Widget) {
		cfg.Length = generator.ClampLength(cfg.Length)
		w.cfg = cfg
	}
}

// WithLogger sets the logger used for state changes.
func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) { w.logger = l }
}

// Widget recomputes its password whenever its configuration changes.
// It is safe for concurrent use.
type Widget struct {
	mu       sync.Mutex
	gen      *generator.Generator
	cb       clipboard.Writer
	notifier clipboard.Notifier
	logger   *slog.Logger

	cfg      generator.Config
	password string
}

// New creates a Widget and generates its first password.
func New(gen *generator.Generator, cb clipboard.Writer, opts ...Option) (*Widget, error) {
	if gen == nil {
		gen = generator.New(nil)
	}
	w := &Widget{
		gen:    gen,
		cb:     cb,
		logger: slog.Default(),
		cfg:    generator.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.regenerateLocked(); err != nil {
		return nil, err
	}
	return w, nil
}

// State returns the current snapshot.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

// SetLength sets the length, clamped to the slider range.
func (w *Widget) SetLength(n int) (State, error) {
	return w.Update(Patch{Length: &n})
}

func (w *Widget) SetIncludeDigits(v bool) (State, error) {
	return w.Update(Patch{IncludeDigits: &v})
}

func (w *Widget) SetIncludeSymbols(v bool) (State, error) {
	return w.Update(Patch{IncludeSymbols: &v})
}

// ToggleDigits flips the digits checkbox.
func (w *Widget) ToggleDigits() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	next := w.cfg
	next.IncludeDigits = !next.IncludeDigits
	return w.applyLocked(next)
}

// ToggleSymbols flips the symbols checkbox.
func (w *Widget) ToggleSymbols() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	next := w.cfg
	next.IncludeSymbols = !next.IncludeSymbols
	return w.applyLocked(next)
}

// Update applies p. If the resulting configuration differs from the current
// one the password is regenerated before Update returns.
func (w *Widget) Update(p Patch) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := w.cfg
	if p.Length != nil {
		next.Length = generator.ClampLength(*p.Length)
	}
	if p.IncludeDigits != nil {
		next.IncludeDigits = *p.IncludeDigits
	}
	if p.IncludeSymbols != nil {
		next.IncludeSymbols = *p.IncludeSymbols
	}
	return w.applyLocked(next)
}

// Regenerate draws a new password with the current configuration.
func (w *Widget) Regenerate() (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.regenerateLocked(); err != nil {
		return w.stateLocked(), err
	}
	return w.stateLocked(), nil
}

// Copy writes the current password to the clipboard. The lock is not held
// during the write, so generation is never blocked by a slow clipboard.
func (w *Widget) Copy(ctx context.Context) clipboard.Result {
	password := w.State().Password

	res := clipboard.Copy(ctx, w.cb, password)
	if res.OK() {
		w.logger.Info("password copied to clipboard")
	} else {
		w.logger.Warn("clipboard copy failed", "error", res.Err)
	}
	if w.notifier != nil {
		w.notifier.Notify(res)
	}
	return res
}

func (w *Widget) applyLocked(next generator.Config) (State, error) {
	if next == w.cfg {
		return w.stateLocked(), nil
	}

	prev := w.cfg
	w.cfg = next
	if err := w.regenerateLocked(); err != nil {
		w.cfg = prev
		return w.stateLocked(), err
	}

	w.logger.Debug("widget config changed",
		"length", next.Length,
		"digits", next.IncludeDigits,
		"symbols", next.IncludeSymbols,
	)
	return w.stateLocked(), nil
}

func (w *Widget) regenerateLocked() error {
	password, err := w.gen.Generate(w.cfg)
	if err != nil {
		return err
	}
	w.password = password
	return nil
}

func (w *Widget) stateLocked() State {
	return State{
		Config:   w.cfg,
		Password: w.password,
		Strength: generator.Classify(w.cfg),
	}
}
