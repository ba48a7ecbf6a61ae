// Package clipboard copies text to the system clipboard and reports the result
// as one of two outcomes.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	atotto "github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("system clipboard is not available")

const (
	CopiedMessage = "Password copied to clipboard!"
	FailedMessage = "Failed to copy password. Please try again."
)

// Outcome is the result of a copy attempt.
type Outcome int

const (
	Copied Outcome = iota
	Failed
)

func (o Outcome) String() string {
	if o == Copied {
		return "copied"
	}
	return "failed"
}

// Result reports a single copy attempt. Err is set only when Outcome is Failed.
type Result struct {
	Outcome Outcome
	Err     error
}

// OK reports whether the text reached the clipboard.
func (r Result) OK() bool { return r.Outcome == Copied }

// Message returns the user facing notification for the result.
func (r Result) Message() string {
	if r.OK() {
		return CopiedMessage
	}
	return FailedMessage
}

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

func (f WriterFunc) WriteAll(text string) error { return f(text) }

// Notifier receives copy results.
type Notifier interface {
	Notify(Result)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Result)

func (f NotifierFunc) Notify(r Result) { f(r) }

// System writes to the OS clipboard through xclip/xsel/wl-copy, pbcopy or the
// Windows API, depending on the platform.
type System struct{}

func (System) WriteAll(text string) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	return atotto.WriteAll(text)
}

// Copy writes text with w and waits until the write completes or ctx ends.
// A panic in the writer is reported as a failure. Copy never retries.
func Copy(ctx context.Context, w Writer, text string) Result {
	if w == nil {
		return Result{Outcome: Failed, Err: ErrUnavailable}
	}

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("clipboard writer panicked: %v", r)
			}
		}()
		done <- w.WriteAll(text)
	}()

	select {
	case err := <-done:
		if err != nil {
			return Result{Outcome: Failed, Err: fmt.Errorf("writing clipboard: %w", err)}
		}
		return Result{Outcome: Copied}
	case <-ctx.Done():
		return Result{Outcome: Failed, Err: fmt.Errorf("writing clipboard: %w", ctx.Err())}
	}
}
