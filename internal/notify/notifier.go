// Package notify delivers transient, user-facing notifications. It is the
// CLI equivalent of the toast popups the web client shows: short-lived,
// never fatal, never propagated further.
package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/blogsphere/blogsphere-cli/internal/logging"
)

// Notifier surfaces the outcome of a user-visible action.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// WriterNotifier prints notifications to an io.Writer (normally the
// terminal) and mirrors failures to the structured log.
type WriterNotifier struct {
	w   io.Writer
	log logging.Logger
}

func NewWriterNotifier(w io.Writer, log logging.Logger) *WriterNotifier {
	return &WriterNotifier{w: w, log: log}
}

func (n *WriterNotifier) Success(ctx context.Context, msg string) {
	fmt.Fprintf(n.w, "✔ %s\n", msg)
}

func (n *WriterNotifier) Error(ctx context.Context, msg string) {
	fmt.Fprintf(n.w, "✖ %s\n", msg)
	n.log.Warn(ctx, "user-facing error", "msg", msg)
}
