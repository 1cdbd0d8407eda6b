package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	openapisnapshot "github.com/erraggy/openapi-snapshot"
	"github.com/erraggy/openapi-snapshot/config"
	"github.com/erraggy/openapi-snapshot/output"
	"github.com/erraggy/openapi-snapshot/snaperrors"
)

const (
	// MinInterval is the floor applied to every sleep between cycles.
	MinInterval = 250 * time.Millisecond
	// BackoffMax caps the failure-driven backoff between cycles.
	BackoffMax = 10 * time.Second
)

// Loop runs snapshot cycles until its context is canceled.
type Loop struct {
	// Builder produces the payloads each cycle. Nil means
	// output.NewBuilder().
	Builder *output.Builder
	// Writer persists them. Nil means a default Writer.
	Writer *output.Writer
	// Prompt receives the recovery-prompt conversation. Nil means
	// os.Stderr.
	Prompt io.Writer
	// Input is the recovery prompt's input stream. Nil means os.Stdin.
	Input io.Reader
	// Logger receives per-cycle results.
	Logger openapisnapshot.Logger

	// Test seams; nil means the real thing.
	isTerminal func() bool
	sleepFn    func(ctx context.Context, d time.Duration) error
}

// Run polls until ctx is canceled. Build failures back off and may trigger
// the one-shot recovery prompt; write failures are reported without joining
// the backoff. The configured interval is floored at MinInterval. The only
// error Run returns is a failure to read the recovery prompt's input.
func (l *Loop) Run(ctx context.Context, cfg *config.Config) error {
	base := cfg.Interval
	if base < MinInterval {
		base = MinInterval
	}

	builder := l.Builder
	if builder == nil {
		builder = output.NewBuilder()
	}
	writer := l.Writer
	if writer == nil {
		writer = &output.Writer{}
	}

	// Endpoint state lives in the loop; the shared Config stays untouched.
	url := cfg.URL
	urlFromDefault := cfg.URLFromDefault

	prompted := false
	failures := 0
	delay := base

	for {
		if ctx.Err() != nil {
			return nil
		}

		cycleCfg := *cfg
		cycleCfg.URL = url
		cycleCfg.URLFromDefault = urlFromDefault

		payloads, err := builder.Build(ctx, &cycleCfg)
		if err == nil {
			failures = 0
			delay = base
			if writeErr := writer.WritePayloads(&cycleCfg, payloads); writeErr != nil {
				// The endpoint is healthy; a write failure must not feed
				// the backoff.
				l.log().Error("write failed", "error", writeErr)
			} else {
				l.log().Info("snapshot updated", "url", url)
			}
		} else {
			if !prompted && urlFromDefault && snaperrors.IsEndpointError(err) {
				newURL, promptErr := l.promptForURL(url)
				if promptErr != nil {
					return promptErr
				}
				prompted = true
				if newURL != "" {
					fmt.Fprintf(l.promptWriter(), "Switching watch URL from default to %q after prompt.\n", newURL)
					url = newURL
					urlFromDefault = false
					// Retry right away with the corrected endpoint.
					continue
				}
			}
			failures++
			delay = nextDelay(delay)
			l.log().Error("cycle failed", "error", err, "consecutive_failures", failures)
		}

		sleep := base
		if failures > 0 {
			sleep = delay
		}
		if sleep < MinInterval {
			sleep = MinInterval
		}
		if err := l.sleep(ctx, sleep); err != nil {
			return nil
		}
	}
}

// nextDelay doubles the failure backoff and clamps it to BackoffMax.
func nextDelay(current time.Duration) time.Duration {
	doubled := current * 2
	if doubled > BackoffMax {
		return BackoffMax
	}
	return doubled
}

func (l *Loop) sleep(ctx context.Context, d time.Duration) error {
	if l.sleepFn != nil {
		return l.sleepFn(ctx, d)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) promptWriter() io.Writer {
	if l.Prompt != nil {
		return l.Prompt
	}
	return os.Stderr
}

func (l *Loop) log() openapisnapshot.Logger {
	if l.Logger == nil {
		return openapisnapshot.NopLogger{}
	}
	return l.Logger
}
