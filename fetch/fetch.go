package fetch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	openapisnapshot "github.com/erraggy/openapi-snapshot"
	"github.com/erraggy/openapi-snapshot/snaperrors"
)

// Defaults for a Fetcher constructed by New.
const (
	DefaultMaxAttempts    = 3
	DefaultRetryBaseDelay = 500 * time.Millisecond
	DefaultRetryMaxDelay  = 4 * time.Second
)

// snippetLimit bounds the response-body excerpt embedded in status errors.
const snippetLimit = 200

// Fetcher retrieves a document over HTTP, retrying transient failures with
// capped exponential backoff. Configure it by setting fields after New:
//
//	f := fetch.New()
//	f.MaxAttempts = 5
//	data, err := f.Fetch(ctx, url, headers, 10*time.Second)
type Fetcher struct {
	// MaxAttempts bounds the total number of tries, the first included.
	MaxAttempts int
	// RetryBaseDelay is the sleep before the first retry; it doubles per
	// retry up to RetryMaxDelay.
	RetryBaseDelay time.Duration
	// RetryMaxDelay caps the backoff sleep.
	RetryMaxDelay time.Duration
	// UserAgent is sent when the caller's headers do not provide one.
	// Defaults to openapisnapshot.UserAgent() if empty.
	UserAgent string
	// HTTPClient issues the requests. If nil, http.DefaultClient is used;
	// the per-attempt timeout comes from the request context either way.
	HTTPClient *http.Client
	// Logger receives retry warnings and per-fetch debug lines.
	Logger openapisnapshot.Logger
}

// New returns a Fetcher with the default retry policy.
func New() *Fetcher {
	return &Fetcher{
		MaxAttempts:    DefaultMaxAttempts,
		RetryBaseDelay: DefaultRetryBaseDelay,
		RetryMaxDelay:  DefaultRetryMaxDelay,
		UserAgent:      openapisnapshot.UserAgent(),
		Logger:         openapisnapshot.NopLogger{},
	}
}

// Fetch retrieves the document at rawURL and returns the raw response body.
// headers are raw "Name: value" strings; they override the default Accept
// and User-Agent by name. timeout bounds each attempt, not the whole call.
// Transient failures are retried up to MaxAttempts; the last observed error
// is returned once attempts are exhausted.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, headers []string, timeout time.Duration) ([]byte, error) {
	header, err := buildHeader(headers)
	if err != nil {
		return nil, err
	}
	if header.Get("Accept") == "" {
		header.Set("Accept", "application/json")
	}
	if header.Get("User-Agent") == "" {
		ua := f.UserAgent
		if ua == "" {
			ua = openapisnapshot.UserAgent()
		}
		header.Set("User-Agent", ua)
	}

	attempts := f.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		data, retryable, err := f.attempt(ctx, rawURL, header, timeout)
		if err == nil {
			f.log().Debug("fetched document", "url", rawURL, "bytes", len(data), "attempt", attempt)
			return data, nil
		}
		lastErr = err
		if !retryable || attempt >= attempts {
			return nil, lastErr
		}
		delay := f.backoffDelay(attempt)
		f.log().Warn("fetch attempt failed; retrying", "attempt", attempt, "delay", delay, "error", err)
		if err := f.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// attempt performs a single GET. The bool reports whether the failure is
// worth retrying.
func (f *Fetcher) attempt(ctx context.Context, rawURL string, header http.Header, timeout time.Duration) ([]byte, bool, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, snaperrors.Wrap(snaperrors.KindNetwork, "fetch: failed to create request", err)
	}
	req.Header = header.Clone()

	client := f.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, true, snaperrors.Wrap(snaperrors.KindNetwork, "fetch: request failed", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, snaperrors.Wrap(snaperrors.KindNetwork, "fetch: failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retryable, snaperrors.Newf(snaperrors.KindNetwork,
			"fetch: unexpected status %d: %s", resp.StatusCode, bodySnippet(body))
	}
	return body, false, nil
}

// backoffDelay returns the sleep after the given failed attempt (1-based),
// doubling from RetryBaseDelay and capped at RetryMaxDelay.
func (f *Fetcher) backoffDelay(attempt int) time.Duration {
	delay := f.RetryBaseDelay
	if delay <= 0 {
		delay = DefaultRetryBaseDelay
	}
	limit := f.RetryMaxDelay
	if limit <= 0 {
		limit = DefaultRetryMaxDelay
	}
	for i := 1; i < attempt && delay < limit; i++ {
		delay *= 2
	}
	if delay > limit {
		delay = limit
	}
	return delay
}

// sleep waits for d or until ctx is done.
func (f *Fetcher) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *Fetcher) log() openapisnapshot.Logger {
	if f.Logger == nil {
		return openapisnapshot.NopLogger{}
	}
	return f.Logger
}

// buildHeader parses raw "Name: value" strings into an http.Header. Later
// entries with the same name replace earlier ones.
func buildHeader(raw []string) (http.Header, error) {
	header := make(http.Header)
	for _, entry := range raw {
		name, value, err := splitHeader(entry)
		if err != nil {
			return nil, err
		}
		header.Set(name, value)
	}
	return header, nil
}

// splitHeader splits one raw header on the first colon, trimming both
// sides. A missing colon or an empty name is a usage error.
func splitHeader(raw string) (name, value string, err error) {
	name, value, ok := strings.Cut(raw, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", snaperrors.Newf(snaperrors.KindUsage, "invalid header format: %s", raw)
	}
	return name, strings.TrimSpace(value), nil
}

// bodySnippet renders a response body for an error message: trimmed,
// truncated to snippetLimit bytes with a "..." marker, "<empty body>" when
// nothing printable remains.
func bodySnippet(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "<empty body>"
	}
	if len(trimmed) > snippetLimit {
		return trimmed[:snippetLimit] + "..."
	}
	return trimmed
}
