package watch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/erraggy/openapi-snapshot/config"
	"github.com/erraggy/openapi-snapshot/fetch"
	"github.com/erraggy/openapi-snapshot/output"
)

const watchDoc = `{"openapi":"3.0.3","paths":{}}`

var errStopLoop = errors.New("stop loop")

// scriptedServer serves one status per request, repeating the last entry
// once the script runs out. 200 responses carry doc; everything else
// carries a short error body.
func scriptedServer(t *testing.T, doc string, script ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(calls.Add(1)) - 1
		status := script[len(script)-1]
		if n < len(script) {
			status = script[n]
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprint(w, "upstream unavailable")
			return
		}
		fmt.Fprint(w, doc)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

// sleepRecorder stands in for the loop's sleep and stops the run once
// limit sleeps have been requested.
type sleepRecorder struct {
	sleeps []time.Duration
	limit  int
}

func (r *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	r.sleeps = append(r.sleeps, d)
	if len(r.sleeps) >= r.limit {
		return errStopLoop
	}
	return nil
}

func newTestLoop(rec *sleepRecorder) (*Loop, *bytes.Buffer) {
	fetcher := fetch.New()
	fetcher.MaxAttempts = 1
	fetcher.RetryBaseDelay = time.Millisecond
	fetcher.RetryMaxDelay = 4 * time.Millisecond
	prompt := &bytes.Buffer{}
	return &Loop{
		Builder:    &output.Builder{Fetcher: fetcher},
		Writer:     &output.Writer{},
		Prompt:     prompt,
		isTerminal: func() bool { return false },
		sleepFn:    rec.sleep,
	}, prompt
}

func watchConfig(url, out string) *config.Config {
	return &config.Config{
		URL:      url,
		Out:      out,
		Profile:  config.ProfileFull,
		Minify:   true,
		Timeout:  time.Second,
		Interval: 300 * time.Millisecond,
	}
}

func TestLoopBackoffAndReset(t *testing.T) {
	srv, calls := scriptedServer(t, watchDoc,
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		http.StatusOK,
		http.StatusInternalServerError,
	)
	out := filepath.Join(t.TempDir(), "snapshot.json")
	cfg := watchConfig(srv.URL, out)
	cfg.Interval = 2 * time.Second

	rec := &sleepRecorder{limit: 5}
	loop, _ := newTestLoop(rec)

	require.NoError(t, loop.Run(context.Background(), cfg))
	require.EqualValues(t, 5, calls.Load())

	// Three failures double from the interval and clamp at the max; the
	// success resets to the interval; the next failure doubles again.
	require.Equal(t, []time.Duration{
		4 * time.Second,
		8 * time.Second,
		10 * time.Second,
		2 * time.Second,
		4 * time.Second,
	}, rec.sleeps)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, watchDoc, string(data))
}

func TestLoopPromptSwitchesURL(t *testing.T) {
	badSrv, badCalls := scriptedServer(t, watchDoc, http.StatusNotFound)
	goodSrv, goodCalls := scriptedServer(t, watchDoc, http.StatusOK)
	out := filepath.Join(t.TempDir(), "snapshot.json")

	cfg := watchConfig(badSrv.URL, out)
	cfg.URLFromDefault = true

	rec := &sleepRecorder{limit: 1}
	loop, prompt := newTestLoop(rec)
	loop.isTerminal = func() bool { return true }
	loop.Input = strings.NewReader(goodSrv.URL + "\n")

	require.NoError(t, loop.Run(context.Background(), cfg))

	require.EqualValues(t, 1, badCalls.Load())
	require.EqualValues(t, 1, goodCalls.Load())
	require.Contains(t, prompt.String(),
		fmt.Sprintf("OpenAPI URL (default: %s) - enter port or URL: ", badSrv.URL))
	require.Contains(t, prompt.String(),
		fmt.Sprintf("Switching watch URL from default to %q after prompt.\n", goodSrv.URL))

	// The accepted URL retries immediately; the only sleep is the
	// post-success interval.
	require.Equal(t, []time.Duration{300 * time.Millisecond}, rec.sleeps)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, watchDoc, string(data))
}

func TestLoopPromptDeclinedStillConsumed(t *testing.T) {
	srv, calls := scriptedServer(t, watchDoc, http.StatusNotFound)
	cfg := watchConfig(srv.URL, filepath.Join(t.TempDir(), "snapshot.json"))
	cfg.URLFromDefault = true

	rec := &sleepRecorder{limit: 2}
	loop, prompt := newTestLoop(rec)
	loop.isTerminal = func() bool { return true }
	loop.Input = strings.NewReader("\n")

	require.NoError(t, loop.Run(context.Background(), cfg))

	require.EqualValues(t, 2, calls.Load())
	require.Equal(t, 1, strings.Count(prompt.String(), "OpenAPI URL"))
	require.Equal(t, []time.Duration{
		600 * time.Millisecond,
		1200 * time.Millisecond,
	}, rec.sleeps)
}

func TestLoopNonInteractiveSkipsPrompt(t *testing.T) {
	srv, calls := scriptedServer(t, watchDoc, http.StatusNotFound)
	cfg := watchConfig(srv.URL, filepath.Join(t.TempDir(), "snapshot.json"))
	cfg.URLFromDefault = true

	rec := &sleepRecorder{limit: 2}
	loop, prompt := newTestLoop(rec)

	require.NoError(t, loop.Run(context.Background(), cfg))

	require.EqualValues(t, 2, calls.Load())
	require.Zero(t, prompt.Len())
	require.Equal(t, []time.Duration{
		600 * time.Millisecond,
		1200 * time.Millisecond,
	}, rec.sleeps)
}

func TestLoopNotFromDefaultSkipsPrompt(t *testing.T) {
	srv, calls := scriptedServer(t, watchDoc, http.StatusNotFound)
	cfg := watchConfig(srv.URL, filepath.Join(t.TempDir(), "snapshot.json"))

	rec := &sleepRecorder{limit: 2}
	loop, prompt := newTestLoop(rec)
	loop.isTerminal = func() bool { return true }
	loop.Input = strings.NewReader("http://localhost:9999/other.json\n")

	require.NoError(t, loop.Run(context.Background(), cfg))

	require.EqualValues(t, 2, calls.Load())
	require.Zero(t, prompt.Len())
}

func TestLoopWriteErrorDoesNotBackoff(t *testing.T) {
	srv, calls := scriptedServer(t, watchDoc, http.StatusOK)

	// Point the output at a non-empty directory so every write fails.
	out := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "keep.txt"), []byte("keep"), 0o600))

	cfg := watchConfig(srv.URL, out)

	rec := &sleepRecorder{limit: 2}
	loop, _ := newTestLoop(rec)

	require.NoError(t, loop.Run(context.Background(), cfg))

	require.EqualValues(t, 2, calls.Load())
	require.Equal(t, []time.Duration{
		300 * time.Millisecond,
		300 * time.Millisecond,
	}, rec.sleeps)
}

func TestLoopMinIntervalFloor(t *testing.T) {
	srv, _ := scriptedServer(t, watchDoc, http.StatusOK)
	cfg := watchConfig(srv.URL, filepath.Join(t.TempDir(), "snapshot.json"))
	cfg.Interval = 10 * time.Millisecond

	rec := &sleepRecorder{limit: 1}
	loop, _ := newTestLoop(rec)

	require.NoError(t, loop.Run(context.Background(), cfg))
	require.Equal(t, []time.Duration{MinInterval}, rec.sleeps)
}

func TestLoopContextAlreadyCanceled(t *testing.T) {
	srv, calls := scriptedServer(t, watchDoc, http.StatusOK)
	cfg := watchConfig(srv.URL, filepath.Join(t.TempDir(), "snapshot.json"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &sleepRecorder{limit: 1}
	loop, _ := newTestLoop(rec)

	require.NoError(t, loop.Run(ctx, cfg))
	require.Zero(t, calls.Load())
	require.Empty(t, rec.sleeps)
}

func TestNextDelay(t *testing.T) {
	cases := []struct {
		name    string
		current time.Duration
		want    time.Duration
	}{
		{name: "doubles", current: 250 * time.Millisecond, want: 500 * time.Millisecond},
		{name: "doubles to max", current: 5 * time.Second, want: 10 * time.Second},
		{name: "stays at max", current: 10 * time.Second, want: 10 * time.Second},
		{name: "clamps above max", current: 20 * time.Second, want: 10 * time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, nextDelay(tc.current))
		})
	}
}
