package watch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/erraggy/openapi-snapshot/snaperrors"
)

// promptForURL offers the one-shot interactive recovery. It returns the
// accepted replacement URL, or "" when declined (blank input, EOF, or a
// non-interactive stdin). Unusable input reprompts.
func (l *Loop) promptForURL(defaultURL string) (string, error) {
	if !l.interactive() {
		return "", nil
	}

	in := bufio.NewScanner(l.input())
	for {
		fmt.Fprintf(l.promptWriter(), "OpenAPI URL (default: %s) - enter port or URL: ", defaultURL)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return "", snaperrors.Wrap(snaperrors.KindIO, "watch: failed to read input", err)
			}
			return "", nil
		}
		trimmed := strings.TrimSpace(in.Text())
		if trimmed == "" {
			return "", nil
		}
		if url, ok := NormalizeUserURL(trimmed); ok {
			return url, nil
		}
		fmt.Fprintln(l.promptWriter(), "Invalid input. Enter a port (e.g., 3000) or full URL.")
	}
}

// NormalizeUserURL maps prompt input to a fetchable URL: a bare port
// becomes http://localhost:<port>/api-docs/openapi.json, an http:// or
// https:// URL passes through unchanged, and anything with a colon is
// taken as host:port and given the scheme and standard path. ok is false
// for everything else.
func NormalizeUserURL(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}
	if isAllDigits(trimmed) {
		return "http://localhost:" + trimmed + "/api-docs/openapi.json", true
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed, true
	}
	if strings.Contains(trimmed, ":") {
		return "http://" + trimmed + "/api-docs/openapi.json", true
	}
	return "", false
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (l *Loop) interactive() bool {
	if l.isTerminal != nil {
		return l.isTerminal()
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (l *Loop) input() io.Reader {
	if l.Input != nil {
		return l.Input
	}
	return os.Stdin
}
