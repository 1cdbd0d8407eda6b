package config

import (
	"time"

	"github.com/erraggy/openapi-snapshot/reduce"
	"github.com/erraggy/openapi-snapshot/snaperrors"
)

// Built-in defaults, applied below flag and file values.
const (
	// DefaultURL is the endpoint used when no URL is configured.
	DefaultURL = "http://localhost:3000/api-docs/openapi.json"
	// DefaultOut is the primary destination used when no path is configured.
	DefaultOut = "openapi/backend_openapi.json"
	// DefaultOutlineOut is the watch-mode outline destination.
	DefaultOutlineOut = "openapi/backend_openapi.outline.json"
	// DefaultReduce is the reduce list applied in watch mode with the full
	// profile when none is configured.
	DefaultReduce = "paths,components"
	// DefaultTimeout bounds a single fetch attempt.
	DefaultTimeout = 10 * time.Second
	// DefaultInterval is the watch poll interval.
	DefaultInterval = 2 * time.Second
)

// Profile selects what the primary payload contains.
type Profile string

const (
	// ProfileFull emits the fetched document, optionally reduced.
	ProfileFull Profile = "full"
	// ProfileOutline emits the outline projection as the only payload.
	ProfileOutline Profile = "outline"
)

// ValidProfiles returns all supported profiles.
func ValidProfiles() []Profile {
	return []Profile{ProfileFull, ProfileOutline}
}

// ParseProfile converts a raw flag or file value into a Profile.
func ParseProfile(raw string) (Profile, error) {
	switch Profile(raw) {
	case ProfileFull:
		return ProfileFull, nil
	case ProfileOutline:
		return ProfileOutline, nil
	default:
		return "", snaperrors.Newf(snaperrors.KindUsage, "unsupported profile: %s", raw)
	}
}

// Config is the resolved configuration for one run. The CLI layer builds it
// once; everything downstream treats it as read-only.
type Config struct {
	// URL is the endpoint serving the OpenAPI document.
	URL string
	// URLFromDefault records whether URL is still the untouched built-in
	// default. It gates the watch loop's one-shot recovery prompt.
	URLFromDefault bool
	// Out is the primary destination path. May be empty in stdout mode.
	Out string
	// OutlineOut is the secondary outline destination (full profile only).
	OutlineOut string
	// Reduce lists the top-level keys to keep, in order. Empty means the
	// document passes through whole.
	Reduce []reduce.Key
	// Profile selects full or outline output.
	Profile Profile
	// Minify emits compact JSON instead of the default two-space indent.
	Minify bool
	// Timeout bounds each fetch attempt.
	Timeout time.Duration
	// Headers are raw "Name: value" strings forwarded to the fetcher.
	Headers []string
	// Stdout prints the primary payload instead of writing files.
	Stdout bool
	// Interval is the watch poll interval; unused in one-shot mode.
	Interval time.Duration
}

// Validate checks cross-field constraints. Messages speak in flag terms
// because flags are how these fields are set.
func (c *Config) Validate() error {
	if !c.Stdout && c.Out == "" {
		return snaperrors.New(snaperrors.KindUsage, "--out is required unless --stdout is set.")
	}
	if c.Profile == ProfileOutline {
		if len(c.Reduce) > 0 {
			return snaperrors.New(snaperrors.KindUsage, "--reduce is not supported with --profile outline.")
		}
		if c.OutlineOut != "" {
			return snaperrors.New(snaperrors.KindUsage, "--outline-out is not supported with --profile outline.")
		}
	}
	return nil
}
