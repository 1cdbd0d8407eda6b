package output

import (
	"context"

	openapisnapshot "github.com/erraggy/openapi-snapshot"
	"github.com/erraggy/openapi-snapshot/config"
	"github.com/erraggy/openapi-snapshot/document"
	"github.com/erraggy/openapi-snapshot/fetch"
	"github.com/erraggy/openapi-snapshot/outline"
	"github.com/erraggy/openapi-snapshot/reduce"
	"github.com/erraggy/openapi-snapshot/snaperrors"
)

// Payloads is the serialized result of one snapshot cycle.
type Payloads struct {
	// Primary is the main payload: the (possibly reduced) document under
	// the full profile, the outline under the outline profile.
	Primary string
	// Outline is the secondary payload, produced only when the full
	// profile has an outline destination configured. Empty means absent —
	// a real outline serialization is never the empty string.
	Outline string
}

// HasOutline reports whether a secondary outline payload was produced.
func (p *Payloads) HasOutline() bool {
	return p.Outline != ""
}

// Builder produces payloads from a single fetch of the configured endpoint.
type Builder struct {
	// Fetcher performs the HTTP retrieval. Nil means fetch.New().
	Fetcher *fetch.Fetcher
	// Logger receives per-build debug lines.
	Logger openapisnapshot.Logger
}

// NewBuilder returns a Builder with a default Fetcher.
func NewBuilder() *Builder {
	return &Builder{
		Fetcher: fetch.New(),
		Logger:  openapisnapshot.NopLogger{},
	}
}

// Build fetches the document once, parses it once, and derives every
// payload the configuration asks for from that single snapshot.
func (b *Builder) Build(ctx context.Context, cfg *config.Config) (*Payloads, error) {
	fetcher := b.Fetcher
	if fetcher == nil {
		fetcher = fetch.New()
	}
	body, err := fetcher.Fetch(ctx, cfg.URL, cfg.Headers, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	doc, err := document.Parse(body)
	if err != nil {
		return nil, err
	}

	if cfg.Profile == config.ProfileOutline {
		outlined, err := outline.Build(doc)
		if err != nil {
			return nil, err
		}
		primary, err := serialize(outlined, cfg.Minify)
		if err != nil {
			return nil, err
		}
		b.log().Debug("built outline payload", "bytes", len(primary))
		return &Payloads{Primary: primary}, nil
	}

	full := doc
	if len(cfg.Reduce) > 0 {
		full, err = reduce.Apply(doc, cfg.Reduce)
		if err != nil {
			return nil, err
		}
	}
	primary, err := serialize(full, cfg.Minify)
	if err != nil {
		return nil, err
	}
	payloads := &Payloads{Primary: primary}

	if cfg.OutlineOut != "" {
		// The outline always projects the pre-reduce document.
		outlined, err := outline.Build(doc)
		if err != nil {
			return nil, err
		}
		payloads.Outline, err = serialize(outlined, cfg.Minify)
		if err != nil {
			return nil, err
		}
	}
	b.log().Debug("built payloads", "primary_bytes", len(payloads.Primary), "outline", payloads.HasOutline())
	return payloads, nil
}

func (b *Builder) log() openapisnapshot.Logger {
	if b.Logger == nil {
		return openapisnapshot.NopLogger{}
	}
	return b.Logger
}

// serialize renders a document: two-space indent by default, compact when
// minify is set.
func serialize(doc *document.Value, minify bool) (string, error) {
	var data []byte
	var err error
	if minify {
		data, err = doc.MarshalJSON()
	} else {
		data, err = doc.MarshalIndent("", "  ")
	}
	if err != nil {
		return "", snaperrors.Wrap(snaperrors.KindParse, "output: failed to serialize document", err)
	}
	return string(data), nil
}
