package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/openapi-snapshot/config"
	"github.com/erraggy/openapi-snapshot/snaperrors"
)

// WriteAtomic writes contents to path through a temp file in the
// destination directory followed by a rename, creating parent directories
// as needed. Readers never observe partial output; on failure the temp file
// is removed and the prior destination state is untouched. The file keeps
// os.CreateTemp's owner-only permissions.
func WriteAtomic(path, contents string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return snaperrors.Wrap(snaperrors.KindIO, "output: failed to create output directory", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return snaperrors.Wrap(snaperrors.KindIO, "output: failed to create temp file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(contents); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return snaperrors.Wrap(snaperrors.KindIO, "output: failed to write temp file", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return snaperrors.Wrap(snaperrors.KindIO, "output: failed to flush temp file", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return snaperrors.Wrap(snaperrors.KindIO, "output: failed to close temp file", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return snaperrors.Wrap(snaperrors.KindIO, "output: failed to move temp file", err)
	}
	return nil
}

// Writer routes payloads to standard output or their configured files.
type Writer struct {
	// Stdout receives the primary payload in stdout mode. Nil means
	// os.Stdout.
	Stdout io.Writer
}

// WritePayloads persists one payload set per cfg. Stdout mode prints the
// primary payload with a trailing newline and ignores file destinations;
// otherwise the primary goes to cfg.Out and the outline, when present, to
// cfg.OutlineOut.
func (w *Writer) WritePayloads(cfg *config.Config, payloads *Payloads) error {
	if cfg.Stdout {
		out := w.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := fmt.Fprintln(out, payloads.Primary); err != nil {
			return snaperrors.Wrap(snaperrors.KindIO, "output: failed to write to stdout", err)
		}
		return nil
	}

	if cfg.Out == "" {
		return snaperrors.New(snaperrors.KindUsage, "--out is required unless --stdout is set.")
	}
	if err := WriteAtomic(cfg.Out, payloads.Primary); err != nil {
		return err
	}
	if payloads.HasOutline() && cfg.OutlineOut != "" {
		return WriteAtomic(cfg.OutlineOut, payloads.Outline)
	}
	return nil
}
