package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/openapi-snapshot/snaperrors"
)

// DefaultFileName is the config file looked for in the working directory
// when --config is not given.
const DefaultFileName = ".openapi-snapshot.yaml"

// File is the optional on-disk YAML configuration. Every field is optional;
// set fields sit below flags and above the built-in defaults. Pointer fields
// distinguish "absent" from a zero value.
type File struct {
	URL        string   `yaml:"url"`
	Out        string   `yaml:"out"`
	OutlineOut string   `yaml:"outline_out"`
	Reduce     string   `yaml:"reduce"`
	Profile    string   `yaml:"profile"`
	Minify     *bool    `yaml:"minify"`
	TimeoutMS  *int64   `yaml:"timeout_ms"`
	Headers    []string `yaml:"headers"`
	IntervalMS *int64   `yaml:"interval_ms"`
}

// LoadFile reads and decodes a YAML config file. Unknown keys are rejected.
// When explicit is false the path is a well-known location and a missing
// file simply yields an empty File; an explicitly requested file must exist
// and parse.
func LoadFile(path string, explicit bool) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, snaperrors.Wrap(snaperrors.KindUsage, fmt.Sprintf("config: failed to read %s", path), err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		// An empty file decodes to EOF, which is fine for optional config.
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, snaperrors.Wrap(snaperrors.KindUsage, fmt.Sprintf("config: invalid YAML in %s", path), err)
	}
	return &f, nil
}
