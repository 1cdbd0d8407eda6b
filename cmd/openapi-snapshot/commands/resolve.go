package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/erraggy/openapi-snapshot/config"
	"github.com/erraggy/openapi-snapshot/reduce"
)

// resolveConfig merges flag values, the optional config file, and the
// built-in defaults into one Config. Precedence is flag > file > default;
// an explicit flag wins even when it repeats the default value. watchMode
// enables the watch-only defaults for reduce and the outline destination.
func resolveConfig(cmd *cobra.Command, opts *rootOptions, watchMode bool) (*config.Config, error) {
	file, err := loadConfigFile(cmd, opts)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed

	profileRaw := string(config.ProfileFull)
	switch {
	case changed("profile"):
		profileRaw = opts.Profile
	case file.Profile != "":
		profileRaw = file.Profile
	}
	profile, err := config.ParseProfile(profileRaw)
	if err != nil {
		return nil, err
	}

	url := config.DefaultURL
	urlFromDefault := true
	switch {
	case changed("url"):
		url = opts.URL
		urlFromDefault = false
	case file.URL != "":
		url = file.URL
		urlFromDefault = false
	}

	out := ""
	switch {
	case changed("out"):
		out = opts.Out
	case file.Out != "":
		out = file.Out
	}
	if !opts.Stdout && out == "" {
		out = config.DefaultOut
	}

	outlineOut := ""
	switch {
	case changed("outline-out"):
		outlineOut = opts.OutlineOut
	case file.OutlineOut != "":
		outlineOut = file.OutlineOut
	}
	if outlineOut == "" && watchMode && !opts.Watch.NoOutline && profile == config.ProfileFull {
		outlineOut = config.DefaultOutlineOut
	}

	reduceRaw, reduceSet := "", false
	switch {
	case changed("reduce"):
		reduceRaw, reduceSet = opts.Reduce, true
	case file.Reduce != "":
		reduceRaw, reduceSet = file.Reduce, true
	}
	var reduceKeys []reduce.Key
	switch {
	case reduceSet:
		reduceKeys, err = reduce.ParseKeyList(reduceRaw)
	case watchMode && profile == config.ProfileFull:
		reduceKeys, err = reduce.ParseKeyList(config.DefaultReduce)
	}
	if err != nil {
		return nil, err
	}

	minify := false
	switch {
	case changed("minify"):
		minify = opts.Minify
	case file.Minify != nil:
		minify = *file.Minify
	}

	timeoutMS := config.DefaultTimeout.Milliseconds()
	switch {
	case changed("timeout-ms"):
		timeoutMS = opts.TimeoutMS
	case file.TimeoutMS != nil:
		timeoutMS = *file.TimeoutMS
	}

	headers := file.Headers
	if changed("header") {
		headers = opts.Headers
	}

	intervalMS := config.DefaultInterval.Milliseconds()
	switch {
	case changed("interval-ms"):
		intervalMS = opts.Watch.IntervalMS
	case file.IntervalMS != nil:
		intervalMS = *file.IntervalMS
	}

	cfg := &config.Config{
		URL:            url,
		URLFromDefault: urlFromDefault,
		Out:            out,
		OutlineOut:     outlineOut,
		Reduce:         reduceKeys,
		Profile:        profile,
		Minify:         minify,
		Timeout:        time.Duration(timeoutMS) * time.Millisecond,
		Headers:        headers,
		Stdout:         opts.Stdout,
		Interval:       time.Duration(intervalMS) * time.Millisecond,
	}

	if cfg.Stdout && cfg.Out != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "--out is ignored because --stdout is set.")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile reads the YAML config. An explicit --config path must
// exist; the implicit default file may be absent.
func loadConfigFile(cmd *cobra.Command, opts *rootOptions) (*config.File, error) {
	path := opts.ConfigPath
	explicit := cmd.Flags().Changed("config")
	if path == "" {
		path = config.DefaultFileName
	}
	return config.LoadFile(path, explicit)
}
