package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/openapi-snapshot/reduce"
	"github.com/erraggy/openapi-snapshot/snaperrors"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "http://localhost:3000/api-docs/openapi.json", DefaultURL)
	assert.Equal(t, "openapi/backend_openapi.json", DefaultOut)
	assert.Equal(t, "openapi/backend_openapi.outline.json", DefaultOutlineOut)
	assert.Equal(t, "paths,components", DefaultReduce)
	assert.Equal(t, 10*time.Second, DefaultTimeout)
	assert.Equal(t, 2*time.Second, DefaultInterval)

	// The default reduce list must parse with the reduce package itself.
	keys, err := reduce.ParseKeyList(DefaultReduce)
	require.NoError(t, err)
	assert.Equal(t, []reduce.Key{reduce.KeyPaths, reduce.KeyComponents}, keys)
}

func TestParseProfile(t *testing.T) {
	cases := []struct {
		raw     string
		want    Profile
		wantErr string
	}{
		{raw: "full", want: ProfileFull},
		{raw: "outline", want: ProfileOutline},
		{raw: "Full", wantErr: "unsupported profile: Full"},
		{raw: "OUTLINE", wantErr: "unsupported profile: OUTLINE"},
		{raw: "", wantErr: "unsupported profile: "},
		{raw: "summary", wantErr: "unsupported profile: summary"},
	}
	for _, tc := range cases {
		t.Run("parse "+tc.raw, func(t *testing.T) {
			got, err := ParseProfile(tc.raw)
			if tc.wantErr != "" {
				require.EqualError(t, err, tc.wantErr)
				kind, ok := snaperrors.KindOf(err)
				require.True(t, ok)
				assert.Equal(t, snaperrors.KindUsage, kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidProfiles(t *testing.T) {
	assert.Equal(t, []Profile{ProfileFull, ProfileOutline}, ValidProfiles())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "full profile with destination",
			cfg:  Config{Profile: ProfileFull, Out: "openapi/spec.json"},
		},
		{
			name: "stdout without destination",
			cfg:  Config{Profile: ProfileFull, Stdout: true},
		},
		{
			name: "stdout with destination is valid but warned elsewhere",
			cfg:  Config{Profile: ProfileFull, Stdout: true, Out: "spec.json"},
		},
		{
			name: "outline profile with stdout",
			cfg:  Config{Profile: ProfileOutline, Stdout: true},
		},
		{
			name:    "no destination and no stdout",
			cfg:     Config{Profile: ProfileFull},
			wantErr: "--out is required unless --stdout is set.",
		},
		{
			name: "outline profile rejects reduce",
			cfg: Config{
				Profile: ProfileOutline,
				Out:     "spec.json",
				Reduce:  []reduce.Key{reduce.KeyPaths},
			},
			wantErr: "--reduce is not supported with --profile outline.",
		},
		{
			name: "outline profile rejects outline destination",
			cfg: Config{
				Profile:    ProfileOutline,
				Out:        "spec.json",
				OutlineOut: "spec.outline.json",
			},
			wantErr: "--outline-out is not supported with --profile outline.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.wantErr)
			kind, ok := snaperrors.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, snaperrors.KindUsage, kind)
			assert.Equal(t, 1, snaperrors.ExitCode(err))
		})
	}
}
