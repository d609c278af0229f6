package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestProfileLoader_Load(t *testing.T) {
	t.Parallel()

	path := writeProfile(t, `---
defaults:
  runs: 5
  warmup: 1
workloads:
  - name: quick
    command: echo hello
  - name: thorough
    command: sleep 1
    runs: 10
    parallel: 2
`)

	loader := NewProfileLoader(logrus.New())
	profile, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, profile.Workloads, 2)

	quick, err := profile.Workload("quick")
	require.NoError(t, err)
	require.Equal(t, "echo hello", quick.Command)
	require.Equal(t, 5, quick.Runs, "defaults apply when unset")
	require.Equal(t, 1, quick.Warmup)
	require.Equal(t, 1, quick.Parallel, "parallel falls back to 1")

	thorough, err := profile.Workload("thorough")
	require.NoError(t, err)
	require.Equal(t, 10, thorough.Runs, "workload value overrides defaults")
	require.Equal(t, 2, thorough.Parallel)
}

func TestProfileLoader_MissingFile(t *testing.T) {
	t.Parallel()

	loader := NewProfileLoader(logrus.New())
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "reading profile")
}

func TestProfileLoader_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no workloads",
			content: "defaults:\n  runs: 3\n",
			wantErr: "no workloads",
		},
		{
			name:    "missing name",
			content: "workloads:\n  - command: echo hi\n",
			wantErr: "name is required",
		},
		{
			name:    "missing command",
			content: "workloads:\n  - name: broken\n",
			wantErr: "command is required",
		},
		{
			name:    "malformed yaml",
			content: "workloads: [\n",
			wantErr: "parsing profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader := NewProfileLoader(logrus.New())
			_, err := loader.Load(writeProfile(t, tt.content))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestProfile_WorkloadNotFound(t *testing.T) {
	t.Parallel()

	path := writeProfile(t, "workloads:\n  - name: only\n    command: echo hi\n")

	loader := NewProfileLoader(logrus.New())
	profile, err := loader.Load(path)
	require.NoError(t, err)

	_, err = profile.Workload("other")
	require.ErrorContains(t, err, "not found")
}
