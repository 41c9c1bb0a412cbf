package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cclust/dataio"
	"github.com/katalvlaran/cclust/search"
)

const (
	pointsCSV      = "0,0\n0,1\n10,10\n10,11\n"
	constraintsCSV = "0,1,0,0\n1,0,0,0\n0,0,0,-1\n0,0,-1,0\n"
)

func writeInputs(t *testing.T) (dir, points, constraints string) {
	t.Helper()
	dir = t.TempDir()
	points = filepath.Join(dir, "points.csv")
	constraints = filepath.Join(dir, "constraints.csv")
	require.NoError(t, os.WriteFile(points, []byte(pointsCSV), 0o644))
	require.NoError(t, os.WriteFile(constraints, []byte(constraintsCSV), 0o644))

	return dir, points, constraints
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRunPrintsSummaryAndWritesArtifacts(t *testing.T) {
	dir, points, constraints := writeInputs(t)
	cfgPath := filepath.Join(dir, "run.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[search]\nmax-evaluations = 200\n"), 0o644))
	traces := filepath.Join(dir, "traces")
	report := filepath.Join(dir, "run.msgpack")

	out, err := execute(t, points, constraints, "7", "2", "local_search",
		"--config", cfgPath, "--trace-dir", traces, "--report", report, "--log-level", "error")
	require.NoError(t, err)

	for _, line := range []string{"Global cluster distance:", "Infeasibility:", "Fitness:", "Lambda:", "Elapsed:"} {
		assert.Contains(t, out, line)
	}

	matches, err := filepath.Glob(filepath.Join(traces, "local_search--*.npy"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	f, err := os.Open(report)
	require.NoError(t, err)
	defer f.Close()
	rep, err := dataio.ReadReport(f)
	require.NoError(t, err)
	assert.Equal(t, "local_search", rep.Algorithm)
	assert.Equal(t, int64(7), rep.Seed)
	assert.Equal(t, 2, rep.Clusters)
	assert.Equal(t, 2, rep.Constraints)
	assert.LessOrEqual(t, rep.Evaluations, 200)
}

func TestRunCOPKMeans(t *testing.T) {
	_, points, constraints := writeInputs(t)
	out, err := execute(t, points, constraints, "1", "2", "copkmeans_robust", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Fitness:")
}

func TestRunRejectsBadArguments(t *testing.T) {
	dir, points, constraints := writeInputs(t)
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"unknown search type", []string{points, constraints, "1", "2", "tabu"}, search.ErrUnknownAlgorithm},
		{"missing file", []string{filepath.Join(dir, "none.csv"), constraints, "1", "2", "local_search"}, os.ErrNotExist},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := execute(t, points, constraints, "seed", "2", "local_search")
	assert.Error(t, err)

	_, err = execute(t, points, constraints, "1")
	assert.Error(t, err)
}

func TestHelpListsSearchTypes(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	for _, a := range search.Algorithms() {
		assert.True(t, strings.Contains(out, a.String()), a.String())
	}
}

func TestPackageUsageExampleParses(t *testing.T) {
	ra, err := parseArgs([]string{"data.csv", "constraints.csv", "42", "3", "memeelitist"})
	require.NoError(t, err)
	assert.Equal(t, search.MemeticElitist, ra.algo)
	assert.Equal(t, int64(42), ra.seed)
	assert.Equal(t, 3, ra.k)
}
