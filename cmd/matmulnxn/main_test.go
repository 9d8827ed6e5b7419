package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunDefault(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(nil, &stdout, &stderr))

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 37)
	require.Equal(t, "Result[0][0] = 91", lines[1])
	require.Equal(t, "Result[5][5] = 4326", lines[36])
}

func TestRunZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-n", "0", "-crosscheck"}, &stdout, &stderr))
	require.Equal(t, 1, strings.Count(stdout.String(), "\n"))
	require.NotContains(t, stdout.String(), "Result[")
}

func TestRunNegative(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run([]string{"-n", "-3"}, &stdout, &stderr))
	require.Zero(t, stdout.Len())
	require.Contains(t, stderr.String(), "-n must be >= 0")
}

func TestRunHugeSize(t *testing.T) {
	for _, n := range []string{"4294967296", "2000000"} {
		var stdout, stderr bytes.Buffer
		require.Equal(t, 1, run([]string{"-n", n}, &stdout, &stderr), n)
		require.Zero(t, stdout.Len())
		require.Contains(t, stderr.String(), "Error:")
		require.Contains(t, stderr.String(), "dimensions")
	}
}
