package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-crosscheck"}, &stdout, &stderr))
	require.Empty(t, stderr.String())

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 17)
	require.Contains(t, lines[0], "Matrix Multiplication Result")
	require.Equal(t, "Result[0][0] = 250", lines[1])
	require.Equal(t, "Result[3][3] = 1528", lines[16])
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
	require.Zero(t, stdout.Len())
}
