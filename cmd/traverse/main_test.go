package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "traverse version ")
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "plot7-rotated")
}

func TestSolveCommand(t *testing.T) {
	out, err := execute(t, "solve", "rectangle", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Rectangle")

	_, err = execute(t, "solve", "rectangle", "--format", "csv")
	assert.Error(t, err)

	_, err = execute(t, "solve", "rectangle", "--format", "json", "--unit", "chains")
	assert.Error(t, err)
}

func TestDiagramCommand(t *testing.T) {
	out, err := execute(t, "diagram", "rectangle", "--width", "640", "--height", "480")
	require.NoError(t, err)
	assert.Contains(t, out, `width="640"`)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", "rectangle", "--min-precision", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	_, err = execute(t, "validate", "plot7", "--min-precision", "20000")
	assert.Error(t, err)
}
