package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSortOverwritesInput(t *testing.T) {
	path := writeTemp(t, "notes.md", "# Banana\ntext\n# Apple\nmore")

	out, err := run(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Equal(t, "# Apple\nmore\n\n# Banana\ntext", readFile(t, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSortToSeparateOutput(t *testing.T) {
	in := writeTemp(t, "notes.md", "# B\n# A")
	outPath := filepath.Join(t.TempDir(), "sorted.md")

	_, err := run(t, in, outPath)
	require.NoError(t, err)
	assert.Equal(t, "# B\n# A", readFile(t, in))
	assert.Equal(t, "# A\n\n# B", readFile(t, outPath))
}

func TestSortStdoutAndFold(t *testing.T) {
	in := writeTemp(t, "notes.md", "# Straße\n# STRASSE")

	out, err := run(t, "--stdout", in)
	require.NoError(t, err)
	assert.Equal(t, "# STRASSE\n\n# Straße", out)

	out, err = run(t, "--stdout", "--fold", in)
	require.NoError(t, err)
	assert.Equal(t, "# Straße\n\n# STRASSE", out)
}

func TestSortHTML(t *testing.T) {
	in := writeTemp(t, "notes.md", "# B\n# A")

	out, err := run(t, "--stdout", "--html", in)
	require.NoError(t, err)
	assert.True(t, strings.Index(out, ">A</h1>") < strings.Index(out, ">B</h1>"), out)
}

func TestSortMissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.md")
	_, err := run(t, missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read "+missing)
}

func TestSortUnwritableOutput(t *testing.T) {
	in := writeTemp(t, "notes.md", "# B\n# A")
	_, err := run(t, in, filepath.Join(t.TempDir(), "no", "such", "dir", "out.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write ")
}

func TestSortRequiresInput(t *testing.T) {
	_, err := run(t)
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	good := writeTemp(t, "good.md", "# A\n\n# B")
	bad := writeTemp(t, "bad.md", "# B\n## y\n## x\n# A")

	out, err := run(t, "check", good)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "check", good, bad)
	assert.ErrorIs(t, err, errUnsorted)
	assert.Contains(t, out, bad+`: top level: "B" should come after "A"`)
	assert.Contains(t, out, bad+`: B: "y" should come after "x"`)
	assert.Contains(t, out, "1 of 2 files need sorting")
	assert.Equal(t, "# B\n## y\n## x\n# A", readFile(t, bad))
}

func TestBatch(t *testing.T) {
	a := writeTemp(t, "a.md", "# B\n# A")
	b := writeTemp(t, "b.md", "# A\n\n# B")

	out, err := run(t, "batch", "-j", "2", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "sorted    "+a)
	assert.Contains(t, out, "unchanged "+b)
	assert.Equal(t, "# A\n\n# B", readFile(t, a))
}

func TestBatchDryRunAndFailures(t *testing.T) {
	a := writeTemp(t, "a.md", "# B\n# A")
	missing := filepath.Join(t.TempDir(), "missing.md")

	out, err := run(t, "batch", "--dry-run", a, missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Contains(t, out, "failed    "+missing)
	assert.Equal(t, "# B\n# A", readFile(t, a))
}
