package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := newRootCmd()
	var out, errBuf bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errBuf.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateAcceptsWellFormedJSON(t *testing.T) {
	path := writeTempFile(t, "doc.json", `{"a":1}`)
	_, stderr, err := runCLI(t, "validate", path)
	require.NoError(t, err)
	require.Contains(t, stderr, "valid JSON")
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	path := writeTempFile(t, "doc.json", `{"a":}`)
	_, _, err := runCLI(t, "validate", path)
	require.Error(t, err)
}

func TestPrintCompact(t *testing.T) {
	path := writeTempFile(t, "doc.json", `{ "a" : 1 , "b" : [1,2] }`)
	stdout, _, err := runCLI(t, "print", "--profile=compact", path)
	require.NoError(t, err)
	require.Equal(t, `{"a":1,"b":[1,2]}`+"\n", stdout)
}

func TestPrintWithYAMLProfile(t *testing.T) {
	profilePath := writeTempFile(t, "profile.yaml", "preset: pretty\nindent:\n  count: 4\nalwaysExpand: true\n")
	docPath := writeTempFile(t, "doc.json", `[1,2]`)

	stdout, _, err := runCLI(t, "print", "--profile", profilePath, docPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "[\n    1,\n    2\n]"))
}

func TestCanonicalize(t *testing.T) {
	path := writeTempFile(t, "doc.json", `{"b":1,"a":1e1}`)
	stdout, _, err := runCLI(t, "canonicalize", path)
	require.NoError(t, err)
	require.Equal(t, `{"a":10,"b":1}`+"\n", stdout)
}

func TestDiff(t *testing.T) {
	before := writeTempFile(t, "before.json", `{"a":1,"b":2}`)
	after := writeTempFile(t, "after.json", `{"a":1,"b":3}`)

	stdout, _, err := runCLI(t, "diff", before, after)
	require.NoError(t, err)
	require.Contains(t, stdout, `"/b"`)
	require.Contains(t, stdout, "replace")
}

func TestValidateReadsFromStdin(t *testing.T) {
	old := os.Stdin
	defer func() { os.Stdin = old }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(`{"a":1}`)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	os.Stdin = r

	_, stderr, err := runCLI(t, "validate")
	require.NoError(t, err)
	require.Contains(t, stderr, "valid JSON")
}
