package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "response.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestRunRequiresCommand(t *testing.T) {
	require.Error(t, run(nil))
	require.Error(t, run([]string{"bogus"}))
}

func TestHelp(t *testing.T) {
	require.NoError(t, run([]string{"help"}))
	require.NoError(t, run([]string{"help", "check"}))
	require.NoError(t, run([]string{"help", "fmt"}))
	require.Error(t, run([]string{"help", "bogus"}))
}

func TestCheckValidResponse(t *testing.T) {
	p := writeTemp(t, `{"data":{"user":{"id":1}}}`)
	require.NoError(t, run([]string{"check", "-in", p}))
}

func TestCheckRejectsUnknownKey(t *testing.T) {
	p := writeTemp(t, `{"data":null,"debug":true}`)
	err := run([]string{"check", "-in", p})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected top-level key")
}

func TestCheckRejectsEmptyErrors(t *testing.T) {
	p := writeTemp(t, `{"errors":[]}`)
	err := run([]string{"check", "-in", p})
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be empty")
}

func TestCheckRejectsBadJSON(t *testing.T) {
	p := writeTemp(t, `{"data":`)
	require.Error(t, run([]string{"check", "-in", p}))
}

func TestFmtCanonicalizes(t *testing.T) {
	in := writeTemp(t, "{\n  \"data\": {\"b\": 1,   \"a\": 2.0}\n}\n")
	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, run([]string{"fmt", "-in", in, "-out", out}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	// Key order is preserved and floats stay floating.
	require.Equal(t, `{"data":{"b":1,"a":2.0}}`+"\n", string(got))
}

func TestFmtPretty(t *testing.T) {
	in := writeTemp(t, `{"data":{"a":1}}`)
	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, run([]string{"fmt", "-in", in, "-out", out, "-pretty"}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"data\": {\n    \"a\": 1\n  }\n}\n", string(got))
}
