package main

import (
	"bytes"
	"strings"
	"testing"

	hauth "text-summarizer/internal/handler/http/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"run", "tones", "token", "version"})
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func TestTonesCmd(t *testing.T) {
	out := run(t, "tones")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "Default"))
	assert.Contains(t, lines[0], "(no instruction)")
	assert.Contains(t, out, "Summarize in a formal tone: ")
	assert.Contains(t, out, "Summarize in a concise tone: ")
}

func TestVersionCmd(t *testing.T) {
	out := run(t, "version")
	assert.True(t, strings.HasPrefix(out, "summarize version "))
}

func TestRunCmd_RejectsArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "extra"})
	assert.Error(t, cmd.Execute())
}

func TestTokenCmd(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret")

	out := run(t, "token", "--subject", "alice", "--ttl", "1h")

	subject, err := hauth.ValidateToken("Bearer "+strings.TrimSpace(out), []byte("cli-test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenCmd_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"token"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
