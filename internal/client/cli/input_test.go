package cli

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTerminal(t *testing.T, terminal bool, read func(int) ([]byte, error)) {
	t.Helper()
	origRead, origIs := readPassword, isTerminal
	readPassword = read
	isTerminal = func(int) bool { return terminal }
	t.Cleanup(func() { readPassword, isTerminal = origRead, origIs })
}

func newTestTTY(t *testing.T, input string) (*TTY, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	var out bytes.Buffer
	tty := NewTTY(f, &out)
	tty.ttyPath = filepath.Join(t.TempDir(), "no-tty")
	return tty, &out
}

func TestTTY_ReadPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return []byte("hunter2"), nil })
	tty, out := newTestTTY(t, "")

	pw, err := tty.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", string(pw))
	assert.Equal(t, "Password: \n", out.String())
	require.NoError(t, tty.Restore())
}

func TestTTY_ReadPassword_Error(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return nil, errors.New("boom") })
	tty, _ := newTestTTY(t, "")

	_, err := tty.ReadPassword("Password: ")
	require.Error(t, err)
}

func TestTTY_ReadPassword_NotATerminal(t *testing.T) {
	stubTerminal(t, false, func(int) ([]byte, error) {
		t.Fatal("must not read without echo from a non-terminal")
		return nil, nil
	})
	tty, out := newTestTTY(t, "piped secret\nsecond line\n")

	pw, err := tty.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "piped secret", string(pw))
	assert.Equal(t, "Password: ", out.String())
}

func TestTTY_ReadPassword_EmptyInput(t *testing.T) {
	stubTerminal(t, false, nil)
	tty, _ := newTestTTY(t, "")

	_, err := tty.ReadPassword("Password: ")
	require.Error(t, err)
}

func TestTTY_Restore_Idle(t *testing.T) {
	tty := NewTTY(os.Stdin, &bytes.Buffer{})
	require.NoError(t, tty.Restore())
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello world\n", "hello world"},
		{"crlf\r\n", "crlf"},
		{"lastline", "lastline"},
		{"  spaced  \n", "  spaced  "},
	}
	for _, tt := range tests {
		got, err := readLine(bufio.NewReader(strings.NewReader(tt.in)))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
