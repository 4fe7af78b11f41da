package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// Terminal reads a secret from the user.
type Terminal interface {
	ReadPassword(prompt string) ([]byte, error)
}

// restorer is implemented by terminals that can put the tty back into its
// original state after an interrupted prompt.
type restorer interface {
	Restore() error
}

// TTY is the Terminal of a real process. It prompts on the controlling
// terminal and falls back to stdin and stderr when there is none.
type TTY struct {
	in      *os.File
	out     io.Writer
	ttyPath string

	mu    sync.Mutex
	fd    int
	state *term.State
}

// NewTTY returns a TTY that falls back to in and out when /dev/tty cannot be
// opened.
func NewTTY(in *os.File, out io.Writer) *TTY {
	return &TTY{in: in, out: out, ttyPath: "/dev/tty"}
}

// ReadPassword prints prompt and reads a password without echo. When the
// input is not a terminal, one line is read instead. The returned byte slice
// should be wiped by the caller when no longer needed.
func (t *TTY) ReadPassword(prompt string) ([]byte, error) {
	in, w := t.in, t.out
	if f, err := os.OpenFile(t.ttyPath, os.O_RDWR, 0); err == nil {
		defer f.Close()
		in, w = f, f
	}

	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}

	fd := int(in.Fd())
	if !isTerminal(fd) {
		line, err := readLine(bufio.NewReader(in))
		if err != nil {
			return nil, err
		}
		return []byte(line), nil
	}

	if st, err := term.GetState(fd); err == nil {
		t.setState(fd, st)
		defer t.setState(0, nil)
	}

	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// Restore puts the terminal back into the state saved by a ReadPassword that
// is still in progress. It is a no-op otherwise.
func (t *TTY) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == nil {
		return nil
	}
	return term.Restore(t.fd, t.state)
}

func (t *TTY) setState(fd int, st *term.State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fd, t.state = fd, st
}

// readLine reads a single line from reader with the trailing newline trimmed.
// If EOF occurs after some input was read, the partial line is returned.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
