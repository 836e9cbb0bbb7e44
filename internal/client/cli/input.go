package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is swapped out in tests.
var readPassword = term.ReadPassword

const promptMarker = "> "

// Ask writes label followed by the prompt marker and returns one trimmed
// line. A final line without a newline still counts; empty input at EOF
// returns io.EOF.
//
//	Enter email
//	> _
func Ask(r *bufio.Reader, label string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n%s", label, promptMarker); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	default:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskDefault is Ask with a fallback shown in brackets and returned when
// the answer is blank. Quote form fields use it to keep what was typed
// on a previous attempt.
func AskDefault(r *bufio.Reader, label, fallback string, w io.Writer) (string, error) {
	if fallback != "" {
		label += " [" + fallback + "]"
	}
	answer, err := Ask(r, label, w)
	if err != nil || answer != "" {
		return answer, err
	}
	return fallback, nil
}

// AskPassword reads a password from the terminal with echo disabled.
// Callers wipe the result once the login request is built.
func AskPassword(w io.Writer) ([]byte, error) {
	if _, err := io.WriteString(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	_, _ = io.WriteString(w, "\n")
	return pw, err
}

// AskLines collects lines for free-text fields such as the trip comment
// until a blank line or EOF.
func AskLines(r *bufio.Reader, label string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n(blank line to finish)\n", label); err != nil {
		return "", err
	}

	var b strings.Builder
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(line)
		}
		if line == "" || err != nil {
			break
		}
	}
	return strings.TrimSpace(b.String()), nil
}
