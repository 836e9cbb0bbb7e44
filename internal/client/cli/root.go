package cli

import (
	"bufio"
	"context"
	"fmt"
)

// getStatus renders the prompt status from the last session snapshot:
// "(email)" when signed in, "(...)" while an auth request runs.
func (a *App) getStatus() string {
	a.mu.Lock()
	s := a.session
	a.mu.Unlock()

	status := ""
	if s.IsAuthenticated && s.UserInfo != nil {
		status = s.UserInfo.Email
	}
	if s.IsValidating {
		if status != "" {
			status += " "
		}
		status += "..."
	}
	if status != "" {
		status = fmt.Sprintf("(%s)", status)
	}
	return status
}

// Root prints the landing page and runs the REPL on stdin.
func (a *App) Root(ctx context.Context) {
	unsubscribe := a.authService.Subscribe(a.onSession)
	defer unsubscribe()
	a.onSession(a.authService.State())

	printlnFn("Welcome to Yacht Transport (type 'help' for commands)")
	_ = a.open(ctx, PathLanding)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(lineReader{a.reader}))
}

// lineReader hands out at most one line per Read so the REPL scanner and
// the prompts can share one buffered stdin.
type lineReader struct {
	r *bufio.Reader
}

func (l lineReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := l.r.ReadByte()
		if err != nil {
			return n, err
		}
		p[n] = b
		n++
		if b == '\n' {
			break
		}
	}
	return n, nil
}
