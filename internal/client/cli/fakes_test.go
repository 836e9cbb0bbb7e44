package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/client/services"
)

// fakeAuth implements services.AuthService.
type fakeAuth struct {
	state models.Session
	nav   services.Navigator

	// LoginOK decides the outcome of Login.
	LoginOK  bool
	LoginErr error

	LastCreds    models.Credentials
	LastRedirect string
	LoginCalls   int
	LogoutCalls  int
	ClearCalls   int

	RefreshOK bool
	LogoutErr error
	// LogoutFails makes Logout record "Logout failed".
	LogoutFails bool
}

func (f *fakeAuth) Login(_ context.Context, creds models.Credentials, redirect string) error {
	f.LoginCalls++
	f.LastCreds, f.LastRedirect = creds, redirect
	if f.LoginErr != nil {
		return f.LoginErr
	}
	if !f.LoginOK {
		f.state = models.LoggedOutWithError(services.MsgInvalidCredentials)
		return nil
	}
	f.state = models.Session{IsAuthenticated: true, UserInfo: &models.UserInfo{ID: "u-1", Email: creds.Email}}
	if redirect != "" && f.nav != nil {
		f.nav.Navigate(redirect)
	}
	return nil
}

func (f *fakeAuth) Refresh(context.Context) bool {
	if !f.RefreshOK {
		f.state = models.LoggedOutWithError(services.MsgInvalidCredentials)
		return false
	}
	if f.state.UserInfo == nil {
		f.state = models.Session{IsAuthenticated: true, UserInfo: &models.UserInfo{ID: "u-1", Email: "yacht.admin@example.com"}}
	}
	return true
}

func (f *fakeAuth) Logout(context.Context) error {
	f.LogoutCalls++
	if f.LogoutErr != nil {
		return f.LogoutErr
	}
	if f.LogoutFails {
		f.state = models.LoggedOutWithError(services.MsgLogoutFailed)
		return nil
	}
	f.state = models.DefaultSession()
	return nil
}

func (f *fakeAuth) ClearError() {
	f.ClearCalls++
	f.state.Error = ""
	f.state.IsValidating = false
}

func (f *fakeAuth) State() models.Session { return f.state.Clone() }

func (f *fakeAuth) Subscribe(func(models.Session)) func() { return func() {} }

type fakeSchedule struct {
	State models.ScheduleState
	Calls int
}

func (f *fakeSchedule) NearestSailings(context.Context) models.ScheduleState {
	f.Calls++
	return f.State
}

// fakeQuote returns Outcomes in turn and records what it got.
type fakeQuote struct {
	Outcomes []services.SubmitOutcome
	Forms    []models.QuoteRequest
	Errors   map[string]string
}

func (f *fakeQuote) Submit(_ context.Context, in services.QuoteSubmission) services.SubmitOutcome {
	f.Forms = append(f.Forms, in.Form)
	out := f.Outcomes[0]
	if len(f.Outcomes) > 1 {
		f.Outcomes = f.Outcomes[1:]
	}
	for _, fe := range out.Validation.FieldErrors {
		in.Errors.SetError(fe.Field, fe.Message)
	}
	return out
}

// newTestApp builds an App over fakes; input is what the user types.
func newTestApp(t *testing.T, input string) (*App, *fakeAuth, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	fa := &fakeAuth{}
	a := &App{
		authService:     fa,
		scheduleService: &fakeSchedule{},
		quoteService:    &fakeQuote{},
		reader:          rdr(input),
		out:             out,
		current:         PathLanding,
	}
	fa.nav = a
	return a, fa, out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := askPassword
	askPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { askPassword = orig })
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}
