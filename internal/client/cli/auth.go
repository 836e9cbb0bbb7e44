package cli

import (
	"context"
	"errors"

	"github.com/zayats-yacht/yachtclient/internal/client/forms"
	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/client/repositories/metadata"
	"github.com/zayats-yacht/yachtclient/internal/client/services"
	"github.com/zayats-yacht/yachtclient/internal/common"
)

// Prompt indirections, replaced in tests.
var (
	ask         = Ask
	askDefault  = AskDefault
	askPassword = AskPassword
)

// Login runs the login page and, on success, follows the redirect set by
// the session manager. It is also what protected pages fall back to.
func (a *App) Login(ctx context.Context) error {
	return a.login(ctx, PathLanding)
}

func (a *App) login(ctx context.Context, redirect string) error {
	a.authService.ClearError()

	lastEmail := ""
	if a.metadata != nil {
		if v, ok, err := a.metadata.Get(ctx, metadata.KeyLastEmail); err == nil && ok {
			lastEmail = v
		}
	}

	email, err := askDefault(a.reader, "Enter email", lastEmail, a.out)
	if err != nil {
		return err
	}

	password, err := askPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	creds := models.Credentials{Email: email, Password: string(password)}
	if errs := forms.ValidateCredentials(creds); len(errs) > 0 {
		for _, fe := range errs {
			a.printf("  %s: %s\n", fe.Field, fe.Message)
		}
		return nil
	}

	if err := a.authService.Login(ctx, creds, redirect); err != nil {
		if errors.Is(err, services.ErrOperationInProgress) {
			a.printf("Please wait, another sign-in is in progress\n")
			return nil
		}
		return err
	}

	st := a.authService.State()
	if st.Error != "" {
		a.printf("%s\n", st.Error)
		return nil
	}
	a.printf("Signed in as %s\n", st.UserInfo.DisplayName())

	if next := a.takeRedirect(); next != "" {
		return a.open(ctx, next)
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		if errors.Is(err, services.ErrOperationInProgress) {
			a.printf("Please wait, another sign-in is in progress\n")
			return nil
		}
		return err
	}
	if st := a.authService.State(); st.Error != "" {
		a.printf("%s\n", st.Error)
		return nil
	}
	a.printf("Signed out\n")
	if isProtected(a.current) {
		a.current = PathLanding
	}
	return nil
}

// WhoAmI re-checks the session with the server and prints the user.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.authService.Refresh(ctx) {
		st := a.authService.State()
		if st.Error != "" {
			a.printf("Not signed in (%s)\n", st.Error)
		} else {
			a.printf("Not signed in\n")
		}
		return nil
	}

	u := a.authService.State().UserInfo
	a.printf("%s <%s>\n", u.DisplayName(), u.Email)
	if !u.ExpiresAt.IsZero() {
		a.printf("Session expires %s\n", models.InternationalDate(u.ExpiresAt))
	}
	return nil
}
