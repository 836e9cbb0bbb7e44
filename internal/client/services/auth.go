// Package services contains the client's application services: the auth
// session manager, the schedule viewer and quote submission.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zayats-yacht/yachtclient/internal/client/client"
	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/client/repositories/metadata"
	"github.com/zayats-yacht/yachtclient/internal/logging"
)

// Navigator performs client-side navigation after a successful login.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// AuthService owns the session state of the running client.
//
// Contract:
//   - Login, Refresh and Logout never report auth failures as errors; the
//     outcome is recorded in the session's Error field.
//   - Login and Logout return ErrOperationInProgress when another one is
//     still running, leaving the state untouched.
//   - State returns a copy; Subscribe is notified after every change.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials, redirect string) error
	Refresh(ctx context.Context) bool
	Logout(ctx context.Context) error
	ClearError()
	State() models.Session
	Subscribe(fn func(models.Session)) (unsubscribe func())
}

type authService struct {
	client   client.Client
	nav      Navigator
	metadata metadata.Repository
	logger   logging.Logger

	mu       sync.Mutex
	state    models.Session
	inFlight bool
	subs     map[int]func(models.Session)
	nextSub  int
}

// NewAuthService creates a session manager in the logged-out state. nav and
// meta may be nil; meta remembers the last signed-in email.
func NewAuthService(c client.Client, nav Navigator, meta metadata.Repository, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{
		client:   c,
		nav:      nav,
		metadata: meta,
		logger:   logger.With("component", "auth"),
		state:    models.DefaultSession(),
		subs:     map[int]func(models.Session){},
	}
}

func (s *authService) Login(ctx context.Context, creds models.Credentials, redirect string) error {
	if !s.begin() {
		return ErrOperationInProgress
	}
	defer s.finish()

	s.update(func(st *models.Session) {
		st.IsValidating = true
		st.Error = ""
	})

	status, err := s.signIn(ctx, creds)
	switch {
	case err != nil:
		s.logger.Warn(ctx, "login failed", "err", err)
		s.set(models.LoggedOutWithError(MsgLoginFailed))
	case status != 200:
		s.logger.Info(ctx, "login rejected", "status", status)
		s.set(models.LoggedOutWithError(MsgInvalidCredentials))
	default:
		if s.refresh(ctx) {
			s.rememberEmail(ctx, creds.Email)
			if redirect != "" && s.nav != nil {
				s.nav.Navigate(redirect)
			}
		}
	}
	return nil
}

func (s *authService) signIn(ctx context.Context, creds models.Credentials) (int, error) {
	token, err := s.client.GetCSRFToken(ctx)
	if err != nil {
		return 0, fmt.Errorf("csrf: %w", err)
	}
	return s.client.SignInWithCredentials(ctx, token, creds)
}

// Refresh re-reads the session from the server. While Login or Logout is
// running it returns false without touching the state.
func (s *authService) Refresh(ctx context.Context) bool {
	if !s.begin() {
		return false
	}
	defer s.finish()

	s.update(func(st *models.Session) { st.IsValidating = true })
	return s.refresh(ctx)
}

func (s *authService) refresh(ctx context.Context) bool {
	resp, err := s.client.GetSession(ctx)
	if err != nil {
		s.logger.Warn(ctx, "session check failed", "err", err)
		s.set(models.LoggedOutWithError(MsgFetchUserFailed))
		return false
	}
	if resp == nil || resp.User == nil {
		s.logger.Info(ctx, "no active session")
		s.set(models.LoggedOutWithError(MsgInvalidCredentials))
		return false
	}

	s.set(models.Session{
		IsAuthenticated: true,
		UserInfo:        userInfo(ctx, s.logger, resp),
	})
	s.logger.Info(ctx, "session established", "user_id", resp.User.ID)
	return true
}

func (s *authService) Logout(ctx context.Context) error {
	if !s.begin() {
		return ErrOperationInProgress
	}
	defer s.finish()

	s.update(func(st *models.Session) {
		st.IsValidating = true
		st.Error = ""
	})

	if err := s.signOut(ctx); err != nil {
		s.logger.Warn(ctx, "logout failed", "err", err)
		s.set(models.LoggedOutWithError(MsgLogoutFailed))
		return nil
	}

	s.logger.Info(ctx, "logged out")
	s.set(models.DefaultSession())
	return nil
}

var errSignOutRejected = errors.New("sign-out rejected")

func (s *authService) signOut(ctx context.Context) error {
	token, err := s.client.GetCSRFToken(ctx)
	if err != nil {
		return fmt.Errorf("csrf: %w", err)
	}
	status, err := s.client.SignOut(ctx, token)
	if err != nil {
		return err
	}
	if status != 200 {
		return fmt.Errorf("%w: status %d", errSignOutRejected, status)
	}
	return nil
}

func (s *authService) ClearError() {
	s.update(func(st *models.Session) {
		st.IsValidating = false
		st.Error = ""
	})
}

func (s *authService) State() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *authService) Subscribe(fn func(models.Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *authService) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

// finish clears IsValidating whatever the outcome and releases the guard.
func (s *authService) finish() {
	s.update(func(st *models.Session) { st.IsValidating = false })
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

func (s *authService) set(next models.Session) {
	s.update(func(st *models.Session) { *st = next })
}

// update applies fn under the lock and notifies subscribers outside of it.
func (s *authService) update(fn func(*models.Session)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state.Clone()
	subs := make([]func(models.Session), 0, len(s.subs))
	for _, f := range s.subs {
		subs = append(subs, f)
	}
	s.mu.Unlock()

	for _, f := range subs {
		f(snapshot.Clone())
	}
}

func (s *authService) rememberEmail(ctx context.Context, email string) {
	if s.metadata == nil || email == "" {
		return
	}
	if err := s.metadata.Set(ctx, metadata.KeyLastEmail, email); err != nil {
		s.logger.Warn(ctx, "failed to remember email", "err", err)
	}
}

func userInfo(ctx context.Context, logger logging.Logger, resp *models.SessionResponse) *models.UserInfo {
	u := &models.UserInfo{
		ID:    resp.User.ID,
		Email: resp.User.Email,
		Name:  resp.User.Name,
		Image: resp.User.Image,
	}
	if resp.Expires != "" {
		exp, err := time.Parse(time.RFC3339, resp.Expires)
		if err != nil {
			logger.Debug(ctx, "unparseable session expiry", "expires", resp.Expires)
		} else {
			u.ExpiresAt = exp
		}
	}
	return u
}
