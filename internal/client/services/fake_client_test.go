package services

import (
	"context"

	"github.com/zayats-yacht/yachtclient/internal/client/models"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	CSRFToken string
	CSRFErr   error
	CSRFCalls int

	SignInStatus int
	SignInErr    error
	LastCSRF     string
	LastCreds    models.Credentials

	Session    *models.SessionResponse
	SessionErr error

	SignOutStatus int
	SignOutErr    error
	SignOutCalls  int

	NearestRes models.ActionResult
	NearestErr error

	QuoteRes   models.ActionResult
	QuoteErr   error
	QuoteCalls int
	LastQuote  models.QuoteRequest

	// onSignIn runs inside SignInWithCredentials, before it returns.
	onSignIn func()
}

func (f *fakeClient) GetCSRFToken(ctx context.Context) (string, error) {
	f.CSRFCalls++
	return f.CSRFToken, f.CSRFErr
}

func (f *fakeClient) SignInWithCredentials(ctx context.Context, csrfToken string, creds models.Credentials) (int, error) {
	f.LastCSRF = csrfToken
	f.LastCreds = creds
	if f.onSignIn != nil {
		f.onSignIn()
	}
	return f.SignInStatus, f.SignInErr
}

func (f *fakeClient) GetSession(ctx context.Context) (*models.SessionResponse, error) {
	return f.Session, f.SessionErr
}

func (f *fakeClient) SignOut(ctx context.Context, csrfToken string) (int, error) {
	f.SignOutCalls++
	f.LastCSRF = csrfToken
	return f.SignOutStatus, f.SignOutErr
}

func (f *fakeClient) Sailings(ctx context.Context) (models.ActionResult, error) {
	return f.NearestRes, f.NearestErr
}

func (f *fakeClient) NearestSailings(ctx context.Context) (models.ActionResult, error) {
	return f.NearestRes, f.NearestErr
}

func (f *fakeClient) PostQuoteRequest(ctx context.Context, q models.QuoteRequest) (models.ActionResult, error) {
	f.QuoteCalls++
	f.LastQuote = q
	return f.QuoteRes, f.QuoteErr
}

func (f *fakeClient) Close() error { return nil }
