package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/logging"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 4 << 20
)

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	logger  logging.Logger
}

// NewHTTPClient creates a client rooted at baseURL (e.g.
// "http://localhost:3000/api/"). Each request is bounded by timeout; zero
// means no client-side limit beyond the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Nop()
	}

	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Jar: jar, Timeout: timeout},
		logger:  logger,
	}, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) GetCSRFToken(ctx context.Context) (string, error) {
	var body models.CSRFResponse
	if err := c.getJSON(ctx, PathCSRFToken, &body); err != nil {
		return "", err
	}
	if body.CSRFToken == "" {
		return "", fmt.Errorf("%s: %w: empty csrfToken", PathCSRFToken, ErrDecode)
	}
	return body.CSRFToken, nil
}

func (c *HTTPClient) SignInWithCredentials(ctx context.Context, csrfToken string, creds models.Credentials) (int, error) {
	return c.postForm(ctx, PathSignIn, LoginForm(csrfToken, creds))
}

func (c *HTTPClient) GetSession(ctx context.Context) (*models.SessionResponse, error) {
	var body models.SessionResponse
	if err := c.getJSON(ctx, PathSession, &body); err != nil {
		return nil, err
	}
	return &body, nil
}

func (c *HTTPClient) SignOut(ctx context.Context, csrfToken string) (int, error) {
	return c.postForm(ctx, PathSignOut, SignOutForm(csrfToken))
}

func (c *HTTPClient) Sailings(ctx context.Context) (models.ActionResult, error) {
	var res models.ActionResult
	err := c.getJSON(ctx, PathSailings, &res)
	return res, err
}

func (c *HTTPClient) NearestSailings(ctx context.Context) (models.ActionResult, error) {
	var res models.ActionResult
	err := c.getJSON(ctx, PathNearestSailings, &res)
	return res, err
}

// PostQuoteRequest submits the form. The envelope is decoded whatever the
// status code, since validation failures arrive as 4xx with a body; a
// non-2xx answer without a decodable envelope is a *StatusError.
func (c *HTTPClient) PostQuoteRequest(ctx context.Context, q models.QuoteRequest) (models.ActionResult, error) {
	payload, err := json.Marshal(q)
	if err != nil {
		return models.ActionResult{}, fmt.Errorf("encode quote request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, PathQuoteRequest, bytes.NewReader(payload), contentTypeJSON)
	if err != nil {
		return models.ActionResult{}, err
	}
	defer resp.Body.Close()

	var res models.ActionResult
	decodeErr := decodeJSON(resp.Body, &res)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil {
			return res, nil
		}
		return models.ActionResult{}, &StatusError{Method: http.MethodPost, Path: PathQuoteRequest, StatusCode: resp.StatusCode}
	}
	if decodeErr != nil {
		return models.ActionResult{}, fmt.Errorf("%s: %w", PathQuoteRequest, decodeErr)
	}
	return res, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, v any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		drain(resp.Body)
		return &StatusError{Method: http.MethodGet, Path: path, StatusCode: resp.StatusCode}
	}
	if err := decodeJSON(resp.Body, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) postForm(ctx context.Context, path string, form Form) (int, error) {
	resp, err := c.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), contentTypeForm)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	drain(resp.Body)
	return resp.StatusCode, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	target := c.baseURL.ResolveReference(&url.URL{Path: path})

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType == "" {
		contentType = contentTypeJSON
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "api request failed", "method", method, "path", path, "err", err)
		return nil, fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
	}
	c.logger.Debug(ctx, "api request", "method", method, "path", path, "status", resp.StatusCode)
	return resp, nil
}

func decodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(io.LimitReader(r, maxBodySize))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrDecode)
		}
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, maxBodySize))
}
