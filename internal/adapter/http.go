package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/brsv-srg/qodefly-dashboard/internal/config"
	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/internal/store"
	"github.com/brsv-srg/qodefly-dashboard/internal/utils"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

// API paths relative to the configured base URL.
const (
	pathRegister = "/auth/register"
	pathLogin    = "/auth/login"
	pathMe       = "/auth/me"
	pathWaitlist = "/waitlist"
)

const requestIDHeader = "X-Request-ID"

// SessionExpiredFunc is invoked after a 401 response has cleared the token.
// UI layers use it to navigate to their login surface.
type SessionExpiredFunc func()

// Option customizes an [HTTPAPIClient].
type Option func(*HTTPAPIClient)

// WithSessionExpired registers fn as the session-expired signal.
func WithSessionExpired(fn SessionExpiredFunc) Option {
	return func(c *HTTPAPIClient) {
		c.onSessionExpired = fn
	}
}

// WithHTTPClient replaces the transport. Intended for tests and for sharing
// one connection pool between clients.
func WithHTTPClient(client *utils.HTTPClient) Option {
	return func(c *HTTPAPIClient) {
		c.client = client
	}
}

// HTTPAPIClient is the resty implementation of [APIClient] and
// [ClientFactory].
type HTTPAPIClient struct {
	client *utils.HTTPClient
	tokens store.TokenStore

	onSessionExpired SessionExpiredFunc
	requestIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPAPIClient constructs a client for the API at cfg.APIURL, keeping its
// session token in tokens.
func NewHTTPAPIClient(cfg config.Adapter, tokens store.TokenStore, log *logger.Logger, opts ...Option) *HTTPAPIClient {
	c := &HTTPAPIClient{
		client:     utils.NewHTTPClient(cfg.APIURL, cfg.RequestTimeout),
		tokens:     tokens,
		requestIDs: utils.NewUUIDGenerator(),
		logger:     log,
	}
	for _, opt := range opts {
		opt(c)
	}

	log.Debug().Str("base_url", c.client.BaseURL).Msg("api client created")
	return c
}

// ForStore implements [ClientFactory]. The derived client shares the
// transport and logger but has no session-expired callback of its own.
func (c *HTTPAPIClient) ForStore(tokens store.TokenStore) APIClient {
	return &HTTPAPIClient{
		client:     c.client,
		tokens:     tokens,
		requestIDs: c.requestIDs,
		logger:     c.logger,
	}
}

func (c *HTTPAPIClient) IsAuthenticated(ctx context.Context) bool {
	_, ok := c.loadToken(ctx)
	return ok
}

func (c *HTTPAPIClient) Register(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return c.authenticate(ctx, pathRegister, email, password)
}

func (c *HTTPAPIClient) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return c.authenticate(ctx, pathLogin, email, password)
}

func (c *HTTPAPIClient) authenticate(ctx context.Context, path, email, password string) (models.AuthResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, path, models.Credentials{Email: email, Password: password}, true)
	if err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode %s response: %w", path, err)
	}

	if err = c.tokens.Save(ctx, auth.AccessToken); err != nil {
		return models.AuthResponse{}, fmt.Errorf("save session token: %w", err)
	}

	return auth, nil
}

func (c *HTTPAPIClient) GetMe(ctx context.Context) (models.User, error) {
	resp, err := c.do(ctx, http.MethodGet, pathMe, nil, true)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode %s response: %w", pathMe, err)
	}
	return user, nil
}

func (c *HTTPAPIClient) SubmitWaitlist(ctx context.Context, email string) (json.RawMessage, error) {
	resp, err := c.do(ctx, http.MethodPost, pathWaitlist, models.WaitlistRequest{Email: email}, false)
	if err != nil {
		return nil, err
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("decode %s response: invalid JSON", pathWaitlist)
	}

	return append(json.RawMessage(nil), body...), nil
}

func (c *HTTPAPIClient) ClearToken(ctx context.Context) error {
	if err := c.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

// do runs the shared request pipeline. withToken controls whether the stored
// token is read and attached; the 401 interception applies either way.
func (c *HTTPAPIClient) do(ctx context.Context, method, path string, body any, withToken bool) (*resty.Response, error) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = c.requestIDs.Generate()
	}

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(requestIDHeader, requestID)

	if withToken {
		if token, ok := c.loadToken(ctx); ok {
			req.SetAuthToken(token)
		}
	}
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Msg("api request failed without response")
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("api request completed")

	err = mapHTTPError(resp)
	if errors.Is(err, ErrUnauthorized) {
		c.expireSession(ctx, path, requestID)
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// expireSession clears the token and fires the session-expired signal.
// Concurrent 401s may both get here; clearing an empty store is a no-op.
func (c *HTTPAPIClient) expireSession(ctx context.Context, path, requestID string) {
	c.logger.Warn().
		Str("path", path).
		Str("request_id", requestID).
		Msg("session rejected by api, clearing token")

	// The request context may already be done; clearing must still happen.
	if err := c.tokens.Clear(context.WithoutCancel(ctx)); err != nil {
		c.logger.Err(err).Msg("failed to clear session token after 401")
	}

	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// loadToken treats a failing store as an absent session.
func (c *HTTPAPIClient) loadToken(ctx context.Context) (string, bool) {
	token, ok, err := c.tokens.Load(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to load session token, continuing without it")
		return "", false
	}
	return token, ok && token != ""
}
