package store

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/brsv-srg/qodefly-dashboard/internal/config"
	"github.com/brsv-srg/qodefly-dashboard/internal/utils"
)

type cookieTokenStore struct {
	w   http.ResponseWriter
	r   *http.Request
	cfg config.Gateway

	// pending reflects writes made during this request so a Load after Save
	// or Clear sees the new state before the browser echoes the cookie back.
	pending *string
}

// NewCookieTokenStore returns a per-request [TokenStore] backed by the
// gateway session cookie. The token travels inside an HS256-signed envelope
// so the browser cannot forge or read-modify it; the cookie is HttpOnly and
// SameSite=Lax. When no cookie is present an "Authorization: Bearer" header
// is accepted as the token, which lets non-browser callers use the gateway.
func NewCookieTokenStore(w http.ResponseWriter, r *http.Request, cfg config.Gateway) TokenStore {
	return &cookieTokenStore{w: w, r: r, cfg: cfg}
}

func (c *cookieTokenStore) Load(_ context.Context) (string, bool, error) {
	if c.pending != nil {
		return *c.pending, *c.pending != "", nil
	}

	cookie, err := c.r.Cookie(c.cfg.CookieName)
	if err != nil {
		if token, err := utils.ParseBearerToken(c.r.Header.Get("Authorization")); err == nil {
			return token, true, nil
		}
		return "", false, nil
	}

	token, err := utils.OpenToken(cookie.Value, c.cfg.CookieSecret)
	if err != nil {
		// A tampered or expired envelope is an absent session.
		return "", false, nil
	}
	return token, true, nil
}

func (c *cookieTokenStore) Save(_ context.Context, token string) error {
	sealed, err := utils.SealToken(token, c.cfg.CookieSecret, c.cfg.CookieTTL)
	if err != nil {
		return fmt.Errorf("seal session cookie: %w", err)
	}

	http.SetCookie(c.w, c.cookie(sealed, time.Now().Add(c.cfg.CookieTTL), int(c.cfg.CookieTTL.Seconds())))
	c.pending = &token
	return nil
}

func (c *cookieTokenStore) Clear(_ context.Context) error {
	http.SetCookie(c.w, c.cookie("", time.Unix(0, 0), -1))
	empty := ""
	c.pending = &empty
	return nil
}

func (c *cookieTokenStore) cookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     c.cfg.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
