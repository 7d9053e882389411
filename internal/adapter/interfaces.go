// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

// Package adapter is the session-aware client of the remote qodefly REST API.
//
// The primary abstraction is [APIClient]. Every call goes through one request
// pipeline: the bearer token is loaded from a [store.TokenStore] and attached,
// a 401 response clears the token and fires the session-expired callback
// before failing with [ErrUnauthorized], and any other non-2xx response fails
// with a [*RequestFailedError] carrying the server's "detail" message.
//
// Callers use [errors.Is] for [ErrUnauthorized] and [ErrTransport], and
// [errors.As] for [*RequestFailedError].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/brsv-srg/qodefly-dashboard/internal/store"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient is the single entry point to the qodefly API. Implementations
// are safe for concurrent use.
type APIClient interface {
	// IsAuthenticated reports whether a session token is stored. It never
	// touches the network.
	IsAuthenticated(ctx context.Context) bool

	// Register creates an account via POST /auth/register. On success the
	// returned access token is persisted and the full payload returned.
	Register(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Login authenticates via POST /auth/login with the same contract as
	// Register.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// GetMe fetches the profile of the session owner via GET /auth/me.
	GetMe(ctx context.Context) (models.User, error)

	// SubmitWaitlist posts email to POST /waitlist without credentials and
	// returns the response body unmodified.
	SubmitWaitlist(ctx context.Context, email string) (json.RawMessage, error)

	// ClearToken removes the stored session token. It is idempotent.
	ClearToken(ctx context.Context) error
}

// ClientFactory derives clients that share one transport but keep their
// token in a different store. The session gateway uses it to bind a client
// to the cookie of each incoming request.
type ClientFactory interface {
	ForStore(tokens store.TokenStore) APIClient
}
