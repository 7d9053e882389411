// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

// Package store holds the persistence capability for the qodefly session
// token.
//
// [TokenStore] is the only abstraction the API client depends on. The package
// ships several implementations selected by configuration:
//   - memory: process-local, lost on exit (tests, one-shot commands)
//   - file:   a JSON document on disk, optionally sealed at rest
//   - sqlite: a row in the session_tokens table managed by goose migrations
//   - redis:  a single key shared by several processes
//   - cookie: a per-request store backed by a signed HTTP cookie, used by the
//     session gateway
//
// At most one token is stored per store instance, under a fixed key.
package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_store_mock.go -package=mock

// TokenStore persists the opaque bearer token issued by the qodefly API.
type TokenStore interface {
	// Load returns the stored token. ok is false when no token is stored; an
	// empty stored value is reported the same way.
	Load(ctx context.Context) (token string, ok bool, err error)

	// Save replaces the stored token.
	Save(ctx context.Context, token string) error

	// Clear removes the stored token. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}
