// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

// Package service implements the dashboard's user flows on top of the
// session-aware API client: input checks, the protected-screen guard, and the
// mapping of client failures to messages.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"encoding/json"

	"github.com/brsv-srg/qodefly-dashboard/models"
)

// AccountService drives sign-up, login, logout, profile and waitlist flows.
type AccountService interface {
	// IsAuthenticated reports whether a session token is stored.
	IsAuthenticated(ctx context.Context) bool

	// Register validates the form and creates the account. On success the
	// session is persisted by the client.
	Register(ctx context.Context, form models.Registration) (models.User, error)

	// Login validates that both fields are present and authenticates.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout clears the stored session.
	Logout(ctx context.Context) error

	// Profile returns the current user. Without a stored session it returns
	// ErrNotAuthenticated and makes no request. Any failure other than a
	// rejected session also clears the stored token.
	Profile(ctx context.Context) (models.User, error)

	// JoinWaitlist validates the email and submits it. The API body is
	// returned untouched.
	JoinWaitlist(ctx context.Context, email string) (json.RawMessage, error)
}

// ProjectService backs the projects screen.
type ProjectService interface {
	Overview(ctx context.Context) (models.ProjectsOverview, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
}
