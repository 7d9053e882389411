// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

// Package app contains user-facing message strings shared by the terminal
// dashboard and the session gateway.
//
// Keeping them in one place keeps the wording identical on every surface.
package app

const (
	// MsgSomethingWentWrong is shown when an operation fails for a reason the
	// user cannot act on (network failure, malformed response).
	MsgSomethingWentWrong = "Something went wrong"

	// MsgInvalidEmailOrPassword is the login fallback when the API gives no
	// usable detail.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgRegistrationFailed is the sign-up fallback when the API gives no
	// usable detail.
	MsgRegistrationFailed = "Registration failed"

	// MsgUnauthorized is returned when the API rejects the session.
	MsgUnauthorized = "Unauthorized"

	// MsgSessionExpired is shown on the login screen after a forced logout.
	MsgSessionExpired = "Your session has expired. Please log in again."

	// MsgNotAuthenticated is shown when a protected screen is opened without
	// a stored session.
	MsgNotAuthenticated = "Please log in to continue"

	// MsgWaitlistJoined and MsgWaitlistJoinedDetail confirm a waitlist
	// submission.
	MsgWaitlistJoined       = "You're on the list!"
	MsgWaitlistJoinedDetail = "We'll notify you when Qodefly launches publicly."

	// MsgWelcomeBack confirms a successful login.
	MsgWelcomeBack = "Welcome back!"

	// MsgAccountCreated confirms a successful registration.
	MsgAccountCreated = "Account created!"

	// MsgEmailCopied confirms the settings screen clipboard action.
	MsgEmailCopied = "Email copied to clipboard"
)
