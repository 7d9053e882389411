// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

package service

import (
	"errors"

	"github.com/brsv-srg/qodefly-dashboard/internal/adapter"
	"github.com/brsv-srg/qodefly-dashboard/internal/app"
	"github.com/brsv-srg/qodefly-dashboard/internal/validators"
)

// UserMessage turns err into text for the user. Server-provided and
// validation messages are shown verbatim; anything else collapses to
// fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var reqErr *adapter.RequestFailedError
	switch {
	case errors.As(err, &reqErr):
		if reqErr.Message != "" {
			return reqErr.Message
		}
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgUnauthorized
	case errors.Is(err, ErrNotAuthenticated):
		return app.MsgNotAuthenticated
	case isValidationError(err):
		return err.Error()
	}

	if fallback == "" {
		return app.MsgSomethingWentWrong
	}
	return fallback
}

func isValidationError(err error) bool {
	for _, target := range []error{
		validators.ErrEmptyEmail,
		validators.ErrInvalidEmail,
		validators.ErrEmptyPassword,
		validators.ErrPasswordTooShort,
		validators.ErrPasswordMismatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
