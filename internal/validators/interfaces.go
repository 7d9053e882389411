// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

// Package validators holds the input checks the dashboard runs before it
// talks to the API.
//
// The API client itself never validates; callers decide what to check and
// when. Errors returned here carry messages suitable for showing to the user
// as-is.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
