// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the gateway has no
// listen address. This is a fatal misconfiguration.
var errNoHandlersAreCreated = errors.New("no handlers are created")
