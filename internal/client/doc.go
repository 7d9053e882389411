// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

// Package client implements the terminal dashboard runtime.
//
// It wires the token store, the session-aware API client, the account
// services and the terminal UI into a single process lifecycle.
package client
