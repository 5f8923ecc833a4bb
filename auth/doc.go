// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package auth provides the shared-secret check guarding the intake API and
// a random reference generator. Secret comparison is constant-time.
package auth
