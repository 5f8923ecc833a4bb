// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrBadSecret = errors.New("shared secret mismatch")

// ValidateSecret compares the presented shared secret against the configured
// one in constant time. An empty configured secret always fails closed.
func ValidateSecret(presented, expected string) error {
	if expected == "" || !hmac.Equal([]byte(presented), []byte(expected)) {
		return ErrBadSecret
	}
	return nil
}

// GenerateReference creates a random hex reference of the specified byte
// length.
func GenerateReference(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate reference: %w", err)
	}
	return hex.EncodeToString(b), nil
}
