// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt work factor used when none is
// configured.
const DefaultPasswordHashCost = 10

// maxPasswordBytes is the bcrypt input limit. Longer passwords are truncated
// to it on both hash and verify, so they keep matching.
const maxPasswordBytes = 72

// PasswordHasher hashes and verifies user passwords with bcrypt.
//
// Every digest embeds its own random salt, so hashing the same plaintext
// twice yields different digests. Plaintext never leaves this type: callers
// only ever store or compare digests.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] with the given bcrypt work
// factor. Values outside [bcrypt.MinCost, bcrypt.MaxCost] fall back to
// [DefaultPasswordHashCost].
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordHashCost
	}
	return &PasswordHasher{cost: cost}
}

// Cost returns the bcrypt work factor of the hasher.
func (h *PasswordHasher) Cost() int {
	return h.cost
}

// Hash returns the bcrypt digest of plaintext.
//
// An empty plaintext is a no-op and returns an empty digest with no error:
// the caller leaves the password unset and the "password required" rule
// reports it.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	digest, err := bcrypt.GenerateFromPassword(truncatePassword(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether plaintext resolves to digest. A malformed digest
// never matches.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	if plaintext == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), truncatePassword(plaintext)) == nil
}

func truncatePassword(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxPasswordBytes {
		return b[:maxPasswordBytes]
	}
	return b
}
