// Package domain defines the core types and configurations shared across
// the checksum system.
package domain

import (
	"github.com/iamNilotpal/koopman/internal/core/ports"
)

// ChecksumAlgorithm identifies one of the supported checksum variants.
type ChecksumAlgorithm string

// ChecksumOptions defines configuration for integrity checking.
type ChecksumOptions struct {
	// Algorithm specifies which checksum variant to use.
	// Defaults to the 32-bit plain variant if not specified.
	Algorithm ChecksumAlgorithm

	// Seed primes the running sum before the first data byte. The same
	// seed must be used when computing and when verifying. Concurrent
	// computations with different seeds coexist safely; the seed is fixed
	// per computation, never process-wide state.
	//
	// Default: 0
	Seed byte

	// Custom allows using a custom Checksum implementation.
	// If provided, it takes precedence over Algorithm.
	Custom ports.Checksum

	// VerifyOnRead determines if check values should be verified when
	// streaming data back through the integrity service. Recommended to
	// keep enabled except in performance-critical scenarios.
	//
	// Default: true
	VerifyOnRead bool
}
