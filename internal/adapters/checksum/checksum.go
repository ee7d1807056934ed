// Package checksum adapts the Koopman checksum kernel to the ports.Checksum
// interface, one adapter per variant.
package checksum

import (
	"fmt"

	"github.com/iamNilotpal/koopman/internal/core/domain"
	"github.com/iamNilotpal/koopman/internal/core/ports"
)

const (
	// Koopman8 is the 8-bit plain variant, modulus 253 (HD=3 to 13 bytes).
	Koopman8 domain.ChecksumAlgorithm = "koopman8"

	// Koopman8P is the parity-augmented 8-bit variant, modulus 125
	// (HD=4 to 5 bytes).
	Koopman8P domain.ChecksumAlgorithm = "koopman8p"

	// Koopman16 is the 16-bit plain variant, modulus 65519 (HD=3 to 4092 bytes).
	Koopman16 domain.ChecksumAlgorithm = "koopman16"

	// Koopman16P is the parity-augmented 16-bit variant, modulus 32749
	// (HD=4 to 2044 bytes).
	Koopman16P domain.ChecksumAlgorithm = "koopman16p"

	// Koopman32 is the 32-bit plain variant, modulus 4294967291
	// (HD=3 to ~134M bytes).
	Koopman32 domain.ChecksumAlgorithm = "koopman32"

	// Koopman32P is the parity-augmented 32-bit variant, modulus 2147483629
	// (HD=4 to ~134M bytes).
	Koopman32P domain.ChecksumAlgorithm = "koopman32p"
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Seed:         0,
		VerifyOnRead: true,
		Algorithm:    Koopman32,
	}
}

func Validate(input *domain.ChecksumOptions) error {
	if input.Custom == nil {
		switch input.Algorithm {
		case Koopman8, Koopman8P, Koopman16, Koopman16P, Koopman32, Koopman32P:
		default:
			return fmt.Errorf("unsupported checksum algorithm: %s", input.Algorithm)
		}
	}
	return nil
}

// New builds the ports.Checksum for the configured algorithm. A custom
// implementation in the options takes precedence.
func New(opts *domain.ChecksumOptions) (ports.Checksum, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := Validate(opts); err != nil {
		return nil, err
	}
	if opts.Custom != nil {
		return opts.Custom, nil
	}

	switch opts.Algorithm {
	case Koopman8:
		return NewKoopman8(opts.Seed), nil
	case Koopman8P:
		return NewKoopman8P(opts.Seed), nil
	case Koopman16:
		return NewKoopman16(opts.Seed), nil
	case Koopman16P:
		return NewKoopman16P(opts.Seed), nil
	case Koopman32:
		return NewKoopman32(opts.Seed), nil
	case Koopman32P:
		return NewKoopman32P(opts.Seed), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s", opts.Algorithm)
	}
}
