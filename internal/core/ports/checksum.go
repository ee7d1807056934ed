package ports

// Checksum abstracts one checksum variant for the rest of the system.
// Check values are widened to uint64 regardless of the variant's native
// width so callers can treat all variants uniformly.
type Checksum interface {
	// Calculates the check value for the provided data. Fails when the
	// data does not meet the variant's minimum length.
	Calculate(data []byte) (uint64, error)

	// Validates whether the provided data matches the expected check value.
	// Returns false when the computation itself fails.
	Verify(data []byte, expected uint64) bool

	// Size returns the check value width in bytes.
	Size() uint8

	// Name returns the algorithm identifier.
	Name() string

	// NewDigest returns a fresh incremental computation carrying the
	// implementation's seed.
	NewDigest() Digest
}

// Digest is one incremental checksum computation. Chunk boundaries across
// Write calls never affect the final value. Sum finalizes the computation;
// afterwards only Reset is valid.
type Digest interface {
	Write(p []byte) (int, error)
	Sum() (uint64, error)
	Reset()
}
