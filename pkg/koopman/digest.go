package koopman

// The streaming digests below absorb data in chunks of any size and split,
// producing exactly the value the one-shot functions return for the
// concatenated input. Each digest owns its state exclusively; independent
// digests may run concurrently without coordination, but a single digest is
// not safe for concurrent use.
//
// Sum finalizes the digest. After a Sum the digest rejects further writes
// and repeated sums with ErrFinalized; Reset returns it to a fresh state
// with the same seed.

// Digest8 is an incremental 8-bit Koopman checksum computation.
type Digest8 struct{ d digest }

// New8 creates an 8-bit digest primed with seed.
func New8(seed byte) *Digest8 {
	return &Digest8{d: newDigest(params8, seed)}
}

// Write absorbs the next chunk of data.
func (d *Digest8) Write(p []byte) (int, error) {
	if err := d.d.write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum8 finalizes the computation and returns the check value.
func (d *Digest8) Sum8() (uint8, error) {
	sum, err := d.d.finalize()
	return uint8(sum), err
}

// Reset discards all absorbed data, keeping the seed.
func (d *Digest8) Reset() { d.d.reset() }

// Digest8P is an incremental parity-augmented 8-bit Koopman checksum
// computation.
type Digest8P struct{ d digest }

// New8P creates a parity-augmented 8-bit digest primed with seed.
func New8P(seed byte) *Digest8P {
	return &Digest8P{d: newDigest(params8p, seed)}
}

// Write absorbs the next chunk of data.
func (d *Digest8P) Write(p []byte) (int, error) {
	if err := d.d.write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum8 finalizes the computation and returns the check value, parity bit
// in bit 0.
func (d *Digest8P) Sum8() (uint8, error) {
	sum, err := d.d.finalize()
	return uint8(sum), err
}

// Reset discards all absorbed data, keeping the seed.
func (d *Digest8P) Reset() { d.d.reset() }

// Digest16 is an incremental 16-bit Koopman checksum computation.
type Digest16 struct{ d digest }

// New16 creates a 16-bit digest primed with seed.
func New16(seed byte) *Digest16 {
	return &Digest16{d: newDigest(params16, seed)}
}

// Write absorbs the next chunk of data.
func (d *Digest16) Write(p []byte) (int, error) {
	if err := d.d.write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum16 finalizes the computation and returns the check value.
func (d *Digest16) Sum16() (uint16, error) {
	sum, err := d.d.finalize()
	return uint16(sum), err
}

// Reset discards all absorbed data, keeping the seed.
func (d *Digest16) Reset() { d.d.reset() }

// Digest16P is an incremental parity-augmented 16-bit Koopman checksum
// computation.
type Digest16P struct{ d digest }

// New16P creates a parity-augmented 16-bit digest primed with seed.
func New16P(seed byte) *Digest16P {
	return &Digest16P{d: newDigest(params16p, seed)}
}

// Write absorbs the next chunk of data.
func (d *Digest16P) Write(p []byte) (int, error) {
	if err := d.d.write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum16 finalizes the computation and returns the check value, parity bit
// in bit 0.
func (d *Digest16P) Sum16() (uint16, error) {
	sum, err := d.d.finalize()
	return uint16(sum), err
}

// Reset discards all absorbed data, keeping the seed.
func (d *Digest16P) Reset() { d.d.reset() }

// Digest32 is an incremental 32-bit Koopman checksum computation.
type Digest32 struct{ d digest }

// New32 creates a 32-bit digest primed with seed.
func New32(seed byte) *Digest32 {
	return &Digest32{d: newDigest(params32, seed)}
}

// Write absorbs the next chunk of data.
func (d *Digest32) Write(p []byte) (int, error) {
	if err := d.d.write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum32 finalizes the computation and returns the check value.
func (d *Digest32) Sum32() (uint32, error) {
	sum, err := d.d.finalize()
	return uint32(sum), err
}

// Reset discards all absorbed data, keeping the seed.
func (d *Digest32) Reset() { d.d.reset() }

// Digest32P is an incremental parity-augmented 32-bit Koopman checksum
// computation.
type Digest32P struct{ d digest }

// New32P creates a parity-augmented 32-bit digest primed with seed.
func New32P(seed byte) *Digest32P {
	return &Digest32P{d: newDigest(params32p, seed)}
}

// Write absorbs the next chunk of data.
func (d *Digest32P) Write(p []byte) (int, error) {
	if err := d.d.write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum32 finalizes the computation and returns the check value, parity bit
// in bit 0.
func (d *Digest32P) Sum32() (uint32, error) {
	sum, err := d.d.finalize()
	return uint32(sum), err
}

// Reset discards all absorbed data, keeping the seed.
func (d *Digest32P) Reset() { d.d.reset() }
