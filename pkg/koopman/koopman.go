// Package koopman implements the Koopman family of modular checksums in
// 8, 16 and 32-bit widths, each in a plain and a parity-augmented form.
//
// The checksum is a repeated shift-and-reduce over a running sum: the first
// data byte is XORed with the seed, every following byte extends the sum by
// one byte position before reducing it modulo a fixed prime, and finalization
// appends one implicit zero byte per output byte. The parity variants
// additionally fold the XOR of all data bytes into the lowest output bit,
// raising the detection guarantee from HD=3 to HD=4 for bounded lengths.
//
// The moduli are fixed per variant; the detection guarantees only hold for
// these exact values, so callers cannot supply their own.
package koopman

import "math/bits"

// Recommended moduli, one per variant. The comment lengths are the maximum
// data sizes for which the stated Hamming distance is guaranteed; longer
// inputs still checksum fine with a weaker guarantee.
const (
	Modulus8   uint64 = 253        // HD=3 up to 13 bytes
	Modulus8P  uint64 = 125        // HD=4 up to 5 bytes (7-bit sum + parity)
	Modulus16  uint64 = 65519      // HD=3 up to 4092 bytes
	Modulus16P uint64 = 32749      // HD=4 up to 2044 bytes (15-bit sum + parity)
	Modulus32  uint64 = 4294967291 // HD=3 up to ~134M bytes
	Modulus32P uint64 = 2147483629 // HD=4 up to ~134M bytes (31-bit sum + parity)
)

// params fixes everything that distinguishes one variant from another.
// The kernel below is shared by all six.
type params struct {
	widthBits uint
	modulus   uint64
	parity    bool
	// The reference 8-bit plain construction ORs the shifted sum with the
	// next byte instead of adding it. The reduced sum always fits below the
	// shifted byte's bits at that width, but the OR form is what the
	// reference specifies and is preserved bit-for-bit here.
	orStep bool
	// Minimum number of data bytes required before finalization.
	minLen int
}

var (
	params8   = params{widthBits: 8, modulus: Modulus8, orStep: true, minLen: 1}
	params8p  = params{widthBits: 8, modulus: Modulus8P, parity: true, minLen: 1}
	params16  = params{widthBits: 16, modulus: Modulus16, minLen: 1}
	params16p = params{widthBits: 16, modulus: Modulus16P, parity: true, minLen: 1}
	params32  = params{widthBits: 32, modulus: Modulus32, minLen: 2}
	params32p = params{widthBits: 32, modulus: Modulus32P, parity: true, minLen: 2}
)

// digest carries one in-flight computation. The uint64 sum leaves headroom
// for (sum << 8) + byte to exceed the output width before reduction, which
// the 32-bit variants need. State is never shared between computations.
type digest struct {
	p         params
	sum       uint64
	psum      byte
	seed      byte
	absorbed  int
	finalized bool
}

func newDigest(p params, seed byte) digest {
	return digest{p: p, seed: seed}
}

// write absorbs data into the running sum. The split of the byte stream
// across write calls never affects the result.
func (d *digest) write(data []byte) error {
	if d.finalized {
		return ErrFinalized
	}

	for _, b := range data {
		if d.absorbed == 0 {
			// The first byte primes the sum as seed XOR byte, without a
			// reduction. This fires exactly once per computation.
			d.sum = uint64(d.seed ^ b)
			d.psum = d.seed ^ b
		} else {
			if d.p.orStep {
				d.sum = ((d.sum << 8) | uint64(b)) % d.p.modulus
			} else {
				d.sum = ((d.sum << 8) + uint64(b)) % d.p.modulus
			}
			d.psum ^= b
		}
		d.absorbed++
	}

	return nil
}

// finalize appends the implicit zero bytes and packs the check value.
// It consumes the digest: any further write or finalize fails.
func (d *digest) finalize() (uint64, error) {
	if d.finalized {
		return 0, ErrFinalized
	}
	if d.absorbed == 0 {
		return 0, ErrEmptyInput
	}
	if d.absorbed < d.p.minLen {
		return 0, ErrShortInput
	}
	d.finalized = true

	// One shift-and-reduce per implicit zero byte. The reference defines the
	// sequential byte-at-a-time form, not a single combined shift.
	sum := d.sum
	for i := uint(0); i < d.p.widthBits/8; i++ {
		sum = (sum << 8) % d.p.modulus
	}

	if d.p.parity {
		sum = (sum << 1) | uint64(parityBit(d.psum))
	}

	return sum & (1<<d.p.widthBits - 1), nil
}

// reset discards all absorbed data, returning the digest to its initial
// state with the same seed.
func (d *digest) reset() {
	d.sum = 0
	d.psum = 0
	d.absorbed = 0
	d.finalized = false
}

// parityBit XOR-folds a byte down to a single bit.
func parityBit(b byte) byte {
	return byte(bits.OnesCount8(b) & 1)
}

func compute(p params, data []byte, seed byte) (uint64, error) {
	d := newDigest(p, seed)
	if err := d.write(data); err != nil {
		return 0, err
	}
	return d.finalize()
}

// Checksum8 computes the 8-bit Koopman checksum of data, modulus 253.
// HD=3 fault detection holds for data up to 13 bytes.
func Checksum8(data []byte, seed byte) (uint8, error) {
	sum, err := compute(params8, data, seed)
	return uint8(sum), err
}

// Checksum8P computes the parity-augmented 8-bit Koopman checksum of data:
// a 7-bit sum over modulus 125 packed into the upper bits with the parity
// bit in bit 0. The sum never exceeds 7 bits, so the 8-bit output loses
// nothing to the widening shift. HD=4 holds for data up to 5 bytes.
func Checksum8P(data []byte, seed byte) (uint8, error) {
	sum, err := compute(params8p, data, seed)
	return uint8(sum), err
}

// Checksum16 computes the 16-bit Koopman checksum of data, modulus 65519.
// HD=3 fault detection holds for data up to 4092 bytes.
func Checksum16(data []byte, seed byte) (uint16, error) {
	sum, err := compute(params16, data, seed)
	return uint16(sum), err
}

// Checksum16P computes the parity-augmented 16-bit Koopman checksum of data:
// a 15-bit sum over modulus 32749 with the parity bit in bit 0.
// HD=4 fault detection holds for data up to 2044 bytes.
func Checksum16P(data []byte, seed byte) (uint16, error) {
	sum, err := compute(params16p, data, seed)
	return uint16(sum), err
}

// Checksum32 computes the 32-bit Koopman checksum of data, modulus
// 4294967291. Requires at least two data bytes. HD=3 fault detection holds
// for data up to ~134M bytes.
func Checksum32(data []byte, seed byte) (uint32, error) {
	sum, err := compute(params32, data, seed)
	return uint32(sum), err
}

// Checksum32P computes the parity-augmented 32-bit Koopman checksum of data:
// a 31-bit sum over modulus 2147483629 with the parity bit in bit 0.
// Requires at least two data bytes. HD=4 holds for data up to ~134M bytes.
func Checksum32P(data []byte, seed byte) (uint32, error) {
	sum, err := compute(params32p, data, seed)
	return uint32(sum), err
}

// Verify8 recomputes the 8-bit checksum of data and compares it against
// expected. Returns false when the computation itself fails, e.g. for
// empty data.
func Verify8(data []byte, expected uint8, seed byte) bool {
	sum, err := Checksum8(data, seed)
	return err == nil && sum == expected
}

// Verify8P verifies data against an expected parity-augmented 8-bit checksum.
func Verify8P(data []byte, expected uint8, seed byte) bool {
	sum, err := Checksum8P(data, seed)
	return err == nil && sum == expected
}

// Verify16 verifies data against an expected 16-bit checksum.
func Verify16(data []byte, expected uint16, seed byte) bool {
	sum, err := Checksum16(data, seed)
	return err == nil && sum == expected
}

// Verify16P verifies data against an expected parity-augmented 16-bit checksum.
func Verify16P(data []byte, expected uint16, seed byte) bool {
	sum, err := Checksum16P(data, seed)
	return err == nil && sum == expected
}

// Verify32 verifies data against an expected 32-bit checksum.
func Verify32(data []byte, expected uint32, seed byte) bool {
	sum, err := Checksum32(data, seed)
	return err == nil && sum == expected
}

// Verify32P verifies data against an expected parity-augmented 32-bit checksum.
func Verify32P(data []byte, expected uint32, seed byte) bool {
	sum, err := Checksum32P(data, seed)
	return err == nil && sum == expected
}
