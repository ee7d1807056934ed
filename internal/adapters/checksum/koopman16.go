package checksum

import (
	"math"

	"github.com/iamNilotpal/koopman/internal/core/ports"
	"github.com/iamNilotpal/koopman/pkg/koopman"
)

type koopman16 struct {
	name string
	seed byte
}

func NewKoopman16(seed byte) *koopman16 {
	return &koopman16{name: string(Koopman16), seed: seed}
}

func (c *koopman16) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Checksum16(data, c.seed)
	return uint64(sum), err
}

func (c *koopman16) Verify(data []byte, expected uint64) bool {
	return expected <= math.MaxUint16 &&
		koopman.Verify16(data, uint16(expected), c.seed)
}

func (c *koopman16) Size() uint8 {
	return 2
}

func (c *koopman16) Name() string {
	return c.name
}

func (c *koopman16) NewDigest() ports.Digest {
	return digest16{d: koopman.New16(c.seed)}
}

type digest16 struct{ d *koopman.Digest16 }

func (x digest16) Write(p []byte) (int, error) { return x.d.Write(p) }
func (x digest16) Reset()                      { x.d.Reset() }
func (x digest16) Sum() (uint64, error) {
	sum, err := x.d.Sum16()
	return uint64(sum), err
}

type koopman16p struct {
	name string
	seed byte
}

func NewKoopman16P(seed byte) *koopman16p {
	return &koopman16p{name: string(Koopman16P), seed: seed}
}

func (c *koopman16p) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Checksum16P(data, c.seed)
	return uint64(sum), err
}

func (c *koopman16p) Verify(data []byte, expected uint64) bool {
	return expected <= math.MaxUint16 &&
		koopman.Verify16P(data, uint16(expected), c.seed)
}

func (c *koopman16p) Size() uint8 {
	return 2
}

func (c *koopman16p) Name() string {
	return c.name
}

func (c *koopman16p) NewDigest() ports.Digest {
	return digest16p{d: koopman.New16P(c.seed)}
}

type digest16p struct{ d *koopman.Digest16P }

func (x digest16p) Write(p []byte) (int, error) { return x.d.Write(p) }
func (x digest16p) Reset()                      { x.d.Reset() }
func (x digest16p) Sum() (uint64, error) {
	sum, err := x.d.Sum16()
	return uint64(sum), err
}
