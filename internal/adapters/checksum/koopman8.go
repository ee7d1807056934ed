package checksum

import (
	"math"

	"github.com/iamNilotpal/koopman/internal/core/ports"
	"github.com/iamNilotpal/koopman/pkg/koopman"
)

type koopman8 struct {
	name string
	seed byte
}

func NewKoopman8(seed byte) *koopman8 {
	return &koopman8{name: string(Koopman8), seed: seed}
}

func (c *koopman8) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Checksum8(data, c.seed)
	return uint64(sum), err
}

func (c *koopman8) Verify(data []byte, expected uint64) bool {
	return expected <= math.MaxUint8 &&
		koopman.Verify8(data, uint8(expected), c.seed)
}

func (c *koopman8) Size() uint8 {
	return 1
}

func (c *koopman8) Name() string {
	return c.name
}

func (c *koopman8) NewDigest() ports.Digest {
	return digest8{d: koopman.New8(c.seed)}
}

type digest8 struct{ d *koopman.Digest8 }

func (x digest8) Write(p []byte) (int, error) { return x.d.Write(p) }
func (x digest8) Reset()                      { x.d.Reset() }
func (x digest8) Sum() (uint64, error) {
	sum, err := x.d.Sum8()
	return uint64(sum), err
}

type koopman8p struct {
	name string
	seed byte
}

func NewKoopman8P(seed byte) *koopman8p {
	return &koopman8p{name: string(Koopman8P), seed: seed}
}

func (c *koopman8p) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Checksum8P(data, c.seed)
	return uint64(sum), err
}

func (c *koopman8p) Verify(data []byte, expected uint64) bool {
	return expected <= math.MaxUint8 &&
		koopman.Verify8P(data, uint8(expected), c.seed)
}

func (c *koopman8p) Size() uint8 {
	return 1
}

func (c *koopman8p) Name() string {
	return c.name
}

func (c *koopman8p) NewDigest() ports.Digest {
	return digest8p{d: koopman.New8P(c.seed)}
}

type digest8p struct{ d *koopman.Digest8P }

func (x digest8p) Write(p []byte) (int, error) { return x.d.Write(p) }
func (x digest8p) Reset()                      { x.d.Reset() }
func (x digest8p) Sum() (uint64, error) {
	sum, err := x.d.Sum8()
	return uint64(sum), err
}
