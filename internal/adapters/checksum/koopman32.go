package checksum

import (
	"math"

	"github.com/iamNilotpal/koopman/internal/core/ports"
	"github.com/iamNilotpal/koopman/pkg/koopman"
)

type koopman32 struct {
	name string
	seed byte
}

func NewKoopman32(seed byte) *koopman32 {
	return &koopman32{name: string(Koopman32), seed: seed}
}

func (c *koopman32) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Checksum32(data, c.seed)
	return uint64(sum), err
}

func (c *koopman32) Verify(data []byte, expected uint64) bool {
	return expected <= math.MaxUint32 &&
		koopman.Verify32(data, uint32(expected), c.seed)
}

func (c *koopman32) Size() uint8 {
	return 4
}

func (c *koopman32) Name() string {
	return c.name
}

func (c *koopman32) NewDigest() ports.Digest {
	return digest32{d: koopman.New32(c.seed)}
}

type digest32 struct{ d *koopman.Digest32 }

func (x digest32) Write(p []byte) (int, error) { return x.d.Write(p) }
func (x digest32) Reset()                      { x.d.Reset() }
func (x digest32) Sum() (uint64, error) {
	sum, err := x.d.Sum32()
	return uint64(sum), err
}

type koopman32p struct {
	name string
	seed byte
}

func NewKoopman32P(seed byte) *koopman32p {
	return &koopman32p{name: string(Koopman32P), seed: seed}
}

func (c *koopman32p) Calculate(data []byte) (uint64, error) {
	sum, err := koopman.Checksum32P(data, c.seed)
	return uint64(sum), err
}

func (c *koopman32p) Verify(data []byte, expected uint64) bool {
	return expected <= math.MaxUint32 &&
		koopman.Verify32P(data, uint32(expected), c.seed)
}

func (c *koopman32p) Size() uint8 {
	return 4
}

func (c *koopman32p) Name() string {
	return c.name
}

func (c *koopman32p) NewDigest() ports.Digest {
	return digest32p{d: koopman.New32P(c.seed)}
}

type digest32p struct{ d *koopman.Digest32P }

func (x digest32p) Write(p []byte) (int, error) { return x.d.Write(p) }
func (x digest32p) Reset()                      { x.d.Reset() }
func (x digest32p) Sum() (uint64, error) {
	sum, err := x.d.Sum32()
	return uint64(sum), err
}
