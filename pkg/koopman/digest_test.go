package koopman

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// partitions of the test input exercised against every digest: the chunk
// boundaries must never change the check value.
func partitions(data []byte) [][][]byte {
	return [][][]byte{
		{data},
		{data[:1], data[1:]},
		{data[:len(data)/2], data[len(data)/2:]},
		{data[:3], {}, data[3:7], nil, data[7:]},
		func() [][]byte {
			var chunks [][]byte
			for i := range data {
				chunks = append(chunks, data[i:i+1])
			}
			return chunks
		}(),
	}
}

func TestDigestChunkInvariance16(t *testing.T) {
	oneShot, err := Checksum16(helloWorld, 0)
	require.NoError(t, err)

	for i, chunks := range partitions(helloWorld) {
		d := New16(0)
		for _, c := range chunks {
			_, err := d.Write(c)
			require.NoError(t, err)
		}
		sum, err := d.Sum16()
		require.NoError(t, err)
		assert.Equal(t, oneShot, sum, "partition %d", i)
	}
}

func TestDigestChunkInvarianceAllVariants(t *testing.T) {
	data := []byte("chunk boundaries must not matter")
	const seed = 0xEE

	t.Run("8", func(t *testing.T) {
		want, err := Checksum8(data, seed)
		require.NoError(t, err)
		for _, chunks := range partitions(data) {
			d := New8(seed)
			for _, c := range chunks {
				_, err := d.Write(c)
				require.NoError(t, err)
			}
			sum, err := d.Sum8()
			require.NoError(t, err)
			assert.Equal(t, want, sum)
		}
	})

	t.Run("8p", func(t *testing.T) {
		want, err := Checksum8P(data, seed)
		require.NoError(t, err)
		for _, chunks := range partitions(data) {
			d := New8P(seed)
			for _, c := range chunks {
				_, err := d.Write(c)
				require.NoError(t, err)
			}
			sum, err := d.Sum8()
			require.NoError(t, err)
			assert.Equal(t, want, sum)
		}
	})

	t.Run("16p", func(t *testing.T) {
		want, err := Checksum16P(data, seed)
		require.NoError(t, err)
		for _, chunks := range partitions(data) {
			d := New16P(seed)
			for _, c := range chunks {
				_, err := d.Write(c)
				require.NoError(t, err)
			}
			sum, err := d.Sum16()
			require.NoError(t, err)
			assert.Equal(t, want, sum)
		}
	})

	t.Run("32", func(t *testing.T) {
		want, err := Checksum32(data, seed)
		require.NoError(t, err)
		for _, chunks := range partitions(data) {
			d := New32(seed)
			for _, c := range chunks {
				_, err := d.Write(c)
				require.NoError(t, err)
			}
			sum, err := d.Sum32()
			require.NoError(t, err)
			assert.Equal(t, want, sum)
		}
	})

	t.Run("32p", func(t *testing.T) {
		want, err := Checksum32P(data, seed)
		require.NoError(t, err)
		for _, chunks := range partitions(data) {
			d := New32P(seed)
			for _, c := range chunks {
				_, err := d.Write(c)
				require.NoError(t, err)
			}
			sum, err := d.Sum32()
			require.NoError(t, err)
			assert.Equal(t, want, sum)
		}
	})
}

func TestDigestHelloChunks(t *testing.T) {
	d := New16(0)
	_, err := d.Write([]byte("Hello, "))
	require.NoError(t, err)
	_, err = d.Write([]byte("World!"))
	require.NoError(t, err)

	sum, err := d.Sum16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x81A4), sum)
}

func TestDigestWriteAfterSum(t *testing.T) {
	d := New16(0)
	_, err := d.Write([]byte("data"))
	require.NoError(t, err)
	_, err = d.Sum16()
	require.NoError(t, err)

	_, err = d.Write([]byte("more"))
	assert.ErrorIs(t, err, ErrFinalized)
}

func TestDigestDoubleSum(t *testing.T) {
	d := New32P(3)
	_, err := d.Write([]byte("data"))
	require.NoError(t, err)

	_, err = d.Sum32()
	require.NoError(t, err)
	_, err = d.Sum32()
	assert.ErrorIs(t, err, ErrFinalized)
}

func TestDigestEmptySum(t *testing.T) {
	d := New16(0)
	_, err := d.Sum16()
	assert.ErrorIs(t, err, ErrEmptyInput)

	// A seed alone is not data.
	seeded := New16(42)
	_, err = seeded.Sum16()
	assert.ErrorIs(t, err, ErrEmptyInput)

	// Below the 32-bit minimum of two bytes.
	short := New32(0)
	_, err = short.Write([]byte{0x01})
	require.NoError(t, err)
	_, err = short.Sum32()
	assert.ErrorIs(t, err, ErrShortInput)
}

func TestDigestReset(t *testing.T) {
	want, err := Checksum16([]byte("test"), 42)
	require.NoError(t, err)

	d := New16(42)
	_, err = d.Write([]byte("garbage data"))
	require.NoError(t, err)
	d.Reset()
	_, err = d.Write([]byte("test"))
	require.NoError(t, err)

	sum, err := d.Sum16()
	require.NoError(t, err)
	assert.Equal(t, want, sum)
}

func TestDigestResetAfterSum(t *testing.T) {
	d := New8(10)
	_, err := d.Write([]byte("junk"))
	require.NoError(t, err)
	_, err = d.Sum8()
	require.NoError(t, err)

	// Reset clears the finalized state; the digest is reusable.
	d.Reset()
	_, err = d.Write([]byte("test"))
	require.NoError(t, err)
	sum, err := d.Sum8()
	require.NoError(t, err)

	want, err := Checksum8([]byte("test"), 10)
	require.NoError(t, err)
	assert.Equal(t, want, sum)
}

func TestDigestsIndependentAcrossGoroutines(t *testing.T) {
	// Each digest owns its state exclusively; independent computations run
	// in parallel with no coordination.
	data := []byte("concurrent checksum computations")

	var wg sync.WaitGroup
	for seed := 0; seed < 64; seed++ {
		wg.Add(1)
		go func(seed byte) {
			defer wg.Done()

			want, err := Checksum32(data, seed)
			assert.NoError(t, err)

			d := New32(seed)
			for i := range data {
				_, err := d.Write(data[i : i+1])
				assert.NoError(t, err)
			}
			sum, err := d.Sum32()
			assert.NoError(t, err)
			assert.Equal(t, want, sum)
		}(byte(seed))
	}
	wg.Wait()
}
