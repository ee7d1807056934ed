package pool

import (
	"sync"
)

// ChunkPool manages a pool of fixed-size byte slices used as read buffers
// by streaming checksum computations.
type ChunkPool struct {
	size int       // Length of each chunk.
	pool sync.Pool // Thread-safe pool of chunks.
}

// Creates a new chunk pool with a specified chunk size.
func NewChunkPool(size int) *ChunkPool {
	return &ChunkPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				return make([]byte, size)
			},
		},
	}
}

// Retrieves a chunk from the pool.
func (cp *ChunkPool) Get() []byte {
	return cp.pool.Get().([]byte)
}

// Returns a chunk to the pool.
func (cp *ChunkPool) Put(chunk []byte) {
	// Don't pool chunks of the wrong size.
	if cap(chunk) != cp.size {
		return
	}
	cp.pool.Put(chunk[:cp.size])
}
