// Package integrity streams data through a configured checksum variant.
// It handles chunked reads, buffer reuse and cancellation; the checksum
// kernel itself stays ignorant of readers and contexts.
package integrity

import (
	"context"
	"fmt"
	"io"

	"github.com/iamNilotpal/koopman/internal/adapters/checksum"
	"github.com/iamNilotpal/koopman/internal/core/domain"
	"github.com/iamNilotpal/koopman/internal/core/ports"
	"github.com/iamNilotpal/koopman/pkg/pool"
)

type Service struct {
	options  *domain.ChecksumOptions // Configuration controlling checksum behavior
	checksum ports.Checksum          // The configured variant behind the port
	chunks   *pool.ChunkPool         // Reusable read buffers for streaming
}

func New(opts *domain.ChecksumOptions, chunkSize uint32) (*Service, error) {
	if opts == nil {
		opts = checksum.DefaultOptions()
	}
	if chunkSize == 0 {
		return nil, fmt.Errorf("chunk size must be greater than 0")
	}

	cs, err := checksum.New(opts)
	if err != nil {
		return nil, err
	}

	return &Service{
		options:  opts,
		checksum: cs,
		chunks:   pool.NewChunkPool(int(chunkSize)),
	}, nil
}

// Algorithm returns the name of the configured variant.
func (s *Service) Algorithm() string {
	return s.checksum.Name()
}

// Checksum computes the check value of an in-memory byte slice.
func (s *Service) Checksum(data []byte) (uint64, error) {
	return s.checksum.Calculate(data)
}

// Sum streams r through an incremental computation in chunk-sized reads and
// returns the check value and the number of bytes consumed. Cancellation is
// observed between chunks; the result is identical to a one-shot
// computation over the concatenated stream.
func (s *Service) Sum(ctx context.Context, r io.Reader) (uint64, int64, error) {
	buf := s.chunks.Get()
	defer s.chunks.Put(buf)

	digest := s.checksum.NewDigest()
	var total int64

	for {
		if err := ctx.Err(); err != nil {
			return 0, total, err
		}

		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := digest.Write(buf[:n]); werr != nil {
				return 0, total, werr
			}
			total += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, total, fmt.Errorf("read failed after %d bytes: %w", total, err)
		}
	}

	sum, err := digest.Sum()
	if err != nil {
		return 0, total, err
	}
	return sum, total, nil
}

// Verify streams r and compares the computed check value against expected.
// When verification on read is disabled in the options, the stream is not
// consumed and the data is trusted as-is.
func (s *Service) Verify(ctx context.Context, r io.Reader, expected uint64) (bool, error) {
	if !s.options.VerifyOnRead {
		return true, nil
	}

	sum, _, err := s.Sum(ctx, r)
	if err != nil {
		return false, err
	}
	return sum == expected, nil
}
