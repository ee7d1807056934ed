package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/iamNilotpal/koopman/config"
	"github.com/iamNilotpal/koopman/internal/core/domain"
	"github.com/iamNilotpal/koopman/internal/core/services/integrity"
	"github.com/iamNilotpal/koopman/pkg/errors"
	"github.com/iamNilotpal/koopman/pkg/koopman"
	"github.com/iamNilotpal/koopman/pkg/logger"
	"github.com/iamNilotpal/koopman/pkg/system"
)

func main() {
	logger := logger.New("koopman")
	defer logger.Sync()

	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			if ve := errors.AsValidationError(err); ve != nil {
				logger.Infow("config error", "field", ve.Field, "value", ve.Value, "error", ve.Err)
			} else {
				logger.Infow("config error", "error", err)
			}
			os.Exit(1)
		}
		cfg = loaded
	}

	service, err := integrity.New(&domain.ChecksumOptions{
		Seed:         byte(cfg.Checksum.Seed),
		Algorithm:    domain.ChecksumAlgorithm(cfg.Checksum.Algorithm),
		VerifyOnRead: cfg.Checksum.VerifyOnRead,
	}, cfg.ChunkSize)
	if err != nil {
		logger.Infow("create integrity service error", "error", err)
		os.Exit(1)
	}

	files := flag.Args()
	if len(files) == 0 {
		demo(logger)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infow("checksumming files", "algorithm", service.Algorithm(), "count", len(files))

	for _, path := range files {
		err := system.RunWithContext(ctx, func(ctx context.Context) error {
			return checksumFile(ctx, service, logger, path)
		})
		if err != nil {
			logger.Infow("checksum error", "file", path, "error", err)
			os.Exit(1)
		}
	}
}

func checksumFile(
	ctx context.Context,
	service *integrity.Service,
	log *zap.SugaredLogger,
	path string,
) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sum, size, err := service.Sum(ctx, f)
	if err != nil {
		return err
	}
	log.Infow("checksum computed",
		"file", path, "bytes", size, "algorithm", service.Algorithm(), "sum", sum)

	// Round-trip the file through verification to demonstrate the check.
	v, err := os.Open(path)
	if err != nil {
		return err
	}
	defer v.Close()

	ok, err := service.Verify(ctx, v, sum)
	if err != nil {
		return err
	}
	log.Infow("checksum verified", "file", path, "ok", ok)
	return nil
}

// demo walks through the six variants over a fixed input, mirroring the
// library's basic usage: one-shot values, streaming equivalence and
// corruption detection.
func demo(log *zap.SugaredLogger) {
	data := []byte("Hello, World!")

	sum8, _ := koopman.Checksum8(data, 0)
	sum8p, _ := koopman.Checksum8P(data, 0)
	sum16, _ := koopman.Checksum16(data, 0)
	sum16p, _ := koopman.Checksum16P(data, 0)
	sum32, _ := koopman.Checksum32(data, 0)
	sum32p, _ := koopman.Checksum32P(data, 0)

	log.Infow("one-shot checksums", "data", string(data),
		"koopman8", sum8, "koopman8p", sum8p,
		"koopman16", sum16, "koopman16p", sum16p,
		"koopman32", sum32, "koopman32p", sum32p)

	digest := koopman.New16(0)
	digest.Write([]byte("Hello, "))
	digest.Write([]byte("World!"))
	streamed, _ := digest.Sum16()
	log.Infow("streaming equals one-shot",
		"streamed", streamed, "oneShot", sum16, "equal", streamed == sum16)

	corrupted := append([]byte(nil), data...)
	corrupted[0] ^= 0x01
	log.Infow("corruption detection",
		"originalValid", koopman.Verify16(data, sum16, 0),
		"corruptedValid", koopman.Verify16(corrupted, sum16, 0))
}
