package digest

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"

	"dcpforge/internal/dcp"
	"dcpforge/internal/logging"
)

const chunkSize = 64 * 1024

// Compute returns the base64 SHA-1 digest of the file at path. The
// DigestUpdated callback fires after every chunk with the running byte count
// and DigestDone fires once with the final digest.
func Compute(path string, cb dcp.Callbacks) (string, error) {
	cb = cb.WithDefaults()

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	hasher := sha1.New()
	buf := make([]byte, chunkSize)
	var written int64
	for {
		n, err := file.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
			written += int64(n)
			cb.DigestUpdated(path, written)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
	}

	digest := base64.StdEncoding.EncodeToString(hasher.Sum(nil))
	cb.DigestDone(path, digest)
	return digest, nil
}

// Populate fills Asset.Digest for every track in the assembled tree. When a
// store is provided, unchanged files resolve from the cache instead of being
// rehashed.
func Populate(ctx context.Context, store *Store, build *dcp.Context, logger *slog.Logger) error {
	log := logging.NewComponentLogger(logger, "digest")

	for p := range build.PKLs {
		pkl := &build.PKLs[p]
		for c := range pkl.CPLs {
			cpl := &pkl.CPLs[c]
			for r := range cpl.Reels {
				for _, track := range cpl.Reels[r].Tracks() {
					if track.Digest != "" {
						continue
					}
					digest, err := resolve(ctx, store, track.Path, build.Callbacks, log)
					if err != nil {
						return err
					}
					track.Digest = digest
				}
			}
		}
	}
	return nil
}

func resolve(ctx context.Context, store *Store, path string, cb dcp.Callbacks, log *slog.Logger) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	if store != nil {
		cached, ok, err := store.Lookup(ctx, path, info.Size(), info.ModTime())
		if err != nil {
			log.Warn("digest cache lookup failed", logging.String("path", path), logging.Error(err))
		} else if ok {
			log.Debug("digest cache hit", logging.String("path", path))
			return cached, nil
		}
	}

	log.Info("computing digest", logging.String("path", path), logging.Int64("bytes", info.Size()))
	digest, err := Compute(path, cb)
	if err != nil {
		return "", err
	}

	if store != nil {
		if err := store.Save(ctx, path, info.Size(), info.ModTime(), digest); err != nil {
			log.Warn("digest cache save failed", logging.String("path", path), logging.Error(err))
		}
	}
	return digest, nil
}
