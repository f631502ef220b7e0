package assemble

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"dcpforge/internal/dcp"
	"dcpforge/internal/digest"
	"dcpforge/internal/logging"
)

// lockFilename guards the output directory against concurrent builds.
const lockFilename = ".dcpforge.lock"

// ErrBuildLocked indicates another build holds the output directory.
var ErrBuildLocked = errors.New("output directory is locked by another build")

// Options configures one assembly run.
type Options struct {
	// Reels lists the essence file paths making up each reel, in
	// presentation order.
	Reels [][]string
	// OutputDir is the staging target; it is created if missing.
	OutputDir string
	// ComputeDigests fills Asset.Digest across the assembled tree.
	ComputeDigests bool
	// DigestStore, when non-nil, caches digests between runs.
	DigestStore *digest.Store
}

// Run assembles and validates a package into the build context. On success
// the context owns one new packing list holding one playlist with every reel
// validated; the returned pointer addresses that packing list inside the
// context's owned sequence.
func Run(ctx context.Context, build *dcp.Context, opts Options) (*dcp.PKL, error) {
	log := logging.NewComponentLogger(build.Logger(), "assemble")

	if len(opts.Reels) == 0 {
		return nil, fmt.Errorf("%w: no reels to assemble", dcp.ErrGeneric)
	}
	for i, files := range opts.Reels {
		if len(files) == 0 {
			return nil, fmt.Errorf("%w: reel %d has no essence files", dcp.ErrGeneric, i+1)
		}
	}

	outputDir := strings.TrimSpace(opts.OutputDir)
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(outputDir, lockFilename))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire build lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrBuildLocked, outputDir)
	}
	defer func() { _ = lock.Unlock() }()

	pkl := build.NewPKL()
	cpl := build.NewCPL()

	for i, files := range opts.Reels {
		reel := build.NewReel()
		log.Info("assembling reel", logging.Int("reel", i+1), logging.Int("assets", len(files)))

		for _, file := range files {
			asset, err := build.Ingest(file)
			if err != nil {
				return nil, err
			}
			if err := build.Attach(&reel, asset); err != nil {
				return nil, err
			}
		}

		if err := build.ValidateReel(&reel, i); err != nil {
			return nil, err
		}
		if err := cpl.AppendReel(reel); err != nil {
			return nil, err
		}
	}

	if err := pkl.AppendCPL(cpl); err != nil {
		return nil, err
	}
	if err := build.AppendPKL(pkl); err != nil {
		return nil, err
	}
	assembled := &build.PKLs[len(build.PKLs)-1]

	if opts.ComputeDigests {
		if err := digest.Populate(ctx, opts.DigestStore, build, build.Logger()); err != nil {
			return nil, err
		}
	}

	log.Info("package assembled",
		logging.String("pkl", assembled.Filename),
		logging.Int("reels", assembled.CPLs[0].ReelCount()),
		logging.String("standard", build.Standard.String()))

	return assembled, nil
}

// GroupReels converts CLI reel arguments into per-reel file lists. Each
// argument names one reel's files separated by commas; an empty list is
// rejected by Run.
func GroupReels(args []string) [][]string {
	reels := make([][]string, 0, len(args))
	for _, arg := range args {
		var files []string
		for _, part := range strings.Split(arg, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				files = append(files, trimmed)
			}
		}
		if len(files) > 0 {
			reels = append(reels, files)
		}
	}
	return reels
}
