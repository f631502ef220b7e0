package dcp

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"dcpforge/internal/logging"
)

// Ingest validates the essence file at path, captures its size, and
// populates an asset from the inspector's metadata. The context's override
// policy is applied after inspection: a forced aspect ratio always wins, a
// duration ceiling only clamps downward, and an entry point is recorded only
// when it fits inside the final duration. On error no partially-populated
// asset is returned.
func (c *Context) Ingest(path string) (Asset, error) {
	log := c.Logger()
	log.Info("adding asset", logging.String("path", path))

	file, err := os.Open(path)
	if err != nil {
		log.Error("could not open file", logging.String("path", path), logging.Error(err))
		return Asset{}, fmt.Errorf("%w: %s", ErrFileOpen, path)
	}
	info, statErr := file.Stat()
	_ = file.Close()
	if statErr != nil {
		log.Error("could not stat file", logging.String("path", path), logging.Error(statErr))
		return Asset{}, fmt.Errorf("%w: %s", ErrFileOpen, path)
	}

	asset := Asset{
		Path:       path,
		Annotation: filepath.Base(path),
		Size:       strconv.FormatInt(info.Size(), 10),
	}

	if c.Inspector == nil {
		return Asset{}, fmt.Errorf("%w: no essence inspector configured", ErrGeneric)
	}

	log.Debug("reading asset information", logging.String("path", path))
	essence, err := c.Inspector.Inspect(path)
	if err != nil || essence.Type == EssenceUnknown {
		log.Error("not a proper essence file", logging.String("path", path), logging.Error(err))
		return Asset{}, fmt.Errorf("%w: %s", ErrInvalidTrackType, path)
	}

	asset.EssenceType = essence.Type
	asset.Class = Classify(essence.Type)
	asset.Standard = essence.Standard
	asset.Duration = essence.Duration
	asset.FrameRate = essence.FrameRate
	asset.AspectRatio = essence.AspectRatio
	asset.Language = essence.Language

	if c.AspectRatio != "" {
		asset.AspectRatio = c.AspectRatio
	}

	if c.MaxDuration > 0 {
		if c.MaxDuration < asset.Duration {
			asset.Duration = c.MaxDuration
		} else {
			log.Warn("desired duration cannot be greater than asset duration, ignoring value",
				logging.Int("desired", c.MaxDuration),
				logging.Int("duration", asset.Duration))
		}
	}

	if c.EntryPoint > 0 {
		if c.EntryPoint < asset.Duration {
			asset.EntryPoint = c.EntryPoint
		} else {
			log.Warn("desired entry point cannot be greater than asset duration, ignoring value",
				logging.Int("desired", c.EntryPoint),
				logging.Int("duration", asset.Duration))
		}
	}

	return asset, nil
}
