package dcp

import (
	"fmt"

	"dcpforge/internal/logging"
)

// Attach places the asset into the reel slot matching its track class,
// overwriting any asset already there. The first asset attached anywhere in
// the package pins the package-wide standard; later assets must agree.
func (c *Context) Attach(reel *Reel, asset Asset) error {
	log := c.Logger()
	log.Info("adding asset to reel", logging.String("asset", asset.Annotation))

	if c.Standard == StandardNone {
		c.Standard = asset.Standard
		log.Debug("standard detected", logging.String("standard", c.Standard.String()))
	} else if c.Standard != asset.Standard {
		log.Error("standard mismatch in assets",
			logging.String("asset", asset.Annotation),
			logging.String("asset_standard", asset.Standard.String()),
			logging.String("package_standard", c.Standard.String()))
		return fmt.Errorf("%w: asset %s is %s, package is %s",
			ErrSpecificationMismatch, asset.Annotation, asset.Standard, c.Standard)
	}

	switch Classify(asset.EssenceType) {
	case ClassPicture:
		log.Debug("adding picture track")
		reel.MainPicture = cloneAsset(&asset)
	case ClassSound:
		log.Debug("adding sound track")
		reel.MainSound = cloneAsset(&asset)
	case ClassTimedText:
		log.Debug("adding subtitle track")
		reel.MainSubtitle = cloneAsset(&asset)
	default:
		return fmt.Errorf("%w: unclassifiable essence type %s", ErrGeneric, asset.EssenceType)
	}

	return nil
}

// ValidateReel runs the conformance checks that make a reel well-formed.
// Checks execute in order and the first failure wins: picture presence,
// cross-track standard agreement, then duration reconciliation to the
// shortest track. The index argument is 0-based; diagnostics report reels
// 1-based.
func (c *Context) ValidateReel(reel *Reel, index int) error {
	log := c.Logger()
	number := index + 1

	log.Debug("validating reel", logging.Int("reel", number))

	if reel.MainPicture == nil || reel.MainPicture.Class != ClassPicture {
		log.Error("reel has no picture track", logging.Int("reel", number))
		return fmt.Errorf("%w: reel %d", ErrNoPictureTrack, number)
	}
	picture := reel.MainPicture

	if reel.MainSound != nil && picture.Standard != reel.MainSound.Standard {
		log.Error("standard mismatch between picture and sound", logging.Int("reel", number))
		return fmt.Errorf("%w: reel %d", ErrSpecificationMismatch, number)
	}
	if reel.MainSubtitle != nil && picture.Standard != reel.MainSubtitle.Standard {
		log.Error("standard mismatch between picture and subtitle", logging.Int("reel", number))
		return fmt.Errorf("%w: reel %d", ErrSpecificationMismatch, number)
	}

	d := picture.Duration
	mismatch := false

	if reel.MainSound != nil && reel.MainSound.Duration != d {
		mismatch = true
		if reel.MainSound.Duration < d {
			d = reel.MainSound.Duration
		}
	}
	if reel.MainSubtitle != nil && reel.MainSubtitle.Duration != d {
		mismatch = true
		if reel.MainSubtitle.Duration < d {
			d = reel.MainSubtitle.Duration
		}
	}

	if mismatch {
		for _, track := range reel.Tracks() {
			track.Duration = d
		}
		log.Warn("asset duration mismatch, adjusting all durations to shortest asset duration",
			logging.Int("reel", number),
			logging.Int("frames", d))
	}

	return nil
}
