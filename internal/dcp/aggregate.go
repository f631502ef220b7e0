package dcp

import "fmt"

// Capacity limits for the aggregation sequences. The stores grow on demand;
// the limits only guard against runaway input, failing with
// ErrCapacityExceeded instead of accepting an unserviceable package.
const (
	MaxReelsPerCPL    = 30
	MaxCPLsPerPKL     = 8
	MaxPKLsPerPackage = 8
)

// AppendReel copies the reel into the playlist's owned sequence. The
// playlist becomes the sole owner of the copy; insertion order is
// serialization order.
func (c *CPL) AppendReel(reel Reel) error {
	if len(c.Reels) >= MaxReelsPerCPL {
		return fmt.Errorf("%w: cpl %s already holds %d reels", ErrCapacityExceeded, c.ID, len(c.Reels))
	}
	c.Reels = append(c.Reels, reel.Clone())
	return nil
}

// AppendCPL copies the playlist into the packing list's owned sequence.
func (p *PKL) AppendCPL(cpl CPL) error {
	if len(p.CPLs) >= MaxCPLsPerPKL {
		return fmt.Errorf("%w: pkl %s already holds %d cpls", ErrCapacityExceeded, p.ID, len(p.CPLs))
	}
	p.CPLs = append(p.CPLs, cpl.Clone())
	return nil
}

// AppendPKL copies the packing list into the context's owned sequence.
func (c *Context) AppendPKL(pkl PKL) error {
	if len(c.PKLs) >= MaxPKLsPerPackage {
		return fmt.Errorf("%w: package already holds %d pkls", ErrCapacityExceeded, len(c.PKLs))
	}
	c.PKLs = append(c.PKLs, pkl.Clone())
	return nil
}
