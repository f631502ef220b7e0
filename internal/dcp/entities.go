package dcp

// Asset describes one essence file referenced by a reel. An asset is built by
// Context.Ingest and treated as immutable once attached, except for the
// duration reconciliation applied during reel validation.
type Asset struct {
	Path        string
	Annotation  string
	Size        string // decimal byte count, serialized verbatim
	EssenceType EssenceType
	Class       TrackClass
	Standard    Standard
	Duration    int // frames
	EntryPoint  int // starting frame offset
	FrameRate   string
	AspectRatio string
	Language    string
	Digest      string // base64 SHA-1, populated by the digest stage
}

// Reel bundles at most one picture, one sound, and one subtitle asset
// covering a contiguous segment of the presentation. The fixed three-slot
// shape is deliberate: only one track per class is representable.
type Reel struct {
	ID           string
	Annotation   string
	MainPicture  *Asset
	MainSound    *Asset
	MainSubtitle *Asset
}

// Tracks returns the occupied slots in picture, sound, subtitle order.
func (r *Reel) Tracks() []*Asset {
	tracks := make([]*Asset, 0, 3)
	for _, asset := range []*Asset{r.MainPicture, r.MainSound, r.MainSubtitle} {
		if asset != nil {
			tracks = append(tracks, asset)
		}
	}
	return tracks
}

// Duration returns the reel's picture duration in frames, or 0 when the
// picture slot is empty.
func (r *Reel) Duration() int {
	if r.MainPicture == nil {
		return 0
	}
	return r.MainPicture.Duration
}

// Clone deep-copies the reel so the caller owns the assets exclusively.
func (r Reel) Clone() Reel {
	clone := r
	clone.MainPicture = cloneAsset(r.MainPicture)
	clone.MainSound = cloneAsset(r.MainSound)
	clone.MainSubtitle = cloneAsset(r.MainSubtitle)
	return clone
}

func cloneAsset(a *Asset) *Asset {
	if a == nil {
		return nil
	}
	copied := *a
	return &copied
}

// CPL is a content playlist: the ordered reels making up one presentation.
type CPL struct {
	ID         string
	Filename   string
	Annotation string
	Issuer     string
	Creator    string
	Title      string
	Kind       string
	Rating     string
	Timestamp  string
	Reels      []Reel
}

// ReelCount returns the number of reels appended so far.
func (c *CPL) ReelCount() int { return len(c.Reels) }

// Clone deep-copies the playlist and its reels.
func (c CPL) Clone() CPL {
	clone := c
	if len(c.Reels) > 0 {
		clone.Reels = make([]Reel, len(c.Reels))
		for i, reel := range c.Reels {
			clone.Reels[i] = reel.Clone()
		}
	}
	return clone
}

// PKL is a packing list: the ordered playlists shipped in one package.
type PKL struct {
	ID         string
	Filename   string
	Annotation string
	Issuer     string
	Creator    string
	Timestamp  string
	CPLs       []CPL
}

// CPLCount returns the number of playlists appended so far.
func (p *PKL) CPLCount() int { return len(p.CPLs) }

// Clone deep-copies the packing list and its playlists.
func (p PKL) Clone() PKL {
	clone := p
	if len(p.CPLs) > 0 {
		clone.CPLs = make([]CPL, len(p.CPLs))
		for i, cpl := range p.CPLs {
			clone.CPLs[i] = cpl.Clone()
		}
	}
	return clone
}

// NewPKL constructs a packing list from the context's descriptive fields.
// The identifier and filename are assigned here and never change.
func (c *Context) NewPKL() PKL {
	pkl := PKL{
		ID:         c.NewID(),
		Annotation: c.Annotation,
		Issuer:     c.Issuer,
		Creator:    c.Creator,
		Timestamp:  c.Timestamp,
	}
	pkl.Filename = manifestFilename("PKL", c.Basename, pkl.ID)
	return pkl
}

// NewCPL constructs a content playlist from the context's descriptive fields.
func (c *Context) NewCPL() CPL {
	cpl := CPL{
		ID:         c.NewID(),
		Annotation: c.Annotation,
		Issuer:     c.Issuer,
		Creator:    c.Creator,
		Title:      c.Title,
		Kind:       c.Kind,
		Rating:     c.Rating,
		Timestamp:  c.Timestamp,
	}
	cpl.Filename = manifestFilename("CPL", c.Basename, cpl.ID)
	return cpl
}

// NewReel constructs an empty reel. Reels carry no filename; they live
// inside their playlist document.
func (c *Context) NewReel() Reel {
	return Reel{
		ID:         c.NewID(),
		Annotation: c.Annotation,
	}
}

// manifestFilename derives "<PREFIX>_<basename>.xml" when a basename
// override is configured, else "<PREFIX>_<identifier>.xml".
func manifestFilename(prefix, basename, id string) string {
	if basename != "" {
		return prefix + "_" + basename + ".xml"
	}
	return prefix + "_" + id + ".xml"
}
