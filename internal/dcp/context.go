package dcp

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dcpforge/internal/logging"
)

// EssenceInfo is the metadata an Inspector extracts from an essence file.
type EssenceInfo struct {
	Type        EssenceType
	Standard    Standard
	Duration    int // frames
	FrameRate   string
	AspectRatio string
	Language    string
}

// Inspector reads essence metadata from a pre-ingested file. Implementations
// live outside this package; tests inject fakes.
type Inspector interface {
	Inspect(path string) (EssenceInfo, error)
}

// InspectorFunc adapts a function to the Inspector interface.
type InspectorFunc func(path string) (EssenceInfo, error)

func (f InspectorFunc) Inspect(path string) (EssenceInfo, error) { return f(path) }

// Callbacks carries the synchronous progress hooks invoked by the essence
// writing and digest stages. Every slot has a guaranteed no-op default, so
// callers only set the notifications they care about.
type Callbacks struct {
	FrameWritten  func(frame int)
	FileWritten   func(path string)
	DigestUpdated func(path string, written int64)
	DigestDone    func(path string, digest string)
}

// WithDefaults fills empty slots with no-ops.
func (cb Callbacks) WithDefaults() Callbacks {
	if cb.FrameWritten == nil {
		cb.FrameWritten = func(int) {}
	}
	if cb.FileWritten == nil {
		cb.FileWritten = func(string) {}
	}
	if cb.DigestUpdated == nil {
		cb.DigestUpdated = func(string, int64) {}
	}
	if cb.DigestDone == nil {
		cb.DigestDone = func(string, string) {}
	}
	return cb
}

// Context is the process-scoped package build state. It is created once at
// startup, threaded explicitly through every assembly call, and owns the
// packing lists it accumulates. A single logical thread of control owns the
// context for the lifetime of a build; no locking is required.
type Context struct {
	Issuer     string
	Creator    string
	Title      string
	Annotation string
	Kind       string
	Rating     string
	Timestamp  string

	// Basename, when non-empty, replaces the identifier in derived
	// manifest filenames.
	Basename string

	// AspectRatio forces every ingested asset's ratio when non-empty.
	AspectRatio string
	// MaxDuration caps asset durations in frames; 0 means no ceiling.
	MaxDuration int
	// EntryPoint sets the starting frame offset; 0 means the natural start.
	EntryPoint int

	// Stereoscopic selects the stereo playlist namespace table.
	Stereoscopic bool

	// Standard is pinned by the first attached asset and enforced on every
	// attach thereafter.
	Standard Standard

	// PKLs is the owned packing-list sequence, in serialization order.
	PKLs []PKL

	// Collaborators. All have working defaults from NewContext.
	NewID     func() string
	Now       func() string
	Inspector Inspector
	Callbacks Callbacks

	logger *slog.Logger
}

const (
	defaultIssuer     = "dcpforge"
	defaultCreator    = "dcpforge"
	defaultAnnotation = "Created with dcpforge"
	defaultTitle      = "Untitled"
	defaultKind       = "feature"

	timestampLayout = "2006-01-02T15:04:05-07:00"
)

// NewContext builds a context with repository defaults and no-op callbacks.
// The creation timestamp is captured once, here, so every entity in the
// package shares it.
func NewContext(logger *slog.Logger) *Context {
	c := &Context{
		Issuer:     defaultIssuer,
		Creator:    defaultCreator,
		Title:      defaultTitle,
		Annotation: defaultAnnotation,
		Kind:       defaultKind,
		NewID:      uuid.NewString,
		Now: func() string {
			return time.Now().Format(timestampLayout)
		},
		Callbacks: Callbacks{}.WithDefaults(),
		logger:    logging.NewComponentLogger(logger, "dcp"),
	}
	c.Timestamp = c.Now()
	return c
}

// Logger returns the context's diagnostic logger, never nil.
func (c *Context) Logger() *slog.Logger {
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	return c.logger
}

// PKLCount returns the number of packing lists appended so far.
func (c *Context) PKLCount() int { return len(c.PKLs) }
