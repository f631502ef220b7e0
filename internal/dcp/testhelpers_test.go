package dcp

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"dcpforge/internal/logging"
)

// newTestContext returns a context with deterministic collaborators: a
// sequential identifier generator, a fixed timestamp, and a no-op logger.
func newTestContext(t *testing.T) *Context {
	t.Helper()
	ctx := NewContext(logging.NewNop())
	next := 0
	ctx.NewID = func() string {
		next++
		return fmt.Sprintf("00000000-0000-0000-0000-%012d", next)
	}
	ctx.Now = func() string { return "2026-08-30T12:00:00+00:00" }
	ctx.Timestamp = ctx.Now()
	return ctx
}

// fakeInspector serves canned essence metadata keyed by base filename.
type fakeInspector struct {
	infos map[string]EssenceInfo
	err   error
}

func (f *fakeInspector) Inspect(path string) (EssenceInfo, error) {
	if f.err != nil {
		return EssenceInfo{}, f.err
	}
	info, ok := f.infos[filepath.Base(path)]
	if !ok {
		return EssenceInfo{}, nil
	}
	return info, nil
}

// writeEssenceFile drops a placeholder essence file into a temp dir.
func writeEssenceFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("essence payload"), 0o644); err != nil {
		t.Fatalf("write essence file: %v", err)
	}
	return path
}

// pictureAsset builds a minimal picture asset for reel-level tests.
func pictureAsset(standard Standard, duration int) Asset {
	return Asset{
		Annotation:  "picture.mxf",
		EssenceType: EssenceJPEG2000,
		Class:       ClassPicture,
		Standard:    standard,
		Duration:    duration,
	}
}

func soundAsset(standard Standard, duration int) Asset {
	return Asset{
		Annotation:  "sound.mxf",
		EssenceType: EssencePCM48K,
		Class:       ClassSound,
		Standard:    standard,
		Duration:    duration,
	}
}

func subtitleAsset(standard Standard, duration int) Asset {
	return Asset{
		Annotation:  "subtitle.xml",
		EssenceType: EssenceTimedText,
		Class:       ClassTimedText,
		Standard:    standard,
		Duration:    duration,
	}
}
