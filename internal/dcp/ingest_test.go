package dcp

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestIngestMissingFile(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Inspector = &fakeInspector{}

	asset, err := ctx.Ingest(filepath.Join(t.TempDir(), "missing.mxf"))
	if !errors.Is(err, ErrFileOpen) {
		t.Fatalf("expected ErrFileOpen, got %v", err)
	}
	if ErrorCode(err) != CodeFileOpen {
		t.Fatalf("expected CodeFileOpen, got %v", ErrorCode(err))
	}
	if asset != (Asset{}) {
		t.Fatalf("expected empty asset on failure, got %+v", asset)
	}
}

func TestIngestUnrecognizedEssence(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Inspector = &fakeInspector{infos: map[string]EssenceInfo{}}

	path := writeEssenceFile(t, t.TempDir(), "garbage.bin")
	_, err := ctx.Ingest(path)
	if !errors.Is(err, ErrInvalidTrackType) {
		t.Fatalf("expected ErrInvalidTrackType, got %v", err)
	}
}

func TestIngestInspectorError(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Inspector = &fakeInspector{err: errors.New("truncated header")}

	path := writeEssenceFile(t, t.TempDir(), "picture.mxf")
	if _, err := ctx.Ingest(path); !errors.Is(err, ErrInvalidTrackType) {
		t.Fatalf("expected ErrInvalidTrackType, got %v", err)
	}
}

func TestIngestPopulatesAsset(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Inspector = &fakeInspector{infos: map[string]EssenceInfo{
		"picture.mxf": {
			Type:        EssenceJPEG2000,
			Standard:    StandardSMPTE,
			Duration:    120,
			FrameRate:   "24 1",
			AspectRatio: "1.85",
		},
	}}

	path := writeEssenceFile(t, t.TempDir(), "picture.mxf")
	asset, err := ctx.Ingest(path)
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if asset.Annotation != "picture.mxf" {
		t.Fatalf("annotation = %q", asset.Annotation)
	}
	if asset.Size != "15" { // len("essence payload")
		t.Fatalf("size = %q, want \"15\"", asset.Size)
	}
	if asset.Class != ClassPicture || asset.Standard != StandardSMPTE {
		t.Fatalf("unexpected classification: %+v", asset)
	}
	if asset.Duration != 120 || asset.EntryPoint != 0 {
		t.Fatalf("unexpected duration/entry: %+v", asset)
	}
}

func TestIngestDurationCeiling(t *testing.T) {
	cases := []struct {
		name    string
		ceiling int
		want    int
	}{
		{"ceiling smaller clamps", 100, 100},
		{"ceiling larger ignored", 150, 120},
		{"no ceiling", 0, 120},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newTestContext(t)
			ctx.MaxDuration = tc.ceiling
			ctx.Inspector = &fakeInspector{infos: map[string]EssenceInfo{
				"picture.mxf": {Type: EssenceJPEG2000, Standard: StandardSMPTE, Duration: 120},
			}}

			path := writeEssenceFile(t, t.TempDir(), "picture.mxf")
			asset, err := ctx.Ingest(path)
			if err != nil {
				t.Fatalf("ingest failed: %v", err)
			}
			if asset.Duration != tc.want {
				t.Fatalf("duration = %d, want %d", asset.Duration, tc.want)
			}
		})
	}
}

func TestIngestEntryPoint(t *testing.T) {
	cases := []struct {
		name  string
		entry int
		want  int
	}{
		{"entry inside duration recorded", 24, 24},
		{"entry beyond duration ignored", 130, 0},
		{"entry equal to duration ignored", 120, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newTestContext(t)
			ctx.EntryPoint = tc.entry
			ctx.Inspector = &fakeInspector{infos: map[string]EssenceInfo{
				"picture.mxf": {Type: EssenceJPEG2000, Standard: StandardSMPTE, Duration: 120},
			}}

			path := writeEssenceFile(t, t.TempDir(), "picture.mxf")
			asset, err := ctx.Ingest(path)
			if err != nil {
				t.Fatalf("ingest failed: %v", err)
			}
			if asset.EntryPoint != tc.want {
				t.Fatalf("entry point = %d, want %d", asset.EntryPoint, tc.want)
			}
		})
	}
}

func TestIngestEntryPointChecksClampedDuration(t *testing.T) {
	// The entry point compares against the duration after the ceiling has
	// been applied, not the natural duration.
	ctx := newTestContext(t)
	ctx.MaxDuration = 50
	ctx.EntryPoint = 60
	ctx.Inspector = &fakeInspector{infos: map[string]EssenceInfo{
		"picture.mxf": {Type: EssenceJPEG2000, Standard: StandardSMPTE, Duration: 120},
	}}

	path := writeEssenceFile(t, t.TempDir(), "picture.mxf")
	asset, err := ctx.Ingest(path)
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if asset.Duration != 50 || asset.EntryPoint != 0 {
		t.Fatalf("expected entry point ignored against clamped duration, got %+v", asset)
	}
}

func TestIngestForcedAspectRatio(t *testing.T) {
	ctx := newTestContext(t)
	ctx.AspectRatio = "2.39"
	ctx.Inspector = &fakeInspector{infos: map[string]EssenceInfo{
		"picture.mxf": {Type: EssenceJPEG2000, Standard: StandardSMPTE, Duration: 120, AspectRatio: "1.85"},
	}}

	path := writeEssenceFile(t, t.TempDir(), "picture.mxf")
	asset, err := ctx.Ingest(path)
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if asset.AspectRatio != "2.39" {
		t.Fatalf("aspect ratio = %q, want forced 2.39", asset.AspectRatio)
	}
}
