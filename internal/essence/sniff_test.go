package essence

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"dcpforge/internal/dcp"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func mxfHeader(label []byte) []byte {
	var buf bytes.Buffer
	buf.Write(mxfPartitionKey)
	buf.Write([]byte{0x01, 0x02, 0x04, 0x00}) // closed complete header partition
	buf.Write(bytes.Repeat([]byte{0x00}, 64))
	buf.Write([]byte{0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x07})
	buf.Write(label)
	buf.Write([]byte{0x01, 0x00})
	return buf.Bytes()
}

func TestInspectMXFKinds(t *testing.T) {
	cases := []struct {
		name  string
		label []byte
		want  dcp.EssenceType
	}{
		{"jpeg2000 picture", mxfLabelJPEG2000, dcp.EssenceJPEG2000},
		{"mpeg2 picture", mxfLabelMPEG, dcp.EssenceMPEG2},
		{"pcm sound", mxfLabelAES3, dcp.EssencePCM48K},
		{"timed text", mxfLabelTimedText, dcp.EssenceTimedText},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sniffer := New(dcp.StandardSMPTE)
			path := writeFile(t, "track.mxf", mxfHeader(tc.label))
			info, err := sniffer.Inspect(path)
			if err != nil {
				t.Fatalf("inspect failed: %v", err)
			}
			if info.Type != tc.want {
				t.Fatalf("type = %v, want %v", info.Type, tc.want)
			}
			if info.Standard != dcp.StandardSMPTE {
				t.Fatalf("standard = %v, want smpte", info.Standard)
			}
		})
	}
}

func TestInspectMXFUnknownLabel(t *testing.T) {
	sniffer := New(dcp.StandardSMPTE)
	path := writeFile(t, "track.mxf", mxfHeader([]byte{0x0d, 0x01, 0x03, 0x01, 0x02, 0x7f}))
	info, err := sniffer.Inspect(path)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if info.Type != dcp.EssenceUnknown {
		t.Fatalf("expected unknown type, got %v", info.Type)
	}
}

func TestInspectJPEG2000Codestream(t *testing.T) {
	sniffer := New(dcp.StandardInterop)
	path := writeFile(t, "frame.j2c", append(append([]byte{}, j2cSignature...), 0x00, 0x29))
	info, err := sniffer.Inspect(path)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if info.Type != dcp.EssenceJPEG2000 || info.Duration != 1 {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.Standard != dcp.StandardInterop {
		t.Fatalf("expected configured default standard, got %v", info.Standard)
	}
}

func wavFile(sampleRate uint32, seconds int) []byte {
	const channels = 2
	const bytesPerSample = 3 // 24-bit
	blockAlign := uint16(channels * bytesPerSample)
	dataSize := uint32(seconds) * sampleRate * uint32(blockAlign)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+0)) // header-only fixture
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, sampleRate)
	binary.Write(&buf, binary.LittleEndian, sampleRate*uint32(blockAlign))
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, uint16(bytesPerSample*8))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	return buf.Bytes()
}

func TestInspectWAV(t *testing.T) {
	sniffer := New(dcp.StandardSMPTE)
	path := writeFile(t, "sound.wav", wavFile(48000, 10))
	info, err := sniffer.Inspect(path)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if info.Type != dcp.EssencePCM48K {
		t.Fatalf("type = %v, want pcm-24b-48k", info.Type)
	}
	// 10 seconds at the assumed 24 fps.
	if info.Duration != 240 {
		t.Fatalf("duration = %d, want 240", info.Duration)
	}
}

func TestInspectWAV96K(t *testing.T) {
	sniffer := New(dcp.StandardSMPTE)
	path := writeFile(t, "sound.wav", wavFile(96000, 2))
	info, err := sniffer.Inspect(path)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if info.Type != dcp.EssencePCM96K || info.Duration != 48 {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestInspectTimedText(t *testing.T) {
	sniffer := New(dcp.StandardSMPTE)
	sniffer.Language = "en"

	interop := writeFile(t, "subs_interop.xml",
		[]byte(`<?xml version="1.0"?><DCSubtitle Version="1.0"></DCSubtitle>`))
	info, err := sniffer.Inspect(interop)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if info.Type != dcp.EssenceTimedText || info.Standard != dcp.StandardInterop {
		t.Fatalf("unexpected interop info: %+v", info)
	}
	if info.Language != "en" {
		t.Fatalf("language = %q", info.Language)
	}

	smpte := writeFile(t, "subs_smpte.xml",
		[]byte(`<?xml version="1.0"?><dcst:SubtitleReel xmlns:dcst="x"></dcst:SubtitleReel>`))
	info, err = sniffer.Inspect(smpte)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if info.Standard != dcp.StandardSMPTE {
		t.Fatalf("expected smpte from SubtitleReel, got %+v", info)
	}
}

func TestInspectUnrecognized(t *testing.T) {
	sniffer := New(dcp.StandardSMPTE)
	path := writeFile(t, "blob.bin", []byte{0xde, 0xad, 0xbe, 0xef})
	info, err := sniffer.Inspect(path)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if info.Type != dcp.EssenceUnknown {
		t.Fatalf("expected unknown, got %+v", info)
	}
}

func TestInspectMissingFile(t *testing.T) {
	sniffer := New(dcp.StandardSMPTE)
	if _, err := sniffer.Inspect(filepath.Join(t.TempDir(), "missing.mxf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
