package essence

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"dcpforge/internal/dcp"
)

// headerWindow bounds how much of a file the sniffer examines.
const headerWindow = 64 * 1024

// defaultFrameRate is assumed when deriving frame counts from raw audio.
const defaultFrameRate = 24

// Container signatures.
var (
	mxfPartitionKey = []byte{0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02}
	j2cSignature    = []byte{0xff, 0x4f, 0xff, 0x51}
	jp2Signature    = []byte{0x00, 0x00, 0x00, 0x0c, 0x6a, 0x50, 0x20, 0x20}
	mpeg2SeqHeader  = []byte{0x00, 0x00, 0x01, 0xb3}
)

// SMPTE generic-container label fragments distinguishing the essence wrapped
// inside an MXF file (byte 13-14 of the essence container UL).
var (
	mxfLabelJPEG2000  = []byte{0x0d, 0x01, 0x03, 0x01, 0x02, 0x0c}
	mxfLabelMPEG      = []byte{0x0d, 0x01, 0x03, 0x01, 0x02, 0x04}
	mxfLabelAES3      = []byte{0x0d, 0x01, 0x03, 0x01, 0x02, 0x06}
	mxfLabelTimedText = []byte{0x0d, 0x01, 0x03, 0x01, 0x02, 0x13}
)

// Sniffer identifies essence files from their container headers.
type Sniffer struct {
	// DefaultStandard applies when the container carries no dialect marker.
	DefaultStandard dcp.Standard
	// FrameRate is the frame rate assumed when deriving durations from raw
	// audio; 0 means 24 fps.
	FrameRate int
	// Language is recorded on timed-text assets.
	Language string
}

// New returns a sniffer that assumes the given dialect where detection is
// impossible.
func New(standard dcp.Standard) *Sniffer {
	return &Sniffer{DefaultStandard: standard}
}

// Inspect implements dcp.Inspector.
func (s *Sniffer) Inspect(path string) (dcp.EssenceInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return dcp.EssenceInfo{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	header := make([]byte, headerWindow)
	n, err := io.ReadFull(file, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return dcp.EssenceInfo{}, fmt.Errorf("read %s: %w", path, err)
	}
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, mxfPartitionKey):
		return s.inspectMXF(header)
	case bytes.HasPrefix(header, j2cSignature), bytes.HasPrefix(header, jp2Signature):
		// A raw codestream holds a single frame.
		return dcp.EssenceInfo{Type: dcp.EssenceJPEG2000, Standard: s.standard(), Duration: 1}, nil
	case bytes.HasPrefix(header, mpeg2SeqHeader):
		return dcp.EssenceInfo{Type: dcp.EssenceMPEG2, Standard: s.standard()}, nil
	case bytes.HasPrefix(header, []byte("RIFF")) && len(header) >= 12 && bytes.Equal(header[8:12], []byte("WAVE")):
		return s.inspectWAV(header)
	case looksLikeXML(header):
		return s.inspectTimedText(header)
	default:
		return dcp.EssenceInfo{}, nil
	}
}

func (s *Sniffer) standard() dcp.Standard {
	if s.DefaultStandard == dcp.StandardNone {
		return dcp.StandardSMPTE
	}
	return s.DefaultStandard
}

func (s *Sniffer) frameRate() int {
	if s.FrameRate <= 0 {
		return defaultFrameRate
	}
	return s.FrameRate
}

// inspectMXF picks the essence kind from the generic-container label found in
// the header partition. Durations require a full metadata parse, which is out
// of the sniffer's reach; callers supply the frame count via overrides.
func (s *Sniffer) inspectMXF(header []byte) (dcp.EssenceInfo, error) {
	info := dcp.EssenceInfo{Standard: s.standard(), FrameRate: fmt.Sprintf("%d 1", s.frameRate())}
	switch {
	case bytes.Contains(header, mxfLabelJPEG2000):
		info.Type = dcp.EssenceJPEG2000
	case bytes.Contains(header, mxfLabelMPEG):
		info.Type = dcp.EssenceMPEG2
	case bytes.Contains(header, mxfLabelAES3):
		info.Type = dcp.EssencePCM48K
	case bytes.Contains(header, mxfLabelTimedText):
		info.Type = dcp.EssenceTimedText
		info.Language = s.Language
	default:
		return dcp.EssenceInfo{}, nil
	}
	return info, nil
}

// inspectWAV walks the RIFF chunks to recover the sample rate and sample
// count, then converts to a frame count at the assumed frame rate.
func (s *Sniffer) inspectWAV(header []byte) (dcp.EssenceInfo, error) {
	var sampleRate, blockAlign uint32
	var dataSize uint32

	offset := 12
	for offset+8 <= len(header) {
		chunkID := string(header[offset : offset+4])
		chunkSize := binary.LittleEndian.Uint32(header[offset+4 : offset+8])
		body := offset + 8
		switch chunkID {
		case "fmt ":
			if body+16 > len(header) {
				return dcp.EssenceInfo{}, nil
			}
			sampleRate = binary.LittleEndian.Uint32(header[body+4 : body+8])
			blockAlign = uint32(binary.LittleEndian.Uint16(header[body+12 : body+14]))
		case "data":
			dataSize = chunkSize
		}
		if chunkID == "data" {
			break
		}
		offset = body + int(chunkSize)
		if chunkSize%2 == 1 {
			offset++
		}
	}

	var essenceType dcp.EssenceType
	switch sampleRate {
	case 48000:
		essenceType = dcp.EssencePCM48K
	case 96000:
		essenceType = dcp.EssencePCM96K
	default:
		return dcp.EssenceInfo{}, nil
	}

	duration := 0
	if blockAlign > 0 && sampleRate > 0 {
		samples := int64(dataSize) / int64(blockAlign)
		duration = int(samples * int64(s.frameRate()) / int64(sampleRate))
	}

	return dcp.EssenceInfo{
		Type:      essenceType,
		Standard:  s.standard(),
		Duration:  duration,
		FrameRate: fmt.Sprintf("%d 1", s.frameRate()),
	}, nil
}

// inspectTimedText distinguishes Interop DCSubtitle documents from SMPTE
// subtitle reels by their root elements.
func (s *Sniffer) inspectTimedText(header []byte) (dcp.EssenceInfo, error) {
	info := dcp.EssenceInfo{Type: dcp.EssenceTimedText, Language: s.Language}
	switch {
	case bytes.Contains(header, []byte("DCSubtitle")):
		info.Standard = dcp.StandardInterop
	case bytes.Contains(header, []byte("SubtitleReel")):
		info.Standard = dcp.StandardSMPTE
	default:
		return dcp.EssenceInfo{}, nil
	}
	return info, nil
}

func looksLikeXML(header []byte) bool {
	trimmed := bytes.TrimLeft(header, " \t\r\n\xef\xbb\xbf")
	return bytes.HasPrefix(trimmed, []byte("<?xml")) || bytes.HasPrefix(trimmed, []byte("<"))
}
