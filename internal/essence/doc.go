// Package essence provides a best-effort implementation of the essence
// inspector consumed by package assembly.
//
// The sniffer identifies essence files by container signatures: MXF partition
// packs (with SMPTE generic-container labels picking the track kind), raw
// JPEG 2000 codestreams, MPEG-2 elementary streams, RIFF/WAVE audio, and
// timed-text XML. It reads headers only; it never decodes bitstreams. Where a
// container does not expose a frame count (MXF without a full metadata
// parse), the reported duration is 0 and the caller supplies one via the
// duration override.
//
// A real deployment can swap in a full MXF metadata reader behind the same
// dcp.Inspector interface.
package essence
