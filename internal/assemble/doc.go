// Package assemble drives a single-shot package build: it groups essence
// files into reels, ingests and attaches each asset, validates every reel,
// and aggregates the results into a playlist, packing list, and finally the
// build context.
//
// The output directory is guarded by a file lock so two builds cannot stage
// into the same target concurrently. The pipeline is synchronous; each step
// runs to completion before the next begins.
package assemble
