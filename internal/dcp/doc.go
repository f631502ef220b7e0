// Package dcp assembles and validates the manifest tree of a digital cinema
// package: packing lists own content playlists, playlists own reels, and each
// reel bundles at most one picture, sound, and subtitle asset.
//
// The package enforces the structural rules a package must satisfy before it
// can be serialized and signed: every reel carries a picture track, all
// tracks in a package agree on the Interop/SMPTE standard, and track
// durations within a reel reconcile to the shortest asset.
//
// All build state flows through an explicit Context; there is no ambient
// global. Collaborators (essence inspector, identifier and timestamp
// generators, progress callbacks) are injected through Context fields so
// tests can substitute deterministic fakes.
package dcp
