// Package digest computes the base64 SHA-1 essence digests recorded in
// packing lists, reporting progress through the package callbacks.
//
// A SQLite-backed cache keyed by path, size, and modification time lets
// repeated builds skip rehashing unchanged essence files; hashing a feature's
// picture track is by far the slowest step of assembly.
package digest
