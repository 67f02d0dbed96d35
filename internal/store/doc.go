// Package store provides the file-backed key-value storage used by clikv.
//
// A Storage handle owns one flat string-to-string mapping for the lifetime of
// a single CLI invocation. Open loads the mapping from a JSON document on disk
// (creating the folder and an empty file when missing), the caller applies at
// most a handful of in-memory mutations, and Close writes the mapping back.
//
// # On-disk format
//
// The backing file holds a single JSON object, for example
//
//	{"mykey":"myvalue","other":"data"}
//
// A zero-byte file is a valid empty store and is treated like {}.
//
// # Persistence
//
// Save writes via a temp file in the same directory and renames it over the
// backing file, so readers see either the old or the new document. Before
// writing, Save compares a blake2b digest of the current file against the
// bytes originally loaded and refuses to overwrite a file another invocation
// changed in the meantime (ErrConflict), unless the handle was opened with
// WithForce.
//
// Handles are not safe for concurrent use.
package store
