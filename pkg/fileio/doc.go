// Package fileio defines the file input/output contract used by the file
// backed log facilities.
//
// The core logging code depends only on the Store interface. OSStore is the
// implementation for hosts with a regular file system, MemoryStore keeps
// everything in memory, and FolderStore decorates any Store so that the log
// folder is recreated (or reported as invalid) before each operation.
//
// # Positions
//
// Store.Write accepts a relative position. Non-negative values count from the
// start of the file, negative values count backwards from end-of-file, and the
// result is clamped to [0, size]. See RelativeToSize.
//
// # Handles
//
// File handles are never held across calls. Every operation opens, positions,
// writes and closes on its own, so rotating to a new file never leaks or locks
// the previous one.
//
// # Concurrency
//
// Implementations serialize physical writes per path so that concurrent
// appends never interleave their bytes.
package fileio
