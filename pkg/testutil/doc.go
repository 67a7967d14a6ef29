// Package testutil provides helpers for exticons tests.
//
// Every helper works on a types.FS, so the same fixtures serve in-memory
// tests (filesystem.NewMemory) and end-to-end tests on the OS filesystem
// (filesystem.NewOS with t.TempDir).
package testutil
