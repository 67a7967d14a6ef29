// Package filesystem provides filesystem implementations for exticons.
//
// This package contains implementations of the types.FS interface,
// the standard OS filesystem and an afero-backed one used by tests,
// plus WriteFileAtomic, the replace-or-fail write used for rendered icons.
package filesystem
