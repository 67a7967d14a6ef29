// Package types defines the core data model shared by exticons packages:
// the normalized ExtensionRecord, the TemplateDescriptor discovered on disk,
// the per-label RenderUnit, the aggregate Summary of a generation run, and
// the FS interface every storage-touching package works against.
package types
