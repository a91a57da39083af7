// Package extract defines the optical-character-recognition boundary for
// uploaded images. The interfaces are small and transport-agnostic so
// engines can be backed by native libraries or remote services without
// leaking provider-specific concerns into callers; the sequencing core only
// ever sees the extracted text.
package extract
