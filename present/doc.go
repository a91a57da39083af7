// Package present renders an ordered strip to a standalone HTML page: one
// figure per panel with the image inlined as a data URI, a caption carrying
// the upload name, and a text card holding one paragraph per extracted line.
package present
