// Package segment defines the unit of ordering: one fragment of extracted
// text together with a stable identity pointing back at the originating
// upload. Segments are immutable once created and live only for the duration
// of a single sequencing run.
package segment
