// Package strip wires the full reconstruction pipeline: uploaded images are
// normalized and run through an extraction engine in submission order, the
// resulting texts become segments, and the sequencing engine chains them
// into their most plausible reading order.
package strip
