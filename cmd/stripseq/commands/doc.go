// Package commands implements the stripseq command-line interface: ordering
// uploaded images by semantic distance of their extracted text, inspecting
// OCR output, and managing the word-vector lexicon.
package commands
