// Package oracle defines the semantic-distance contract the sequencing
// engine depends on. An Oracle maps a pair of token sequences to a
// non-negative distance; implementations in this module include a relaxed
// word mover's distance backed by a word-vector lexicon.
package oracle
