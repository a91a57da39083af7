// Package wmd implements a relaxed Word Mover's Distance oracle over a
// word-vector lexicon. Each side of a comparison is reduced to its known
// vocabulary terms with term-frequency weights; the distance is the larger
// of the two directed transport lower bounds, using Euclidean distance
// between word vectors as the ground metric. Full optimal-transport WMD is
// deliberately not computed.
package wmd
