package lexicon

// Lexicon resolves a word to its embedding vector. The boolean result
// reports whether the word is in the vocabulary; lookups for unknown words
// are not errors. Implementations must be safe for concurrent use and
// deterministic: the same word always resolves to the same vector.
type Lexicon interface {
	Vector(word string) ([]float32, bool, error)

	// Dim reports the dimension shared by all vectors in the vocabulary,
	// or 0 when the vocabulary is empty.
	Dim() int
}

// Match is one row of a nearest-word query.
type Match struct {
	Word       string
	Similarity float64
}
