package lexicon

import "fmt"

// Memory is a map-backed Lexicon for tests and small vocabularies. It is
// immutable after construction and therefore safe for concurrent lookups.
type Memory struct {
	dim  int
	vecs map[string][]float32
}

// NewMemory builds an in-memory lexicon from the given word→vector map. All
// vectors must share one dimension.
func NewMemory(vectors map[string][]float32) (*Memory, error) {
	m := &Memory{vecs: make(map[string][]float32, len(vectors))}
	for word, vec := range vectors {
		if len(vec) == 0 {
			return nil, fmt.Errorf("lexicon: empty vector for word %q", word)
		}
		if m.dim == 0 {
			m.dim = len(vec)
		}
		if len(vec) != m.dim {
			return nil, fmt.Errorf("lexicon: vector for %q has dim %d, want %d", word, len(vec), m.dim)
		}
		m.vecs[word] = append([]float32(nil), vec...)
	}
	return m, nil
}

// Vector implements Lexicon.
func (m *Memory) Vector(word string) ([]float32, bool, error) {
	vec, ok := m.vecs[word]
	return vec, ok, nil
}

// Dim implements Lexicon.
func (m *Memory) Dim() int { return m.dim }
