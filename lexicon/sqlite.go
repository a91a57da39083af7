package lexicon

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// SQLite is a Lexicon backed by a words table in a SQLite database. Resolved
// vectors are cached in memory so the repeated lookups of a sequencing run
// hit the database once per distinct word.
type SQLite struct {
	db *sql.DB

	mu    sync.RWMutex
	cache map[string][]float32
	miss  map[string]bool
	dim   int
}

// NewSQLite creates a SQLite-backed lexicon over the given database,
// ensuring the words schema exists.
func NewSQLite(db *sql.DB) (*SQLite, error) {
	if db == nil {
		return nil, fmt.Errorf("lexicon: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLite{
		db:    db,
		cache: make(map[string][]float32),
		miss:  make(map[string]bool),
	}, nil
}

// Vector implements Lexicon.
func (s *SQLite) Vector(word string) ([]float32, bool, error) {
	s.mu.RLock()
	if vec, ok := s.cache[word]; ok {
		s.mu.RUnlock()
		return vec, true, nil
	}
	if s.miss[word] {
		s.mu.RUnlock()
		return nil, false, nil
	}
	s.mu.RUnlock()

	var blob []byte
	err := s.db.QueryRow(`SELECT embedding FROM words WHERE word = ?`, word).Scan(&blob)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.mu.Lock()
		s.miss[word] = true
		s.mu.Unlock()
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("lexicon: lookup %q: %w", word, err)
	}

	vec, err := DecodeVector(blob)
	if err != nil {
		return nil, false, fmt.Errorf("lexicon: word %q: %w", word, err)
	}
	s.mu.Lock()
	s.cache[word] = vec
	if s.dim == 0 {
		s.dim = len(vec)
	}
	s.mu.Unlock()
	return vec, true, nil
}

// Dim implements Lexicon. The dimension is derived from the stored vectors
// on first use; an empty vocabulary reports 0.
func (s *SQLite) Dim() int {
	s.mu.RLock()
	dim := s.dim
	s.mu.RUnlock()
	if dim > 0 {
		return dim
	}

	var blob []byte
	if err := s.db.QueryRow(`SELECT embedding FROM words LIMIT 1`).Scan(&blob); err != nil {
		return 0
	}
	dim = len(blob) / 4
	s.mu.Lock()
	if s.dim == 0 {
		s.dim = dim
	}
	s.mu.Unlock()
	return dim
}

// Count returns the vocabulary size.
func (s *SQLite) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("lexicon: count: %w", err)
	}
	return n, nil
}
