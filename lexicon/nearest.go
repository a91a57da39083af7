package lexicon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Nearest returns the k vocabulary words most similar to the given word by
// cosine similarity, excluding the word itself. It relies on the lex_cosine
// scalar function being registered on the connection (see the engine
// package). Ordering is performed by SQLite so the whole vocabulary never
// has to be resident in memory.
func Nearest(ctx context.Context, db *sql.DB, word string, k int) ([]Match, error) {
	if k <= 0 {
		return nil, nil
	}

	var blob []byte
	err := db.QueryRowContext(ctx, `SELECT embedding FROM words WHERE word = ?`, word).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lexicon: word %q not in vocabulary", word)
	}
	if err != nil {
		return nil, fmt.Errorf("lexicon: lookup %q: %w", word, err)
	}

	rows, err := db.QueryContext(ctx, `
SELECT word, lex_cosine(embedding, ?) AS sim
FROM words
WHERE word != ?
ORDER BY sim DESC
LIMIT ?`, blob, word, k)
	if err != nil {
		return nil, fmt.Errorf("lexicon: nearest %q: %w", word, err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.Word, &m.Similarity); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}
