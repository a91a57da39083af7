package lexicon

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const loadBatchSize = 1000

// Load imports pretrained vectors in the word2vec/GloVe text format into the
// words table: one `word v1 v2 ... vN` record per line, optionally preceded
// by a `count dim` header. Records are applied in batched transactions and
// existing words are overwritten. It returns the number of words imported.
func Load(ctx context.Context, db *sql.DB, r io.Reader) (int, error) {
	if err := EnsureSchema(db); err != nil {
		return 0, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		imported  int
		dim       int
		lineNo    int
		sawRecord bool
		batch     [][2]any
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO words(word, embedding) VALUES(?, ?)
ON CONFLICT(word) DO UPDATE SET embedding = excluded.embedding`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, rec := range batch {
			if _, err := stmt.ExecContext(ctx, rec[0], rec[1]); err != nil {
				return err
			}
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		// The optional word2vec header carries vocabulary size and dimension.
		// It precedes the first record but blank lines may precede it.
		if !sawRecord && len(fields) == 2 {
			if _, err := strconv.Atoi(fields[0]); err == nil {
				if d, err := strconv.Atoi(fields[1]); err == nil {
					dim = d
					sawRecord = true
					continue
				}
			}
		}
		sawRecord = true
		if len(fields) < 2 {
			return imported, fmt.Errorf("lexicon: line %d: no vector components", lineNo)
		}

		word := fields[0]
		vec := make([]float32, len(fields)-1)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return imported, fmt.Errorf("lexicon: line %d: component %d: %w", lineNo, i, err)
			}
			vec[i] = float32(v)
		}
		if dim == 0 {
			dim = len(vec)
		}
		if len(vec) != dim {
			return imported, fmt.Errorf("lexicon: line %d: dim %d, want %d", lineNo, len(vec), dim)
		}

		batch = append(batch, [2]any{word, EncodeVector(vec)})
		imported++
		if len(batch) >= loadBatchSize {
			if err := flush(); err != nil {
				return imported, fmt.Errorf("lexicon: import: %w", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return imported, fmt.Errorf("lexicon: read vectors: %w", err)
	}
	if err := flush(); err != nil {
		return imported, fmt.Errorf("lexicon: import: %w", err)
	}
	return imported, nil
}
