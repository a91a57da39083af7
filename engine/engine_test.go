package engine

import (
	"testing"

	"github.com/stripseq/stripseq/lexicon"
)

// TestOpenInMemory verifies that an in-memory database opened through the
// modernc.org/sqlite driver accepts the lexicon schema and a word row.
func TestOpenInMemory(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	if err := lexicon.EnsureSchema(db); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	blob := lexicon.EncodeVector([]float32{1, 0, 0})
	if _, err := db.Exec(`INSERT INTO words(word, embedding) VALUES (?, ?)`, "comic", blob); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		t.Fatalf("COUNT failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("words count = %d, want 1", n)
	}
}
