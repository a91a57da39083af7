package lexicon

import "database/sql"

const wordsSchema = `
CREATE TABLE IF NOT EXISTS words (
    word      TEXT PRIMARY KEY,
    embedding BLOB NOT NULL
);
`

// EnsureSchema creates the words table in the provided database if it does
// not already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(wordsSchema)
	return err
}
