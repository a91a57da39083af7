// Package lexicon stores pretrained word embeddings and resolves individual
// words to their vectors. It includes an in-memory implementation for tests
// and small vocabularies, a SQLite-backed store for real models, a BLOB
// codec for embeddings, and a loader for the word2vec/GloVe text format.
package lexicon
