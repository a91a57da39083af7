// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening lexicon databases and registering the
// scalar SQL functions used by nearest-word queries. It keeps a thin surface
// so other packages can share the same driver instance.
package engine
