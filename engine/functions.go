package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/viant/vec/search"
	sqlite "modernc.org/sqlite"

	"github.com/stripseq/stripseq/lexicon"
)

// RegisterLexiconFunctions registers lex_cosine and lex_l2 with the driver
// so they are available on connections opened after this call. Both take two
// embedding BLOBs in the lexicon encoding; lex_cosine returns the cosine
// similarity and lex_l2 the Euclidean distance.
// Note: existing open connections will not see new functions.
func RegisterLexiconFunctions(_ *sql.DB) error {
	// Idempotent registration; the driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("lex_cosine", 2, lexCosineImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("lex_l2", 2, lexL2Impl)
	return nil
}

func asVector(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return lexicon.DecodeVector(v)
	default:
		return nil, fmt.Errorf("lex: unsupported argument type %T for embedding; want BLOB", arg)
	}
}

func lexCosineImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := vectorPair("lex_cosine", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	va := search.Float32s(a)
	ma := va.Magnitude()
	mb := search.Float32s(b).Magnitude()
	if ma == 0 || mb == 0 {
		return nil, fmt.Errorf("lex_cosine: zero-magnitude vector")
	}
	return 1 - float64(va.CosineDistanceWithMagnitudesNeon(b, ma, mb)), nil
}

func lexL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := vectorPair("lex_l2", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	return float64(search.Float32s(a).EuclideanDistance(b)), nil
}

func vectorPair(fn string, args []driver.Value) ([]float32, []float32, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%s: expected 2 arguments, got %d", fn, len(args))
	}
	a, err := asVector(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := asVector(args[1])
	if err != nil {
		return nil, nil, err
	}
	if a != nil && b != nil && len(a) != len(b) {
		return nil, nil, fmt.Errorf("%s: dim mismatch %d vs %d", fn, len(a), len(b))
	}
	return a, b, nil
}
