package wmd

import (
	"math"

	"github.com/viant/vec/search"

	"github.com/stripseq/stripseq/lexicon"
)

// Oracle computes relaxed Word Mover's Distance between token sequences. It
// is stateless apart from the lexicon and safe for concurrent use when the
// lexicon is.
type Oracle struct {
	lex lexicon.Lexicon
}

// New returns an Oracle backed by the given lexicon.
func New(lex lexicon.Lexicon) *Oracle {
	return &Oracle{lex: lex}
}

// term is one in-vocabulary word of a document with its frequency weight.
type term struct {
	vec    []float32
	weight float64
}

// Distance implements oracle.Oracle. Tokens absent from the lexicon are
// skipped; when either side retains no known tokens the pair is incomparable
// and the result is +Inf. Identical non-empty inputs yield 0.
func (o *Oracle) Distance(a, b []string) (float64, error) {
	ta, err := o.terms(a)
	if err != nil {
		return 0, err
	}
	tb, err := o.terms(b)
	if err != nil {
		return 0, err
	}
	if len(ta) == 0 || len(tb) == 0 {
		return math.Inf(1), nil
	}
	return math.Max(flow(ta, tb), flow(tb, ta)), nil
}

// terms folds a token sequence into its nBOW form: unique in-vocabulary
// words, in first-appearance order, weighted by normalized term frequency.
func (o *Oracle) terms(tokens []string) ([]term, error) {
	index := make(map[string]int, len(tokens))
	var out []term
	var total float64
	for _, tok := range tokens {
		if i, ok := index[tok]; ok {
			out[i].weight++
			total++
			continue
		}
		vec, ok, err := o.lex.Vector(tok)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		index[tok] = len(out)
		out = append(out, term{vec: vec, weight: 1})
		total++
	}
	for i := range out {
		out[i].weight /= total
	}
	return out, nil
}

// flow is the directed relaxation: each term of src ships its whole weight
// to the closest term of dst.
func flow(src, dst []term) float64 {
	var sum float64
	for _, s := range src {
		v := search.Float32s(s.vec)
		best := math.Inf(1)
		for _, d := range dst {
			if dist := float64(v.EuclideanDistance(d.vec)); dist < best {
				best = dist
			}
		}
		sum += s.weight * best
	}
	return sum
}
