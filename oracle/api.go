package oracle

// Oracle computes a semantic distance between two token sequences.
//
// Implementations must be pure: deterministic for a fixed pair of inputs,
// with no hidden state or side effects, so repeated calls within one
// sequencing run agree and tie-breaking stays meaningful. Distances are
// non-negative but need not be symmetric nor satisfy the triangle
// inequality. A result of +Inf means the pair is incomparable, typically
// because one side has no terms known to the underlying model.
type Oracle interface {
	Distance(a, b []string) (float64, error)
}

// Func adapts a plain function to the Oracle interface. Synthetic oracles in
// tests are the main users.
type Func func(a, b []string) (float64, error)

// Distance implements Oracle.
func (f Func) Distance(a, b []string) (float64, error) { return f(a, b) }
