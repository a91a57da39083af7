package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stripseq/stripseq/oracle"
	"github.com/stripseq/stripseq/segment"
)

func mkSegments(texts ...string) []*segment.Segment {
	out := make([]*segment.Segment, len(texts))
	for i, txt := range texts {
		out[i] = segment.New(i, fmt.Sprintf("panel-%d.png", i), txt)
	}
	return out
}

func ids(segs []*segment.Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.ID()
	}
	return out
}

// tableOracle resolves distances from a map keyed by "firstTokenA/firstTokenB".
func tableOracle(t *testing.T, table map[string]float64) oracle.Oracle {
	return oracle.Func(func(a, b []string) (float64, error) {
		key := a[0] + "/" + b[0]
		d, ok := table[key]
		if !ok {
			t.Fatalf("unexpected oracle pair %q", key)
		}
		return d, nil
	})
}

func TestChainEmptyInput(t *testing.T) {
	_, err := Chain(nil, oracle.Func(func(a, b []string) (float64, error) { return 0, nil }))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Chain(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestChainSingleton(t *testing.T) {
	calls := 0
	counting := oracle.Func(func(a, b []string) (float64, error) {
		calls++
		return 0, nil
	})
	segs := mkSegments("only one")
	got, err := Chain(segs, counting)
	if err != nil {
		t.Fatalf("Chain failed: %v", err)
	}
	if len(got) != 1 || got[0] != segs[0] {
		t.Fatalf("Chain singleton = %v, want the input segment", ids(got))
	}
	if calls != 0 {
		t.Fatalf("singleton made %d oracle calls, want 0", calls)
	}
}

func TestChainGreedyScenario(t *testing.T) {
	// A anchors; C is closer to A than B is; B is the only remainder after C.
	segs := mkSegments("a", "b", "c")
	o := tableOracle(t, map[string]float64{
		"a/b": 5,
		"a/c": 1,
		"c/b": 2,
	})
	got, err := Chain(segs, o)
	if err != nil {
		t.Fatalf("Chain failed: %v", err)
	}
	want := []string{segs[0].ID(), segs[2].ID(), segs[1].ID()}
	if g := strings.Join(ids(got), ","); g != strings.Join(want, ",") {
		t.Fatalf("Chain order = %s, want %s", g, strings.Join(want, ","))
	}
}

func TestChainAnchorAndPermutation(t *testing.T) {
	segs := mkSegments("w", "x", "y", "z", "q")
	o := oracle.Func(func(a, b []string) (float64, error) {
		// Arbitrary but deterministic distances.
		return float64(len(a[0]) + int(b[0][0]-'a')), nil
	})
	got, err := Chain(segs, o)
	if err != nil {
		t.Fatalf("Chain failed: %v", err)
	}
	if len(got) != len(segs) {
		t.Fatalf("Chain returned %d segments, want %d", len(got), len(segs))
	}
	if got[0].ID() != segs[0].ID() {
		t.Fatalf("anchor = %q, want %q", got[0].ID(), segs[0].ID())
	}
	seen := map[string]bool{}
	for _, s := range got {
		if seen[s.ID()] {
			t.Fatalf("segment %q duplicated in output", s.ID())
		}
		seen[s.ID()] = true
	}
	for _, s := range segs {
		if !seen[s.ID()] {
			t.Fatalf("segment %q dropped from output", s.ID())
		}
	}
}

func TestChainDeterminism(t *testing.T) {
	segs := mkSegments("alpha", "beta", "gamma", "delta")
	o := oracle.Func(func(a, b []string) (float64, error) {
		return float64(int(a[0][0]) * int(b[0][0]) % 17), nil
	})
	first, err := Chain(segs, o)
	if err != nil {
		t.Fatalf("first Chain failed: %v", err)
	}
	second, err := Chain(segs, o)
	if err != nil {
		t.Fatalf("second Chain failed: %v", err)
	}
	for i := range first {
		if first[i].ID() != second[i].ID() {
			t.Fatalf("run disagreement at %d: %q vs %q", i, first[i].ID(), second[i].ID())
		}
	}
}

func TestChainTieBreakFirstSeen(t *testing.T) {
	// A constant oracle makes every candidate tie; each step must keep the
	// first candidate in scan order, reproducing the input order.
	segs := mkSegments("one", "two", "three", "four")
	constant := oracle.Func(func(a, b []string) (float64, error) { return 3.5, nil })
	got, err := Chain(segs, constant)
	if err != nil {
		t.Fatalf("Chain failed: %v", err)
	}
	for i := range segs {
		if got[i].ID() != segs[i].ID() {
			t.Fatalf("tie-break order at %d = %q, want %q", i, got[i].ID(), segs[i].ID())
		}
	}
}

func TestChainNoSelectableCandidate(t *testing.T) {
	segs := mkSegments("a", "b", "c")
	incomparable := oracle.Func(func(a, b []string) (float64, error) {
		return math.Inf(1), nil
	})
	_, err := Chain(segs, incomparable)
	if !errors.Is(err, ErrNoSelectableCandidate) {
		t.Fatalf("Chain error = %v, want ErrNoSelectableCandidate", err)
	}
}

func TestChainNaNUnselectable(t *testing.T) {
	segs := mkSegments("a", "b")
	_, err := Chain(segs, oracle.Func(func(a, b []string) (float64, error) {
		return math.NaN(), nil
	}))
	if !errors.Is(err, ErrNoSelectableCandidate) {
		t.Fatalf("Chain error = %v, want ErrNoSelectableCandidate", err)
	}
}

func TestChainLargeFiniteSelectable(t *testing.T) {
	// A huge but finite distance is still a valid selection.
	segs := mkSegments("a", "b")
	got, err := Chain(segs, oracle.Func(func(a, b []string) (float64, error) {
		return 1e300, nil
	}))
	if err != nil {
		t.Fatalf("Chain failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Chain returned %d segments, want 2", len(got))
	}
}

func TestChainOracleFailurePropagates(t *testing.T) {
	segs := mkSegments("a", "b")
	boom := errors.New("model unavailable")
	_, err := Chain(segs, oracle.Func(func(a, b []string) (float64, error) {
		return 0, boom
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("Chain error = %v, want the oracle failure", err)
	}
}

func TestChainEmptyTextStillConsulted(t *testing.T) {
	// The engine does not special-case empty token sequences; the oracle
	// decides what they mean.
	segs := []*segment.Segment{
		segment.New(0, "a.png", "hello there"),
		segment.New(1, "b.png", ""),
		segment.New(2, "c.png", "hello again"),
	}
	var sawEmpty bool
	o := oracle.Func(func(a, b []string) (float64, error) {
		if len(b) == 0 {
			sawEmpty = true
			return 100, nil
		}
		return 1, nil
	})
	got, err := Chain(segs, o)
	if err != nil {
		t.Fatalf("Chain failed: %v", err)
	}
	if !sawEmpty {
		t.Fatal("oracle never saw the empty token sequence")
	}
	// The empty segment ends up last: every step prefers a finite distance.
	if got[len(got)-1].ID() != segs[1].ID() {
		t.Fatalf("empty segment placed at %v, want last", ids(got))
	}
}
