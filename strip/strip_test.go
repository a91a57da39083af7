package strip

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/stripseq/stripseq/extract"
	"github.com/stripseq/stripseq/oracle"
	"github.com/stripseq/stripseq/order"
)

// textByName maps extracted text to uploads by display name.
type textByName map[string]string

func (f textByName) Name() string { return "scripted" }

func (f textByName) Extract(ctx context.Context, in extract.Input) (extract.Result, error) {
	name := in.ID[strings.Index(in.ID, ":")+1:]
	return extract.Result{InputID: in.ID, Text: f[name]}, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return buf.Bytes()
}

// firstWordOracle measures distance between the leading words' lengths.
func firstWordOracle() oracle.Oracle {
	return oracle.Func(func(a, b []string) (float64, error) {
		d := len(a[0]) - len(b[0])
		if d < 0 {
			d = -d
		}
		return float64(d), nil
	})
}

func TestPipelineRunOrdersUploads(t *testing.T) {
	data := pngBytes(t)
	uploads := []Upload{
		{Name: "a.png", Data: data}, // "xx" anchor
		{Name: "b.png", Data: data}, // "xxxxxx" farthest
		{Name: "c.png", Data: data}, // "xxx" nearest to anchor
	}
	engine := textByName{"a.png": "xx", "b.png": "xxxxxx", "c.png": "xxx"}

	p := &Pipeline{Engine: engine, Oracle: firstWordOracle()}
	got, err := p.Run(context.Background(), uploads)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got.RunID == "" {
		t.Fatal("Run produced an empty RunID")
	}
	if len(got.Panels) != 3 {
		t.Fatalf("Run produced %d panels, want 3", len(got.Panels))
	}
	names := make([]string, len(got.Panels))
	for i, p := range got.Panels {
		names[i] = p.Segment.Name()
		if len(p.Image) == 0 {
			t.Fatalf("panel %d lost its image", i)
		}
	}
	want := "a.png,c.png,b.png"
	if g := strings.Join(names, ","); g != want {
		t.Fatalf("panel order = %s, want %s", g, want)
	}
}

func TestPipelineExtractKeepsUploadOrder(t *testing.T) {
	// Extract alone preserves submission order, which is what a caller
	// renders when sequencing reports an unorderable batch.
	data := pngBytes(t)
	uploads := []Upload{
		{Name: "a.png", Data: data},
		{Name: "b.png", Data: data},
	}
	engine := textByName{"a.png": "alpha", "b.png": "beta"}
	p := &Pipeline{Engine: engine, Oracle: firstWordOracle()}

	panels, err := p.Extract(context.Background(), uploads)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(panels) != 2 || panels[0].Segment.Name() != "a.png" || panels[1].Segment.Name() != "b.png" {
		t.Fatalf("Extract panels = %v", panels)
	}
	if panels[0].Segment.Text() != "alpha" {
		t.Fatalf("panel text = %q, want alpha", panels[0].Segment.Text())
	}
}

func TestUnordered(t *testing.T) {
	data := pngBytes(t)
	uploads := []Upload{
		{Name: "a.png", Data: data},
		{Name: "b.png", Data: data},
	}
	engine := textByName{"a.png": "alpha", "b.png": "beta"}
	p := &Pipeline{Engine: engine, Oracle: firstWordOracle()}

	panels, err := p.Extract(context.Background(), uploads)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	got := Unordered(panels)
	if got.RunID == "" {
		t.Fatal("Unordered produced an empty RunID")
	}
	if len(got.Panels) != 2 || got.Panels[0].Segment.Name() != "a.png" || got.Panels[1].Segment.Name() != "b.png" {
		t.Fatalf("Unordered changed the submission order: %v", got.Panels)
	}
}

func TestPipelineRunEmpty(t *testing.T) {
	p := &Pipeline{Engine: textByName{}, Oracle: firstWordOracle()}
	_, err := p.Run(context.Background(), nil)
	if !errors.Is(err, order.ErrEmptyInput) {
		t.Fatalf("Run(nil) error = %v, want order.ErrEmptyInput", err)
	}
}

func TestPipelineRunBadImage(t *testing.T) {
	p := &Pipeline{Engine: textByName{}, Oracle: firstWordOracle()}
	_, err := p.Run(context.Background(), []Upload{{Name: "x.png", Data: []byte("nope")}})
	if err == nil || !strings.Contains(err.Error(), "x.png") {
		t.Fatalf("Run error = %v, want mention of the bad upload", err)
	}
}

func TestPipelineRunSequencingFailurePassesThrough(t *testing.T) {
	data := pngBytes(t)
	uploads := []Upload{
		{Name: "a.png", Data: data},
		{Name: "b.png", Data: data},
	}
	engine := textByName{"a.png": "zz", "b.png": "yy"}
	incomparable := oracle.Func(func(a, b []string) (float64, error) {
		return math.Inf(1), nil
	})
	p := &Pipeline{Engine: engine, Oracle: incomparable}
	_, err := p.Run(context.Background(), uploads)
	if !errors.Is(err, order.ErrNoSelectableCandidate) {
		t.Fatalf("Run error = %v, want order.ErrNoSelectableCandidate", err)
	}
}
