package strip

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stripseq/stripseq/extract"
	"github.com/stripseq/stripseq/oracle"
	"github.com/stripseq/stripseq/order"
	"github.com/stripseq/stripseq/segment"
)

// Upload is one submitted image, in submission order.
type Upload struct {
	// Name is the display name of the file.
	Name string
	// Data is the encoded image payload in any supported format.
	Data []byte
}

// Panel pairs a segment with the normalized image it came from.
type Panel struct {
	Segment *segment.Segment
	// Image is the PNG-normalized payload.
	Image []byte
}

// Strip is the reconstructed sequence for one batch of uploads.
type Strip struct {
	// RunID uniquely identifies this sequencing run.
	RunID string
	// Panels holds every upload exactly once, in the computed reading
	// order; the first panel is always the first upload.
	Panels []Panel
}

// Pipeline reconstructs reading order for batches of uploads. The zero value
// is not usable; both Engine and Oracle must be set.
type Pipeline struct {
	Engine    extract.Engine
	Oracle    oracle.Oracle
	Languages []string
	DPI       int
}

// Extract normalizes the uploads and runs them through the extraction
// engine, returning one panel per upload in submission order. Failures are
// wrapped with the offending upload name.
func (p *Pipeline) Extract(ctx context.Context, uploads []Upload) ([]Panel, error) {
	if len(uploads) == 0 {
		return nil, order.ErrEmptyInput
	}

	var opts []extract.InputOption
	if len(p.Languages) > 0 {
		opts = append(opts, extract.WithLanguages(p.Languages...))
	}
	if p.DPI > 0 {
		opts = append(opts, extract.WithDPI(p.DPI))
	}

	inputs := make([]extract.Input, len(uploads))
	images := make([][]byte, len(uploads))
	for i, up := range uploads {
		data, _, err := extract.Normalize(up.Data)
		if err != nil {
			return nil, fmt.Errorf("strip: upload %q: %w", up.Name, err)
		}
		images[i] = data
		in := extract.Input{
			ID:     fmt.Sprintf("%d:%s", i, up.Name),
			Image:  data,
			Format: extract.ImageFormatPNG,
		}
		for _, opt := range opts {
			opt(&in)
		}
		inputs[i] = in
	}

	results, err := extract.ExtractAll(ctx, p.Engine, inputs)
	if err != nil {
		return nil, fmt.Errorf("strip: %w", err)
	}
	if len(results) != len(uploads) {
		return nil, fmt.Errorf("strip: engine returned %d results for %d uploads", len(results), len(uploads))
	}

	panels := make([]Panel, len(uploads))
	for i, res := range results {
		panels[i] = Panel{
			Segment: segment.New(i, uploads[i].Name, res.Text),
			Image:   images[i],
		}
	}
	return panels, nil
}

// Order chains the extracted panels into reading order. Sequencing failures
// surface the order package's error kinds unmodified so callers can fall
// back to submission order via errors.Is.
func (p *Pipeline) Order(panels []Panel) (*Strip, error) {
	segments := make([]*segment.Segment, len(panels))
	imageByID := make(map[string][]byte, len(panels))
	for i, panel := range panels {
		segments[i] = panel.Segment
		imageByID[panel.Segment.ID()] = panel.Image
	}

	ordered, err := order.Chain(segments, p.Oracle)
	if err != nil {
		return nil, err
	}

	out := &Strip{RunID: uuid.NewString()}
	for _, s := range ordered {
		out.Panels = append(out.Panels, Panel{Segment: s, Image: imageByID[s.ID()]})
	}
	return out, nil
}

// Unordered wraps already-extracted panels as a Strip in their current
// (submission) order, with a fresh RunID. It is the fallback a caller
// renders when Order reports an unorderable batch.
func Unordered(panels []Panel) *Strip {
	return &Strip{RunID: uuid.NewString(), Panels: panels}
}

// Run is Extract followed by Order.
func (p *Pipeline) Run(ctx context.Context, uploads []Upload) (*Strip, error) {
	panels, err := p.Extract(ctx, uploads)
	if err != nil {
		return nil, err
	}
	return p.Order(panels)
}
