// Package tesseract provides a local Tesseract-backed extraction engine via
// the gosseract client. Importing the package installs it as the module's
// default engine.
package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/stripseq/stripseq/extract"
)

func init() {
	extract.SetDefaultEngine(NewEngine())
}

// Engine implements extract.Engine and extract.BatchEngine using gosseract.
type Engine struct {
	clientFactory func() *gosseract.Client
}

// NewEngine constructs a Tesseract-backed extraction engine.
func NewEngine() *Engine {
	return &Engine{clientFactory: gosseract.NewClient}
}

// Name implements extract.Engine.
func (e *Engine) Name() string { return "tesseract" }

// Extract performs recognition on a single image input.
func (e *Engine) Extract(ctx context.Context, in extract.Input) (extract.Result, error) {
	c := e.clientFactory()
	defer c.Close()
	return e.extractWithClient(ctx, c, in)
}

// ExtractBatch processes multiple inputs sequentially, one client per input
// so a failed recognition does not poison subsequent ones.
func (e *Engine) ExtractBatch(ctx context.Context, inputs []extract.Input) ([]extract.Result, error) {
	results := make([]extract.Result, 0, len(inputs))
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res, err := e.Extract(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", in.ID, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (e *Engine) extractWithClient(_ context.Context, c *gosseract.Client, in extract.Input) (extract.Result, error) {
	if err := c.SetImageFromBytes(in.Image); err != nil {
		return extract.Result{}, fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return extract.Result{}, fmt.Errorf("set languages: %w", err)
		}
	}
	if in.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(in.DPI)); err != nil {
			return extract.Result{}, fmt.Errorf("set dpi: %w", err)
		}
	}
	for k, v := range in.Variables {
		if err := c.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return extract.Result{}, fmt.Errorf("set variable %s: %w", k, err)
		}
	}
	text, err := c.Text()
	if err != nil {
		return extract.Result{}, fmt.Errorf("recognize text: %w", err)
	}
	return extract.Result{
		InputID: in.ID,
		Text:    strings.TrimSpace(text),
	}, nil
}
