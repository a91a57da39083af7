package extract

import (
	"context"
	"fmt"
)

// ImageFormat identifies the content type of an extraction input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
	ImageFormatGIF  ImageFormat = "image/gif"
	ImageFormatBMP  ImageFormat = "image/bmp"
	ImageFormatTIFF ImageFormat = "image/tiff"
	ImageFormatWebP ImageFormat = "image/webp"
)

// Input encapsulates a single image submitted for text extraction.
type Input struct {
	// ID is an optional caller-provided identifier that is echoed back in the
	// corresponding Result.
	ID string
	// Image is the encoded image payload in the format specified by Format.
	Image []byte
	// Format declares the image content type (e.g., image/png).
	Format ImageFormat
	// Languages is a list of language hints (e.g., "eng") that engines can
	// use to select trained data.
	Languages []string
	// DPI carries the effective dots-per-inch for the image. Engines such as
	// Tesseract use this for scaling heuristics; zero means unknown.
	DPI int
	// Variables allows callers to pass through engine-specific knobs (e.g.,
	// "psm" for Tesseract) without hard-coding them into the API surface.
	Variables map[string]string
}

// Result captures the extraction output for a single input image.
type Result struct {
	// InputID mirrors the Input.ID that produced this result.
	InputID string
	// Text is the linearized recognized text with line structure preserved
	// and surrounding whitespace trimmed. It may be empty.
	Text string
}

// Engine is the simplest extraction provider contract: one image in, one
// result out.
type Engine interface {
	Name() string
	Extract(ctx context.Context, input Input) (Result, error)
}

// BatchEngine handles multiple images in a single call, enabling providers
// that amortize setup costs or remote round-trips.
type BatchEngine interface {
	Engine
	ExtractBatch(ctx context.Context, inputs []Input) ([]Result, error)
}

// InputOption mutates an extraction input before submission.
type InputOption func(*Input)

// WithLanguages sets language hints on the input.
func WithLanguages(langs ...string) InputOption {
	return func(in *Input) { in.Languages = append([]string(nil), langs...) }
}

// WithDPI overrides the DPI value on the input.
func WithDPI(dpi int) InputOption {
	return func(in *Input) { in.DPI = dpi }
}

// WithVariables sets engine-specific variables for the input.
func WithVariables(vars map[string]string) InputOption {
	return func(in *Input) {
		if len(vars) == 0 {
			in.Variables = nil
			return
		}
		in.Variables = make(map[string]string, len(vars))
		for k, v := range vars {
			in.Variables[k] = v
		}
	}
}

var defaultEngine Engine = &noopEngine{}

// DefaultEngine returns the module's default extraction engine (Tesseract,
// once the tesseract subpackage is linked in).
func DefaultEngine() Engine {
	return defaultEngine
}

// SetDefaultEngine sets the module's default extraction engine.
func SetDefaultEngine(engine Engine) {
	defaultEngine = engine
}

// ExtractAll runs the given inputs through the engine. If the engine
// supports batch operation it is used; otherwise inputs are processed
// sequentially in order.
func ExtractAll(ctx context.Context, engine Engine, inputs []Input) ([]Result, error) {
	if b, ok := engine.(BatchEngine); ok {
		return b.ExtractBatch(ctx, inputs)
	}
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res, err := engine.Extract(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", in.ID, err)
		}
		results = append(results, res)
	}
	return results, nil
}

type noopEngine struct{}

func (n noopEngine) Name() string { return "noop" }

func (n noopEngine) Extract(ctx context.Context, input Input) (Result, error) {
	return Result{InputID: input.ID}, nil
}
