package segment

import (
	"fmt"
	"strings"
	"sync"
)

// Segment is one discrete unit of extracted text to be ordered. The identity
// carries the original submission index and display name so the ordered
// output can be mapped back to the uploads that produced it.
type Segment struct {
	id   string
	name string
	text string

	tokensOnce sync.Once
	tokens     []string
}

// New constructs a Segment for the upload at the given submission index. The
// text may be empty; tokenization is deferred until Tokens is first called.
func New(index int, name, text string) *Segment {
	return &Segment{
		id:   fmt.Sprintf("%d:%s", index, name),
		name: name,
		text: text,
	}
}

// ID returns the segment identity, unique within one sequencing run.
func (s *Segment) ID() string { return s.id }

// Name returns the display name of the originating upload.
func (s *Segment) Name() string { return s.name }

// Text returns the raw extracted text.
func (s *Segment) Text() string { return s.text }

// Tokens returns the whitespace-tokenized words of the text. Empty text
// yields an empty token sequence. The result is computed once and must not
// be mutated by callers.
func (s *Segment) Tokens() []string {
	s.tokensOnce.Do(func() {
		s.tokens = strings.Fields(s.text)
	})
	return s.tokens
}

// Lines splits the text into its display lines, preserving the line
// structure produced by the extractor.
func (s *Segment) Lines() []string {
	if s.text == "" {
		return nil
	}
	return strings.Split(s.text, "\n")
}
