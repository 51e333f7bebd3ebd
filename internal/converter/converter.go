// Package converter coordinates the conversion pipeline: raw rows are
// normalized, built into a document graph, and serialized to ReqIF XML.
package converter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/starford/gebo/internal/builder"
	"github.com/starford/gebo/internal/model"
	"github.com/starford/gebo/internal/reqif"
	"github.com/starford/gebo/internal/rows"
)

// Defaults used when no option overrides them.
const (
	DefaultTitle  = "System Requirements Specification"
	DefaultToolID = "gebo"
)

// Converter runs conversions. It holds no per-conversion state, so one
// Converter may serve concurrent conversions; each call builds its own
// document.
type Converter struct {
	title        string
	toolID       string
	sourceToolID string
	creationTime time.Time
	logger       *slog.Logger
}

// Option is a functional option for configuring a Converter.
type Option func(*Converter)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(c *Converter) { c.title = title }
}

// WithToolID sets the REQ-IF-TOOL-ID header value.
func WithToolID(id string) Option {
	return func(c *Converter) { c.toolID = id }
}

// WithSourceToolID sets the SOURCE-TOOL-ID header value. Defaults to the
// tool id.
func WithSourceToolID(id string) Option {
	return func(c *Converter) { c.sourceToolID = id }
}

// WithCreationTime pins the header timestamp. Conversions with a pinned
// timestamp are byte-for-byte reproducible; without it each run stamps the
// current time.
func WithCreationTime(t time.Time) Option {
	return func(c *Converter) { c.creationTime = t }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) { c.logger = l }
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		title:  DefaultTitle,
		toolID: DefaultToolID,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sourceToolID == "" {
		c.sourceToolID = c.toolID
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Result is the outcome of one conversion.
type Result struct {
	XML          []byte
	Requirements int
	Relations    int
}

// Convert runs the full pipeline. On row-level defects it returns the
// aggregate apperr.List; no output is produced for invalid input.
func (c *Converter) Convert(reqRows, relRows []rows.Row) (*Result, error) {
	doc, err := c.build(reqRows, relRows)
	if err != nil {
		return nil, err
	}

	ts := c.creationTime
	if ts.IsZero() {
		ts = time.Now()
	}
	out, err := reqif.Marshal(doc, reqif.Options{
		ToolID:       c.toolID,
		SourceToolID: c.sourceToolID,
		CreationTime: ts,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	c.logger.Debug("conversion complete",
		slog.Int("requirements", len(doc.Requirements)),
		slog.Int("relations", len(doc.Relations)),
		slog.Int("bytes", len(out)))

	return &Result{
		XML:          out,
		Requirements: len(doc.Requirements),
		Relations:    len(doc.Relations),
	}, nil
}

// Validate runs normalization and document building without serializing.
// It returns nil for valid input or the complete defect list.
func (c *Converter) Validate(reqRows, relRows []rows.Row) error {
	_, err := c.build(reqRows, relRows)
	return err
}

func (c *Converter) build(reqRows, relRows []rows.Row) (*model.Document, error) {
	return builder.Build(c.title, reqRows, relRows)
}
