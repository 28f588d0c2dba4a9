package tably

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidConfig     = errors.New("invalid config")
)

// Format represents an output format.
type Format string

const (
	HTML Format = "html"
	Text Format = "text"
	XLSX Format = "xlsx"
)

var formats = []Format{HTML, Text, XLSX}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Style holds the presentational parameters applied uniformly to a rendered
// table. It never affects data semantics. Color values are CSS colors;
// CellMinWidth is a CSS length such as "120px".
type Style struct {
	HeaderBackground string `yaml:"header_background" json:"header_background"`
	HeaderText       string `yaml:"header_text" json:"header_text"`
	CellMinWidth     string `yaml:"cell_min_width" json:"cell_min_width"`
	Outline          bool   `yaml:"outline" json:"outline"`
	Background       string `yaml:"background" json:"background"`
	Text             string `yaml:"text" json:"text"`
	Border           string `yaml:"border" json:"border"`
	Class            string `yaml:"class" json:"class"`
}

// Grid is the fully formatted table: ordered headers plus display-string
// cells, ready for any output format.
type Grid struct {
	Headers []string
	Rows    [][]string
}

// BuildGrid formats rows into display strings under headers. Fields missing
// from a row render as empty cells.
func BuildGrid(rows []Row, headers []string, cfg FormatConfig) Grid {
	g := Grid{Headers: headers}
	g.Rows = make([][]string, len(rows))
	for i, r := range rows {
		cells := make([]string, len(headers))
		for j, h := range headers {
			if v, ok := r.Get(h); ok {
				cells[j] = FormatValue(v, cfg)
			}
		}
		g.Rows[i] = cells
	}
	return g
}

// Table renders one list-API payload as a table. Configuration is fixed per
// Table; each Render call re-derives everything from Data, so re-rendering
// after swapping Data is idempotent with respect to the mount point.
type Table struct {
	// Data is the decoded RawInput in any of the accepted envelope shapes.
	Data any
	// JSON, when set, takes precedence over Data and is normalized straight
	// from the wire bytes, preserving source field order.
	JSON []byte

	// IncludeHeaders selects and orders columns. Nil means all non-reserved
	// columns in first-seen order.
	IncludeHeaders []string
	// SortBy optionally orders rows before rendering.
	SortBy *SortSpec
	// Dates enables date-time display formatting for matching cell strings.
	Dates *DateFormat
	// Style is applied uniformly to the rendered output.
	Style Style
	// Logger is the diagnostic channel for recoverable render failures.
	// Nil means no diagnostics.
	Logger *zap.Logger

	doc       *Document
	container string
}

// New creates a Table that mounts into the container with the given id in
// doc. Configure the exported fields before calling Render.
func New(doc *Document, containerID string) *Table {
	return &Table{doc: doc, container: containerID}
}

// ContainerID returns the mount point id the table renders into.
func (t *Table) ContainerID() string { return t.container }

func (t *Table) logger() *zap.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return zap.NewNop()
}

func (t *Table) rows() []Row {
	if t.JSON != nil {
		return NormalizeJSON(t.JSON)
	}
	return Normalize(t.Data)
}

// Grid runs the normalize, derive, sort, and format stages and returns the
// resulting display grid.
func (t *Table) Grid() Grid {
	rows := t.rows()
	headers := DeriveHeaders(rows, t.IncludeHeaders)
	rows = SortRows(rows, t.SortBy)
	return BuildGrid(rows, headers, FormatConfig{Dates: t.Dates})
}

// Write renders the table to w in the given format.
func (t *Table) Write(w io.Writer, f Format) error {
	g := t.Grid()
	switch f {
	case HTML:
		return writeHTML(w, g, t.Style)
	case Text:
		return writeText(w, g)
	case XLSX:
		return writeXLSX(w, g, t.Style)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Render mounts the HTML rendering into the table's container, replacing any
// prior content. A missing container is reported to the Logger and leaves
// the document untouched; Render never panics and never returns an error to
// the caller.
func (t *Table) Render() {
	if t.doc == nil || !t.doc.Has(t.container) {
		t.logger().Error("container not found, skipping render",
			zap.String("container", t.container))
		return
	}
	var buf bytes.Buffer
	if err := t.Write(&buf, HTML); err != nil {
		t.logger().Error("render failed", zap.String("container", t.container), zap.Error(err))
		return
	}
	t.doc.setContent(t.container, buf.String())
}
