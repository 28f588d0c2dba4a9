// Package tably renders loosely-structured list-style JSON, as returned by
// legacy REST list APIs in several historical response shapes, as an HTML
// table with configurable columns, cell formatting, sorting, and styling.
//
// # Pipeline
//
// A render is five stages composed per call, each re-derived from scratch:
//
//   - [Normalize] / [NormalizeJSON] — unwrap the envelope ({d: {results:
//     [...]}}, {results: [...]}, {d: [...]}, or a bare array) into a flat
//     [Row] sequence. Unrecognized input becomes an empty sequence, never an
//     error.
//   - [DeriveHeaders] — compute the ordered column set from the union of row
//     fields, or from an explicit inclusion list.
//   - [SortRows] — optional single-field, type-aware stable sort.
//   - [FormatValue] — turn any cell value (null, scalar, array, nested
//     object, ISO date-time string) into a display string.
//   - [Table.Render] — mount the markup into a [Document] container,
//     replacing prior content.
//
// The stages are exported individually; [Table] wires them together:
//
//	doc := tably.NewDocument("orders")
//	t := tably.New(doc, "orders")
//	t.JSON = payload
//	t.IncludeHeaders = []string{"Title", "Status"}
//	t.SortBy = &tably.SortSpec{Field: "Status", Order: "asc"}
//	t.Render()
//
// # Input tolerance
//
// Cell values are modeled as a closed sum type, [Value]: Null, Bool, Number,
// String, Sequence, or Mapping. Formatting is total over that domain, so
// heterogeneous and unexpected cell shapes render rather than fail.
// Malformed envelopes degrade to a "no data" placeholder. The only reported
// failure is a missing mount point, which goes to the table's zap logger and
// aborts that render call.
//
// # Other formats
//
// [Table.Write] renders the same grid to an io.Writer as [HTML], [Text] (an
// ASCII preview), or [XLSX] (a spreadsheet via excelize). [ParseFormat]
// converts a CLI flag string into a [Format].
//
// # Configuration
//
// All configuration is carried by value on the Table; nothing is global.
// [LoadConfig] reads a YAML file mapping columns, sort, date display, and
// style onto a Table for hosts that prefer file-driven setup.
package tably
