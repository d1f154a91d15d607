// Package strtable renders records as aligned, bordered text tables.
//
// A [Record] is an ordered list of named fields. [Render] lays the records
// out one row each, under a header row built from the field names:
//
//	out, err := strtable.Render([]strtable.Record{
//		{{Name: "name", Value: "alice"}, {Name: "age", Value: 30}},
//		{{Name: "name", Value: "bob"}, {Name: "age", Value: 7}},
//	}, nil)
//
//	| name  | age |
//	----------------
//	| alice |  30 |
//	| bob   |   7 |
//
// Use [Write] to send the same lines to an [io.Writer].
//
// # Records
//
// Records can be written as literals or built from Go values:
//
//   - [FromStruct] and [FromStructs] — exported struct fields in declaration
//     order, renamed with a `table:"name"` tag
//   - [FromMap] — map keys in sorted order
//   - [ParseRecords] — a YAML or JSON sequence of mappings, key order kept
//
// Without [Options.Headers], the columns are the fields of the first record.
// A record missing a column renders an empty cell.
//
// # Alignment
//
// A column's [Kind] is taken from its value in the first record. Number and
// bool columns align right; everything else aligns left.
//
// # Formatting
//
// A [Formatter] turns a raw value into a [Cell]. The formatter for a field is
// looked up in [Options.Formatters] by field name, then in
// [Options.TypeFormatters] by the value's [Kind]. A cell built with
// [Formatted] can override its alignment and paint its text in a [Color]:
//
//	opts := &strtable.Options{
//		Formatters: map[string]strtable.Formatter{
//			"status": func(v any, _ string) (strtable.Cell, error) {
//				if v == "down" {
//					return strtable.Formatted(v, strtable.Format{Color: strtable.ColorRed}), nil
//				}
//				return strtable.Plain(v), nil
//			},
//		},
//		AdjustForColoredOutput: true,
//	}
//
// Set [Options.AdjustForColoredOutput] whenever cells carry escape codes so
// they do not count toward column widths.
//
// # Multi-line cells
//
// Cell text containing newlines spans several physical lines. The row grows
// to the tallest cell and shorter cells are padded with blank lines.
//
// # Errors
//
// An error returned by a formatter stops rendering and is returned as is.
// Parsing helpers report [ErrInvalidRecords], [ErrInvalidOptions], and
// [ErrNotStruct].
package strtable
