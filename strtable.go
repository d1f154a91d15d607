package strtable

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNotStruct      = errors.New("value is not a struct")
	ErrInvalidRecords = errors.New("invalid records document")
	ErrInvalidOptions = errors.New("invalid options document")
)

// Field is a single named value within a [Record].
type Field struct {
	Name  string
	Value any
}

// Record is an ordered set of fields. Field order is the column order when
// no explicit headers are given.
type Record []Field

// Get returns the value of the named field and whether it is present.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the field names in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Name
	}
	return keys
}

// Options controls table rendering. The zero value, and a nil *Options,
// render with the defaults.
type Options struct {
	// Headers lists the columns to render. When nil, the fields of the first
	// record are used. A non-nil empty slice renders zero columns.
	Headers []string `yaml:"headers"`

	// OuterBorder is drawn at the left and right edge of every line.
	// Default "|".
	OuterBorder string `yaml:"outerBorder"`

	// InnerBorder is drawn between columns. Default "|".
	InnerBorder string `yaml:"innerBorder"`

	// HeaderSeparator is repeated to build the line under the header row.
	// Default "-".
	HeaderSeparator string `yaml:"headerSeparator"`

	// RowSeparator, when set, is repeated to build a line between data rows.
	RowSeparator string `yaml:"rowSeparator"`

	// CapitalizeHeaders upper-cases the first character of each header label.
	// Field lookup always uses the original name.
	CapitalizeHeaders bool `yaml:"capitalizeHeaders"`

	// Formatters maps a field name to its formatter.
	Formatters map[string]Formatter `yaml:"-"`

	// TypeFormatters maps a value kind to a formatter, used when the field
	// has no entry in Formatters.
	TypeFormatters map[Kind]Formatter `yaml:"-"`

	// AdjustForColoredOutput excludes ANSI escape sequences from width
	// calculations.
	AdjustForColoredOutput bool `yaml:"adjustForColoredOutput"`
}

const (
	defaultBorder    = "|"
	defaultSeparator = "-"
)

func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.OuterBorder == "" {
		out.OuterBorder = defaultBorder
	}
	if out.InnerBorder == "" {
		out.InnerBorder = defaultBorder
	}
	if out.HeaderSeparator == "" {
		out.HeaderSeparator = defaultSeparator
	}
	return out
}

// Kind is the primitive kind of a raw value. It selects type formatters and
// the default column alignment.
type Kind int

const (
	KindOther  Kind = iota // nil, absent, and composite values
	KindString             // Go strings
	KindNumber             // integer, unsigned, and float values
	KindBool               // booleans
)

var kindNames = map[Kind]string{
	KindOther:  "other",
	KindString: "string",
	KindNumber: "number",
	KindBool:   "bool",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindOf classifies a raw value. Nil and absent values are [KindOther].
func KindOf(v any) Kind {
	if v == nil {
		return KindOther
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	default:
		return KindOther
	}
}

// Alignment controls cell text alignment.
type Alignment int

const (
	AlignDefault Alignment = iota // use the column's kind
	AlignLeft                     // pad on the right
	AlignRight                    // pad on the left
	AlignCenter                   // split padding, extra space on the right
)

var kindAlignments = map[Kind]Alignment{
	KindNumber: AlignRight,
	KindBool:   AlignRight,
}

func defaultAlignment(k Kind) Alignment {
	if a, ok := kindAlignments[k]; ok {
		return a
	}
	return AlignLeft
}

// Format overrides how a single cell is presented.
type Format struct {
	Alignment Alignment
	Color     Color
}

// Cell is the result of a [Formatter]. A nil Format is a plain value;
// a non-nil Format carries per-cell presentation.
type Cell struct {
	Value  any
	Format *Format
}

// Plain returns a cell without presentation overrides.
func Plain(v any) Cell { return Cell{Value: v} }

// Formatted returns a cell carrying f.
func Formatted(v any, f Format) Cell { return Cell{Value: v, Format: &f} }

// Formatter transforms a raw field value before it is rendered. A returned
// error aborts rendering and is passed to the caller unchanged.
type Formatter func(value any, field string) (Cell, error)

func identity(v any, _ string) (Cell, error) { return Plain(v), nil }

// Render formats records as a bordered text table. Lines are joined with
// "\n" and there is no trailing newline. An empty record set renders as "".
func Render(records []Record, opts *Options) (string, error) {
	lines, err := renderLines(records, opts.withDefaults())
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Write renders records and writes each line to w followed by a newline.
func Write(w io.Writer, records []Record, opts *Options) error {
	lines, err := renderLines(records, opts.withDefaults())
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
