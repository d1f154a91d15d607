package strtable

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// tableCell is a rendered cell: its physical lines and resolved alignment.
type tableCell struct {
	lines []string
	align Alignment
}

type layout struct {
	opts   Options
	width  widthFunc
	header []tableCell
	rows   [][]tableCell
	widths []int
}

func renderLines(records []Record, opts Options) ([]string, error) {
	if len(records) == 0 {
		return nil, nil
	}
	headers := resolveHeaders(records, opts.Headers)

	l := &layout{opts: opts, width: measurer(opts.AdjustForColoredOutput)}
	l.header = buildHeader(headers, opts.CapitalizeHeaders)

	kinds := columnKinds(records[0], headers)
	l.rows = make([][]tableCell, len(records))
	for i, rec := range records {
		row, err := buildRow(rec, headers, kinds, opts)
		if err != nil {
			return nil, err
		}
		l.rows[i] = row
	}

	l.widths = computeWidths(len(headers), l.header, l.rows, l.width)
	return l.emit(), nil
}

func resolveHeaders(records []Record, explicit []string) []string {
	if explicit != nil {
		return explicit
	}
	return records[0].Keys()
}

func buildHeader(headers []string, capitalize bool) []tableCell {
	cells := make([]tableCell, len(headers))
	for i, h := range headers {
		label := h
		if capitalize {
			label = capitalizeFirst(label)
		}
		cells[i] = tableCell{lines: splitLines(label), align: AlignLeft}
	}
	return cells
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// columnKinds reads each column's kind from the first data row.
func columnKinds(first Record, headers []string) []Kind {
	kinds := make([]Kind, len(headers))
	for i, h := range headers {
		v, _ := first.Get(h)
		kinds[i] = KindOf(v)
	}
	return kinds
}

func buildRow(rec Record, headers []string, kinds []Kind, opts Options) ([]tableCell, error) {
	row := make([]tableCell, len(headers))
	for i, field := range headers {
		raw, _ := rec.Get(field)
		cell, err := resolveFormatter(field, raw, opts)(raw, field)
		if err != nil {
			return nil, err
		}
		row[i] = renderCell(cell, defaultAlignment(kinds[i]))
	}
	return row, nil
}

func resolveFormatter(field string, raw any, opts Options) Formatter {
	if f, ok := opts.Formatters[field]; ok && f != nil {
		return f
	}
	if f, ok := opts.TypeFormatters[KindOf(raw)]; ok && f != nil {
		return f
	}
	return identity
}

func renderCell(c Cell, align Alignment) tableCell {
	text := stringify(c.Value)
	if c.Format != nil {
		if c.Format.Color != ColorNone {
			text = applyColor(text, c.Format.Color)
		}
		if c.Format.Alignment != AlignDefault {
			align = c.Format.Alignment
		}
	}
	return tableCell{lines: splitLines(text), align: align}
}

// stringify renders a value as cell text. Absent values are empty.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func computeWidths(numCols int, header []tableCell, rows [][]tableCell, width widthFunc) []int {
	widths := make([]int, numCols)
	measure := func(cells []tableCell) {
		for i, cell := range cells {
			for _, line := range cell.lines {
				if w := width(line); i < numCols && w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	return widths
}

// tableWidth returns the width of every emitted line: both outer borders,
// one space of padding on each side of every cell, and an inner border
// between adjacent cells.
func (l *layout) tableWidth() int {
	n := 2*l.width(l.opts.OuterBorder) + 2
	for i, w := range l.widths {
		n += w
		if i > 0 {
			n += l.width(l.opts.InnerBorder) + 2
		}
	}
	return n
}

func (l *layout) emit() []string {
	total := l.tableWidth()
	lines := l.rowLines(l.header)
	lines = append(lines, repeatToLength(l.opts.HeaderSeparator, total, l.opts.AdjustForColoredOutput))
	for i, row := range l.rows {
		if i > 0 && l.opts.RowSeparator != "" {
			lines = append(lines, repeatToLength(l.opts.RowSeparator, total, l.opts.AdjustForColoredOutput))
		}
		lines = append(lines, l.rowLines(row)...)
	}
	return lines
}

func (l *layout) rowLines(cells []tableCell) []string {
	height := rowHeight(cells)
	lines := make([]string, height)
	sep := " " + l.opts.InnerBorder + " "
	for n := 0; n < height; n++ {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			text := ""
			if n < len(cell.lines) {
				text = cell.lines[n]
			}
			parts[i] = alignCell(text, l.widths[i], cell.align, l.width)
		}
		var sb strings.Builder
		sb.WriteString(l.opts.OuterBorder)
		sb.WriteString(" ")
		sb.WriteString(strings.Join(parts, sep))
		sb.WriteString(" ")
		sb.WriteString(l.opts.OuterBorder)
		lines[n] = sb.String()
	}
	return lines
}

func rowHeight(cells []tableCell) int {
	n := 1
	for _, cell := range cells {
		if len(cell.lines) > n {
			n = len(cell.lines)
		}
	}
	return n
}

func alignCell(s string, width int, align Alignment, measure widthFunc) string {
	pad := width - measure(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// repeatToLength tiles glyph until it is exactly n wide, truncating the last
// tile. A glyph wider than n is truncated. With colorAware set, escape
// sequences in glyph are kept whole and take no width, and a wide rune that
// would overshoot n is replaced by spaces.
func repeatToLength(glyph string, n int, colorAware bool) string {
	w := measurer(colorAware)(glyph)
	if n <= 0 || w == 0 {
		return ""
	}
	tiled := strings.Repeat(glyph, n/w+1)
	if !colorAware {
		return string([]rune(tiled)[:n])
	}
	out := ansi.Truncate(tiled, n, "")
	if pad := n - visibleWidth(out); pad > 0 {
		out += strings.Repeat(" ", pad)
	}
	return out
}
