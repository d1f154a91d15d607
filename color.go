package strtable

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Color names a foreground color from a fixed palette.
type Color string

const (
	ColorNone    Color = ""
	ColorBlack   Color = "black"
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
	ColorBlue    Color = "blue"
	ColorMagenta Color = "magenta"
	ColorCyan    Color = "cyan"
	ColorWhite   Color = "white"
	ColorGray    Color = "gray"
)

var palette = map[Color]color.Attribute{
	ColorBlack:   color.FgBlack,
	ColorRed:     color.FgRed,
	ColorGreen:   color.FgGreen,
	ColorYellow:  color.FgYellow,
	ColorBlue:    color.FgBlue,
	ColorMagenta: color.FgMagenta,
	ColorCyan:    color.FgCyan,
	ColorWhite:   color.FgWhite,
	ColorGray:    color.FgHiBlack,
}

// applyColor wraps each line of text in the escape codes for c. Lines are
// wrapped separately so a multi-line cell never leaks color into borders.
// Unknown colors return text unchanged.
func applyColor(text string, c Color) string {
	attr, ok := palette[c]
	if !ok {
		return text
	}
	// Output is a string, not a terminal; color.NoColor must not apply.
	painter := color.New(attr)
	painter.EnableColor()
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = painter.Sprint(line)
	}
	return strings.Join(lines, "\n")
}

// widthFunc measures the width of a single line.
type widthFunc func(string) int

// rawWidth counts characters, escape bytes included.
func rawWidth(s string) int { return utf8.RuneCountInString(s) }

// cellWidth is pinned rather than runewidth.DefaultCondition, which is set
// from RUNEWIDTH_EASTASIAN and the locale at startup. Ambiguous-width runes
// are always one column.
var cellWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// visibleWidth is the number of terminal columns s occupies once escape
// sequences are removed.
func visibleWidth(s string) int { return cellWidth.StringWidth(ansi.Strip(s)) }

func measurer(adjustForColor bool) widthFunc {
	if adjustForColor {
		return visibleWidth
	}
	return rawWidth
}
