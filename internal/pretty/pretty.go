package pretty

import (
	"strings"
	"unicode/utf8"

	"bmicalc-core/bmi"
	"bmicalc/internal/present"
)

// Options control the ASCII result card.
type Options struct {
	// Interior width; grows to fit the longest line. If <=0, use default (36).
	Width int

	// Show the hex color next to the category.
	ShowColor bool

	// Show the illustration asset path.
	ShowIllustration bool

	// Glyphs
	CornerGlyph     string // default "+"
	HorizontalGlyph string // default "-"
	VerticalGlyph   string // default "|"
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	Width:            36,
	ShowColor:        true,
	ShowIllustration: true,
	CornerGlyph:      "+",
	HorizontalGlyph:  "-",
	VerticalGlyph:    "|",
}

func orDefault(s, d string) string {
	if s == "" {
		return d
	}
	return s
}

// CardLines returns the card content without the frame.
func CardLines(id string, r bmi.Result, err error, opt Options) []string {
	lines := []string{id}
	if err != nil {
		return append(lines, present.Notice)
	}
	lines = append(lines, "Your BMI: "+r.Text())
	cat := r.Category.String()
	if opt.ShowColor {
		cat += "  " + present.Color(r.Category)
	}
	lines = append(lines, cat)
	if opt.ShowIllustration {
		lines = append(lines, present.Illustration(r.Category))
	}
	return lines
}

// RenderResultWithOptions draws the framed card, newline-terminated.
func RenderResultWithOptions(id string, r bmi.Result, err error, opt Options) string {
	lines := CardLines(id, r, err, opt)
	inner := opt.Width
	if inner <= 0 {
		inner = DefaultOptions.Width
	}
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > inner {
			inner = n
		}
	}
	corner := orDefault(opt.CornerGlyph, "+")
	horiz := orDefault(opt.HorizontalGlyph, "-")
	vert := orDefault(opt.VerticalGlyph, "|")

	rule := corner + strings.Repeat(horiz, inner+2) + corner + "\n"
	var b strings.Builder
	b.WriteString(rule)
	for _, l := range lines {
		b.WriteString(vert)
		b.WriteByte(' ')
		b.WriteString(l)
		b.WriteString(strings.Repeat(" ", inner-utf8.RuneCountInString(l)))
		b.WriteByte(' ')
		b.WriteString(vert)
		b.WriteByte('\n')
	}
	b.WriteString(rule)
	return b.String()
}

// RenderResult uses DefaultOptions.
func RenderResult(id string, r bmi.Result, err error) string {
	return RenderResultWithOptions(id, r, err, DefaultOptions)
}
