// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// FormatRowTSV returns the TSV columns for o (no trailing newline).
func FormatRowTSV(o Outcome) string {
	if !o.OK() {
		return fmt.Sprintf("%s\t%s\t%s\t%s\t%s", o.ID, o.Weight, o.Height, NAValue, InvalidMarker)
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s", o.ID, o.Weight, o.Height, o.Result.Text(), o.Result.Category)
}

// WriteTextWithRenderer writes the header (optional), then one TSV row per
// outcome, each followed by render(o) when prettyMode is set.
func WriteTextWithRenderer(w io.Writer, list []Outcome, header, prettyMode bool, render func(Outcome) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, o := range list {
		if err := writeTextRow(w, o, prettyMode, render); err != nil {
			return err
		}
	}
	return nil
}

// StreamTextWithRenderer is WriteTextWithRenderer over a channel. It drains
// in after a write error so the producer never blocks.
func StreamTextWithRenderer(w io.Writer, in <-chan Outcome, header, prettyMode bool, render func(Outcome) string) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, TSVHeader)
	}
	for o := range in {
		if err != nil {
			continue
		}
		err = writeTextRow(w, o, prettyMode, render)
	}
	return err
}

func writeTextRow(w io.Writer, o Outcome, prettyMode bool, render func(Outcome) string) error {
	if _, err := fmt.Fprintln(w, FormatRowTSV(o)); err != nil {
		return err
	}
	if prettyMode && render != nil {
		if _, err := io.WriteString(w, render(o)); err != nil {
			return err
		}
	}
	return nil
}
