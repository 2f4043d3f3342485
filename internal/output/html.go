// internal/output/html.go
package output

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"bmicalc/internal/present"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>BMI Calculator</title>
<style>
body{margin:0;padding:20px;background:#000;color:#fff;font-family:sans-serif;display:flex;flex-direction:column;align-items:center}
h1{font-size:28px;margin-bottom:20px}
.result{margin-top:20px;text-align:center}
.label{font-size:18px;font-weight:bold}
.value{font-size:24px;font-weight:bold;margin-top:5px}
.category{font-size:18px;margin-top:5px}
.notice{font-size:18px;color:#e74c3c}
img{width:200px;height:200px;margin-top:20px;object-fit:contain}
</style>
</head>
<body>
<h1>BMI Calculator</h1>
`

const pageFoot = "</body>\n</html>\n"

// ResultCard renders one outcome as the result area of the calculator
// screen: value and category in the category color plus its illustration,
// or the notice for rejected input.
func ResultCard(o Outcome) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		id := templ.EscapeString(o.ID)
		if !o.OK() {
			_, err := fmt.Fprintf(w, "<section class=\"result\" id=\"%s\">\n<p class=\"notice\">%s</p>\n</section>\n",
				id, templ.EscapeString(present.Notice))
			return err
		}
		c := o.Result.Category
		color := templ.EscapeString(present.Color(c))
		_, err := fmt.Fprintf(w,
			"<section class=\"result\" id=\"%s\">\n"+
				"<p class=\"label\">Your BMI:</p>\n"+
				"<p class=\"value\" style=\"color:%s\">%s</p>\n"+
				"<p class=\"category\" style=\"color:%s\">%s</p>\n"+
				"<img src=\"%s\" alt=\"%s\">\n"+
				"</section>\n",
			id,
			color, templ.EscapeString(o.Result.Text()),
			color, templ.EscapeString(c.String()),
			templ.EscapeString(present.Illustration(c)), templ.EscapeString(c.String()),
		)
		return err
	})
}

// Page renders a complete document with one card per outcome.
func Page(list []Outcome) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		for _, o := range list {
			if err := ResultCard(o).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, pageFoot)
		return err
	})
}

// WriteHTML writes a complete page for list.
func WriteHTML(ctx context.Context, w io.Writer, list []Outcome) error {
	return Page(list).Render(ctx, w)
}

// StreamHTML writes the page head immediately and one card per received
// outcome; the foot is written once in is closed.
func StreamHTML(ctx context.Context, w io.Writer, in <-chan Outcome) error {
	_, err := io.WriteString(w, pageHead)
	for o := range in {
		if err != nil {
			continue
		}
		err = ResultCard(o).Render(ctx, w)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, pageFoot)
	return err
}
