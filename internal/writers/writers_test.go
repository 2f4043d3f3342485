package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"bmicalc-core/bmi"
	"bmicalc/internal/measure"
	"bmicalc/internal/output"
	"bmicalc/internal/pretty"
	"bmicalc/pkg/api"
)

func outcomes() []output.Outcome {
	rows := [][3]string{{"c", "100", "170"}, {"a", "70", "175"}, {"b", "abc", "170"}}
	var list []output.Outcome
	for _, r := range rows {
		o := output.Outcome{Record: measure.Record{ID: r[0], Weight: r[1], Height: r[2]}}
		o.Result, o.Err = measure.Compute(r[1], r[2], bmi.StandardBands)
		list = append(list, o)
	}
	return list
}

func run(t *testing.T, format string, opt Options) string {
	t.Helper()
	var buf bytes.Buffer
	in, errCh, err := StartOutcomeWriter(&buf, format, opt, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, o := range outcomes() {
		in <- o
	}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("%s writer: %v", format, err)
	}
	return buf.String()
}

func TestRegistryHasAllFormats(t *testing.T) {
	got := strings.Join(Registered(), ",")
	if got != "html,json,jsonl,text" {
		t.Fatalf("registered formats = %s", got)
	}
	if _, _, err := StartOutcomeWriter(io.Discard, "fasta", Options{}, 0); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestTextStreamingKeepsInputOrder(t *testing.T) {
	got := run(t, output.FormatText, Options{Header: true})
	want := output.TSVHeader + "\n" +
		"c\t100\t170\t34.60\tObese\n" +
		"a\t70\t175\t22.86\tHealthy\n" +
		"b\tabc\t170\tNA\tinvalid_input\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextSortedPretty(t *testing.T) {
	got := run(t, output.FormatText, Options{Sort: true, Pretty: true, Card: pretty.DefaultOptions})
	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[0], "a\t") {
		t.Fatalf("expected sorted output, got first line %q", lines[0])
	}
	if !strings.Contains(got, "Your BMI: 22.86") || !strings.Contains(got, "Please enter valid weight and height.") {
		t.Fatalf("pretty cards missing:\n%s", got)
	}
}

func TestJSONL(t *testing.T) {
	got := run(t, output.FormatJSONL, Options{Sort: true})
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d", len(lines))
	}
	var first, second api.ResultV1
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}
	if first.ID != "a" || first.Category != "Healthy" || second.Error != "invalid_input" {
		t.Fatalf("unexpected %+v / %+v", first, second)
	}
}

func TestJSONArray(t *testing.T) {
	var got []api.ResultV1
	if err := json.Unmarshal([]byte(run(t, output.FormatJSON, Options{})), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0].ID != "c" {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestHTMLWriter(t *testing.T) {
	got := run(t, output.FormatHTML, Options{})
	if !strings.HasPrefix(got, "<!DOCTYPE html>") || !strings.HasSuffix(got, "</html>\n") {
		t.Fatalf("not a complete page:\n%s", got)
	}
	if strings.Count(got, `<section class="result"`) != 3 {
		t.Fatal("want one card per outcome")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriterErrorDoesNotBlockProducer(t *testing.T) {
	in, errCh, err := StartOutcomeWriter(failWriter{}, output.FormatText, Options{Header: true}, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		in <- outcomes()[0]
	}
	close(in)
	if werr := <-errCh; !IsBrokenPipe(werr) {
		t.Fatalf("want broken pipe, got %v", werr)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("x")) {
		t.Fatal("false positive")
	}
	if !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("closed pipe not recognized")
	}
}
