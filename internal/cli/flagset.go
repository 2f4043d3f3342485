package cli

import (
	"flag"
	"fmt"

	"bmicalc/internal/output"
	"bmicalc/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet with the bmi usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(n string) string {
			if f := fs.Lookup(n); f != nil {
				return f.DefValue
			}
			return ""
		}
		fmt.Fprintf(out, `%s: body mass index calculator

Version: %s

Usage:
  %s --weight KG --height CM [options]
  %s [options] FILE... (rows of "[id] weight height"; '-' = stdin)

`, name, version.Version, name, name)
		fmt.Fprintln(out, "Input:")
		fmt.Fprintln(out, "  -w, --weight string          Weight in kilograms")
		fmt.Fprintln(out, "  -H, --height string          Height in centimeters")
		fmt.Fprintln(out, "  -i, --input file             Measurement file (repeatable or '-')")

		fmt.Fprintln(out, "\nClassification:")
		fmt.Fprintf(out, "      --bands string           standard | legacy [%s]\n", def("bands"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string          %s [%s]\n", joinFormats(), def("output"))
		fmt.Fprintf(out, "      --pretty                 Result card after each text row [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --sort                   Sort outputs by id [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header              Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --invalid-exit-code int  Exit code when any input is invalid [%s]\n", def("invalid-exit-code"))
		fmt.Fprintf(out, "      --metrics-file path      Write Prometheus textfile metrics [%s]\n", def("metrics-file"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                  Suppress warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version                Print version and exit")
		fmt.Fprintln(out, "      --examples               Show usage examples and exit")
		fmt.Fprintln(out, "  -h, --help                   Show this help and exit")
		fmt.Fprintln(out, "\nEnvironment: BMI_OUTPUT, BMI_BANDS, BMI_PRETTY, BMI_SORT, BMI_NO_HEADER,")
		fmt.Fprintln(out, "BMI_QUIET, BMI_METRICS_FILE, BMI_INVALID_EXIT_CODE set the defaults above.")
	}
	return fs
}

func joinFormats() string {
	s := ""
	for i, f := range output.Formats {
		if i > 0 {
			s += " | "
		}
		s += f
	}
	return s
}
