// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"bmicalc-core/bmi"
	"bmicalc/internal/config"
	"bmicalc/internal/output"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Single measurement (raw text, parsed by the app)
	Weight string
	Height string

	// Batch input
	InputFiles []string

	// Classification
	BandsName string
	Bands     bmi.Bands

	// Output
	Output          string
	Pretty          bool
	Sort            bool
	Header          bool // true unless --no-header
	InvalidExitCode int
	MetricsFile     string

	Quiet   bool
	Version bool
}

// Single reports whether a --weight/--height pair was given.
func (o Options) Single() bool { return o.Weight != "" || o.Height != "" }

// sliceValue appends each value to a *[]string (for --input/-i).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error { *s.dst = append(*s.dst, v); return nil }

// ParseArgs registers flags with env-derived defaults, parses argv and
// validates the combination. Positionals are input files and may sit
// between flags.
func ParseArgs(fs *flag.FlagSet, argv []string, d config.Defaults) (Options, error) {
	opt := Options{
		BandsName: d.Bands, Output: d.Output, Pretty: d.Pretty, Sort: d.Sort,
		InvalidExitCode: d.InvalidExitCode, MetricsFile: d.MetricsFile, Quiet: d.Quiet,
	}
	noHeader := d.NoHeader
	var help, examples bool

	fs.StringVar(&opt.Weight, "weight", "", "weight in kilograms")
	fs.StringVar(&opt.Weight, "w", "", "alias of --weight")
	fs.StringVar(&opt.Height, "height", "", "height in centimeters")
	fs.StringVar(&opt.Height, "H", "", "alias of --height")
	in := &sliceValue{dst: &opt.InputFiles}
	fs.Var(in, "input", "measurement file (repeatable) or '-'")
	fs.Var(in, "i", "alias of --input")

	fs.StringVar(&opt.BandsName, "bands", opt.BandsName, "classification bands")
	fs.StringVar(&opt.Output, "output", opt.Output, "output format")
	fs.StringVar(&opt.Output, "o", opt.Output, "alias of --output")
	fs.BoolVar(&opt.Pretty, "pretty", opt.Pretty, "result card after each text row")
	fs.BoolVar(&opt.Sort, "sort", opt.Sort, "sort outputs by id")
	fs.BoolVar(&noHeader, "no-header", noHeader, "suppress header line")
	fs.IntVar(&opt.InvalidExitCode, "invalid-exit-code", opt.InvalidExitCode, "exit code when any input is invalid")
	fs.StringVar(&opt.MetricsFile, "metrics-file", opt.MetricsFile, "Prometheus textfile path")

	fs.BoolVar(&opt.Quiet, "quiet", opt.Quiet, "suppress warnings")
	fs.BoolVar(&opt.Quiet, "q", opt.Quiet, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show help")
	fs.BoolVar(&help, "h", false, "alias of --help")
	fs.BoolVar(&examples, "examples", false, "print usage examples")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if examples {
		return opt, ErrExamples
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	files, err := ExpandPositionals(append(posArgs, fs.Args()...))
	if err != nil {
		return opt, err
	}
	opt.InputFiles = append(opt.InputFiles, files...)

	// Validation
	switch {
	case opt.Single() && len(opt.InputFiles) > 0:
		return opt, errors.New("--weight/--height conflicts with input files")
	case opt.Single() && (opt.Weight == "" || opt.Height == ""):
		return opt, errors.New("--weight and --height must be supplied together")
	case !opt.Single() && len(opt.InputFiles) == 0:
		return opt, errors.New("provide --weight and --height, or at least one input file")
	}
	if !output.ValidFormat(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Bands, err = bmi.ParseBands(opt.BandsName); err != nil {
		return opt, fmt.Errorf("--bands: %w", err)
	}
	if opt.InvalidExitCode < 0 || opt.InvalidExitCode > 125 {
		return opt, errors.New("--invalid-exit-code must be in 0..125")
	}
	return opt, nil
}
