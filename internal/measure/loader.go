// internal/measure/loader.go
package measure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one raw input row. Values stay textual until computed so that a
// bad row is reported as a result, not a load failure.
type Record struct {
	ID         string
	Weight     string
	Height     string
	SourceFile string
	Line       int
}

// LoadTSV reads a measurement file; "-" reads standard input.
func LoadTSV(path string) ([]Record, error) {
	if path == "-" {
		return Read(os.Stdin, "-")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Read(fh, path)
}

// Read parses whitespace separated rows of "id weight height" or
// "weight height". Blank lines and '#' comments are skipped. Rows without
// an id get "<name>:<line>".
func Read(r io.Reader, name string) ([]Record, error) {
	var list []Record
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		rec := Record{SourceFile: name, Line: ln}
		switch len(f) {
		case 2:
			rec.ID = fmt.Sprintf("%s:%d", name, ln)
			rec.Weight, rec.Height = f[0], f[1]
		case 3:
			rec.ID, rec.Weight, rec.Height = f[0], f[1], f[2]
		default:
			return nil, fmt.Errorf("%s:%d bad field count (want [id] weight height, got %d fields)", name, ln, len(f))
		}
		list = append(list, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return list, nil
}
