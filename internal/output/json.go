// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, list []Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPIResults(list))
}
