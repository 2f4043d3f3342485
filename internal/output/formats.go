package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatHTML  = "html"
)

// Formats lists every supported format, in help order.
var Formats = []string{FormatText, FormatJSON, FormatJSONL, FormatHTML}

// ValidFormat reports whether f is a supported output format.
func ValidFormat(f string) bool {
	for _, x := range Formats {
		if x == f {
			return true
		}
	}
	return false
}
