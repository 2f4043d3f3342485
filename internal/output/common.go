package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "id\tweight_kg\theight_cm\tbmi\tcategory"

// Placeholders for rejected rows in TSV output.
const (
	NAValue       = "NA"
	InvalidMarker = "invalid_input"
)
