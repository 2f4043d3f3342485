// pkg/api/results_v1.go
package api

// ErrorInvalidInput is the only value of ResultV1.Error.
const ErrorInvalidInput = "invalid_input"

// ResultV1 is the stable JSON/JSONL schema for one computed measurement.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
//
// Weight and height are echoed as entered. Exactly one of (BMI, Category)
// or Error is set.
type ResultV1 struct {
	ID           string  `json:"id"`
	WeightKg     string  `json:"weight_kg"`
	HeightCm     string  `json:"height_cm"`
	BMI          float64 `json:"bmi,omitempty"`
	BMIText      string  `json:"bmi_text,omitempty"`
	Category     string  `json:"category,omitempty"`
	Color        string  `json:"color,omitempty"`
	Illustration string  `json:"illustration,omitempty"`
	Error        string  `json:"error,omitempty"`
	SourceFile   string  `json:"source_file,omitempty"`
	Line         int     `json:"line,omitempty"`
}
