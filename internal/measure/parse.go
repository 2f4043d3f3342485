// internal/measure/parse.go
package measure

import (
	"fmt"
	"strconv"
	"strings"

	"bmicalc-core/bmi"
	"golang.org/x/text/width"
)

// ParseValue converts one raw text field into a number. Full-width digits
// and punctuation are narrowed first; a lone decimal comma is read as a
// decimal point. Anything else that strconv rejects, including trailing
// units ("70kg") and NaN/Inf spellings, wraps bmi.ErrInvalidInput.
func ParseValue(text string) (float64, error) {
	s := strings.TrimSpace(width.Narrow.String(text))
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", bmi.ErrInvalidInput)
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	if !numeric(s) {
		return 0, fmt.Errorf("%w: %q is not a number", bmi.ErrInvalidInput, text)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", bmi.ErrInvalidInput, text, err)
	}
	return v, nil
}

// numeric admits plain decimal notation with an optional sign and exponent.
// strconv also accepts "inf", "nan", hex floats and underscores; none of
// those is a plausible reading.
func numeric(s string) bool {
	digits := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '.' || r == 'e' || r == 'E':
		case (r == '+' || r == '-') && (i == 0 || s[i-1] == 'e' || s[i-1] == 'E'):
		default:
			return false
		}
	}
	return digits
}

// Parse parses a weight/height pair into a Measurement. Range checks are
// left to the engine.
func Parse(weightText, heightText string) (bmi.Measurement, error) {
	w, err := ParseValue(weightText)
	if err != nil {
		return bmi.Measurement{}, fmt.Errorf("weight: %w", err)
	}
	h, err := ParseValue(heightText)
	if err != nil {
		return bmi.Measurement{}, fmt.Errorf("height: %w", err)
	}
	return bmi.Measurement{WeightKg: w, HeightCm: h}, nil
}

// Compute parses both fields and computes with the given bands.
func Compute(weightText, heightText string, bands bmi.Bands) (bmi.Result, error) {
	m, err := Parse(weightText, heightText)
	if err != nil {
		return bmi.Result{}, err
	}
	return bands.Compute(m)
}
