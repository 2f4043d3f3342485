package bmi

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidInput is the single validation failure kind: a missing,
// non-numeric, zero, negative or non-finite weight or height.
var ErrInvalidInput = errors.New("invalid_input")

// ValidationError names the offending field. It unwraps to ErrInvalidInput.
type ValidationError struct {
	Field string // "weight_kg", "height_cm" or "bmi"
	Value float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s must be a finite number > 0 (got %v)", ErrInvalidInput, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Measurement is one weight/height reading.
type Measurement struct {
	WeightKg float64
	HeightCm float64
}

// Validate returns a *ValidationError for the first unusable field.
func (m Measurement) Validate() error {
	if !positive(m.WeightKg) {
		return &ValidationError{Field: "weight_kg", Value: m.WeightKg}
	}
	if !positive(m.HeightCm) {
		return &ValidationError{Field: "height_cm", Value: m.HeightCm}
	}
	return nil
}

// Result is an immutable computed BMI. Value is rounded to two decimals
// and is always > 0.
type Result struct {
	Value    float64
	Category Category
}

// Text is the fixed two-decimal rendering ("22.86").
func (r Result) Text() string { return strconv.FormatFloat(r.Value, 'f', 2, 64) }

// Compute computes and classifies BMI with StandardBands.
func Compute(weightKg, heightCm float64) (Result, error) {
	return StandardBands.Compute(Measurement{WeightKg: weightKg, HeightCm: heightCm})
}

// Compute computes BMI for m and classifies the rounded value with b.
func (b Bands) Compute(m Measurement) (Result, error) {
	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	h := m.HeightCm / 100
	v := Round2(m.WeightKg / (h * h))
	if !positive(v) {
		// overflowed to +Inf or underflowed below 0.005
		return Result{}, &ValidationError{Field: "bmi", Value: v}
	}
	return Result{Value: v, Category: b.Classify(v)}, nil
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	r := math.Round(v*100) / 100
	if math.IsInf(r, 0) {
		// v*100 overflowed; v is already far beyond two-decimal precision
		return v
	}
	return r
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}
