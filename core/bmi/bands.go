package bmi

import "fmt"

// Bands holds the thresholds separating the four categories. A value v is
//
//	Underweight  if v <  UnderweightBelow
//	Healthy      if v <  HealthyBelow
//	Overweight   if OverweightFrom <= v < ObeseFrom
//	Obese        otherwise
//
// Values in [HealthyBelow, OverweightFrom) fall through to Obese.
type Bands struct {
	UnderweightBelow float64
	HealthyBelow     float64
	OverweightFrom   float64
	ObeseFrom        float64
}

// StandardBands are the half-open WHO adult bands at 18.5, 25 and 30.
var StandardBands = Bands{
	UnderweightBelow: 18.5,
	HealthyBelow:     25,
	OverweightFrom:   25,
	ObeseFrom:        30,
}

// LegacyBands reproduce the comparisons of the first mobile release
// (< 24.9 healthy, [25, 29.9) overweight). Values in [24.9, 25) and
// [29.9, 30) are classified Obese. Kept only for reproducing old results.
var LegacyBands = Bands{
	UnderweightBelow: 18.5,
	HealthyBelow:     24.9,
	OverweightFrom:   25,
	ObeseFrom:        29.9,
}

// Band preset names accepted by ParseBands.
const (
	BandsStandard = "standard"
	BandsLegacy   = "legacy"
)

// ParseBands resolves a preset name.
func ParseBands(name string) (Bands, error) {
	switch name {
	case "", BandsStandard:
		return StandardBands, nil
	case BandsLegacy:
		return LegacyBands, nil
	}
	return Bands{}, fmt.Errorf("unknown bands %q (want %s | %s)", name, BandsStandard, BandsLegacy)
}

// Validate checks that the thresholds are positive and non-decreasing.
func (b Bands) Validate() error {
	if !(b.UnderweightBelow > 0 &&
		b.UnderweightBelow <= b.HealthyBelow &&
		b.HealthyBelow <= b.OverweightFrom &&
		b.OverweightFrom <= b.ObeseFrom) {
		return fmt.Errorf("bands must satisfy 0 < %v <= %v <= %v <= %v",
			b.UnderweightBelow, b.HealthyBelow, b.OverweightFrom, b.ObeseFrom)
	}
	return nil
}

// Classify maps a BMI value to exactly one category.
func (b Bands) Classify(v float64) Category {
	switch {
	case v < b.UnderweightBelow:
		return Underweight
	case v < b.HealthyBelow:
		return Healthy
	case v >= b.OverweightFrom && v < b.ObeseFrom:
		return Overweight
	default:
		return Obese
	}
}

// Classify uses StandardBands.
func Classify(v float64) Category { return StandardBands.Classify(v) }
