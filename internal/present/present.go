// Package present owns the display side of a result: colors, illustration
// assets and the notice shown for rejected input. The engine knows none of
// this; only the category enumeration is shared.
package present

import "bmicalc-core/bmi"

// Notice is the blocking message for invalid input.
const Notice = "Please enter valid weight and height."

// NeutralColor is used when there is no result to color.
const NeutralColor = "#333"

var colors = map[bmi.Category]string{
	bmi.Underweight: "#e74c3c",
	bmi.Healthy:     "#2ecc71",
	bmi.Overweight:  "#f39c12",
	bmi.Obese:       "#e74c3c",
}

// Overweight and Obese share one illustration.
var illustrations = map[bmi.Category]string{
	bmi.Underweight: "assets/Underweight.png",
	bmi.Healthy:     "assets/Healthy.png",
	bmi.Overweight:  "assets/Obese.png",
	bmi.Obese:       "assets/Obese.png",
}

// Color returns the hex display color for c.
func Color(c bmi.Category) string {
	if s, ok := colors[c]; ok {
		return s
	}
	return NeutralColor
}

// Illustration returns the asset path for c, or "" for an invalid category.
func Illustration(c bmi.Category) string { return illustrations[c] }
