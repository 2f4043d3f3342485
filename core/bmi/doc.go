// Package bmi is the Body Mass Index computation core. It is pure and
// stateless: it never imports presentation, output, or CLI packages, and it
// never sees raw text. Parse input at the boundary (internal/measure) and
// pass numbers in.
package bmi
