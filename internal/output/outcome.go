// internal/output/outcome.go
package output

import (
	"sort"

	"bmicalc-core/bmi"
	"bmicalc/internal/measure"
	"bmicalc/internal/present"
	"bmicalc/pkg/api"
)

// Outcome joins an input record with its result or its validation error.
type Outcome struct {
	measure.Record
	Result bmi.Result
	Err    error
}

// OK reports whether the record produced a result.
func (o Outcome) OK() bool { return o.Err == nil }

// ToAPIResult converts an Outcome to the stable wire schema (v1).
func ToAPIResult(o Outcome) api.ResultV1 {
	v := api.ResultV1{
		ID:         o.ID,
		WeightKg:   o.Weight,
		HeightCm:   o.Height,
		SourceFile: o.SourceFile,
		Line:       o.Line,
	}
	if !o.OK() {
		v.Error = api.ErrorInvalidInput
		return v
	}
	v.BMI = o.Result.Value
	v.BMIText = o.Result.Text()
	v.Category = o.Result.Category.String()
	v.Color = present.Color(o.Result.Category)
	v.Illustration = present.Illustration(o.Result.Category)
	return v
}

func toAPIResults(list []Outcome) []api.ResultV1 {
	out := make([]api.ResultV1, 0, len(list))
	for _, o := range list {
		out = append(out, ToAPIResult(o))
	}
	return out
}

// SortOutcomes orders by ID, then source position, for --sort.
func SortOutcomes(list []Outcome) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		if a.SourceFile != b.SourceFile {
			return a.SourceFile < b.SourceFile
		}
		return a.Line < b.Line
	})
}
