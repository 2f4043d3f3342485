package measure

import (
	"errors"
	"testing"

	"bmicalc-core/bmi"
)

func TestParseValueAccepts(t *testing.T) {
	cases := map[string]float64{
		"70":      70,
		" 70.5 ":  70.5,
		"70,5":    70.5,
		"７０．５":    70.5,
		"1.75e2":  175,
		"+80":     80,
		"0.5":     0.5,
		"-3":      -3, // range is the engine's job
		"\t175\n": 175,
	}
	for in, want := range cases {
		got, err := ParseValue(in)
		if err != nil {
			t.Errorf("ParseValue(%q) err: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseValue(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseValueRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "70kg", "NaN", "inf", "0x1p4", "1_000", "1,000.5", "1,2,3", ".", "1.2.3"} {
		_, err := ParseValue(in)
		if err == nil {
			t.Errorf("ParseValue(%q) should fail", in)
			continue
		}
		if !errors.Is(err, bmi.ErrInvalidInput) {
			t.Errorf("ParseValue(%q) err %v does not wrap ErrInvalidInput", in, err)
		}
	}
}

func TestComputeText(t *testing.T) {
	r, err := Compute("70", "175", bmi.StandardBands)
	if err != nil {
		t.Fatal(err)
	}
	if r.Text() != "22.86" || r.Category != bmi.Healthy {
		t.Fatalf("got %+v", r)
	}

	for _, in := range [][2]string{{"abc", "170"}, {"0", "170"}, {"70", ""}, {"70", "-1"}} {
		if _, err := Compute(in[0], in[1], bmi.StandardBands); !errors.Is(err, bmi.ErrInvalidInput) {
			t.Errorf("Compute(%q,%q) err = %v, want invalid input", in[0], in[1], err)
		}
	}
}
