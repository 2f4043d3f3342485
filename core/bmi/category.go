package bmi

import "fmt"

// Category is a weight-status band derived from a BMI value.
// The zero value is not a valid category.
type Category uint8

const (
	Underweight Category = iota + 1
	Healthy
	Overweight
	Obese
)

var categoryNames = [...]string{
	Underweight: "Underweight",
	Healthy:     "Healthy",
	Overweight:  "Overweight",
	Obese:       "Obese",
}

// Categories returns all categories in ascending order.
func Categories() []Category {
	return []Category{Underweight, Healthy, Overweight, Obese}
}

// Valid reports whether c is one of the four defined categories.
func (c Category) Valid() bool { return c >= Underweight && c <= Obese }

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// ParseCategory is the inverse of String.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if categoryNames[c] == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", uint8(c))
	}
	return []byte(categoryNames[c]), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
