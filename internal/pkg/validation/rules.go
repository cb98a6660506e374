package validation

import (
	"strings"
	"unicode/utf8"
)

// StringValidation checks a single form field
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
}

// NewStringValidation creates a new string validation. Surrounding whitespace
// is ignored, so a blank value counts as missing.
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    strings.TrimSpace(value),
		Required: true,
	}
}

// WithMinLength sets minimum length in characters
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length in characters
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}

	length := utf8.RuneCountInString(v.Value)
	if v.MinLen > 0 && length < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && length > v.MaxLen {
		return false
	}
	return true
}

// AllPresent reports whether every value is non-blank
func AllPresent(values ...string) bool {
	for _, value := range values {
		if !NewStringValidation(value).Validate() {
			return false
		}
	}
	return true
}

// NumericValidation checks a number against inclusive bounds
type NumericValidation struct {
	Value float64
	Min   float64
	Max   float64
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value float64) *NumericValidation {
	return &NumericValidation{Value: value, Min: -1 << 53, Max: 1 << 53}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min float64) *NumericValidation {
	v.Min = min
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max float64) *NumericValidation {
	v.Max = max
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	return v.Value >= v.Min && v.Value <= v.Max
}
