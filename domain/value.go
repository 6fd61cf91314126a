package domain

import (
	"math"
	"strconv"
	"strings"
)

// Value is a numeric cell that may be unset.
// The zero Value is unset.
type Value struct {
	num float64
	set bool
}

// Unset returns a Value with no number.
func Unset() Value {
	return Value{}
}

// Num returns a set Value holding f.
func Num(f float64) Value {
	return Value{num: f, set: true}
}

// Get returns the number and whether it is set.
func (v Value) Get() (float64, bool) {
	return v.num, v.set
}

// IsSet reports whether v holds a number.
func (v Value) IsSet() bool {
	return v.set
}

// Or returns the number, or def when v is unset.
func (v Value) Or(def float64) float64 {
	if !v.set {
		return def
	}
	return v.num
}

func (v Value) String() string {
	if !v.set {
		return ""
	}
	return strconv.FormatFloat(v.num, 'f', -1, 64)
}

// ParseValue coerces a raw cell string into a Value.
//
//	""      → unset, ok
//	" 40 "  → 40, ok
//	"n/a"   → unset, not ok
//
// ok is false only when a non-blank cell could not be read as a finite number.
func ParseValue(raw string) (v Value, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Unset(), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Unset(), false
	}

	return Num(f), true
}

// Round rounds f half-to-even at the given number of decimal places.
func Round(f float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(f*scale) / scale
}

// Percentage returns round(part*100/whole, places).
// The result is 0 when either operand is unset, whole is zero, or the ratio
// is not finite.
func Percentage(part, whole Value, places int) float64 {
	p, ok := part.Get()
	if !ok {
		return 0
	}
	w, ok := whole.Get()
	if !ok || w == 0 {
		return 0
	}

	ratio := p * 100 / w
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0
	}

	return Round(ratio, places)
}
