package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Value
		wantOK bool
	}{
		{name: "integer", raw: "40", want: Num(40), wantOK: true},
		{name: "decimal", raw: "12.5", want: Num(12.5), wantOK: true},
		{name: "padded", raw: "  7 ", want: Num(7), wantOK: true},
		{name: "blank", raw: "", want: Unset(), wantOK: true},
		{name: "whitespace only", raw: "   ", want: Unset(), wantOK: true},
		{name: "text", raw: "absent", want: Unset(), wantOK: false},
		{name: "nan literal", raw: "NaN", want: Unset(), wantOK: false},
		{name: "inf literal", raw: "Inf", want: Unset(), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseValue(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, 0.0, Unset().Or(0))
	assert.Equal(t, 3.0, Num(3).Or(0))
	assert.False(t, Unset().IsSet())
	assert.Equal(t, "", Unset().String())
	assert.Equal(t, "80", Num(80).String())
}

func TestRound(t *testing.T) {
	assert.Equal(t, 66.67, Round(200.0/3, 2))
	assert.Equal(t, 80.0, Round(80, 0))
	assert.Equal(t, 2.0, Round(2.5, 0))
	assert.Equal(t, 4.0, Round(3.5, 0))
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name   string
		part   Value
		whole  Value
		places int
		want   float64
	}{
		{name: "regular", part: Num(40), whole: Num(50), places: 2, want: 80},
		{name: "repeating", part: Num(1), whole: Num(3), places: 2, want: 33.33},
		{name: "zero denominator", part: Num(10), whole: Num(0), places: 2, want: 0},
		{name: "unset denominator", part: Num(10), whole: Unset(), places: 2, want: 0},
		{name: "unset numerator", part: Unset(), whole: Num(50), places: 2, want: 0},
		{name: "over hundred passes through", part: Num(60), whole: Num(50), places: 2, want: 120},
		{name: "whole number rounding", part: Num(2), whole: Num(3), places: 0, want: 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(tt.part, tt.whole, tt.places)
			assert.Equal(t, tt.want, got)
			assert.False(t, math.IsNaN(got))
		})
	}
}
