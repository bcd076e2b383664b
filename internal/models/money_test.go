package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "integer", input: "10", expected: "10.00"},
		{name: "two decimals", input: "12.34", expected: "12.34"},
		{name: "surrounding spaces", input: "  5.5 ", expected: "5.50"},
		{name: "zero parses", input: "0", expected: "0.00"},
		{name: "negative parses", input: "-3", expected: "-3.00"},
		{name: "letters", input: "abc", expectError: true},
		{name: "empty", input: "", expectError: true},
		{name: "currency symbol", input: "$10", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, amount.StringFixed(2))
		})
	}
}

func TestParseAmountOrZero(t *testing.T) {
	assert.True(t, ParseAmountOrZero("abc").IsZero())
	assert.True(t, ParseAmountOrZero("").IsZero())
	assert.Equal(t, "7.25", ParseAmountOrZero("7.25").String())
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "$15.00", FormatMoney(decimal.NewFromInt(15), "$"))
	assert.Equal(t, "€0.10", FormatMoney(decimal.RequireFromString("0.1"), "€"))
	assert.Equal(t, "50.0", FormatPercent(decimal.NewFromInt(50)))
	assert.Equal(t, "33.3", FormatPercent(decimal.RequireFromString("33.3333333")))
}

func TestExpenseEqual(t *testing.T) {
	a := NewExpense("2024-01-01", CategoryFood, decimal.RequireFromString("10.00"), "lunch")
	b := NewExpense("2024-01-01", CategoryFood, decimal.NewFromInt(10), "lunch")
	c := NewExpense("2024-01-01", CategoryFood, decimal.NewFromInt(11), "lunch")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestSummaryHelpers(t *testing.T) {
	s := Summary{
		Total: decimal.NewFromInt(30),
		Count: 3,
		Categories: []CategoryTotal{
			{Category: CategoryFood, Amount: decimal.NewFromInt(15)},
			{Category: CategoryTransport, Amount: decimal.NewFromInt(15)},
		},
	}
	assert.True(t, s.CategorySum().Equal(s.Total))

	food, ok := s.Lookup(CategoryFood)
	assert.True(t, ok)
	assert.Equal(t, "15", food.Amount.String())

	_, ok = s.Lookup(CategoryUtilities)
	assert.False(t, ok)
}

func TestDefaultCategories(t *testing.T) {
	assert.Equal(t,
		[]string{CategoryFood, CategoryTransport, CategoryUtilities, CategoryOther},
		CategoryNames(DefaultCategories()))
}
