package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"5", "R$ 5,00"},
		{"0.5", "R$ 0,50"},
		{"999.99", "R$ 999,99"},
		{"1000", "R$ 1.000,00"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"2.005", "R$ 2,01"},
		{"100000", "R$ 100.000,00"},
		{"-30", "-R$ 30,00"},
		{"-1234.5", "-R$ 1.234,50"},
		{"-0.001", "R$ 0,00"},
	}
	for _, tt := range tests {
		got := Currency(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got, "Currency(%s)", tt.in)
	}
}

func TestDateAndDateTime(t *testing.T) {
	ts := time.Date(2099, time.January, 1, 7, 5, 0, 0, time.UTC)
	assert.Equal(t, "01/01/2099", Date(ts))
	assert.Equal(t, "01/01/2099 07:05", DateTime(ts))

	ts = time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "31/12/2024", Date(ts))
	assert.Equal(t, "31/12/2024 23:59", DateTime(ts))
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"11987654321", "(11) 98765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
		{"11 9 8765 4321", "(11) 98765-4321"},
		{"1187654321", "1187654321"},
		{"+55 11 98765-4321", "+55 11 98765-4321"},
		{"", ""},
		{"sem telefone", "sem telefone"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Phone(tt.in), "Phone(%q)", tt.in)
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "5511987654321", Digits("+55 (11) 98765-4321"))
	assert.Equal(t, "", Digits("abc"))
}
