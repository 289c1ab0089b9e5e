// Package format renders money, dates and phone numbers in the fixed
// Brazilian conventions used across the API and the freelancer messages.
//
// Nothing here reads the host locale; output is identical on every machine.
package format

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	currencySymbol    = "R$"
	groupSeparator    = "."
	decimalSeparator  = ","
	dateLayout        = "02/01/2006"
	dateTimeLayout    = "02/01/2006 15:04"
	mobilePhoneDigits = 11
)

// Currency renders amount as "R$ 1.234,56" (negative: "-R$ 1.234,56").
// The amount is rounded half away from zero to two fraction digits.
func Currency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	fixed := rounded.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	out := currencySymbol + " " + groupThousands(intPart) + decimalSeparator + fracPart
	if rounded.IsNegative() {
		return "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Date renders t as DD/MM/YYYY.
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// DateTime renders t as DD/MM/YYYY HH:MM.
func DateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// Phone formats an 11-digit Brazilian mobile number as "(DD) DDDDD-DDDD".
// Any other input is returned unchanged.
func Phone(raw string) string {
	digits := Digits(raw)
	if len(digits) != mobilePhoneDigits {
		return raw
	}
	return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
}

// Digits keeps only the ASCII digits of s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
