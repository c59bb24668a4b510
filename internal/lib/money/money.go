// Package money converts between user-entered amounts, integer minor
// currency units (cents) and display strings.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MinorUnitExponent is the number of decimal places in a major unit (cents).
const MinorUnitExponent = 2

var (
	// ErrNegative is returned for amounts below zero.
	ErrNegative = errors.New("amount must not be negative")

	// ErrOverflow is returned when the amount does not fit in int64 minor units.
	ErrOverflow = errors.New("amount is too large")

	maxMinor = decimal.NewFromInt(math.MaxInt64)

	minorPerMajor = decimal.New(1, MinorUnitExponent)
)

// ParseMinorUnits parses a major-unit amount such as "15.50" into minor
// units (1550). Fractional cents are rounded half away from zero, so the
// result is always round(amount * 100).
func ParseMinorUnits(raw string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return ToMinorUnits(d)
}

// ToMinorUnits converts a major-unit decimal into minor units.
func ToMinorUnits(major decimal.Decimal) (int64, error) {
	if major.IsNegative() {
		return 0, ErrNegative
	}
	minor := major.Shift(MinorUnitExponent).Round(0)
	if minor.GreaterThan(maxMinor) {
		return 0, ErrOverflow
	}
	return minor.IntPart(), nil
}

// ToMajor converts minor units back into a major-unit decimal: 1550 -> 15.5.
func ToMajor(minor int64) decimal.Decimal {
	return decimal.New(minor, -MinorUnitExponent)
}

// FormatPlain renders minor units as a plain two-decimal number ("15.50"),
// suitable for prefilling numeric form inputs.
func FormatPlain(minor int64) string {
	return ToMajor(minor).StringFixed(MinorUnitExponent)
}

// Formatter renders minor units as localized currency strings.
type Formatter struct {
	printer *message.Printer
	symbol  string
	decimal string
}

// NewFormatter builds a Formatter for a BCP 47 locale and a currency symbol.
func NewFormatter(locale, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return newFormatter(message.NewPrinter(tag), symbol), nil
}

func newFormatter(printer *message.Printer, symbol string) *Formatter {
	// "1.5" in the locale, reduced to its separator.
	sample := printer.Sprintf("%v", number.Decimal(1.5, number.Scale(1)))
	sep := strings.TrimSuffix(strings.TrimPrefix(sample, "1"), "5")
	if sep == "" {
		sep = "."
	}
	return &Formatter{printer: printer, symbol: symbol, decimal: sep}
}

// DefaultFormatter renders US dollars: 123456 -> "$1,234.56".
func DefaultFormatter() *Formatter {
	return newFormatter(message.NewPrinter(language.AmericanEnglish), "$")
}

// Format renders an amount in minor units: 1550 -> "$15.50".
//
// The whole and fractional parts are split on integers, so every int64
// renders exactly; only the grouping of the whole part is localized.
func (f *Formatter) Format(minor int64) string {
	sign := ""
	amount := decimal.NewFromInt(minor)
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	whole, cents := amount.QuoRem(minorPerMajor, 0)

	return fmt.Sprintf("%s%s%s%s%02d",
		sign,
		f.symbol,
		f.printer.Sprintf("%v", number.Decimal(whole.IntPart())),
		f.decimal,
		cents.IntPart(),
	)
}
