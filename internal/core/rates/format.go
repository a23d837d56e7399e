package rates

import (
	"strings"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	thousandsSep = "."
	decimalSep   = ","
)

// FormatRate renders a rate of source -> target the way receipts show it.
func FormatRate(value decimal.Decimal, source, target domain.Region) string {
	return FormatRateWith(value, domain.LookupPairConfig(source, target))
}

// FormatRateWith renders value with the pair's decimals.
func FormatRateWith(value decimal.Decimal, pc domain.PairConfig) string {
	return FormatAmount(value, pc.Decimals)
}

// FormatAmount renders value in Venezuelan Spanish notation with exactly
// decimals fraction digits: 1234567.891 with 2 decimals is "1.234.567,89".
func FormatAmount(value decimal.Decimal, decimals int32) string {
	if decimals < 0 {
		decimals = 0
	}
	rounded := value.Round(decimals)
	fixed := rounded.Abs().StringFixed(decimals)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart))
	if decimals > 0 {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
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
			b.WriteString(thousandsSep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
