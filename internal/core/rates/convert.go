package rates

import (
	"strings"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// sentDecimals is the precision of every amount sent, matching the
// amount_sent column.
const sentDecimals = 2

// Convert applies an already-rounded rate. Forward multiplies the amount sent;
// backward divides the amount received and rounds to cents.
func Convert(amount decimal.Decimal, direction domain.ConvertDirection, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return decimal.Zero
	}
	if direction == domain.DirectionBackward {
		return amount.Div(rate).Round(sentDecimals)
	}
	return amount.Mul(rate)
}

// ParseAmount reads a user-typed amount. It keeps only digits and separators,
// then decides which separator is the decimal one: the last kind when both
// appear, otherwise a single occurrence. A separator repeated on its own is a
// thousands separator. Anything unparseable is zero.
func ParseAmount(input string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			return r
		}
		return -1
	}, input)
	if cleaned == "" {
		return decimal.Zero
	}

	dots := strings.Count(cleaned, ".")
	commas := strings.Count(cleaned, ",")

	switch {
	case dots > 0 && commas > 0:
		if strings.LastIndex(cleaned, ",") > strings.LastIndex(cleaned, ".") {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case commas == 1:
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case commas > 1:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case dots > 1:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
