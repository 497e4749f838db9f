package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// SYPLabel is appended to prices rendered in Syrian pounds
const SYPLabel = "ل.س"

var pricePattern = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*\$`)

// fractionEpsilon treats converted amounts this close to an integer as whole
var fractionEpsilon = decimal.NewFromFloat(0.001)

// RenderPrices rewrites every "<number>$" token in text for the target currency.
// Without a rate SYP falls back to the USD rendering. Any other target leaves
// tokens untouched.
func RenderPrices(text string, target Currency, rate *decimal.Decimal) string {
	if target != CurrencyUSD && target != CurrencySYP {
		return text
	}

	return pricePattern.ReplaceAllStringFunc(text, func(token string) string {
		m := pricePattern.FindStringSubmatch(token)
		value, err := decimal.NewFromString(m[1])
		if err != nil {
			return token
		}
		if target == CurrencySYP && rate != nil {
			return FormatAmount(value.Mul(*rate)) + " " + SYPLabel
		}
		return value.String() + "$"
	})
}

// FormatAmount formats n with thousands separators, keeping two decimals only
// when n has a fractional part
func FormatAmount(n decimal.Decimal) string {
	whole := n.Truncate(0)
	if n.Sub(whole).Abs().LessThan(fractionEpsilon) {
		return groupThousands(whole.String())
	}
	return groupThousands(n.StringFixed(2))
}

// groupThousands inserts commas into the integer part of a plain decimal string
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// PriceView renders prices for one user
type PriceView struct {
	Currency Currency
	Rate     *decimal.Decimal
}

// Render rewrites the price tokens in text
func (v PriceView) Render(text string) string {
	return RenderPrices(text, v.Currency, v.Rate)
}
