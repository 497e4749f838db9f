package domain

// Currency is a price display mode
type Currency string

const (
	CurrencyAuto Currency = "AUTO"
	CurrencyUSD  Currency = "USD"
	CurrencySYP  Currency = "SYP"
)

// Next returns the following mode in the AUTO -> USD -> SYP -> AUTO cycle
func (c Currency) Next() Currency {
	switch c {
	case CurrencyAuto, "":
		return CurrencyUSD
	case CurrencyUSD:
		return CurrencySYP
	default:
		return CurrencyAuto
	}
}

// Valid reports whether c is one of the known modes
func (c Currency) Valid() bool {
	return c == CurrencyAuto || c == CurrencyUSD || c == CurrencySYP
}

// ResolveCurrency returns the effective display currency for a user.
// An absent preference falls back to the global default; AUTO resolves to
// SYP when an exchange rate is configured and to USD otherwise.
func ResolveCurrency(pref, fallback Currency, rateSet bool) Currency {
	if pref == "" {
		pref = fallback
	}
	if pref == "" || pref == CurrencyAuto {
		if rateSet {
			return CurrencySYP
		}
		return CurrencyUSD
	}
	return pref
}
