package domain

import "github.com/shopspring/decimal"

func init() {
	// EXCHANGE_RATE is persisted as a bare JSON number
	decimal.MarshalJSONWithoutQuotes = true
}

// TokenPlaceholder is the BOT_TOKEN value written into a fresh config document
const TokenPlaceholder = "PUT_YOUR_BOT_TOKEN_HERE"

// BotStatus switches the bot on or off for non-admin users
type BotStatus string

const (
	BotOn  BotStatus = "on"
	BotOff BotStatus = "off"
)

// Settings is the persisted config document
type Settings struct {
	BotToken        string              `json:"BOT_TOKEN"`
	AdminIDs        []int64             `json:"ADMIN_IDS"`
	BotStatus       BotStatus           `json:"BOT_STATUS"`
	AllowLinks      bool                `json:"ALLOW_LINKS"`
	ExchangeRate    decimal.NullDecimal `json:"EXCHANGE_RATE"`
	CurrencyDefault Currency            `json:"CURRENCY_DEFAULT"`
	ButtonLayout    Layout              `json:"BUTTON_LAYOUT"`
}

// DefaultSettings returns the config document written on first run
func DefaultSettings() Settings {
	return Settings{
		BotToken:        TokenPlaceholder,
		AdminIDs:        []int64{},
		BotStatus:       BotOn,
		CurrencyDefault: CurrencyAuto,
		ButtonLayout:    Layout{Type: LayoutVertical, GridColumns: 2},
	}
}

// Rate returns the configured exchange rate or nil
func (s Settings) Rate() *decimal.Decimal {
	if !s.ExchangeRate.Valid {
		return nil
	}
	rate := s.ExchangeRate.Decimal
	return &rate
}

// IsStaticAdmin reports whether id is listed in ADMIN_IDS
func (s Settings) IsStaticAdmin(id int64) bool {
	for _, adminID := range s.AdminIDs {
		if adminID == id {
			return true
		}
	}
	return false
}

// Enabled reports whether the bot serves non-admin users
func (s Settings) Enabled() bool {
	return s.BotStatus != BotOff
}
