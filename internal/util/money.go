package util

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatDollars renders an amount the way it is shown to users, e.g. "$1,234.50".
func FormatDollars(amount decimal.Decimal) string {
	return money.NewFromFloat(amount.InexactFloat64(), money.USD).Display()
}
