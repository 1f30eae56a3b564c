package catalog

import (
	"fmt"

	"veyra-io/estates-web/models"
)

const (
	crore = 1_00_00_000
	lakh  = 1_00_000
)

// PriceOnRequest is the fallback shown whenever no numeric amount is stated.
const PriceOnRequest = "Price on Request"

// CurrencySymbol maps the supported currencies to their display symbol.
func CurrencySymbol(c models.Currency) string {
	switch c {
	case models.CurrencyUSD:
		return "$"
	case models.CurrencyEUR:
		return "€"
	default:
		return "₹"
	}
}

// FormatPrice renders the canonical price display. DisplayText wins verbatim
// over any computed value; amounts of one crore and above are scaled to
// Crore, smaller amounts to Lakh.
func FormatPrice(p models.Price) string {
	if p.DisplayText != "" {
		return p.DisplayText
	}
	if p.Amount == nil {
		return PriceOnRequest
	}

	sym := CurrencySymbol(p.Currency)
	if *p.Amount >= crore {
		return fmt.Sprintf("%s%.2f Crore", sym, *p.Amount/crore)
	}
	return fmt.Sprintf("%s%.2f Lakh", sym, *p.Amount/lakh)
}
