package response

import "github.com/shopspring/decimal"

// money renders amounts with two decimals; clients never see floats.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}
