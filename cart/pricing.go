package cart

import (
	"github.com/shopspring/decimal"

	"github.com/cardapio-digital/restaurante-api/models"
)

// UnitPrice is the product base price plus the extra price of every selected
// option, rounded to two decimal places.
func UnitPrice(product models.Product, options []models.Option) decimal.Decimal {
	price := product.BasePrice
	for _, o := range options {
		price = price.Add(o.ExtraPrice)
	}
	return price.Round(2)
}

// Total sums every line total. An empty cart totals to zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.items {
		total = total.Add(li.LineTotal())
	}
	return total.Round(2)
}
