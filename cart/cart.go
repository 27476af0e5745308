package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cardapio-digital/restaurante-api/models"
)

// LineItem is one configured, quantified instance of a product in a cart.
// The product and option values are snapshots taken when the line was added.
type LineItem struct {
	CartItemID string          `json:"cartItemId"`
	Product    models.Product  `json:"produto"`
	Options    []models.Option `json:"opcoes"`
	Quantity   int             `json:"quantidade"`
	UnitPrice  decimal.Decimal `json:"valorUnitario"`
}

// LineTotal is the unit price multiplied by the quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// newLineItem is the single constructor for cart lines; every line id comes
// from here.
func newLineItem(product models.Product, options []models.Option, quantity int) LineItem {
	return LineItem{
		CartItemID: uuid.NewString(),
		Product:    product,
		Options:    options,
		Quantity:   quantity,
		UnitPrice:  UnitPrice(product, options),
	}
}

// Cart is an ordered sequence of line items. It is not safe for concurrent
// use; Store serializes access per session.
type Cart struct {
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

// AddItem appends a configured product to the cart. When a line with the
// same product and the exact same option set already exists, its quantity is
// incremented instead; any difference in the option set produces a new line.
func (c *Cart) AddItem(product models.Product, options []models.Option, quantity int) (LineItem, error) {
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	for i, li := range c.items {
		if li.Product.ID == product.ID && sameOptionSet(li.Options, options) {
			c.items[i].Quantity += quantity
			return c.items[i], nil
		}
	}
	li := newLineItem(product, options, quantity)
	c.items = append(c.items, li)
	return li, nil
}

// Increment raises the quantity of a line by one.
func (c *Cart) Increment(cartItemID string) (LineItem, error) {
	i := c.index(cartItemID)
	if i < 0 {
		return LineItem{}, ErrLineNotFound
	}
	c.items[i].Quantity++
	return c.items[i], nil
}

// Decrement lowers the quantity of a line by one. A decrement at quantity 1
// removes the line; quantities never go below 1.
func (c *Cart) Decrement(cartItemID string) (LineItem, error) {
	i := c.index(cartItemID)
	if i < 0 {
		return LineItem{}, ErrLineNotFound
	}
	if c.items[i].Quantity <= 1 {
		removed := c.items[i]
		c.items = append(c.items[:i], c.items[i+1:]...)
		removed.Quantity = 0
		return removed, nil
	}
	c.items[i].Quantity--
	return c.items[i], nil
}

// UpdateConfiguration replaces the option selection and quantity of an
// existing line without changing its identity, and reprices it.
func (c *Cart) UpdateConfiguration(cartItemID string, options []models.Option, quantity int) (LineItem, error) {
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	i := c.index(cartItemID)
	if i < 0 {
		return LineItem{}, ErrLineNotFound
	}
	c.items[i].Options = options
	c.items[i].Quantity = quantity
	c.items[i].UnitPrice = UnitPrice(c.items[i].Product, options)
	return c.items[i], nil
}

// Remove deletes a line unconditionally.
func (c *Cart) Remove(cartItemID string) error {
	i := c.index(cartItemID)
	if i < 0 {
		return ErrLineNotFound
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

// Clear empties the cart. Invoked after a confirmed order submission.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) index(cartItemID string) int {
	for i, li := range c.items {
		if li.CartItemID == cartItemID {
			return i
		}
	}
	return -1
}

// sameOptionSet compares two selections as sets of option ids.
func sameOptionSet(a, b []models.Option) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[uint]int, len(a))
	for _, o := range a {
		seen[o.ID]++
	}
	for _, o := range b {
		seen[o.ID]--
		if seen[o.ID] < 0 {
			return false
		}
	}
	return true
}
