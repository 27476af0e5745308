package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/cardapio-digital/restaurante-api/models"
)

// Store holds one in-memory cart per storefront session. Carts live only for
// the process lifetime; a restart drops them, matching the session-local cart
// lifecycle. All methods are safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

func (s *Store) cart(sessionID string) *Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	return c
}

func (s *Store) Add(sessionID string, product models.Product, options []models.Option, quantity int) (LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).AddItem(product, options, quantity)
}

func (s *Store) Increment(sessionID, cartItemID string) (LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Increment(cartItemID)
}

func (s *Store) Decrement(sessionID, cartItemID string) (LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Decrement(cartItemID)
}

func (s *Store) UpdateConfiguration(sessionID, cartItemID string, options []models.Option, quantity int) (LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).UpdateConfiguration(cartItemID, options, quantity)
}

func (s *Store) Remove(sessionID, cartItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Remove(cartItemID)
}

func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Line returns a single line of a session cart.
func (s *Store) Line(sessionID, cartItemID string) (LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	i := c.index(cartItemID)
	if i < 0 {
		return LineItem{}, ErrLineNotFound
	}
	return c.items[i], nil
}

// Items returns the lines of a session cart in insertion order.
func (s *Store) Items(sessionID string) []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Items()
}

// Total returns the session cart total; zero for an unknown session.
func (s *Store) Total(sessionID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Total()
}
