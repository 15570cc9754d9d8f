package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"agrimart/internal/domain"
	"agrimart/internal/price"
)

// Store holds the single shopping cart: line items in insertion order, keyed
// by product id, with totals recomputed by full scan after every mutation.
// Carts are user-bounded small, so the scan keeps the two scalars trivially
// consistent with the line set instead of maintaining them incrementally.
//
// Every mutator is a total function over cart state: unknown product ids and
// out-of-range quantities degrade to a no-op, reported through the returned
// applied flag so a stricter caller can still detect them.
type Store struct {
	mu          sync.Mutex
	lines       []domain.CartLine
	totalItems  int
	totalAmount int64
	open        bool
}

func NewStore() *Store {
	return &Store{}
}

// Add puts quantity units of the product in the cart. If a line for the
// product already exists the quantity merges into it and the line total is
// recomputed from the passed product's current price, so a re-add with a
// fresher catalog snapshot corrects a stale unit price instead of
// compounding it. Quantity <= 0 is a no-op.
func (s *Store) Add(p domain.Product, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	unit := price.Parse(p.Price)
	if i := s.find(p.ID); i >= 0 {
		line := &s.lines[i]
		line.Quantity += quantity
		line.UnitPrice = unit
		line.TotalPrice = int64(line.Quantity) * unit
	} else {
		s.lines = append(s.lines, domain.CartLine{
			ID:         uuid.NewString(),
			Product:    p,
			Quantity:   quantity,
			UnitPrice:  unit,
			TotalPrice: int64(quantity) * unit,
			AddedAt:    time.Now(),
		})
	}
	s.recompute()
	return true
}

// Remove deletes the line for the product id. Absent id is a no-op.
func (s *Store) Remove(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(productID)
}

// SetQuantity replaces a line's quantity. Quantity <= 0 is the removal
// signal, not an error. Absent id is a no-op.
func (s *Store) SetQuantity(productID, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(productID)
	}
	i := s.find(productID)
	if i < 0 {
		return false
	}
	line := &s.lines[i]
	line.Quantity = quantity
	line.TotalPrice = int64(quantity) * line.UnitPrice
	s.recompute()
	return true
}

// Increment adjusts an existing line up by one. A product not yet in the
// cart is a no-op; adding new products goes through Add.
func (s *Store) Increment(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(productID)
	if i < 0 {
		return false
	}
	line := &s.lines[i]
	line.Quantity++
	line.TotalPrice = int64(line.Quantity) * line.UnitPrice
	s.recompute()
	return true
}

// Decrement adjusts an existing line down by one; going below one removes
// the line, so a quantity <= 0 line never exists.
func (s *Store) Decrement(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(productID)
	if i < 0 {
		return false
	}
	line := &s.lines[i]
	if line.Quantity <= 1 {
		return s.removeLocked(productID)
	}
	line.Quantity--
	line.TotalPrice = int64(line.Quantity) * line.UnitPrice
	s.recompute()
	return true
}

// Clear empties all lines and zeroes the totals.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.recompute()
}

// ApplyDiscount subtracts a flat amount from the cart total, floored at
// zero. Line totals are untouched; the discount lives only on the aggregate
// and does not survive the recompute of the next mutation.
func (s *Store) ApplyDiscount(amount int64) bool {
	if amount <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalAmount -= amount
	if s.totalAmount < 0 {
		s.totalAmount = 0
	}
	return true
}

// Open, Close and Toggle drive the cart drawer visibility flag. UI state
// only, carried alongside the cart so one snapshot feeds the whole view.
func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
}

func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

func (s *Store) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
}

// Snapshot returns a deep copy of the cart; callers may not reach store
// state through it.
func (s *Store) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)
	return domain.Cart{
		Lines:       lines,
		TotalItems:  s.totalItems,
		TotalAmount: s.totalAmount,
		Open:        s.open,
	}
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalItems
}

func (s *Store) TotalAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalAmount
}

func (s *Store) find(productID int) int {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) removeLocked(productID int) bool {
	i := s.find(productID)
	if i < 0 {
		return false
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.recompute()
	return true
}

// recompute restores the totals invariant from the full line set. Runs after
// every mutation.
func (s *Store) recompute() {
	items := 0
	var amount int64
	for i := range s.lines {
		items += s.lines[i].Quantity
		amount += s.lines[i].TotalPrice
	}
	s.totalItems = items
	s.totalAmount = amount
}
