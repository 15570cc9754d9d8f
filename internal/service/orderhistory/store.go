package orderhistory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"agrimart/internal/domain"
)

// Filters are the three staged predicates over order history. They combine
// with AND and only take effect once ApplyFilters runs, so a caller can
// accumulate several edits before paying for one filter pass.
type Filters struct {
	Product string `json:"product"`
	Status  string `json:"status"`
	OrderID string `json:"orderId"`
}

// FilterUpdate carries only the predicates being changed; nil keeps the
// staged value.
type FilterUpdate struct {
	Product *string
	Status  *string
	OrderID *string
}

// Store converts completed carts into immutable order records and serves
// filtered projections of the history. It never reads the live cart; checkout
// hands it a snapshot, so later cart mutation cannot reach into an order.
type Store struct {
	mu       sync.Mutex
	orders   []domain.Order
	filtered []domain.Order
	selected *domain.Order
	filters  Filters
}

func NewStore() *Store {
	return &Store{}
}

// AddOrderFromCart freezes the given cart lines and totals into a new order:
// status Pending, generated id, creation timestamp, each line copied into an
// ordered-product record with its own captured quantity and prices. The new
// order is prepended; history is most-recent-first. Totals are copied as-is
// and stay authoritative; they are never re-derived from the product list.
func (s *Store) AddOrderFromCart(customer domain.CustomerInfo, shipping domain.ShippingAddress, lines []domain.CartLine, totalAmount int64, totalItems int) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	products := make([]domain.OrderedProduct, 0, len(lines))
	for _, line := range lines {
		products = append(products, domain.OrderedProduct{
			ProductID:  line.Product.ID,
			Name:       line.Product.Name,
			Category:   line.Product.Category,
			Image:      line.Product.Image,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
		})
	}
	order := domain.Order{
		ID:          newOrderID(),
		Customer:    customer,
		Shipping:    shipping,
		Status:      domain.OrderStatusPending,
		Products:    products,
		TotalItems:  totalItems,
		TotalAmount: totalAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.orders = append([]domain.Order{order}, s.orders...)
	s.filtered = append([]domain.Order{cloneOrder(order)}, s.filtered...)
	return cloneOrder(order)
}

// UpdateStatus moves an order to the given status, in the canonical list and
// the filtered projection both. Unknown order id is a no-op.
func (s *Store) UpdateStatus(orderID string, status domain.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	applied := false
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = now
			applied = true
			break
		}
	}
	if !applied {
		return false
	}
	for i := range s.filtered {
		if s.filtered[i].ID == orderID {
			s.filtered[i].Status = status
			s.filtered[i].UpdatedAt = now
			break
		}
	}
	if s.selected != nil && s.selected.ID == orderID {
		s.selected.Status = status
		s.selected.UpdatedAt = now
	}
	return true
}

// SetSelected records the order a detail view is showing; nil clears it.
func (s *Store) SetSelected(order *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order == nil {
		s.selected = nil
		return
	}
	o := cloneOrder(*order)
	s.selected = &o
}

func (s *Store) Selected() *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	o := cloneOrder(*s.selected)
	return &o
}

// SetFilters stages filter edits without recomputing the projection.
func (s *Store) SetFilters(update FilterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if update.Product != nil {
		s.filters.Product = *update.Product
	}
	if update.Status != nil {
		s.filters.Status = *update.Status
	}
	if update.OrderID != nil {
		s.filters.OrderID = *update.OrderID
	}
}

func (s *Store) StagedFilters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// ApplyFilters recomputes the filtered projection by ANDing the staged
// predicates: case-insensitive substring on any ordered product name,
// case-insensitive exact status, case-insensitive substring on order id.
// Empty predicates match everything.
func (s *Store) ApplyFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if matchesFilters(order, s.filters) {
			result = append(result, cloneOrder(order))
		}
	}
	s.filtered = result
}

// ResetFilters clears all three predicates and restores the full list.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = Filters{}
	s.filtered = cloneOrders(s.orders)
}

// FilterByStatus is the one-shot status filter. It bypasses the staged
// mechanism entirely; "all" is the sentinel for no filtering.
func (s *Store) FilterByStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.EqualFold(status, "all") {
		s.filtered = cloneOrders(s.orders)
		return
	}
	result := make([]domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if strings.EqualFold(string(order.Status), status) {
			result = append(result, cloneOrder(order))
		}
	}
	s.filtered = result
}

// SortByDate reorders the current filtered projection by creation time. The
// canonical list keeps its most-recent-first insertion order.
func (s *Store) SortByDate(ascending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sort.SliceStable(s.filtered, func(i, j int) bool {
		if ascending {
			return s.filtered[i].CreatedAt.Before(s.filtered[j].CreatedAt)
		}
		return s.filtered[i].CreatedAt.After(s.filtered[j].CreatedAt)
	})
}

// Orders returns a detached copy of the canonical history, newest first.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrders(s.orders)
}

// Filtered returns a detached copy of the current filtered projection.
func (s *Store) Filtered() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrders(s.filtered)
}

// Get looks an order up by id in the canonical list.
func (s *Store) Get(orderID string) (*domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			o := cloneOrder(s.orders[i])
			return &o, true
		}
	}
	return nil, false
}

func matchesFilters(order domain.Order, f Filters) bool {
	if product := strings.TrimSpace(f.Product); product != "" {
		found := false
		for _, p := range order.Products {
			if containsFold(p.Name, product) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if status := strings.TrimSpace(f.Status); status != "" {
		if !strings.EqualFold(string(order.Status), status) {
			return false
		}
	}
	if id := strings.TrimSpace(f.OrderID); id != "" {
		if !containsFold(order.ID, id) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// newOrderID is a random scheme rather than the timestamp-derived one a
// rapid double-submit could collide on.
func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

func cloneOrder(o domain.Order) domain.Order {
	products := make([]domain.OrderedProduct, len(o.Products))
	copy(products, o.Products)
	o.Products = products
	return o
}

func cloneOrders(orders []domain.Order) []domain.Order {
	result := make([]domain.Order, len(orders))
	for i, o := range orders {
		result[i] = cloneOrder(o)
	}
	return result
}
