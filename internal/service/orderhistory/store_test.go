package orderhistory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrimart/internal/domain"
)

func checkoutInfo() (domain.CustomerInfo, domain.ShippingAddress) {
	return domain.CustomerInfo{FullName: "Ali Khan", Email: "ali@example.com", Phone: "03001234567"},
		domain.ShippingAddress{Country: "Pakistan", State: "Punjab", District: "Lahore", City: "Lahore", Address: "12 Canal Road", PostalCode: "54000"}
}

func ureaLine(qty int) domain.CartLine {
	return domain.CartLine{
		ID:         "line-1",
		Product:    domain.Product{ID: 1, Name: "Urea", Category: domain.CategoryFertilizers, Price: "PKR 1200"},
		Quantity:   qty,
		UnitPrice:  1200,
		TotalPrice: int64(qty) * 1200,
	}
}

func lambdaLine(qty int) domain.CartLine {
	return domain.CartLine{
		ID:         "line-2",
		Product:    domain.Product{ID: 2, Name: "Lambda Cyhalothrin", Category: domain.CategoryPesticides, Price: "700"},
		Quantity:   qty,
		UnitPrice:  700,
		TotalPrice: int64(qty) * 700,
	}
}

func TestAddOrderFromCart(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()

	order := s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(2), lambdaLine(1)}, 3100, 3)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 3, order.TotalItems)
	assert.Equal(t, int64(3100), order.TotalAmount)
	assert.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.Products, 2)
	assert.Equal(t, domain.OrderedProduct{
		ProductID: 1, Name: "Urea", Category: domain.CategoryFertilizers,
		Quantity: 2, UnitPrice: 1200, TotalPrice: 2400,
	}, order.Products[0])
	assert.Equal(t, int64(700), order.Products[1].TotalPrice)
}

func TestOrdersAreMostRecentFirst(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()

	first := s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(1)}, 1200, 1)
	second := s.AddOrderFromCart(customer, shipping, []domain.CartLine{lambdaLine(1)}, 700, 1)

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestOrderSnapshotIndependence(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()
	lines := []domain.CartLine{ureaLine(2)}

	order := s.AddOrderFromCart(customer, shipping, lines, 2400, 2)

	// Mutate the source lines after checkout; the order must not notice.
	lines[0].Quantity = 99
	lines[0].TotalPrice = 1
	lines[0].Product.Name = "changed"

	stored, ok := s.Get(order.ID)
	require.True(t, ok)
	assert.Equal(t, 2, stored.Products[0].Quantity)
	assert.Equal(t, int64(2400), stored.Products[0].TotalPrice)
	assert.Equal(t, "Urea", stored.Products[0].Name)
}

func TestReturnedOrdersAreDetached(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()
	s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(1)}, 1200, 1)

	orders := s.Orders()
	orders[0].Status = domain.OrderStatusCancelled
	orders[0].Products[0].Quantity = 42

	fresh := s.Orders()
	assert.Equal(t, domain.OrderStatusPending, fresh[0].Status)
	assert.Equal(t, 1, fresh[0].Products[0].Quantity)
}

func TestUpdateStatus(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()
	order := s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(1)}, 1200, 1)

	require.True(t, s.UpdateStatus(order.ID, domain.OrderStatusShipped))

	stored, ok := s.Get(order.ID)
	require.True(t, ok)
	assert.Equal(t, domain.OrderStatusShipped, stored.Status)
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt) || stored.UpdatedAt.Equal(stored.CreatedAt))
	assert.Equal(t, domain.OrderStatusShipped, s.Filtered()[0].Status, "filtered projection must stay in sync")

	// any -> any is permitted
	require.True(t, s.UpdateStatus(order.ID, domain.OrderStatusPending))
	stored, _ = s.Get(order.ID)
	assert.Equal(t, domain.OrderStatusPending, stored.Status)
}

func TestUpdateStatusUnknownIDIsNoOp(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()
	s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(1)}, 1200, 1)
	before := s.Orders()

	assert.False(t, s.UpdateStatus("NOPE", domain.OrderStatusShipped))
	assert.Equal(t, before, s.Orders())
}

func TestStagedFiltersANDComposition(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()
	pending := s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(1)}, 1200, 1)
	shipped := s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(1)}, 1200, 1)
	require.True(t, s.UpdateStatus(shipped.ID, domain.OrderStatusShipped))

	product := "urea"
	status := "pending"
	s.SetFilters(FilterUpdate{Product: &product})
	s.SetFilters(FilterUpdate{Status: &status})

	// staged, not yet applied
	assert.Len(t, s.Filtered(), 2)

	s.ApplyFilters()
	filtered := s.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, pending.ID, filtered[0].ID)
}

func TestApplyFiltersWithNoCriteriaReturnsAll(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()
	s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(1)}, 1200, 1)
	s.AddOrderFromCart(customer, shipping, []domain.CartLine{lambdaLine(1)}, 700, 1)

	s.ApplyFilters()
	assert.Len(t, s.Filtered(), 2)
}

func TestFilterByOrderIDSubstring(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()
	order := s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(1)}, 1200, 1)
	s.AddOrderFromCart(customer, shipping, []domain.CartLine{lambdaLine(1)}, 700, 1)

	needle := order.ID[4:] // the part after "ORD-"
	s.SetFilters(FilterUpdate{OrderID: &needle})
	s.ApplyFilters()

	filtered := s.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, order.ID, filtered[0].ID)
}

func TestResetFilters(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()
	s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(1)}, 1200, 1)
	s.AddOrderFromCart(customer, shipping, []domain.CartLine{lambdaLine(1)}, 700, 1)

	product := "lambda"
	s.SetFilters(FilterUpdate{Product: &product})
	s.ApplyFilters()
	require.Len(t, s.Filtered(), 1)

	s.ResetFilters()
	assert.Len(t, s.Filtered(), 2)
	assert.Equal(t, Filters{}, s.StagedFilters())
}

func TestFilterByStatusOneShot(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()
	s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(1)}, 1200, 1)
	shipped := s.AddOrderFromCart(customer, shipping, []domain.CartLine{lambdaLine(1)}, 700, 1)
	require.True(t, s.UpdateStatus(shipped.ID, domain.OrderStatusShipped))

	s.FilterByStatus("shipped")
	filtered := s.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, shipped.ID, filtered[0].ID)

	s.FilterByStatus("All")
	assert.Len(t, s.Filtered(), 2)
}

func TestSortByDate(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()
	first := s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(1)}, 1200, 1)
	time.Sleep(time.Millisecond)
	second := s.AddOrderFromCart(customer, shipping, []domain.CartLine{lambdaLine(1)}, 700, 1)
	s.ResetFilters()

	s.SortByDate(true)
	filtered := s.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, first.ID, filtered[0].ID)

	s.SortByDate(false)
	filtered = s.Filtered()
	assert.Equal(t, second.ID, filtered[0].ID)

	// sorting touches the projection only
	assert.Equal(t, second.ID, s.Orders()[0].ID)
}

func TestSelectedOrder(t *testing.T) {
	s := NewStore()
	customer, shipping := checkoutInfo()
	order := s.AddOrderFromCart(customer, shipping, []domain.CartLine{ureaLine(1)}, 1200, 1)

	assert.Nil(t, s.Selected())

	s.SetSelected(&order)
	selected := s.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, order.ID, selected.ID)

	require.True(t, s.UpdateStatus(order.ID, domain.OrderStatusDelivered))
	assert.Equal(t, domain.OrderStatusDelivered, s.Selected().Status)

	s.SetSelected(nil)
	assert.Nil(t, s.Selected())
}
