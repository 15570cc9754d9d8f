package product

import (
	"context"
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"agrimart/internal/domain"
)

// memoryRepo keeps the catalog for the lifetime of the process. There is no
// durable backing by contract; a restart starts from an empty (or re-seeded)
// catalog.
type memoryRepo struct {
	mu       sync.RWMutex
	products map[int]domain.Product
	nextID   int
	logger   *log.Logger
}

func NewMemory(logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &memoryRepo{
		products: make(map[int]domain.Product),
		nextID:   1,
		logger:   logger,
	}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, p)
	}
	sortByNewest(result)
	return result, nil
}

func (r *memoryRepo) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	if category == "" || category == domain.CategoryAll {
		return r.List(ctx)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Product
	for _, p := range r.products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	sortByNewest(result)
	return result, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memoryRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.nextID
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.products[p.ID] = p
	r.logger.Printf("product repo: create id=%d name=%q", p.ID, p.Name)
	return &p, nil
}

func (r *memoryRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.products[p.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	r.products[p.ID] = p
	r.logger.Printf("product repo: update id=%d", p.ID)
	return &p, nil
}

func (r *memoryRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	r.logger.Printf("product repo: delete id=%d", id)
	return nil
}

// sortByNewest mirrors the catalog listing order of the backing store the
// repo replaces: newest first, id as tiebreaker for equal timestamps.
func sortByNewest(products []domain.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].ID > products[j].ID
		}
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}
