package catalog

import (
	"context"
	"errors"
	"strings"

	"agrimart/internal/domain"
	productrepo "agrimart/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string
	Category    string
	Price       string
	Image       string
	Rating      float64
	ReviewCount int
	InStock     *bool
}

// UpdateInput carries only the fields the caller wants changed; nil means
// keep the current value.
type UpdateInput struct {
	Name        *string
	Category    *string
	Price       *string
	Image       *string
	Rating      *float64
	ReviewCount *int
	InStock     *bool
}

func (s *Service) List(ctx context.Context, category string) ([]domain.Product, error) {
	cat := domain.Category(strings.TrimSpace(category))
	if cat != "" && !cat.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	return s.repo.ListByCategory(ctx, cat)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name required")
	}
	if strings.TrimSpace(in.Price) == "" {
		return nil, errors.New("price required")
	}
	cat := domain.Category(strings.TrimSpace(in.Category))
	if !cat.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	return s.repo.Create(ctx, domain.Product{
		Name:        name,
		Category:    cat,
		Price:       strings.TrimSpace(in.Price),
		Image:       in.Image,
		Rating:      in.Rating,
		ReviewCount: in.ReviewCount,
		InStock:     in.InStock,
	})
}

func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (*domain.Product, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := *current
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, errors.New("name required")
		}
		next.Name = name
	}
	if in.Category != nil {
		cat := domain.Category(strings.TrimSpace(*in.Category))
		if !cat.Valid() {
			return nil, domain.ErrInvalidCategory
		}
		next.Category = cat
	}
	if in.Price != nil {
		price := strings.TrimSpace(*in.Price)
		if price == "" {
			return nil, errors.New("price required")
		}
		next.Price = price
	}
	if in.Image != nil {
		next.Image = *in.Image
	}
	if in.Rating != nil {
		next.Rating = *in.Rating
	}
	if in.ReviewCount != nil {
		next.ReviewCount = *in.ReviewCount
	}
	if in.InStock != nil {
		next.InStock = in.InStock
	}
	return s.repo.Update(ctx, next)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
