package seed

import (
	"context"
	"fmt"

	"agrimart/internal/domain"
	productrepo "agrimart/internal/repository/product"
)

// Apply loads a small agri catalog for manual testing. The repository is
// process-lifetime, so this runs on every start that asks for it.
func Apply(ctx context.Context, repo productrepo.Repository) error {
	outOfStock := false
	products := []domain.Product{
		{
			Name:        "Urea 46% N",
			Category:    domain.CategoryFertilizers,
			Price:       "PKR 1,200",
			Image:       "/uploads/urea.jpg",
			Rating:      4.5,
			ReviewCount: 128,
		},
		{
			Name:        "DAP 18-46-0",
			Category:    domain.CategoryFertilizers,
			Price:       "PKR 12,500",
			Image:       "/uploads/dap.jpg",
			Rating:      4.7,
			ReviewCount: 86,
		},
		{
			Name:        "Lambda Cyhalothrin 2.5 EC",
			Category:    domain.CategoryPesticides,
			Price:       "PKR 700",
			Image:       "/uploads/lambda.jpg",
			Rating:      4.1,
			ReviewCount: 40,
		},
		{
			Name:        "Glyphosate 41% SL",
			Category:    domain.CategoryWeed,
			Price:       "PKR 950",
			Image:       "/uploads/glyphosate.jpg",
			Rating:      3.9,
			ReviewCount: 22,
		},
		{
			Name:     "Emamectin Benzoate 1.9 EC",
			Category: domain.CategoryPesticides,
			Price:    "PKR 1,850",
			Image:    "/uploads/emamectin.jpg",
			InStock:  &outOfStock,
		},
	}

	for _, p := range products {
		if _, err := repo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}
	return nil
}
