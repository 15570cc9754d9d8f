package domain

// Category is the closed set of catalog categories.
type Category string

const (
	CategoryFertilizers Category = "Fertilizers"
	CategoryPesticides  Category = "Pesticides"
	CategoryWeed        Category = "Weed"
	CategoryAll         Category = "All"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFertilizers, CategoryPesticides, CategoryWeed, CategoryAll:
		return true
	}
	return false
}
