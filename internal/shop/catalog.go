package shop

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/pkg/common"
)

// CatalogService is the read-only product catalog.
type CatalogService struct {
	products ProductRepository
}

func NewCatalogService(products ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// List returns products matching the filter. Category is an exact
// match against the known category set; search is a case-insensitive
// substring over name and description.
func (s *CatalogService) List(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	if filter.Category != "" && !common.InSlice(filter.Category, domain.ProductCategories) {
		return nil, errors.Wrapf(ErrInvalidInput, "unknown category %q", filter.Category)
	}
	rows, err := s.products.List(ctx, filter)
	return rows, errors.Wrap(err, "list products")
}

// Get returns one product by id.
func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "query product")
	}
	return p, nil
}
