package interfaces

import (
	"context"

	"checkout-service/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// GetBySlug serves the storefront product page; slug uniqueness is
// enforced by the use case with a lookup before create.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	GetBySlug(ctx context.Context, slug string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}
