package interfaces

import (
	"context"
	"errors"

	"checkout-service/internal/domain/entities"
)

// ErrAlreadyExists is returned by repositories when a conditional create
// hits an existing primary key. The checkout use case relies on it to make
// replayed submissions idempotent.
var ErrAlreadyExists = errors.New("item already exists")

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Create must be conditional on the order ID not existing yet; the ID is
// derived from the checkout idempotency key.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListByPaymentMethod(ctx context.Context, method entities.PaymentMethod) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Order, error)
	Delete(ctx context.Context, id string) error
	DeleteByPaymentMethod(ctx context.Context, method entities.PaymentMethod) ([]entities.Order, error)
}
