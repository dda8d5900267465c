package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"checkout-service/internal/domain/entities"
	"checkout-service/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidOrderFilter = errors.New("invalid order filter")
)

// IOrderUseCase exposes the admin order operations: listing with filters,
// status actions, gateway status refresh and deletion (single and bulk).

type IOrderUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, method entities.PaymentMethod, status entities.PaymentStatus) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Order, error)
	RefreshStatus(ctx context.Context, id string) (entities.Order, error)
	Delete(ctx context.Context, id string) error
	DeleteByPaymentMethod(ctx context.Context, method entities.PaymentMethod) (int, error)
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *OrderUseCase {
	return &OrderUseCase{repo: repo, gateway: gateway}
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// List applies at most one filter; method wins when both are set.
func (u *OrderUseCase) List(ctx context.Context, method entities.PaymentMethod, status entities.PaymentStatus) ([]entities.Order, error) {
	switch {
	case method != "":
		if !validPaymentMethod(method) {
			return nil, ErrInvalidOrderFilter
		}
		return u.repo.ListByPaymentMethod(ctx, method)
	case status != "":
		if !validPaymentStatus(status) {
			return nil, ErrInvalidOrderFilter
		}
		return u.repo.ListByStatus(ctx, status)
	default:
		return u.repo.List(ctx)
	}
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !validPaymentStatus(status) {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] status updated order_id=%s status=%s", id, status)
	return updated, nil
}

// RefreshStatus re-queries the gateway for the linked payment and applies
// the status mapping. Orders without a gateway payment are returned as-is;
// this is how PENDING PIX orders get reconciled manually.
func (u *OrderUseCase) RefreshStatus(ctx context.Context, id string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.PaymentID == "" {
		log.Printf("[order][usecase] refresh skipped, no gateway payment order_id=%s", id)
		return o, nil
	}
	if u.gateway == nil {
		log.Printf("[order][usecase] refresh refused, gateway not configured order_id=%s", id)
		return entities.Order{}, ErrPaymentGatewayNotConfigured
	}

	gatewayStatus, err := u.gateway.CheckPaymentStatus(ctx, o.PaymentID)
	if err != nil {
		log.Printf("[order][usecase] gateway status check failed order_id=%s err=%v", id, err)
		return entities.Order{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}

	resolved := entities.ResolveOrderStatus(entities.PaymentMethodCreditCard, gatewayStatus, entities.ProcessingPolicy{})
	switch strings.ToUpper(strings.TrimSpace(gatewayStatus)) {
	case "CANCELLED", "REJECTED", "REFUNDED":
		resolved = entities.PaymentStatusCancelled
	}
	if resolved == o.PaymentStatus {
		return o, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, id, resolved)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] refresh success order_id=%s status=%s gateway_status=%s", id, resolved, gatewayStatus)
	return updated, nil
}

// Delete removes the order and cancels the linked gateway payment. A
// cancel failure does not block the delete; the gateway mock makes the
// call a no-op when unconfigured.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.cancelLinkedPayment(ctx, o)
	return u.repo.Delete(ctx, id)
}

// DeleteByPaymentMethod bulk-deletes every order of one payment method and
// cancels each linked gateway payment. Returns the number of deleted orders.
func (u *OrderUseCase) DeleteByPaymentMethod(ctx context.Context, method entities.PaymentMethod) (int, error) {
	if !validPaymentMethod(method) {
		return 0, ErrInvalidOrderFilter
	}

	deleted, err := u.repo.DeleteByPaymentMethod(ctx, method)
	if err != nil {
		return 0, err
	}
	for _, o := range deleted {
		u.cancelLinkedPayment(ctx, o)
	}
	log.Printf("[order][usecase] bulk delete success method=%s count=%d", method, len(deleted))
	return len(deleted), nil
}

func (u *OrderUseCase) cancelLinkedPayment(ctx context.Context, o entities.Order) {
	if o.PaymentID == "" || u.gateway == nil {
		return
	}
	if err := u.gateway.CancelPayment(ctx, o.PaymentID); err != nil {
		log.Printf("[order][usecase] gateway cancel failed order_id=%s payment_id=%s err=%v", o.ID, o.PaymentID, err)
	}
}

func validPaymentMethod(m entities.PaymentMethod) bool {
	switch m {
	case entities.PaymentMethodPix, entities.PaymentMethodCreditCard:
		return true
	}
	return false
}

func validPaymentStatus(s entities.PaymentStatus) bool {
	switch s {
	case entities.PaymentStatusPending, entities.PaymentStatusPaid, entities.PaymentStatusCancelled, entities.PaymentStatusRefunded:
		return true
	}
	return false
}
