package interfaces

import (
	"context"
	"time"

	"checkout-service/internal/domain/entities"
)

// CardCharge is the gateway command for an automatic card authorization.

type CardCharge struct {
	CustomerID  string
	Amount      float64
	Description string
	CardNumber  string
	ExpiryMonth string
	ExpiryYear  string
	CVV         string
	HolderName  string
}

// PixCharge is the gateway command for a PIX QR charge.

type PixCharge struct {
	CustomerID  string
	Amount      float64
	Description string
}

// PixChargeResult carries the QR payload returned by the gateway.

type PixChargeResult struct {
	PaymentID    string
	QRCode       string
	QRCodeBase64 string
	TicketURL    string
	ExpirationAt time.Time
}

// IPaymentGateway abstracts the external payment provider.
//
// Every operation must degrade to a deterministic mock response when the
// gateway is disabled or unconfigured, so a missing key never breaks the
// checkout flow.

type IPaymentGateway interface {
	CreateCustomer(ctx context.Context, customer entities.CustomerInfo) (customerID string, err error)
	CreateCardPayment(ctx context.Context, charge CardCharge) (paymentID string, status string, err error)
	CreatePixPayment(ctx context.Context, charge PixCharge) (PixChargeResult, error)
	CheckPaymentStatus(ctx context.Context, paymentID string) (status string, err error)
	CancelPayment(ctx context.Context, paymentID string) error
}
