package entities

import "time"

// PaymentMethod identifies the payment rail chosen at checkout.

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
)

// PaymentStatus represents the canonical order payment state.
//
// Transitions:
//   - card + manual processing: decided by the configured manual outcome.
//   - card + automatic processing: decided by the gateway response.
//   - pix: always starts PENDING; reconciliation moves it forward.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// DeviceType records which kind of client submitted the checkout.

type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeDesktop DeviceType = "desktop"
)

// UnknownCardBrand is persisted whenever brand detection yields nothing.
// Downstream display assumes a non-empty label.
const UnknownCardBrand = "Unknown"

// Address is the structured shipping address captured at checkout.

type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// CustomerInfo is not persisted on its own; it is always embedded in an Order.

type CustomerInfo struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	CPF     string   `json:"cpf"`
	Phone   string   `json:"phone"`
	Address *Address `json:"address,omitempty"`
}

// CardDetails holds the displayable remainder of the card used on a
// credit card order. The full PAN and the CVV stay in the checkout
// request; only the last four digits survive past the gateway call.
//
// Brand must never be empty on a persisted order; use UnknownCardBrand
// when detection fails.

type CardDetails struct {
	LastFour    string `json:"last_four"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	Brand       string `json:"brand"`
}

// PixDetails holds the PIX charge data returned by the gateway.

type PixDetails struct {
	QRCode        string    `json:"qr_code"`
	QRCodeBase64  string    `json:"qr_code_base64,omitempty"`
	TicketURL     string    `json:"ticket_url,omitempty"`
	ExpirationAt  time.Time `json:"expiration_at"`
}

// Order is the checkout order persisted by the checkout-service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_method-index): payment_method
//   - GSI2 (status-index): payment_status
//
// The order ID doubles as the checkout idempotency key: a replayed submit
// carries the same key and therefore targets the same PK, which the
// conditional create rejects.

type Order struct {
	ID               string        `json:"id"`
	Customer         CustomerInfo  `json:"customer"`
	ProductID        string        `json:"product_id"`
	ProductName      string        `json:"product_name"`
	ProductPrice     float64       `json:"product_price"`
	PaymentMethod    PaymentMethod `json:"payment_method"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	PaymentID        string        `json:"payment_id,omitempty"`
	CardDetails      *CardDetails  `json:"card_details,omitempty"`
	PixDetails       *PixDetails   `json:"pix_details,omitempty"`
	OrderDate        time.Time     `json:"order_date"`
	DeviceType       DeviceType    `json:"device_type"`
	IsDigitalProduct bool          `json:"is_digital_product"`
}
