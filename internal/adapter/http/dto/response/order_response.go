package response

import (
	"time"

	"checkout-service/internal/domain/entities"
	"checkout-service/internal/format"
)

type OrderCustomerResponse struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	CPF            string            `json:"cpf"`
	CPFFormatted   string            `json:"cpf_formatted"`
	Phone          string            `json:"phone"`
	PhoneFormatted string            `json:"phone_formatted"`
	Address        *entities.Address `json:"address,omitempty"`
}

type OrderCardResponse struct {
	Brand        string `json:"brand"`
	MaskedNumber string `json:"masked_number"`
	Expiry       string `json:"expiry"`
}

type OrderPixResponse struct {
	QRCode       string    `json:"qr_code"`
	QRCodeBase64 string    `json:"qr_code_base64,omitempty"`
	TicketURL    string    `json:"ticket_url,omitempty"`
	ExpirationAt time.Time `json:"expiration_at"`
}

type OrderResponse struct {
	ID                    string                `json:"id"`
	Customer              OrderCustomerResponse `json:"customer"`
	ProductID             string                `json:"product_id"`
	ProductName           string                `json:"product_name"`
	ProductPrice          float64               `json:"product_price"`
	ProductPriceFormatted string                `json:"product_price_formatted"`
	PaymentMethod         string                `json:"payment_method"`
	PaymentStatus         string                `json:"payment_status"`
	PaymentID             string                `json:"payment_id,omitempty"`
	Card                  *OrderCardResponse    `json:"card,omitempty"`
	Pix                   *OrderPixResponse     `json:"pix,omitempty"`
	OrderDate             time.Time             `json:"order_date"`
	DeviceType            string                `json:"device_type"`
	IsDigitalProduct      bool                  `json:"is_digital_product"`
}

// FromOrder renders an order for the admin and storefront surfaces. Only
// the last four card digits are ever stored, so the masked number is
// rebuilt from them here.
func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID: o.ID,
		Customer: OrderCustomerResponse{
			Name:           o.Customer.Name,
			Email:          o.Customer.Email,
			CPF:            o.Customer.CPF,
			CPFFormatted:   format.CPF(o.Customer.CPF),
			Phone:          o.Customer.Phone,
			PhoneFormatted: format.Phone(o.Customer.Phone),
			Address:        o.Customer.Address,
		},
		ProductID:             o.ProductID,
		ProductName:           o.ProductName,
		ProductPrice:          o.ProductPrice,
		ProductPriceFormatted: format.Currency(o.ProductPrice),
		PaymentMethod:         string(o.PaymentMethod),
		PaymentStatus:         string(o.PaymentStatus),
		PaymentID:             o.PaymentID,
		OrderDate:             o.OrderDate,
		DeviceType:            string(o.DeviceType),
		IsDigitalProduct:      o.IsDigitalProduct,
	}
	if o.CardDetails != nil {
		res.Card = &OrderCardResponse{
			Brand:        o.CardDetails.Brand,
			MaskedNumber: maskCardNumber(o.CardDetails.LastFour),
			Expiry:       format.Expiry(o.CardDetails.ExpiryMonth, o.CardDetails.ExpiryYear),
		}
	}
	if o.PixDetails != nil {
		res.Pix = &OrderPixResponse{
			QRCode:       o.PixDetails.QRCode,
			QRCodeBase64: o.PixDetails.QRCodeBase64,
			TicketURL:    o.PixDetails.TicketURL,
			ExpirationAt: o.PixDetails.ExpirationAt,
		}
	}
	return res
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// OrdersDeletedResponse reports a bulk delete outcome.

type OrdersDeletedResponse struct {
	DeletedCount int `json:"deleted_count"`
}

func maskCardNumber(lastFour string) string {
	if lastFour == "" {
		return ""
	}
	return "**** **** **** " + lastFour
}
