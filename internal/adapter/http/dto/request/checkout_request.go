package request

import (
	"strings"

	"checkout-service/internal/domain/entities"
	"checkout-service/internal/usecase"
)

type AddressRequest struct {
	CEP          string `json:"cep" binding:"required"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type CardRequest struct {
	Number      string `json:"number" binding:"required"`
	ExpiryMonth string `json:"expiry_month" binding:"required"`
	ExpiryYear  string `json:"expiry_year" binding:"required"`
	CVV         string `json:"cvv" binding:"required"`
	HolderName  string `json:"holder_name"`
}

// CheckoutRequest is the storefront checkout payload. The idempotency key
// is generated by the storefront once per checkout attempt and replayed
// verbatim on retries.
type CheckoutRequest struct {
	IdempotencyKey string          `json:"idempotency_key"`
	Name           string          `json:"name" binding:"required"`
	Email          string          `json:"email" binding:"required"`
	CPF            string          `json:"cpf" binding:"required"`
	Phone          string          `json:"phone" binding:"required"`
	Address        *AddressRequest `json:"address"`
	ProductID      string          `json:"product_id" binding:"required"`
	PaymentMethod  string          `json:"payment_method" binding:"required"`
	Card           *CardRequest    `json:"card"`
}

// ToInput translates the payload into the checkout command. Device type is
// resolved by the handler from the User-Agent header, not by the payload.
func (r CheckoutRequest) ToInput(device entities.DeviceType) usecase.CheckoutInput {
	input := usecase.CheckoutInput{
		IdempotencyKey: strings.TrimSpace(r.IdempotencyKey),
		Customer: entities.CustomerInfo{
			Name:  strings.TrimSpace(r.Name),
			Email: strings.TrimSpace(r.Email),
			CPF:   r.CPF,
			Phone: r.Phone,
		},
		ProductID:     strings.TrimSpace(r.ProductID),
		PaymentMethod: entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
		DeviceType:    device,
	}
	if r.Address != nil {
		input.Customer.Address = &entities.Address{
			CEP:          r.Address.CEP,
			Street:       r.Address.Street,
			Number:       r.Address.Number,
			Complement:   r.Address.Complement,
			Neighborhood: r.Address.Neighborhood,
			City:         r.Address.City,
			State:        r.Address.State,
		}
	}
	if r.Card != nil {
		input.Card = &usecase.CardInput{
			Number:      r.Card.Number,
			ExpiryMonth: r.Card.ExpiryMonth,
			ExpiryYear:  r.Card.ExpiryYear,
			CVV:         r.Card.CVV,
			HolderName:  strings.TrimSpace(r.Card.HolderName),
		}
	}
	return input
}
