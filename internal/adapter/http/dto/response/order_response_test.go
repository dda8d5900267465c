package response

import (
	"testing"
	"time"

	"checkout-service/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()

	o := entities.Order{
		ID: "ord-1",
		Customer: entities.CustomerInfo{
			Name:  "Maria Silva",
			Email: "maria@example.com",
			CPF:   "52998224725",
			Phone: "11987654321",
		},
		ProductID:     "prod-1",
		ProductName:   "Curso de Go",
		ProductPrice:  199.9,
		PaymentMethod: entities.PaymentMethodCreditCard,
		PaymentStatus: entities.PaymentStatusPaid,
		PaymentID:     "pay-1",
		CardDetails: &entities.CardDetails{
			LastFour:    "1111",
			ExpiryMonth: "3",
			ExpiryYear:  "2027",
			Brand:       "visa",
		},
		OrderDate:        now,
		DeviceType:       entities.DeviceTypeMobile,
		IsDigitalProduct: true,
	}

	res := FromOrder(o)
	if res.ID != "ord-1" || res.PaymentMethod != "credit_card" || res.PaymentStatus != "PAID" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Customer.CPFFormatted != "529.982.247-25" {
		t.Fatalf("unexpected cpf: %s", res.Customer.CPFFormatted)
	}
	if res.Customer.PhoneFormatted != "(11) 98765-4321" {
		t.Fatalf("unexpected phone: %s", res.Customer.PhoneFormatted)
	}
	if res.ProductPriceFormatted != "R$ 199,90" {
		t.Fatalf("unexpected price: %s", res.ProductPriceFormatted)
	}
	if res.Card == nil {
		t.Fatalf("expected card block")
	}
	if res.Card.MaskedNumber != "**** **** **** 1111" {
		t.Fatalf("unexpected masked number: %s", res.Card.MaskedNumber)
	}
	if res.Card.Expiry != "03/27" {
		t.Fatalf("unexpected expiry: %s", res.Card.Expiry)
	}
	if res.Pix != nil {
		t.Fatalf("unexpected pix block on card order")
	}
	if !res.OrderDate.Equal(now) {
		t.Fatalf("unexpected date: %+v", res.OrderDate)
	}
}

func TestFromOrder_Pix(t *testing.T) {
	exp := time.Now().UTC().Add(30 * time.Minute)

	o := entities.Order{
		ID:            "ord-2",
		PaymentMethod: entities.PaymentMethodPix,
		PaymentStatus: entities.PaymentStatusPending,
		PixDetails: &entities.PixDetails{
			QRCode:       "00020126qr",
			QRCodeBase64: "aGVsbG8=",
			TicketURL:    "https://example.com/ticket",
			ExpirationAt: exp,
		},
	}

	res := FromOrder(o)
	if res.Pix == nil {
		t.Fatalf("expected pix block")
	}
	if res.Pix.QRCode != "00020126qr" || res.Pix.TicketURL != "https://example.com/ticket" {
		t.Fatalf("unexpected pix fields: %+v", res.Pix)
	}
	if !res.Pix.ExpirationAt.Equal(exp) {
		t.Fatalf("unexpected expiration: %+v", res.Pix.ExpirationAt)
	}
	if res.Card != nil {
		t.Fatalf("unexpected card block on pix order")
	}
}
