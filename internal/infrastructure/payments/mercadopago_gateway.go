package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"checkout-service/internal/domain/entities"
	"checkout-service/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/cardtoken"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/customer"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const pixChargeTTL = 30 * time.Minute

// MercadoPagoGateway adapts the Mercado Pago SDK to the payment gateway port.
//
// When mock mode is on, or no access token was configured, every operation
// returns a deterministic local response instead of calling the provider.
// A misconfigured gateway must never take the checkout down.
type MercadoPagoGateway struct {
	payments  payment.Client
	customers customer.Client
	tokens    cardtoken.Client
	mockMode  bool
	now       func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode || accessToken == "" {
		log.Printf("[payment][gateway] mock mode enabled")
		return NewOfflineGateway(), nil
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments:  payment.NewClient(cfg),
		customers: customer.NewClient(cfg),
		tokens:    cardtoken.NewClient(cfg),
		now:       time.Now,
	}, nil
}

// NewOfflineGateway returns a gateway that always answers with the
// deterministic local responses. It backs mock mode and the
// settings-driven degrade when the merchant keeps the provider disabled.
func NewOfflineGateway() *MercadoPagoGateway {
	return &MercadoPagoGateway{mockMode: true, now: time.Now}
}

func (g *MercadoPagoGateway) CreateCustomer(ctx context.Context, info entities.CustomerInfo) (string, error) {
	if g.mockMode {
		id := fmt.Sprintf("mock-cus-%d", g.now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock customer created customer_id=%s", id)
		return id, nil
	}
	if g.customers == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	first, last := splitName(info.Name)
	log.Printf("[payment][gateway] customer create start email=%s", info.Email)

	resp, err := g.customers.Create(ctx, customer.Request{
		Email:     info.Email,
		FirstName: first,
		LastName:  last,
		Identification: &customer.IdentificationRequest{
			Type:   "CPF",
			Number: info.CPF,
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] customer create failed err=%v", err)
		return "", err
	}
	log.Printf("[payment][gateway] customer create success customer_id=%s", resp.ID)
	return resp.ID, nil
}

func (g *MercadoPagoGateway) CreateCardPayment(ctx context.Context, charge interfaces.CardCharge) (string, string, error) {
	if g.mockMode {
		id := fmt.Sprintf("mock-pay-%d", g.now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock card payment created payment_id=%s status=approved", id)
		return id, "approved", nil
	}
	if g.payments == nil {
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] card payment start customer_id=%s amount=%.2f", charge.CustomerID, charge.Amount)

	month, year := normalizeCardExpiry(charge.ExpiryMonth, charge.ExpiryYear)
	tok, err := g.tokens.Create(ctx, cardtoken.Request{
		CardNumber:      charge.CardNumber,
		ExpirationMonth: month,
		ExpirationYear:  year,
		SecurityCode:    charge.CVV,
		Cardholder: &cardtoken.CardholderRequest{
			Name: charge.HolderName,
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] card tokenization failed err=%v", err)
		return "", "", err
	}

	resp, err := g.payments.Create(ctx, payment.Request{
		TransactionAmount: charge.Amount,
		Token:             tok.ID,
		Description:       charge.Description,
		Installments:      1,
		Payer: &payment.PayerRequest{
			ID: charge.CustomerID,
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] card payment failed err=%v", err)
		return "", "", err
	}
	log.Printf("[payment][gateway] card payment success payment_id=%d status=%s", resp.ID, resp.Status)
	return strconv.Itoa(resp.ID), resp.Status, nil
}

func (g *MercadoPagoGateway) CreatePixPayment(ctx context.Context, charge interfaces.PixCharge) (interfaces.PixChargeResult, error) {
	if g.mockMode {
		id := fmt.Sprintf("mock-pix-%d", g.now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock pix payment created payment_id=%s", id)
		return interfaces.PixChargeResult{
			PaymentID:    id,
			QRCode:       fmt.Sprintf("00020126MOCK%s5204000053039865802BR", id),
			QRCodeBase64: "",
			TicketURL:    "",
			ExpirationAt: g.now().UTC().Add(pixChargeTTL),
		}, nil
	}
	if g.payments == nil {
		return interfaces.PixChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] pix payment start customer_id=%s amount=%.2f", charge.CustomerID, charge.Amount)

	resp, err := g.payments.Create(ctx, payment.Request{
		TransactionAmount: charge.Amount,
		Description:       charge.Description,
		PaymentMethodID:   "pix",
		Payer: &payment.PayerRequest{
			ID: charge.CustomerID,
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] pix payment failed err=%v", err)
		return interfaces.PixChargeResult{}, err
	}

	result := interfaces.PixChargeResult{
		PaymentID:    strconv.Itoa(resp.ID),
		ExpirationAt: g.now().UTC().Add(pixChargeTTL),
	}
	if resp.PointOfInteraction.TransactionData.QRCode != "" {
		result.QRCode = resp.PointOfInteraction.TransactionData.QRCode
		result.QRCodeBase64 = resp.PointOfInteraction.TransactionData.QRCodeBase64
		result.TicketURL = resp.PointOfInteraction.TransactionData.TicketURL
	}
	log.Printf("[payment][gateway] pix payment success payment_id=%d status=%s", resp.ID, resp.Status)
	return result, nil
}

func (g *MercadoPagoGateway) CheckPaymentStatus(ctx context.Context, paymentID string) (string, error) {
	if g.mockMode {
		log.Printf("[payment][gateway] mock status check payment_id=%s status=approved", paymentID)
		return "approved", nil
	}
	if g.payments == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return "", fmt.Errorf("invalid payment id %q: %w", paymentID, err)
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] status check failed payment_id=%s err=%v", paymentID, err)
		return "", err
	}
	log.Printf("[payment][gateway] status check payment_id=%s status=%s", paymentID, resp.Status)
	return resp.Status, nil
}

func (g *MercadoPagoGateway) CancelPayment(ctx context.Context, paymentID string) error {
	if g.mockMode {
		log.Printf("[payment][gateway] mock cancel payment_id=%s", paymentID)
		return nil
	}
	if g.payments == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return fmt.Errorf("invalid payment id %q: %w", paymentID, err)
	}
	if _, err := g.payments.Cancel(ctx, id); err != nil {
		log.Printf("[payment][gateway] cancel failed payment_id=%s err=%v", paymentID, err)
		return err
	}
	log.Printf("[payment][gateway] cancel success payment_id=%s", paymentID)
	return nil
}

// normalizeCardExpiry pads a two-digit year to four digits and trims
// both fields. The token API takes the expiry as strings.
func normalizeCardExpiry(month, year string) (string, string) {
	month = strings.TrimSpace(month)
	year = strings.TrimSpace(year)
	if len(year) == 2 {
		year = "20" + year
	}
	return month, year
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
