package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"checkout-service/internal/domain/entities"
	"checkout-service/internal/usecase/interfaces"
	"checkout-service/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrInvalidCheckoutProduct      = errors.New("invalid product id")
	ErrPaymentMethodDisabled       = errors.New("payment method disabled")
	ErrInvalidPaymentMethod        = errors.New("invalid payment method")
	ErrMissingCardDetails          = errors.New("missing card details")
	ErrDuplicateSubmission         = errors.New("duplicate submission")
	ErrPaymentGatewayFailed        = errors.New("payment gateway failed")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// submitCooldown is the window during which a repeated submit with the
// same idempotency key is refused without touching the repository.
const submitCooldown = 1500 * time.Millisecond

// CardInput is the raw card data captured by the checkout form.

type CardInput struct {
	Number      string
	ExpiryMonth string
	ExpiryYear  string
	CVV         string
	HolderName  string
}

// CheckoutInput is the canonical checkout command. The idempotency key is
// generated client-side once per checkout attempt; when absent a fresh one
// is assigned (losing replay protection for that attempt only).

type CheckoutInput struct {
	IdempotencyKey string
	Customer       entities.CustomerInfo
	ProductID      string
	PaymentMethod  entities.PaymentMethod
	Card           *CardInput
	DeviceType     entities.DeviceType
}

// ICheckoutUseCase creates exactly one order per checkout attempt.

type ICheckoutUseCase interface {
	Submit(ctx context.Context, input CheckoutInput) (entities.Order, error)
}

type CheckoutUseCase struct {
	orders   interfaces.IOrderRepository
	products interfaces.IProductRepository
	settings interfaces.ISettingsRepository

	// gateway is the live provider adapter; routes wires nil when the
	// provider client could not be initialized. offline is the
	// deterministic fallback used whenever the merchant settings keep
	// the gateway disabled or carry no key for the active mode.
	gateway interfaces.IPaymentGateway
	offline interfaces.IPaymentGateway

	latch submitLatch
	now   func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	orders interfaces.IOrderRepository,
	products interfaces.IProductRepository,
	settings interfaces.ISettingsRepository,
	gateway interfaces.IPaymentGateway,
	offline interfaces.IPaymentGateway,
) *CheckoutUseCase {
	uc := &CheckoutUseCase{
		orders:   orders,
		products: products,
		settings: settings,
		gateway:  gateway,
		offline:  offline,
		now:      func() time.Time { return time.Now().UTC() },
	}
	uc.latch.cooldown = submitCooldown
	uc.latch.now = func() time.Time { return uc.now() }
	return uc
}

// paymentGateway picks the gateway for one submit. The live provider is
// only used when the merchant enabled it and configured a key for the
// active mode; anything else degrades to the deterministic offline
// gateway so a half-configured merchant never reaches the provider.
func (u *CheckoutUseCase) paymentGateway(settings entities.PaymentSettings) (interfaces.IPaymentGateway, error) {
	if !settings.GatewayEnabled || settings.ActiveAPIKey() == "" {
		return u.offline, nil
	}
	if u.gateway == nil {
		return nil, ErrPaymentGatewayNotConfigured
	}
	return u.gateway, nil
}

func (u *CheckoutUseCase) Submit(ctx context.Context, input CheckoutInput) (entities.Order, error) {
	key := strings.TrimSpace(input.IdempotencyKey)
	if key == "" {
		key = uuid.NewString()
	}
	log.Printf("[checkout][usecase] submit start key=%s product_id=%s method=%s", key, input.ProductID, input.PaymentMethod)

	if err := validateCheckoutInput(input); err != nil {
		log.Printf("[checkout][usecase] validation failed key=%s err=%v", key, err)
		return entities.Order{}, err
	}

	// At-most-once in-flight creation per attempt. A blocked replay is
	// answered with the already-created order when it exists.
	if !u.latch.tryAcquire(key) {
		log.Printf("[checkout][usecase] submit latched key=%s", key)
		if existing, err := u.orders.GetByID(ctx, key); err == nil && existing.ID != "" {
			return existing, nil
		}
		return entities.Order{}, ErrDuplicateSubmission
	}

	order, err := u.submit(ctx, key, input)
	if err != nil {
		// Clear the latch so the user can retry after a reported failure.
		u.latch.release(key)
		return entities.Order{}, err
	}
	return order, nil
}

func (u *CheckoutUseCase) submit(ctx context.Context, key string, input CheckoutInput) (entities.Order, error) {
	product, err := u.products.GetByID(ctx, strings.TrimSpace(input.ProductID))
	if err != nil {
		log.Printf("[checkout][usecase] product load failed key=%s err=%v", key, err)
		return entities.Order{}, err
	}
	if product.ID == "" {
		log.Printf("[checkout][usecase] product not found key=%s product_id=%s", key, input.ProductID)
		return entities.Order{}, ErrProductNotFound
	}

	settings, found, err := u.settings.GetPaymentSettings(ctx)
	if err != nil {
		log.Printf("[checkout][usecase] settings load failed key=%s err=%v", key, err)
		return entities.Order{}, err
	}
	if !found {
		log.Printf("[checkout][usecase] no settings row; using defaults key=%s", key)
		settings = entities.DefaultPaymentSettings()
	}

	switch input.PaymentMethod {
	case entities.PaymentMethodPix:
		if !settings.AllowPix {
			return entities.Order{}, ErrPaymentMethodDisabled
		}
	case entities.PaymentMethodCreditCard:
		if !settings.AllowCreditCard {
			return entities.Order{}, ErrPaymentMethodDisabled
		}
	default:
		return entities.Order{}, ErrInvalidPaymentMethod
	}

	deviceType := input.DeviceType
	if deviceType == "" {
		deviceType = entities.DeviceTypeDesktop
	}

	order := entities.Order{
		ID:               key,
		Customer:         input.Customer,
		ProductID:        product.ID,
		ProductName:      product.Name,
		ProductPrice:     product.Price,
		PaymentMethod:    input.PaymentMethod,
		OrderDate:        u.now(),
		DeviceType:       deviceType,
		IsDigitalProduct: product.IsDigital,
	}

	policy := entities.EffectivePolicy(product, settings)
	gatewayStatus := ""

	gateway, err := u.paymentGateway(settings)
	if err != nil {
		// Manual card processing never touches the gateway; only fail
		// the flows that would.
		if input.PaymentMethod == entities.PaymentMethodPix || !policy.ManualProcessing {
			log.Printf("[checkout][usecase] gateway unavailable key=%s err=%v", key, err)
			return entities.Order{}, err
		}
	}

	switch input.PaymentMethod {
	case entities.PaymentMethodCreditCard:
		brand := validation.DetectCardBrand(input.Card.Number)
		if brand == validation.BrandUnknown {
			brand = entities.UnknownCardBrand
		}
		pan := validation.StripNonDigits(input.Card.Number)
		order.CardDetails = &entities.CardDetails{
			LastFour:    lastFourDigits(pan),
			ExpiryMonth: input.Card.ExpiryMonth,
			ExpiryYear:  input.Card.ExpiryYear,
			Brand:       brand,
		}

		if !policy.ManualProcessing {
			customerID, err := gateway.CreateCustomer(ctx, input.Customer)
			if err != nil {
				log.Printf("[checkout][usecase] gateway customer failed key=%s err=%v", key, err)
				return entities.Order{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
			}
			paymentID, status, err := gateway.CreateCardPayment(ctx, interfaces.CardCharge{
				CustomerID:  customerID,
				Amount:      product.Price,
				Description: product.Name,
				CardNumber:  pan,
				ExpiryMonth: input.Card.ExpiryMonth,
				ExpiryYear:  input.Card.ExpiryYear,
				CVV:         input.Card.CVV,
				HolderName:  input.Card.HolderName,
			})
			if err != nil {
				log.Printf("[checkout][usecase] gateway card payment failed key=%s err=%v", key, err)
				return entities.Order{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
			}
			order.PaymentID = paymentID
			gatewayStatus = status
		}

	case entities.PaymentMethodPix:
		customerID, err := gateway.CreateCustomer(ctx, input.Customer)
		if err != nil {
			log.Printf("[checkout][usecase] gateway customer failed key=%s err=%v", key, err)
			return entities.Order{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
		}
		pix, err := gateway.CreatePixPayment(ctx, interfaces.PixCharge{
			CustomerID:  customerID,
			Amount:      product.Price,
			Description: product.Name,
		})
		if err != nil {
			log.Printf("[checkout][usecase] gateway pix payment failed key=%s err=%v", key, err)
			return entities.Order{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
		}
		order.PaymentID = pix.PaymentID
		order.PixDetails = &entities.PixDetails{
			QRCode:       pix.QRCode,
			QRCodeBase64: pix.QRCodeBase64,
			TicketURL:    pix.TicketURL,
			ExpirationAt: pix.ExpirationAt,
		}
	}

	order.PaymentStatus = entities.ResolveOrderStatus(input.PaymentMethod, gatewayStatus, policy)

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			log.Printf("[checkout][usecase] replayed key, returning stored order key=%s", key)
			return u.orders.GetByID(ctx, key)
		}
		log.Printf("[checkout][usecase] order create failed key=%s err=%v", key, err)
		return entities.Order{}, err
	}
	log.Printf("[checkout][usecase] submit success key=%s order_id=%s status=%s", key, created.ID, created.PaymentStatus)
	return created, nil
}

func lastFourDigits(pan string) string {
	if len(pan) <= 4 {
		return pan
	}
	return pan[len(pan)-4:]
}

func validateCheckoutInput(input CheckoutInput) error {
	if strings.TrimSpace(input.ProductID) == "" {
		return ErrInvalidCheckoutProduct
	}
	if err := validation.ValidateName(input.Customer.Name); err != nil {
		return err
	}
	if err := validation.ValidateEmail(input.Customer.Email); err != nil {
		return err
	}
	if err := validation.ValidateCPF(input.Customer.CPF); err != nil {
		return err
	}
	if err := validation.ValidatePhone(input.Customer.Phone); err != nil {
		return err
	}
	if input.Customer.Address != nil {
		if err := validation.ValidateCEP(input.Customer.Address.CEP); err != nil {
			return err
		}
	}

	if input.PaymentMethod == entities.PaymentMethodCreditCard {
		if input.Card == nil {
			return ErrMissingCardDetails
		}
		if err := validation.ValidateCardNumber(input.Card.Number); err != nil {
			return err
		}
		if err := validation.ValidateCVV(input.Card.CVV); err != nil {
			return err
		}
		if err := validation.ValidateExpiry(input.Card.ExpiryMonth, input.Card.ExpiryYear, time.Now()); err != nil {
			return err
		}
	}
	return nil
}

// submitLatch guards against rapid duplicate submissions. An acquired key
// stays held for the cooldown window; release is only called on failure so
// an immediate manual retry is possible.

type submitLatch struct {
	mu       sync.Mutex
	held     map[string]time.Time
	cooldown time.Duration
	now      func() time.Time
}

func (l *submitLatch) tryAcquire(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held == nil {
		l.held = make(map[string]time.Time)
	}
	now := l.now()
	if until, ok := l.held[key]; ok && now.Before(until) {
		return false
	}
	l.held[key] = now.Add(l.cooldown)
	return true
}

func (l *submitLatch) release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
}
