package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "checkout-service/internal/adapter/http/dto/request"
	response "checkout-service/internal/adapter/http/dto/response"
	"checkout-service/internal/domain/entities"
	"checkout-service/internal/usecase"
	"checkout-service/internal/validation"
	"checkout-service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler handles the storefront checkout submission.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// Checkout creates exactly one order per checkout attempt. A replay with
// the same idempotency key returns the already-created order.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	device := deviceTypeFromUserAgent(c.GetHeader("User-Agent"))
	order, err := h.usecase.Submit(c.Request.Context(), payload.ToInput(device))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, validation.ErrEmptyName),
		errors.Is(err, validation.ErrEmptyEmail),
		errors.Is(err, validation.ErrInvalidEmailFormat),
		errors.Is(err, validation.ErrEmptyPhone),
		errors.Is(err, validation.ErrInvalidPhone),
		errors.Is(err, validation.ErrInvalidCPF),
		errors.Is(err, validation.ErrInvalidCEP),
		errors.Is(err, validation.ErrInvalidCardNumber),
		errors.Is(err, validation.ErrInvalidCVV),
		errors.Is(err, validation.ErrInvalidExpiry),
		errors.Is(err, usecase.ErrInvalidCheckoutProduct),
		errors.Is(err, usecase.ErrMissingCardDetails),
		errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainError("INVALID_CHECKOUT_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentMethodDisabled):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_DISABLED", "Payment method is disabled", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateSubmission):
		return pkg.NewDomainErrorSimple("DUPLICATE_SUBMISSION", "Checkout already being processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider rejected the request", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider is not configured", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// deviceTypeFromUserAgent is a coarse split used for order analytics only.
func deviceTypeFromUserAgent(ua string) entities.DeviceType {
	ua = strings.ToLower(ua)
	for _, marker := range []string{"mobile", "android", "iphone", "ipad"} {
		if strings.Contains(ua, marker) {
			return entities.DeviceTypeMobile
		}
	}
	return entities.DeviceTypeDesktop
}
