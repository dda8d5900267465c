package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout-service/internal/adapter/http/handlers/mocks"
	"checkout-service/internal/domain/entities"
	"checkout-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const checkoutBody = `{
	"idempotency_key": "key-1",
	"name": "Maria Silva",
	"email": "maria@example.com",
	"cpf": "52998224725",
	"phone": "11987654321",
	"product_id": "prod-1",
	"payment_method": "credit_card",
	"card": {"number": "4111111111111111", "expiry_month": "12", "expiry_year": "2027", "cvv": "123", "holder_name": "MARIA SILVA"}
}`

func newCheckoutRouter(uc usecase.ICheckoutUseCase) *gin.Engine {
	r := gin.New()
	r.POST("/v1/checkout", NewCheckoutHandler(uc).Checkout)
	return r
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newCheckoutRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns created order with masked card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input usecase.CheckoutInput) (entities.Order, error) {
				if input.IdempotencyKey != "key-1" {
					t.Fatalf("unexpected key: %q", input.IdempotencyKey)
				}
				if input.DeviceType != entities.DeviceTypeMobile {
					t.Fatalf("unexpected device: %q", input.DeviceType)
				}
				return entities.Order{
					ID:            "key-1",
					PaymentMethod: entities.PaymentMethodCreditCard,
					PaymentStatus: entities.PaymentStatusPaid,
					CardDetails: &entities.CardDetails{
						LastFour: "1111",
						Brand:    "visa",
					},
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(checkoutBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)")
		w := httptest.NewRecorder()
		newCheckoutRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		card, _ := body["card"].(map[string]any)
		if card == nil || card["masked_number"] != "**** **** **** 1111" {
			t.Fatalf("unexpected card in response: %v", body["card"])
		}
	})

	t.Run("status mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{"validation error", usecase.ErrMissingCardDetails, http.StatusBadRequest},
			{"product not found", usecase.ErrProductNotFound, http.StatusNotFound},
			{"method disabled", usecase.ErrPaymentMethodDisabled, http.StatusConflict},
			{"duplicate", usecase.ErrDuplicateSubmission, http.StatusConflict},
			{"gateway", fmt.Errorf("%w: timeout", usecase.ErrPaymentGatewayFailed), http.StatusBadGateway},
			{"gateway not configured", usecase.ErrPaymentGatewayNotConfigured, http.StatusBadGateway},
			{"internal", errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockICheckoutUseCase(ctrl)
				uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Order{}, tc.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(checkoutBody))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				newCheckoutRouter(uc).ServeHTTP(w, req)

				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d body=%s", tc.want, w.Code, w.Body.String())
				}
			})
		}
	})
}

func TestDeviceTypeFromUserAgent(t *testing.T) {
	cases := []struct {
		ua   string
		want entities.DeviceType
	}{
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64)", entities.DeviceTypeDesktop},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile", entities.DeviceTypeMobile},
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)", entities.DeviceTypeMobile},
		{"", entities.DeviceTypeDesktop},
	}
	for _, tc := range cases {
		if got := deviceTypeFromUserAgent(tc.ua); got != tc.want {
			t.Fatalf("ua %q: expected %s, got %s", tc.ua, tc.want, got)
		}
	}
}
