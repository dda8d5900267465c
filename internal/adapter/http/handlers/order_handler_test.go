package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout-service/internal/adapter/http/handlers/mocks"
	"checkout-service/internal/domain/entities"
	"checkout-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(uc usecase.IOrderUseCase) *gin.Engine {
	r := gin.New()
	h := NewOrderHandler(uc)
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.PATCH("/v1/orders/:id/status", h.UpdateOrderStatus)
	r.POST("/v1/orders/:id/refresh-status", h.RefreshOrderStatus)
	r.DELETE("/v1/orders/:id", h.DeleteOrder)
	r.DELETE("/v1/orders", h.DeleteOrdersByPaymentMethod)
	return r
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes filters through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		uc.EXPECT().List(gomock.Any(), entities.PaymentMethodPix, entities.PaymentStatus("")).
			Return([]entities.Order{{ID: "ord-1", PaymentMethod: entities.PaymentMethodPix}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?payment_method=pix", nil)
		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "ord-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid filter maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		uc.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidOrderFilter)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?payment_method=boleto", nil)
		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("normalizes status to upper case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		uc.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.PaymentStatusPaid).
			Return(entities.Order{ID: "ord-1", PaymentStatus: entities.PaymentStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/status", bytes.NewBufferString(`{"status":"paid"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		uc.EXPECT().UpdateStatus(gomock.Any(), "ord-1", gomock.Any()).
			Return(entities.Order{}, usecase.ErrInvalidOrderStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/status", bytes.NewBufferString(`{"status":"SHIPPED"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_RefreshOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)

	uc.EXPECT().RefreshStatus(gomock.Any(), "ord-1").
		Return(entities.Order{ID: "ord-1", PaymentStatus: entities.PaymentStatusPaid}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/refresh-status", nil)
	w := httptest.NewRecorder()
	newOrderRouter(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOrderHandler_DeleteOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("single delete returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		uc.EXPECT().Delete(gomock.Any(), "ord-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("bulk delete requires payment_method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders", nil)
		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bulk delete reports count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		uc.EXPECT().DeleteByPaymentMethod(gomock.Any(), entities.PaymentMethodPix).Return(3, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders?payment_method=pix", nil)
		w := httptest.NewRecorder()
		newOrderRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["deleted_count"] != float64(3) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
