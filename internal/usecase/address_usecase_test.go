package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkout-service/internal/usecase/interfaces"
	mock_interfaces "checkout-service/internal/usecase/interfaces/mocks"
	"checkout-service/internal/validation"

	"go.uber.org/mock/gomock"
)

func TestAddressUseCase_Lookup(t *testing.T) {
	t.Run("invalid cep rejected before lookup", func(t *testing.T) {
		uc := NewAddressUseCase(nil)
		if _, err := uc.Lookup(context.Background(), "123"); !errors.Is(err, validation.ErrInvalidCEP) {
			t.Fatalf("expected ErrInvalidCEP, got %v", err)
		}
	})

	t.Run("success populates fields and delivery estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lookup := mock_interfaces.NewMockIPostalLookup(ctrl)
		uc := NewAddressUseCase(lookup)
		uc.now = func() time.Time { return time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC) }

		lookup.EXPECT().Lookup(gomock.Any(), "01310100").Return(interfaces.PostalAddress{
			CEP:          "01310100",
			Street:       "Avenida Paulista",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
			Found:        true,
		}, nil)

		info, err := uc.Lookup(context.Background(), "01310-100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.CEP != "01310-100" {
			t.Fatalf("expected formatted cep, got %s", info.CEP)
		}
		if info.Street != "Avenida Paulista" || info.Neighborhood != "Bela Vista" || info.City != "São Paulo" || info.State != "SP" {
			t.Fatalf("unexpected address: %+v", info)
		}
		if info.DeliveryEstimate != "17/03/2026" {
			t.Fatalf("expected today+7 estimate, got %s", info.DeliveryEstimate)
		}
	})

	t.Run("not found surfaces field error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lookup := mock_interfaces.NewMockIPostalLookup(ctrl)
		uc := NewAddressUseCase(lookup)

		lookup.EXPECT().Lookup(gomock.Any(), "99999999").Return(interfaces.PostalAddress{Found: false}, nil)

		if _, err := uc.Lookup(context.Background(), "99999999"); !errors.Is(err, ErrCEPNotFound) {
			t.Fatalf("expected ErrCEPNotFound, got %v", err)
		}
	})

	t.Run("service error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lookup := mock_interfaces.NewMockIPostalLookup(ctrl)
		uc := NewAddressUseCase(lookup)

		lookup.EXPECT().Lookup(gomock.Any(), "01310100").Return(interfaces.PostalAddress{}, errors.New("timeout"))

		if _, err := uc.Lookup(context.Background(), "01310100"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
