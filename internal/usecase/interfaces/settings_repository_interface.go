package interfaces

import (
	"context"

	"checkout-service/internal/domain/entities"
)

// ISettingsRepository abstracts the singleton configuration rows.
//
// Get operations report absence through the found flag instead of an
// error; callers fall back to safe defaults.

type ISettingsRepository interface {
	GetPaymentSettings(ctx context.Context) (entities.PaymentSettings, bool, error)
	SavePaymentSettings(ctx context.Context, s entities.PaymentSettings) (entities.PaymentSettings, error)
	GetPixelSettings(ctx context.Context) (entities.PixelSettings, bool, error)
	SavePixelSettings(ctx context.Context, s entities.PixelSettings) (entities.PixelSettings, error)
}
