package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"checkout-service/internal/domain/entities"
	"checkout-service/internal/usecase/interfaces"
)

var ErrInvalidSettingsManualStatus = errors.New("invalid manual card status in settings")

// ISettingsUseCase exposes the merchant configuration rows. Reads always
// succeed: an absent payment-settings row yields the safe defaults.

type ISettingsUseCase interface {
	GetPaymentSettings(ctx context.Context) (entities.PaymentSettings, error)
	UpdatePaymentSettings(ctx context.Context, s entities.PaymentSettings) (entities.PaymentSettings, error)
	GetPixelSettings(ctx context.Context) (entities.PixelSettings, error)
	UpdatePixelSettings(ctx context.Context, s entities.PixelSettings) (entities.PixelSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) GetPaymentSettings(ctx context.Context) (entities.PaymentSettings, error) {
	s, found, err := u.repo.GetPaymentSettings(ctx)
	if err != nil {
		return entities.PaymentSettings{}, err
	}
	if !found {
		log.Printf("[settings][usecase] no payment settings row; returning defaults")
		return entities.DefaultPaymentSettings(), nil
	}
	if s.ManualCardStatus == "" {
		s.ManualCardStatus = entities.ManualCardStatusAnalysis
	}
	return s, nil
}

func (u *SettingsUseCase) UpdatePaymentSettings(ctx context.Context, s entities.PaymentSettings) (entities.PaymentSettings, error) {
	switch s.ManualCardStatus {
	case entities.ManualCardStatusApproved, entities.ManualCardStatusDenied, entities.ManualCardStatusAnalysis:
	case "":
		s.ManualCardStatus = entities.ManualCardStatusAnalysis
	default:
		return entities.PaymentSettings{}, ErrInvalidSettingsManualStatus
	}

	s.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.SavePaymentSettings(ctx, s)
	if err != nil {
		return entities.PaymentSettings{}, err
	}
	log.Printf("[settings][usecase] payment settings saved gateway_enabled=%t sandbox=%t manual_card=%t", saved.GatewayEnabled, saved.SandboxMode, saved.ManualCardProcessing)
	return saved, nil
}

func (u *SettingsUseCase) GetPixelSettings(ctx context.Context) (entities.PixelSettings, error) {
	s, found, err := u.repo.GetPixelSettings(ctx)
	if err != nil {
		return entities.PixelSettings{}, err
	}
	if !found {
		return entities.PixelSettings{}, nil
	}
	return s, nil
}

func (u *SettingsUseCase) UpdatePixelSettings(ctx context.Context, s entities.PixelSettings) (entities.PixelSettings, error) {
	s.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.SavePixelSettings(ctx, s)
	if err != nil {
		return entities.PixelSettings{}, err
	}
	log.Printf("[settings][usecase] pixel settings saved google_enabled=%t meta_enabled=%t", saved.GooglePixelEnabled, saved.MetaPixelEnabled)
	return saved, nil
}
