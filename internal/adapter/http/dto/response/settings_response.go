package response

import (
	"time"

	"checkout-service/internal/domain/entities"
)

type PaymentSettingsResponse struct {
	GatewayEnabled       bool      `json:"gateway_enabled"`
	SandboxMode          bool      `json:"sandbox_mode"`
	SandboxAPIKey        string    `json:"sandbox_api_key,omitempty"`
	ProductionAPIKey     string    `json:"production_api_key,omitempty"`
	AllowPix             bool      `json:"allow_pix"`
	AllowCreditCard      bool      `json:"allow_credit_card"`
	ManualCardProcessing bool      `json:"manual_card_processing"`
	ManualCardStatus     string    `json:"manual_card_status"`
	ManualPixPage        bool      `json:"manual_pix_page"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromPaymentSettings(s entities.PaymentSettings) PaymentSettingsResponse {
	return PaymentSettingsResponse{
		GatewayEnabled:       s.GatewayEnabled,
		SandboxMode:          s.SandboxMode,
		SandboxAPIKey:        s.SandboxAPIKey,
		ProductionAPIKey:     s.ProductionAPIKey,
		AllowPix:             s.AllowPix,
		AllowCreditCard:      s.AllowCreditCard,
		ManualCardProcessing: s.ManualCardProcessing,
		ManualCardStatus:     string(s.ManualCardStatus),
		ManualPixPage:        s.ManualPixPage,
		UpdatedAt:            s.UpdatedAt,
	}
}

type PixelSettingsResponse struct {
	GooglePixelID      string    `json:"google_pixel_id,omitempty"`
	GooglePixelEnabled bool      `json:"google_pixel_enabled"`
	MetaPixelID        string    `json:"meta_pixel_id,omitempty"`
	MetaPixelEnabled   bool      `json:"meta_pixel_enabled"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromPixelSettings(s entities.PixelSettings) PixelSettingsResponse {
	return PixelSettingsResponse{
		GooglePixelID:      s.GooglePixelID,
		GooglePixelEnabled: s.GooglePixelEnabled,
		MetaPixelID:        s.MetaPixelID,
		MetaPixelEnabled:   s.MetaPixelEnabled,
		UpdatedAt:          s.UpdatedAt,
	}
}
