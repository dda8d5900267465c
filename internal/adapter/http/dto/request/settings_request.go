package request

import (
	"strings"

	"checkout-service/internal/domain/entities"
)

type PaymentSettingsRequest struct {
	GatewayEnabled       bool   `json:"gateway_enabled"`
	SandboxMode          bool   `json:"sandbox_mode"`
	SandboxAPIKey        string `json:"sandbox_api_key"`
	ProductionAPIKey     string `json:"production_api_key"`
	AllowPix             bool   `json:"allow_pix"`
	AllowCreditCard      bool   `json:"allow_credit_card"`
	ManualCardProcessing bool   `json:"manual_card_processing"`
	ManualCardStatus     string `json:"manual_card_status"`
	ManualPixPage        bool   `json:"manual_pix_page"`
}

func (r PaymentSettingsRequest) ToEntity() entities.PaymentSettings {
	return entities.PaymentSettings{
		GatewayEnabled:       r.GatewayEnabled,
		SandboxMode:          r.SandboxMode,
		SandboxAPIKey:        strings.TrimSpace(r.SandboxAPIKey),
		ProductionAPIKey:     strings.TrimSpace(r.ProductionAPIKey),
		AllowPix:             r.AllowPix,
		AllowCreditCard:      r.AllowCreditCard,
		ManualCardProcessing: r.ManualCardProcessing,
		ManualCardStatus:     entities.ManualCardStatus(strings.ToUpper(strings.TrimSpace(r.ManualCardStatus))),
		ManualPixPage:        r.ManualPixPage,
	}
}

type PixelSettingsRequest struct {
	GooglePixelID      string `json:"google_pixel_id"`
	GooglePixelEnabled bool   `json:"google_pixel_enabled"`
	MetaPixelID        string `json:"meta_pixel_id"`
	MetaPixelEnabled   bool   `json:"meta_pixel_enabled"`
}

func (r PixelSettingsRequest) ToEntity() entities.PixelSettings {
	return entities.PixelSettings{
		GooglePixelID:      strings.TrimSpace(r.GooglePixelID),
		GooglePixelEnabled: r.GooglePixelEnabled,
		MetaPixelID:        strings.TrimSpace(r.MetaPixelID),
		MetaPixelEnabled:   r.MetaPixelEnabled,
	}
}
