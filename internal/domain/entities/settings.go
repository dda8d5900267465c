package entities

import "time"

// ManualCardStatus is the merchant-configured outcome applied to card
// orders when manual processing is on.

type ManualCardStatus string

const (
	ManualCardStatusApproved ManualCardStatus = "APPROVED"
	ManualCardStatusDenied   ManualCardStatus = "DENIED"
	ManualCardStatusAnalysis ManualCardStatus = "ANALYSIS"
)

// PaymentSettings is the singleton merchant configuration read at checkout
// time. Exactly one row is authoritative; consumers must tolerate an absent
// row by falling back to DefaultPaymentSettings.

type PaymentSettings struct {
	GatewayEnabled       bool             `json:"gateway_enabled"`
	SandboxMode          bool             `json:"sandbox_mode"`
	SandboxAPIKey        string           `json:"sandbox_api_key,omitempty"`
	ProductionAPIKey     string           `json:"production_api_key,omitempty"`
	AllowPix             bool             `json:"allow_pix"`
	AllowCreditCard      bool             `json:"allow_credit_card"`
	ManualCardProcessing bool             `json:"manual_card_processing"`
	ManualCardStatus     ManualCardStatus `json:"manual_card_status"`
	ManualPixPage        bool             `json:"manual_pix_page"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// DefaultPaymentSettings are the safe defaults used when no settings row
// exists: gateway disabled, both methods allowed, sandbox on, manual
// outcome under analysis.
func DefaultPaymentSettings() PaymentSettings {
	return PaymentSettings{
		GatewayEnabled:       false,
		SandboxMode:          true,
		AllowPix:             true,
		AllowCreditCard:      true,
		ManualCardProcessing: false,
		ManualCardStatus:     ManualCardStatusAnalysis,
	}
}

// ActiveAPIKey returns the gateway key for the configured mode.
func (s PaymentSettings) ActiveAPIKey() string {
	if s.SandboxMode {
		return s.SandboxAPIKey
	}
	return s.ProductionAPIKey
}

// PixelSettings is the singleton analytics configuration managed by the
// admin dashboard. The service only stores it; pixel firing happens in
// the storefront client.

type PixelSettings struct {
	GooglePixelID      string    `json:"google_pixel_id,omitempty"`
	GooglePixelEnabled bool      `json:"google_pixel_enabled"`
	MetaPixelID        string    `json:"meta_pixel_id,omitempty"`
	MetaPixelEnabled   bool      `json:"meta_pixel_enabled"`
	UpdatedAt          time.Time `json:"updated_at"`
}
