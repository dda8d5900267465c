package entities

import "time"

// Product is a sellable item managed by the admin surface and read-only
// to the checkout flow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (slug-index): slug
//
// Processing override:
//   - When UseCustomProcessing is set, ManualCardStatus replaces the global
//     manual outcome from PaymentSettings for card orders of this product.

type Product struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Description         string           `json:"description"`
	Price               float64          `json:"price"`
	ImageURL            string           `json:"image_url,omitempty"`
	IsDigital           bool             `json:"is_digital"`
	Slug                string           `json:"slug"`
	UseCustomProcessing bool             `json:"use_custom_processing"`
	ManualCardStatus    ManualCardStatus `json:"manual_card_status,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}
