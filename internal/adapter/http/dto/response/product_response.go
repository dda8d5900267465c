package response

import (
	"time"

	"checkout-service/internal/domain/entities"
	"checkout-service/internal/format"
)

type ProductResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Price               float64   `json:"price"`
	PriceFormatted      string    `json:"price_formatted"`
	ImageURL            string    `json:"image_url,omitempty"`
	IsDigital           bool      `json:"is_digital"`
	Slug                string    `json:"slug"`
	UseCustomProcessing bool      `json:"use_custom_processing"`
	ManualCardStatus    string    `json:"manual_card_status,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Description:         p.Description,
		Price:               p.Price,
		PriceFormatted:      format.Currency(p.Price),
		ImageURL:            p.ImageURL,
		IsDigital:           p.IsDigital,
		Slug:                p.Slug,
		UseCustomProcessing: p.UseCustomProcessing,
		ManualCardStatus:    string(p.ManualCardStatus),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
