package request

import (
	"strings"

	"checkout-service/internal/domain/entities"
)

type ProductRequest struct {
	Name                string  `json:"name" binding:"required"`
	Description         string  `json:"description"`
	Price               float64 `json:"price" binding:"required"`
	ImageURL            string  `json:"image_url"`
	IsDigital           bool    `json:"is_digital"`
	Slug                string  `json:"slug"`
	UseCustomProcessing bool    `json:"use_custom_processing"`
	ManualCardStatus    string  `json:"manual_card_status"`
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Name:                strings.TrimSpace(r.Name),
		Description:         strings.TrimSpace(r.Description),
		Price:               r.Price,
		ImageURL:            strings.TrimSpace(r.ImageURL),
		IsDigital:           r.IsDigital,
		Slug:                strings.TrimSpace(r.Slug),
		UseCustomProcessing: r.UseCustomProcessing,
		ManualCardStatus:    entities.ManualCardStatus(strings.ToUpper(strings.TrimSpace(r.ManualCardStatus))),
	}
}
