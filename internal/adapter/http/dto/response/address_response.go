package response

import (
	"checkout-service/internal/usecase"
)

type AddressResponse struct {
	CEP              string `json:"cep"`
	Street           string `json:"street"`
	Neighborhood     string `json:"neighborhood"`
	City             string `json:"city"`
	State            string `json:"state"`
	DeliveryEstimate string `json:"delivery_estimate"`
}

func FromAddressInfo(info usecase.AddressInfo) AddressResponse {
	return AddressResponse{
		CEP:              info.CEP,
		Street:           info.Street,
		Neighborhood:     info.Neighborhood,
		City:             info.City,
		State:            info.State,
		DeliveryEstimate: info.DeliveryEstimate,
	}
}
