package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"checkout-service/internal/format"
	"checkout-service/internal/usecase/interfaces"
	"checkout-service/internal/validation"
)

var ErrCEPNotFound = errors.New("cep not found")

// deliveryEstimateDays is a fixed business rule, not a logistics estimate.
const deliveryEstimateDays = 7

// AddressInfo is the auto-fill payload for the checkout address step.

type AddressInfo struct {
	CEP              string `json:"cep"`
	Street           string `json:"street"`
	Neighborhood     string `json:"neighborhood"`
	City             string `json:"city"`
	State            string `json:"state"`
	DeliveryEstimate string `json:"delivery_estimate"`
}

// IAddressUseCase resolves a postal code into address fields plus a
// delivery-estimate label.

type IAddressUseCase interface {
	Lookup(ctx context.Context, cep string) (AddressInfo, error)
}

type AddressUseCase struct {
	lookup interfaces.IPostalLookup
	now    func() time.Time
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

func NewAddressUseCase(lookup interfaces.IPostalLookup) *AddressUseCase {
	return &AddressUseCase{lookup: lookup, now: time.Now}
}

func (u *AddressUseCase) Lookup(ctx context.Context, cep string) (AddressInfo, error) {
	if err := validation.ValidateCEP(cep); err != nil {
		return AddressInfo{}, err
	}
	digits := validation.StripNonDigits(cep)

	result, err := u.lookup.Lookup(ctx, digits)
	if err != nil {
		log.Printf("[address][usecase] lookup failed cep=%s err=%v", digits, err)
		return AddressInfo{}, err
	}
	if !result.Found {
		log.Printf("[address][usecase] cep not found cep=%s", digits)
		return AddressInfo{}, ErrCEPNotFound
	}

	estimate := u.now().AddDate(0, 0, deliveryEstimateDays).Format("02/01/2006")
	return AddressInfo{
		CEP:              format.CEP(digits),
		Street:           result.Street,
		Neighborhood:     result.Neighborhood,
		City:             result.City,
		State:            result.State,
		DeliveryEstimate: estimate,
	}, nil
}
