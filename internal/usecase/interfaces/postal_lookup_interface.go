package interfaces

import "context"

// PostalAddress is the lookup result for one postal code. Found is false
// when the service reports an unknown code.

type PostalAddress struct {
	CEP          string
	Street       string
	Neighborhood string
	City         string
	State        string
	Found        bool
}

// IPostalLookup abstracts the external postal-code lookup service.

type IPostalLookup interface {
	Lookup(ctx context.Context, cep string) (PostalAddress, error)
}
