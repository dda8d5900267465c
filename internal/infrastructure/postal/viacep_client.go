package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"checkout-service/internal/usecase/interfaces"
)

const defaultBaseURL = "https://viacep.com.br"

// viaCEPResponse mirrors the ViaCEP JSON payload. Unknown codes come back
// as 200 OK with {"erro": true}.
type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// ViaCEPClient resolves Brazilian postal codes against the public ViaCEP API.

type ViaCEPClient struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IPostalLookup = (*ViaCEPClient)(nil)

func NewViaCEPClient(baseURL string) *ViaCEPClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &ViaCEPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Lookup expects cep as exactly 8 digits; the caller validates the format.
func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (interfaces.PostalAddress, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return interfaces.PostalAddress{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[address][postal] viacep request failed cep=%s err=%v", cep, err)
		return interfaces.PostalAddress{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[address][postal] viacep unexpected status cep=%s status=%d", cep, resp.StatusCode)
		return interfaces.PostalAddress{}, fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return interfaces.PostalAddress{}, err
	}
	if body.Erro {
		log.Printf("[address][postal] viacep unknown cep=%s", cep)
		return interfaces.PostalAddress{CEP: cep, Found: false}, nil
	}

	return interfaces.PostalAddress{
		CEP:          cep,
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
		Found:        true,
	}, nil
}
