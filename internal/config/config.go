package config

import (
	"github.com/caarlos0/env/v11"
)

// Config carries every environment-driven knob of the service. It is loaded
// once at startup and passed down explicitly; nothing reads the environment
// after Load returns, so a test can build a Config literal directly.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`

	ViaCEPBaseURL string `env:"VIACEP_BASE_URL" envDefault:"https://viacep.com.br"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
