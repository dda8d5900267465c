package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply when env is unset", func(t *testing.T) {
		for _, key := range []string{"PORT", "AWS_REGION", "PAYMENT_GATEWAY_MOCK"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		c, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Port != "8080" {
			t.Fatalf("expected default port, got %s", c.Port)
		}
		if c.AWSRegion != "us-east-1" {
			t.Fatalf("expected default region, got %s", c.AWSRegion)
		}
		if c.PaymentGatewayMock {
			t.Fatalf("expected mock mode off by default")
		}
	})

	t.Run("env values win over defaults", func(t *testing.T) {
		t.Setenv("PORT", "9999")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")

		c, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Port != "9999" {
			t.Fatalf("expected overridden port, got %s", c.Port)
		}
		if !c.PaymentGatewayMock {
			t.Fatalf("expected mock mode on")
		}
		if c.MercadoPagoAccessToken != "TEST-token" {
			t.Fatalf("unexpected token %s", c.MercadoPagoAccessToken)
		}
	})
}
