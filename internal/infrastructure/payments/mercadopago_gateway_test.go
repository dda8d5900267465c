package payments

import (
	"context"
	"strings"
	"testing"
	"time"

	"checkout-service/internal/domain/entities"
	"checkout-service/internal/usecase/interfaces"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func validGatewayCustomer() entities.CustomerInfo {
	return entities.CustomerInfo{
		Name:  "Maria Silva",
		Email: "maria@example.com",
		CPF:   "52998224725",
		Phone: "11987654321",
	}
}

func TestNewMercadoPagoGateway_MockMode(t *testing.T) {
	t.Run("empty token forces mock mode", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatalf("expected mock mode with empty token")
		}
	})

	t.Run("mock flag wins over a token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("TEST-token", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestOfflineGateway_DeterministicResponses(t *testing.T) {
	g := NewOfflineGateway()
	g.now = fixedClock()
	ctx := context.Background()

	t.Run("customer", func(t *testing.T) {
		id, err := g.CreateCustomer(ctx, validGatewayCustomer())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(id, "mock-cus-") {
			t.Fatalf("unexpected customer id: %s", id)
		}
	})

	t.Run("card payment approves", func(t *testing.T) {
		id, status, err := g.CreateCardPayment(ctx, interfaces.CardCharge{Amount: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(id, "mock-pay-") || status != "approved" {
			t.Fatalf("unexpected result: id=%s status=%s", id, status)
		}
	})

	t.Run("pix charge carries qr and expiration", func(t *testing.T) {
		res, err := g.CreatePixPayment(ctx, interfaces.PixCharge{Amount: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(res.PaymentID, "mock-pix-") || res.QRCode == "" {
			t.Fatalf("unexpected result: %+v", res)
		}
		want := fixedClock()().Add(pixChargeTTL)
		if !res.ExpirationAt.Equal(want) {
			t.Fatalf("unexpected expiration: %v", res.ExpirationAt)
		}
	})

	t.Run("status check and cancel are no-ops", func(t *testing.T) {
		status, err := g.CheckPaymentStatus(ctx, "mock-pay-1")
		if err != nil || status != "approved" {
			t.Fatalf("unexpected result: %s %v", status, err)
		}
		if err := g.CancelPayment(ctx, "mock-pay-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNormalizeCardExpiry(t *testing.T) {
	cases := []struct {
		name      string
		month     string
		year      string
		wantMonth string
		wantYear  string
	}{
		{"four digit year untouched", "12", "2033", "12", "2033"},
		{"two digit year padded", "3", "27", "3", "2027"},
		{"whitespace trimmed", " 03 ", " 2027 ", "03", "2027"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			month, year := normalizeCardExpiry(tc.month, tc.year)
			if month != tc.wantMonth || year != tc.wantYear {
				t.Fatalf("got %s/%s, want %s/%s", month, year, tc.wantMonth, tc.wantYear)
			}
		})
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		in    string
		first string
		last  string
	}{
		{"Maria Silva", "Maria", "Silva"},
		{"Maria", "Maria", ""},
		{"Maria da Silva Souza", "Maria", "da Silva Souza"},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := splitName(tc.in)
		if first != tc.first || last != tc.last {
			t.Fatalf("splitName(%q) = %q/%q, want %q/%q", tc.in, first, last, tc.first, tc.last)
		}
	}
}
