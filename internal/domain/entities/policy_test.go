package entities

import "testing"

func TestEffectivePolicy(t *testing.T) {
	t.Run("product override wins", func(t *testing.T) {
		p := Product{UseCustomProcessing: true, ManualCardStatus: ManualCardStatusDenied}
		s := PaymentSettings{ManualCardProcessing: false, ManualCardStatus: ManualCardStatusApproved}

		got := EffectivePolicy(p, s)
		if !got.ManualProcessing || got.ManualStatus != ManualCardStatusDenied {
			t.Fatalf("unexpected policy: %+v", got)
		}
	})

	t.Run("product override with empty status defaults to analysis", func(t *testing.T) {
		p := Product{UseCustomProcessing: true}
		got := EffectivePolicy(p, PaymentSettings{})
		if got.ManualStatus != ManualCardStatusAnalysis {
			t.Fatalf("unexpected status: %s", got.ManualStatus)
		}
	})

	t.Run("global settings used without override", func(t *testing.T) {
		s := PaymentSettings{ManualCardProcessing: true, ManualCardStatus: ManualCardStatusApproved}
		got := EffectivePolicy(Product{}, s)
		if !got.ManualProcessing || got.ManualStatus != ManualCardStatusApproved {
			t.Fatalf("unexpected policy: %+v", got)
		}
	})

	t.Run("empty global status defaults to analysis", func(t *testing.T) {
		got := EffectivePolicy(Product{}, PaymentSettings{})
		if got.ManualProcessing || got.ManualStatus != ManualCardStatusAnalysis {
			t.Fatalf("unexpected policy: %+v", got)
		}
	})
}

func TestResolveOrderStatus(t *testing.T) {
	cases := []struct {
		name          string
		method        PaymentMethod
		gatewayStatus string
		policy        ProcessingPolicy
		want          PaymentStatus
	}{
		{"manual approved", PaymentMethodCreditCard, "", ProcessingPolicy{true, ManualCardStatusApproved}, PaymentStatusPaid},
		{"manual denied", PaymentMethodCreditCard, "", ProcessingPolicy{true, ManualCardStatusDenied}, PaymentStatusCancelled},
		{"manual analysis", PaymentMethodCreditCard, "", ProcessingPolicy{true, ManualCardStatusAnalysis}, PaymentStatusPending},
		{"automatic confirmed", PaymentMethodCreditCard, "CONFIRMED", ProcessingPolicy{}, PaymentStatusPaid},
		{"automatic approved lowercase", PaymentMethodCreditCard, "approved", ProcessingPolicy{}, PaymentStatusPaid},
		{"automatic anything else pending", PaymentMethodCreditCard, "in_process", ProcessingPolicy{}, PaymentStatusPending},
		{"automatic empty pending", PaymentMethodCreditCard, "", ProcessingPolicy{}, PaymentStatusPending},
		{"pix always pending", PaymentMethodPix, "CONFIRMED", ProcessingPolicy{true, ManualCardStatusApproved}, PaymentStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveOrderStatus(tc.method, tc.gatewayStatus, tc.policy)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
