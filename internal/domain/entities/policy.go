package entities

import "strings"

// ProcessingPolicy is the effective card-processing configuration for one
// checkout: the product-level override when present, otherwise the global
// settings. Resolving it in one place keeps the precedence rule out of
// call sites.

type ProcessingPolicy struct {
	ManualProcessing bool
	ManualStatus     ManualCardStatus
}

// EffectivePolicy resolves the two-level processing override.
//
// Precedence: product.UseCustomProcessing wins over the global flags.
// A product override always implies manual processing for that product.
func EffectivePolicy(product Product, settings PaymentSettings) ProcessingPolicy {
	if product.UseCustomProcessing {
		status := product.ManualCardStatus
		if status == "" {
			status = ManualCardStatusAnalysis
		}
		return ProcessingPolicy{ManualProcessing: true, ManualStatus: status}
	}

	status := settings.ManualCardStatus
	if status == "" {
		status = ManualCardStatusAnalysis
	}
	return ProcessingPolicy{
		ManualProcessing: settings.ManualCardProcessing,
		ManualStatus:     status,
	}
}

// ResolveOrderStatus computes the status a new order is created with.
//
// Rules:
//   - pix: always PENDING; out-of-band reconciliation moves it to PAID.
//   - card + manual processing: APPROVED => PAID, DENIED => CANCELLED,
//     anything else (ANALYSIS included) => PENDING.
//   - card + automatic processing: a gateway-confirmed status maps to PAID;
//     every other gateway value maps to PENDING as the safe default.
func ResolveOrderStatus(method PaymentMethod, gatewayStatus string, policy ProcessingPolicy) PaymentStatus {
	if method == PaymentMethodPix {
		return PaymentStatusPending
	}

	if policy.ManualProcessing {
		switch policy.ManualStatus {
		case ManualCardStatusApproved:
			return PaymentStatusPaid
		case ManualCardStatusDenied:
			return PaymentStatusCancelled
		default:
			return PaymentStatusPending
		}
	}

	switch strings.ToUpper(strings.TrimSpace(gatewayStatus)) {
	case "CONFIRMED", "APPROVED":
		return PaymentStatusPaid
	default:
		return PaymentStatusPending
	}
}
