package validation

import (
	"regexp"
	"strings"
)

// Card brand labels returned by DetectCardBrand.
const (
	BrandVisa       = "visa"
	BrandMastercard = "mastercard"
	BrandAmex       = "amex"
	BrandDiners     = "diners"
	BrandDiscover   = "discover"
	BrandElo        = "elo"
	BrandHipercard  = "hipercard"
	BrandUnionPay   = "unionpay"
	BrandUnknown    = "unknown"
)

// brandRules are evaluated in order; the first match wins. Country-specific
// brands (Elo, Hipercard) come before the generic ranges they overlap with
// (Visa 4x, Discover/UnionPay 6x).
var brandRules = []struct {
	brand   string
	pattern *regexp.Regexp
}{
	{BrandElo, regexp.MustCompile(`^(401178|401179|431274|438935|451416|457393|457631|457632|504175|506699|5067|509|627780|636297|636368|650031|650051|6505|6516|6550)`)},
	{BrandHipercard, regexp.MustCompile(`^(606282|3841)`)},
	{BrandAmex, regexp.MustCompile(`^3[47]`)},
	{BrandDiners, regexp.MustCompile(`^3(0[0-5]|[68])`)},
	{BrandDiscover, regexp.MustCompile(`^(6011|65|64[4-9])`)},
	{BrandUnionPay, regexp.MustCompile(`^(62|88)`)},
	{BrandMastercard, regexp.MustCompile(`^5[1-5]`)},
	{BrandVisa, regexp.MustCompile(`^4`)},
}

// DetectCardBrand pattern-matches the card number prefix to a brand label.
// Unrecognized prefixes map to BrandUnknown.
func DetectCardBrand(number string) string {
	digits := StripNonDigits(strings.TrimSpace(number))
	if digits == "" {
		return BrandUnknown
	}
	for _, rule := range brandRules {
		if rule.pattern.MatchString(digits) {
			return rule.brand
		}
	}
	return BrandUnknown
}
