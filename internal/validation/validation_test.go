package validation

import (
	"errors"
	"testing"
	"time"
)

func TestValidateCPF(t *testing.T) {
	t.Run("valid cpf", func(t *testing.T) {
		if err := ValidateCPF("52998224725"); err != nil {
			t.Fatalf("expected valid, got %v", err)
		}
	})

	t.Run("valid cpf with mask", func(t *testing.T) {
		if err := ValidateCPF("529.982.247-25"); err != nil {
			t.Fatalf("expected valid, got %v", err)
		}
	})

	t.Run("all zeros rejected", func(t *testing.T) {
		if err := ValidateCPF("00000000000"); !errors.Is(err, ErrInvalidCPF) {
			t.Fatalf("expected ErrInvalidCPF, got %v", err)
		}
	})

	t.Run("repeated digits rejected", func(t *testing.T) {
		for _, cpf := range []string{"11111111111", "99999999999"} {
			if err := ValidateCPF(cpf); !errors.Is(err, ErrInvalidCPF) {
				t.Fatalf("expected ErrInvalidCPF for %s, got %v", cpf, err)
			}
		}
	})

	t.Run("wrong length rejected", func(t *testing.T) {
		if err := ValidateCPF("123"); !errors.Is(err, ErrInvalidCPF) {
			t.Fatalf("expected ErrInvalidCPF, got %v", err)
		}
	})

	t.Run("wrong check digit rejected", func(t *testing.T) {
		if err := ValidateCPF("52998224726"); !errors.Is(err, ErrInvalidCPF) {
			t.Fatalf("expected ErrInvalidCPF, got %v", err)
		}
	})
}

func TestValidateCardNumber(t *testing.T) {
	t.Run("valid luhn", func(t *testing.T) {
		if err := ValidateCardNumber("4532015112830366"); err != nil {
			t.Fatalf("expected valid, got %v", err)
		}
	})

	t.Run("luhn failure rejected", func(t *testing.T) {
		if err := ValidateCardNumber("1234567890123"); !errors.Is(err, ErrInvalidCardNumber) {
			t.Fatalf("expected ErrInvalidCardNumber, got %v", err)
		}
	})

	t.Run("too short rejected", func(t *testing.T) {
		if err := ValidateCardNumber("411111111111"); !errors.Is(err, ErrInvalidCardNumber) {
			t.Fatalf("expected ErrInvalidCardNumber, got %v", err)
		}
	})

	t.Run("spaces stripped", func(t *testing.T) {
		if err := ValidateCardNumber("4532 0151 1283 0366"); err != nil {
			t.Fatalf("expected valid, got %v", err)
		}
	})
}

func TestValidateCVV(t *testing.T) {
	for _, cvv := range []string{"123", "1234"} {
		if err := ValidateCVV(cvv); err != nil {
			t.Fatalf("expected %s valid, got %v", cvv, err)
		}
	}
	for _, cvv := range []string{"12", "12345", "12a"} {
		if err := ValidateCVV(cvv); !errors.Is(err, ErrInvalidCVV) {
			t.Fatalf("expected ErrInvalidCVV for %s, got %v", cvv, err)
		}
	}
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("future expiry valid", func(t *testing.T) {
		if err := ValidateExpiry("12", "2027", now); err != nil {
			t.Fatalf("expected valid, got %v", err)
		}
	})

	t.Run("two digit year valid", func(t *testing.T) {
		if err := ValidateExpiry("07", "26", now); err != nil {
			t.Fatalf("expected valid, got %v", err)
		}
	})

	t.Run("past month rejected", func(t *testing.T) {
		if err := ValidateExpiry("05", "2026", now); !errors.Is(err, ErrInvalidExpiry) {
			t.Fatalf("expected ErrInvalidExpiry, got %v", err)
		}
	})

	t.Run("month out of range rejected", func(t *testing.T) {
		if err := ValidateExpiry("13", "2027", now); !errors.Is(err, ErrInvalidExpiry) {
			t.Fatalf("expected ErrInvalidExpiry, got %v", err)
		}
	})
}

func TestDetectCardBrand(t *testing.T) {
	cases := []struct {
		number string
		want   string
	}{
		{"4111111111111111", BrandVisa},
		{"5500000000000004", BrandMastercard},
		{"340000000000009", BrandAmex},
		{"30000000000004", BrandDiners},
		{"6011000000000004", BrandDiscover},
		{"6505000000000000", BrandElo},
		{"6062820000000000", BrandHipercard},
		{"6200000000000005", BrandUnionPay},
		{"9999999999999999", BrandUnknown},
		{"", BrandUnknown},
	}

	for _, tc := range cases {
		if got := DetectCardBrand(tc.number); got != tc.want {
			t.Fatalf("brand of %q: expected %s, got %s", tc.number, tc.want, got)
		}
	}
}

func TestValidateEmailAndPhone(t *testing.T) {
	if err := ValidateEmail("user@example.com"); err != nil {
		t.Fatalf("expected valid email, got %v", err)
	}
	if err := ValidateEmail("not-an-email"); !errors.Is(err, ErrInvalidEmailFormat) {
		t.Fatalf("expected ErrInvalidEmailFormat, got %v", err)
	}
	if err := ValidateEmail(" "); !errors.Is(err, ErrEmptyEmail) {
		t.Fatalf("expected ErrEmptyEmail, got %v", err)
	}
	if err := ValidatePhone("(11) 98765-4321"); err != nil {
		t.Fatalf("expected valid phone, got %v", err)
	}
	if err := ValidatePhone("123"); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
}

func TestValidateCEP(t *testing.T) {
	if err := ValidateCEP("01310-100"); err != nil {
		t.Fatalf("expected valid cep, got %v", err)
	}
	if err := ValidateCEP("0131010"); !errors.Is(err, ErrInvalidCEP) {
		t.Fatalf("expected ErrInvalidCEP, got %v", err)
	}
}
