package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyName          = errors.New("name is empty")
	ErrEmptyEmail         = errors.New("email is empty")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrEmptyPhone         = errors.New("phone is empty")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrInvalidCPF         = errors.New("invalid cpf")
	ErrInvalidCEP         = errors.New("invalid cep")
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// StripNonDigits removes every non-digit rune from s.
func StripNonDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

// ValidatePhone accepts Brazilian numbers with 10 or 11 digits (area code
// plus 8- or 9-digit subscriber number).
func ValidatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrEmptyPhone
	}
	digits := StripNonDigits(phone)
	if len(digits) != 10 && len(digits) != 11 {
		return ErrInvalidPhone
	}
	return nil
}

// ValidateCPF checks the 11-digit Brazilian tax ID, including both
// modulo-11 check digits.
func ValidateCPF(cpf string) error {
	digits := StripNonDigits(cpf)
	if len(digits) != 11 {
		return ErrInvalidCPF
	}
	if allSameDigits(digits) {
		return ErrInvalidCPF
	}

	d := make([]int, 11)
	for i, r := range digits {
		d[i] = int(r - '0')
	}

	if cpfCheckDigit(d[:9], 10) != d[9] {
		return ErrInvalidCPF
	}
	if cpfCheckDigit(d[:10], 11) != d[10] {
		return ErrInvalidCPF
	}
	return nil
}

// cpfCheckDigit computes one check digit: sum(d[i] * (startWeight - i)),
// then (sum*10) % 11, with 10 and 11 mapped to 0.
func cpfCheckDigit(d []int, startWeight int) int {
	sum := 0
	for i, v := range d {
		sum += v * (startWeight - i)
	}
	digit := (sum * 10) % 11
	if digit >= 10 {
		digit = 0
	}
	return digit
}

func allSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// ValidateCEP checks the 8-digit Brazilian postal code.
func ValidateCEP(cep string) error {
	digits := StripNonDigits(cep)
	if len(digits) != 8 {
		return ErrInvalidCEP
	}
	return nil
}
