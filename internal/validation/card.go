package validation

import (
	"errors"
	"strconv"
	"time"
)

var (
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrInvalidCVV        = errors.New("invalid cvv")
	ErrInvalidExpiry     = errors.New("invalid card expiry")
)

// ValidateCardNumber checks length (13-19 digits) and the Luhn checksum.
func ValidateCardNumber(number string) error {
	digits := StripNonDigits(number)
	if len(digits) < 13 || len(digits) > 19 {
		return ErrInvalidCardNumber
	}
	if !luhnValid(digits) {
		return ErrInvalidCardNumber
	}
	return nil
}

func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		n := int(digits[i] - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	return sum%10 == 0
}

func ValidateCVV(cvv string) error {
	digits := StripNonDigits(cvv)
	if len(digits) < 3 || len(digits) > 4 || digits != cvv {
		return ErrInvalidCVV
	}
	return nil
}

// ValidateExpiry checks month range and that the card has not expired.
// Year accepts both 2- and 4-digit forms.
func ValidateExpiry(month, year string, now time.Time) error {
	m, err := strconv.Atoi(StripNonDigits(month))
	if err != nil || m < 1 || m > 12 {
		return ErrInvalidExpiry
	}
	y, err := strconv.Atoi(StripNonDigits(year))
	if err != nil {
		return ErrInvalidExpiry
	}
	if y < 100 {
		y += 2000
	}
	if y < now.Year() {
		return ErrInvalidExpiry
	}
	if y == now.Year() && m < int(now.Month()) {
		return ErrInvalidExpiry
	}
	return nil
}
