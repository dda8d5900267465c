// Package format holds the display masks used by API responses.
package format

import (
	"fmt"
	"strings"

	"checkout-service/internal/validation"
)

// CPF masks an 11-digit CPF as NNN.NNN.NNN-NN. Inputs that are not
// 11 digits are returned unchanged.
func CPF(cpf string) string {
	d := validation.StripNonDigits(cpf)
	if len(d) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", d[0:3], d[3:6], d[6:9], d[9:11])
}

// CEP masks an 8-digit postal code as NNNNN-NNN.
func CEP(cep string) string {
	d := validation.StripNonDigits(cep)
	if len(d) != 8 {
		return cep
	}
	return d[0:5] + "-" + d[5:8]
}

// Phone masks Brazilian numbers as (NN) NNNN-NNNN or (NN) NNNNN-NNNN.
func Phone(phone string) string {
	d := validation.StripNonDigits(phone)
	switch len(d) {
	case 10:
		return fmt.Sprintf("(%s) %s-%s", d[0:2], d[2:6], d[6:10])
	case 11:
		return fmt.Sprintf("(%s) %s-%s", d[0:2], d[2:7], d[7:11])
	default:
		return phone
	}
}

// Currency renders a value in BRL convention: R$ 1.234,56.
func Currency(value float64) string {
	neg := value < 0
	if neg {
		value = -value
	}

	s := fmt.Sprintf("%.2f", value)
	intPart := s[:len(s)-3]
	cents := s[len(s)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + cents
	if neg {
		out = "-" + out
	}
	return out
}

// CardNumber groups digits in blocks of four.
func CardNumber(number string) string {
	d := validation.StripNonDigits(number)
	if d == "" {
		return number
	}
	var groups []string
	for len(d) > 4 {
		groups = append(groups, d[:4])
		d = d[4:]
	}
	groups = append(groups, d)
	return strings.Join(groups, " ")
}

// Expiry renders MM/YY from loose month/year inputs.
func Expiry(month, year string) string {
	m := validation.StripNonDigits(month)
	y := validation.StripNonDigits(year)
	if len(m) == 1 {
		m = "0" + m
	}
	if len(y) == 4 {
		y = y[2:]
	}
	if m == "" || y == "" {
		return ""
	}
	return m + "/" + y
}
