// Package card checks card numbers with Luhn's algorithm and classifies them
// by issuer network.
package card

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

var (
	// ErrMalformed is wrapped by every input validation error.
	ErrMalformed = errors.New("malformed card number")

	ErrEmpty    = fmt.Errorf("%w: empty", ErrMalformed)
	ErrNegative = fmt.Errorf("%w: negative", ErrMalformed)
	ErrNonDigit = fmt.Errorf("%w: non-digit character", ErrMalformed)
)

// Number is a card number given either as an integer or as a digit-only string.
type Number interface {
	~string | constraints.Integer
}

// Digits returns the decimal digits of n, most-significant first.
func Digits[N Number](n N) ([]int, error) {
	s, err := decimal(n)
	if err != nil {
		return nil, err
	}
	return parseDigits(s)
}

func decimal[N Number](n N) (string, error) {
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() < 0 {
			return "", ErrNegative
		}
		return strconv.FormatInt(v.Int(), 10), nil
	default:
		return strconv.FormatUint(v.Uint(), 10), nil
	}
}

func parseDigits(s string) ([]int, error) {
	if s == "" {
		return nil, ErrEmpty
	}
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("%w at offset %d", ErrNonDigit, i)
		}
		digits[i] = int(s[i] - '0')
	}
	return digits, nil
}
