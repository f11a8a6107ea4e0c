package cardgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/alovak/cardcheck/card"
)

type rule struct {
	prefixes []string
	lengths  []int
}

// rules mirrors the prefix and length checks of card.ClassifyDigits.
var rules = map[card.Network]rule{
	card.Amex:       {prefixes: []string{"34", "37"}, lengths: []int{15}},
	card.Visa:       {prefixes: []string{"4"}, lengths: []int{13, 16}},
	card.Mastercard: {prefixes: []string{"51", "52", "53", "54", "55"}, lengths: []int{16}},
}

// Prefixes returns the leading digits accepted for network.
func Prefixes(network card.Network) []string {
	return append([]string(nil), rules[network].prefixes...)
}

// Lengths returns the PAN lengths accepted for network.
func Lengths(network card.Network) []int {
	return append([]int(nil), rules[network].lengths...)
}

// Generate returns a random Luhn-valid PAN that classifies as network.
// A zero length picks the network's first accepted length.
func Generate(network card.Network, length int) (string, error) {
	r, ok := rules[network]
	if !ok {
		return "", fmt.Errorf("unsupported network: %s", network)
	}
	if length == 0 {
		length = r.lengths[0]
	}
	if !containsInt(r.lengths, length) {
		return "", fmt.Errorf("%s numbers must be %s digits (got %d)", network, joinInts(r.lengths), length)
	}

	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(r.prefixes))))
	if err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	prefix := r.prefixes[idx.Int64()]

	fill, err := randomDigits(length - 1 - len(prefix))
	if err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	body := prefix + fill
	cd, err := CheckDigit(body)
	if err != nil {
		return "", err
	}
	return body + string(cd), nil
}

// CheckDigit returns the digit that makes body+digit pass the Luhn check.
func CheckDigit(body string) (byte, error) {
	digits, err := card.Digits(body + "0")
	if err != nil {
		return 0, err
	}
	sum := card.Checksum(digits)
	return '0' + byte((10-sum%10)%10), nil
}

// randomDigits fills the account body between a network prefix and the
// check digit. Bytes of 250 and above are skipped, leaving 25 whole runs of
// 0-9, so no digit is favoured.
func randomDigits(count int) (string, error) {
	body := make([]byte, 0, max(count, 0))
	var chunk [32]byte
	for len(body) < count {
		if _, err := rand.Read(chunk[:]); err != nil {
			return "", err
		}
		for _, b := range chunk {
			if len(body) == count {
				break
			}
			if b < 250 {
				body = append(body, '0'+b%10)
			}
		}
	}
	return string(body), nil
}

func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// MaskPAN keeps the first six and last four digits of a PAN. Inputs shorter
// than any PAN keep only the last four.
func MaskPAN(pan string) string {
	n := len(pan)
	if n == 0 {
		return ""
	}
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	if n < 13 {
		return strings.Repeat("*", n-4) + LastN(pan, 4)
	}
	return pan[:6] + strings.Repeat("*", n-10) + LastN(pan, 4)
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func joinInts(list []int) string {
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " or ")
}
