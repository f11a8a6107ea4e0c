package cardgen

import (
	"strings"
	"testing"

	"github.com/alovak/cardcheck/card"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ClassifiesAsNetwork(t *testing.T) {
	for _, network := range card.Networks {
		for _, length := range Lengths(network) {
			for i := 0; i < 50; i++ {
				pan, err := Generate(network, length)
				require.NoError(t, err)
				require.Len(t, pan, length)
				require.True(t, IsDigits(pan))
				require.True(t, hasAnyPrefix(pan, Prefixes(network)), pan)

				got, err := card.Classify(pan)
				require.NoError(t, err)
				require.Equal(t, network, got, pan)
			}
		}
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func TestGenerate_DefaultLength(t *testing.T) {
	pan, err := Generate(card.Amex, 0)
	require.NoError(t, err)
	require.Len(t, pan, 15)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(card.Invalid, 16)
	require.Error(t, err)

	_, err = Generate(card.Visa, 15)
	require.EqualError(t, err, "VISA numbers must be 13 or 16 digits (got 15)")
}

func TestCheckDigit(t *testing.T) {
	cd, err := CheckDigit("411111111111111")
	require.NoError(t, err)
	require.Equal(t, byte('1'), cd)

	cd, err = CheckDigit("37828224631000")
	require.NoError(t, err)
	require.Equal(t, byte('5'), cd)

	_, err = CheckDigit("4111x")
	require.ErrorIs(t, err, card.ErrMalformed)
}

func TestMaskPAN(t *testing.T) {
	cases := []struct{ in, out string }{
		{"", ""},
		{"123", "***"},
		{"12345678", "****5678"},
		{"1234567890", "******7890"},
		{"4222222222222", "422222***2222"},
		{"4111111111111111", "411111******1111"},
		{"378282246310005", "378282*****0005"},
	}
	for _, c := range cases {
		require.Equal(t, c.out, MaskPAN(c.in), c.in)
	}
}

func TestLastN(t *testing.T) {
	require.Equal(t, "1111", LastN("4111111111111111", 4))
	require.Equal(t, "12", LastN("12", 4))
}

func TestHashPANHMAC(t *testing.T) {
	a := HashPANHMAC("4111111111111111", []byte("k1"))
	b := HashPANHMAC("4111111111111111", []byte("k1"))
	c := HashPANHMAC("4111111111111111", []byte("k2"))
	require.Len(t, a, 32)
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestRandomDigits(t *testing.T) {
	for _, count := range []int{0, 1, 31, 32, 33, 200} {
		body, err := randomDigits(count)
		require.NoError(t, err)
		require.Len(t, body, count)
		require.True(t, IsDigits(body), body)
	}

	body, err := randomDigits(-1)
	require.NoError(t, err)
	require.Empty(t, body)
}
