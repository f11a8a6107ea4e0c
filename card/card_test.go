package card_test

import (
	"sync"
	"testing"

	"github.com/alovak/cardcheck/card"
	"github.com/stretchr/testify/require"
)

var classifyCases = []struct {
	number string
	want   card.Network
}{
	{"378282246310005", card.Amex},
	{"371449635398431", card.Amex},
	{"5555555555554444", card.Mastercard},
	{"5105105105105100", card.Mastercard},
	{"4111111111111111", card.Visa},
	{"4012888888881881", card.Visa},
	{"4222222222222", card.Visa},
	{"1234567890", card.Invalid},
	{"369421438430814", card.Invalid},
	{"4062901840", card.Invalid},
	{"5673598276138003", card.Invalid},
	{"4111111111111113", card.Invalid},
	{"4222222222223", card.Invalid},
}

func TestComputeChecksum(t *testing.T) {
	sum, err := card.ComputeChecksum(4003600000000014)
	require.NoError(t, err)
	require.Equal(t, 20, sum)

	sum, err = card.ComputeChecksum("4003600000000014")
	require.NoError(t, err)
	require.Equal(t, 20, sum)

	sum, err = card.ComputeChecksum(uint64(378282246310005))
	require.NoError(t, err)
	require.Equal(t, 60, sum)
}

func TestComputeChecksum_SingleDigit(t *testing.T) {
	for d := 0; d <= 9; d++ {
		sum, err := card.ComputeChecksum(d)
		require.NoError(t, err)
		require.Equal(t, d, sum)
	}
}

func TestChecksum_DoublesEveryOtherDigitFromRight(t *testing.T) {
	// 18: 8 unchanged, 1 doubled
	require.Equal(t, 10, card.Checksum([]int{1, 8}))
	// 59: 9 unchanged, 5 doubled to 10 and reduced to 1
	require.Equal(t, 10, card.Checksum([]int{5, 9}))
	require.Equal(t, 0, card.Checksum(nil))
}

func TestClassify(t *testing.T) {
	for _, c := range classifyCases {
		t.Run(c.number, func(t *testing.T) {
			got, err := card.Classify(c.number)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
			require.Equal(t, c.want.String(), got.String())
		})
	}
}

func TestClassify_Integer(t *testing.T) {
	got, err := card.Classify(int64(5105105105105100))
	require.NoError(t, err)
	require.Equal(t, card.Mastercard, got)

	got, err = card.Classify(uint(4222222222222))
	require.NoError(t, err)
	require.Equal(t, card.Visa, got)
}

func TestClassify_LengthBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		number string
		want   card.Network
	}{
		// every number below passes the checksum
		{"amex 14 digits", "34111111111113", card.Invalid},
		{"amex 16 digits", "3411111111111110", card.Invalid},
		{"visa 14 digits", "41111111111114", card.Invalid},
		{"visa 15 digits", "411111111111116", card.Invalid},
		{"visa 19 digits", "4111111111111111110", card.Invalid},
		{"mastercard 15 digits", "511111111111115", card.Invalid},
		{"mastercard 16 digits", "5111111111111118", card.Mastercard},
		{"mastercard 17 digits", "51111111111111112", card.Invalid},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sum, err := card.ComputeChecksum(c.number)
			require.NoError(t, err)
			require.True(t, card.ValidChecksum(sum))

			got, err := card.Classify(c.number)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestClassify_PrefixRules(t *testing.T) {
	cases := []struct {
		name   string
		number string
	}{
		// "34" prefix with a valid checksum but 16 digits must not be AMEX
		{"34 prefix wrong length", "3400000000000000"},
		{"34 prefix 14 digits", "34000000000000"},
		// a failed AMEX rule must not fall through to the VISA length check
		{"37 prefix 16 digits", "3700000000000007"},
		{"35 prefix", "351111111111118"},
		{"30 prefix", "300000000000007"},
		{"56 prefix", "5611111111111113"},
		{"50 prefix", "5011111111111119"},
		{"unsupported leading digit", "611111111111114"},
		{"single zero", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sum, err := card.ComputeChecksum(c.number)
			require.NoError(t, err)
			require.True(t, card.ValidChecksum(sum), "checksum %d", sum)

			got, err := card.Classify(c.number)
			require.NoError(t, err)
			require.Equal(t, card.Invalid, got)
		})
	}
}

func TestChecksum_SingleDigitTamperingDetected(t *testing.T) {
	for _, c := range classifyCases {
		if c.want == card.Invalid {
			continue
		}
		digits, err := card.Digits(c.number)
		require.NoError(t, err)
		sum := card.Checksum(digits)
		require.True(t, card.ValidChecksum(sum))

		for i := range digits {
			orig := digits[i]
			for d := 0; d <= 9; d++ {
				if d == orig {
					continue
				}
				digits[i] = d
				tampered := card.Checksum(digits)
				require.NotEqual(t, sum, tampered, "%s: digit %d set to %d", c.number, i, d)
				require.False(t, card.ValidChecksum(tampered), "%s: digit %d set to %d", c.number, i, d)
			}
			digits[i] = orig
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	for _, c := range classifyCases {
		first, err := card.Classify(c.number)
		require.NoError(t, err)
		second, err := card.Classify(c.number)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestClassify_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, len(classifyCases)*8)
	for i := 0; i < 8; i++ {
		for _, c := range classifyCases {
			wg.Add(1)
			go func(number string, want card.Network) {
				defer wg.Done()
				got, err := card.Classify(number)
				if err != nil || got != want {
					errs <- number
				}
			}(c.number, c.want)
		}
	}
	wg.Wait()
	close(errs)
	for number := range errs {
		t.Errorf("unexpected verdict for %s", number)
	}
}

func TestClassify_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		number string
		want   error
	}{
		{"empty", "", card.ErrEmpty},
		{"spaces", "4111 1111 1111 1111", card.ErrNonDigit},
		{"dashes", "4111-1111-1111-1111", card.ErrNonDigit},
		{"letters", "41111111111111x1", card.ErrNonDigit},
		{"sign", "-4111111111111111", card.ErrNonDigit},
		{"decimal", "4111111111111111.0", card.ErrNonDigit},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := card.Classify(c.number)
			require.ErrorIs(t, err, c.want)
			require.ErrorIs(t, err, card.ErrMalformed)
			require.Equal(t, card.Invalid, got)

			_, err = card.ComputeChecksum(c.number)
			require.ErrorIs(t, err, card.ErrMalformed)
		})
	}

	_, err := card.Classify(-4111111111111111)
	require.ErrorIs(t, err, card.ErrNegative)
	require.ErrorIs(t, err, card.ErrMalformed)
}
