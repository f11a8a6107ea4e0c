package card

// Classify validates n's checksum and matches its prefix and length against
// the AMEX, VISA and MASTERCARD rules. Malformed input yields Invalid and an
// error wrapping ErrMalformed.
func Classify[N Number](n N) (Network, error) {
	digits, err := Digits(n)
	if err != nil {
		return Invalid, err
	}
	return ClassifyDigits(digits), nil
}

// ClassifyDigits classifies an already extracted digit sequence.
func ClassifyDigits(digits []int) Network {
	if len(digits) == 0 || !ValidChecksum(Checksum(digits)) {
		return Invalid
	}

	length := len(digits)
	// each leading digit has exactly one rule; a failed rule never falls
	// through to another network
	switch digits[0] {
	case 3:
		if length == 15 && (digits[1] == 4 || digits[1] == 7) {
			return Amex
		}
		return Invalid
	case 4:
		if length == 13 || length == 16 {
			return Visa
		}
		return Invalid
	case 5:
		if length == 16 && digits[1] >= 1 && digits[1] <= 5 {
			return Mastercard
		}
		return Invalid
	default:
		return Invalid
	}
}
