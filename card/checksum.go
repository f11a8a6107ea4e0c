package card

// ComputeChecksum returns the Luhn sum of n's digits.
func ComputeChecksum[N Number](n N) (int, error) {
	digits, err := Digits(n)
	if err != nil {
		return 0, err
	}
	return Checksum(digits), nil
}

// Checksum applies Luhn's algorithm to digits given most-significant first.
// Counting from the rightmost digit at position 0, digits at odd positions are
// doubled and reduced by 9 when the result exceeds 9.
func Checksum(digits []int) int {
	sum := 0
	for pos := 0; pos < len(digits); pos++ {
		d := digits[len(digits)-1-pos]
		if pos%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum
}

// ValidChecksum reports whether sum passes the mod 10 check.
func ValidChecksum(sum int) bool {
	return sum%10 == 0
}
