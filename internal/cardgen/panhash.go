package cardgen

import (
	"crypto/hmac"
	"crypto/sha256"
)

// HashPANHMAC fingerprints a card number for the verdict log. Equal numbers
// hashed with the same key match, so repeat lookups of one card can be
// correlated while only the masked form is readable.
func HashPANHMAC(pan string, key []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(pan))
	return mac.Sum(nil)
}
