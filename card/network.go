package card

import (
	"fmt"
	"strings"
)

// Network is the classification verdict for a card number.
type Network int

const (
	Invalid Network = iota
	Amex
	Visa
	Mastercard
)

var networkNames = [...]string{
	Invalid:    "INVALID",
	Amex:       "AMEX",
	Visa:       "VISA",
	Mastercard: "MASTERCARD",
}

// Networks lists the supported issuer networks.
var Networks = []Network{Amex, Visa, Mastercard}

func (n Network) String() string {
	if n < 0 || int(n) >= len(networkNames) {
		return networkNames[Invalid]
	}
	return networkNames[n]
}

// ParseNetwork accepts a network name in any case.
func ParseNetwork(s string) (Network, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for n, v := range networkNames {
		if v == name {
			return Network(n), nil
		}
	}
	return Invalid, fmt.Errorf("unknown network %q", s)
}

func (n Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Network) UnmarshalText(b []byte) error {
	v, err := ParseNetwork(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
