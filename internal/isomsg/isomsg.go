// Package isomsg reads the primary account number (DE2) out of packed
// ISO 8583 messages.
package isomsg

import (
	"errors"
	"fmt"

	"github.com/alovak/cardcheck/card"
	"github.com/moov-io/iso8583"
	"github.com/moov-io/iso8583/specs"
)

const (
	fieldPAN            = 2
	fieldProcessingCode = 3
)

// fixed numeric fields are left padded with zeros in this layout
var layout = specs.Spec87ASCII

var (
	ErrNoPAN     = errors.New("message has no primary account number (DE2)")
	ErrMalformed = errors.New("malformed iso8583 message")
)

// PAN unpacks msg with the ISO 8583:1987 ASCII field layout and returns DE2.
func PAN(packed []byte) (string, error) {
	if len(packed) == 0 {
		return "", fmt.Errorf("%w: empty", ErrMalformed)
	}
	msg := iso8583.NewMessage(layout)
	if err := msg.Unpack(packed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !msg.Bitmap().IsSet(fieldPAN) {
		return "", ErrNoPAN
	}
	pan, err := msg.GetString(fieldPAN)
	if err != nil {
		return "", fmt.Errorf("reading DE2: %w", err)
	}
	if pan == "" {
		return "", ErrNoPAN
	}
	return pan, nil
}

// Classify extracts DE2 from packed and classifies it.
func Classify(packed []byte) (string, card.Network, error) {
	pan, err := PAN(packed)
	if err != nil {
		return "", card.Invalid, err
	}
	network, err := card.Classify(pan)
	if err != nil {
		return pan, card.Invalid, fmt.Errorf("classifying DE2: %w", err)
	}
	return pan, network, nil
}

// Pack builds a minimal message carrying pan in DE2. It exists for demos and
// tests that need a realistic payload.
func Pack(mti, pan string) ([]byte, error) {
	msg := iso8583.NewMessage(layout)
	msg.MTI(mti)
	if err := msg.Field(fieldPAN, pan); err != nil {
		return nil, fmt.Errorf("setting DE2: %w", err)
	}
	if err := msg.Field(fieldProcessingCode, "000000"); err != nil {
		return nil, fmt.Errorf("setting DE3: %w", err)
	}
	return msg.Pack()
}
