package audit

import (
	"time"

	"github.com/alovak/cardcheck/card"
)

// Record is one classification verdict. The PAN itself is never stored.
type Record struct {
	ID        string       `json:"id"`
	PANHash   []byte       `json:"-"`
	MaskedPAN string       `json:"number"`
	Network   card.Network `json:"network"`
	Checksum  int          `json:"checksum"`
	Source    string       `json:"source"`
	CreatedAt time.Time    `json:"created_at"`
}
