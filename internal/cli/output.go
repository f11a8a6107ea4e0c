package cli

import (
	"fmt"
	"io"

	"github.com/alovak/cardcheck/card"
	"github.com/alovak/cardcheck/internal/cardgen"
	"github.com/fatih/color"
	"golang.org/x/exp/slog"
)

func networkColor(n card.Network) *color.Color {
	switch n {
	case card.Amex:
		return color.New(color.FgHiGreen)
	case card.Visa:
		return color.New(color.FgHiBlue)
	case card.Mastercard:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func colorNetwork(n card.Network) string {
	return networkColor(n).Sprint(n.String())
}

// displayNumber masks number unless the caller asked for full output.
func displayNumber(number string, full bool) string {
	if full {
		return number
	}
	return cardgen.MaskPAN(number)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
