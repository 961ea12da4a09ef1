package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCost renders a per-token dollar cost as a cost per million tokens.
// nil means the catalog has no data for the field.
func FormatCost(costPerToken *float64) string {
	if costPerToken == nil {
		return "-"
	}
	if *costPerToken == 0 {
		return "Free"
	}

	costPerMillion := *costPerToken * 1_000_000
	switch {
	case costPerMillion < 0.01:
		return fmt.Sprintf("$%.4f", costPerMillion)
	case costPerMillion < 1:
		// Strip trailing zeros so $0.50 reads as $0.5
		formatted := strconv.FormatFloat(costPerMillion, 'f', 2, 64)
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimRight(formatted, ".")
		return "$" + formatted
	default:
		return fmt.Sprintf("$%.2f", costPerMillion)
	}
}

// FormatTokens renders a token count as 128K / 1M style shorthand.
func FormatTokens(tokens *int64) string {
	if tokens == nil {
		return "-"
	}

	switch {
	case *tokens >= 1_000_000:
		return scaledCount(float64(*tokens)/1_000_000, "M")
	case *tokens >= 1_000:
		return scaledCount(float64(*tokens)/1_000, "K")
	default:
		return strconv.FormatInt(*tokens, 10)
	}
}

func scaledCount(value float64, suffix string) string {
	if value == math.Trunc(value) {
		return fmt.Sprintf("%d%s", int64(value), suffix)
	}
	formatted := strconv.FormatFloat(value, 'f', 1, 64)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")
	return formatted + suffix
}

// Cost tiers drive the color of a price cell: free or under $1/1M is green,
// under $10/1M is yellow, anything above is red.
const (
	TierGreen  = "green"
	TierYellow = "yellow"
	TierRed    = "red"
)

func CostTier(costPerToken *float64) string {
	if costPerToken == nil || *costPerToken == 0 {
		return TierGreen
	}

	costPerMillion := *costPerToken * 1_000_000
	switch {
	case costPerMillion < 1:
		return TierGreen
	case costPerMillion < 10:
		return TierYellow
	default:
		return TierRed
	}
}
