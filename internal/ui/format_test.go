package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func costOf(v float64) *float64 { return &v }

func tokensOf(v int64) *int64 { return &v }

func TestFormatCost(t *testing.T) {
	tests := []struct {
		name     string
		cost     *float64
		expected string
	}{
		{"nil returns dash", nil, "-"},
		{"zero returns Free", costOf(0), "Free"},
		{"$0.50 per million strips trailing zero", costOf(0.0000005), "$0.5"},
		{"$1 per million keeps two decimals", costOf(0.000001), "$1.00"},
		{"$60 per million", costOf(0.00006), "$60.00"},
		{"$0.01 per million", costOf(0.00000001), "$0.01"},
		{"sub-cent per million uses four decimals", costOf(0.000000001), "$0.0010"},
		{"$2.50 per million", costOf(0.0000025), "$2.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCost(tt.cost))
		})
	}
}

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		name     string
		tokens   *int64
		expected string
	}{
		{"nil returns dash", nil, "-"},
		{"small number stays plain", tokensOf(500), "500"},
		{"thousands", tokensOf(8000), "8K"},
		{"large thousands", tokensOf(128000), "128K"},
		{"millions", tokensOf(1000000), "1M"},
		{"two millions", tokensOf(2000000), "2M"},
		{"fractional thousands", tokensOf(8192), "8.2K"},
		{"fractional millions", tokensOf(1500000), "1.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTokens(tt.tokens))
		})
	}
}

func TestCostTier(t *testing.T) {
	tests := []struct {
		name     string
		cost     *float64
		expected string
	}{
		{"nil is green", nil, TierGreen},
		{"zero is green", costOf(0), TierGreen},
		{"under $1 per million is green", costOf(0.0000005), TierGreen},
		{"under $10 per million is yellow", costOf(0.000005), TierYellow},
		{"over $10 per million is red", costOf(0.00002), TierRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CostTier(tt.cost))
		})
	}
}
