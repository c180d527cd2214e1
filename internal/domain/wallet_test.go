package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidWalletAddress(t *testing.T) {
	valid := []string{
		"11111111111111111111111111111111",
		"So11111111111111111111111111111111111111112",
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
	}
	for _, addr := range valid {
		assert.True(t, IsValidWalletAddress(addr), addr)
	}

	invalid := []string{
		"",
		"abc",
		"0x52908400098527886E0F7030069857D2E4169EE7",
		strings.Repeat("1", 31),
		strings.Repeat("1", 45),
		"So1111111111111111111111111111111111111111O",
	}
	for _, addr := range invalid {
		assert.False(t, IsValidWalletAddress(addr), addr)
	}
}
