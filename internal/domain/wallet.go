package domain

import "github.com/mr-tron/base58"

// IsValidWalletAddress reports whether s is a syntactically valid Solana
// wallet address: base58 text that decodes to a 32-byte public key.
func IsValidWalletAddress(s string) bool {
	if len(s) < 32 || len(s) > 44 {
		return false
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(raw) == 32
}
