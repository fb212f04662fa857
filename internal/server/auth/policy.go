package auth

import "strings"

// passwordSymbols is the fixed punctuation set a password must draw at least
// one character from.
const passwordSymbols = "!@#$%^&*()-_=+{};:,<.>"

// ValidPassword reports whether pw satisfies the password policy:
// at least 8 characters, with at least one digit, one ASCII letter, and one
// symbol from passwordSymbols. No maximum length, no entropy check.
func ValidPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}

	var digit, letter, symbol bool
	for _, r := range pw {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letter = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}

	return digit && letter && symbol
}
