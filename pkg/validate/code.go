package validate

import "regexp"

var codePattern = regexp.MustCompile(`^[0-9A-F]{8}$`)

// IsRaffleCode reports whether s looks like a shareable raffle code: eight
// uppercase hex characters.
func IsRaffleCode(s string) bool {
	return codePattern.MatchString(s)
}
