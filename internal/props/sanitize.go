package props

import "strings"

// SanitizeAlias turns an arbitrary platform login into a token safe to
// use as a GraphQL field alias. Every character outside letters and
// digits becomes '_', and the token is prefixed with '_' so it can never
// start with a digit (alias names must not start with one).
func SanitizeAlias(login string) string {
	var sb strings.Builder
	sb.Grow(len(login) + 1)
	sb.WriteByte('_')
	for _, r := range login {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
