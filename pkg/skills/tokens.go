package skills

import "strings"

// Separator joins committed tokens in the input buffer.
const Separator = ", "

// Tokens returns every trimmed, non-empty segment of the buffer,
// case-preserved and in order. The trailing (possibly incomplete) segment is
// included when non-empty.
func Tokens(buffer string) []string {
	segments := strings.Split(buffer, ",")
	tokens := make([]string, 0, len(segments))
	for _, seg := range segments {
		if t := strings.TrimSpace(seg); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// ActiveToken is the trimmed segment after the last comma: the item the user
// is currently typing.
func ActiveToken(buffer string) string {
	segments := strings.Split(buffer, ",")
	return strings.TrimSpace(segments[len(segments)-1])
}

// committedTokens returns every trimmed, non-empty segment before the last
// comma, i.e. the tokens the user has already finished.
func committedTokens(buffer string) []string {
	segments := strings.Split(buffer, ",")
	tokens := make([]string, 0, len(segments))
	for _, seg := range segments[:len(segments)-1] {
		if t := strings.TrimSpace(seg); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func containsFold(tokens []string, want string) bool {
	for _, t := range tokens {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
