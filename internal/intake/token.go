package intake

import (
	"strconv"
	"strings"
)

// TokenKind discriminates the two interpretations of a raw form value.
type TokenKind int

const (
	// TokenID marks an all-digit token, taken as an existing entity id.
	TokenID TokenKind = iota
	// TokenName marks free text, taken as a display name to look up or create.
	TokenName
)

// Token is one raw form value, classified exactly once at the intake
// boundary so the ambiguity between "numeric id" and "typed name" never
// leaks further into the engine.
type Token struct {
	Kind TokenKind
	ID   int
	Name string
}

// ParseToken trims and classifies a raw value. The second return is false
// for blank input, which callers treat as an omitted field.
//
// An all-digit token is trusted as-is: no existence check happens here, the
// store rejects unknown ids at persist time.
func ParseToken(raw string) (Token, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Token{}, false
	}

	if isAllDigits(trimmed) {
		id, err := strconv.Atoi(trimmed)
		if err == nil {
			return Token{Kind: TokenID, ID: id}, true
		}
		// Digits too long for int fall through as a name; the store
		// will reject it with a validation error.
	}

	return Token{Kind: TokenName, Name: trimmed}, true
}

// ParseTokens classifies a list of raw values, dropping blanks while
// preserving order.
func ParseTokens(raws []string) []Token {
	tokens := make([]Token, 0, len(raws))
	for _, raw := range raws {
		if token, ok := ParseToken(raw); ok {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// KeepLast reduces a token list to its final element.
//
// The admin forms present single-valued fields (publisher, language) through
// the same multi-token control as authors; only the most recently added
// token counts. Applied before resolution so the resolver stays generic.
func KeepLast(tokens []Token) []Token {
	if len(tokens) <= 1 {
		return tokens
	}
	return tokens[len(tokens)-1:]
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
