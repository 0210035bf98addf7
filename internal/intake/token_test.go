package intake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirawat/librarium/internal/intake"
)

/*
TestParseToken verifies the id-versus-name classification of raw form values.
*/
func TestParseToken(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantOK   bool
		wantKind intake.TokenKind
		wantID   int
		wantName string
	}{
		{"all_digits", "123", true, intake.TokenID, 123, ""},
		{"digits_with_spaces", "  42  ", true, intake.TokenID, 42, ""},
		{"plain_name", "Jane Doe", true, intake.TokenName, 0, "Jane Doe"},
		{"name_is_trimmed", "  Jane Doe  ", true, intake.TokenName, 0, "Jane Doe"},
		{"mixed_digits_and_letters", "4th Estate", true, intake.TokenName, 0, "4th Estate"},
		{"empty", "", false, 0, 0, ""},
		{"whitespace_only", "   ", false, 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := intake.ParseToken(tt.raw)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantKind, token.Kind)
			assert.Equal(t, tt.wantID, token.ID)
			assert.Equal(t, tt.wantName, token.Name)
		})
	}
}

/*
TestParseTokens checks that blank entries are dropped while order is kept.
*/
func TestParseTokens(t *testing.T) {
	tokens := intake.ParseTokens([]string{"1", "", "  ", "Jane Doe", "2"})
	require.Len(t, tokens, 3)
	assert.Equal(t, 1, tokens[0].ID)
	assert.Equal(t, "Jane Doe", tokens[1].Name)
	assert.Equal(t, 2, tokens[2].ID)
}

/*
TestKeepLast covers the single-select-over-multi-select preprocessing rule.
*/
func TestKeepLast(t *testing.T) {
	tokens := intake.ParseTokens([]string{"English", "Thai", "Japanese"})

	kept := intake.KeepLast(tokens)
	require.Len(t, kept, 1)
	assert.Equal(t, "Japanese", kept[0].Name)

	assert.Empty(t, intake.KeepLast(nil))
	single := intake.ParseTokens([]string{"English"})
	assert.Equal(t, single, intake.KeepLast(single))
}
