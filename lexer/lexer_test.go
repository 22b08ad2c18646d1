/*
File    : pico8ls-core/lexer/lexer_test.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/
package lexer

import (
	"testing"
	"unicode/utf8"

	"github.com/akashmaji946/pico8ls-core/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func tok(kind TokenKind, value string) Token {
	return Token{Kind: kind, Value: value}
}

func collectTokens(src string) []Token {
	lex := NewLexer(src)
	var out []Token
	for {
		t := lex.Next()
		if t.Kind == TokenEOF {
			break
		}
		out = append(out, t)
	}
	return out
}

func TestLexer_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `1 + 2 * 3`,
			Expected: []Token{
				tok(TokenNumericLiteral, "1"),
				tok(TokenPunctuator, "+"),
				tok(TokenNumericLiteral, "2"),
				tok(TokenPunctuator, "*"),
				tok(TokenNumericLiteral, "3"),
			},
		},
		{
			Input: `i += 1`,
			Expected: []Token{
				tok(TokenIdentifier, "i"),
				tok(TokenPunctuator, "+="),
				tok(TokenNumericLiteral, "1"),
			},
		},
		{
			Input: `a ~= b != c`,
			Expected: []Token{
				tok(TokenIdentifier, "a"),
				tok(TokenPunctuator, "~="),
				tok(TokenIdentifier, "b"),
				tok(TokenPunctuator, "~="), // != is normalized to ~=
				tok(TokenIdentifier, "c"),
			},
		},
	}

	for _, test := range tests {
		got := collectTokens(test.Input)
		assert.Equal(t, len(test.Expected), len(got), test.Input)
		for i, want := range test.Expected {
			assert.Equal(t, want.Kind, got[i].Kind, test.Input)
			assert.Equal(t, want.Value, got[i].Value, test.Input)
		}
	}
}

func TestLexer_NumericLiterals(t *testing.T) {
	tests := []struct {
		Input string
		Want  float64
	}{
		{"0x1.8", 1.5},
		{"0b1010", 10},
		{"1e-3", 0.001},
		{"10", 10},
		{"3.25", 3.25},
	}
	for _, test := range tests {
		got := collectTokens(test.Input)
		assert.Len(t, got, 1, test.Input)
		assert.Equal(t, TokenNumericLiteral, got[0].Kind, test.Input)
		assert.InDelta(t, test.Want, got[0].Number, 1e-9, test.Input)
	}
}

func TestLexer_StringEscapes(t *testing.T) {
	got := collectTokens(`"tab\there\nline"`)
	assert.Len(t, got, 1)
	assert.Equal(t, "tab\there\nline", got[0].Value)
}

func TestLexer_LongBracketMismatchedEquals(t *testing.T) {
	// closing bracket has fewer '=' than opening: stays unterminated
	lex := NewLexer(`[==[ hello ]=]` + " done")
	lex.Next() // the long string itself
	assert.NotEmpty(t, lex.Errors, "mismatched long-bracket close should be unterminated")
}

func TestLexer_LongBracketExactMatch(t *testing.T) {
	lex := NewLexer(`[==[ hello ]==]`)
	token := lex.Next()
	assert.Equal(t, TokenStringLiteral, token.Kind)
	assert.Equal(t, " hello ", token.Value)
	assert.Empty(t, lex.Errors)
}

func TestLexer_NewlineSignificant(t *testing.T) {
	lex := NewLexer("a\nb")
	first := lex.Next()
	assert.Equal(t, "a", first.Value)

	// whitespace by default: newline skipped
	second := lex.Next()
	assert.Equal(t, "b", second.Value)

	lex2 := NewLexer("a\nb")
	lex2.NewlineSignificant = true
	first2 := lex2.Next()
	assert.Equal(t, "a", first2.Value)
	nl := lex2.Next()
	assert.Equal(t, TokenNewline, nl.Kind)
}

func TestLexer_PeekIsNonDestructive(t *testing.T) {
	lex := NewLexer("foo bar")
	peeked := lex.Peek()
	assert.Equal(t, "foo", peeked.Value)
	next := lex.Next()
	assert.Equal(t, "foo", next.Value, "Peek must not consume the token")
}

func TestLexer_InvalidUTF8Replaced(t *testing.T) {
	lex := NewLexer("a\xffb")
	require.NotEmpty(t, lex.Errors)
	assert.Equal(t, diag.KindInvalidUTF8, lex.Errors[0].Kind)
	assert.Equal(t, 1, lex.Errors[0].Bounds.Start.Index)
	assert.Contains(t, lex.src, string(utf8.RuneError))
}
