/*
File    : pico8ls-core/lexer/token.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/

// Package lexer turns PICO-8 dialect source text into a stream of Tokens.
// It tracks precise source bounds (line, column and byte offset) for every
// token so that downstream AST nodes and diagnostics can point back at the
// exact span of source they came from.
package lexer

import "fmt"

// TokenKind classifies a Token: Keyword, Identifier, NumericLiteral,
// StringLiteral, Punctuator, Newline or EOF.
type TokenKind string

const (
	TokenKeyword        TokenKind = "Keyword"
	TokenIdentifier     TokenKind = "Identifier"
	TokenNumericLiteral TokenKind = "NumericLiteral"
	TokenStringLiteral  TokenKind = "StringLiteral"
	TokenPunctuator     TokenKind = "Punctuator"
	TokenNewline        TokenKind = "Newline"
	TokenEOF            TokenKind = "EOF"
)

// Position is one endpoint of a Bounds value. Line is 1-indexed, Column is
// 0-indexed, and Index is the 0-indexed byte offset into the source text.
type Position struct {
	Line   int
	Column int
	Index  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Bounds is a half-open source range. Every AST node, Token and error in the
// core carries one.
type Bounds struct {
	Start Position
	End   Position
}

// Union returns the smallest Bounds that contains both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	start, end := b.Start, b.End
	if other.Start.Index < start.Index {
		start = other.Start
	}
	if other.End.Index > end.Index {
		end = other.End
	}
	return Bounds{Start: start, End: end}
}

// Contains reports whether pos falls within [b.Start, b.End).
func (b Bounds) Contains(pos Position) bool {
	return pos.Index >= b.Start.Index && pos.Index < b.End.Index
}

// Token is a single lexical token with its classification, literal text and
// source bounds.
type Token struct {
	Kind   TokenKind
	Value  string  // source text; a string literal holds its decoded content without quotes, and `!=` is normalized to `~=`
	Number float64 // populated when Kind == TokenNumericLiteral
	Bounds Bounds
}

// Is reports whether the token is a Punctuator or Keyword with the given
// literal value, the common way to test for a specific operator or reserved
// word without repeating Kind checks at every call site.
func (t Token) Is(value string) bool {
	return (t.Kind == TokenPunctuator || t.Kind == TokenKeyword) && t.Value == value
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Bounds.Start)
}

// keywords is the set of reserved words recognised by the dialect. The
// PICO-8 `#include` directive is not among them: it is lexed as a `#`
// punctuator followed by the identifier `include`, which the parser matches.
var keywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "goto": true,
	"if": true, "in": true, "local": true, "nil": true, "not": true, "or": true,
	"repeat": true, "return": true, "then": true, "true": true, "until": true,
	"while": true,
}

func lookupIdentifier(ident string) TokenKind {
	if keywords[ident] {
		return TokenKeyword
	}
	return TokenIdentifier
}
