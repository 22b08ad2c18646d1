/*
File    : pico8ls-core/diag/diag.go
Author  : akashmaji946, adapted for the PICO-8 dialect core
*/

// Package diag holds the two diagnostic shapes produced by the core:
// ParseError (lexer/parser failures) and Warning (resolver-level issues such
// as an undefined identifier). Both share the same {message, bounds} shape
// so a language server can render them uniformly, differing only in the
// severity a host should attach.
package diag

import "github.com/akashmaji946/pico8ls-core/lexer"

// Kind names the originating defect, per the taxonomy in the specification.
type Kind string

const (
	KindUnexpectedCharacter      Kind = "UnexpectedCharacter"
	KindUnterminatedString       Kind = "UnterminatedString"
	KindUnterminatedLongBracket  Kind = "UnterminatedLongBracket"
	KindUnexpectedToken          Kind = "UnexpectedToken"
	KindMalformedStatement       Kind = "MalformedStatement"
	KindInvalidAssignmentTarget  Kind = "InvalidAssignmentTarget"
	KindUndefinedIdentifier      Kind = "UndefinedIdentifier"
	KindUnusedLocal              Kind = "UnusedLocal"
	KindShadowedLocal            Kind = "ShadowedLocal"
	KindInvalidUTF8              Kind = "InvalidUTF8"
)

// ParseError is a hard syntax-level defect raised by the lexer or parser.
// The pipeline never aborts on one: it is recorded and parsing continues via
// the recovery rule the parser implements.
type ParseError struct {
	Kind    Kind
	Message string
	Bounds  lexer.Bounds
}

func (e ParseError) Error() string {
	return e.Message
}

// Warning is a recoverable issue surfaced by the resolver, such as a
// reference to an identifier that was never declared.
type Warning struct {
	Kind    Kind
	Message string
	Bounds  lexer.Bounds
}

func (w Warning) Error() string {
	return w.Message
}
