// Package tokenise converts a character stream into a flat sequence of classified
// tokens: strings, numbers, identifiers, operators, separators, whitespace runs and
// user-defined instruction keywords.
//
// Every classification rule is a predicate that can be overridden by the caller, so
// the same scanning loop can serve very different surface grammars. The classifier
// is total: it never fails, and concatenating the values of the tokens it emits
// always reproduces the input exactly.
//
// The simplest entry point is the package-level Tokenise function:
//
//	tokens := tokenise.Tokenise(`print("hello")`)
//
// For repeated use, build a Definition once and reuse it:
//
//	def := tokenise.New(tokenise.MatchInstruction(tokenise.Keywords("if", "while")))
//	tokens := def.Tokenise(src)
//
// Downstream parsers that need lookahead can wrap a Lexer in a PeekingLexer via
// Upgrade(), typically eliding Space tokens.
package tokenise
