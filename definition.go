package tokenise

// CharPredicate decides whether a single character belongs to a character
// class. The position of the character within the input is supplied so that
// position-sensitive grammars (eg. column-significant formats) can be
// expressed.
type CharPredicate func(r rune, pos Position) bool

// TextPredicate decides whether a completed identifier token should be
// reclassified, given its final text and starting position.
type TextPredicate func(text string, pos Position) bool

// A Definition bundles the classification predicates driving the scanning
// loop, layered over the documented defaults. It is immutable once
// constructed and safe for concurrent use: each Lex() call owns its own
// scanning state.
type Definition struct {
	isCharacter       CharPredicate
	isNumber          CharPredicate
	isSpace           CharPredicate
	isOperator        CharPredicate
	isNumberSeparator CharPredicate
	isSeparator       CharPredicate
	isString          CharPredicate
	isInstruction     TextPredicate
	hash              func(string) uint64
	insertEOF         bool
}

// Default is the Definition with no options applied.
var Default = New()

// New constructs a Definition from options applied over the defaults:
//
//   - characters: ASCII letters a-z and A-Z
//   - numbers: ASCII digits 0-9
//   - spaces: space, tab, carriage return and newline
//   - operators: one of +-*/^%&=<>
//   - number separators: "."
//   - separators: one of [](){}.#?¿:;, and space
//   - string delimiters: '"'
//   - instructions: none
func New(options ...Option) *Definition {
	d := &Definition{
		isCharacter:       defaultIsCharacter,
		isNumber:          defaultIsNumber,
		isSpace:           defaultIsSpace,
		isOperator:        defaultIsOperator,
		isNumberSeparator: defaultIsNumberSeparator,
		isSeparator:       defaultIsSeparator,
		isString:          defaultIsString,
		isInstruction:     defaultIsInstruction,
		hash:              Hash,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Tokenise runs the classifier over text to completion.
//
// It never fails: any input, including empty or degenerate text, yields a
// token sequence whose concatenated values reproduce the input exactly. The
// returned slice ends with an EOF token iff the InsertEOF option was given.
func (d *Definition) Tokenise(text string) []Token {
	tokens := ReadAll(d.Lex(text))
	if d.insertEOF {
		tokens = append(tokens, EOFToken())
	}
	return tokens
}

// Tokenise text with a Definition constructed from options.
func Tokenise(text string, options ...Option) []Token {
	return New(options...).Tokenise(text)
}
