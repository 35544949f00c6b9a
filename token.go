package tokenise

import (
	"fmt"
	"strconv"
)

// Type classifies a Token.
type Type int

// Token types produced by the classifier.
//
// Unknown is the type of an empty accumulator and is never present in emitted
// tokens.
const (
	Unknown Type = iota
	String
	Number
	Identifier
	Operator
	Separator
	Space
	Instruction
	EOF
)

var typeNames = map[Type]string{
	Unknown:     "Unknown",
	String:      "String",
	Number:      "Number",
	Identifier:  "Identifier",
	Operator:    "Operator",
	Separator:   "Separator",
	Space:       "Space",
	Instruction: "Instruction",
	EOF:         "EOF",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler so that token dumps use the
// symbolic type name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Position of a token's first character within the input.
type Position struct {
	Line   int // 1-based; 0 for EOF.
	Column int // 1-based column within the line; 0 for EOF.
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// A Token is a classified, positioned substring of the input.
type Token struct {
	Type  Type
	Value string
	// UID is a deterministic fingerprint of Value: equal values always carry
	// equal UIDs, regardless of type or position. It is 0 for EOF.
	UID uint64
	Pos Position
}

// EOFToken returns the terminal EOF token. Its value is empty and its position
// and UID are the zero sentinels.
func EOFToken() Token {
	return Token{Type: EOF}
}

// EOF returns true if this Token marks the end of input.
func (t Token) EOF() bool {
	return t.Type == EOF
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

func (t Token) GoString() string {
	if t.EOF() {
		return "Token{EOF}"
	}
	return fmt.Sprintf("Token@%s{%s, %q}", t.Pos, t.Type, t.Value)
}

// ReadAll drains lex, returning all tokens up to but excluding the terminal EOF
// token.
func ReadAll(lex *Lexer) []Token {
	tokens := make([]Token, 0, 64)
	for {
		token := lex.Next()
		if token.EOF() {
			return tokens
		}
		tokens = append(tokens, token)
	}
}
