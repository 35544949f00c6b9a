package tokenise

import (
	"strconv"
	"strings"
)

// A Mapper mutates a token after lexing. Returning nil drops the token.
type Mapper func(t *Token) *Token

// Map applies mappers, in order, to each token. Tokens whose value was changed
// by a mapper have their UID refreshed with the definition's hash so that
// equal values keep equal fingerprints.
func (d *Definition) Map(tokens []Token, mappers ...Mapper) []Token {
	out := make([]Token, 0, len(tokens))
next:
	for _, token := range tokens {
		t := token
		for _, mapper := range mappers {
			mapped := mapper(&t)
			if mapped == nil {
				continue next
			}
			t = *mapped
		}
		if t.Value != token.Value {
			t.UID = d.hash(t.Value)
		}
		out = append(out, t)
	}
	return out
}

// Elide drops tokens of the given types.
func Elide(types ...Type) Mapper {
	table := typeTable(types)
	return func(t *Token) *Token {
		if table[t.Type] {
			return nil
		}
		return t
	}
}

// Unquote applies strconv.Unquote to tokens of the given types, defaulting to
// String. Tokens that do not unquote cleanly (eg. an unterminated string
// literal) pass through unchanged; mapping, like lexing, never fails.
func Unquote(types ...Type) Mapper {
	if len(types) == 0 {
		types = []Type{String}
	}
	table := typeTable(types)
	return func(t *Token) *Token {
		if table[t.Type] {
			if value, err := strconv.Unquote(t.Value); err == nil {
				t.Value = value
			}
		}
		return t
	}
}

// Upper upper-cases tokens of the given types, defaulting to Identifier and
// Instruction. Useful for case normalisation.
func Upper(types ...Type) Mapper {
	if len(types) == 0 {
		types = []Type{Identifier, Instruction}
	}
	table := typeTable(types)
	return func(t *Token) *Token {
		if table[t.Type] {
			t.Value = strings.ToUpper(t.Value)
		}
		return t
	}
}

func typeTable(types []Type) map[Type]bool {
	table := make(map[Type]bool, len(types))
	for _, t := range types {
		table[t] = true
	}
	return table
}
