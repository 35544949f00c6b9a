package tokenise

import (
	"io"
	"strings"
	"unicode/utf8"
)

// A Lexer is a single pass of the classifier over one input. It is created by
// Definition.Lex and must not be shared between goroutines.
type Lexer struct {
	def    *Definition
	input  []rune
	cursor int
	pos    Position
	// pending is the one token under construction. Its type is Unknown while
	// the accumulator is empty.
	pending Token
	queue   []Token
	done    bool
}

// Lex returns a Lexer streaming tokens from text.
//
// Next() yields each token in order and then the terminal EOF token forever.
// Lexing never fails: malformed input degrades into best-effort tokens.
func (d *Definition) Lex(text string) *Lexer {
	return &Lexer{
		def:     d,
		input:   []rune(text),
		pos:     Position{Line: 1, Column: 1},
		pending: Token{Pos: Position{Line: 1, Column: 1}},
	}
}

// LexReader returns a Lexer streaming tokens from r. The only possible error
// is from reading r; classification itself never fails.
func (d *Definition) LexReader(r io.Reader) (*Lexer, error) {
	w := &strings.Builder{}
	if _, err := io.Copy(w, r); err != nil {
		return nil, err
	}
	return d.Lex(w.String()), nil
}

// Next consumes and returns the next token.
func (l *Lexer) Next() Token {
	for len(l.queue) == 0 {
		if l.cursor >= len(l.input) {
			if l.done {
				return EOFToken()
			}
			l.done = true
			l.finalise()
			if len(l.queue) == 0 {
				return EOFToken()
			}
			break
		}
		r := l.input[l.cursor]
		l.cursor++
		// The newline itself is recorded as belonging to the new line.
		if r == '\n' {
			l.pos.Line++
			l.pos.Column = 1
		}
		l.classify(r)
		// Column is a per-character counter, advanced unconditionally.
		l.pos.Column++
	}
	token := l.queue[0]
	l.queue = l.queue[1:]
	return token
}

// classify feeds one character through the priority chain. The order of the
// cases is the core design decision: it resolves every ambiguity between
// overlapping character classes, so it must not be rearranged.
func (l *Lexer) classify(r rune) {
	def := l.def
	switch {
	// 1. String delimiter.
	case def.isString(r, l.pos):
		if endsWithEscape(l.pending.Value) {
			// Escaped delimiter: swallowed verbatim, no state change.
			l.pending.Value += string(r)
			return
		}
		if l.pending.Type != String {
			l.finalise()
		}
		l.accumulate(r, String)
		if first, n := utf8.DecodeRuneInString(l.pending.Value); n < len(l.pending.Value) && first == r {
			// Closed by the same delimiter that opened it.
			l.finalise()
		}

	// 2. Inside an open string every character is absorbed.
	case l.pending.Type == String:
		l.pending.Value += string(r)

	// 3. Whitespace runs of any mix merge into one Space token.
	case def.isSpace(r, l.pos):
		if l.pending.Type != Space {
			l.finalise()
		}
		l.accumulate(r, Space)

	// 4. Separator, unless it continues a numeric literal.
	case def.isSeparator(r, l.pos):
		if def.isNumberSeparator(r, l.pos) && l.pending.Type == Number {
			l.pending.Value += string(r)
			return
		}
		if l.pending.Type != Separator {
			l.finalise()
		}
		l.accumulate(r, Separator)

	// 5. Digit. Digits may follow letters in a name.
	case def.isNumber(r, l.pos):
		if l.pending.Type != Identifier && l.pending.Type != Number {
			l.finalise()
		}
		l.accumulate(r, Number)

	// 6. Letter. Letters may trail a numeric literal ("456var" stays Number).
	case def.isCharacter(r, l.pos):
		if l.pending.Type != Number && l.pending.Type != Identifier {
			l.finalise()
		}
		l.accumulate(r, Identifier)

	// 7. Operator runs merge.
	case def.isOperator(r, l.pos):
		if l.pending.Type != Operator {
			l.finalise()
		}
		l.accumulate(r, Operator)

	// 8. Number separator that is not also a generic separator.
	case def.isNumberSeparator(r, l.pos) && l.pending.Type == Number:
		l.pending.Value += string(r)

	// 9. Anything else accumulates into an Identifier.
	default:
		if l.pending.Type != Identifier {
			l.finalise()
		}
		l.accumulate(r, Identifier)
	}
}

// accumulate appends r to the pending token. A transition away from the empty
// accumulator fixes the token's type and position; an already-active token
// keeps both.
func (l *Lexer) accumulate(r rune, t Type) {
	if l.pending.Value == "" {
		l.pending.Type = t
		l.pending.Pos = l.pos
	}
	l.pending.Value += string(r)
}

// finalise emits the pending token, if any, and resets the accumulator.
// Identifiers matching the instruction predicate are reclassified before the
// UID is computed from the final value.
func (l *Lexer) finalise() {
	if l.pending.Type != Unknown && l.pending.Value != "" {
		token := l.pending
		if token.Type == Identifier && l.def.isInstruction(token.Value, token.Pos) {
			token.Type = Instruction
		}
		token.UID = l.def.hash(token.Value)
		l.queue = append(l.queue, token)
	}
	l.pending = Token{Pos: l.pos}
}

// endsWithEscape reports whether s ends with an unescaped backslash, ie. an
// odd-length run of trailing backslashes. This pairs `\\` off so that `\\"` is
// read as escaped-backslash-then-delimiter.
func endsWithEscape(s string) bool {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
