package tokenise

// PeekingLexer buffers a Lexer's output, supporting arbitrary lookahead and
// cloning. Token types listed when upgrading are elided from Next/Peek but
// remain addressable through the raw cursor, so a parser can skip Space runs
// while error messages and source reconstruction still see them.
type PeekingLexer struct {
	rawCursor RawCursor
	cursor    int
	tokens    []Token
	elide     map[Type]bool
}

// RawCursor index in the token stream, including elided tokens.
type RawCursor int

// Upgrade a Lexer to a PeekingLexer with arbitrary lookahead.
//
// "elide" lists token types to skip during normal iteration.
func Upgrade(lex *Lexer, elide ...Type) *PeekingLexer {
	p := &PeekingLexer{
		elide: make(map[Type]bool, len(elide)),
	}
	for _, t := range elide {
		p.elide[t] = true
	}
	p.tokens = ReadAll(lex)
	return p
}

// Range returns the slice of tokens between the two raw cursor points.
func (p *PeekingLexer) Range(rawStart, rawEnd RawCursor) []Token {
	return p.tokens[rawStart:rawEnd]
}

// Cursor position in tokens, excluding elided tokens.
func (p *PeekingLexer) Cursor() int {
	return p.cursor
}

// RawCursor position in tokens, including elided tokens.
func (p *PeekingLexer) RawCursor() RawCursor {
	return p.rawCursor
}

// Next consumes and returns the next non-elided token, or the EOF token once
// the stream is exhausted.
func (p *PeekingLexer) Next() Token {
	for int(p.rawCursor) < len(p.tokens) {
		t := p.tokens[p.rawCursor]
		p.rawCursor++
		if p.elide[t.Type] {
			continue
		}
		p.cursor++
		return t
	}
	return EOFToken()
}

// Peek ahead at the n+1th non-elided token. eg. Peek(0) peeks at the next
// token.
func (p *PeekingLexer) Peek(n int) Token {
	for i := int(p.rawCursor); i < len(p.tokens); i++ {
		t := p.tokens[i]
		if p.elide[t.Type] {
			continue
		}
		if n == 0 {
			return t
		}
		n--
	}
	return EOFToken()
}

// RawPeek peeks ahead at the n+1th raw token, including elided tokens.
func (p *PeekingLexer) RawPeek(n int) Token {
	if i := int(p.rawCursor) + n; i < len(p.tokens) {
		return p.tokens[i]
	}
	return EOFToken()
}

// Clone creates an independent clone of this PeekingLexer at its current
// position.
func (p *PeekingLexer) Clone() *PeekingLexer {
	clone := *p
	return &clone
}
