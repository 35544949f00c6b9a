package tokenise

// An Option overrides part of a Definition's classification policy.
type Option func(d *Definition)

// MatchCharacter overrides the letter predicate.
func MatchCharacter(p CharPredicate) Option {
	return func(d *Definition) { d.isCharacter = p }
}

// MatchNumber overrides the digit predicate.
func MatchNumber(p CharPredicate) Option {
	return func(d *Definition) { d.isNumber = p }
}

// MatchSpace overrides the whitespace predicate.
func MatchSpace(p CharPredicate) Option {
	return func(d *Definition) { d.isSpace = p }
}

// MatchOperator overrides the operator predicate.
func MatchOperator(p CharPredicate) Option {
	return func(d *Definition) { d.isOperator = p }
}

// MatchNumberSeparator overrides the predicate for characters permitted inside
// a numeric literal without breaking it, eg. a decimal point or a digit
// grouping mark.
func MatchNumberSeparator(p CharPredicate) Option {
	return func(d *Definition) { d.isNumberSeparator = p }
}

// MatchSeparator overrides the punctuation separator predicate.
func MatchSeparator(p CharPredicate) Option {
	return func(d *Definition) { d.isSeparator = p }
}

// MatchString overrides the string delimiter predicate.
//
// Opening and closing delimiters must be the identical character; a policy
// accepting multiple quote styles does not let one style close another.
func MatchString(p CharPredicate) Option {
	return func(d *Definition) { d.isString = p }
}

// MatchInstruction overrides the predicate that reclassifies completed
// Identifier tokens as Instruction tokens.
func MatchInstruction(p TextPredicate) Option {
	return func(d *Definition) { d.isInstruction = p }
}

// InsertEOF appends a terminal EOF token to the output of Tokenise.
func InsertEOF() Option {
	return func(d *Definition) { d.insertEOF = true }
}

// HashWith overrides the fingerprint function used to populate Token.UID.
func HashWith(hash func(text string) uint64) Option {
	return func(d *Definition) { d.hash = hash }
}

// Chars builds a CharPredicate matching exactly the characters in set.
//
// Convenient for overrides, eg. MatchString(Chars(`"'`)).
func Chars(set string) CharPredicate {
	table := map[rune]bool{}
	for _, r := range set {
		table[r] = true
	}
	return func(r rune, _ Position) bool { return table[r] }
}

// Keywords builds a TextPredicate matching exactly the given words, for use
// with MatchInstruction.
func Keywords(words ...string) TextPredicate {
	table := map[string]bool{}
	for _, word := range words {
		table[word] = true
	}
	return func(text string, _ Position) bool { return table[text] }
}
