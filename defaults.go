package tokenise

// Default classification tables. These are static, input-independent lookup
// data covering the ASCII range; the single non-ASCII default ('¿') is handled
// explicitly.
var (
	letterTable    [128]bool // a-z, A-Z
	digitTable     [128]bool // 0-9
	spaceTable     [128]bool // space, tab, CR, LF
	operatorTable  [128]bool // + - * / ^ % & = < >
	separatorTable [128]bool // [ ] ( ) { } . # ? : ; , and space
)

func init() {
	for i := 0; i < 128; i++ {
		r := rune(i)
		letterTable[i] = (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digitTable[i] = r >= '0' && r <= '9'
	}
	for _, r := range " \t\r\n" {
		spaceTable[r] = true
	}
	for _, r := range "+-*/^%&=<>" {
		operatorTable[r] = true
	}
	for _, r := range "[](){}.#?:;, " {
		separatorTable[r] = true
	}
}

func defaultIsCharacter(r rune, _ Position) bool {
	return r < 128 && letterTable[r]
}

func defaultIsNumber(r rune, _ Position) bool {
	return r < 128 && digitTable[r]
}

func defaultIsSpace(r rune, _ Position) bool {
	return r < 128 && spaceTable[r]
}

func defaultIsOperator(r rune, _ Position) bool {
	return r < 128 && operatorTable[r]
}

func defaultIsNumberSeparator(r rune, _ Position) bool {
	return r == '.'
}

func defaultIsSeparator(r rune, _ Position) bool {
	return (r < 128 && separatorTable[r]) || r == '¿'
}

func defaultIsString(r rune, _ Position) bool {
	return r == '"'
}

func defaultIsInstruction(_ string, _ Position) bool {
	return false
}
