package tokenise_test

import (
	"fmt"

	"github.com/alecthomas/tokenise"
)

func ExampleTokenise() {
	for _, token := range tokenise.Tokenise(`print("hi") + 42`) {
		fmt.Printf("%s %q\n", token.Type, token.Value)
	}
	// Output:
	// Identifier "print"
	// Separator "("
	// String "\"hi\""
	// Separator ")"
	// Space " "
	// Operator "+"
	// Space " "
	// Number "42"
}

func ExampleKeywords() {
	def := tokenise.New(tokenise.MatchInstruction(tokenise.Keywords("while")))
	for _, token := range def.Tokenise("while done") {
		fmt.Printf("%s %q\n", token.Type, token.Value)
	}
	// Output:
	// Instruction "while"
	// Space " "
	// Identifier "done"
}
