package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/alecthomas/tokenise"
)

var (
	version string = "dev"
	cli     struct {
		Version    kong.VersionFlag `help:"Print version and exit."`
		EOF        bool             `help:"Append a terminal EOF token."`
		ElideSpace bool             `help:"Drop whitespace tokens from the output."`
		Keyword    []string         `short:"k" placeholder:"WORD" help:"Identifiers to classify as instructions."`
		JSON       bool             `help:"Emit tokens as JSON instead of Go syntax."`
		File       string           `arg:"" optional:"" type:"existingfile" help:"File to tokenise (defaults to stdin)."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Tokenise input into a stream of classified tokens.`),
		kong.Vars{"version": version},
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	var (
		source []byte
		err    error
	)
	if cli.File == "" {
		source, err = io.ReadAll(os.Stdin)
	} else {
		source, err = os.ReadFile(cli.File)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	options := []tokenise.Option{}
	if cli.EOF {
		options = append(options, tokenise.InsertEOF())
	}
	if len(cli.Keyword) > 0 {
		options = append(options, tokenise.MatchInstruction(tokenise.Keywords(cli.Keyword...)))
	}
	def := tokenise.New(options...)
	tokens := def.Tokenise(string(source))
	if cli.ElideSpace {
		tokens = def.Map(tokens, tokenise.Elide(tokenise.Space))
	}

	if cli.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	}
	repr.New(os.Stdout, repr.Indent("  ")).Println(tokens)
	return nil
}
