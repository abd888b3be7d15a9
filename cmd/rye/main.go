// Command rye tokenizes a source file, or an inline snippet, and dumps the
// token stream.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/pborman/getopt"

	"github.com/ucodery/rye/tokenize"
	"github.com/ucodery/rye/tokens"
)

func main() {
	log.SetFlags(0)

	eval := getopt.StringLong("eval", 'e', "", "tokenize SOURCE instead of reading a file", "SOURCE")
	format := getopt.StringLong("format", 'f', "text", "output format: text, repr, or json", "FORMAT")
	help := getopt.BoolLong("help", 'h', "display help")
	getopt.SetParameters("[file]")
	getopt.Parse()

	if *help {
		getopt.Usage()
		os.Exit(0)
	}

	var source string
	switch args := getopt.Args(); {
	case *eval != "" && len(args) > 0:
		log.Fatal("rye: cannot mix --eval with a source file")
	case *eval != "":
		source = *eval
	case len(args) == 1:
		raw, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("rye: %v", err)
		}
		source = string(raw)
	default:
		getopt.Usage()
		os.Exit(2)
	}

	toks, err := tokenize.Tokenize(source)
	// tokens produced before a fatal error are still worth showing
	if dumpErr := dump(os.Stdout, *format, toks); dumpErr != nil {
		log.Fatalf("rye: %v", dumpErr)
	}
	if err != nil {
		log.Fatalf("rye: %v", err)
	}
}

func dump(w io.Writer, format string, toks []tokens.Token) error {
	switch format {
	case "text":
		for _, tok := range toks {
			if _, err := fmt.Fprintln(w, tok); err != nil {
				return err
			}
		}
	case "repr":
		repr.New(w, repr.Indent("  ")).Println(toks)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toks)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
