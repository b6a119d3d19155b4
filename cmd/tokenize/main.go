// Command tokenize runs text through the bracket, literal and whitespace
// passes, prints the resulting token tree and checks that it renders back
// to the input.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sirupsen/logrus"

	"github.com/kerem-kaynak/bracket-tokenizer/pkg/tokenizer"
)

var errRoundTrip = errors.New("round trip mismatch")

type cli struct {
	First    string   `help:"Brackets grouped by the first pass; empty skips it" default:"[" env:"TOKENIZE_FIRST"`
	Spaces   bool     `help:"Split whitespace into separate tokens" env:"TOKENIZE_SPACES"`
	Expanded bool     `help:"Also print the rendering with literal escapes removed"`
	JSON     bool     `name:"json" help:"Print the token tree as JSON"`
	Spans    bool     `help:"Record bracket spans" env:"TOKENIZE_SPANS"`
	MaxDepth int      `help:"Deepest bracket nesting turned into trees" default:"1000" env:"TOKENIZE_MAX_DEPTH"`
	Color    string   `help:"Colorize the tree (auto, always, never)" enum:"auto,always,never" default:"auto"`
	Debug    bool     `help:"Log the tokens after every pass"`
	Text     []string `arg:"" optional:"" help:"Text to tokenize; lines are read from stdin when omitted"`
}

func main() {
	var params cli
	kong.Parse(&params, kong.Description("Tokenize text into bracket trees and quoted literals."))

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if params.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	tok, err := tokenizer.NewTokenizer(tokenizer.Config{
		Logger:   logger,
		MaxDepth: params.MaxDepth,
		Spans:    params.Spans,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r := &runner{
		cli: params,
		tok: tok,
		out: os.Stdout,
		pr:  newPrinter(os.Stdout, useColor(params.Color, os.Stdout)),
	}

	// If text provided as argument, tokenize and exit
	if len(params.Text) > 0 {
		if err := r.run(strings.Join(params.Text, " ")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Interactive mode
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		fmt.Println("Bracket tokenizer (interactive mode)")
		fmt.Println("Type a line, press Enter to tokenize. Ctrl+D to exit.")
		fmt.Println()
	}

	failed := false
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		if err := r.run(scanner.Text()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
		if interactive {
			fmt.Println()
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}

type runner struct {
	cli
	tok *tokenizer.Tokenizer
	out io.Writer
	pr  *printer
}

func (r *runner) run(text string) error {
	p := r.tok.Pipeline(text)
	if first := tokenizer.ParsePairSet(r.First); first != 0 {
		p.Tokenize(first.Pairs()...)
	}
	p.Tokenize().ExtractLiterals()
	if r.Spaces {
		p.SplitWhitespace()
	}
	tokens := p.Get()

	if r.JSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tokens); err != nil {
			return err
		}
	} else {
		r.pr.print(tokens, 0)
	}

	if r.Expanded {
		fmt.Fprintf(r.out, "expanded: %s\n", tokenizer.Stringify(tokens, tokenizer.Expanded))
	}

	return checkRoundTrip(text, tokenizer.Stringify(tokens, tokenizer.Escaped))
}

// checkRoundTrip reports a diff when the rendering differs from the input.
func checkRoundTrip(want, got string) error {
	if want == got {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	return fmt.Errorf("%w:\n%s", errRoundTrip, dmp.DiffPrettyText(diffs))
}

func useColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
