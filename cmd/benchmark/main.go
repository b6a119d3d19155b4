package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/kerem-kaynak/bracket-tokenizer/pkg/tokenizer"
)

const boxWidth = 62

var (
	line = strings.Repeat("─", boxWidth)

	dim    = color.New(color.Faint).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintfFunc()
	yellow = color.New(color.FgYellow).SprintfFunc()
)

type cli struct {
	Iterations int `help:"Timed iterations per case" default:"100000"`
	Warmup     int `help:"Untimed iterations per case" default:"1000"`
}

func main() {
	var params cli
	kong.Parse(&params, kong.Description("Measure tokenizer pass throughput."))
	b := &bencher{iterations: params.Iterations, warmup: params.Warmup}

	tok, err := tokenizer.NewTokenizer(tokenizer.Config{Spans: true})
	if err != nil {
		panic(err)
	}
	cached, err := tokenizer.NewTokenizer(tokenizer.Config{Cache: true})
	if err != nil {
		panic(err)
	}

	fmt.Printf("Iterations: %d (warmup: %d)\n", b.iterations, b.warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Test data
	short := "f(x)"
	config := `server[name="api \"v2\"", ports=(80, 443), tags={'a' 'b'}]`
	document := strings.Repeat(config+"\n", 50)
	unbalanced := strings.Repeat("([{", 200)

	pipeline := func(text string) func() {
		return func() {
			tok.Pipeline(text).Tokenize(tokenizer.Square).Tokenize().ExtractLiterals().SplitWhitespace().Get()
		}
	}

	printHeader("FULL PIPELINE THROUGHPUT")
	b.bench("Short call", pipeline(short))
	b.bench("Config line", pipeline(config))
	b.bench("Document (50 lines)", pipeline(document))
	b.bench("Unbalanced (600 open)", pipeline(unbalanced))
	printFooter()
	fmt.Println()

	// Pass breakdown
	printHeader("PASS BREAKDOWN")
	b.bench("Tokenize [ only", func() { tok.Tokenize(config, tokenizer.Square) })
	b.bench("Tokenize all", func() { tok.Tokenize(config) })
	b.bench("Extract literals", func() { tokenizer.ExtractLiterals(tokenizer.Plain{Text: config}) })
	b.bench("Split whitespace", func() { tokenizer.SplitWhitespace(tokenizer.Plain{Text: config}) })
	b.bench("Parse chars", func() { tokenizer.ParseChars(config) })

	tokens := tok.Pipeline(config).Tokenize().ExtractLiterals().Get()
	b.bench("Stringify escaped", func() { tokenizer.Stringify(tokens, tokenizer.Escaped) })
	b.bench("Stringify expanded", func() { tokenizer.Stringify(tokens, tokenizer.Expanded) })
	printFooter()
	fmt.Println()

	printHeader("CACHE")
	cached.Tokenize(document)
	b.bench("Tokenize (cache hit)", func() { cached.Tokenize(document) })
	b.bench("Tokenize (cache miss)", func() {
		cached.ClearCache()
		cached.Tokenize(document)
	})
	printFooter()
}

type bencher struct {
	iterations, warmup int
}

func (b *bencher) bench(name string, fn func()) {
	for i := 0; i < b.warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < b.iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(b.iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(b.iterations)

	if len(name) > 26 {
		name = name[:26]
	}

	// Pad on the plain text, colors add invisible bytes
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", name, opsPerSec, nsPerOp)
	pad := ""
	if n := boxWidth - len(plain); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	colored := fmt.Sprintf("  %-26s %s ops/sec %s ns", name, green("%10.0f", opsPerSec), yellow("%8.0f", nsPerOp))

	fmt.Println(dim("│") + colored + pad + dim("│"))
}

func printHeader(title string) {
	fmt.Println(dim("┌" + line + "┐"))
	fmt.Println(dim("│") + cyan(padLine("  "+title)) + dim("│"))
	fmt.Println(dim("├" + line + "┤"))
}

func printFooter() {
	fmt.Println(dim("└" + line + "┘"))
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}
