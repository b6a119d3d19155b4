package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/kerem-kaynak/bracket-tokenizer/pkg/tokenizer"
)

// printer writes a token tree, one token per line, indented by depth.
type printer struct {
	w io.Writer

	kind, text, bracket, pos *color.Color
}

func newPrinter(w io.Writer, colorize bool) *printer {
	p := &printer{
		w:       w,
		kind:    color.New(color.FgCyan),
		text:    color.New(color.FgGreen),
		bracket: color.New(color.FgMagenta, color.Bold),
		pos:     color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.kind, p.text, p.bracket, p.pos} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) print(tokens []tokenizer.Token, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, tok := range tokens {
		kind := p.kind.Sprintf("%-7s", tok.Kind())
		switch t := tok.(type) {
		case tokenizer.Plain:
			fmt.Fprintf(p.w, "%s%s %s %s\n", indent, kind, p.text.Sprint(strconv.Quote(t.Text)), p.at(t.Pos))
		case tokenizer.Space:
			fmt.Fprintf(p.w, "%s%s %s %s\n", indent, kind, p.text.Sprint(strconv.Quote(t.Text)), p.at(t.Pos))
		case tokenizer.Literal:
			fmt.Fprintf(p.w, "%s%s %s%s%s %s\n", indent, kind,
				p.bracket.Sprint(string(t.Quote)), p.text.Sprint(t.Text()), p.bracket.Sprint(string(t.Quote)), p.at(t.Pos))
		case tokenizer.Tree:
			spans := ""
			if t.HasSpans() {
				spans = p.pos.Sprintf("outer=[%d,%d) inner=[%d,%d)", t.Outer.Start, t.Outer.End, t.Inner.Start, t.Inner.End)
			}
			fmt.Fprintf(p.w, "%s%s %s %s\n", indent, kind, p.bracket.Sprint(t.Pair.String()), spans)
			p.print(t.Children, depth+1)
		}
	}
}

func (p *printer) at(pos int) string {
	return p.pos.Sprintf("@%d", pos)
}
