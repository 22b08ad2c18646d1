/*
File    : pico8ls-core/repl/repl.go
Author  : akashmaji946, adapted for the PICO-8 dialect core

Package repl implements an interactive loop over the core's Parse pipeline.
Unlike the teacher's original REPL, this one evaluates nothing: it exists so
a developer can paste a snippet and immediately see the outline and every
diagnostic the core would hand a language-server host,
without standing up a server. The REPL reads until a blank line, treating
the accumulated lines as one document (the core always parses a whole
chunk, never a single expression).
*/
package repl

import (
	"io"
	"strings"

	pico8ls "github.com/akashmaji946/pico8ls-core"
	"github.com/akashmaji946/pico8ls-core/symbols"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session over the core's Parse pipeline.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type or paste a PICO-8 chunk, one blank line to parse it")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: accumulate lines into one chunk, parse
// it on a blank line, report the outline and diagnostics, then repeat.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var pending []string
	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if strings.TrimSpace(line) == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if strings.TrimSpace(line) == "" {
			if len(pending) == 0 {
				continue
			}
			rl.SaveHistory(strings.Join(pending, "\n"))
			r.parseAndReport(writer, strings.Join(pending, "\n"))
			pending = nil
			continue
		}

		pending = append(pending, line)
	}
}

// parseAndReport runs Parse over src and renders its result, tagging the
// output with a request ID the way a language-server host would correlate
// a diagnostics response back to the document that produced it.
func (r *Repl) parseAndReport(writer io.Writer, src string) {
	requestID := uuid.NewString()
	blueColor.Fprintf(writer, "-- request %s --\n", requestID)

	result := pico8ls.Parse(src)

	for _, e := range result.Errors {
		redColor.Fprintf(writer, "[error] %s (line %d, col %d)\n", e.Message, e.Bounds.Start.Line, e.Bounds.Start.Column)
	}
	for _, w := range result.Warnings {
		yellowColor.Fprintf(writer, "[warning] %s (line %d, col %d)\n", w.Message, w.Bounds.Start.Line, w.Bounds.Start.Column)
	}
	if len(result.Symbols) == 0 {
		cyanColor.Fprintln(writer, "(no symbols)")
		return
	}
	for _, sym := range result.Symbols {
		printSymbol(writer, sym, 0)
	}
}

func printSymbol(writer io.Writer, sym *symbols.CodeSymbol, depth int) {
	greenColor.Fprintf(writer, "%s%s %s\n", strings.Repeat("  ", depth), sym.Kind, sym.Name+sym.Detail)
	for _, child := range sym.Children {
		printSymbol(writer, child, depth+1)
	}
}
