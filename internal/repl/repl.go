// Package repl implements the interactive Read-Eval-Print Loop: it reads
// one line at a time, parses it as a statement list (a bare expression
// without ';' is a parse error), and evaluates against an Environment that
// persists for the
// lifetime of the process (never across invocations, per §9).
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/loxo/internal/diagnostics"
	"github.com/akashmaji946/loxo/internal/interp"
	"github.com/akashmaji946/loxo/internal/lexer"
	"github.com/akashmaji946/loxo/internal/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Banner is the ASCII art logo printed at REPL startup.
const Banner = `
   __
  / /___  _  ______
 / / __ \| |/_/ __ \
/ / /_/ />  </ /_/ /
/_/\____/_/|_|\____/
`

const (
	version = "v1.0.0"
	line    = "----------------------------------------------------------------"
	prompt  = "loxo> "
)

// Repl is one interactive session: its own Interp and Parser-diagnostic
// state, independent of any other session (so a TCP server can run one
// per connection without sharing variables between clients).
type Repl struct {
	Prompt string
}

// New creates a Repl with the default prompt.
func New() *Repl {
	return &Repl{Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", Banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "loxo %s\n", version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the loop against reader/writer until '.exit', EOF, or a
// readline error. A fresh interpreter backs the whole session so variables
// and functions declared on one line are visible to later lines.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		Stdin:       io.NopCloser(reader),
		Stdout:      writer,
		Stderr:      writer,
		HistoryFile: "",
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	it := interp.New()
	it.SetWriter(writer)

	for {
		input, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Goodbye.\n"))
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			writer.Write([]byte("Goodbye.\n"))
			return
		}

		r.evalLine(writer, it, input)
	}
}

// evalLine parses and evaluates one line of input, recovering from any
// internal panic so a single bad line never ends the session.
func (r *Repl) evalLine(writer io.Writer, it *interp.Interp, input string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[internal error] %v\n", rec)
		}
	}()

	lx := lexer.New(input)
	tokens := lx.ScanTokens()
	if lx.Diagnostics().HasErrors() {
		reportAll(writer, lx.Diagnostics())
		return
	}

	p := parser.New(tokens)
	stmts := p.ParseProgram()
	if p.Diagnostics().HasErrors() {
		reportAll(writer, p.Diagnostics())
		return
	}

	if err := it.Run(stmts); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}
}

func reportAll(writer io.Writer, diags diagnostics.List) {
	for _, d := range diags {
		redColor.Fprintf(writer, "[line %d] Error: %s\n", d.Line, d.Message)
	}
}
