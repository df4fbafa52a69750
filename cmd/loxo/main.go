// Command loxo is the interpreter's command-line driver. It exposes the
// four pipeline-stage subcommands (tokenize, parse, evaluate, run) plus an
// interactive repl, translating diagnostics and runtime errors into the
// exit codes the pipeline contract promises: 0 success, 1 usage error, 65
// compile-time error, 70 runtime error.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/loxo/internal/ast"
	"github.com/akashmaji946/loxo/internal/diagnostics"
	"github.com/akashmaji946/loxo/internal/interp"
	"github.com/akashmaji946/loxo/internal/lexer"
	"github.com/akashmaji946/loxo/internal/parser"
	"github.com/akashmaji946/loxo/internal/repl"
)

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the testable entry point: it never calls os.Exit itself, so a
// test can drive it and inspect the returned code directly.
func run(args []string) int {
	args, cfgPath := extractConfigFlag(args)

	if len(args) == 0 {
		usage()
		return 1
	}

	cmd := args[0]
	rest := args[1:]

	switch cmd {
	case "--help", "-h", "help":
		usage()
		return 0
	case "--version", "-v", "version":
		cyanColor.Println("loxo - a tree-walking Lox interpreter")
		return 0
	case "repl":
		return runRepl(rest)
	case "tokenize", "parse", "evaluate", "run", "interpret":
		if len(rest) == 0 {
			redColor.Fprintln(os.Stderr, "[usage error] missing file argument")
			return 1
		}
		return runFile(cmd, rest[0], cfgPath)
	default:
		redColor.Fprintf(os.Stderr, "[usage error] unknown command %q\n", cmd)
		return 1
	}
}

func usage() {
	cyanColor.Println("Usage:")
	yellowColor.Println("  loxo tokenize <file>   print one line per token")
	yellowColor.Println("  loxo parse <file>      print the parsed expression's AST form")
	yellowColor.Println("  loxo evaluate <file>   evaluate a single expression and print its value")
	yellowColor.Println("  loxo run <file>        execute a program")
	yellowColor.Println("  loxo repl              start an interactive session")
	yellowColor.Println("  loxo repl server <port> start a REPL server")
	yellowColor.Println("  loxo -config <path> ... load a lexer config for tokenize/parse/evaluate/run")
}

// extractConfigFlag pulls a "-config <path>" pair out of args, wherever
// the global flag described in the ambient CLI surface appears,
// and returns the remaining args alongside the path (empty if absent).
func extractConfigFlag(args []string) ([]string, string) {
	var out []string
	var cfgPath string
	for i := 0; i < len(args); i++ {
		if args[i] == "-config" && i+1 < len(args) {
			cfgPath = args[i+1]
			i++
			continue
		}
		out = append(out, args[i])
	}
	if cfgPath == "" {
		cfgPath = os.Getenv("LOXO_CONFIG")
	}
	return out, cfgPath
}

func loadLexerConfig(path string) lexer.Config {
	if path == "" {
		return lexer.DefaultConfig()
	}
	cfg, err := lexer.LoadConfig(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[usage error] could not load config %q: %v\n", path, err)
		return lexer.DefaultConfig()
	}
	return cfg
}

func runFile(cmd, path, cfgPath string) (code int) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(os.Stderr, "[internal error] %v\n", rec)
			code = 70
		}
	}()

	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[usage error] could not read %q: %v\n", path, err)
		return 1
	}

	cfg := loadLexerConfig(cfgPath)
	lx := lexer.NewWithConfig(string(src), cfg)
	tokens := lx.ScanTokens()

	if cmd == "tokenize" {
		for _, t := range tokens {
			fmt.Println(t.String())
		}
		if lx.Diagnostics().HasErrors() {
			reportDiagnostics(lx.Diagnostics())
			return 65
		}
		return 0
	}

	// parse/evaluate/run hand the full token stream — LexError tokens
	// included — to the parser, which reports and skips them itself
	// (§4.2), so lex and parse diagnostics accumulate in one pass instead
	// of the lexer's problems short-circuiting before parsing ever runs.
	p := parser.New(tokens)

	if cmd == "parse" || cmd == "evaluate" {
		expr := p.ParseExpression()
		if p.Diagnostics().HasErrors() {
			reportDiagnostics(p.Diagnostics())
			return 65
		}
		if cmd == "parse" {
			fmt.Println(ast.Print(expr))
			return 0
		}
		it := interp.New()
		val, err := it.Eval(expr)
		if err != nil {
			reportRuntimeError(err)
			return 70
		}
		fmt.Println(val.String())
		return 0
	}

	// run / interpret
	stmts := p.ParseProgram()
	if p.Diagnostics().HasErrors() {
		reportDiagnostics(p.Diagnostics())
		return 65
	}
	it := interp.New()
	if err := it.Run(stmts); err != nil {
		reportRuntimeError(err)
		return 70
	}
	return 0
}

func runRepl(args []string) int {
	if len(args) > 0 && args[0] == "server" {
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "[usage error] missing port for repl server. Usage: loxo repl server <port>")
			return 1
		}
		return runReplServer(args[1])
	}
	repl.New().Start(os.Stdin, os.Stdout)
	return 0
}

func runReplServer(port string) int {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[server error] failed to listen on port %s: %v\n", port, err)
		return 1
	}
	defer listener.Close()
	cyanColor.Printf("loxo repl server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[server error] accept failed: %v\n", err)
			continue
		}
		go func() {
			defer conn.Close()
			repl.New().Start(conn, conn)
		}()
	}
}

func reportDiagnostics(diags diagnostics.List) {
	for _, d := range diags {
		redColor.Fprintf(os.Stderr, "[line %d] Error: %s\n", d.Line, d.Message)
	}
}

func reportRuntimeError(err error) {
	if re, ok := err.(*interp.RuntimeError); ok {
		redColor.Fprintf(os.Stderr, "%s\n[line %d]\n", re.Diagnostic.Message, re.Diagnostic.Line)
		return
	}
	redColor.Fprintf(os.Stderr, "%s\n", err.Error())
}
