/*
File    : solc/internal/replutil/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package replutil implements an interactive tooling loop over the
compiler: every line the user enters is lexed, parsed, and compiled,
with the emitted target text (or any structured error) printed back.
There is no execution step — running the emitted text is out of scope,
so the REPL is a syntax/compilation sandbox, not a language shell.
*/
package replutil

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/solc/internal/compiler"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session over the compiler pipeline.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string

	// Debug, when set, prints the token stream alongside the compiled
	// output for every line.
	Debug bool
}

// New creates a Repl with the given display strings.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Sol interactive compiler")
	cyanColor.Fprintf(writer, "%s\n", "Type a Sol statement and press enter to see its compiled output")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-compile-print loop until EOF or '.exit'.
func (r *Repl) Start(writer io.Writer) error {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}

		rl.SaveHistory(line)
		r.execute(writer, line)
	}
}

// execute compiles one line of input and prints the result or error.
func (r *Repl) execute(writer io.Writer, line string) {
	if r.Debug {
		for _, tok := range compiler.Lex(line) {
			cyanColor.Fprintf(writer, "%s\n", tok.String())
		}
	}

	out, err := compiler.Compile(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", out)
}
