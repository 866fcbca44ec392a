/*
File    : solc/cmd/sol/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Command sol is the entry point for the Sol compiler. It provides two
modes of operation:
1. File mode: compile a Sol source file and print or write the result.
2. REPL mode (default, no file given): an interactive compile loop.
*/
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/solc/internal/compiler"
	"github.com/akashmaji946/solc/internal/loader"
	"github.com/akashmaji946/solc/internal/replutil"
	"github.com/akashmaji946/solc/internal/solconfig"
)

// VERSION is the current version of the Sol compiler.
const VERSION = "v1.0.0"

// AUTHOR contains the contact information of the compiler's author.
const AUTHOR = "akashmaji(@iisc.ac.in)"

// PROMPT is the command prompt displayed in REPL mode.
const PROMPT = "sol >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
const BANNER = `
   ▄████▄   ▒█████   ██▓
  ▒██▀ ▀█  ▒██▒  ██▒▓██▒
  ▒▓█    ▄ ▒██░  ██▒▒██░
  ▒▓▓▄ ▄██▒▒██   ██░▒██░
  ▒ ▓███▀ ░░ ████▓▒░░██████▒
  ░ ░▒ ▒  ░░ ▒░▒░▒░ ░ ▒░▓  ░
    ░  ▒     ░ ▒ ▒░ ░ ░ ▒  ░
`

// LINE is a separator line used for visual formatting.
const LINE = "----------------------------------------------------------------"

//go:embed prelude.js
var prelude string

var (
	redColor   = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
)

func main() {
	debug := flag.Bool("debug", false, "output debug information (tokens, compiled text)")
	flag.BoolVar(debug, "d", false, "shorthand for --debug")
	raw := flag.Bool("raw", false, "treat the input file as already-compiled output")
	flag.BoolVar(raw, "r", false, "shorthand for --raw")
	version := flag.Bool("version", false, "print the compiler version")
	flag.BoolVar(version, "v", false, "shorthand for --version")
	output := flag.String("o", "", "write compiled output to this path instead of stdout")
	configPath := flag.String("config", ".solc.yml", "path to an optional YAML configuration file")
	flag.Parse()

	if *version {
		fmt.Printf("Sol v%s\n", VERSION)
		return
	}

	cfg, err := solconfig.Load(*configPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}
	if *output == "" {
		*output = cfg.OutputPath
	}

	args := flag.Args()
	if len(args) == 0 {
		runRepl(*debug)
		return
	}

	runFile(args[0], *debug, *raw, *output, cfg)
}

func runFile(path string, debug, raw bool, outputPath string, cfg *solconfig.Config) {
	src, err := loader.Read(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		os.Exit(1)
	}

	compiled := src.Contents
	if !raw {
		out, compileErr := compiler.Compile(src.Contents)
		if compileErr != nil {
			redColor.Fprintf(os.Stderr, "[COMPILE ERROR] %s\n", compileErr.Error())
			os.Exit(1)
		}
		compiled = out
	}

	if !raw && cfg.EmitPrelude {
		compiled = prelude + "\n" + compiled
	}

	if debug {
		cyanColor.Println("=== TOKENS ===")
		for _, tok := range compiler.Lex(src.Contents) {
			fmt.Println(tok.String())
		}
		cyanColor.Println("=== OUTPUT ===")
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(compiled), 0o644); err != nil {
			redColor.Fprintf(os.Stderr, "[FILE ERROR] could not write %q: %v\n", outputPath, err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(compiled)
}

func runRepl(debug bool) {
	r := replutil.New(BANNER, VERSION, AUTHOR, LINE, PROMPT)
	r.Debug = debug
	if err := r.Start(os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
		os.Exit(1)
	}
}
