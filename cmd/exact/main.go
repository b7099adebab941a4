// cmd/exact/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"exact/internal/calc"
	"exact/internal/repl"

	"github.com/golang/glog"
)

const VERSION = "1.0.0"

// Build variables - can be set during build with ldflags
var (
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Command aliases mapping
var commandAliases = map[string]string{
	"r": "repl",
	"c": "conv",
	"e": "eval",
	"v": "version",
}

func main() {
	flag.Parse() // glog flags (-v, -logtostderr, ...)
	args := flag.Args()

	if len(args) == 0 {
		repl.Start(os.Stdin, os.Stdout)
		return
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "help", "--help", "-h":
		showUsage()

	case "version", "--version":
		showVersion()

	case "repl":
		repl.Start(os.Stdin, os.Stdout)

	case "eval":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "usage: exact eval <expression>")
			os.Exit(1)
		}
		env := calc.NewEnv()
		for _, expr := range args[1:] {
			result, err := env.EvalString(expr)
			if err != nil {
				glog.Errorf("eval %q: %v", expr, err)
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			env.Vars["ans"] = result
			fmt.Println(result.String())
		}

	case "conv":
		if err := runConv(os.Stdin, os.Stdout); err != nil {
			glog.Errorf("conv: %v", err)
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		showUsage()
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Print(`exact - arbitrary-precision rational arithmetic

Usage: exact [command]

Commands:
  repl           interactive calculator (default, alias: r)
  eval <expr>    evaluate an expression and print the result (alias: e)
  conv           convert an integer between number bases (alias: c)
  version        show version information (alias: v)
  help           show this help
`)
}

func showVersion() {
	fmt.Printf("exact %s (built %s, commit %s)\n", VERSION, BuildDate, GitCommit)
}
