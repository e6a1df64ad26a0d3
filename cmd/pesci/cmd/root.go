// Package cmd implements pesci's command-line surface with
// github.com/spf13/cobra, following the teacher's cmd/dwscript/cmd
// package shape (a rootCmd carrying version info, RunE doing the real
// work) adapted to §6's single-optional-positional-argument contract:
// `pesci [+]file`, or no argument at all to start the REPL.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pesci-lang/pesci/internal/builtins"
	"github.com/pesci-lang/pesci/internal/debug"
	"github.com/pesci-lang/pesci/internal/errors"
	"github.com/pesci-lang/pesci/internal/interp"
	"github.com/pesci-lang/pesci/internal/parser"
	"github.com/pesci-lang/pesci/internal/repl"
	"github.com/pesci-lang/pesci/internal/validator"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pesci [+][file]",
	Short: "A sandboxed interpreter for a small Python-like subset",
	Long: `pesci interprets a deliberately small subset of Python: assignments,
conditionals, loops, functions, and the handful of built-ins listed in
its specification. With no arguments it starts an interactive session;
given a file, it runs that program to completion. Prefixing the file
name with '+' enables debug mode: a numbered source listing, an
indented AST dump, and a post-run environment description are printed
alongside the program's own output.`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runPesci,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("pesci version {{.Version}}\nCommit: %s\n", GitCommit))
}

func runPesci(_ *cobra.Command, args []string) error {
	table := builtins.Table()

	if len(args) == 0 {
		in := interp.New(table, func(s string) { fmt.Fprint(os.Stdout, s) })
		return repl.Run(in, os.Stdout)
	}

	arg := args[0]
	debugMode := strings.HasPrefix(arg, "+")
	filename := strings.TrimPrefix(arg, "+")

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	src := string(content)

	mod, err := parser.ParseModule(src)
	if err != nil {
		return err
	}
	if err := validator.Validate(mod); err != nil {
		return err
	}

	if debugMode {
		fmt.Println()
		fmt.Println(debug.SourceDump(strings.Split(src, "\n")))
		fmt.Println(debug.ASTDump(mod))
		fmt.Println(strings.Repeat("*", 20))
	}

	in := interp.New(table, func(s string) { fmt.Fprint(os.Stdout, s) })
	in.Load(mod)
	runErr := in.Run()

	if debugMode {
		fmt.Println()
		fmt.Println(in.Env.Description())
	}

	if runErr != nil {
		if pe, ok := runErr.(*errors.PesciError); ok {
			return fmt.Errorf("%s", pe.Format(strings.Split(src, "\n")))
		}
		return runErr
	}
	return nil
}
