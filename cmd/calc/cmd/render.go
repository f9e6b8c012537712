package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/littlekuo/calc-treewalk/internal/calculator"
	"github.com/littlekuo/calc-treewalk/internal/config"
	"github.com/littlekuo/calc-treewalk/internal/syntax"
)

var rpnCmd = &cobra.Command{
	Use:     "rpn [expression]",
	Short:   "Print the expression in postfix form",
	Example: `  calc rpn "1+2*(4+3)"`,
	RunE:    renderRunE(config.TraversalRPN),
}

var printCmd = &cobra.Command{
	Use:     "print [expression]",
	Short:   "Re-render the expression in source order",
	Example: `  calc print "(1+2)*3"`,
	RunE:    renderRunE(config.TraversalOriginal),
}

var evalCmd = &cobra.Command{
	Use:     "eval [expression]",
	Short:   "Evaluate the expression",
	Example: `  calc eval "8-2-1"`,
	RunE:    renderRunE(config.TraversalEval),
}

var renderCmd = &cobra.Command{
	Use:   "render [expression]",
	Short: "Render with the traversal named in the config (output.traversal)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderRunE(cfg.Output.Traversal)(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(rpnCmd, printCmd, evalCmd, renderCmd)
}

func renderRunE(traversal string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args)
		if err != nil {
			return err
		}
		out, err := calculator.Render(source, traversal, calculatorOptions()...)
		if err != nil {
			diagnose(cmd.ErrOrStderr(), source, err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
}

// diagnose points at the failing column of a lex or parse error.
func diagnose(w io.Writer, source string, err error) {
	pos := -1
	var lexErr *syntax.LexError
	var parseErr *syntax.ParseError
	switch {
	case errors.As(err, &lexErr):
		pos = lexErr.Pos
	case errors.As(err, &parseErr):
		pos = parseErr.Pos
	}
	if pos < 0 || pos > len(source) {
		return
	}
	fmt.Fprintf(w, "  %s\n  %s%s\n", source, strings.Repeat(" ", pos), styles.Caret.Render("^"))
}
