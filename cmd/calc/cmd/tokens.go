package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/littlekuo/calc-treewalk/internal/calculator"
)

var tokensCmd = &cobra.Command{
	Use:     "tokens [expression]",
	Short:   "List the tokens of an expression",
	Example: `  calc tokens "12*(3-4)"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args)
		if err != nil {
			return err
		}
		c, err := calculator.New(source, calculatorOptions()...)
		if err != nil {
			diagnose(cmd.ErrOrStderr(), source, err)
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s  %s\n", styles.Kind.Render("KIND"), styles.Heading.Render("POS"), styles.Heading.Render("LEXEME"))
		for _, tok := range c.Tokens() {
			fmt.Fprintf(out, "%s  %3d  %s\n", styles.Kind.Render(tok.TokenType.String()), tok.Pos, styles.Lexeme.Render(tok.Lexeme))
		}
		p := message.NewPrinter(language.English)
		fmt.Fprintln(out, styles.Muted.Render(p.Sprintf("%d tokens, %d bytes", len(c.Tokens()), len(source))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
