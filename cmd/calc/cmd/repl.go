package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/littlekuo/calc-treewalk/internal/calculator"
	"github.com/littlekuo/calc-treewalk/internal/config"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read expressions line by line",
	Long: `Read expressions from stdin and render each with the current traversal.

  :rpn :print :eval   switch traversal
  :quit               leave (Ctrl+D works too)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := &repl{
			in:        cmd.InOrStdin(),
			out:       cmd.OutOrStdout(),
			traversal: cfg.Output.Traversal,
		}
		r.run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

type repl struct {
	in        io.Reader
	out       io.Writer
	traversal string
	rendered  int
	failed    int
}

var replTraversals = map[string]string{
	":rpn":   config.TraversalRPN,
	":print": config.TraversalOriginal,
	":eval":  config.TraversalEval,
}

func (r *repl) run() {
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, styles.Prompt.Render(r.traversal+"> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":quit" {
			break
		}
		if traversal, ok := replTraversals[line]; ok {
			r.traversal = traversal
			continue
		}
		r.eval(line)
	}
	fmt.Fprintln(r.out)
	p := message.NewPrinter(language.English)
	fmt.Fprintln(r.out, styles.Muted.Render(p.Sprintf("%d rendered, %d failed", r.rendered, r.failed)))
}

func (r *repl) eval(line string) {
	out, err := calculator.Render(line, r.traversal, calculatorOptions()...)
	if err != nil {
		r.failed++
		diagnose(r.out, line, err)
		printError(r.out, err)
		return
	}
	r.rendered++
	fmt.Fprintln(r.out, out)
}
