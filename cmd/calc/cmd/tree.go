package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/littlekuo/calc-treewalk/internal/calculator"
	"github.com/littlekuo/calc-treewalk/internal/config"
	"github.com/littlekuo/calc-treewalk/internal/syntax"
)

var treeFormat string

var treeCmd = &cobra.Command{
	Use:     "tree [expression]",
	Short:   "Dump the syntax tree",
	Example: `  calc tree --format yaml "1+2"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args)
		if err != nil {
			return err
		}
		format := cfg.Output.TreeFormat
		if cmd.Flags().Changed("format") {
			format = treeFormat
		}

		c, err := calculator.New(source, calculatorOptions()...)
		if err != nil {
			diagnose(cmd.ErrOrStderr(), source, err)
			return err
		}
		tree, err := c.ParseExpression()
		if err != nil {
			diagnose(cmd.ErrOrStderr(), source, err)
			return err
		}

		out := cmd.OutOrStdout()
		switch format {
		case config.TreeFormatRepr:
			fmt.Fprintln(out, repr.String(tree, repr.Indent("  "), repr.OmitEmpty(true)))
		case config.TreeFormatYAML:
			dump, err := syntax.TreeDumper{}.Dump(tree)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(dump)
			if err != nil {
				return fmt.Errorf("marshal tree: %w", err)
			}
			fmt.Fprint(out, string(data))
		default:
			return usageError(fmt.Errorf("unknown tree format %q", format))
		}
		return nil
	},
}

func init() {
	treeCmd.Flags().StringVar(&treeFormat, "format", config.TreeFormatYAML, "output format: yaml or repr")
	rootCmd.AddCommand(treeCmd)
}
