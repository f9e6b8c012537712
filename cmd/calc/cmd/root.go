package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/littlekuo/calc-treewalk/internal/calculator"
	"github.com/littlekuo/calc-treewalk/internal/config"
	"github.com/littlekuo/calc-treewalk/internal/logging"
	"github.com/littlekuo/calc-treewalk/internal/syntax"
)

const (
	exitUsage    = 64
	exitData     = 65
	exitSoftware = 70
)

var (
	cfgFile       string
	verbose       bool
	allowTrailing bool
	lenientClose  bool
	noColor       bool
	filePath      string

	cfg    *config.Config
	logger *slog.Logger
	styles = NewStyles(false)
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Arithmetic expression front end",
	Long: `calc tokenizes an arithmetic expression, parses it with a recursive
descent parser and renders the syntax tree.

Expressions use non-negative integers, + - * /, parentheses and unary minus.
Whitespace is not allowed.

Traversals:
  rpn      - postfix form, e.g. "1 2 4 3 +*+"
  print    - source-order rendering, e.g. "1 plus 2*[[4 plus 3]]"
  eval     - numeric value`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		printError(stderr, err)
		return exitCode(err)
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CALC_CONFIG or ./calc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&allowTrailing, "allow-trailing", false, "ignore tokens after a complete expression")
	rootCmd.PersistentFlags().BoolVar(&lenientClose, "lenient-close", false, "do not check the token closing a group")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "plain output")
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "read the expression from a file")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return usageError(fmt.Errorf("load config: %w", err))
	}

	flags := cmd.Flags()
	if flags.Changed("allow-trailing") {
		cfg.Parser.AllowTrailing = allowTrailing
	}
	if flags.Changed("lenient-close") {
		cfg.Parser.LenientClose = lenientClose
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if noColor {
		cfg.Output.Color = false
	}

	logger = logging.New(cfg.General, cmd.ErrOrStderr())
	styles = NewStyles(cfg.Output.Color)
	return nil
}

func calculatorOptions() []calculator.Option {
	return []calculator.Option{
		calculator.WithLogger(logger),
		calculator.WithParserConfig(cfg.Parser),
	}
}

// readSource takes the expression from the single argument or from --file,
// never both.
func readSource(args []string) (string, error) {
	if len(args) == 0 && filePath == "" {
		return "", usageError(errors.New("expression and --file are both empty"))
	}
	if len(args) > 0 && filePath != "" {
		return "", usageError(errors.New("expression and --file are both set"))
	}
	if len(args) > 1 {
		return "", usageError(fmt.Errorf("expected one expression, got %d arguments", len(args)))
	}
	if filePath == "" {
		return args[0], nil
	}
	source, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read file failed: %w", err)
	}
	return trimNewline(string(source)), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, syntax.ErrLex) || errors.Is(err, syntax.ErrParse) {
		return exitData
	}
	if errors.Is(err, syntax.ErrInternal) {
		return exitSoftware
	}
	return 1
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", styles.Error.Render("error:"), err)
}
