package cmd

import (
	"fmt"
	"os"

	"github.com/devlisp/devlisp/internal/value"
	"github.com/devlisp/devlisp/pkg/eval"
	"github.com/devlisp/devlisp/pkg/lexer"
	"github.com/devlisp/devlisp/pkg/parser"
	"github.com/devlisp/devlisp/pkg/prelude"
	"github.com/spf13/cobra"
)

var evalExpr string

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a single देवलिस्प expression",
	Long: `Evaluate one expression given inline with -e and print its result.

Examples:
  devlisp eval -e "(+ १ २)"`,
	Args: cobra.NoArgs,
	RunE: runEvalExpr,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVarP(&evalExpr, "expr", "e", "", "the expression to evaluate")
	_ = evalCmd.MarkFlagRequired("expr")
}

func runEvalExpr(cmd *cobra.Command, args []string) error {
	env := value.NewEnv()
	eval.RegisterBuiltins(env)
	ev := eval.New()

	if err := prelude.Load(ev, env); err != nil {
		fmt.Fprintf(os.Stderr, "चेतावनी: %v\n", err)
	}

	p := parser.New(lexer.New(evalExpr))
	expr, err := p.ParseOne()
	if err != nil {
		return fmt.Errorf("पद वर्णन त्रुटि: %w", err)
	}

	result, err := ev.Eval(env, expr)
	if err != nil {
		return fmt.Errorf("मूल्याङ्कन त्रुटि: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.String())

	return nil
}
