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

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a देवलिस्प source file",
	Long: `Parse and evaluate every top-level form in a देवलिस्प source file,
in order, against a fresh environment.

Examples:
  devlisp run कार्यक्रम.अ`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	filename := args[0]
	contents, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("फाइल पढ्न सकिएन: %w", err)
	}

	env := value.NewEnv()
	eval.RegisterBuiltins(env)
	ev := eval.New()

	if err := prelude.Load(ev, env); err != nil {
		fmt.Fprintf(os.Stderr, "चेतावनी: %v\n", err)
	}

	p := parser.New(lexer.New(string(contents)))
	forms, err := p.ParseProgram()
	if err != nil {
		return fmt.Errorf("पद वर्णन त्रुटि: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, form := range forms {
		result, err := ev.Eval(env, form)
		if err != nil {
			return fmt.Errorf("मूल्याङ्कन त्रुटि: %w", err)
		}
		fmt.Fprintln(out, result.String())
	}

	return nil
}
