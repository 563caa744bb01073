// Package prelude loads the optional प्रस्तावना.अ standard-library file
// into an environment before a REPL session or file run begins.
package prelude

import (
	"fmt"
	"os"

	"github.com/devlisp/devlisp/internal/value"
	"github.com/devlisp/devlisp/pkg/eval"
	"github.com/devlisp/devlisp/pkg/lexer"
	"github.com/devlisp/devlisp/pkg/parser"
)

// FileName is the fixed prelude file name devlisp looks for in the
// current working directory, mirroring the standard-library file
// original_source/src/main.rs embeds at build time.
const FileName = "प्रस्तावना.अ"

// Load reads FileName, parses it, and evaluates every top-level form
// into env using ev. A missing prelude file is not an error — it is
// optional ambient convenience, not a required built-in.
func Load(ev *eval.Evaluator, env *value.Env) error {
	contents, err := os.ReadFile(FileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("प्रस्तावना पढ्न सकिएन: %w", err)
	}

	p := parser.New(lexer.New(string(contents)))
	forms, err := p.ParseProgram()
	if err != nil {
		return fmt.Errorf("प्रस्तावना पद वर्णन गर्न सकिएन: %w", err)
	}

	for _, form := range forms {
		if _, err := ev.Eval(env, form); err != nil {
			return fmt.Errorf("प्रस्तावना मूल्याङ्कन गर्न सकिएन: %w", err)
		}
	}

	return nil
}
