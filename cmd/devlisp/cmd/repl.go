package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/devlisp/devlisp/internal/value"
	"github.com/devlisp/devlisp/pkg/eval"
	"github.com/devlisp/devlisp/pkg/lexer"
	"github.com/devlisp/devlisp/pkg/parser"
	"github.com/devlisp/devlisp/pkg/prelude"
)

func runREPL(out io.Writer) error {
	cfg, err := loadReplConfig(configPath)
	if err != nil {
		return err
	}

	env := value.NewEnv()
	eval.RegisterBuiltins(env)
	ev := eval.New()

	if err := prelude.Load(ev, env); err != nil {
		fmt.Fprintf(os.Stderr, "चेतावनी: %v\n", err)
	}

	var history *os.File
	if cfg.HistoryPath != "" {
		history, _ = os.OpenFile(cfg.HistoryPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if history != nil {
			defer history.Close()
		}
	}

	fmt.Fprintln(out, cfg.Banner)
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, cfg.Prompt)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":बाहिर" || line == ":q" {
			break
		}
		if strings.HasPrefix(line, ":") {
			handleREPLCommand(out, line)

			continue
		}

		if history != nil {
			fmt.Fprintln(history, line)
		}

		p := parser.New(lexer.New(line))
		expr, err := p.ParseOne()
		if err != nil {
			fmt.Fprintf(out, "पद वर्णन त्रुटि: %v\n", err)

			continue
		}

		result, err := ev.Eval(env, expr)
		if err != nil {
			fmt.Fprintf(out, "मूल्याङ्कन त्रुटि: %v\n", err)

			continue
		}

		fmt.Fprintln(out, result.String())
	}

	return nil
}

func handleREPLCommand(out io.Writer, cmd string) {
	switch cmd {
	case ":सहायता", ":h":
		fmt.Fprintln(out, "उपलब्ध आदेशहरू:")
		fmt.Fprintln(out, "  :सहायता, :h   यो सहायता देखाउनुहोस्")
		fmt.Fprintln(out, "  :बाहिर, :q    रिप्लबाट बाहिर निस्कनुहोस्")
	default:
		fmt.Fprintf(out, "अज्ञात आदेश: %s\n", cmd)
	}
}
