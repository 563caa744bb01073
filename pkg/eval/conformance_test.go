package eval

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/devlisp/devlisp/internal/value"
	"github.com/devlisp/devlisp/pkg/lexer"
	"github.com/devlisp/devlisp/pkg/parser"
)

// conformanceScenario is one input/output case lifted from spec.md's
// §8 "Concrete scenarios" table. forms are evaluated in order against
// a single fresh environment; only the last form's result (or error)
// is checked.
type conformanceScenario struct {
	Name              string   `yaml:"name"`
	Forms             []string `yaml:"forms"`
	Want              string   `yaml:"want"`
	WantErrorCategory string   `yaml:"wantErrorCategory"`
}

type conformanceFile struct {
	Scenarios []conformanceScenario `yaml:"scenarios"`
}

func loadConformanceScenarios(t *testing.T) []conformanceScenario {
	t.Helper()

	data, err := os.ReadFile("../../testdata/conformance.yaml")
	if err != nil {
		t.Fatalf("could not read conformance fixtures: %v", err)
	}

	var f conformanceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		t.Fatalf("could not parse conformance fixtures: %v", err)
	}

	return f.Scenarios
}

func TestConformanceScenarios(t *testing.T) {
	for _, sc := range loadConformanceScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			env := value.NewEnv()
			RegisterBuiltins(env)
			ev := New()

			var (
				result value.Expr
				err    error
			)
			for _, form := range sc.Forms {
				p := parser.New(lexer.New(form))
				expr, parseErr := p.ParseOne()
				if parseErr != nil {
					t.Fatalf("parse error on %q: %v", form, parseErr)
				}
				result, err = ev.Eval(env, expr)
				if err != nil {
					break
				}
			}

			if sc.WantErrorCategory != "" {
				if err == nil {
					t.Fatalf("expected an error in category %q, got result %v", sc.WantErrorCategory, result)
				}
				ce, ok := err.(CategorizedError)
				if !ok {
					t.Fatalf("error %v (%T) does not implement CategorizedError", err, err)
				}
				if string(ce.Category()) != sc.WantErrorCategory {
					t.Fatalf("got category %q, want %q", ce.Category(), sc.WantErrorCategory)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.String() != sc.Want {
				t.Fatalf("got %q, want %q", result.String(), sc.Want)
			}
		})
	}
}
