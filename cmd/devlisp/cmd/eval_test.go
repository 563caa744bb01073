package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunEvalExprPrintsResult(t *testing.T) {
	evalExpr = "(+ १ २)"
	var out bytes.Buffer
	evalCmd.SetOut(&out)

	if err := runEvalExpr(evalCmd, nil); err != nil {
		t.Fatalf("runEvalExpr returned an error: %v", err)
	}

	got := strings.TrimSpace(out.String())
	want := "३"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunEvalExprReportsParseError(t *testing.T) {
	evalExpr = "(+ १"
	var out bytes.Buffer
	evalCmd.SetOut(&out)

	if err := runEvalExpr(evalCmd, nil); err == nil {
		t.Fatal("expected an error for an unterminated expression")
	}
}
