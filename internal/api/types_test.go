package api

import (
	"testing"

	perrors "github.com/coderefine/coderefine/internal/errors"
)

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(string(a))
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %q, %v", a, got, err)
		}
	}

	for _, s := range []string{"", "all", "Bugs"} {
		if _, err := ParseAction(s); !perrors.Is(err, perrors.KindValidation) {
			t.Errorf("ParseAction(%q) should fail with KindValidation, got %v", s, err)
		}
	}
}

func TestActionLabel(t *testing.T) {
	tests := map[Action]string{
		ActionBugs:        "Fix Bugs",
		ActionPerformance: "Optimize Performance",
		ActionRefactor:    "Refactor",
		Action("x"):       "Action(x)",
	}
	for a, want := range tests {
		if got := a.Label(); got != want {
			t.Errorf("%q.Label() = %q, want %q", a, got, want)
		}
	}
}

func TestPrepareCode(t *testing.T) {
	got, err := PrepareCode("test", "\n  x := 1\n\t")
	if err != nil || got != "x := 1" {
		t.Errorf("PrepareCode = %q, %v", got, err)
	}
	if _, err := PrepareCode("test", "   "); !perrors.Is(err, perrors.KindValidation) {
		t.Errorf("expected KindValidation, got %v", err)
	}
}
