package cmd

import (
	"context"
	"strings"
	"testing"

	perrors "github.com/coderefine/coderefine/internal/errors"
	"github.com/coderefine/coderefine/internal/snippets"
)

// seedSnippet stores a snippet in the isolated home's store
func seedSnippet(t *testing.T, code, language, action string) snippets.Snippet {
	t.Helper()
	store, err := snippets.OpenDefault()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	sn, err := store.Create(context.Background(), code, language, action)
	if err != nil {
		t.Fatalf("create snippet: %v", err)
	}
	return sn
}

func TestSnippetsList_Empty(t *testing.T) {
	isolateHome(t)
	out, _, err := execute(t, "", "snippets", "list")
	if err != nil {
		t.Fatalf("snippets list error = %v", err)
	}
	if strings.TrimSpace(out) != "No shared snippets." {
		t.Errorf("output = %q", out)
	}
}

func TestSnippetsList(t *testing.T) {
	isolateHome(t)
	first := seedSnippet(t, "a\nb", "python", "bugs")
	second := seedSnippet(t, "fn main() {}", "rust", "")

	out, _, err := execute(t, "", "snippets", "list")
	if err != nil {
		t.Fatalf("snippets list error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("output has %d lines, want header + 2:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("header = %q", lines[0])
	}
	// Newest first
	if !strings.HasPrefix(lines[1], second.ID) || !strings.Contains(lines[1], "rust") {
		t.Errorf("first row = %q, want %s", lines[1], second.ID)
	}
	if !strings.HasPrefix(lines[2], first.ID) || !strings.Contains(lines[2], "bugs") {
		t.Errorf("second row = %q, want %s", lines[2], first.ID)
	}
}

func TestSnippetsList_Limit(t *testing.T) {
	isolateHome(t)
	seedSnippet(t, "1", "python", "")
	seedSnippet(t, "2", "python", "")

	out, _, err := execute(t, "", "snippets", "list", "-n", "1")
	if err != nil {
		t.Fatalf("snippets list error = %v", err)
	}
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 2 {
		t.Errorf("output has %d lines, want header + 1:\n%s", n, out)
	}
}

func TestSnippetsShow_IDOrLink(t *testing.T) {
	isolateHome(t)
	sn := seedSnippet(t, "print('hi')\n", "python", "refactor")

	for _, arg := range []string{sn.ID, sn.Link()} {
		out, _, err := execute(t, "", "snippets", "show", arg)
		if err != nil {
			t.Fatalf("snippets show %s error = %v", arg, err)
		}
		if out != "print('hi')\n" {
			t.Errorf("snippets show %s = %q", arg, out)
		}
	}
}

func TestSnippetsShow_Errors(t *testing.T) {
	isolateHome(t)

	tests := []struct {
		name     string
		arg      string
		wantKind perrors.Kind
	}{
		{"unknown id", "6f1c2a8e-3b4d-4e5f-9a0b-1c2d3e4f5a6b", perrors.KindNotFound},
		{"not a link", "https://example.com", perrors.KindInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", "snippets", "show", tt.arg)
			if !perrors.Is(err, tt.wantKind) {
				t.Errorf("error = %v, want kind %v", err, tt.wantKind)
			}
		})
	}
}

func TestSnippetsDelete(t *testing.T) {
	isolateHome(t)
	sn := seedSnippet(t, "x", "python", "")

	out, _, err := execute(t, "", "snippets", "delete", sn.ID, "--yes")
	if err != nil {
		t.Fatalf("snippets delete error = %v", err)
	}
	if !strings.Contains(out, "Deleted snippet "+sn.ID) {
		t.Errorf("output = %q", out)
	}

	_, _, err = execute(t, "", "snippets", "show", sn.ID)
	if !perrors.Is(err, perrors.KindNotFound) {
		t.Errorf("show after delete error = %v, want KindNotFound", err)
	}
}

func TestSnippetsDelete_Confirmation(t *testing.T) {
	isolateHome(t)
	sn := seedSnippet(t, "x", "python", "")

	out, stderr, err := execute(t, "n\n", "snippets", "delete", sn.Link())
	if err != nil {
		t.Fatalf("snippets delete error = %v", err)
	}
	if !strings.Contains(out, "Aborted.") {
		t.Errorf("output = %q, want Aborted.", out)
	}
	if !strings.Contains(stderr, "[y/N]") {
		t.Errorf("stderr = %q, want a prompt", stderr)
	}
	if _, _, err := execute(t, "", "snippets", "show", sn.ID); err != nil {
		t.Errorf("snippet gone after declining: %v", err)
	}

	if _, _, err := execute(t, "yes\n", "snippets", "delete", sn.Link()); err != nil {
		t.Fatalf("confirmed delete error = %v", err)
	}
	if _, _, err := execute(t, "", "snippets", "show", sn.ID); !perrors.Is(err, perrors.KindNotFound) {
		t.Errorf("show after confirmed delete error = %v", err)
	}
}

func TestSnippetsDelete_Unknown(t *testing.T) {
	isolateHome(t)
	_, _, err := execute(t, "", "snippets", "delete", "6f1c2a8e-3b4d-4e5f-9a0b-1c2d3e4f5a6b", "-y")
	if !perrors.Is(err, perrors.KindNotFound) {
		t.Errorf("error = %v, want KindNotFound", err)
	}
}
