package editor

import "testing"

func TestLanguages(t *testing.T) {
	want := []string{"python", "javascript", "typescript", "java", "c", "cpp", "csharp", "go", "rust", "ruby", "php"}
	got := Languages()
	if len(got) != len(want) {
		t.Fatalf("got %d languages, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Languages()[%d] = %q, want %q", i, got[i].ID, id)
		}
	}

	got[0].ID = "mutated"
	if Languages()[0].ID != "python" {
		t.Error("Languages should return a copy")
	}
}

func TestIsLanguage(t *testing.T) {
	if !IsLanguage(DefaultLanguage) {
		t.Errorf("default language %q should be supported", DefaultLanguage)
	}
	for _, id := range []string{"", "Python", "kotlin"} {
		if IsLanguage(id) {
			t.Errorf("IsLanguage(%q) should be false", id)
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := map[string]string{
		".py":  "python",
		".tsx": "typescript",
		".hpp": "cpp",
		".go":  "go",
		".rb":  "ruby",
	}
	for ext, want := range tests {
		got, ok := DetectLanguage(ext)
		if !ok || got != want {
			t.Errorf("DetectLanguage(%q) = %q, %v; want %q", ext, got, ok, want)
		}
	}
	if _, ok := DetectLanguage(".txt"); ok {
		t.Error("DetectLanguage(.txt) should not match")
	}
}
