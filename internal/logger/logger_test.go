package logger

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
// Returns the path to the temp file and a cleanup function.
func setupTestLogger(t *testing.T) (string, func()) {
	t.Helper()
	Reset()

	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	return logPath, func() {
		Reset()
	}
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLog_Formatting(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetDebug(true)
	Debug("integer: %d", 123)
	Info("multiple: %s=%d", "count", 5)

	content := readLog(t, logPath)
	if !strings.Contains(content, "integer: 123") {
		t.Error("debug message should be formatted printf-style")
	}
	if !strings.Contains(content, "multiple: count=5") {
		t.Error("info message should be formatted printf-style")
	}
}

func TestLog_LevelFiltering(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetDebug(false)
	Debug("hidden-debug-marker")
	Warn("visible-warn-marker")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-debug-marker") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(content, "visible-warn-marker") {
		t.Error("warn message should be written at info level")
	}
}

func TestComponentLogger(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	log := ComponentLogger("API")
	log.Info("request sent", "path", "/analyze")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=API") {
		t.Errorf("expected component attribute in log, got:\n%s", content)
	}
	if !strings.Contains(content, "path=/analyze") {
		t.Errorf("expected path attribute in log, got:\n%s", content)
	}
}

func TestWithRequest(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	WithRequest("refine", 7).Warn("stale response discarded")

	content := readLog(t, logPath)
	if !strings.Contains(content, "request=refine") || !strings.Contains(content, "token=7") {
		t.Errorf("expected request attributes in log, got:\n%s", content)
	}
}

func TestLog_Concurrent(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 100; j++ {
				Info("concurrent test %d-%d", n, j)
			}
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestClose(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	Close()
	// Logging after Close must be a no-op, not a panic
	Info("after close")
}

func TestReset(t *testing.T) {
	Reset()
	tmpDir := t.TempDir()
	logPath1 := filepath.Join(tmpDir, "log1.log")
	if err := Init(logPath1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	Info("message to log1")

	Reset()

	logPath2 := filepath.Join(tmpDir, "log2.log")
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}

	Info("message to log2")

	content1 := readLog(t, logPath1)
	if !strings.Contains(content1, "message to log1") {
		t.Error("log1 should contain 'message to log1'")
	}
	if strings.Contains(content1, "message to log2") {
		t.Error("log1 should NOT contain 'message to log2'")
	}

	content2 := readLog(t, logPath2)
	if !strings.Contains(content2, "message to log2") {
		t.Error("log2 should contain 'message to log2'")
	}
	if strings.Contains(content2, "message to log1") {
		t.Error("log2 should NOT contain 'message to log1'")
	}

	Reset()
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	if err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("expected error for log path in a missing directory")
	}
}

func TestInit_RotatesLargeLog(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "coderefine.log")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", MaxLogSize)), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path+".1", []byte("older"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Info("fresh-marker")

	if content := readLog(t, path); strings.Contains(content, "xxx") || !strings.Contains(content, "fresh-marker") {
		t.Errorf("expected a fresh log after rotation, got %d bytes", len(content))
	}
	if info, err := os.Stat(path + ".1"); err != nil || info.Size() != MaxLogSize {
		t.Errorf("path.1 should hold the rotated log: %v", err)
	}
	if got := readLog(t, path+".2"); got != "older" {
		t.Errorf("path.2 = %q, want the previous backup", got)
	}
}

func TestInit_SmallLogAppends(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "coderefine.log")
	if err := os.WriteFile(path, []byte("earlier run\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Info("later run")

	content := readLog(t, path)
	if !strings.Contains(content, "earlier run") || !strings.Contains(content, "later run") {
		t.Errorf("expected appended log, got:\n%s", content)
	}
	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Error("small logs must not be rotated")
	}
}

func TestRotate_DropsOldest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coderefine.log")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", MaxLogSize)), 0644); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= MaxBackups; i++ {
		if err := os.WriteFile(backupPath(path, i), []byte(strconv.Itoa(i)), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := rotate(path); err != nil {
		t.Fatalf("rotate: %v", err)
	}

	for i := 2; i <= MaxBackups; i++ {
		if got := readLog(t, backupPath(path, i)); got != strconv.Itoa(i-1) {
			t.Errorf("backup %d = %q, want %d", i, got, i-1)
		}
	}
	if _, err := os.Stat(backupPath(path, MaxBackups+1)); !os.IsNotExist(err) {
		t.Error("rotation must not keep more than MaxBackups copies")
	}
}

func TestClearLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coderefine.log")
	for _, p := range []string{path, backupPath(path, 1), backupPath(path, 2)} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	unrelated := path + ".bak"
	if err := os.WriteFile(unrelated, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := clearLogs(path)
	if err != nil {
		t.Fatalf("clearLogs: %v", err)
	}
	if n != 3 {
		t.Errorf("removed %d files, want 3", n)
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Error("files that are not rotated copies must be kept")
	}

	if n, err := clearLogs(path); err != nil || n != 0 {
		t.Errorf("second clear = %d, %v", n, err)
	}
}
