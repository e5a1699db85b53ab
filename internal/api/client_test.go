package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perrors "github.com/coderefine/coderefine/internal/errors"
)

// newTestClient starts a server running handler and returns a client for it.
// Both are torn down when the test ends.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	tr := &http.Transport{}
	t.Cleanup(func() {
		tr.CloseIdleConnections()
		server.Close()
	})
	return NewClientWithHTTP(&http.Client{Transport: tr}, server.URL+"/api/")
}

func decodeBody(t *testing.T, r *http.Request) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Errorf("request body is not JSON: %v", err)
	}
	return body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestSignIn_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/signin" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("sign-in must not send a token, got %q", auth)
		}
		body := decodeBody(t, r)
		if body["email"] != "a@b.c" || body["password"] != "hunter2" {
			t.Errorf("unexpected body %v", body)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":      true,
			"message":      "Login successful",
			"access_token": "tok-123",
			"user":         map[string]string{"id": "u1", "email": "a@b.c", "username": "ab"},
		})
	})

	sess, err := client.WithToken("stale").SignIn(context.Background(), "a@b.c", "hunter2")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	want := Session{User: User{ID: "u1", Email: "a@b.c", Username: "ab"}, Token: "tok-123"}
	if sess != want {
		t.Errorf("session = %+v, want %+v", sess, want)
	}
}

func TestSignIn_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind perrors.Kind
		wantMsg  string
	}{
		{
			name:     "server error text",
			status:   http.StatusUnauthorized,
			body:     `{"success":false,"error":"Invalid login credentials"}`,
			wantKind: perrors.KindRemote,
			wantMsg:  "Invalid login credentials",
		},
		{
			name:     "no error text",
			status:   http.StatusUnauthorized,
			body:     `{"success":false}`,
			wantKind: perrors.KindRemote,
			wantMsg:  "Login failed",
		},
		{
			name:     "ok status but success false",
			status:   http.StatusOK,
			body:     `{"success":false,"error":"nope"}`,
			wantKind: perrors.KindRemote,
			wantMsg:  "nope",
		},
		{
			name:     "not json",
			status:   http.StatusBadGateway,
			body:     `<html>bad gateway</html>`,
			wantKind: perrors.KindNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := client.SignIn(context.Background(), "a@b.c", "x")
			if err == nil {
				t.Fatal("expected error")
			}
			if kind := perrors.GetKind(err); kind != tt.wantKind {
				t.Fatalf("kind = %v, want %v (%v)", kind, tt.wantKind, err)
			}
			if tt.wantMsg != "" {
				msg, ok := perrors.RemoteMessage(err)
				if !ok || msg != tt.wantMsg {
					t.Errorf("RemoteMessage = %q, %v; want %q", msg, ok, tt.wantMsg)
				}
			}
		})
	}
}

func TestSignIn_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	tr := &http.Transport{}
	defer tr.CloseIdleConnections()
	client := NewClientWithHTTP(&http.Client{Transport: tr}, url)

	_, err := client.SignIn(context.Background(), "a@b.c", "x")
	if !perrors.Is(err, perrors.KindNetwork) {
		t.Errorf("expected KindNetwork, got %v", err)
	}
}

func TestSignUp(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/signup" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body := decodeBody(t, r)
		if body["username"] != "neo" || body["email"] != "neo@matrix.io" || body["password"] != "red" {
			t.Errorf("unexpected body %v", body)
		}
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "user": "u9"})
	})

	if err := client.SignUp(context.Background(), "neo", "neo@matrix.io", "red"); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
}

func TestSignUp_Fallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
	})

	err := client.SignUp(context.Background(), "", "x", "y")
	if msg, _ := perrors.RemoteMessage(err); msg != "Signup failed" {
		t.Errorf("message = %q, want Signup failed", msg)
	}
}

func TestResetPassword(t *testing.T) {
	var gotEmail string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/reset-password" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotEmail = decodeBody(t, r)["email"]
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	if err := client.ResetPassword(context.Background(), "who@where.io"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}
	if gotEmail != "who@where.io" {
		t.Errorf("email = %q", gotEmail)
	}
}

func TestResetPassword_Fallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
	})

	err := client.ResetPassword(context.Background(), "x")
	if msg, _ := perrors.RemoteMessage(err); msg != "Reset failed" {
		t.Errorf("message = %q, want Reset failed", msg)
	}
}

func TestAnalyze(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/analyze" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok" {
			t.Errorf("Authorization = %q", auth)
		}
		body := decodeBody(t, r)
		if body["code"] != "def f(): pass" {
			t.Errorf("code should be trimmed, got %q", body["code"])
		}
		if body["language"] != "python" {
			t.Errorf("language = %q", body["language"])
		}
		io.WriteString(w, `{"success":true,"analysis":"trivial","complexity":{"time_complexity":"O(1)","space_complexity":"O(1)","nesting_depth":0,"cyclomatic_complexity":1}}`)
	})

	res, err := client.WithToken("tok").Analyze(context.Background(), "  def f(): pass\n\n", "python")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	c := res.Complexity
	if c.TimeComplexity != "O(1)" || c.SpaceComplexity != "O(1)" || c.NestingDepth != 0 || c.CyclomaticComplexity != 1 {
		t.Errorf("complexity = %+v", c)
	}
	if c.LinesOfCode != nil {
		t.Errorf("lines_of_code should be absent, got %d", *c.LinesOfCode)
	}
	if res.Analysis != "trivial" {
		t.Errorf("analysis = %q", res.Analysis)
	}
}

func TestAnalyze_LinesOfCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"analysis":"","complexity":{"time_complexity":"O(n)","space_complexity":"O(1)","nesting_depth":1,"cyclomatic_complexity":2,"lines_of_code":3}}`)
	})

	res, err := client.Analyze(context.Background(), "for x in y:\n  pass", "python")
	if err != nil {
		t.Fatal(err)
	}
	if res.Complexity.LinesOfCode == nil || *res.Complexity.LinesOfCode != 3 {
		t.Errorf("lines_of_code = %v, want 3", res.Complexity.LinesOfCode)
	}
}

func TestAnalyze_EmptyCodeSendsNothing(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.Analyze(context.Background(), " \n\t ", "python")
	if !perrors.Is(err, perrors.KindValidation) {
		t.Errorf("expected KindValidation, got %v", err)
	}
	if called {
		t.Error("no request should be sent for empty code")
	}
}

func TestAnalyze_NoTokenNoHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Error("Authorization header should be absent without a token")
		}
		io.WriteString(w, `{"success":true,"analysis":"","complexity":{}}`)
	})

	if _, err := client.Analyze(context.Background(), "x", "go"); err != nil {
		t.Fatal(err)
	}
}

func TestAnalyze_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "model overloaded"})
	})

	_, err := client.Analyze(context.Background(), "x", "go")
	msg, ok := perrors.RemoteMessage(err)
	if !ok || msg != "model overloaded" {
		t.Errorf("RemoteMessage = %q, %v", msg, ok)
	}
}

func TestRefine(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/refine" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body := decodeBody(t, r)
		if body["action"] != "performance" || body["language"] != "go" || body["code"] != "for {}" {
			t.Errorf("unexpected body %v", body)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":             true,
			"refined_code":        "select {}",
			"original_complexity": map[string]any{"time_complexity": "O(inf)", "space_complexity": "O(1)", "nesting_depth": 1, "cyclomatic_complexity": 2},
			"refined_complexity":  map[string]any{"time_complexity": "O(1)", "space_complexity": "O(1)", "nesting_depth": 0, "cyclomatic_complexity": 1},
		})
	})

	before := time.Now()
	res, err := client.Refine(context.Background(), "\nfor {}\n", "go", ActionPerformance)
	if err != nil {
		t.Fatalf("Refine failed: %v", err)
	}
	if res.RefinedCode != "select {}" {
		t.Errorf("refined_code = %q", res.RefinedCode)
	}
	if res.OriginalComplexity.TimeComplexity != "O(inf)" || res.RefinedComplexity.CyclomaticComplexity != 1 {
		t.Errorf("complexities = %+v / %+v", res.OriginalComplexity, res.RefinedComplexity)
	}
	if res.OriginalCode != "for {}" || res.Language != "go" || res.Action != ActionPerformance {
		t.Errorf("client-side fields = %q %q %q", res.OriginalCode, res.Language, res.Action)
	}
	if res.ReceivedAt.Before(before) {
		t.Error("ReceivedAt should be set to the receipt time")
	}
}

func TestRefine_UnknownAction(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.Refine(context.Background(), "x", "go", Action("all"))
	if !perrors.Is(err, perrors.KindValidation) {
		t.Errorf("expected KindValidation, got %v", err)
	}
	if called {
		t.Error("no request should be sent for an unknown action")
	}
}

func TestRefine_Fallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{})
	})

	_, err := client.Refine(context.Background(), "x", "go", ActionBugs)
	if msg, _ := perrors.RemoteMessage(err); msg != "Refinement failed" {
		t.Errorf("message = %q", msg)
	}
}

func TestRefine_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Refine(ctx, "x", "go", ActionRefactor)
	if !perrors.Is(err, perrors.KindNetwork) {
		t.Errorf("expected KindNetwork for canceled request, got %v", err)
	}
}

func TestHealth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/health" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `{"status":"healthy"}`)
	})

	h, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if h.Status != "healthy" {
		t.Errorf("status = %q", h.Status)
	}
}

func TestHealth_Down(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, `{"status":"down"}`)
	})

	_, err := client.Health(context.Background())
	if !perrors.Is(err, perrors.KindRemote) {
		t.Errorf("expected KindRemote, got %v", err)
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error should mention the status, got %v", err)
	}
}

func TestBaseURLTrimmed(t *testing.T) {
	c := NewClient("http://localhost:5000/api///", 0)
	if c.BaseURL() != "http://localhost:5000/api" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
}

func TestWithTokenCopies(t *testing.T) {
	base := NewClient("http://x", 0)
	authed := base.WithToken("t")
	if base.token != "" {
		t.Error("WithToken must not modify the receiver")
	}
	if authed.token != "t" {
		t.Error("WithToken copy should carry the token")
	}
}
