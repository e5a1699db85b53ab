package clipboard

import (
	"errors"
	"testing"
)

type fakeBackend struct {
	initErr   error
	initCalls int
	data      []byte
}

func (f *fakeBackend) Init() error {
	f.initCalls++
	return f.initErr
}

func (f *fakeBackend) Read() []byte { return f.data }

func (f *fakeBackend) Write(data []byte) { f.data = append([]byte(nil), data...) }

func TestWriteReadText(t *testing.T) {
	fake := &fakeBackend{}
	SetBackend(fake)
	defer ResetBackend()

	if err := WriteText("coderefine://snippet/abc"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	got, err := ReadText()
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if got != "coderefine://snippet/abc" {
		t.Errorf("ReadText = %q", got)
	}
	if fake.initCalls != 1 {
		t.Errorf("Init called %d times, want 1", fake.initCalls)
	}
}

func TestReadText_Empty(t *testing.T) {
	SetBackend(&fakeBackend{})
	defer ResetBackend()

	got, err := ReadText()
	if err != nil || got != "" {
		t.Errorf("ReadText = %q, %v; want empty, nil", got, err)
	}
}

func TestInitFailure(t *testing.T) {
	fake := &fakeBackend{initErr: errors.New("no display")}
	SetBackend(fake)
	defer ResetBackend()

	if err := WriteText("x"); err == nil {
		t.Error("expected error when clipboard cannot initialize")
	}
	if _, err := ReadText(); err == nil {
		t.Error("expected error when clipboard cannot initialize")
	}
	if fake.data != nil {
		t.Error("nothing should be written after a failed init")
	}
	if fake.initCalls != 2 {
		t.Errorf("a failed Init should be retried, got %d calls", fake.initCalls)
	}
}
