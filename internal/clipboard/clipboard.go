// Package clipboard reads and writes text on the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/coderefine/coderefine/internal/logger"
)

// Backend is the clipboard implementation. Tests swap it for a fake.
type Backend interface {
	Init() error
	Read() []byte
	Write(data []byte)
}

// systemBackend uses the platform clipboard.
type systemBackend struct{}

func (systemBackend) Init() error { return clipboard.Init() }

func (systemBackend) Read() []byte { return clipboard.Read(clipboard.FmtText) }

func (systemBackend) Write(data []byte) { clipboard.Write(clipboard.FmtText, data) }

var (
	mu          sync.Mutex
	backend     Backend = systemBackend{}
	initialized bool
)

// SetBackend replaces the clipboard implementation and forces a new Init.
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backend = b
	initialized = false
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	SetBackend(systemBackend{})
}

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}

	log := logger.ComponentLogger("Clipboard")

	if err := backend.Init(); err != nil {
		log.Warn("init failed", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	initialized = true
	log.Debug("initialized")
	return nil
}

// ReadText reads text from the clipboard. An empty clipboard is not an error.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return "", err
	}

	textBytes := backend.Read()
	if textBytes == nil {
		return "", nil
	}
	logger.ComponentLogger("Clipboard").Debug("read text", "bytes", len(textBytes))
	return string(textBytes), nil
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}

	backend.Write([]byte(text))
	logger.ComponentLogger("Clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}
