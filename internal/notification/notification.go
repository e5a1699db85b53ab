// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/coderefine/coderefine/internal/api"
	"github.com/coderefine/coderefine/internal/logger"
)

// AppName is the title used for every notification.
const AppName = "CodeRefine"

type notifier func(title, message string, icon any) error

var notify notifier = beeep.Notify

// SetNotifier replaces the function that delivers notifications (for testing).
func SetNotifier(n func(title, message string, icon any) error) {
	notify = n
}

// ResetNotifier restores beeep as the notification backend.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	log := logger.ComponentLogger("Notification")
	log.Debug("sending", "title", title, "message", message)
	// Use empty string for icon - beeep handles platform defaults
	err := notify(title, message, "")
	if err != nil {
		log.Warn("send failed", "error", err)
	}
	return err
}

// RefinementCompleted announces that a refinement finished.
func RefinementCompleted(action api.Action, language string) error {
	return Send(AppName, fmt.Sprintf("%s (%s) is ready", action.Label(), language))
}
