// Package editor implements the rules of the code editor buffer: line and
// character statistics, the line ceiling and tab insertion. Everything here
// is pure so the TUI and the CLI apply the same rules.
package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// MaxLines is the most lines the editor keeps.
const MaxLines = 500

// TabWidth is the number of spaces inserted for a tab.
const TabWidth = 4

// Tab is the literal text inserted for a tab key press.
var Tab = strings.Repeat(" ", TabWidth)

// Stats returns the line count and character count of text.
// Lines are the elements of text split on "\n", so an empty buffer and a
// buffer without a newline both have one line. Characters are grapheme
// clusters, which for ASCII equals the byte length.
func Stats(text string) (lines, chars int) {
	return strings.Count(text, "\n") + 1, uniseg.GraphemeClusterCount(text)
}

// Clamp truncates text to its first MaxLines lines. truncated reports
// whether anything was dropped.
func Clamp(text string) (string, bool) {
	if strings.Count(text, "\n") < MaxLines {
		return text, false
	}
	lines := strings.SplitN(text, "\n", MaxLines+1)
	return strings.Join(lines[:MaxLines], "\n"), true
}

// InsertTab replaces the selection [start, end) of text with Tab and returns
// the new text and the cursor position just after the inserted spaces.
// Offsets are in runes. Out-of-range offsets are clamped and a reversed
// selection is normalised.
func InsertTab(text string, start, end int) (string, int) {
	r := []rune(text)
	start = clampOffset(start, len(r))
	end = clampOffset(end, len(r))
	if start > end {
		start, end = end, start
	}

	var b strings.Builder
	b.Grow(len(text) + TabWidth)
	b.WriteString(string(r[:start]))
	b.WriteString(Tab)
	b.WriteString(string(r[end:]))
	return b.String(), start + TabWidth
}

func clampOffset(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// Normalize converts CRLF and bare CR line endings to LF so loaded files
// count lines the same way typed text does.
func Normalize(text string) string {
	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
}

// Sanitize returns text as the editor stores it: line endings normalized,
// tabs expanded to Tab, and control characters and invalid UTF-8 dropped.
// These are the textarea's own input rules, applied up front so the line
// ceiling is checked against what the editor will hold.
func Sanitize(text string) string {
	text = Normalize(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == utf8.RuneError:
		case r == '\n':
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(Tab)
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
