// Package diff computes line diffs between original and refined code using
// the sergi/go-diff library.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineType represents the type of diff line
type LineType int

const (
	LineContext LineType = iota // Unchanged line
	LineAdded                   // Only in the refined code
	LineRemoved                 // Only in the original code
)

// Prefix returns the unified diff marker for the line type.
func (t LineType) Prefix() string {
	switch t {
	case LineAdded:
		return "+"
	case LineRemoved:
		return "-"
	default:
		return " "
	}
}

// Line is a single line of a diff. OldNum and NewNum are 1-based and zero
// when the line does not exist on that side.
type Line struct {
	Type    LineType
	OldNum  int
	NewNum  int
	Content string
}

// Result is a complete line diff.
type Result struct {
	Lines   []Line
	Added   int
	Removed int
}

// Changed reports whether the two inputs differ at all.
func (r Result) Changed() bool {
	return r.Added > 0 || r.Removed > 0
}

// Summary returns a short "+N -M" description.
func (r Result) Summary() string {
	if !r.Changed() {
		return "no changes"
	}
	return fmt.Sprintf("+%d -%d", r.Added, r.Removed)
}

// Unified renders every line with its marker, without hunk headers.
func (r Result) Unified() string {
	var b strings.Builder
	for _, l := range r.Lines {
		b.WriteString(l.Type.Prefix())
		b.WriteString(l.Content)
		b.WriteByte('\n')
	}
	return b.String()
}

// Lines diffs oldText against newText line by line. A missing final newline
// is not a change.
func Lines(oldText, newText string) Result {
	enc := newLineEncoder()
	a := enc.encode(oldText)
	b := enc.encode(newText)

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMainRunes(a, b, false)

	var res Result
	oldNum, newNum := 0, 0
	for _, d := range diffs {
		for _, r := range d.Text {
			line := enc.decode(r)
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				oldNum++
				newNum++
				res.Lines = append(res.Lines, Line{Type: LineContext, OldNum: oldNum, NewNum: newNum, Content: line})
			case diffmatchpatch.DiffDelete:
				oldNum++
				res.Removed++
				res.Lines = append(res.Lines, Line{Type: LineRemoved, OldNum: oldNum, Content: line})
			case diffmatchpatch.DiffInsert:
				newNum++
				res.Added++
				res.Lines = append(res.Lines, Line{Type: LineAdded, NewNum: newNum, Content: line})
			}
		}
	}
	return res
}

// lineEncoder maps each distinct line to one rune so the diff runs over
// whole lines. Runes skip the surrogate range, which does not survive the
// round trip through a Go string.
type lineEncoder struct {
	index map[string]rune
	lines []string
}

func newLineEncoder() *lineEncoder {
	return &lineEncoder{index: make(map[string]rune)}
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

func (e *lineEncoder) encode(text string) []rune {
	lines := splitLines(text)
	out := make([]rune, len(lines))
	for i, line := range lines {
		r, ok := e.index[line]
		if !ok {
			r = rune(len(e.lines))
			if r >= surrogateMin {
				r += surrogateMax - surrogateMin + 1
			}
			e.index[line] = r
			e.lines = append(e.lines, line)
		}
		out[i] = r
	}
	return out
}

func (e *lineEncoder) decode(r rune) string {
	if r > surrogateMax {
		r -= surrogateMax - surrogateMin + 1
	}
	return e.lines[r]
}

// splitLines splits text on "\n". Empty text has no lines and one trailing
// newline is dropped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
