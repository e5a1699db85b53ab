package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
)

// highlightCode applies syntax highlighting to code using chroma. Unknown
// languages and lexer failures fall back to the plain text.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().CodeStyle())
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}

// markdownRenderer caches one glamour renderer per wrap width and style.
type markdownRenderer struct {
	width    int
	style    string
	renderer *glamour.TermRenderer
}

func (m *markdownRenderer) render(md string, width int) string {
	style := CurrentTheme().MarkdownStyle()
	if m.renderer == nil || m.width != width || m.style != style {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			GetViewContext().Log("glamour renderer failed", "error", err)
			return md
		}
		m.renderer, m.width, m.style = r, width, style
	}

	out, err := m.renderer.Render(md)
	if err != nil {
		GetViewContext().Log("markdown render failed", "error", err)
		return md
	}
	return strings.Trim(out, "\n")
}
