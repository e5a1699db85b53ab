package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/coderefine/coderefine/internal/api"
)

// MarkdownExporter writes a refinement report in Markdown format
type MarkdownExporter struct{}

func (e *MarkdownExporter) Export(r Report, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# CodeRefine report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s  \n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "**Language:** %s  \n", r.Language)
	if r.Action != "" {
		fmt.Fprintf(&b, "**Action:** %s  \n", api.Action(r.Action).Label())
	}
	fmt.Fprintf(&b, "**Changes:** %s\n\n", r.Changes)

	b.WriteString("## Complexity\n\n")
	b.WriteString("| Metric | Original | Refined |\n")
	b.WriteString("|---|---|---|\n")
	o, n := r.OriginalComplexity, r.RefinedComplexity
	fmt.Fprintf(&b, "| Time | %s | %s |\n", cell(o.TimeComplexity), cell(n.TimeComplexity))
	fmt.Fprintf(&b, "| Space | %s | %s |\n", cell(o.SpaceComplexity), cell(n.SpaceComplexity))
	fmt.Fprintf(&b, "| Nesting depth | %d | %d |\n", o.NestingDepth, n.NestingDepth)
	fmt.Fprintf(&b, "| Cyclomatic | %d | %d |\n", o.CyclomaticComplexity, n.CyclomaticComplexity)
	if o.LinesOfCode != nil || n.LinesOfCode != nil {
		fmt.Fprintf(&b, "| Lines of code | %s | %s |\n", optInt(o.LinesOfCode), optInt(n.LinesOfCode))
	}
	b.WriteString("\n")

	writeFence(&b, "Original code", r.Language, r.OriginalCode)
	writeFence(&b, "Refined code", r.Language, r.RefinedCode)
	if r.diff.Changed() {
		writeFence(&b, "Diff", "diff", strings.TrimSuffix(r.diff.Unified(), "\n"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (e *MarkdownExporter) Extension() string {
	return "md"
}

// writeFence writes a titled fenced code block. The fence grows when the
// code itself contains backtick runs.
func writeFence(b *strings.Builder, title, lang, code string) {
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	fmt.Fprintf(b, "## %s\n\n%s%s\n%s\n%s\n\n", title, fence, lang, code, fence)
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}

func optInt(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(*n)
}
