package ui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/coderefine/coderefine/internal/api"
	"github.com/coderefine/coderefine/internal/diff"
)

// metricLabelWidth aligns the complexity values in one column
const metricLabelWidth = 24

// Results is the right panel. It shows the complexity report and analysis of
// the last analyze call and, after a refine, the before/after comparison.
type Results struct {
	width    int
	height   int
	focused  bool
	viewport viewport.Model

	analysis       *api.AnalysisResult
	refinement     *api.RefineResult
	changes        diff.Result
	showComparison bool

	markdown markdownRenderer
}

// NewResults creates an empty results panel
func NewResults() *Results {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	r := &Results{viewport: vp}
	r.updateContent()
	return r
}

// SetSize sets the panel dimensions including its border
func (r *Results) SetSize(width, height int) {
	r.width = width
	r.height = height

	ctx := GetViewContext()
	r.viewport.SetWidth(ctx.InnerWidth(width))
	r.viewport.SetHeight(max(1, ctx.InnerHeight(height)-TitleHeight))
	r.updateContent()
}

// SetFocused sets the focus state
func (r *Results) SetFocused(focused bool) {
	r.focused = focused
}

// SetAnalysis shows a new analysis, replacing the previous one
func (r *Results) SetAnalysis(a *api.AnalysisResult) {
	r.analysis = a
	r.updateContent()
	r.viewport.GotoTop()
}

// SetRefinement shows the comparison for a new refinement
func (r *Results) SetRefinement(res *api.RefineResult) {
	r.refinement = res
	r.showComparison = res != nil
	if res != nil {
		r.changes = diff.Lines(res.OriginalCode, res.RefinedCode)
	}
	r.updateContent()
	r.viewport.GotoTop()
}

// HideComparison hides the comparison section without forgetting the result
func (r *Results) HideComparison() {
	r.showComparison = false
	r.updateContent()
}

// ComparisonVisible reports whether the comparison section is shown
func (r *Results) ComparisonVisible() bool {
	return r.showComparison
}

// HasContent reports whether anything besides the placeholder is shown
func (r *Results) HasContent() bool {
	return r.analysis != nil || r.showComparison
}

// Content returns the rendered viewport content, for tests and logging
func (r *Results) Content() string {
	return r.render()
}

// Update handles scrolling
func (r *Results) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return cmd
}

func (r *Results) wrapWidth() int {
	if w := r.viewport.Width(); w > 0 {
		return w
	}
	return DefaultWrapWidth
}

func (r *Results) updateContent() {
	r.viewport.SetContent(r.render())
}

func (r *Results) render() string {
	if !r.HasContent() {
		return PlaceholderStyle.Render("Press a to analyze, or b/p/r to refine the code in the editor.")
	}

	var sections []string
	if r.analysis != nil {
		sections = append(sections,
			SectionTitleStyle.Render("Complexity"),
			renderComplexity(r.analysis.Complexity),
			"",
			SectionTitleStyle.Render("Analysis"),
			r.markdown.render(r.analysis.Analysis, r.wrapWidth()),
		)
	}
	if r.showComparison && r.refinement != nil {
		if len(sections) > 0 {
			sections = append(sections, "")
		}
		sections = append(sections, r.renderComparison()...)
	}
	return strings.Join(sections, "\n")
}

func metricLine(label, value string) string {
	return MetricLabelStyle.Render(runewidth.FillRight(label, metricLabelWidth)) + MetricValueStyle.Render(value)
}

// renderComplexity renders one metric per line. Values are shown exactly
// as the service sent them.
func renderComplexity(c api.ComplexityReport) string {
	lines := []string{
		metricLine("Time Complexity", c.TimeComplexity),
		metricLine("Space Complexity", c.SpaceComplexity),
		metricLine("Nesting Depth", strconv.Itoa(c.NestingDepth)),
		metricLine("Cyclomatic Complexity", strconv.Itoa(c.CyclomaticComplexity)),
	}
	if c.LinesOfCode != nil {
		lines = append(lines, metricLine("Lines of Code", strconv.Itoa(*c.LinesOfCode)))
	}
	return strings.Join(lines, "\n")
}

func complexitySummary(c api.ComplexityReport) string {
	return fmt.Sprintf("Time: %s | Cyclomatic: %d", c.TimeComplexity, c.CyclomaticComplexity)
}

func (r *Results) renderComparison() []string {
	res := r.refinement
	out := []string{
		SectionTitleStyle.Render("Comparison · " + res.Action.Label()),
		metricLine("Original", complexitySummary(res.OriginalComplexity)),
		metricLine("Refined", complexitySummary(res.RefinedComplexity)),
		metricLine("Changes", r.changes.Summary()),
		"",
	}

	for _, l := range r.changes.Lines {
		line := l.Type.Prefix() + " " + l.Content
		switch l.Type {
		case diff.LineAdded:
			out = append(out, DiffAddedStyle.Render(line))
		case diff.LineRemoved:
			out = append(out, DiffRemovedStyle.Render(line))
		default:
			out = append(out, DiffContextStyle.Render(line))
		}
	}

	out = append(out,
		"",
		SectionTitleStyle.Render("Refined Code"),
		highlightCode(res.RefinedCode, res.Language),
	)
	return out
}

// View renders the results panel
func (r *Results) View() string {
	panelStyle := PanelStyle
	if r.focused {
		panelStyle = PanelFocusedStyle
	}
	title := PanelTitleStyle.Render("Results")
	body := lipgloss.JoinVertical(lipgloss.Left, title, r.viewport.View())
	return panelStyle.Width(r.width).Height(r.height).Render(body)
}
