// Package export writes the most recent refinement to files: the refined
// code as plain text, a print-ready HTML document, and markdown or YAML
// reports that include both complexity reports and a diff.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/coderefine/coderefine/internal/api"
	"github.com/coderefine/coderefine/internal/diff"
	perrors "github.com/coderefine/coderefine/internal/errors"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(r Report, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "txt", "text":
		return &TextExporter{}, nil
	case "html", "doc", "pdf":
		return &DocumentExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, perrors.E(perrors.Op("export.NewExporter"), perrors.KindValidation,
			fmt.Sprintf("unsupported format: %s (supported: txt, html, md, yaml)", format))
	}
}

// Report is everything an export may include about one refinement.
type Report struct {
	GeneratedAt        time.Time            `yaml:"generated_at"`
	Language           string               `yaml:"language"`
	Action             string               `yaml:"action,omitempty"`
	OriginalCode       string               `yaml:"original_code"`
	RefinedCode        string               `yaml:"refined_code"`
	OriginalComplexity api.ComplexityReport `yaml:"original_complexity"`
	RefinedComplexity  api.ComplexityReport `yaml:"refined_complexity"`
	Changes            string               `yaml:"changes"`

	diff diff.Result
}

// NewReport builds a report from a refinement result. It fails with
// KindValidation when there is no result or the refined code is empty.
func NewReport(r *api.RefineResult, now time.Time) (Report, error) {
	if r == nil || r.RefinedCode == "" {
		return Report{}, perrors.NothingToExport(perrors.Op("export.NewReport"))
	}
	d := diff.Lines(r.OriginalCode, r.RefinedCode)
	return Report{
		GeneratedAt:        now,
		Language:           r.Language,
		Action:             string(r.Action),
		OriginalCode:       r.OriginalCode,
		RefinedCode:        r.RefinedCode,
		OriginalComplexity: r.OriginalComplexity,
		RefinedComplexity:  r.RefinedComplexity,
		Changes:            d.Summary(),
		diff:               d,
	}, nil
}

// FileName returns refined_code_<epoch-ms>.<ext>.
func FileName(ext string, t time.Time) string {
	return fmt.Sprintf("refined_code_%d.%s", t.UnixMilli(), ext)
}

// WriteFile exports r into dir with the exporter's extension and returns the
// path written. On error no file is left behind.
func WriteFile(dir string, e Exporter, r Report) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", perrors.ExportFailed(dir, err)
	}
	path := filepath.Join(dir, FileName(e.Extension(), r.GeneratedAt))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return "", perrors.ExportFailed(path, err)
	}
	if err := e.Export(r, f); err != nil {
		f.Close()
		os.Remove(path)
		return "", perrors.ExportFailed(path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", perrors.ExportFailed(path, err)
	}
	return path, nil
}
