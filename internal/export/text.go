package export

import "io"

// TextExporter writes only the refined code.
type TextExporter struct{}

func (e *TextExporter) Export(r Report, w io.Writer) error {
	_, err := io.WriteString(w, r.RefinedCode)
	return err
}

func (e *TextExporter) Extension() string {
	return "txt"
}
