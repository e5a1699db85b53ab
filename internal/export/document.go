package export

import (
	"html/template"
	"io"
	"strings"
)

// DocumentExporter writes a print-formatted HTML page of the refined code.
// The page opens the print dialog as soon as it loads so it can be saved as
// PDF from the browser.
type DocumentExporter struct{}

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>CodeRefine - Optimized Code</title>
<style>
body { font-family: 'Courier New', monospace; padding: 20px; background: white; color: black; }
h1 { font-family: Arial, sans-serif; color: #667eea; }
pre { background: #f5f5f5; padding: 15px; border-radius: 5px; overflow-x: auto; }
.header { border-bottom: 2px solid #667eea; padding-bottom: 10px; margin-bottom: 20px; }
.footer { margin-top: 30px; font-size: 12px; color: #666; text-align: center; }
</style>
</head>
<body onload="window.print()">
<div class="header">
<h1>CodeRefine - Optimized Code</h1>
<p>Generated on: {{.GeneratedAt}}</p>
<p>Language: {{.Language}}</p>
</div>
<pre>{{.Code}}</pre>
<div class="footer">
<p>Generated by CodeRefine - AI-Powered Code Optimization</p>
</div>
</body>
</html>
`

var documentTmpl = template.Must(template.New("document").Parse(documentTemplate))

func (e *DocumentExporter) Export(r Report, w io.Writer) error {
	return documentTmpl.Execute(w, struct {
		GeneratedAt string
		Language    string
		Code        string
	}{
		GeneratedAt: r.GeneratedAt.Local().Format("1/2/2006, 3:04:05 PM"),
		Language:    strings.ToUpper(r.Language),
		Code:        r.RefinedCode,
	})
}

func (e *DocumentExporter) Extension() string {
	return "html"
}
