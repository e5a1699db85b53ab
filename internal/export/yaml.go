package export

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLExporter writes a refinement report in YAML format
type YAMLExporter struct{}

func (e *YAMLExporter) Export(r Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()

	return enc.Encode(r)
}

func (e *YAMLExporter) Extension() string {
	return "yaml"
}
