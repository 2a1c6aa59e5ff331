package docgen

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vk/tfmdcli/internal/model"
)

// ExportYAML writes the records as a YAML sequence of mappings. Keys keep
// their extraction order; every value is a string.
func ExportYAML(records []*model.Record) (string, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, r := range records {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range r.Fields() {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
			)
		}
		seq.Content = append(seq.Content, m)
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{seq}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", errors.Wrap(err, "failed to encode records as YAML")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "failed to flush YAML encoder")
	}
	return buf.String(), nil
}
