package frontmatter

import (
	"bytes"
	"time"

	"gopkg.in/yaml.v3"
)

// Block is the frontmatter written to every generated post.
//
// The emitted key order is fixed (title, date, draft) and the date is always
// single-quoted, so output stays byte-stable across runs.
type Block struct {
	Title string
	Date  time.Time
	Draft bool
}

// Marshal serializes the block including `---` delimiters.
//
// Determinism: fields are encoded through explicit yaml.Node construction so
// key order and scalar quoting never depend on map iteration or resolver
// heuristics.
func (b Block) Marshal() ([]byte, error) {
	draft := "false"
	if b.Draft {
		draft = "true"
	}

	node := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "title"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: b.Title},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "date"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.SingleQuotedStyle, Value: b.Date.Format("2006-01-02")},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "draft"},
			{Kind: yaml.ScalarNode, Tag: "!!bool", Value: draft},
		},
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("---\n")
	return buf.Bytes(), nil
}
