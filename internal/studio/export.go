package studio

import (
	"gopkg.in/yaml.v3"

	"github.com/wesen/studio/internal/apperr"
)

type exportDoc struct {
	Nodes       []Node       `yaml:"nodes"`
	Connections []Connection `yaml:"connections"`
}

// MarshalYAML renders the structure of a graph as a YAML document with a
// nodes list and a connections list.
func MarshalYAML(s Snapshot) ([]byte, error) {
	doc := exportDoc{Nodes: s.Nodes, Connections: s.Connections}
	if doc.Nodes == nil {
		doc.Nodes = []Node{}
	}
	if doc.Connections == nil {
		doc.Connections = []Connection{}
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, apperr.NewInternal("marshal graph", err)
	}
	return out, nil
}
