package value

import "gopkg.in/yaml.v3"

// MarshalYAML renders the table as a mapping node so insertion order survives
// encoding; the default map marshalling would sort keys. Scalars encode
// through their underlying Go types, which keeps integers, strings, and
// booleans distinct in the output.
func (t *Table) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, key := range t.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}

		valNode := &yaml.Node{}
		if err := valNode.Encode(t.entries[key]); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, keyNode, valNode)
	}

	return node, nil
}
