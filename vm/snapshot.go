package vm

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RegisterState is one recorded register.
type RegisterState struct {
	Index uint8
	Value int64
}

// MemoryState is one dumped memory cell.
type MemoryState struct {
	Address uint32
	Value   int64
}

// Snapshot is the post-run result document: every register written during
// the run, in first-touch order with its final value, plus a window of
// memory cells.
type Snapshot struct {
	Registers []RegisterState
	Memory    []MemoryState
}

// MarshalYAML renders the snapshot as a mapping of register_<n> keys
// followed by a nested memory mapping of 0x<addr> keys. Key order
// follows the run, which is why this builds a node rather than a map.
func (snap *Snapshot) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, register := range snap.Registers {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("register_%d", register.Index)},
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", register.Value)},
		)
	}

	memory := &yaml.Node{Kind: yaml.MappingNode}
	for _, cell := range snap.Memory {
		memory.Content = append(memory.Content,
			// Tagged !!str so the hex address is quoted, not re-read as
			// an integer.
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fmt.Sprintf("0x%04X", cell.Address)},
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", cell.Value)},
		)
	}

	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "memory"},
		memory,
	)

	return node, nil
}
