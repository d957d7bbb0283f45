package asm

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LogEntry associates a source line with its encoded instruction.
type LogEntry struct {
	LineNo int    // 1-based source line number.
	Word   string // Instruction rendered as 0x%08X.
}

// Log is the per-line assembly record, in source order.
type Log []LogEntry

// Log builds the assembly log for the program, one entry per assembled
// line.
func (prog *Program) Log() (log Log) {
	for _, entry := range prog.Entries {
		log = append(log, LogEntry{
			LineNo: entry.LineNo,
			Word:   fmt.Sprintf("0x%08X", uint32(entry.Word)),
		})
	}

	return
}

// MarshalYAML renders the log as a mapping of line_<n> keys to encoded
// words. Source order is preserved, which is why this builds a node
// rather than a map.
func (log Log) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, entry := range log {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("line_%d", entry.LineNo)},
			// Tagged !!str so the hex rendering is quoted, not re-read
			// as an integer.
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Word},
		)
	}

	return node, nil
}
