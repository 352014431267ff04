// Package asm renders a spirv.Module to a textual assembly form and parses
// that text back into a module, both driven by the grammar table instead of
// per-opcode code - the generalization of naga's cmd/spvdis/main.go
// hardcoded switch.
package asm

import "github.com/gogpu/spirvcore/grammar"

// nameToOpcode is the reverse of grammar.Table, built once from the grammar
// entries' own Name field.
var nameToOpcode = func() map[string]grammar.Entry {
	m := make(map[string]grammar.Entry, len(grammar.Table))
	for _, e := range grammar.Table {
		m[e.Name] = e
	}
	return m
}()
