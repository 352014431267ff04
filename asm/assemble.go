package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/spirvcore/grammar"
	"github.com/gogpu/spirvcore/id"
	"github.com/gogpu/spirvcore/spirv"
)

// parseError reports a text-assembly syntax problem, with the source line
// number for the caller to locate it.
type parseError struct {
	Line int
	Msg  string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("asm: line %d: %s", e.Line, e.Msg)
}

// assembler holds the state threaded across an Assemble call: the id names
// seen so far and the header fields accumulated from comment lines.
type assembler struct {
	names map[string]id.ID
	alloc *id.Allocator
	mod   spirv.Module

	// extInstImports mirrors asm.extInstImports on the disassembly side: it
	// maps an OpExtInstImport result id to its imported set name, so an
	// OpExtInst line's symbolically-rendered instruction-number operand
	// (e.g. "Sqrt") can be resolved back to its number.
	extInstImports map[id.ID]string
}

// Assemble parses SPIR-V assembly text (the format Disassemble produces)
// back into a module. Header comment lines (";  Version: ...") seed the
// module header; every other non-blank line is one instruction of the form
// "[%<id> = ]OpName(operands...)[::%<type_id>]".
func Assemble(text string) (*spirv.Module, error) {
	a := &assembler{names: make(map[string]id.ID), alloc: id.NewAllocator(), extInstImports: make(map[id.ID]string)}
	a.mod.Version = 0x00010000

	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ";") {
			a.parseHeaderComment(line)
			continue
		}
		instr, err := a.parseLine(lineNo+1, line)
		if err != nil {
			return nil, err
		}
		a.mod.Instructions = append(a.mod.Instructions, instr)
	}
	a.mod.Bound = a.alloc.Bound()
	return &a.mod, nil
}

func (a *assembler) parseHeaderComment(line string) {
	line = strings.TrimSpace(strings.TrimPrefix(line, ";"))
	switch {
	case strings.HasPrefix(line, "Version:"):
		v := strings.TrimSpace(strings.TrimPrefix(line, "Version:"))
		var major, minor uint32
		if _, err := fmt.Sscanf(v, "%d.%d", &major, &minor); err == nil {
			a.mod.Version = major<<16 | minor<<8
		}
	case strings.HasPrefix(line, "Generator:"):
		v := strings.TrimSpace(strings.TrimPrefix(line, "Generator:"))
		v = strings.TrimPrefix(v, "0x")
		if n, err := strconv.ParseUint(v, 16, 32); err == nil {
			a.mod.Generator = uint32(n)
		}
	case strings.HasPrefix(line, "Schema:"):
		v := strings.TrimSpace(strings.TrimPrefix(line, "Schema:"))
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			a.mod.Schema = uint32(n)
		}
	}
}

// idFor interns a %-prefixed name (the % already stripped) to a stable id,
// allocating a fresh one the first time it is seen.
func (a *assembler) idFor(name string) id.ID {
	if v, ok := a.names[name]; ok {
		return v
	}
	v := a.alloc.New()
	a.names[name] = v
	return v
}

// parseLine parses "[%<id> = ]OpName(operands...)[::%<type_id>]".
func (a *assembler) parseLine(lineNo int, line string) (spirv.Instruction, error) {
	var resultName string
	rest := line
	if eq := findUnquoted(line, '='); eq != -1 {
		lhs := strings.TrimSpace(line[:eq])
		if strings.HasPrefix(lhs, "%") {
			resultName = lhs[1:]
			rest = strings.TrimSpace(line[eq+1:])
		}
	}

	open := findUnquoted(rest, '(')
	if open == -1 {
		return spirv.Instruction{}, &parseError{Line: lineNo, Msg: "missing '(' in instruction"}
	}
	opName := strings.TrimSpace(rest[:open])
	closeAt := findUnquotedFrom(rest, ')', open+1)
	if closeAt == -1 {
		return spirv.Instruction{}, &parseError{Line: lineNo, Msg: "missing ')' in instruction"}
	}
	argsStr := rest[open+1 : closeAt]
	trailer := strings.TrimSpace(rest[closeAt+1:])

	entry, ok := nameToOpcode[opName]
	if !ok {
		return spirv.Instruction{}, &parseError{Line: lineNo, Msg: "unknown opcode " + opName}
	}

	var words []uint32
	if entry.HasResultType {
		if !strings.HasPrefix(trailer, "::%") {
			return spirv.Instruction{}, &parseError{Line: lineNo, Msg: entry.Name + ": missing ::%type suffix"}
		}
		words = append(words, uint32(a.idFor(strings.TrimPrefix(trailer, "::%"))))
	} else if trailer != "" {
		return spirv.Instruction{}, &parseError{Line: lineNo, Msg: entry.Name + ": unexpected trailer " + trailer}
	}
	if entry.HasResult {
		if resultName == "" {
			return spirv.Instruction{}, &parseError{Line: lineNo, Msg: entry.Name + ": missing result assignment"}
		}
		words = append(words, uint32(a.idFor(resultName)))
	} else if resultName != "" {
		return spirv.Instruction{}, &parseError{Line: lineNo, Msg: entry.Name + ": unexpected result assignment"}
	}

	fields := splitTopLevel(argsStr, ',')
	operandWords, err := a.parseOperands(lineNo, entry, fields)
	if err != nil {
		return spirv.Instruction{}, err
	}
	words = append(words, operandWords...)

	if entry.Opcode == spirv.OpExtInstImport && len(fields) > 0 {
		if name, uerr := unquote(strings.TrimSpace(fields[0])); uerr == nil {
			a.extInstImports[a.idFor(resultName)] = name
		}
	}

	return spirv.Instruction{Opcode: entry.Opcode, Words: words}, nil
}

func (a *assembler) parseOperands(lineNo int, entry grammar.Entry, fields []string) ([]uint32, error) {
	var words []uint32
	pos := 0
	for _, desc := range entry.Operands {
		if desc.Quantifier == grammar.Variadic {
			for pos < len(fields) {
				w, err := a.parseOperand(lineNo, entry, desc, fields[pos])
				if err != nil {
					return nil, err
				}
				words = append(words, w...)
				pos++
			}
			continue
		}
		if pos >= len(fields) {
			if desc.Quantifier == grammar.Optional {
				continue
			}
			return nil, &parseError{Line: lineNo, Msg: entry.Name + ": missing operand " + desc.Name}
		}
		var w []uint32
		var err error
		if entry.Opcode == spirv.OpExtInst && desc.Name == "instruction" {
			w, err = a.parseExtInstOperand(lineNo, entry, fields[0], fields[pos])
		} else {
			w, err = a.parseOperand(lineNo, entry, desc, fields[pos])
		}
		if err != nil {
			return nil, err
		}
		words = append(words, w...)
		pos++
	}
	if pos != len(fields) {
		return nil, &parseError{Line: lineNo, Msg: entry.Name + ": unexpected trailing operand(s)"}
	}
	return words, nil
}

func (a *assembler) parseOperand(lineNo int, entry grammar.Entry, desc grammar.OperandDescriptor, field string) ([]uint32, error) {
	switch desc.Kind {
	case grammar.KindID:
		if !strings.HasPrefix(field, "%") {
			return nil, &parseError{Line: lineNo, Msg: entry.Name + ": expected %id for " + desc.Name}
		}
		return []uint32{uint32(a.idFor(field[1:]))}, nil
	case grammar.KindLiteralString:
		s, err := unquote(field)
		if err != nil {
			return nil, &parseError{Line: lineNo, Msg: entry.Name + ": " + err.Error()}
		}
		return grammar.EncodeString(s), nil
	case grammar.KindLiteralInteger:
		words, err := parseHexWords(field)
		if err != nil || len(words) != 1 {
			return nil, &parseError{Line: lineNo, Msg: entry.Name + ": bad integer literal " + field}
		}
		return words, nil
	case grammar.KindLiteralNumber:
		words, err := parseHexWords(field)
		if err != nil {
			return nil, &parseError{Line: lineNo, Msg: entry.Name + ": bad numeric literal " + field}
		}
		return words, nil
	case grammar.KindPairIDIDU32:
		parts := strings.SplitN(field, ":", 2)
		if len(parts) != 2 || !strings.HasPrefix(parts[0], "%") || !strings.HasPrefix(parts[1], "%") {
			return nil, &parseError{Line: lineNo, Msg: entry.Name + ": malformed id pair " + field}
		}
		return []uint32{uint32(a.idFor(parts[0][1:])), uint32(a.idFor(parts[1][1:]))}, nil
	case grammar.KindPairLiteralIDU32:
		parts := strings.SplitN(field, ":", 2)
		if len(parts) != 2 || !strings.HasPrefix(parts[1], "%") {
			return nil, &parseError{Line: lineNo, Msg: entry.Name + ": malformed literal/id pair " + field}
		}
		litWords, err := parseHexWords(parts[0])
		if err != nil || len(litWords) != 1 {
			return nil, &parseError{Line: lineNo, Msg: entry.Name + ": bad literal in pair " + field}
		}
		return []uint32{litWords[0], uint32(a.idFor(parts[1][1:]))}, nil
	default:
		v, ok := parseEnum(desc.Kind, field)
		if !ok {
			return nil, &parseError{Line: lineNo, Msg: entry.Name + ": unrecognized value " + field + " for " + desc.Name}
		}
		return []uint32{v}, nil
	}
}

// parseExtInstOperand resolves OpExtInst's instruction-number operand: if
// setField names an imported ext-inst set (via a prior OpExtInstImport
// line), field is looked up against that set's name table first, so a
// symbolically-disassembled operand like "Sqrt" round-trips back to 31.
// Falls back to a plain hex literal when the set is unknown or field
// doesn't match a name in it.
func (a *assembler) parseExtInstOperand(lineNo int, entry grammar.Entry, setField, field string) ([]uint32, error) {
	if strings.HasPrefix(setField, "%") {
		if setName, ok := a.extInstImports[a.idFor(setField[1:])]; ok {
			if table, ok := grammar.ExtInstSets[setName]; ok {
				for number, inst := range table {
					if inst.Name == field {
						return []uint32{uint32(number)}, nil
					}
				}
			}
		}
	}
	words, err := parseHexWords(field)
	if err != nil || len(words) != 1 {
		return nil, &parseError{Line: lineNo, Msg: entry.Name + ": bad integer literal " + field}
	}
	return words, nil
}

// parseHexWords parses a "0x"-prefixed (or bare) hex string whose length is
// a multiple of 8 digits into one uint32 per 8-digit chunk, in order.
func parseHexWords(s string) ([]uint32, error) {
	s = strings.TrimPrefix(s, "0x")
	if s == "" || len(s)%8 != 0 {
		return nil, fmt.Errorf("malformed hex literal %q", s)
	}
	words := make([]uint32, len(s)/8)
	for i := range words {
		n, err := strconv.ParseUint(s[i*8:i*8+8], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed hex literal %q", s)
		}
		words[i] = uint32(n)
	}
	return words, nil
}

// findUnquoted returns the index of the first unquoted, unescaped byte
// equal to target in s, or -1 if none.
func findUnquoted(s string, target byte) int {
	return findUnquotedFrom(s, target, 0)
}

func findUnquotedFrom(s string, target byte, start int) int {
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == target:
			return i
		}
	}
	return -1
}

// splitTopLevel splits s on sep, treating double-quoted spans (with \" and
// \\ escapes) as opaque so a separator inside a string literal operand does
// not end the field early. Returns nil for an all-whitespace/empty s.
func splitTopLevel(s string, sep rune) []string {
	var out []string
	var cur strings.Builder
	inString := false
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case inString && r == '\\':
			cur.WriteRune(r)
			escaped = true
		case r == '"':
			cur.WriteRune(r)
			inString = !inString
		case inString:
			cur.WriteRune(r)
		case r == sep:
			out = append(out, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	last := strings.TrimSpace(cur.String())
	if last != "" || len(out) > 0 {
		out = append(out, last)
	}
	return out
}

func unquote(tok string) (string, error) {
	s, err := strconv.Unquote(tok)
	if err != nil {
		return "", fmt.Errorf("bad string literal %s", tok)
	}
	return s, nil
}
