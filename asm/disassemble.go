package asm

import (
	"fmt"
	"strings"

	"github.com/gogpu/spirvcore/grammar"
	"github.com/gogpu/spirvcore/spirv"
)

// Disassemble renders m as SPIR-V assembly text: a header comment block
// followed by one line per instruction. A result-producing instruction reads
// "%<id> = OpName(operands...)", suffixed with "::%<type_id>" when the
// opcode also carries a result type; everything else reads
// "OpName(operands...)". Opcodes with no grammar entry still print, as
// "Op<n>(...)" with raw hex words, so disassembly never fails on a module
// the codec itself accepted.
func Disassemble(m *spirv.Module) string {
	var b strings.Builder
	major := (m.Version >> 16) & 0xff
	minor := (m.Version >> 8) & 0xff
	fmt.Fprintf(&b, "; SPIR-V\n")
	fmt.Fprintf(&b, "; Version: %d.%d\n", major, minor)
	fmt.Fprintf(&b, "; Generator: 0x%08x\n", m.Generator)
	fmt.Fprintf(&b, "; Bound: %d\n", m.Bound)
	fmt.Fprintf(&b, "; Schema: %d\n", m.Schema)
	b.WriteString("\n")

	imports := extInstImports(m)
	for _, instr := range m.Instructions {
		writeInstruction(&b, instr, imports)
	}
	return b.String()
}

// extInstImports scans m for OpExtInstImport declarations and returns the
// id -> imported set name mapping (e.g. "GLSL.std.450") OpExtInst's set
// operand resolves against, so its instruction-number operand can be
// rendered symbolically instead of as a raw literal.
func extInstImports(m *spirv.Module) map[uint32]string {
	imports := make(map[uint32]string)
	for _, instr := range m.Instructions {
		if instr.Opcode != spirv.OpExtInstImport {
			continue
		}
		_, result, operands, err := grammar.Split(instr)
		if err != nil || len(operands) == 0 {
			continue
		}
		imports[uint32(result)] = operands[0].Str
	}
	return imports
}

func writeInstruction(b *strings.Builder, instr spirv.Instruction, imports map[uint32]string) {
	entry, ok := grammar.Lookup(instr.Opcode)
	if !ok {
		fmt.Fprintf(b, "Op%d(", uint16(instr.Opcode))
		for i, w := range instr.Words {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatHex([]uint32{w}))
		}
		b.WriteString(")\n")
		return
	}

	resultType, result, operands, err := grammar.Split(instr)
	if err != nil {
		fmt.Fprintf(b, "; <error: %v>\n", err)
		return
	}

	if entry.HasResult {
		fmt.Fprintf(b, "%%%d = %s(", result, entry.Name)
	} else {
		fmt.Fprintf(b, "%s(", entry.Name)
	}
	for i, v := range operands {
		if i > 0 {
			b.WriteString(", ")
		}
		if instr.Opcode == spirv.OpExtInst && i == 1 {
			writeExtInstNumber(b, operands[0], v, imports)
			continue
		}
		writeValue(b, v)
	}
	b.WriteString(")")
	if entry.HasResultType {
		fmt.Fprintf(b, "::%%%d", resultType)
	}
	b.WriteString("\n")
}

// writeExtInstNumber renders OpExtInst's instruction-number operand
// symbolically (e.g. "Sqrt") by resolving setOperand's %id through imports
// to an ext-inst-set name and looking the number up in grammar.ExtInstSets,
// falling back to the plain hex literal when the set is unimported or
// unknown.
func writeExtInstNumber(b *strings.Builder, setOperand, numberOperand grammar.Value, imports map[uint32]string) {
	if setName, ok := imports[uint32(setOperand.ID)]; ok {
		if table, ok := grammar.ExtInstSets[setName]; ok && len(numberOperand.Words) > 0 {
			if inst, ok := table[int(numberOperand.Words[0])]; ok {
				b.WriteString(inst.Name)
				return
			}
		}
	}
	writeValue(b, numberOperand)
}

func writeValue(b *strings.Builder, v grammar.Value) {
	switch v.Kind {
	case grammar.KindID:
		fmt.Fprintf(b, "%%%d", v.ID)
	case grammar.KindLiteralString:
		fmt.Fprintf(b, "%q", v.Str)
	case grammar.KindPairIDIDU32:
		fmt.Fprintf(b, "%%%d:%%%d", v.Words[0], v.Words[1])
	case grammar.KindPairLiteralIDU32:
		fmt.Fprintf(b, "%s:%%%d", formatHex(v.Words[:1]), v.Words[1])
	case grammar.KindLiteralInteger, grammar.KindLiteralNumber:
		b.WriteString(formatHex(v.Words))
	default:
		b.WriteString(formatEnum(v.Kind, v.Words[0]))
	}
}

// formatHex renders words as hexadecimal with a minimum width matching their
// declared word count: 8 digits per word, concatenated in word order.
func formatHex(words []uint32) string {
	var b strings.Builder
	b.WriteString("0x")
	for _, w := range words {
		fmt.Fprintf(&b, "%08x", w)
	}
	return b.String()
}
