// Package grammar is the static description of SPIR-V's instruction shapes:
// for every opcode this module understands, which operands it takes, in what
// order, with what quantifier, and which high-level class it belongs to.
//
// naga's disassembler (cmd/spvdis/main.go) hardcodes this knowledge as a
// giant switch over opcode inside its print loop; this package pulls that
// knowledge out into data so the codec, the IR builder, and the assembler
// can all walk the same table instead of each re-deriving it.
package grammar

import "github.com/gogpu/spirvcore/spirv"

// Quantifier describes how many words/operands a descriptor contributes.
type Quantifier int

const (
	// Required operands contribute exactly one operand value.
	Required Quantifier = iota
	// Optional operands contribute zero or one, present only if words remain.
	Optional
	// Variadic operands consume all remaining words in the instruction,
	// each one (or pair, for KindPairIDIDU32/KindPairLiteralIDU32) forming an operand.
	Variadic
)

// Kind identifies the shape of a single operand slot.
type Kind int

const (
	KindResultType Kind = iota
	KindResultID
	KindID                 // reference to another id
	KindLiteralInteger      // a single-word unsigned integer literal
	KindLiteralNumber       // a (possibly multi-word) numeric literal, e.g. OpConstant
	KindLiteralString       // a NUL-terminated, word-padded string
	KindPairIDIDU32         // OpPhi: (variable id, parent-block id) pairs
	KindPairLiteralIDU32    // OpSwitch: (literal, label id) pairs
	KindEnumCapability
	KindEnumDecoration
	KindEnumStorageClass
	KindEnumExecutionModel
	KindEnumExecutionMode
	KindEnumAddressingModel
	KindEnumMemoryModel
	KindEnumBuiltIn
	KindEnumDim
	KindEnumImageFormat
	KindEnumSelectionControl
	KindEnumLoopControl
	KindEnumFunctionControl
)

// Class groups opcodes by the role they play when an IR is built from a flat
// instruction stream, matching the dispatch groups named in the
// specification's component design for the IR builder.
type Class int

const (
	ClassModeSetting Class = iota
	ClassExtension
	ClassDebug
	ClassAnnotation
	ClassTypeDeclaration
	ClassConstantCreation
	ClassMemory
	ClassFunction
	ClassControlFlow
	ClassExtInst
	ClassOther
)

// OperandDescriptor describes one operand slot in an instruction's grammar.
type OperandDescriptor struct {
	Kind       Kind
	Quantifier Quantifier
	Name       string // for documentation/error messages only
}

// Entry is the grammar record for one opcode.
type Entry struct {
	Opcode        spirv.Opcode
	Name          string
	Class         Class
	HasResultType bool
	HasResult     bool
	Operands      []OperandDescriptor
}

// Table maps every opcode this module understands to its grammar entry.
var Table = map[spirv.Opcode]Entry{}

func reg(e Entry) { Table[e.Opcode] = e }

func op(kind Kind, name string) OperandDescriptor {
	return OperandDescriptor{Kind: kind, Quantifier: Required, Name: name}
}

func opt(kind Kind, name string) OperandDescriptor {
	return OperandDescriptor{Kind: kind, Quantifier: Optional, Name: name}
}

func variadic(kind Kind, name string) OperandDescriptor {
	return OperandDescriptor{Kind: kind, Quantifier: Variadic, Name: name}
}

// Lookup returns the grammar entry for opcode, if known.
func Lookup(opcode spirv.Opcode) (Entry, bool) {
	e, ok := Table[opcode]
	return e, ok
}

func init() {
	registerModeSetting()
	registerExtension()
	registerDebug()
	registerAnnotation()
	registerTypeDeclaration()
	registerConstantCreation()
	registerMemory()
	registerFunction()
	registerArithmetic()
	registerControlFlow()
	registerExtInstSets()
}
