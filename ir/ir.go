package ir

import (
	"github.com/gogpu/spirvcore/id"
	"github.com/gogpu/spirvcore/spirv"
)

// IR is the structured, deduplicated projection of a SPIR-V module: every
// section a flat spirv.Module's instruction stream encodes, organized the
// way the rest of the toolchain (control-flow analysis, the disassembler)
// wants to consume it. Emit flattens it back into a module, though not
// always into the identical word stream: OpLine, OpNoLine,
// OpSourceExtension and OpModuleProcessed are not kept; decoration groups
// are not written, their decorations being written on each target instead;
// OpDecorateId and OpExecutionModeId come back as OpDecorate and
// OpExecutionMode; OpSpecConstantOp and OpConstantSampler come back as
// OpSpecConstant and OpConstant; merge instructions are written with a zero
// control word and branch weights are not kept; an OpTypeForwardPointer
// read by Build is not written again; and OpMemberName instructions come
// out in no fixed order.
type IR struct {
	// Alloc is the id space every other field's ids are drawn from: Build
	// seeds it by observing every id a decoded module already uses, and a
	// front end populating an IR from scratch (NewIR) calls NewID/AddType/
	// AddConstant/... to draw fresh ones from the same watermark instead of
	// picking ids by hand.
	Alloc *id.Allocator

	Capabilities   []spirv.Capability
	Extensions     []string
	ExtInstImports *id.OrderedMap[string] // id -> imported set name, e.g. "GLSL.std.450"

	AddressingModel spirv.AddressingModel
	MemoryModel     spirv.MemoryModel

	EntryPoints []EntryPoint

	Decorations       []Decoration
	MemberDecorations []MemberDecoration

	Types     *TypeRegistry
	Constants *id.OrderedMap[Constant]

	Globals    *id.OrderedMap[Global]    // OpVariable at module scope
	Functions  *id.OrderedMap[FunctionDef]

	// Results maps every result id in the module (instructions, function
	// parameters, block parameters) to its declared type id, mirroring the
	// "results" projection named in the data model: a single place to ask
	// "what type does id X have" without re-walking the function body.
	Results *id.OrderedMap[ID]

	Debug DebugInfo
	Meta  Meta
}

// EntryPoint is one OpEntryPoint declaration.
type EntryPoint struct {
	Model     spirv.ExecutionModel
	Function  ID
	Name      string
	Interface []ID
	Modes     []ExecutionMode
}

// ExecutionMode is one OpExecutionMode/OpExecutionModeId attached to an entry point.
type ExecutionMode struct {
	Mode      spirv.ExecutionMode
	Operands  []uint32
}

// Decoration is one OpDecorate/OpDecorateId.
type Decoration struct {
	Target     ID
	Decoration spirv.Decoration
	Operands   []uint32
}

// MemberDecoration is one OpMemberDecorate.
type MemberDecoration struct {
	StructType ID
	Member     uint32
	Decoration spirv.Decoration
	Operands   []uint32
}

// Constant is a module-scope constant value: OpConstant*/OpSpecConstant*.
type Constant struct {
	Type         ID
	Spec         bool // true for OpSpecConstant*
	Bool         *bool
	Words        []uint32 // raw literal words, for OpConstant/OpSpecConstant
	Composite    []ID     // constituents, for OpConstantComposite/OpSpecConstantComposite
	Null         bool
}

// Global is a module-scope OpVariable.
type Global struct {
	Type         ID // pointer type
	StorageClass spirv.StorageClass
	Initializer  *ID
}

// FunctionDef is one SPIR-V function: its signature plus its basic blocks in
// the order they were declared, the shape cfg.Build consumes directly.
type FunctionDef struct {
	Result      ID
	Type        ID // OpTypeFunction id
	ReturnType  ID
	Control     spirv.FunctionControl
	Parameters  []ID
	Blocks      *id.OrderedMap[Block]
	EntryBlock  ID
}

// Block is one basic block: its non-terminator body instructions plus the
// terminator that ends it, matching the invariant that every block ends in
// exactly one control-flow instruction.
type Block struct {
	Label      ID
	Phis       []Phi
	Body       []Instruction
	Merge      *Merge
	Terminator Terminator
}

// Phi is one OpPhi.
type Phi struct {
	Result ID
	Type   ID
	// Incoming pairs a predecessor block's id with the value id flowing in
	// from it, in the order OpPhi's variadic operand list declared them.
	Incoming []PhiEdge
}

// PhiEdge is one (value, predecessor block) pair of an OpPhi.
type PhiEdge struct {
	Value ID
	Block ID
}

// Instruction is one non-terminator, non-phi instruction inside a block body.
type Instruction struct {
	Opcode     spirv.Opcode
	ResultType ID
	Result     ID
	Operands   []uint32 // ids and literal words, in grammar order
}

// Terminator is the closed sum of block-ending control-flow instructions.
type Terminator interface {
	terminator()
}

// Branch is OpBranch.
type Branch struct {
	Target ID
}

func (Branch) terminator() {}

// BranchConditional is OpBranchConditional.
type BranchConditional struct {
	Condition ID
	True      ID
	False     ID
}

func (BranchConditional) terminator() {}

// Switch is OpSwitch.
type Switch struct {
	Selector ID
	Default  ID
	Cases    []SwitchCase
}

func (Switch) terminator() {}

// SwitchCase is one (literal, target) pair of an OpSwitch.
type SwitchCase struct {
	Literal uint32
	Target  ID
}

// Return is OpReturn.
type Return struct{}

func (Return) terminator() {}

// ReturnValue is OpReturnValue.
type ReturnValue struct {
	Value ID
}

func (ReturnValue) terminator() {}

// Unreachable is OpUnreachable.
type Unreachable struct{}

func (Unreachable) terminator() {}

// Kill is OpKill.
type Kill struct{}

func (Kill) terminator() {}

// Merge, when non-nil on a Block, records the OpSelectionMerge/OpLoopMerge
// that preceded this block's terminator, so Emit can write it back before
// the terminator.
type Merge struct {
	MergeBlock    ID
	ContinueBlock *ID // non-nil only for OpLoopMerge
	IsLoop        bool
}

// DebugInfo carries OpSource/OpName/OpMemberName/OpString/OpLine data,
// which the rest of the toolchain treats as opaque, preserved metadata.
type DebugInfo struct {
	Names        *id.OrderedMap[string]
	MemberNames  map[ID]map[uint32]string
	Strings      *id.OrderedMap[string]
	Sources      []SourceInfo
}

// SourceInfo is one OpSource.
type SourceInfo struct {
	Language uint32
	Version  uint32
	File     *ID
	Text     string
}

// Meta carries the module-level header fields not otherwise projected.
type Meta struct {
	Version   uint32
	Generator uint32
	Schema    uint32
}
