package ir

import (
	"github.com/gogpu/spirvcore/grammar"
	"github.com/gogpu/spirvcore/id"
	"github.com/gogpu/spirvcore/spirv"
	"github.com/gogpu/spirvcore/spirverr"
)

// Build decodes a flat spirv.Module into a structured IR in a single pass
// over its instruction stream, dispatching each instruction by the grammar
// class its opcode belongs to. This mirrors naga's own single-pass
// resolve.go dispatch (switch on instruction kind, build up typed state as
// you go), generalized from its shading IR to the full SPIR-V data model.
func Build(m *spirv.Module) (*IR, error) {
	alloc := id.NewAllocator()
	for _, instr := range m.Instructions {
		observeIDs(alloc, instr)
	}

	ir := newEmptyIR(alloc)
	ir.Meta = Meta{Version: m.Version, Generator: m.Generator, Schema: m.Schema}

	b := &builder{ir: ir, entryByFn: make(map[ID]int)}
	for _, instr := range m.Instructions {
		if err := b.step(instr); err != nil {
			return nil, err
		}
	}
	if b.fn != nil {
		return nil, &spirverr.InvariantViolation{Detail: "function missing OpFunctionEnd"}
	}
	return ir, nil
}

// observeIDs bumps alloc's watermark past every id this instruction defines
// or references, so the IR's own allocator starts where the decoded module
// left off.
func observeIDs(alloc *id.Allocator, instr spirv.Instruction) {
	resultType, result, operands, err := grammar.Split(instr)
	if err != nil {
		return
	}
	if resultType.Valid() {
		alloc.Observe(resultType)
	}
	if result.Valid() {
		alloc.Observe(result)
	}
	for _, o := range operands {
		if o.Kind == grammar.KindID && o.ID.Valid() {
			alloc.Observe(o.ID)
		}
	}
}

// builder holds the in-progress state of a single decode pass.
type builder struct {
	ir  *IR
	fn  *FunctionDef
	blk *Block

	// decorationGroups maps a group id (from OpDecorationGroup) to the
	// decorations previously attached to it, so OpGroupDecorate/
	// OpGroupMemberDecorate can fan them out to their real targets.
	decorationGroups map[ID][]Decoration
	pendingMerge     *Merge
	entryByFn        map[ID]int // function id -> index into ir.EntryPoints, for OpExecutionMode(Id)
}

func (b *builder) step(instr spirv.Instruction) error {
	entry, ok := grammar.Lookup(instr.Opcode)
	if !ok {
		return &spirverr.UnknownOpcode{Opcode: uint16(instr.Opcode)}
	}
	resultType, result, operands, err := grammar.Split(instr)
	if err != nil {
		return err
	}
	if result.Valid() {
		b.ir.Results.Set(result, resultType)
	}

	switch entry.Class {
	case grammar.ClassModeSetting:
		return b.modeSetting(instr.Opcode, operands)
	case grammar.ClassExtension:
		return b.extension(instr.Opcode, result, operands)
	case grammar.ClassDebug:
		return b.debug(instr.Opcode, result, operands)
	case grammar.ClassAnnotation:
		return b.annotation(instr.Opcode, result, operands)
	case grammar.ClassTypeDeclaration:
		return b.typeDeclaration(instr.Opcode, result, operands)
	case grammar.ClassConstantCreation:
		return b.constant(instr.Opcode, resultType, result, operands)
	case grammar.ClassFunction:
		if err := b.function(instr.Opcode, resultType, result, operands); err != nil {
			return err
		}
		if instr.Opcode != spirv.OpFunction && instr.Opcode != spirv.OpFunctionParameter && instr.Opcode != spirv.OpFunctionEnd {
			b.appendBody(instr.Opcode, resultType, result, operands)
		}
		return nil
	case grammar.ClassControlFlow:
		return b.controlFlow(instr.Opcode, resultType, result, operands)
	default: // ClassMemory, ClassExtInst, ClassOther
		if entry.Class == grammar.ClassMemory && instr.Opcode == spirv.OpVariable && b.fn == nil {
			return b.global(result, resultType, operands)
		}
		b.appendBody(instr.Opcode, resultType, result, operands)
		return nil
	}
}

func ids(operands []grammar.Value) []ID {
	out := make([]ID, 0, len(operands))
	for _, o := range operands {
		out = append(out, o.ID)
	}
	return out
}

func words(operands []grammar.Value) []uint32 {
	out := make([]uint32, 0, len(operands))
	for _, o := range operands {
		if len(o.Words) > 0 {
			out = append(out, o.Words...)
		} else if o.ID.Valid() {
			out = append(out, uint32(o.ID))
		}
	}
	return out
}
