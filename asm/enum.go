package asm

import (
	"strconv"

	"github.com/gogpu/spirvcore/grammar"
	"github.com/gogpu/spirvcore/spirv"
)

// formatEnum renders a single enum-kind operand word using the matching
// spirv type's String method. The mask kinds (SelectionControl/LoopControl/
// FunctionControl) render as a "|"-joined list of set flag names via their
// own String, rather than the single-name lookup the other enum kinds use.
func formatEnum(kind grammar.Kind, raw uint32) string {
	switch kind {
	case grammar.KindEnumCapability:
		return spirv.Capability(raw).String()
	case grammar.KindEnumDecoration:
		return spirv.Decoration(raw).String()
	case grammar.KindEnumStorageClass:
		return spirv.StorageClass(raw).String()
	case grammar.KindEnumExecutionModel:
		return spirv.ExecutionModel(raw).String()
	case grammar.KindEnumExecutionMode:
		return spirv.ExecutionMode(raw).String()
	case grammar.KindEnumAddressingModel:
		return spirv.AddressingModel(raw).String()
	case grammar.KindEnumMemoryModel:
		return spirv.MemoryModel(raw).String()
	case grammar.KindEnumBuiltIn:
		return spirv.BuiltIn(raw).String()
	case grammar.KindEnumDim:
		return spirv.Dim(raw).String()
	case grammar.KindEnumImageFormat:
		return spirv.ImageFormat(raw).String()
	case grammar.KindEnumSelectionControl:
		return spirv.SelectionControl(raw).String()
	case grammar.KindEnumLoopControl:
		return spirv.LoopControl(raw).String()
	case grammar.KindEnumFunctionControl:
		return spirv.FunctionControl(raw).String()
	default:
		return strconv.FormatUint(uint64(raw), 10)
	}
}

// parseEnum parses a single enum-kind token back to its raw word value,
// falling back to plain decimal parsing for kinds with no named table.
func parseEnum(kind grammar.Kind, tok string) (uint32, bool) {
	switch kind {
	case grammar.KindEnumCapability:
		v, ok := spirv.ParseCapability(tok)
		return uint32(v), ok
	case grammar.KindEnumDecoration:
		v, ok := spirv.ParseDecoration(tok)
		return uint32(v), ok
	case grammar.KindEnumStorageClass:
		v, ok := spirv.ParseStorageClass(tok)
		return uint32(v), ok
	case grammar.KindEnumExecutionModel:
		v, ok := spirv.ParseExecutionModel(tok)
		return uint32(v), ok
	case grammar.KindEnumExecutionMode:
		v, ok := spirv.ParseExecutionMode(tok)
		return uint32(v), ok
	case grammar.KindEnumAddressingModel:
		v, ok := spirv.ParseAddressingModel(tok)
		return uint32(v), ok
	case grammar.KindEnumMemoryModel:
		v, ok := spirv.ParseMemoryModel(tok)
		return uint32(v), ok
	case grammar.KindEnumBuiltIn:
		v, ok := spirv.ParseBuiltIn(tok)
		return uint32(v), ok
	case grammar.KindEnumDim:
		v, ok := spirv.ParseDim(tok)
		return uint32(v), ok
	case grammar.KindEnumImageFormat:
		v, ok := spirv.ParseImageFormat(tok)
		return uint32(v), ok
	case grammar.KindEnumSelectionControl:
		v, ok := spirv.ParseSelectionControl(tok)
		return uint32(v), ok
	case grammar.KindEnumLoopControl:
		v, ok := spirv.ParseLoopControl(tok)
		return uint32(v), ok
	case grammar.KindEnumFunctionControl:
		v, ok := spirv.ParseFunctionControl(tok)
		return uint32(v), ok
	default:
		n, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return 0, false
		}
		return uint32(n), true
	}
}
