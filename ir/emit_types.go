package ir

import (
	"sort"

	"github.com/gogpu/spirvcore/grammar"
	"github.com/gogpu/spirvcore/spirv"
)

// emitTypesAndConstants writes any OpTypeForwardPointer declarations first,
// then Types and Constants merged into one sequence in ascending id order,
// interleaving the two since SPIR-V allows either to reference ids declared
// in the other (a struct member type, a constant's type, an array's length).
func (e *emitter) emitTypesAndConstants() {
	for _, ptr := range e.ir.Types.ForwardDeclarations() {
		t, ok := e.ir.Types.Lookup(ptr)
		if !ok {
			continue
		}
		pt := t.(PointerType)
		e.push(spirv.OpTypeForwardPointer, uint32(ptr), uint32(pt.StorageClass))
	}
	var order []ID
	e.ir.Types.Each(func(i ID, _ Type) { order = append(order, i) })
	e.ir.Constants.Each(func(i ID, _ Constant) { order = append(order, i) })
	sort.Slice(order, func(a, b int) bool { return order[a] < order[b] })
	for _, i := range order {
		if t, ok := e.ir.Types.Lookup(i); ok {
			e.emitType(i, t)
		} else if c, ok := e.ir.Constants.Get(i); ok {
			e.emitConstant(i, c)
		}
	}
}

func (e *emitter) emitType(i ID, t Type) {
	switch v := t.(type) {
	case VoidType:
		e.pushTyped(spirv.OpTypeVoid, i)
	case BoolType:
		e.pushTyped(spirv.OpTypeBool, i)
	case IntType:
		signed := uint32(0)
		if v.Signed {
			signed = 1
		}
		e.pushTyped(spirv.OpTypeInt, i, v.Width, signed)
	case FloatType:
		e.pushTyped(spirv.OpTypeFloat, i, v.Width)
	case VectorType:
		e.pushTyped(spirv.OpTypeVector, i, uint32(v.Component), v.Count)
	case MatrixType:
		e.pushTyped(spirv.OpTypeMatrix, i, uint32(v.Column), v.Count)
	case ArrayType:
		if v.Length != nil {
			e.pushTyped(spirv.OpTypeArray, i, uint32(v.Element), uint32(*v.Length))
		} else {
			e.pushTyped(spirv.OpTypeRuntimeArray, i, uint32(v.Element))
		}
	case StructType:
		words := make([]uint32, 0, len(v.Members))
		for _, m := range v.Members {
			words = append(words, uint32(m.Type))
		}
		e.pushTyped(spirv.OpTypeStruct, i, words...)
	case OpaqueType:
		e.pushTyped(spirv.OpTypeOpaque, i, grammar.EncodeString(v.Name)...)
	case PointerType:
		e.pushTyped(spirv.OpTypePointer, i, uint32(v.StorageClass), uint32(v.Pointee))
	case FunctionType:
		words := append([]uint32{uint32(v.Return)}, idsToWords(v.Params)...)
		e.pushTyped(spirv.OpTypeFunction, i, words...)
	case ImageType:
		sampled := uint32(0)
		if v.Sampled != 0 {
			sampled = v.Sampled
		}
		arrayed, ms := uint32(0), uint32(0)
		if v.Arrayed {
			arrayed = 1
		}
		if v.Multisampled {
			ms = 1
		}
		e.pushTyped(spirv.OpTypeImage, i, uint32(v.SampledType), uint32(v.Dim), v.Depth, arrayed, ms, sampled, uint32(v.Format))
	case SamplerType:
		e.pushTyped(spirv.OpTypeSampler, i)
	case SampledImageType:
		e.pushTyped(spirv.OpTypeSampledImage, i, uint32(v.Image))
	}
}

// pushTyped emits an instruction of the form "Opcode %result operand...",
// the shape every OpType* opcode except OpTypeForwardPointer follows.
func (e *emitter) pushTyped(opcode spirv.Opcode, result ID, words ...uint32) {
	full := append([]uint32{uint32(result)}, words...)
	e.m.Instructions = append(e.m.Instructions, spirv.Instruction{Opcode: opcode, Words: full})
}

func idsToWords(ids []ID) []uint32 {
	out := make([]uint32, len(ids))
	for i, v := range ids {
		out[i] = uint32(v)
	}
	return out
}

func (e *emitter) emitConstant(i ID, c Constant) {
	switch {
	case c.Null:
		e.pushTyped(spirv.OpConstantNull, i)
		e.withResultType(c.Type)
	case c.Bool != nil:
		op := spirv.OpConstantFalse
		if *c.Bool {
			op = spirv.OpConstantTrue
		}
		if c.Spec {
			if *c.Bool {
				op = spirv.OpSpecConstantTrue
			} else {
				op = spirv.OpSpecConstantFalse
			}
		}
		e.pushTyped(op, i)
		e.withResultType(c.Type)
	case c.Composite != nil:
		op := spirv.OpConstantComposite
		if c.Spec {
			op = spirv.OpSpecConstantComposite
		}
		e.pushTyped(op, i, idsToWords(c.Composite)...)
		e.withResultType(c.Type)
	default:
		op := spirv.OpConstant
		if c.Spec {
			op = spirv.OpSpecConstant
		}
		e.pushTyped(op, i, c.Words...)
		e.withResultType(c.Type)
	}
}

// withResultType prepends resultType to the instruction just pushed by
// pushTyped, since every constant opcode carries both a result type and a
// result id but pushTyped only knows about the result.
func (e *emitter) withResultType(resultType ID) {
	last := len(e.m.Instructions) - 1
	instr := &e.m.Instructions[last]
	instr.Words = append([]uint32{uint32(resultType)}, instr.Words...)
}
