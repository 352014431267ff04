package ir

import (
	"github.com/gogpu/spirvcore/grammar"
	"github.com/gogpu/spirvcore/spirv"
)

func (b *builder) typeDeclaration(opcode spirv.Opcode, result ID, operands []grammar.Value) error {
	switch opcode {
	case spirv.OpTypeVoid:
		b.ir.Types.SetAt(result, VoidType{})
	case spirv.OpTypeBool:
		b.ir.Types.SetAt(result, BoolType{})
	case spirv.OpTypeInt:
		b.ir.Types.SetAt(result, IntType{Width: operands[0].Words[0], Signed: operands[1].Words[0] != 0})
	case spirv.OpTypeFloat:
		b.ir.Types.SetAt(result, FloatType{Width: operands[0].Words[0]})
	case spirv.OpTypeVector:
		b.ir.Types.SetAt(result, VectorType{Component: operands[0].ID, Count: operands[1].Words[0]})
	case spirv.OpTypeMatrix:
		b.ir.Types.SetAt(result, MatrixType{Column: operands[0].ID, Count: operands[1].Words[0]})
	case spirv.OpTypeArray:
		length := operands[1].ID
		b.ir.Types.SetAt(result, ArrayType{Element: operands[0].ID, Length: &length})
	case spirv.OpTypeRuntimeArray:
		b.ir.Types.SetAt(result, ArrayType{Element: operands[0].ID})
	case spirv.OpTypeStruct:
		members := make([]StructMember, 0, len(operands))
		for _, o := range operands {
			members = append(members, StructMember{Type: o.ID})
		}
		b.ir.Types.SetAt(result, StructType{Members: members})
	case spirv.OpTypeOpaque:
		b.ir.Types.SetAt(result, OpaqueType{Name: operands[0].Str})
	case spirv.OpTypePointer:
		b.ir.Types.SetAt(result, PointerType{StorageClass: spirv.StorageClass(operands[0].Words[0]), Pointee: operands[1].ID})
	case spirv.OpTypeForwardPointer:
		ptr := operands[0].ID
		b.ir.Types.SetAt(ptr, PointerType{StorageClass: spirv.StorageClass(operands[1].Words[0])})
	case spirv.OpTypeFunction:
		b.ir.Types.SetAt(result, FunctionType{Return: operands[0].ID, Params: ids(operands[1:])})
	case spirv.OpTypeImage:
		b.ir.Types.SetAt(result, ImageType{
			SampledType: operands[0].ID, Dim: spirv.Dim(operands[1].Words[0]), Depth: operands[2].Words[0],
			Arrayed: operands[3].Words[0] != 0, Multisampled: operands[4].Words[0] != 0,
			Sampled: operands[5].Words[0], Format: spirv.ImageFormat(operands[6].Words[0]),
		})
	case spirv.OpTypeSampler:
		b.ir.Types.SetAt(result, SamplerType{})
	case spirv.OpTypeSampledImage:
		b.ir.Types.SetAt(result, SampledImageType{Image: operands[0].ID})
	}
	return nil
}

func (b *builder) constant(opcode spirv.Opcode, resultType, result ID, operands []grammar.Value) error {
	spec := opcode == spirv.OpSpecConstantTrue || opcode == spirv.OpSpecConstantFalse ||
		opcode == spirv.OpSpecConstant || opcode == spirv.OpSpecConstantComposite || opcode == spirv.OpSpecConstantOp

	switch opcode {
	case spirv.OpConstantTrue, spirv.OpSpecConstantTrue:
		v := true
		b.ir.Constants.Set(result, Constant{Type: resultType, Spec: spec, Bool: &v})
	case spirv.OpConstantFalse, spirv.OpSpecConstantFalse:
		v := false
		b.ir.Constants.Set(result, Constant{Type: resultType, Spec: spec, Bool: &v})
	case spirv.OpConstant, spirv.OpSpecConstant:
		b.ir.Constants.Set(result, Constant{Type: resultType, Spec: spec, Words: words(operands)})
	case spirv.OpConstantComposite, spirv.OpSpecConstantComposite:
		b.ir.Constants.Set(result, Constant{Type: resultType, Spec: spec, Composite: ids(operands)})
	case spirv.OpConstantNull:
		b.ir.Constants.Set(result, Constant{Type: resultType, Null: true})
	case spirv.OpConstantSampler:
		b.ir.Constants.Set(result, Constant{Type: resultType, Words: words(operands)})
	case spirv.OpSpecConstantOp:
		b.ir.Constants.Set(result, Constant{Type: resultType, Spec: true, Words: words(operands)})
	}
	return nil
}
