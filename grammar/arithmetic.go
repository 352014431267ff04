package grammar

import "github.com/gogpu/spirvcore/spirv"

// regUnary/regBinary cover the large family of opcodes shaped
// "result-type result-id operand(s)", which is most of the arithmetic,
// logical, relational, and conversion space.
func regUnary(opcode spirv.Opcode, name string) {
	reg(Entry{Opcode: opcode, Name: name, Class: ClassOther, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "operand")}})
}

func regBinary(opcode spirv.Opcode, name string) {
	reg(Entry{Opcode: opcode, Name: name, Class: ClassOther, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "lhs"), op(KindID, "rhs")}})
}

func registerArithmetic() {
	// Conversions (unary).
	for _, o := range []spirv.Opcode{
		spirv.OpConvertFToU, spirv.OpConvertFToS, spirv.OpConvertSToF, spirv.OpConvertUToF,
		spirv.OpUConvert, spirv.OpSConvert, spirv.OpFConvert, spirv.OpBitcast,
		spirv.OpSNegate, spirv.OpFNegate, spirv.OpLogicalNot, spirv.OpNot,
		spirv.OpAny, spirv.OpAll, spirv.OpIsNan, spirv.OpIsInf, spirv.OpTranspose,
	} {
		regUnary(o, o.String())
	}

	// Binary arithmetic/logical/relational/bitwise.
	for _, o := range []spirv.Opcode{
		spirv.OpIAdd, spirv.OpFAdd, spirv.OpISub, spirv.OpFSub, spirv.OpIMul, spirv.OpFMul,
		spirv.OpUDiv, spirv.OpSDiv, spirv.OpFDiv, spirv.OpUMod, spirv.OpSRem, spirv.OpSMod,
		spirv.OpFRem, spirv.OpFMod,
		spirv.OpVectorTimesScalar, spirv.OpMatrixTimesScalar, spirv.OpVectorTimesMatrix,
		spirv.OpMatrixTimesVector, spirv.OpMatrixTimesMatrix, spirv.OpDot,
		spirv.OpLogicalEqual, spirv.OpLogicalNotEqual, spirv.OpLogicalOr, spirv.OpLogicalAnd,
		spirv.OpIEqual, spirv.OpINotEqual,
		spirv.OpUGreaterThan, spirv.OpSGreaterThan, spirv.OpUGreaterThanEqual, spirv.OpSGreaterThanEqual,
		spirv.OpULessThan, spirv.OpSLessThan, spirv.OpULessThanEqual, spirv.OpSLessThanEqual,
		spirv.OpFOrdEqual, spirv.OpFUnordEqual, spirv.OpFOrdNotEqual, spirv.OpFUnordNotEqual,
		spirv.OpShiftRightLogical, spirv.OpShiftRightArithmetic, spirv.OpShiftLeftLogical,
		spirv.OpBitwiseOr, spirv.OpBitwiseXor, spirv.OpBitwiseAnd,
	} {
		regBinary(o, o.String())
	}

	reg(Entry{Opcode: spirv.OpSelect, Name: "OpSelect", Class: ClassOther, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "condition"), op(KindID, "object1"), op(KindID, "object2")}})
	reg(Entry{Opcode: spirv.OpVectorShuffle, Name: "OpVectorShuffle", Class: ClassOther, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "vector1"), op(KindID, "vector2"), variadic(KindLiteralInteger, "components")}})
	reg(Entry{Opcode: spirv.OpVectorExtractDynamic, Name: "OpVectorExtractDynamic", Class: ClassOther, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "vector"), op(KindID, "index")}})
	reg(Entry{Opcode: spirv.OpVectorInsertDynamic, Name: "OpVectorInsertDynamic", Class: ClassOther, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "vector"), op(KindID, "component"), op(KindID, "index")}})
	reg(Entry{Opcode: spirv.OpCompositeConstruct, Name: "OpCompositeConstruct", Class: ClassOther, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{variadic(KindID, "constituents")}})
	reg(Entry{Opcode: spirv.OpCompositeExtract, Name: "OpCompositeExtract", Class: ClassOther, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "composite"), variadic(KindLiteralInteger, "indexes")}})
	reg(Entry{Opcode: spirv.OpCompositeInsert, Name: "OpCompositeInsert", Class: ClassOther, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "object"), op(KindID, "composite"), variadic(KindLiteralInteger, "indexes")}})
	reg(Entry{Opcode: spirv.OpCopyObject, Name: "OpCopyObject", Class: ClassOther, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "operand")}})
	reg(Entry{Opcode: spirv.OpSampledImage, Name: "OpSampledImage", Class: ClassOther, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "image"), op(KindID, "sampler")}})
}
