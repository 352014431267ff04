package grammar

import "github.com/gogpu/spirvcore/spirv"

func registerTypeDeclaration() {
	reg(Entry{Opcode: spirv.OpTypeVoid, Name: "OpTypeVoid", Class: ClassTypeDeclaration, HasResult: true})
	reg(Entry{Opcode: spirv.OpTypeBool, Name: "OpTypeBool", Class: ClassTypeDeclaration, HasResult: true})
	reg(Entry{Opcode: spirv.OpTypeInt, Name: "OpTypeInt", Class: ClassTypeDeclaration, HasResult: true,
		Operands: []OperandDescriptor{op(KindLiteralInteger, "width"), op(KindLiteralInteger, "signedness")}})
	reg(Entry{Opcode: spirv.OpTypeFloat, Name: "OpTypeFloat", Class: ClassTypeDeclaration, HasResult: true,
		Operands: []OperandDescriptor{op(KindLiteralInteger, "width")}})
	reg(Entry{Opcode: spirv.OpTypeVector, Name: "OpTypeVector", Class: ClassTypeDeclaration, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "componentType"), op(KindLiteralInteger, "componentCount")}})
	reg(Entry{Opcode: spirv.OpTypeMatrix, Name: "OpTypeMatrix", Class: ClassTypeDeclaration, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "columnType"), op(KindLiteralInteger, "columnCount")}})
	reg(Entry{Opcode: spirv.OpTypeImage, Name: "OpTypeImage", Class: ClassTypeDeclaration, HasResult: true,
		Operands: []OperandDescriptor{
			op(KindID, "sampledType"), op(KindEnumDim, "dim"), op(KindLiteralInteger, "depth"),
			op(KindLiteralInteger, "arrayed"), op(KindLiteralInteger, "ms"), op(KindLiteralInteger, "sampled"),
			op(KindEnumImageFormat, "format"),
		}})
	reg(Entry{Opcode: spirv.OpTypeSampler, Name: "OpTypeSampler", Class: ClassTypeDeclaration, HasResult: true})
	reg(Entry{Opcode: spirv.OpTypeSampledImage, Name: "OpTypeSampledImage", Class: ClassTypeDeclaration, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "imageType")}})
	reg(Entry{Opcode: spirv.OpTypeArray, Name: "OpTypeArray", Class: ClassTypeDeclaration, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "elementType"), op(KindID, "length")}})
	reg(Entry{Opcode: spirv.OpTypeRuntimeArray, Name: "OpTypeRuntimeArray", Class: ClassTypeDeclaration, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "elementType")}})
	reg(Entry{Opcode: spirv.OpTypeStruct, Name: "OpTypeStruct", Class: ClassTypeDeclaration, HasResult: true,
		Operands: []OperandDescriptor{variadic(KindID, "memberTypes")}})
	reg(Entry{Opcode: spirv.OpTypeOpaque, Name: "OpTypeOpaque", Class: ClassTypeDeclaration, HasResult: true,
		Operands: []OperandDescriptor{op(KindLiteralString, "name")}})
	reg(Entry{Opcode: spirv.OpTypePointer, Name: "OpTypePointer", Class: ClassTypeDeclaration, HasResult: true,
		Operands: []OperandDescriptor{op(KindEnumStorageClass, "storageClass"), op(KindID, "pointeeType")}})
	reg(Entry{Opcode: spirv.OpTypeFunction, Name: "OpTypeFunction", Class: ClassTypeDeclaration, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "returnType"), variadic(KindID, "paramTypes")}})
	reg(Entry{Opcode: spirv.OpTypeForwardPointer, Name: "OpTypeForwardPointer", Class: ClassTypeDeclaration,
		Operands: []OperandDescriptor{op(KindID, "pointerType"), op(KindEnumStorageClass, "storageClass")}})
}
