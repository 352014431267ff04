package grammar

import "github.com/gogpu/spirvcore/spirv"

func registerMemory() {
	reg(Entry{Opcode: spirv.OpVariable, Name: "OpVariable", Class: ClassMemory, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindEnumStorageClass, "storageClass"), opt(KindID, "initializer")}})
	reg(Entry{Opcode: spirv.OpLoad, Name: "OpLoad", Class: ClassMemory, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "pointer"), variadic(KindLiteralInteger, "memoryAccess")}})
	reg(Entry{Opcode: spirv.OpStore, Name: "OpStore", Class: ClassMemory,
		Operands: []OperandDescriptor{op(KindID, "pointer"), op(KindID, "object"), variadic(KindLiteralInteger, "memoryAccess")}})
	reg(Entry{Opcode: spirv.OpCopyMemory, Name: "OpCopyMemory", Class: ClassMemory,
		Operands: []OperandDescriptor{op(KindID, "target"), op(KindID, "source"), variadic(KindLiteralInteger, "memoryAccess")}})
	reg(Entry{Opcode: spirv.OpCopyMemorySized, Name: "OpCopyMemorySized", Class: ClassMemory,
		Operands: []OperandDescriptor{
			op(KindID, "target"), op(KindID, "source"), op(KindID, "size"), variadic(KindLiteralInteger, "memoryAccess"),
		}})
	reg(Entry{Opcode: spirv.OpAccessChain, Name: "OpAccessChain", Class: ClassMemory, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "base"), variadic(KindID, "indexes")}})
	reg(Entry{Opcode: spirv.OpInBoundsAccessChain, Name: "OpInBoundsAccessChain", Class: ClassMemory, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "base"), variadic(KindID, "indexes")}})
	reg(Entry{Opcode: spirv.OpPtrAccessChain, Name: "OpPtrAccessChain", Class: ClassMemory, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "base"), op(KindID, "element"), variadic(KindID, "indexes")}})
	reg(Entry{Opcode: spirv.OpInBoundsPtrAccessChain, Name: "OpInBoundsPtrAccessChain", Class: ClassMemory, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "base"), op(KindID, "element"), variadic(KindID, "indexes")}})
	reg(Entry{Opcode: spirv.OpArrayLength, Name: "OpArrayLength", Class: ClassMemory, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "structure"), op(KindLiteralInteger, "member")}})
}
