package grammar

import "github.com/gogpu/spirvcore/spirv"

func registerFunction() {
	reg(Entry{Opcode: spirv.OpFunction, Name: "OpFunction", Class: ClassFunction, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindEnumFunctionControl, "control"), op(KindID, "functionType")}})
	reg(Entry{Opcode: spirv.OpFunctionParameter, Name: "OpFunctionParameter", Class: ClassFunction, HasResultType: true, HasResult: true})
	reg(Entry{Opcode: spirv.OpFunctionEnd, Name: "OpFunctionEnd", Class: ClassFunction})
	reg(Entry{Opcode: spirv.OpFunctionCall, Name: "OpFunctionCall", Class: ClassFunction, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindID, "function"), variadic(KindID, "arguments")}})
}
