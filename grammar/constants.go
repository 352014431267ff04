package grammar

import "github.com/gogpu/spirvcore/spirv"

func registerConstantCreation() {
	reg(Entry{Opcode: spirv.OpConstantTrue, Name: "OpConstantTrue", Class: ClassConstantCreation, HasResultType: true, HasResult: true})
	reg(Entry{Opcode: spirv.OpConstantFalse, Name: "OpConstantFalse", Class: ClassConstantCreation, HasResultType: true, HasResult: true})
	reg(Entry{Opcode: spirv.OpConstant, Name: "OpConstant", Class: ClassConstantCreation, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{variadic(KindLiteralNumber, "value")}})
	reg(Entry{Opcode: spirv.OpConstantComposite, Name: "OpConstantComposite", Class: ClassConstantCreation, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{variadic(KindID, "constituents")}})
	reg(Entry{Opcode: spirv.OpConstantSampler, Name: "OpConstantSampler", Class: ClassConstantCreation, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{
			op(KindLiteralInteger, "addressingMode"), op(KindLiteralInteger, "param"), op(KindLiteralInteger, "filterMode"),
		}})
	reg(Entry{Opcode: spirv.OpConstantNull, Name: "OpConstantNull", Class: ClassConstantCreation, HasResultType: true, HasResult: true})
	reg(Entry{Opcode: spirv.OpSpecConstantTrue, Name: "OpSpecConstantTrue", Class: ClassConstantCreation, HasResultType: true, HasResult: true})
	reg(Entry{Opcode: spirv.OpSpecConstantFalse, Name: "OpSpecConstantFalse", Class: ClassConstantCreation, HasResultType: true, HasResult: true})
	reg(Entry{Opcode: spirv.OpSpecConstant, Name: "OpSpecConstant", Class: ClassConstantCreation, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{variadic(KindLiteralNumber, "value")}})
	reg(Entry{Opcode: spirv.OpSpecConstantComposite, Name: "OpSpecConstantComposite", Class: ClassConstantCreation, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{variadic(KindID, "constituents")}})
	reg(Entry{Opcode: spirv.OpSpecConstantOp, Name: "OpSpecConstantOp", Class: ClassConstantCreation, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{op(KindLiteralInteger, "opcode"), variadic(KindID, "operands")}})
}
