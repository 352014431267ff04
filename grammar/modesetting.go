package grammar

import "github.com/gogpu/spirvcore/spirv"

func registerModeSetting() {
	reg(Entry{Opcode: spirv.OpCapability, Name: "OpCapability", Class: ClassModeSetting,
		Operands: []OperandDescriptor{op(KindEnumCapability, "capability")}})
	reg(Entry{Opcode: spirv.OpMemoryModel, Name: "OpMemoryModel", Class: ClassModeSetting,
		Operands: []OperandDescriptor{op(KindEnumAddressingModel, "addressing"), op(KindEnumMemoryModel, "memory")}})
	reg(Entry{Opcode: spirv.OpEntryPoint, Name: "OpEntryPoint", Class: ClassModeSetting,
		Operands: []OperandDescriptor{
			op(KindEnumExecutionModel, "model"), op(KindID, "entryPoint"), op(KindLiteralString, "name"),
			variadic(KindID, "interface"),
		}})
	reg(Entry{Opcode: spirv.OpExecutionMode, Name: "OpExecutionMode", Class: ClassModeSetting,
		Operands: []OperandDescriptor{
			op(KindID, "entryPoint"), op(KindEnumExecutionMode, "mode"), variadic(KindLiteralInteger, "operands"),
		}})
	reg(Entry{Opcode: spirv.OpExecutionModeId, Name: "OpExecutionModeId", Class: ClassModeSetting,
		Operands: []OperandDescriptor{
			op(KindID, "entryPoint"), op(KindEnumExecutionMode, "mode"), variadic(KindID, "operands"),
		}})
}

func registerExtension() {
	reg(Entry{Opcode: spirv.OpExtension, Name: "OpExtension", Class: ClassExtension,
		Operands: []OperandDescriptor{op(KindLiteralString, "name")}})
	reg(Entry{Opcode: spirv.OpExtInstImport, Name: "OpExtInstImport", Class: ClassExtension, HasResult: true,
		Operands: []OperandDescriptor{op(KindLiteralString, "name")}})
	reg(Entry{Opcode: spirv.OpExtInst, Name: "OpExtInst", Class: ClassExtInst, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{
			op(KindID, "set"), op(KindLiteralInteger, "instruction"), variadic(KindID, "operands"),
		}})
}
