package grammar

import "github.com/gogpu/spirvcore/spirv"

func registerDebug() {
	reg(Entry{Opcode: spirv.OpSource, Name: "OpSource", Class: ClassDebug,
		Operands: []OperandDescriptor{
			op(KindLiteralInteger, "language"), op(KindLiteralInteger, "version"),
			opt(KindID, "file"), opt(KindLiteralString, "source"),
		}})
	reg(Entry{Opcode: spirv.OpSourceExtension, Name: "OpSourceExtension", Class: ClassDebug,
		Operands: []OperandDescriptor{op(KindLiteralString, "extension")}})
	reg(Entry{Opcode: spirv.OpString, Name: "OpString", Class: ClassDebug, HasResult: true,
		Operands: []OperandDescriptor{op(KindLiteralString, "string")}})
	reg(Entry{Opcode: spirv.OpName, Name: "OpName", Class: ClassDebug,
		Operands: []OperandDescriptor{op(KindID, "target"), op(KindLiteralString, "name")}})
	reg(Entry{Opcode: spirv.OpMemberName, Name: "OpMemberName", Class: ClassDebug,
		Operands: []OperandDescriptor{
			op(KindID, "structType"), op(KindLiteralInteger, "member"), op(KindLiteralString, "name"),
		}})
	reg(Entry{Opcode: spirv.OpModuleProcessed, Name: "OpModuleProcessed", Class: ClassDebug,
		Operands: []OperandDescriptor{op(KindLiteralString, "process")}})
	reg(Entry{Opcode: spirv.OpLine, Name: "OpLine", Class: ClassDebug,
		Operands: []OperandDescriptor{
			op(KindID, "file"), op(KindLiteralInteger, "line"), op(KindLiteralInteger, "column"),
		}})
	reg(Entry{Opcode: spirv.OpNoLine, Name: "OpNoLine", Class: ClassDebug})
}
