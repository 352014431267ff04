package grammar

import "github.com/gogpu/spirvcore/spirv"

func registerAnnotation() {
	reg(Entry{Opcode: spirv.OpDecorate, Name: "OpDecorate", Class: ClassAnnotation,
		Operands: []OperandDescriptor{
			op(KindID, "target"), op(KindEnumDecoration, "decoration"), variadic(KindLiteralInteger, "extra"),
		}})
	reg(Entry{Opcode: spirv.OpDecorateId, Name: "OpDecorateId", Class: ClassAnnotation,
		Operands: []OperandDescriptor{
			op(KindID, "target"), op(KindEnumDecoration, "decoration"), variadic(KindID, "extra"),
		}})
	reg(Entry{Opcode: spirv.OpMemberDecorate, Name: "OpMemberDecorate", Class: ClassAnnotation,
		Operands: []OperandDescriptor{
			op(KindID, "structType"), op(KindLiteralInteger, "member"), op(KindEnumDecoration, "decoration"),
			variadic(KindLiteralInteger, "extra"),
		}})
	reg(Entry{Opcode: spirv.OpDecorationGroup, Name: "OpDecorationGroup", Class: ClassAnnotation, HasResult: true})
	reg(Entry{Opcode: spirv.OpGroupDecorate, Name: "OpGroupDecorate", Class: ClassAnnotation,
		Operands: []OperandDescriptor{op(KindID, "group"), variadic(KindID, "targets")}})
	reg(Entry{Opcode: spirv.OpGroupMemberDecorate, Name: "OpGroupMemberDecorate", Class: ClassAnnotation,
		Operands: []OperandDescriptor{op(KindID, "group"), variadic(KindPairLiteralIDU32, "targets")}})
}
