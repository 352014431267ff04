package grammar

import "github.com/gogpu/spirvcore/spirv"

func registerControlFlow() {
	reg(Entry{Opcode: spirv.OpPhi, Name: "OpPhi", Class: ClassControlFlow, HasResultType: true, HasResult: true,
		Operands: []OperandDescriptor{variadic(KindPairIDIDU32, "variablesAndParents")}})
	reg(Entry{Opcode: spirv.OpLoopMerge, Name: "OpLoopMerge", Class: ClassControlFlow,
		Operands: []OperandDescriptor{
			op(KindID, "mergeBlock"), op(KindID, "continueTarget"), op(KindEnumLoopControl, "control"),
			variadic(KindLiteralInteger, "controlParameters"),
		}})
	reg(Entry{Opcode: spirv.OpSelectionMerge, Name: "OpSelectionMerge", Class: ClassControlFlow,
		Operands: []OperandDescriptor{op(KindID, "mergeBlock"), op(KindEnumSelectionControl, "control")}})
	reg(Entry{Opcode: spirv.OpLabel, Name: "OpLabel", Class: ClassControlFlow, HasResult: true})
	reg(Entry{Opcode: spirv.OpBranch, Name: "OpBranch", Class: ClassControlFlow,
		Operands: []OperandDescriptor{op(KindID, "target")}})
	reg(Entry{Opcode: spirv.OpBranchConditional, Name: "OpBranchConditional", Class: ClassControlFlow,
		Operands: []OperandDescriptor{
			op(KindID, "condition"), op(KindID, "trueLabel"), op(KindID, "falseLabel"),
			variadic(KindLiteralInteger, "weights"),
		}})
	reg(Entry{Opcode: spirv.OpSwitch, Name: "OpSwitch", Class: ClassControlFlow,
		Operands: []OperandDescriptor{
			op(KindID, "selector"), op(KindID, "defaultTarget"), variadic(KindPairLiteralIDU32, "targets"),
		}})
	reg(Entry{Opcode: spirv.OpKill, Name: "OpKill", Class: ClassControlFlow})
	reg(Entry{Opcode: spirv.OpReturn, Name: "OpReturn", Class: ClassControlFlow})
	reg(Entry{Opcode: spirv.OpReturnValue, Name: "OpReturnValue", Class: ClassControlFlow,
		Operands: []OperandDescriptor{op(KindID, "value")}})
	reg(Entry{Opcode: spirv.OpUnreachable, Name: "OpUnreachable", Class: ClassControlFlow})
}
