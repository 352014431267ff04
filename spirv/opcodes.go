// Package spirv implements the SPIR-V word codec and instruction model: the
// binary word-stream format described in spec.md §4.1/§4.2/§6 and the flat,
// pre-structured Module it decodes to.
//
// The opcode numbering and enum tables below are lifted directly from naga's
// from-scratch disassembler (cmd/spvdis/main.go), which already hand-wrote
// the subset of the real Khronos SPIR-V opcode and enum space this toolchain
// needs; gaps that disassembler never printed are filled in with the same
// published numbering.
package spirv

import "strconv"

// Opcode identifies a SPIR-V instruction's operation.
type Opcode uint16

// Opcode values, in the same numbering naga's disassembler recognizes.
const (
	OpNop              Opcode = 0
	OpUndef            Opcode = 1
	OpSourceContinued  Opcode = 2
	OpSource           Opcode = 3
	OpSourceExtension  Opcode = 4
	OpName             Opcode = 5
	OpMemberName       Opcode = 6
	OpString           Opcode = 7
	OpLine             Opcode = 8
	OpExtension        Opcode = 10
	OpExtInstImport    Opcode = 11
	OpExtInst          Opcode = 12
	OpMemoryModel      Opcode = 14
	OpEntryPoint       Opcode = 15
	OpExecutionMode    Opcode = 16
	OpCapability       Opcode = 17
	OpTypeVoid         Opcode = 19
	OpTypeBool         Opcode = 20
	OpTypeInt          Opcode = 21
	OpTypeFloat        Opcode = 22
	OpTypeVector       Opcode = 23
	OpTypeMatrix       Opcode = 24
	OpTypeImage        Opcode = 25
	OpTypeSampler      Opcode = 26
	OpTypeSampledImage Opcode = 27
	OpTypeArray        Opcode = 28
	OpTypeRuntimeArray Opcode = 29
	OpTypeStruct       Opcode = 30
	OpTypeOpaque       Opcode = 31
	OpTypePointer      Opcode = 32
	OpTypeFunction     Opcode = 33

	OpTypeForwardPointer Opcode = 39

	OpConstantTrue          Opcode = 41
	OpConstantFalse         Opcode = 42
	OpConstant              Opcode = 43
	OpConstantComposite     Opcode = 44
	OpConstantSampler       Opcode = 45
	OpConstantNull          Opcode = 46
	OpSpecConstantTrue      Opcode = 48
	OpSpecConstantFalse     Opcode = 49
	OpSpecConstant          Opcode = 50
	OpSpecConstantComposite Opcode = 51
	OpSpecConstantOp        Opcode = 52

	OpFunction          Opcode = 54
	OpFunctionParameter Opcode = 55
	OpFunctionEnd       Opcode = 56
	OpFunctionCall      Opcode = 57

	OpVariable               Opcode = 59
	OpImageTexelPointer      Opcode = 60
	OpLoad                   Opcode = 61
	OpStore                  Opcode = 62
	OpCopyMemory             Opcode = 63
	OpCopyMemorySized        Opcode = 64
	OpAccessChain            Opcode = 65
	OpInBoundsAccessChain    Opcode = 66
	OpPtrAccessChain         Opcode = 67
	OpArrayLength            Opcode = 68
	OpGenericPtrMemSemantics Opcode = 69
	OpInBoundsPtrAccessChain Opcode = 70

	OpDecorate           Opcode = 71
	OpMemberDecorate     Opcode = 72
	OpDecorationGroup    Opcode = 73
	OpGroupDecorate      Opcode = 74
	OpGroupMemberDecorate Opcode = 75

	OpVectorExtractDynamic Opcode = 77
	OpVectorInsertDynamic  Opcode = 78
	OpVectorShuffle        Opcode = 79
	OpCompositeConstruct   Opcode = 80
	OpCompositeExtract     Opcode = 81
	OpCompositeInsert      Opcode = 82
	OpCopyObject           Opcode = 83
	OpTranspose            Opcode = 84

	OpSampledImage           Opcode = 86
	OpImageSampleImplicitLod Opcode = 87
	OpImageSampleExplicitLod Opcode = 88
	OpImageFetch             Opcode = 95
	OpImageRead              Opcode = 98
	OpImageWrite             Opcode = 99

	OpConvertFToU Opcode = 109
	OpConvertFToS Opcode = 110
	OpConvertSToF Opcode = 111
	OpConvertUToF Opcode = 112
	OpUConvert    Opcode = 113
	OpSConvert    Opcode = 114
	OpFConvert    Opcode = 115
	OpBitcast     Opcode = 124

	OpSNegate Opcode = 126
	OpFNegate Opcode = 127
	OpIAdd    Opcode = 128
	OpFAdd    Opcode = 129
	OpISub    Opcode = 130
	OpFSub    Opcode = 131
	OpIMul    Opcode = 132
	OpFMul    Opcode = 133
	OpUDiv    Opcode = 134
	OpSDiv    Opcode = 135
	OpFDiv    Opcode = 136
	OpUMod    Opcode = 137
	OpSRem    Opcode = 138
	OpSMod    Opcode = 139
	OpFRem    Opcode = 140
	OpFMod    Opcode = 141

	OpVectorTimesScalar Opcode = 142
	OpMatrixTimesScalar Opcode = 143
	OpVectorTimesMatrix Opcode = 144
	OpMatrixTimesVector Opcode = 145
	OpMatrixTimesMatrix Opcode = 146
	OpDot               Opcode = 148

	OpAny     Opcode = 164
	OpAll     Opcode = 165
	OpIsNan   Opcode = 166
	OpIsInf   Opcode = 167

	OpLogicalEqual    Opcode = 174
	OpLogicalNotEqual Opcode = 175
	OpLogicalOr       Opcode = 176
	OpLogicalAnd      Opcode = 177
	OpLogicalNot      Opcode = 178
	OpSelect          Opcode = 179
	OpIEqual          Opcode = 180
	OpINotEqual       Opcode = 181

	OpUGreaterThan      Opcode = 182
	OpSGreaterThan      Opcode = 183
	OpUGreaterThanEqual Opcode = 184
	OpSGreaterThanEqual Opcode = 185
	OpULessThan         Opcode = 186
	OpSLessThan         Opcode = 187
	OpULessThanEqual    Opcode = 188
	OpSLessThanEqual    Opcode = 189

	OpFOrdEqual       Opcode = 190
	OpFUnordEqual     Opcode = 191
	OpFOrdNotEqual    Opcode = 192
	OpFUnordNotEqual  Opcode = 193
	OpShiftRightLogical    Opcode = 194
	OpShiftRightArithmetic Opcode = 195
	OpShiftLeftLogical     Opcode = 196
	OpBitwiseOr            Opcode = 197
	OpBitwiseXor           Opcode = 198
	OpBitwiseAnd           Opcode = 199
	OpNot                  Opcode = 200

	OpPhi            Opcode = 245
	OpLoopMerge      Opcode = 246
	OpSelectionMerge Opcode = 247
	OpLabel          Opcode = 248
	OpBranch         Opcode = 249
	OpBranchConditional Opcode = 250
	OpSwitch         Opcode = 251
	OpKill           Opcode = 252
	OpReturn         Opcode = 253
	OpReturnValue    Opcode = 254
	OpUnreachable    Opcode = 255

	OpModuleProcessed Opcode = 330
	OpExecutionModeId Opcode = 331
	OpDecorateId      Opcode = 332
	OpNoLine          Opcode = 317
)

var opcodeNames = map[Opcode]string{
	OpNop: "OpNop", OpUndef: "OpUndef", OpSourceContinued: "OpSourceContinued",
	OpSource: "OpSource", OpSourceExtension: "OpSourceExtension", OpName: "OpName",
	OpMemberName: "OpMemberName", OpString: "OpString", OpLine: "OpLine",
	OpExtension: "OpExtension", OpExtInstImport: "OpExtInstImport", OpExtInst: "OpExtInst",
	OpMemoryModel: "OpMemoryModel", OpEntryPoint: "OpEntryPoint", OpExecutionMode: "OpExecutionMode",
	OpCapability: "OpCapability",
	OpTypeVoid: "OpTypeVoid", OpTypeBool: "OpTypeBool", OpTypeInt: "OpTypeInt",
	OpTypeFloat: "OpTypeFloat", OpTypeVector: "OpTypeVector", OpTypeMatrix: "OpTypeMatrix",
	OpTypeImage: "OpTypeImage", OpTypeSampler: "OpTypeSampler", OpTypeSampledImage: "OpTypeSampledImage",
	OpTypeArray: "OpTypeArray", OpTypeRuntimeArray: "OpTypeRuntimeArray", OpTypeStruct: "OpTypeStruct",
	OpTypeOpaque: "OpTypeOpaque", OpTypePointer: "OpTypePointer", OpTypeFunction: "OpTypeFunction",
	OpTypeForwardPointer: "OpTypeForwardPointer",
	OpConstantTrue: "OpConstantTrue", OpConstantFalse: "OpConstantFalse", OpConstant: "OpConstant",
	OpConstantComposite: "OpConstantComposite", OpConstantSampler: "OpConstantSampler", OpConstantNull: "OpConstantNull",
	OpSpecConstantTrue: "OpSpecConstantTrue", OpSpecConstantFalse: "OpSpecConstantFalse",
	OpSpecConstant: "OpSpecConstant", OpSpecConstantComposite: "OpSpecConstantComposite", OpSpecConstantOp: "OpSpecConstantOp",
	OpFunction: "OpFunction", OpFunctionParameter: "OpFunctionParameter", OpFunctionEnd: "OpFunctionEnd",
	OpFunctionCall: "OpFunctionCall",
	OpVariable: "OpVariable", OpImageTexelPointer: "OpImageTexelPointer", OpLoad: "OpLoad", OpStore: "OpStore",
	OpCopyMemory: "OpCopyMemory", OpCopyMemorySized: "OpCopyMemorySized",
	OpAccessChain: "OpAccessChain", OpInBoundsAccessChain: "OpInBoundsAccessChain",
	OpPtrAccessChain: "OpPtrAccessChain", OpArrayLength: "OpArrayLength",
	OpGenericPtrMemSemantics: "OpGenericPtrMemSemantics", OpInBoundsPtrAccessChain: "OpInBoundsPtrAccessChain",
	OpDecorate: "OpDecorate", OpMemberDecorate: "OpMemberDecorate", OpDecorationGroup: "OpDecorationGroup",
	OpGroupDecorate: "OpGroupDecorate", OpGroupMemberDecorate: "OpGroupMemberDecorate",
	OpVectorExtractDynamic: "OpVectorExtractDynamic", OpVectorInsertDynamic: "OpVectorInsertDynamic",
	OpVectorShuffle: "OpVectorShuffle", OpCompositeConstruct: "OpCompositeConstruct",
	OpCompositeExtract: "OpCompositeExtract", OpCompositeInsert: "OpCompositeInsert",
	OpCopyObject: "OpCopyObject", OpTranspose: "OpTranspose",
	OpSampledImage: "OpSampledImage", OpImageSampleImplicitLod: "OpImageSampleImplicitLod",
	OpImageSampleExplicitLod: "OpImageSampleExplicitLod", OpImageFetch: "OpImageFetch",
	OpImageRead: "OpImageRead", OpImageWrite: "OpImageWrite",
	OpConvertFToU: "OpConvertFToU", OpConvertFToS: "OpConvertFToS", OpConvertSToF: "OpConvertSToF",
	OpConvertUToF: "OpConvertUToF", OpUConvert: "OpUConvert", OpSConvert: "OpSConvert",
	OpFConvert: "OpFConvert", OpBitcast: "OpBitcast",
	OpSNegate: "OpSNegate", OpFNegate: "OpFNegate", OpIAdd: "OpIAdd", OpFAdd: "OpFAdd",
	OpISub: "OpISub", OpFSub: "OpFSub", OpIMul: "OpIMul", OpFMul: "OpFMul",
	OpUDiv: "OpUDiv", OpSDiv: "OpSDiv", OpFDiv: "OpFDiv", OpUMod: "OpUMod",
	OpSRem: "OpSRem", OpSMod: "OpSMod", OpFRem: "OpFRem", OpFMod: "OpFMod",
	OpVectorTimesScalar: "OpVectorTimesScalar", OpMatrixTimesScalar: "OpMatrixTimesScalar",
	OpVectorTimesMatrix: "OpVectorTimesMatrix", OpMatrixTimesVector: "OpMatrixTimesVector",
	OpMatrixTimesMatrix: "OpMatrixTimesMatrix", OpDot: "OpDot",
	OpAny: "OpAny", OpAll: "OpAll", OpIsNan: "OpIsNan", OpIsInf: "OpIsInf",
	OpLogicalEqual: "OpLogicalEqual", OpLogicalNotEqual: "OpLogicalNotEqual",
	OpLogicalOr: "OpLogicalOr", OpLogicalAnd: "OpLogicalAnd", OpLogicalNot: "OpLogicalNot",
	OpSelect: "OpSelect", OpIEqual: "OpIEqual", OpINotEqual: "OpINotEqual",
	OpUGreaterThan: "OpUGreaterThan", OpSGreaterThan: "OpSGreaterThan",
	OpUGreaterThanEqual: "OpUGreaterThanEqual", OpSGreaterThanEqual: "OpSGreaterThanEqual",
	OpULessThan: "OpULessThan", OpSLessThan: "OpSLessThan",
	OpULessThanEqual: "OpULessThanEqual", OpSLessThanEqual: "OpSLessThanEqual",
	OpFOrdEqual: "OpFOrdEqual", OpFUnordEqual: "OpFUnordEqual",
	OpFOrdNotEqual: "OpFOrdNotEqual", OpFUnordNotEqual: "OpFUnordNotEqual",
	OpShiftRightLogical: "OpShiftRightLogical", OpShiftRightArithmetic: "OpShiftRightArithmetic",
	OpShiftLeftLogical: "OpShiftLeftLogical", OpBitwiseOr: "OpBitwiseOr",
	OpBitwiseXor: "OpBitwiseXor", OpBitwiseAnd: "OpBitwiseAnd", OpNot: "OpNot",
	OpPhi: "OpPhi", OpLoopMerge: "OpLoopMerge", OpSelectionMerge: "OpSelectionMerge",
	OpLabel: "OpLabel", OpBranch: "OpBranch", OpBranchConditional: "OpBranchConditional",
	OpSwitch: "OpSwitch", OpKill: "OpKill", OpReturn: "OpReturn", OpReturnValue: "OpReturnValue",
	OpUnreachable: "OpUnreachable",
	OpModuleProcessed: "OpModuleProcessed", OpExecutionModeId: "OpExecutionModeId",
	OpDecorateId: "OpDecorateId", OpNoLine: "OpNoLine",
}

var opcodeByName map[string]Opcode

func init() {
	opcodeByName = make(map[string]Opcode, len(opcodeNames))
	for op, name := range opcodeNames {
		opcodeByName[name] = op
	}
}

// String renders an opcode's mnemonic, or "Op<n>" if unknown.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "Op" + strconv.Itoa(int(op))
}

// OpcodeByName resolves a mnemonic (e.g. "OpFunctionEnd") back to its Opcode.
func OpcodeByName(name string) (Opcode, bool) {
	op, ok := opcodeByName[name]
	return op, ok
}
