package asm

import (
	"strings"
	"testing"

	"github.com/gogpu/spirvcore/grammar"
	"github.com/gogpu/spirvcore/spirv"
)

// sampleExtInstModule builds a module that imports GLSL.std.450 and calls
// its Sqrt (instruction number 31) entry, to exercise the symbolic
// rendering of OpExtInst's instruction-number operand.
func sampleExtInstModule() *spirv.Module {
	importWords := append([]uint32{5}, grammar.EncodeString("GLSL.std.450")...)
	return &spirv.Module{
		Version:   0x00010300,
		Generator: 0,
		Bound:     7,
		Instructions: []spirv.Instruction{
			{Opcode: spirv.OpCapability, Words: []uint32{uint32(spirv.CapabilityShader)}},
			{Opcode: spirv.OpExtInstImport, Words: importWords},
			{Opcode: spirv.OpMemoryModel, Words: []uint32{uint32(spirv.AddressingLogical), uint32(spirv.MemoryModelGLSL450)}},
			{Opcode: spirv.OpTypeFloat, Words: []uint32{1, 32}},
			{Opcode: spirv.OpExtInst, Words: []uint32{1, 6, 5, 31, 2}},
		},
	}
}

func sampleModule() *spirv.Module {
	return &spirv.Module{
		Version:   0x00010300,
		Generator: 0,
		Bound:     4,
		Instructions: []spirv.Instruction{
			{Opcode: spirv.OpCapability, Words: []uint32{uint32(spirv.CapabilityShader)}},
			{Opcode: spirv.OpMemoryModel, Words: []uint32{uint32(spirv.AddressingLogical), uint32(spirv.MemoryModelGLSL450)}},
			{Opcode: spirv.OpTypeVoid, Words: []uint32{1}},
			{Opcode: spirv.OpTypeFunction, Words: []uint32{2, 1}},
			{Opcode: spirv.OpFunction, Words: []uint32{1, 3, uint32(spirv.FunctionControlNone), 2}},
			{Opcode: spirv.OpLabel, Words: []uint32{4}},
			{Opcode: spirv.OpReturn},
			{Opcode: spirv.OpFunctionEnd},
		},
	}
}

func TestDisassembleContainsExpectedMnemonics(t *testing.T) {
	text := Disassemble(sampleModule())
	for _, want := range []string{"OpCapability(Shader)", "OpMemoryModel(Logical, GLSL450)", "OpTypeVoid(", "OpFunction(", "OpReturn("} {
		if !strings.Contains(text, want) {
			t.Errorf("disassembly missing %q:\n%s", want, text)
		}
	}
}

func TestAssembleDisassembleRoundTrip(t *testing.T) {
	original := sampleModule()
	text := Disassemble(original)

	reassembled, err := Assemble(text)
	if err != nil {
		t.Fatalf("Assemble: %v\n%s", err, text)
	}

	if !Equivalent(original, reassembled) {
		t.Fatalf("reassembled module not equivalent to original:\n--original--\n%s\n--reassembled--\n%s",
			text, Disassemble(reassembled))
	}
}

func TestEquivalentDetectsStructuralDifference(t *testing.T) {
	a := sampleModule()
	b := sampleModule()
	b.Instructions[2].Words[0] = 99 // give OpTypeVoid a different result id than OpTypeFunction expects

	if Equivalent(a, b) {
		t.Fatal("expected modules with an inconsistent id renaming to be non-equivalent")
	}
}

func TestDisassembleResolvesExtInstNumber(t *testing.T) {
	text := Disassemble(sampleExtInstModule())
	if !strings.Contains(text, "Sqrt") {
		t.Errorf("expected OpExtInst instruction number 31 to disassemble as Sqrt:\n%s", text)
	}
	if strings.Contains(text, "0x0000001f") {
		t.Errorf("expected instruction number 31 not to fall back to raw hex:\n%s", text)
	}
}

func TestAssembleDisassembleRoundTripExtInst(t *testing.T) {
	original := sampleExtInstModule()
	text := Disassemble(original)

	reassembled, err := Assemble(text)
	if err != nil {
		t.Fatalf("Assemble: %v\n%s", err, text)
	}
	if !Equivalent(original, reassembled) {
		t.Fatalf("reassembled module not equivalent to original:\n--original--\n%s\n--reassembled--\n%s",
			text, Disassemble(reassembled))
	}
}

func TestAssembleRejectsUnknownOpcode(t *testing.T) {
	if _, err := Assemble("OpNotARealInstruction()\n"); err == nil {
		t.Fatal("expected error for unknown opcode")
	}
}
