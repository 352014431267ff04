package ir

import (
	"testing"

	"github.com/gogpu/spirvcore/grammar"
	"github.com/gogpu/spirvcore/spirv"
)

// minimalShader is %void = OpTypeVoid / %fn = OpTypeFunction %void / an
// exported function with an empty entry block that returns.
func minimalShader() *spirv.Module {
	const (
		void = 1
		fnty = 2
		main = 3
		blk  = 4
	)
	return &spirv.Module{
		Version:   0x00010300,
		Generator: 0,
		Bound:     5,
		Instructions: []spirv.Instruction{
			{Opcode: spirv.OpCapability, Words: []uint32{uint32(spirv.CapabilityShader)}},
			{Opcode: spirv.OpMemoryModel, Words: []uint32{uint32(spirv.AddressingLogical), uint32(spirv.MemoryModelGLSL450)}},
			{Opcode: spirv.OpEntryPoint, Words: append([]uint32{uint32(spirv.ExecutionVertex), main}, grammar.EncodeString("main")...)},
			{Opcode: spirv.OpTypeVoid, Words: []uint32{void}},
			{Opcode: spirv.OpTypeFunction, Words: []uint32{fnty, void}},
			{Opcode: spirv.OpFunction, Words: []uint32{void, main, uint32(spirv.FunctionControlNone), fnty}},
			{Opcode: spirv.OpLabel, Words: []uint32{blk}},
			{Opcode: spirv.OpReturn},
			{Opcode: spirv.OpFunctionEnd},
		},
	}
}

func TestRoundTripMinimalShader(t *testing.T) {
	m := minimalShader()

	program, err := Build(m)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if program.Functions.Len() != 1 {
		t.Fatalf("expected 1 function, got %d", program.Functions.Len())
	}
	if len(program.EntryPoints) != 1 || program.EntryPoints[0].Name != "main" {
		t.Fatalf("expected entry point %q, got %+v", "main", program.EntryPoints)
	}

	fn, ok := program.Functions.Get(ID(3))
	if !ok {
		t.Fatalf("function %%3 not found")
	}
	if fn.Blocks.Len() != 1 {
		t.Fatalf("expected 1 block, got %d", fn.Blocks.Len())
	}
	blk, ok := fn.Blocks.Get(fn.EntryBlock)
	if !ok {
		t.Fatalf("entry block not found")
	}
	if _, ok := blk.Terminator.(Return); !ok {
		t.Fatalf("expected Return terminator, got %T", blk.Terminator)
	}

	out, err := Emit(program)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if out.Bound == 0 {
		t.Fatal("expected non-zero bound after emit")
	}

	roundTripped, err := Build(out)
	if err != nil {
		t.Fatalf("Build(Emit(program)): %v", err)
	}
	if roundTripped.Functions.Len() != 1 {
		t.Fatalf("round-tripped module: expected 1 function, got %d", roundTripped.Functions.Len())
	}
	if len(roundTripped.EntryPoints) != 1 || roundTripped.EntryPoints[0].Name != "main" {
		t.Fatalf("round-tripped module: expected entry point %q, got %+v", "main", roundTripped.EntryPoints)
	}
}
