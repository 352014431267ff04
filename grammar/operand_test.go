package grammar

import (
	"testing"

	"github.com/gogpu/spirvcore/spirv"
)

func TestEncodeDecodeString(t *testing.T) {
	for _, s := range []string{"", "a", "main", "exactly8", "nine char"} {
		words := EncodeString(s)
		got, consumed := decodeString(words)
		if got != s {
			t.Errorf("EncodeString/decodeString(%q): got %q", s, got)
		}
		if consumed != len(words) {
			t.Errorf("EncodeString/decodeString(%q): consumed %d of %d words", s, consumed, len(words))
		}
	}
}

func TestSplitEntryPoint(t *testing.T) {
	words := append([]uint32{0, 5}, EncodeString("main")...)
	words = append(words, 6, 7)
	instr := spirv.Instruction{Opcode: spirv.OpEntryPoint, Words: words}

	_, _, operands, err := Split(instr)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(operands) != 5 {
		t.Fatalf("expected model, entryPoint, name, and 2 interface ids as 5 operands, got %d: %+v", len(operands), operands)
	}
	if operands[2].Kind != KindLiteralString || operands[2].Str != "main" {
		t.Errorf("expected decoded name %q, got %+v", "main", operands[2])
	}
	if operands[3].Kind != KindID || operands[3].ID != 6 {
		t.Errorf("expected first interface id 6, got %+v", operands[3])
	}
}

func TestSplitUnknownOpcode(t *testing.T) {
	instr := spirv.Instruction{Opcode: spirv.Opcode(0xfff), Words: nil}
	if _, _, _, err := Split(instr); err == nil {
		t.Fatal("expected error for unknown opcode")
	}
}
