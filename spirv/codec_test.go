package spirv

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	m := &Module{
		Version:   0x00010300,
		Generator: 42,
		Bound:     5,
		Schema:    0,
		Instructions: []Instruction{
			{Opcode: OpCapability, Words: []uint32{1}},
			{Opcode: OpMemoryModel, Words: []uint32{0, 1}},
			{Opcode: OpTypeVoid, Words: []uint32{2}},
			{Opcode: OpReturn},
		},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Version != m.Version || got.Generator != m.Generator || got.Bound != m.Bound {
		t.Fatalf("header mismatch: got %+v", got)
	}
	if len(got.Instructions) != len(m.Instructions) {
		t.Fatalf("instruction count: got %d, want %d", len(got.Instructions), len(m.Instructions))
	}
	for i, instr := range got.Instructions {
		want := m.Instructions[i]
		if instr.Opcode != want.Opcode || len(instr.Words) != len(want.Words) {
			t.Fatalf("instruction %d mismatch: got %+v, want %+v", i, instr, want)
		}
	}
}

// TestByteSwapDetection confirms a big-endian-written stream decodes
// identically to its little-endian twin: the magic word alone must be
// enough to pick the right byte order for the rest of the stream.
func TestByteSwapDetection(t *testing.T) {
	m := &Module{
		Version:   0x00010300,
		Generator: 7,
		Bound:     3,
		Schema:    0,
		Instructions: []Instruction{
			{Opcode: OpTypeVoid, Words: []uint32{1}},
			{Opcode: OpReturn},
		},
	}

	var little bytes.Buffer
	if err := Encode(&little, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	raw := little.Bytes()
	big := make([]byte, len(raw))
	for i := 0; i+4 <= len(raw); i += 4 {
		w := binary.LittleEndian.Uint32(raw[i : i+4])
		binary.BigEndian.PutUint32(big[i:i+4], w)
	}

	got, err := Decode(bytes.NewReader(big))
	if err != nil {
		t.Fatalf("Decode(big-endian): %v", err)
	}
	if got.Version != m.Version || got.Bound != m.Bound {
		t.Fatalf("big-endian decode mismatch: got %+v", got)
	}
	if len(got.Instructions) != len(m.Instructions) || got.Instructions[0].Opcode != OpTypeVoid {
		t.Fatalf("big-endian instruction decode mismatch: got %+v", got.Instructions)
	}
}

func TestMalformedHeader(t *testing.T) {
	raw := make([]byte, 20)
	binary.LittleEndian.PutUint32(raw[0:4], 0xdeadbeef)
	if _, err := Decode(bytes.NewReader(raw)); err == nil {
		t.Fatal("expected error for bad magic word")
	}
}

func TestTruncatedStream(t *testing.T) {
	m := &Module{Version: 0x00010300, Instructions: []Instruction{{Opcode: OpTypeVoid, Words: []uint32{1}}}}
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()-4]
	if _, err := Decode(bytes.NewReader(truncated)); err == nil {
		t.Fatal("expected truncation error")
	}
}
