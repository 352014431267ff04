package spirv

import (
	"encoding/binary"
	"io"

	"github.com/gogpu/spirvcore/spirverr"
)

// MagicNumber is the canonical SPIR-V magic word, little-endian on the wire.
const MagicNumber uint32 = 0x07230203

const headerWords = 5

// ReadModule decodes a full SPIR-V binary word stream into a Module. It
// detects the stream's byte order from the magic word (comparing it against
// both the canonical and byte-swapped forms) and transparently byte-swaps
// every word read thereafter, per the scenario worked through in the
// specification's detection walkthrough.
func ReadModule(r io.Reader) (*Module, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw) < headerWords*4 {
		return nil, &spirverr.TruncatedStream{Offset: 0, WordCount: headerWords, Remaining: len(raw) / 4}
	}

	order, err := detectByteOrder(raw)
	if err != nil {
		return nil, err
	}

	words := make([]uint32, len(raw)/4)
	for i := range words {
		words[i] = order.Uint32(raw[i*4 : i*4+4])
	}

	m := &Module{
		Version:   words[1],
		Generator: words[2],
		Bound:     words[3],
		Schema:    words[4],
	}

	pos := headerWords
	for pos < len(words) {
		header := words[pos]
		wordCount := int(header >> 16)
		opcode := Opcode(header & 0xffff)
		if wordCount == 0 || pos+wordCount > len(words) {
			return nil, &spirverr.TruncatedStream{Offset: pos, WordCount: wordCount, Remaining: len(words) - pos}
		}
		operands := make([]uint32, wordCount-1)
		copy(operands, words[pos+1:pos+wordCount])
		m.Instructions = append(m.Instructions, Instruction{Opcode: opcode, Words: operands})
		pos += wordCount
	}
	return m, nil
}

// detectByteOrder compares the stream's first word against the canonical
// and byte-swapped magic numbers to determine whether the producer wrote
// little-endian or big-endian words.
func detectByteOrder(raw []byte) (binary.ByteOrder, error) {
	le := binary.LittleEndian.Uint32(raw[0:4])
	if le == MagicNumber {
		return binary.LittleEndian, nil
	}
	be := binary.BigEndian.Uint32(raw[0:4])
	if be == MagicNumber {
		return binary.BigEndian, nil
	}
	got := le
	return nil, &spirverr.MalformedHeader{Got: got}
}

// WriteModule encodes a Module to its canonical little-endian binary form.
func WriteModule(w io.Writer, m *Module) error {
	buf := make([]byte, 0, headerWords*4)
	buf = binary.LittleEndian.AppendUint32(buf, MagicNumber)
	buf = binary.LittleEndian.AppendUint32(buf, m.Version)
	buf = binary.LittleEndian.AppendUint32(buf, m.Generator)
	buf = binary.LittleEndian.AppendUint32(buf, m.Bound)
	buf = binary.LittleEndian.AppendUint32(buf, m.Schema)
	if _, err := w.Write(buf); err != nil {
		return err
	}

	for _, instr := range m.Instructions {
		wordCount := instr.WordCount()
		header := uint32(wordCount<<16) | uint32(instr.Opcode)
		word := make([]byte, 4)
		binary.LittleEndian.PutUint32(word, header)
		if _, err := w.Write(word); err != nil {
			return err
		}
		for _, v := range instr.Words {
			binary.LittleEndian.PutUint32(word, v)
			if _, err := w.Write(word); err != nil {
				return err
			}
		}
	}
	return nil
}

// Decode is the convenience entry point matching the specification's
// external Go API surface.
func Decode(r io.Reader) (*Module, error) { return ReadModule(r) }

// Encode is the convenience entry point matching the specification's
// external Go API surface.
func Encode(w io.Writer, m *Module) error { return WriteModule(w, m) }
