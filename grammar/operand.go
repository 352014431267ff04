package grammar

import (
	"encoding/binary"
	"strings"

	"github.com/gogpu/spirvcore/id"
	"github.com/gogpu/spirvcore/spirv"
	"github.com/gogpu/spirvcore/spirverr"
)

// Value is one decoded, grammar-interpreted operand: either an id reference,
// a literal word sequence (integer, number, or enum), or a literal string.
// This is the structured form spirv.Instruction.Words graduates into once
// matched against an Entry.
type Value struct {
	Kind  Kind
	ID    id.ID
	Words []uint32
	Str   string
}

// Split interprets instr's raw words against its grammar entry, returning
// the result type id (zero if none), the result id (zero if none), and the
// ordered list of structured operand values.
func Split(instr spirv.Instruction) (resultType id.ID, result id.ID, operands []Value, err error) {
	entry, ok := Lookup(instr.Opcode)
	if !ok {
		return 0, 0, nil, &spirverr.UnknownOpcode{Opcode: uint16(instr.Opcode)}
	}

	words := instr.Words
	pos := 0
	next := func() (uint32, bool) {
		if pos >= len(words) {
			return 0, false
		}
		w := words[pos]
		pos++
		return w, true
	}

	if entry.HasResultType {
		w, ok := next()
		if !ok {
			return 0, 0, nil, &spirverr.InvariantViolation{Detail: entry.Name + ": missing result type word"}
		}
		resultType = id.ID(w)
	}
	if entry.HasResult {
		w, ok := next()
		if !ok {
			return 0, 0, nil, &spirverr.InvariantViolation{Detail: entry.Name + ": missing result id word"}
		}
		result = id.ID(w)
	}

	for _, desc := range entry.Operands {
		if desc.Quantifier == Variadic {
			for pos < len(words) {
				v, consumed, err := decodeOne(desc.Kind, words[pos:])
				if err != nil {
					return 0, 0, nil, err
				}
				operands = append(operands, v)
				pos += consumed
			}
			continue
		}
		if pos >= len(words) {
			if desc.Quantifier == Optional {
				continue
			}
			return 0, 0, nil, &spirverr.InvariantViolation{Detail: entry.Name + ": missing required operand " + desc.Name}
		}
		v, consumed, err := decodeOne(desc.Kind, words[pos:])
		if err != nil {
			return 0, 0, nil, err
		}
		operands = append(operands, v)
		pos += consumed
	}
	return resultType, result, operands, nil
}

// decodeOne decodes a single operand of the given kind from the front of
// remaining, returning how many words it consumed.
func decodeOne(kind Kind, remaining []uint32) (Value, int, error) {
	switch kind {
	case KindLiteralString:
		s, n := decodeString(remaining)
		return Value{Kind: kind, Str: s}, n, nil
	case KindPairIDIDU32, KindPairLiteralIDU32:
		if len(remaining) < 2 {
			return Value{}, 0, &spirverr.InvariantViolation{Detail: "truncated operand pair"}
		}
		return Value{Kind: kind, Words: []uint32{remaining[0], remaining[1]}}, 2, nil
	case KindLiteralNumber:
		// Numeric literals consume the rest of the instruction's words; the
		// caller (grammar.Split) only ever places this kind last via
		// Variadic, so "rest" here means exactly the words still unclaimed.
		return Value{Kind: kind, Words: append([]uint32(nil), remaining...)}, len(remaining), nil
	default:
		// IDs, plain literal integers, and all Enum* kinds are a single word.
		v := Value{Kind: kind, Words: []uint32{remaining[0]}}
		if kind == KindID {
			v.ID = id.ID(remaining[0])
		}
		return v, 1, nil
	}
}

// decodeString decodes a NUL-terminated, word-padded UTF-8 string starting
// at the front of words, returning the string and the number of words consumed.
func decodeString(words []uint32) (string, int) {
	var b strings.Builder
	consumed := 0
	for _, w := range words {
		consumed++
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], w)
		done := false
		for _, c := range buf {
			if c == 0 {
				done = true
				break
			}
			b.WriteByte(c)
		}
		if done {
			break
		}
	}
	return b.String(), consumed
}

// EncodeString packs s into NUL-terminated, word-padded form.
func EncodeString(s string) []uint32 {
	bytes := append([]byte(s), 0)
	for len(bytes)%4 != 0 {
		bytes = append(bytes, 0)
	}
	words := make([]uint32, len(bytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(bytes[i*4 : i*4+4])
	}
	return words
}
