package asm

import (
	"github.com/gogpu/spirvcore/grammar"
	"github.com/gogpu/spirvcore/spirv"
)

// Equivalent reports whether a and b are the same module up to a consistent
// renaming of ids: same instructions in the same order, same non-id operand
// values, with every id reference mapped by one bijection built up as
// matching ids are encountered together.
func Equivalent(a, b *spirv.Module) bool {
	if a.Version != b.Version || len(a.Instructions) != len(b.Instructions) {
		return false
	}

	fwd := make(map[uint32]uint32)
	bwd := make(map[uint32]uint32)
	unify := func(x, y uint32) bool {
		if x == 0 || y == 0 {
			return x == y
		}
		if fx, ok := fwd[x]; ok {
			return fx == y
		}
		if _, ok := bwd[y]; ok {
			return false
		}
		fwd[x] = y
		bwd[y] = x
		return true
	}

	for i := range a.Instructions {
		ia, ib := a.Instructions[i], b.Instructions[i]
		if ia.Opcode != ib.Opcode {
			return false
		}
		rtA, resA, opsA, errA := grammar.Split(ia)
		rtB, resB, opsB, errB := grammar.Split(ib)
		if (errA == nil) != (errB == nil) {
			return false
		}
		if errA != nil {
			if len(ia.Words) != len(ib.Words) {
				return false
			}
			for j := range ia.Words {
				if ia.Words[j] != ib.Words[j] {
					return false
				}
			}
			continue
		}
		if !unify(uint32(rtA), uint32(rtB)) || !unify(uint32(resA), uint32(resB)) {
			return false
		}
		if len(opsA) != len(opsB) {
			return false
		}
		for j := range opsA {
			if !equivalentValue(opsA[j], opsB[j], unify) {
				return false
			}
		}
	}
	return true
}

// equivalentValue compares two structured operand values, routing id words
// through unify and requiring every other word to match exactly.
func equivalentValue(va, vb grammar.Value, unify func(x, y uint32) bool) bool {
	if va.Kind != vb.Kind {
		return false
	}
	switch va.Kind {
	case grammar.KindID:
		return unify(uint32(va.ID), uint32(vb.ID))
	case grammar.KindLiteralString:
		return va.Str == vb.Str
	case grammar.KindPairIDIDU32:
		return unify(va.Words[0], vb.Words[0]) && unify(va.Words[1], vb.Words[1])
	case grammar.KindPairLiteralIDU32:
		return va.Words[0] == vb.Words[0] && unify(va.Words[1], vb.Words[1])
	default:
		if len(va.Words) != len(vb.Words) {
			return false
		}
		for i := range va.Words {
			if va.Words[i] != vb.Words[i] {
				return false
			}
		}
		return true
	}
}
