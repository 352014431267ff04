package ir

import "github.com/gogpu/spirvcore/spirverr"

// Validate checks the structural invariants the rest of the toolchain
// depends on holding, in the style of naga's own IR validator
// (ir/validate.go): every function has at least one block and its entry
// block is one of them, every block has a terminator, and every terminator
// targets a block of the same function. Operand ids are not checked against
// the ids the module defines. It is not a substitute for the external validator bridged in
// package validator, which checks full SPIR-V semantic validity; this is a
// cheaper, in-process sanity pass over the IR's own invariants.
func Validate(program *IR) error {
	known := make(map[ID]bool)
	program.Types.Each(func(i ID, _ Type) { known[i] = true })
	program.Constants.Each(func(i ID, _ Constant) { known[i] = true })
	program.Globals.Each(func(i ID, _ Global) { known[i] = true })
	program.ExtInstImports.Each(func(i ID, _ string) { known[i] = true })
	program.Functions.Each(func(i ID, fn FunctionDef) {
		known[i] = true
		for _, p := range fn.Parameters {
			known[p] = true
		}
		fn.Blocks.Each(func(lbl ID, blk Block) {
			known[lbl] = true
			for _, phi := range blk.Phis {
				known[phi.Result] = true
			}
			for _, instr := range blk.Body {
				if instr.Result != 0 {
					known[instr.Result] = true
				}
			}
		})
	})

	var err error
	program.Functions.Each(func(fnID ID, fn FunctionDef) {
		if err != nil {
			return
		}
		if fn.Blocks.Len() == 0 {
			err = &spirverr.InvariantViolation{Detail: "function has no blocks"}
			return
		}
		if !fn.EntryBlock.Valid() || !fn.Blocks.Has(fn.EntryBlock) {
			err = &spirverr.InvariantViolation{Detail: "function entry block is not one of its own blocks"}
			return
		}
		fn.Blocks.Each(func(lbl ID, blk Block) {
			if err != nil {
				return
			}
			if blk.Terminator == nil {
				err = &spirverr.InvariantViolation{Detail: "block has no terminator"}
				return
			}
			for _, target := range Successors(blk.Terminator) {
				if !fn.Blocks.Has(target) {
					err = &spirverr.InvariantViolation{Detail: "terminator targets a block outside the function"}
					return
				}
			}
		})
	})
	return err
}

// Successors returns the block ids a terminator transfers control to. The
// cfg package builds its graph directly from this, so block validation here
// and edge construction there stay consistent by construction.
func Successors(t Terminator) []ID {
	switch v := t.(type) {
	case Branch:
		return []ID{v.Target}
	case BranchConditional:
		return []ID{v.True, v.False}
	case Switch:
		out := make([]ID, 0, len(v.Cases)+1)
		out = append(out, v.Default)
		for _, c := range v.Cases {
			out = append(out, c.Target)
		}
		return out
	default:
		return nil
	}
}
