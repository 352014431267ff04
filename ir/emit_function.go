package ir

import (
	"github.com/gogpu/spirvcore/spirv"
	"github.com/gogpu/spirvcore/spirverr"
)

func (e *emitter) emitFunctions() error {
	var outerErr error
	e.ir.Functions.Each(func(fnID ID, fn FunctionDef) {
		if outerErr != nil {
			return
		}
		e.m.Instructions = append(e.m.Instructions, spirv.Instruction{
			Opcode: spirv.OpFunction,
			Words:  []uint32{uint32(fn.ReturnType), uint32(fnID), uint32(fn.Control), uint32(fn.Type)},
		})

		for _, p := range fn.Parameters {
			resultType, ok := e.ir.Results.Get(p)
			if !ok {
				outerErr = &spirverr.InvariantViolation{Detail: "function parameter has no recorded result type"}
				return
			}
			e.m.Instructions = append(e.m.Instructions, spirv.Instruction{
				Opcode: spirv.OpFunctionParameter, Words: []uint32{uint32(resultType), uint32(p)},
			})
		}

		fn.Blocks.Each(func(label ID, blk Block) {
			e.emitBlock(label, blk)
		})

		e.push(spirv.OpFunctionEnd)
	})
	return outerErr
}

func (e *emitter) emitBlock(label ID, blk Block) {
	e.push(spirv.OpLabel, uint32(label))
	for _, phi := range blk.Phis {
		words := make([]uint32, 0, 2*len(phi.Incoming))
		for _, edge := range phi.Incoming {
			words = append(words, uint32(edge.Value), uint32(edge.Block))
		}
		e.m.Instructions = append(e.m.Instructions, spirv.Instruction{
			Opcode: spirv.OpPhi, Words: append([]uint32{uint32(phi.Type), uint32(phi.Result)}, words...),
		})
	}
	for _, instr := range blk.Body {
		words := instr.Operands
		if instr.Result != 0 {
			prefix := []uint32{}
			if instr.ResultType != 0 {
				prefix = append(prefix, uint32(instr.ResultType))
			}
			prefix = append(prefix, uint32(instr.Result))
			words = append(prefix, words...)
		}
		e.m.Instructions = append(e.m.Instructions, spirv.Instruction{Opcode: instr.Opcode, Words: words})
	}
	if blk.Merge != nil {
		if blk.Merge.IsLoop {
			e.push(spirv.OpLoopMerge, uint32(blk.Merge.MergeBlock), uint32(*blk.Merge.ContinueBlock), 0)
		} else {
			e.push(spirv.OpSelectionMerge, uint32(blk.Merge.MergeBlock), 0)
		}
	}
	e.emitTerminator(blk.Terminator)
}

func (e *emitter) emitTerminator(t Terminator) {
	switch v := t.(type) {
	case Branch:
		e.push(spirv.OpBranch, uint32(v.Target))
	case BranchConditional:
		e.push(spirv.OpBranchConditional, uint32(v.Condition), uint32(v.True), uint32(v.False))
	case Switch:
		words := []uint32{uint32(v.Selector), uint32(v.Default)}
		for _, c := range v.Cases {
			words = append(words, c.Literal, uint32(c.Target))
		}
		e.push(spirv.OpSwitch, words...)
	case Return:
		e.push(spirv.OpReturn)
	case ReturnValue:
		e.push(spirv.OpReturnValue, uint32(v.Value))
	case Unreachable:
		e.push(spirv.OpUnreachable)
	case Kill:
		e.push(spirv.OpKill)
	}
}
