package ir

import (
	"github.com/gogpu/spirvcore/grammar"
	"github.com/gogpu/spirvcore/id"
	"github.com/gogpu/spirvcore/spirv"
	"github.com/gogpu/spirvcore/spirverr"
)

func (b *builder) function(opcode spirv.Opcode, resultType, result ID, operands []grammar.Value) error {
	switch opcode {
	case spirv.OpFunction:
		if b.fn != nil {
			return &spirverr.InvariantViolation{Detail: "nested OpFunction"}
		}
		b.fn = &FunctionDef{
			Result: result, ReturnType: resultType,
			Control: spirv.FunctionControl(operands[0].Words[0]), Type: operands[1].ID,
			Blocks: id.NewOrderedMap[Block](),
		}
	case spirv.OpFunctionParameter:
		if b.fn == nil {
			return &spirverr.InvariantViolation{Detail: "OpFunctionParameter outside a function"}
		}
		b.fn.Parameters = append(b.fn.Parameters, result)
	case spirv.OpFunctionEnd:
		if b.fn == nil {
			return &spirverr.InvariantViolation{Detail: "OpFunctionEnd without OpFunction"}
		}
		if b.blk != nil {
			return &spirverr.InvariantViolation{Detail: "OpFunctionEnd with an unterminated block"}
		}
		b.ir.Functions.Set(b.fn.Result, *b.fn)
		b.fn = nil
	}
	return nil
}

// appendBody adds a non-control-flow, non-phi instruction to the current
// block's body. Outside a function (e.g. a module-scope OpVariable already
// handled by global()), this is a no-op since there is no current block.
func (b *builder) appendBody(opcode spirv.Opcode, resultType, result ID, operands []grammar.Value) {
	if b.blk == nil {
		return
	}
	b.blk.Body = append(b.blk.Body, Instruction{
		Opcode: opcode, ResultType: resultType, Result: result, Operands: words(operands),
	})
}

func (b *builder) global(result, resultType ID, operands []grammar.Value) error {
	g := Global{Type: resultType, StorageClass: spirv.StorageClass(operands[0].Words[0])}
	if len(operands) > 1 && operands[1].ID.Valid() {
		init := operands[1].ID
		g.Initializer = &init
	}
	b.ir.Globals.Set(result, g)
	return nil
}

func (b *builder) controlFlow(opcode spirv.Opcode, resultType, result ID, operands []grammar.Value) error {
	switch opcode {
	case spirv.OpLabel:
		if b.blk != nil {
			return &spirverr.InvariantViolation{Detail: "OpLabel without terminating the previous block"}
		}
		if b.fn == nil {
			return &spirverr.InvariantViolation{Detail: "OpLabel outside a function"}
		}
		b.blk = &Block{Label: result}
		if b.fn.EntryBlock == 0 {
			b.fn.EntryBlock = result
		}
	case spirv.OpPhi:
		if b.blk == nil {
			return &spirverr.InvariantViolation{Detail: "OpPhi outside a block"}
		}
		phi := Phi{Result: result, Type: resultType}
		for _, pair := range operands {
			phi.Incoming = append(phi.Incoming, PhiEdge{Value: ID(pair.Words[0]), Block: ID(pair.Words[1])})
		}
		b.blk.Phis = append(b.blk.Phis, phi)
	case spirv.OpLoopMerge:
		cont := operands[1].ID
		b.pendingMerge = &Merge{MergeBlock: operands[0].ID, ContinueBlock: &cont, IsLoop: true}
	case spirv.OpSelectionMerge:
		b.pendingMerge = &Merge{MergeBlock: operands[0].ID}
	case spirv.OpBranch:
		return b.terminate(Branch{Target: operands[0].ID})
	case spirv.OpBranchConditional:
		return b.terminate(BranchConditional{Condition: operands[0].ID, True: operands[1].ID, False: operands[2].ID})
	case spirv.OpSwitch:
		sw := Switch{Selector: operands[0].ID, Default: operands[1].ID}
		for _, pair := range operands[2:] {
			sw.Cases = append(sw.Cases, SwitchCase{Literal: pair.Words[0], Target: ID(pair.Words[1])})
		}
		return b.terminate(sw)
	case spirv.OpReturn:
		return b.terminate(Return{})
	case spirv.OpReturnValue:
		return b.terminate(ReturnValue{Value: operands[0].ID})
	case spirv.OpUnreachable:
		return b.terminate(Unreachable{})
	case spirv.OpKill:
		return b.terminate(Kill{})
	}
	return nil
}

// terminate closes out the current block with t as its terminator, attaches
// any pending OpLoopMerge/OpSelectionMerge, and files it into the enclosing
// function in declaration order.
func (b *builder) terminate(t Terminator) error {
	if b.blk == nil {
		return &spirverr.InvariantViolation{Detail: "terminator outside a block"}
	}
	b.blk.Terminator = t
	b.blk.Merge = b.pendingMerge
	b.pendingMerge = nil
	b.fn.Blocks.Set(b.blk.Label, *b.blk)
	b.blk = nil
	return nil
}
