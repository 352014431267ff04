package ir

import (
	"github.com/gogpu/spirvcore/grammar"
	"github.com/gogpu/spirvcore/spirv"
)

// Emit re-flattens an IR into a spirv.Module in SPIR-V's canonical section
// order: capabilities, extensions, ext-inst imports, memory model, entry
// points, execution modes, debug, annotations, types/constants/globals,
// then function bodies.
func Emit(program *IR) (*spirv.Module, error) {
	m := &spirv.Module{Version: program.Meta.Version, Generator: program.Meta.Generator, Schema: program.Meta.Schema}
	e := &emitter{ir: program, m: m}

	e.emitCapabilities()
	e.emitExtensions()
	e.emitExtInstImports()
	e.emitMemoryModel()
	e.emitEntryPoints()
	e.emitExecutionModes()
	e.emitDebug()
	e.emitAnnotations()
	e.emitTypesAndConstants()
	e.emitGlobals()
	if err := e.emitFunctions(); err != nil {
		return nil, err
	}

	m.Bound = program.nextBound()
	return m, nil
}

// nextBound computes the bound word: one past the largest id the IR
// defines. Emit does not allocate ids of its own (every id in
// the IR was either decoded from a module or assigned by a caller building
// one from scratch via the registries), so this is a pure scan.
func (ir *IR) nextBound() uint32 {
	var max ID
	bump := func(i ID) {
		if i > max {
			max = i
		}
	}
	ir.Types.Each(func(i ID, _ Type) { bump(i) })
	ir.Constants.Each(func(i ID, _ Constant) { bump(i) })
	ir.Globals.Each(func(i ID, _ Global) { bump(i) })
	ir.ExtInstImports.Each(func(i ID, _ string) { bump(i) })
	ir.Debug.Strings.Each(func(i ID, _ string) { bump(i) })
	ir.Functions.Each(func(i ID, fn FunctionDef) {
		bump(i)
		for _, p := range fn.Parameters {
			bump(p)
		}
		fn.Blocks.Each(func(lbl ID, blk Block) {
			bump(lbl)
			for _, phi := range blk.Phis {
				bump(phi.Result)
			}
			for _, instr := range blk.Body {
				bump(instr.Result)
			}
		})
	})
	return uint32(max) + 1
}

type emitter struct {
	ir *IR
	m  *spirv.Module
}

func (e *emitter) push(opcode spirv.Opcode, words ...uint32) {
	e.m.Instructions = append(e.m.Instructions, spirv.Instruction{Opcode: opcode, Words: words})
}

func (e *emitter) emitCapabilities() {
	for _, c := range e.ir.Capabilities {
		e.push(spirv.OpCapability, uint32(c))
	}
}

func (e *emitter) emitExtensions() {
	for _, ext := range e.ir.Extensions {
		e.push(spirv.OpExtension, grammar.EncodeString(ext)...)
	}
}

func (e *emitter) emitExtInstImports() {
	e.ir.ExtInstImports.Each(func(i ID, name string) {
		words := append([]uint32{uint32(i)}, grammar.EncodeString(name)...)
		e.m.Instructions = append(e.m.Instructions, spirv.Instruction{Opcode: spirv.OpExtInstImport, Words: words})
	})
}

func (e *emitter) emitMemoryModel() {
	e.push(spirv.OpMemoryModel, uint32(e.ir.AddressingModel), uint32(e.ir.MemoryModel))
}

func (e *emitter) emitEntryPoints() {
	for _, ep := range e.ir.EntryPoints {
		words := []uint32{uint32(ep.Model), uint32(ep.Function)}
		words = append(words, grammar.EncodeString(ep.Name)...)
		for _, i := range ep.Interface {
			words = append(words, uint32(i))
		}
		e.push(spirv.OpEntryPoint, words...)
	}
}

func (e *emitter) emitExecutionModes() {
	for _, ep := range e.ir.EntryPoints {
		for _, mode := range ep.Modes {
			words := append([]uint32{uint32(ep.Function), uint32(mode.Mode)}, mode.Operands...)
			e.push(spirv.OpExecutionMode, words...)
		}
	}
}

func (e *emitter) emitDebug() {
	for _, src := range e.ir.Debug.Sources {
		words := []uint32{src.Language, src.Version}
		if src.File != nil {
			words = append(words, uint32(*src.File))
			if src.Text != "" {
				words = append(words, grammar.EncodeString(src.Text)...)
			}
		}
		e.push(spirv.OpSource, words...)
	}
	e.ir.Debug.Strings.Each(func(i ID, s string) {
		words := append([]uint32{uint32(i)}, grammar.EncodeString(s)...)
		e.m.Instructions = append(e.m.Instructions, spirv.Instruction{Opcode: spirv.OpString, Words: words})
	})
	e.ir.Debug.Names.Each(func(i ID, s string) {
		words := append([]uint32{uint32(i)}, grammar.EncodeString(s)...)
		e.push(spirv.OpName, words...)
	})
	for target, members := range e.ir.Debug.MemberNames {
		for member, name := range members {
			words := append([]uint32{uint32(target), member}, grammar.EncodeString(name)...)
			e.push(spirv.OpMemberName, words...)
		}
	}
}

func (e *emitter) emitAnnotations() {
	for _, d := range e.ir.Decorations {
		words := append([]uint32{uint32(d.Target), uint32(d.Decoration)}, d.Operands...)
		e.push(spirv.OpDecorate, words...)
	}
	for _, d := range e.ir.MemberDecorations {
		words := append([]uint32{uint32(d.StructType), d.Member, uint32(d.Decoration)}, d.Operands...)
		e.push(spirv.OpMemberDecorate, words...)
	}
}

func (e *emitter) emitGlobals() {
	e.ir.Globals.Each(func(i ID, g Global) {
		words := []uint32{uint32(g.StorageClass)}
		if g.Initializer != nil {
			words = append(words, uint32(*g.Initializer))
		}
		e.m.Instructions = append(e.m.Instructions, spirv.Instruction{Opcode: spirv.OpVariable, Words: append([]uint32{uint32(g.Type), uint32(i)}, words...)})
	})
}
