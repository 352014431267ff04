package ir

import (
	"github.com/gogpu/spirvcore/grammar"
	"github.com/gogpu/spirvcore/spirv"
)

func (b *builder) modeSetting(opcode spirv.Opcode, operands []grammar.Value) error {
	switch opcode {
	case spirv.OpCapability:
		b.ir.Capabilities = append(b.ir.Capabilities, spirv.Capability(operands[0].Words[0]))
	case spirv.OpMemoryModel:
		b.ir.AddressingModel = spirv.AddressingModel(operands[0].Words[0])
		b.ir.MemoryModel = spirv.MemoryModel(operands[1].Words[0])
	case spirv.OpEntryPoint:
		ep := EntryPoint{
			Model:     spirv.ExecutionModel(operands[0].Words[0]),
			Function:  operands[1].ID,
			Name:      operands[2].Str,
			Interface: ids(operands[3:]),
		}
		b.ir.EntryPoints = append(b.ir.EntryPoints, ep)
		b.entryByFn[ep.Function] = len(b.ir.EntryPoints) - 1
	case spirv.OpExecutionMode, spirv.OpExecutionModeId:
		fn := operands[0].ID
		idx, ok := b.entryByFn[fn]
		if !ok {
			return nil
		}
		mode := ExecutionMode{Mode: spirv.ExecutionMode(operands[1].Words[0]), Operands: words(operands[2:])}
		b.ir.EntryPoints[idx].Modes = append(b.ir.EntryPoints[idx].Modes, mode)
	}
	return nil
}

func (b *builder) extension(opcode spirv.Opcode, result ID, operands []grammar.Value) error {
	switch opcode {
	case spirv.OpExtension:
		b.ir.Extensions = append(b.ir.Extensions, operands[0].Str)
	case spirv.OpExtInstImport:
		b.ir.ExtInstImports.Set(result, operands[0].Str)
	}
	return nil
}

func (b *builder) debug(opcode spirv.Opcode, result ID, operands []grammar.Value) error {
	switch opcode {
	case spirv.OpSource:
		info := SourceInfo{Language: operands[0].Words[0], Version: operands[1].Words[0]}
		if len(operands) > 2 && operands[2].ID.Valid() {
			f := operands[2].ID
			info.File = &f
		}
		if len(operands) > 3 {
			info.Text = operands[3].Str
		}
		b.ir.Debug.Sources = append(b.ir.Debug.Sources, info)
	case spirv.OpString:
		b.ir.Debug.Strings.Set(result, operands[0].Str)
	case spirv.OpName:
		b.ir.Debug.Names.Set(operands[0].ID, operands[1].Str)
	case spirv.OpMemberName:
		target := operands[0].ID
		if b.ir.Debug.MemberNames[target] == nil {
			b.ir.Debug.MemberNames[target] = make(map[uint32]string)
		}
		b.ir.Debug.MemberNames[target][operands[1].Words[0]] = operands[2].Str
	}
	return nil
}

func (b *builder) annotation(opcode spirv.Opcode, result ID, operands []grammar.Value) error {
	switch opcode {
	case spirv.OpDecorationGroup:
		if b.decorationGroups == nil {
			b.decorationGroups = make(map[ID][]Decoration)
		}
		b.decorationGroups[result] = nil
	case spirv.OpDecorate, spirv.OpDecorateId:
		d := Decoration{Target: operands[0].ID, Decoration: spirv.Decoration(operands[1].Words[0]), Operands: words(operands[2:])}
		b.ir.Decorations = append(b.ir.Decorations, d)
		if _, isGroup := b.decorationGroups[d.Target]; isGroup {
			b.decorationGroups[d.Target] = append(b.decorationGroups[d.Target], Decoration{Decoration: d.Decoration, Operands: d.Operands})
		}
	case spirv.OpMemberDecorate:
		md := MemberDecoration{
			StructType: operands[0].ID, Member: operands[1].Words[0],
			Decoration: spirv.Decoration(operands[2].Words[0]), Operands: words(operands[3:]),
		}
		b.ir.MemberDecorations = append(b.ir.MemberDecorations, md)
	case spirv.OpGroupDecorate:
		group := operands[0].ID
		for _, d := range b.decorationGroups[group] {
			for _, target := range ids(operands[1:]) {
				b.ir.Decorations = append(b.ir.Decorations, Decoration{Target: target, Decoration: d.Decoration, Operands: d.Operands})
			}
		}
	case spirv.OpGroupMemberDecorate:
		group := operands[0].ID
		for _, d := range b.decorationGroups[group] {
			for _, pair := range operands[1:] {
				b.ir.MemberDecorations = append(b.ir.MemberDecorations, MemberDecoration{
					StructType: ID(pair.Words[0]), Member: pair.Words[1], Decoration: d.Decoration, Operands: d.Operands,
				})
			}
		}
	}
	return nil
}
