// Package ir is the structured intermediate representation a flat
// spirv.Module is built into (ir.Build) and emitted back out of (ir.Emit):
// deduplicated types/constants/globals, assembled functions with their
// basic blocks, and every module-scoped projection (capabilities,
// extensions, decorations, entry points, debug info) a SPIR-V module
// carries.
//
// The type system below generalizes naga's closed-sum TypeInner (ir/ir.go)
// from its small shading-language type set to the full structural SPIR-V
// type algebra: the same "marker method on an unexported interface" trick,
// just with more cases.
package ir

import (
	"github.com/gogpu/spirvcore/id"
	"github.com/gogpu/spirvcore/spirv"
)

// ID re-exports the SSA identifier type this package's containers are keyed
// by, so callers don't need to import both ir and id for ordinary use.
type ID = id.ID

// Type is the closed sum of SPIR-V's structural type kinds. Concrete cases
// implement typeInner() solely to seal the interface to this package's set.
type Type interface {
	typeInner()
}

// VoidType is OpTypeVoid.
type VoidType struct{}

func (VoidType) typeInner() {}

// BoolType is OpTypeBool.
type BoolType struct{}

func (BoolType) typeInner() {}

// IntType is OpTypeInt.
type IntType struct {
	Width  uint32
	Signed bool
}

func (IntType) typeInner() {}

// FloatType is OpTypeFloat.
type FloatType struct {
	Width uint32
}

func (FloatType) typeInner() {}

// VectorType is OpTypeVector.
type VectorType struct {
	Component ID
	Count     uint32
}

func (VectorType) typeInner() {}

// MatrixType is OpTypeMatrix: Count columns, each of type Column (itself a VectorType id).
type MatrixType struct {
	Column ID
	Count  uint32
}

func (MatrixType) typeInner() {}

// ArrayType is OpTypeArray (Length non-nil, naming a scalar constant's id)
// or OpTypeRuntimeArray (Length nil).
type ArrayType struct {
	Element ID
	Length  *ID
	Stride  uint32 // part of the dedup key only; Build leaves it 0 and keeps ArrayStride in IR.Decorations
}

func (ArrayType) typeInner() {}

// StructType is OpTypeStruct.
type StructType struct {
	Members []StructMember
}

func (StructType) typeInner() {}

// StructMember is one member of a StructType. Offset is part of the dedup
// key only: Build leaves it 0, and member decorations (Offset, MatrixStride,
// ColMajor, ...) are kept in IR.MemberDecorations.
type StructMember struct {
	Type   ID
	Offset uint32
}

// PointerType is OpTypePointer.
type PointerType struct {
	StorageClass spirv.StorageClass
	Pointee      ID
}

func (PointerType) typeInner() {}

// ImageType is OpTypeImage.
type ImageType struct {
	SampledType  ID
	Dim          spirv.Dim
	Depth        uint32
	Arrayed      bool
	Multisampled bool
	Sampled      uint32
	Format       spirv.ImageFormat
}

func (ImageType) typeInner() {}

// SamplerType is OpTypeSampler.
type SamplerType struct{}

func (SamplerType) typeInner() {}

// SampledImageType is OpTypeSampledImage.
type SampledImageType struct {
	Image ID
}

func (SampledImageType) typeInner() {}

// OpaqueType is OpTypeOpaque.
type OpaqueType struct {
	Name string
}

func (OpaqueType) typeInner() {}

// FunctionType is OpTypeFunction.
type FunctionType struct {
	Return ID
	Params []ID
}

func (FunctionType) typeInner() {}
