package spirv

import (
	"strconv"
	"strings"
)

// The enum tables below back every operand of grammar kind EnumX: each is a
// Go integer type with a String method and a parse-from-name function, used
// by both the disassembler (render symbolic names) and the assembler (parse
// them back). Names and values are lifted from naga's hand-written lookup
// maps in cmd/spvdis/main.go and broadened where that table was a partial
// stand-in (it only printed what its own backend emitted).

// Capability enumerates optional processor capabilities a module may declare.
type Capability uint32

const (
	CapabilityMatrix                Capability = 0
	CapabilityShader                Capability = 1
	CapabilityGeometry              Capability = 2
	CapabilityTessellation          Capability = 3
	CapabilityAddresses             Capability = 4
	CapabilityLinkage               Capability = 5
	CapabilityKernel                Capability = 6
	CapabilityFloat16               Capability = 9
	CapabilityFloat64               Capability = 10
	CapabilityInt64                 Capability = 11
	CapabilityInt16                 Capability = 22
	CapabilityImageQuery            Capability = 50
	CapabilityVariablePointers       Capability = 4442
	CapabilityShaderNonUniform       Capability = 5301
	CapabilityVulkanMemoryModel      Capability = 5345
)

var capabilityNames = map[Capability]string{
	CapabilityMatrix: "Matrix", CapabilityShader: "Shader", CapabilityGeometry: "Geometry",
	CapabilityTessellation: "Tessellation", CapabilityAddresses: "Addresses", CapabilityLinkage: "Linkage",
	CapabilityKernel: "Kernel", CapabilityFloat16: "Float16", CapabilityFloat64: "Float64",
	CapabilityInt64: "Int64", CapabilityInt16: "Int16", CapabilityImageQuery: "ImageQuery",
	CapabilityVariablePointers: "VariablePointers", CapabilityShaderNonUniform: "ShaderNonUniform",
	CapabilityVulkanMemoryModel: "VulkanMemoryModel",
}

func (c Capability) String() string { return nameOrNumber(capabilityNames, c, uint32(c)) }

// ParseCapability resolves a symbolic capability name.
func ParseCapability(name string) (Capability, bool) {
	v, ok := reverse(capabilityNames, name)
	return Capability(v), ok
}

// AddressingModel selects how memory addresses are represented.
type AddressingModel uint32

const (
	AddressingLogical         AddressingModel = 0
	AddressingPhysical32      AddressingModel = 1
	AddressingPhysical64      AddressingModel = 2
	AddressingPhysicalStorageBuffer64 AddressingModel = 5348
)

var addressingModelNames = map[AddressingModel]string{
	AddressingLogical: "Logical", AddressingPhysical32: "Physical32", AddressingPhysical64: "Physical64",
	AddressingPhysicalStorageBuffer64: "PhysicalStorageBuffer64",
}

func (a AddressingModel) String() string { return nameOrNumber(addressingModelNames, a, uint32(a)) }

// ParseAddressingModel resolves a symbolic addressing-model name.
func ParseAddressingModel(name string) (AddressingModel, bool) {
	v, ok := reverse(addressingModelNames, name)
	return AddressingModel(v), ok
}

// MemoryModel selects the module's overall memory consistency model.
type MemoryModel uint32

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)

var memoryModelNames = map[MemoryModel]string{
	MemoryModelSimple: "Simple", MemoryModelGLSL450: "GLSL450", MemoryModelOpenCL: "OpenCL", MemoryModelVulkan: "Vulkan",
}

func (m MemoryModel) String() string { return nameOrNumber(memoryModelNames, m, uint32(m)) }

// ParseMemoryModel resolves a symbolic memory-model name.
func ParseMemoryModel(name string) (MemoryModel, bool) {
	v, ok := reverse(memoryModelNames, name)
	return MemoryModel(v), ok
}

// ExecutionModel identifies a pipeline stage an entry point targets.
type ExecutionModel uint32

const (
	ExecutionVertex                 ExecutionModel = 0
	ExecutionTessellationControl    ExecutionModel = 1
	ExecutionTessellationEvaluation ExecutionModel = 2
	ExecutionGeometry               ExecutionModel = 3
	ExecutionFragment               ExecutionModel = 4
	ExecutionGLCompute              ExecutionModel = 5
	ExecutionKernel                 ExecutionModel = 6
)

var executionModelNames = map[ExecutionModel]string{
	ExecutionVertex: "Vertex", ExecutionTessellationControl: "TessellationControl",
	ExecutionTessellationEvaluation: "TessellationEvaluation", ExecutionGeometry: "Geometry",
	ExecutionFragment: "Fragment", ExecutionGLCompute: "GLCompute", ExecutionKernel: "Kernel",
}

func (e ExecutionModel) String() string { return nameOrNumber(executionModelNames, e, uint32(e)) }

// ParseExecutionModel resolves a symbolic execution-model name.
func ParseExecutionModel(name string) (ExecutionModel, bool) {
	v, ok := reverse(executionModelNames, name)
	return ExecutionModel(v), ok
}

// ExecutionMode configures how an entry point's stage behaves.
type ExecutionMode uint32

const (
	ExecutionModeInvocations       ExecutionMode = 0
	ExecutionModeOriginUpperLeft   ExecutionMode = 7
	ExecutionModeOriginLowerLeft   ExecutionMode = 8
	ExecutionModeEarlyFragmentTests ExecutionMode = 9
	ExecutionModeDepthReplacing    ExecutionMode = 12
	ExecutionModeLocalSize         ExecutionMode = 17
	ExecutionModeLocalSizeHint     ExecutionMode = 18
)

var executionModeNames = map[ExecutionMode]string{
	ExecutionModeInvocations: "Invocations", ExecutionModeOriginUpperLeft: "OriginUpperLeft",
	ExecutionModeOriginLowerLeft: "OriginLowerLeft", ExecutionModeEarlyFragmentTests: "EarlyFragmentTests",
	ExecutionModeDepthReplacing: "DepthReplacing", ExecutionModeLocalSize: "LocalSize",
	ExecutionModeLocalSizeHint: "LocalSizeHint",
}

func (e ExecutionMode) String() string { return nameOrNumber(executionModeNames, e, uint32(e)) }

// ParseExecutionMode resolves a symbolic execution-mode name.
func ParseExecutionMode(name string) (ExecutionMode, bool) {
	v, ok := reverse(executionModeNames, name)
	return ExecutionMode(v), ok
}

// Decoration tags an id (or struct member) with layout/linkage/semantic metadata.
type Decoration uint32

const (
	DecorationRelaxedPrecision Decoration = 0
	DecorationBlock            Decoration = 2
	DecorationBufferBlock      Decoration = 3
	DecorationRowMajor         Decoration = 4
	DecorationColMajor         Decoration = 5
	DecorationArrayStride      Decoration = 6
	DecorationMatrixStride     Decoration = 7
	DecorationBuiltIn          Decoration = 11
	DecorationNoPerspective    Decoration = 13
	DecorationFlat             Decoration = 14
	DecorationNonWritable      Decoration = 24
	DecorationNonReadable      Decoration = 25
	DecorationLocation         Decoration = 30
	DecorationComponent        Decoration = 31
	DecorationIndex            Decoration = 32
	DecorationBinding          Decoration = 33
	DecorationDescriptorSet    Decoration = 34
	DecorationOffset           Decoration = 35
)

var decorationNames = map[Decoration]string{
	DecorationRelaxedPrecision: "RelaxedPrecision", DecorationBlock: "Block", DecorationBufferBlock: "BufferBlock",
	DecorationRowMajor: "RowMajor", DecorationColMajor: "ColMajor", DecorationArrayStride: "ArrayStride",
	DecorationMatrixStride: "MatrixStride", DecorationBuiltIn: "BuiltIn", DecorationNoPerspective: "NoPerspective",
	DecorationFlat: "Flat", DecorationNonWritable: "NonWritable", DecorationNonReadable: "NonReadable",
	DecorationLocation: "Location", DecorationComponent: "Component", DecorationIndex: "Index",
	DecorationBinding: "Binding", DecorationDescriptorSet: "DescriptorSet", DecorationOffset: "Offset",
}

func (d Decoration) String() string { return nameOrNumber(decorationNames, d, uint32(d)) }

// ParseDecoration resolves a symbolic decoration name.
func ParseDecoration(name string) (Decoration, bool) {
	v, ok := reverse(decorationNames, name)
	return Decoration(v), ok
}

// BuiltIn identifies a built-in variable referenced via a BuiltIn decoration.
type BuiltIn uint32

const (
	BuiltInPosition       BuiltIn = 0
	BuiltInPointSize      BuiltIn = 1
	BuiltInVertexId       BuiltIn = 5
	BuiltInInstanceId     BuiltIn = 6
	BuiltInFragCoord      BuiltIn = 15
	BuiltInFrontFacing    BuiltIn = 17
	BuiltInFragDepth      BuiltIn = 22
	BuiltInGlobalInvocationId BuiltIn = 28
	BuiltInVertexIndex    BuiltIn = 42
	BuiltInInstanceIndex  BuiltIn = 43
)

var builtInNames = map[BuiltIn]string{
	BuiltInPosition: "Position", BuiltInPointSize: "PointSize", BuiltInVertexId: "VertexId",
	BuiltInInstanceId: "InstanceId", BuiltInFragCoord: "FragCoord", BuiltInFrontFacing: "FrontFacing",
	BuiltInFragDepth: "FragDepth", BuiltInGlobalInvocationId: "GlobalInvocationId",
	BuiltInVertexIndex: "VertexIndex", BuiltInInstanceIndex: "InstanceIndex",
}

func (b BuiltIn) String() string { return nameOrNumber(builtInNames, b, uint32(b)) }

// ParseBuiltIn resolves a symbolic built-in name.
func ParseBuiltIn(name string) (BuiltIn, bool) {
	v, ok := reverse(builtInNames, name)
	return BuiltIn(v), ok
}

// StorageClass tags the memory region a pointer type/variable lives in.
type StorageClass uint32

const (
	StorageUniformConstant StorageClass = 0
	StorageInput           StorageClass = 1
	StorageUniform         StorageClass = 2
	StorageOutput          StorageClass = 3
	StorageWorkgroup       StorageClass = 4
	StorageCrossWorkgroup  StorageClass = 5
	StoragePrivate         StorageClass = 6
	StorageFunction        StorageClass = 7
	StorageGeneric         StorageClass = 8
	StoragePushConstant    StorageClass = 9
	StorageAtomicCounter   StorageClass = 10
	StorageImage           StorageClass = 11
	StorageStorageBuffer   StorageClass = 12
)

var storageClassNames = map[StorageClass]string{
	StorageUniformConstant: "UniformConstant", StorageInput: "Input", StorageUniform: "Uniform",
	StorageOutput: "Output", StorageWorkgroup: "Workgroup", StorageCrossWorkgroup: "CrossWorkgroup",
	StoragePrivate: "Private", StorageFunction: "Function", StorageGeneric: "Generic",
	StoragePushConstant: "PushConstant", StorageAtomicCounter: "AtomicCounter", StorageImage: "Image",
	StorageStorageBuffer: "StorageBuffer",
}

func (s StorageClass) String() string { return nameOrNumber(storageClassNames, s, uint32(s)) }

// ParseStorageClass resolves a symbolic storage-class name.
func ParseStorageClass(name string) (StorageClass, bool) {
	v, ok := reverse(storageClassNames, name)
	return StorageClass(v), ok
}

// Dim identifies an image's dimensionality.
type Dim uint32

const (
	Dim1D       Dim = 0
	Dim2D       Dim = 1
	Dim3D       Dim = 2
	DimCube     Dim = 3
	DimRect     Dim = 4
	DimBuffer   Dim = 5
	DimSubpassData Dim = 6
)

var dimNames = map[Dim]string{
	Dim1D: "1D", Dim2D: "2D", Dim3D: "3D", DimCube: "Cube", DimRect: "Rect", DimBuffer: "Buffer", DimSubpassData: "SubpassData",
}

func (d Dim) String() string { return nameOrNumber(dimNames, d, uint32(d)) }

// ParseDim resolves a symbolic image-dimension name.
func ParseDim(name string) (Dim, bool) {
	v, ok := reverse(dimNames, name)
	return Dim(v), ok
}

// ImageFormat constrains how an image's texel data is interpreted.
type ImageFormat uint32

const (
	ImageFormatUnknown ImageFormat = 0
	ImageFormatRgba32f  ImageFormat = 1
	ImageFormatRgba8    ImageFormat = 4
)

var imageFormatNames = map[ImageFormat]string{
	ImageFormatUnknown: "Unknown", ImageFormatRgba32f: "Rgba32f", ImageFormatRgba8: "Rgba8",
}

func (f ImageFormat) String() string { return nameOrNumber(imageFormatNames, f, uint32(f)) }

// ParseImageFormat resolves a symbolic image-format name.
func ParseImageFormat(name string) (ImageFormat, bool) {
	v, ok := reverse(imageFormatNames, name)
	return ImageFormat(v), ok
}

// SelectionControl hints how OpSelectionMerge's branch should be compiled.
// Unlike the single-valued enums above, it is a bitmask: String/Parse
// render and accept a "|"-joined list of set flag names rather than one
// symbolic name per value.
type SelectionControl uint32

const (
	SelectionControlNone        SelectionControl = 0
	SelectionControlFlatten     SelectionControl = 1
	SelectionControlDontFlatten SelectionControl = 2
)

var selectionControlBits = []bitName{
	{uint32(SelectionControlFlatten), "Flatten"},
	{uint32(SelectionControlDontFlatten), "DontFlatten"},
}

func (c SelectionControl) String() string { return flagString(selectionControlBits, uint32(c)) }

// ParseSelectionControl resolves a "|"-joined flag-name list (or "None").
func ParseSelectionControl(s string) (SelectionControl, bool) {
	v, ok := parseFlags(selectionControlBits, s)
	return SelectionControl(v), ok
}

// LoopControl hints how OpLoopMerge's loop should be compiled. A bitmask;
// see SelectionControl's doc comment.
type LoopControl uint32

const (
	LoopControlNone       LoopControl = 0
	LoopControlUnroll     LoopControl = 1
	LoopControlDontUnroll LoopControl = 2
)

var loopControlBits = []bitName{
	{uint32(LoopControlUnroll), "Unroll"},
	{uint32(LoopControlDontUnroll), "DontUnroll"},
}

func (c LoopControl) String() string { return flagString(loopControlBits, uint32(c)) }

// ParseLoopControl resolves a "|"-joined flag-name list (or "None").
func ParseLoopControl(s string) (LoopControl, bool) {
	v, ok := parseFlags(loopControlBits, s)
	return LoopControl(v), ok
}

// FunctionControl hints how OpFunction's body should be compiled. A
// bitmask; see SelectionControl's doc comment.
type FunctionControl uint32

const (
	FunctionControlNone       FunctionControl = 0
	FunctionControlInline     FunctionControl = 1
	FunctionControlDontInline FunctionControl = 2
	FunctionControlPure       FunctionControl = 4
	FunctionControlConst      FunctionControl = 8
)

var functionControlBits = []bitName{
	{uint32(FunctionControlInline), "Inline"},
	{uint32(FunctionControlDontInline), "DontInline"},
	{uint32(FunctionControlPure), "Pure"},
	{uint32(FunctionControlConst), "Const"},
}

func (c FunctionControl) String() string { return flagString(functionControlBits, uint32(c)) }

// ParseFunctionControl resolves a "|"-joined flag-name list (or "None").
func ParseFunctionControl(s string) (FunctionControl, bool) {
	v, ok := parseFlags(functionControlBits, s)
	return FunctionControl(v), ok
}

func nameOrNumber[K ~uint32](names map[K]string, key K, raw uint32) string {
	if name, ok := names[key]; ok {
		return name
	}
	return strconv.FormatUint(uint64(raw), 10)
}

func reverse[K ~uint32](names map[K]string, name string) (uint32, bool) {
	for k, v := range names {
		if v == name {
			return uint32(k), true
		}
	}
	return 0, false
}

// bitName pairs one flag bit of a mask enum with its symbolic name.
type bitName struct {
	bit  uint32
	name string
}

// flagString renders raw as a "|"-joined list of set flag names in bits'
// declared order, any unrecognized remaining bits as a trailing hex group,
// or "None" if raw is zero.
func flagString(bits []bitName, raw uint32) string {
	if raw == 0 {
		return "None"
	}
	var parts []string
	remaining := raw
	for _, b := range bits {
		if remaining&b.bit == b.bit {
			parts = append(parts, b.name)
			remaining &^= b.bit
		}
	}
	if remaining != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(remaining), 16))
	}
	return strings.Join(parts, "|")
}

// parseFlags resolves a "|"-joined flag-name list (or "None") back to its
// raw mask value.
func parseFlags(bits []bitName, s string) (uint32, bool) {
	if s == "None" {
		return 0, true
	}
	var raw uint32
	for _, tok := range strings.Split(s, "|") {
		found := false
		for _, b := range bits {
			if b.name == tok {
				raw |= b.bit
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return raw, true
}
