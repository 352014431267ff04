package ir

import "github.com/gogpu/spirvcore/id"

// newEmptyIR allocates an IR with every container initialized and sharing
// alloc as its id space, but no capabilities/types/functions/... populated
// yet. Build and NewIR both start from this and differ only in what they
// do afterward: Build replays a decoded instruction stream into it, NewIR
// hands it straight to a front end.
func newEmptyIR(alloc *id.Allocator) *IR {
	return &IR{
		Alloc:          alloc,
		ExtInstImports: id.NewOrderedMap[string](),
		Types:          NewTypeRegistry(alloc),
		Constants:      id.NewOrderedMap[Constant](),
		Globals:        id.NewOrderedMap[Global](),
		Functions:      id.NewOrderedMap[FunctionDef](),
		Results:        id.NewOrderedMap[ID](),
		Debug: DebugInfo{
			Names:       id.NewOrderedMap[string](),
			MemberNames: make(map[ID]map[uint32]string),
			Strings:     id.NewOrderedMap[string](),
		},
	}
}

// NewIR returns an empty IR ready for a front end to populate from scratch
// via NewID/AddType/AddConstant/AddGlobal/AddFunction/AddEntryPoint, the
// entry point spec.md names for "the core provides APIs to add types,
// constants, globals, variables, entry points, functions, and to allocate
// fresh ids" to a front end that supplies pre-lowered function bodies
// rather than a flat module to decode.
func NewIR() *IR {
	return newEmptyIR(id.NewAllocator())
}

// NewID allocates and returns a fresh id from this IR's id space, bumping
// its max_id watermark. Used by a front end to name a type, constant,
// global, function, or block before the value that id will refer to has
// been fully constructed (e.g. a function's own result id, needed to fill
// in its EntryPoint.Function field before the function body exists).
func (ir *IR) NewID() ID {
	return ir.Alloc.New()
}

// AddType returns the id for a structurally-identical type already present
// in the registry, or allocates and registers a fresh one. ir.Build does not
// go through this path: it keeps each decoded OpType* at the id the module
// gave it, without deduplicating. This is the front
// end's entry point into TypeRegistry's structural dedup (§3 "the IR
// deduplicates types by structural identity when materializing").
func (ir *IR) AddType(t Type) ID {
	return ir.Types.GetOrCreate(t)
}

// AddConstant allocates a fresh id for c, registers it, and returns the id.
// Unlike types, constants are not deduplicated: two structurally identical
// OpConstant declarations are legal and distinct, matching how ir.Build
// files every OpConstant* instruction it sees without checking for a
// duplicate value.
func (ir *IR) AddConstant(c Constant) ID {
	newID := ir.NewID()
	ir.Constants.Set(newID, c)
	return newID
}

// AddGlobal allocates a fresh id for a module-scope OpVariable, registers
// it, and returns the id.
func (ir *IR) AddGlobal(g Global) ID {
	newID := ir.NewID()
	ir.Globals.Set(newID, g)
	return newID
}

// AddFunction files fn under its own Result id, allocating one first if the
// caller left it unset (the common case: a front end calls NewID to learn
// the function's id up front, stamps it into fn.Result and into any
// EntryPoint referencing it, builds the function body, then commits it
// here). Returns the id the function was filed under.
func (ir *IR) AddFunction(fn FunctionDef) ID {
	if !fn.Result.Valid() {
		fn.Result = ir.NewID()
	}
	ir.Functions.Set(fn.Result, fn)
	return fn.Result
}

// AddEntryPoint appends ep to the module's entry point list. ep.Function
// must already name a function id (either one already committed via
// AddFunction, or one reserved with NewID ahead of the function body being
// built), matching how ir.Build resolves OpExecutionMode(Id) against the
// entry point it was declared against.
func (ir *IR) AddEntryPoint(ep EntryPoint) {
	ir.EntryPoints = append(ir.EntryPoints, ep)
}
