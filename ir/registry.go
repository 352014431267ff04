package ir

import (
	"fmt"
	"strconv"

	"github.com/gogpu/spirvcore/id"
)

// TypeRegistry deduplicates types by structural equality, the same role
// naga's own TypeRegistry (ir/registry.go) plays for its smaller type set:
// SPIR-V requires each unique type be declared exactly once.
//
// Types here are keyed by id.ID rather than a registry-local handle, since
// ir.Build must preserve the ids a decoded module already assigned, and a
// front end adding types through GetOrCreate draws fresh ones from the same
// id space everything else in the module shares.
type TypeRegistry struct {
	alloc        *id.Allocator
	types        *id.OrderedMap[Type]
	byKey        map[string]ID
	pending      []pendingPointer
	forwardOrder []ID
	forward      map[ID]bool
}

// pendingPointer records a Pointer whose Pointee could not be resolved yet
// because it points at a Struct still being constructed (the classic
// linked-list-node cycle). It mirrors SPIR-V's own OpTypeForwardPointer
// mechanism: declare the pointer's storage class up front, fill in the
// pointee once the struct exists.
type pendingPointer struct {
	ptr     ID
	pointee ID
}

// NewTypeRegistry creates an empty registry sharing alloc's id space.
func NewTypeRegistry(alloc *id.Allocator) *TypeRegistry {
	return &TypeRegistry{
		alloc: alloc,
		types: id.NewOrderedMap[Type](),
		byKey: make(map[string]ID, 16),
	}
}

// GetOrCreate returns the id for a structurally-identical type already in
// the registry, or allocates and registers a new one.
func (r *TypeRegistry) GetOrCreate(t Type) ID {
	key := r.key(t)
	if existing, ok := r.byKey[key]; ok {
		return existing
	}
	newID := r.alloc.New()
	r.types.Set(newID, t)
	r.byKey[key] = newID
	return newID
}

// ForwardPointer allocates an id for a pointer type whose pointee is not yet
// known (it is still being built, as with a struct that contains a pointer
// to itself). The caller must call ResolvePointer once the pointee's id is
// available. The returned id is not entered into the dedup table under a
// final key until resolution, since its key is incomplete until then.
func (r *TypeRegistry) ForwardPointer(storageClass PointerType) ID {
	newID := r.alloc.New()
	r.pending = append(r.pending, pendingPointer{ptr: newID})
	r.types.Set(newID, storageClass)
	if r.forward == nil {
		r.forward = make(map[ID]bool)
	}
	r.forward[newID] = true
	r.forwardOrder = append(r.forwardOrder, newID)
	return newID
}

// IsForwardDeclared reports whether typeID was first introduced via
// ForwardPointer, meaning Emit must precede its OpTypePointer with an
// OpTypeForwardPointer.
func (r *TypeRegistry) IsForwardDeclared(typeID ID) bool { return r.forward[typeID] }

// ForwardDeclarations returns forward-declared pointer ids in the order
// ForwardPointer was called; each id's storage class is on its PointerType.
func (r *TypeRegistry) ForwardDeclarations() []ID {
	return append([]ID(nil), r.forwardOrder...)
}

// ResolvePointer fills in the pointee of a pointer previously created via
// ForwardPointer and commits it to the dedup table.
func (r *TypeRegistry) ResolvePointer(ptr ID, pointee ID) error {
	t, ok := r.types.Get(ptr)
	if !ok {
		return fmt.Errorf("ir: ResolvePointer: %d is not a registered pointer", ptr)
	}
	pt, ok := t.(PointerType)
	if !ok {
		return fmt.Errorf("ir: ResolvePointer: %d is not a pointer type", ptr)
	}
	pt.Pointee = pointee
	r.types.Set(ptr, pt)
	r.byKey[r.key(pt)] = ptr
	for i, p := range r.pending {
		if p.ptr == ptr {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			break
		}
	}
	return nil
}

// SetAt registers t under a caller-assigned id rather than allocating one,
// used while decoding a flat module whose ids are already fixed. Overwrites
// any prior entry at the same id, so a forward-declared pointer's
// placeholder (see OpTypeForwardPointer handling) is naturally replaced
// once its real OpTypePointer is seen.
func (r *TypeRegistry) SetAt(typeID ID, t Type) {
	r.types.Set(typeID, t)
	r.byKey[r.key(t)] = typeID
}

// Lookup returns the type registered under id.
func (r *TypeRegistry) Lookup(typeID ID) (Type, bool) {
	return r.types.Get(typeID)
}

// Each calls fn for every registered type in insertion order.
func (r *TypeRegistry) Each(fn func(ID, Type)) {
	r.types.Each(fn)
}

// key builds a structural-equality key for a type. Pointer/Struct cycles
// are broken by keying a pointer on its pointee's id rather than recursing
// into the pointee's own structure, matching how SPIR-V itself breaks the
// cycle (a pointer names its pointee by id, not by inlining it).
func (r *TypeRegistry) key(t Type) string {
	switch v := t.(type) {
	case VoidType:
		return "void"
	case BoolType:
		return "bool"
	case IntType:
		return "int:" + strconv.FormatUint(uint64(v.Width), 10) + ":" + strconv.FormatBool(v.Signed)
	case FloatType:
		return "float:" + strconv.FormatUint(uint64(v.Width), 10)
	case VectorType:
		return "vec:" + idKey(v.Component) + ":" + strconv.FormatUint(uint64(v.Count), 10)
	case MatrixType:
		return "mat:" + idKey(v.Column) + ":" + strconv.FormatUint(uint64(v.Count), 10)
	case ArrayType:
		size := "runtime"
		if v.Length != nil {
			size = idKey(*v.Length)
		}
		return "array:" + idKey(v.Element) + ":" + size + ":" + strconv.FormatUint(uint64(v.Stride), 10)
	case StructType:
		key := "struct:" + strconv.Itoa(len(v.Members))
		for _, m := range v.Members {
			key += ":m(" + idKey(m.Type) + "," + strconv.FormatUint(uint64(m.Offset), 10) + ")"
		}
		return key
	case PointerType:
		return "ptr:" + strconv.FormatUint(uint64(v.StorageClass), 10) + ":" + idKey(v.Pointee)
	case ImageType:
		return fmt.Sprintf("image:%s:%d:%d:%v:%v:%d:%d", idKey(v.SampledType), v.Dim, v.Depth, v.Arrayed, v.Multisampled, v.Sampled, v.Format)
	case SamplerType:
		return "sampler"
	case SampledImageType:
		return "sampledimage:" + idKey(v.Image)
	case OpaqueType:
		return "opaque:" + v.Name
	case FunctionType:
		key := "fn:" + idKey(v.Return)
		for _, p := range v.Params {
			key += "," + idKey(p)
		}
		return key
	default:
		return fmt.Sprintf("unknown:%T", t)
	}
}

func idKey(i ID) string { return strconv.FormatUint(uint64(i), 10) }
