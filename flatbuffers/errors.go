package flatbuffers

import "golang.org/x/xerrors"

// Builder invariant violations surface as panics carrying one of these
// typed error values (spec.md §7), not as an error return: the
// Consumer Contract (spec.md §6) generated accessors rely on has
// StartObject/Slot/EndObject/etc. return nothing, so changing their
// signature to return an error would break every call site a code
// generator emits. Callers that want to distinguish a failure kind
// recover() and use errors.As against the panic value.
//
// Reset is the only supported recovery after any of these fire; the
// Builder is left in an unspecified state otherwise (spec.md §7).

// BuilderSizeError reports an initial or grown buffer size outside
// [0, 2^31).
type BuilderSizeError struct {
	Requested int
}

func (e *BuilderSizeError) Error() string {
	return xerrors.Errorf("flatbuffers: cannot grow buffer beyond 2 gigabytes: requested %d bytes", e.Requested).Error()
}

// ObjectIsNestedError reports StartObject/StartVector/CreateString
// called while an object or vector is already in progress.
type ObjectIsNestedError struct{}

func (e *ObjectIsNestedError) Error() string {
	return "flatbuffers: incorrect creation order: object must not be nested"
}

// NotInObjectError reports Slot/EndObject called with no object in
// progress.
type NotInObjectError struct{}

func (e *NotInObjectError) Error() string {
	return "flatbuffers: incorrect creation order: must be inside object"
}

// StructIsNotInlineError reports PrependStructSlot called with a
// non-zero offset that doesn't equal the Builder's current Offset().
type StructIsNotInlineError struct {
	Offset, Current UOffsetT
}

func (e *StructIsNotInlineError) Error() string {
	return xerrors.Errorf("flatbuffers: inline struct write outside of object: offset %d, current %d", e.Offset, e.Current).Error()
}

// OffsetArithmeticError reports a negative SOffsetT/UOffsetT delta —
// the target would lie after the position that's supposed to
// reference it.
type OffsetArithmeticError struct {
	Delta int64
}

func (e *OffsetArithmeticError) Error() string {
	return xerrors.Errorf("flatbuffers: offset arithmetic error: delta %d", e.Delta).Error()
}

// TypeError reports a scalar value outside its declared range.
type TypeError struct {
	Type     string
	Value    int64
	Min, Max int64
}

func (e *TypeError) Error() string {
	return xerrors.Errorf("flatbuffers: bad value %d for type %s (want [%d, %d])", e.Value, e.Type, e.Min, e.Max).Error()
}
