package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestUnion builds an outer table whose slot 0 holds a UOffsetT
// pointing at an inner table, and checks that Union repositions a
// caller-owned Table onto it without allocating a new one.
func TestUnion(t *testing.T) {
	b := NewBuilder(0)

	b.StartObject(1)
	b.PrependInt32Slot(0, 99, 0)
	inner := b.EndObject()

	b.StartObject(1)
	b.PrependUOffsetTRelativeSlot(0, inner, 0)
	outer := b.EndObject()
	b.Finish(outer)

	root := GetRoot(b.Output(), 0)
	off := root.Offset(4)
	require.NotEqualValues(t, 0, off)

	var child Table
	root.Union(&child, UOffsetT(off))
	require.Same(t, &root.Bytes[0], &child.Bytes[0])
	require.EqualValues(t, 99, child.GetInt32Slot(4, 0))
}

// TestByteVector checks a [ubyte] field (no NUL terminator) round-trips
// distinctly from a string field.
func TestByteVector(t *testing.T) {
	b := NewBuilder(0)
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	bv := b.CreateByteVector(payload)

	b.StartObject(1)
	b.PrependUOffsetTRelativeSlot(0, bv, 0)
	o := b.EndObject()
	b.Finish(o)

	root := GetRoot(b.Output(), 0)
	off := root.Offset(4)
	require.NotEqualValues(t, 0, off)
	require.Equal(t, payload, root.ByteVector(root.Pos+UOffsetT(off)))
}

// TestGetCheckedDynamic exercises the runtime ScalarType path: Get and
// GetChecked give the same answers as the typed Get<Kind>/Get<Kind>Slot
// family for a caller that only knows the field's kind at runtime.
func TestGetCheckedDynamic(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(2)
	b.PrependInt32Slot(0, -7, 0)
	b.PrependUint16Slot(1, 0, 0) // left at default, slot stays absent
	o := b.EndObject()
	b.Finish(o)

	root := GetRoot(b.Output(), 0)

	off := root.Offset(4)
	require.NotEqualValues(t, 0, off)
	require.Equal(t, int64(-7), root.Get(Int32Type, UOffsetT(off)))

	require.Equal(t, int64(-7), root.GetChecked(Int32Type, 4, int64(0)))
	require.Equal(t, "fallback", root.GetChecked(Uint16Type, 6, "fallback"))
}

// TestOffsetIgnoresDeprecatedField checks that a slot index beyond the
// end of a shorter (older) vtable falls back to the zero/default
// sentinel instead of reading adjacent memory — the mechanism that
// lets a newer reader load a buffer written by older, shorter-schema
// code and see defaults for the fields that code did not know about.
func TestOffsetIgnoresDeprecatedField(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependInt32Slot(0, 5, 0)
	o := b.EndObject()
	b.Finish(o)

	root := GetRoot(b.Output(), 0)
	require.EqualValues(t, 0, root.Offset(40), "far-future slot must default")
	require.EqualValues(t, -1, root.GetInt32Slot(40, -1))
}

// TestMutateSlot checks in-place mutation of an already-written field.
func TestMutateSlot(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependInt32Slot(0, 5, 0)
	o := b.EndObject()
	b.Finish(o)

	root := GetRoot(b.Output(), 0)
	require.True(t, root.MutateInt32Slot(4, 9))
	require.EqualValues(t, 9, root.GetInt32Slot(4, 0))

	// A slot that was never written (still at default) cannot be
	// mutated in place — there's no room reserved for it.
	require.False(t, root.MutateInt32Slot(6, 1))
}
