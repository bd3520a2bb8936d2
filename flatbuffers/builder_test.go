package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMinimalTable is scenario S1: an object with every field left at
// its zero default still gets a vtable entry for each of its three
// declared slots, all zero: a 10-byte vtable, the 4-byte object header,
// 2 bytes of padding and the 4-byte root pointer.
func TestMinimalTable(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(3)
	o := b.EndObject()
	b.Finish(o)

	buf := b.Output()
	require.Len(t, buf, 20)

	root := GetRoot(buf, 0)
	vtablePos := UOffsetT(SOffsetT(root.Pos) - root.GetSOffsetT(root.Pos))
	require.EqualValues(t, 10, root.GetVOffsetT(vtablePos), "vtable byte-size")
	require.EqualValues(t, 4, root.GetVOffsetT(vtablePos+SizeVOffsetT), "object byte-size")
}

// TestDefaultElision is scenario S2: writing a value equal to its
// schema default emits no bytes and leaves the vtable slot at zero, so
// the reader falls back to the default.
func TestDefaultElision(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependInt32Slot(0, 42, 42)
	o := b.EndObject()
	b.Finish(o)

	root := GetRoot(b.Output(), 0)
	require.EqualValues(t, 0, root.Offset(4), "slot should be absent")
	require.EqualValues(t, 42, root.GetInt32Slot(4, 42))
}

// TestNonDefaultField is scenario S3: a value that differs from the
// default is written and the vtable slot points at it.
func TestNonDefaultField(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependInt32Slot(0, 7, 42)
	o := b.EndObject()
	b.Finish(o)

	root := GetRoot(b.Output(), 0)
	require.NotEqualValues(t, 0, root.Offset(4))
	require.EqualValues(t, 7, root.GetInt32Slot(4, 42))
}

// TestStringField is scenario S4: a string field round-trips through
// CreateString and the vtable-indirected String accessor.
func TestStringField(t *testing.T) {
	b := NewBuilder(0)
	s := b.CreateString("hello")
	b.StartObject(1)
	b.PrependUOffsetTRelativeSlot(0, s, 0)
	o := b.EndObject()
	b.Finish(o)

	root := GetRoot(b.Output(), 0)
	off := root.Offset(4)
	require.NotEqualValues(t, 0, off)
	require.Equal(t, "hello", root.String(root.Pos+UOffsetT(off)))
}

// buildStat mirrors the layerzar/flatbuffers test schema: a table with
// an optional string id at slot 0, an int64 val at slot 1 (default 0)
// and a uint16 count at slot 2 (default 0).
func buildStat(b *Builder, id string, val int64, count uint16) UOffsetT {
	var idOff UOffsetT
	if id != "" {
		idOff = b.CreateString(id)
	}
	b.StartObject(3)
	if idOff != 0 {
		b.PrependUOffsetTRelativeSlot(0, idOff, 0)
	}
	b.PrependInt64Slot(1, val, 0)
	b.PrependUint16Slot(2, count, 0)
	return b.EndObject()
}

// TestVtableDeduplication is scenario S5: two structurally identical
// objects built back to back share one vtable entry instead of two.
func TestVtableDeduplication(t *testing.T) {
	b := NewBuilder(0)

	o1 := buildStat(b, "", 100, 5)
	require.Len(t, b.vtables, 1)

	o2 := buildStat(b, "", 100, 5)
	require.Len(t, b.vtables, 1, "identical shape must reuse the first vtable")

	root1 := &Table{Bytes: b.Bytes, Pos: UOffsetT(len(b.Bytes)) - o1}
	root2 := &Table{Bytes: b.Bytes, Pos: UOffsetT(len(b.Bytes)) - o2}
	require.EqualValues(t, 100, root1.GetInt64Slot(6, 0))
	require.EqualValues(t, 5, root1.GetUint16Slot(8, 0))
	require.EqualValues(t, 100, root2.GetInt64Slot(6, 0))
	require.EqualValues(t, 5, root2.GetUint16Slot(8, 0))
}

// TestVtableNotDeduplicatedAcrossShapes checks the negative case: a
// second object of a different shape (its id slot now set) does not
// match the first vtable and gets its own.
func TestVtableNotDeduplicatedAcrossShapes(t *testing.T) {
	b := NewBuilder(0)

	buildStat(b, "", 100, 5)
	require.Len(t, b.vtables, 1)

	buildStat(b, "named", 100, 5) // id now present: different shape
	require.Len(t, b.vtables, 2)
}

// TestBufferGrowth is scenario S6: a write that overflows the initial
// capacity triggers growth, and the pre-growth payload remains intact
// and readable afterward (property 8, "growth preserves content").
func TestBufferGrowth(t *testing.T) {
	b := NewBuilder(8)

	payload := make([]byte, 1000)
	for i := range payload {
		payload[i] = byte(i)
	}

	off := b.CreateByteString(payload)
	require.GreaterOrEqual(t, len(b.Bytes), 1024)

	pos := len(b.Bytes) - int(off)
	length := GetUOffsetT(b.Bytes[pos:])
	require.EqualValues(t, 1000, length)

	content := b.Bytes[pos+SizeUOffsetT : pos+SizeUOffsetT+1000]
	require.Equal(t, payload, content)
	require.Equal(t, byte(0), b.Bytes[pos+SizeUOffsetT+1000], "NUL terminator")

	buf := b.Output()
	require.Equal(t, len(b.Bytes)-int(b.Head()), len(buf))
}

// TestOffsetInvariant covers property 1 (0 <= head <= L at all times)
// and property 3 (Output length equals L - head) across a sequence of
// operations that forces multiple growths.
func TestOffsetInvariant(t *testing.T) {
	b := NewBuilder(4)
	for i := 0; i < 50; i++ {
		b.PrependInt64(int64(i))
		require.GreaterOrEqual(t, b.Head(), UOffsetT(0))
		require.LessOrEqual(t, int(b.Head()), len(b.Bytes))
	}
	require.Equal(t, len(b.Bytes)-int(b.Head()), len(b.Output()))
}

// TestPrepAlignment covers property 2: after Prep(size, additional),
// the tail-relative position is aligned to size, and minalign never
// shrinks.
func TestPrepAlignment(t *testing.T) {
	b := NewBuilder(0)
	b.PrependByte(1) // force an odd offset-from-tail
	b.Prep(SizeInt64, 0)
	require.Zero(t, (len(b.Bytes)-int(b.Head()))%SizeInt64)
	require.GreaterOrEqual(t, b.minalign, SizeInt64)

	prevAlign := b.minalign
	b.Prep(SizeInt8, 0)
	require.Equal(t, prevAlign, b.minalign, "minalign must never shrink")
}

// TestVectorRoundTrip covers property 6 for vectors: elements written
// via the Prepend family come back in the same order via the Table
// vector accessors.
func TestVectorRoundTrip(t *testing.T) {
	b := NewBuilder(0)
	b.StartVector(SizeInt32, 3, SizeInt32)
	b.PrependInt32(30)
	b.PrependInt32(20)
	b.PrependInt32(10)
	vec := b.EndVector(3)

	b.StartObject(1)
	b.PrependUOffsetTRelativeSlot(0, vec, 0)
	o := b.EndObject()
	b.Finish(o)

	root := GetRoot(b.Output(), 0)
	relOff := root.Offset(4)
	require.NotEqualValues(t, 0, relOff)

	require.Equal(t, 3, root.VectorLen(UOffsetT(relOff)))
	start := root.Vector(UOffsetT(relOff))
	require.EqualValues(t, 10, root.GetInt32(start))
	require.EqualValues(t, 20, root.GetInt32(start+SizeInt32))
	require.EqualValues(t, 30, root.GetInt32(start+2*SizeInt32))
}

// TestNewBuilderRejectsBadSize covers BuilderSizeError.
func TestNewBuilderRejectsBadSize(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		var sizeErr *BuilderSizeError
		require.ErrorAs(t, r.(error), &sizeErr)
		require.Equal(t, -1, sizeErr.Requested)
	}()
	NewBuilder(-1)
}

// TestSlotOutsideObjectPanics covers NotInObjectError.
func TestSlotOutsideObjectPanics(t *testing.T) {
	b := NewBuilder(0)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		var notInObj *NotInObjectError
		require.ErrorAs(t, r.(error), &notInObj)
	}()
	b.Slot(0)
}

// TestNestedObjectPanics covers ObjectIsNestedError.
func TestNestedObjectPanics(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		var nested *ObjectIsNestedError
		require.ErrorAs(t, r.(error), &nested)
	}()
	b.StartObject(1)
}

// TestPrependChecked exercises the dynamic entry point that makes
// TypeError reachable without a compile-time type mismatch.
func TestPrependChecked(t *testing.T) {
	b := NewBuilder(0)
	require.NoError(t, b.PrependChecked(Int16Type, 1234))

	err := b.PrependChecked(Int16Type, 1<<20)
	require.Error(t, err)
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
}

// TestReset verifies bookkeeping is cleared and the capacity kept.
func TestReset(t *testing.T) {
	b := NewBuilder(64)
	b.StartObject(1)
	b.PrependInt32Slot(0, 7, 0)
	b.EndObject()
	cap0 := cap(b.Bytes)

	b.Reset()
	require.Equal(t, cap0, cap(b.Bytes))
	require.Equal(t, 1, b.minalign)
	require.False(t, b.nested)
	require.False(t, b.finished)
	require.Equal(t, UOffsetT(len(b.Bytes)), b.Head())
}
