package flatbuffers

// 数值类型描述符：每种标量类型在这里只登记一次 —— 宽度、取值范围、名字 ——
// Builder/Table 的其余代码只引用这些常量和描述符，不重复定义宽度。

// Byte widths, mirroring number_types.py's TypeFlags.bytewidth.
const (
	SizeUint8   = 1
	SizeUint16  = 2
	SizeUint32  = 4
	SizeUint64  = 8
	SizeInt8    = 1
	SizeInt16   = 2
	SizeInt32   = 4
	SizeInt64   = 8
	SizeFloat32 = 4
	SizeFloat64 = 8
	SizeBool    = 1
	SizeByte    = 1

	SizeSOffsetT = 4
	SizeUOffsetT = 4
	SizeVOffsetT = 2
)

// VtableMetadataFields is the count of metadata fields in each vtable:
// the vtable's own byte-size and the described object's byte-size.
const VtableMetadataFields = 2

// SOffsetT, UOffsetT and VOffsetT are the three named offset aliases
// from spec §3: SOffsetT points an object at its vtable (may be
// negative), UOffsetT is a forward-only relative reference, VOffsetT
// indexes inside a vtable.
type SOffsetT int32
type UOffsetT uint32
type VOffsetT uint16

// Kind discriminates the scalar kinds a ScalarType describes.
type Kind uint8

const (
	KindBool Kind = iota
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
)

// ScalarType is a numeric type descriptor: byte-width, inclusive
// range (where bounded), and a name for diagnostics. It exists for
// the dynamic entry points (PrependChecked/GetChecked) — the static,
// per-kind Prepend<Kind>/Get<Kind> methods generated code calls don't
// need it, because the Go compiler already rejects an out-of-range
// literal for e.g. an int8 parameter.
type ScalarType struct {
	Kind      Kind
	Name      string
	ByteWidth int
	bounded   bool
	min, max  int64
}

func (t ScalarType) String() string { return t.Name }

// Validate reports a TypeError if n lies outside the type's declared
// range. Floating kinds and Bool are always valid (int64 cannot
// express every float64, so range checks for those are skipped; any
// caller needing float bounds should compare against
// -/+math.MaxFloat32 directly).
func (t ScalarType) Validate(n int64) error {
	if !t.bounded {
		return nil
	}
	if n < t.min || n > t.max {
		return &TypeError{Type: t.Name, Value: n, Min: t.min, Max: t.max}
	}
	return nil
}

var (
	BoolType    = ScalarType{Kind: KindBool, Name: "bool", ByteWidth: SizeBool}
	Uint8Type   = ScalarType{Kind: KindUint8, Name: "uint8", ByteWidth: SizeUint8, bounded: true, min: 0, max: 1<<8 - 1}
	Uint16Type  = ScalarType{Kind: KindUint16, Name: "uint16", ByteWidth: SizeUint16, bounded: true, min: 0, max: 1<<16 - 1}
	Uint32Type  = ScalarType{Kind: KindUint32, Name: "uint32", ByteWidth: SizeUint32, bounded: true, min: 0, max: 1<<32 - 1}
	Uint64Type  = ScalarType{Kind: KindUint64, Name: "uint64", ByteWidth: SizeUint64}
	Int8Type    = ScalarType{Kind: KindInt8, Name: "int8", ByteWidth: SizeInt8, bounded: true, min: -1 << 7, max: 1<<7 - 1}
	Int16Type   = ScalarType{Kind: KindInt16, Name: "int16", ByteWidth: SizeInt16, bounded: true, min: -1 << 15, max: 1<<15 - 1}
	Int32Type   = ScalarType{Kind: KindInt32, Name: "int32", ByteWidth: SizeInt32, bounded: true, min: -1 << 31, max: 1<<31 - 1}
	Int64Type   = ScalarType{Kind: KindInt64, Name: "int64", ByteWidth: SizeInt64}
	Float32Type = ScalarType{Kind: KindFloat32, Name: "float32", ByteWidth: SizeFloat32}
	Float64Type = ScalarType{Kind: KindFloat64, Name: "float64", ByteWidth: SizeFloat64}

	// Offset aliases, each backed by the integer kind of the same width.
	SOffsetType = ScalarType{Kind: KindInt32, Name: "soffset", ByteWidth: SizeSOffsetT, bounded: true, min: -1 << 31, max: 1<<31 - 1}
	UOffsetType = ScalarType{Kind: KindUint32, Name: "uoffset", ByteWidth: SizeUOffsetT, bounded: true, min: 0, max: 1<<32 - 1}
	VOffsetType = ScalarType{Kind: KindUint16, Name: "voffset", ByteWidth: SizeVOffsetT, bounded: true, min: 0, max: 1<<16 - 1}
)
