package flatbuffers

import (
	"math"
	"unsafe"
)

// 字节编解码：所有标量都按小端序读写，与宿主 CPU 字节序无关。
// Get* 直接从 buf[0:] 处读取；调用方需要自己保证 buf 足够长 —— 这里不做
// 越界检查，边界证明交给 Builder 的对齐/预留逻辑和 Table 的偏移计算。

func GetBool(buf []byte) bool { return buf[0] != 0 }

func GetByte(buf []byte) byte { return buf[0] }

func GetUint8(buf []byte) uint8 { return buf[0] }

func GetUint16(buf []byte) uint16 {
	return uint16(buf[0]) | uint16(buf[1])<<8
}

func GetUint32(buf []byte) uint32 {
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
}

func GetUint64(buf []byte) uint64 {
	return uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
}

func GetInt8(buf []byte) int8 { return int8(buf[0]) }

func GetInt16(buf []byte) int16 { return int16(GetUint16(buf)) }

func GetInt32(buf []byte) int32 { return int32(GetUint32(buf)) }

func GetInt64(buf []byte) int64 { return int64(GetUint64(buf)) }

func GetFloat32(buf []byte) float32 { return math.Float32frombits(GetUint32(buf)) }

func GetFloat64(buf []byte) float64 { return math.Float64frombits(GetUint64(buf)) }

func GetUOffsetT(buf []byte) UOffsetT { return UOffsetT(GetUint32(buf)) }

func GetVOffsetT(buf []byte) VOffsetT { return VOffsetT(GetUint16(buf)) }

func GetSOffsetT(buf []byte) SOffsetT { return SOffsetT(GetInt32(buf)) }

func WriteBool(buf []byte, x bool) {
	if x {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
}

func WriteByte(buf []byte, x byte) { buf[0] = x }

func WriteUint8(buf []byte, x uint8) { buf[0] = x }

func WriteUint16(buf []byte, x uint16) {
	buf[0] = byte(x)
	buf[1] = byte(x >> 8)
}

func WriteUint32(buf []byte, x uint32) {
	buf[0] = byte(x)
	buf[1] = byte(x >> 8)
	buf[2] = byte(x >> 16)
	buf[3] = byte(x >> 24)
}

func WriteUint64(buf []byte, x uint64) {
	buf[0] = byte(x)
	buf[1] = byte(x >> 8)
	buf[2] = byte(x >> 16)
	buf[3] = byte(x >> 24)
	buf[4] = byte(x >> 32)
	buf[5] = byte(x >> 40)
	buf[6] = byte(x >> 48)
	buf[7] = byte(x >> 56)
}

// WriteInt8 masks with 0xff, so negative values encode as their
// two's-complement byte pattern (see spec.md Open Question #2).
func WriteInt8(buf []byte, x int8) { buf[0] = byte(x) & 0xff }

func WriteInt16(buf []byte, x int16) { WriteUint16(buf, uint16(x)) }

func WriteInt32(buf []byte, x int32) { WriteUint32(buf, uint32(x)) }

func WriteInt64(buf []byte, x int64) { WriteUint64(buf, uint64(x)) }

func WriteFloat32(buf []byte, x float32) { WriteUint32(buf, math.Float32bits(x)) }

func WriteFloat64(buf []byte, x float64) { WriteUint64(buf, math.Float64bits(x)) }

func WriteUOffsetT(buf []byte, x UOffsetT) { WriteUint32(buf, uint32(x)) }

func WriteVOffsetT(buf []byte, x VOffsetT) { WriteUint16(buf, uint16(x)) }

func WriteSOffsetT(buf []byte, x SOffsetT) { WriteInt32(buf, int32(x)) }

// Read decodes a scalar of the given kind at buf[0:], boxing it as
// int64 for signed integer kinds, uint64 for unsigned integer kinds,
// float64 for floating kinds, and bool for booleans. It backs the dynamic
// GetChecked path on Table; generated code uses the typed Get<Kind>
// functions above instead.
func Read(t ScalarType, buf []byte) interface{} {
	switch t.Kind {
	case KindBool:
		return GetBool(buf)
	case KindUint8:
		return uint64(GetUint8(buf))
	case KindUint16:
		return uint64(GetUint16(buf))
	case KindUint32:
		return uint64(GetUint32(buf))
	case KindUint64:
		return GetUint64(buf)
	case KindInt8:
		return int64(GetInt8(buf))
	case KindInt16:
		return int64(GetInt16(buf))
	case KindInt32:
		return int64(GetInt32(buf))
	case KindInt64:
		return GetInt64(buf)
	case KindFloat32:
		return float64(GetFloat32(buf))
	case KindFloat64:
		return GetFloat64(buf)
	default:
		panic("flatbuffers: unknown scalar kind")
	}
}

// Write encodes an integer or bool scalar of the given kind at buf[0:].
// Returns a *TypeError, writing nothing, if the value doesn't fit the
// declared range. Panics for the floating kinds.
func Write(t ScalarType, buf []byte, value int64) error {
	if err := t.Validate(value); err != nil {
		return err
	}
	switch t.Kind {
	case KindBool:
		WriteBool(buf, value != 0)
	case KindUint8:
		WriteUint8(buf, uint8(value))
	case KindUint16:
		WriteUint16(buf, uint16(value))
	case KindUint32:
		WriteUint32(buf, uint32(value))
	case KindUint64:
		WriteUint64(buf, uint64(value))
	case KindInt8:
		WriteInt8(buf, int8(value))
	case KindInt16:
		WriteInt16(buf, int16(value))
	case KindInt32:
		WriteInt32(buf, int32(value))
	case KindInt64:
		WriteInt64(buf, value)
	default:
		panic("flatbuffers: Write called with a non-integer ScalarType")
	}
	return nil
}

// byteSliceToString borrows the payload directly rather than copying,
// matching the zero-copy read contract in spec.md §1 ("without any
// parsing or heap copying"). The caller must not mutate or discard the
// backing buffer while the returned string is alive.
func byteSliceToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
