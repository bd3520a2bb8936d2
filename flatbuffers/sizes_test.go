package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarTypeValidate(t *testing.T) {
	tests := []struct {
		name    string
		typ     ScalarType
		value   int64
		wantErr bool
	}{
		{name: "int8 min ok", typ: Int8Type, value: -128, wantErr: false},
		{name: "int8 max ok", typ: Int8Type, value: 127, wantErr: false},
		{name: "int8 below min", typ: Int8Type, value: -129, wantErr: true},
		{name: "int8 above max", typ: Int8Type, value: 128, wantErr: true},
		{name: "uint8 min ok", typ: Uint8Type, value: 0, wantErr: false},
		{name: "uint8 below min", typ: Uint8Type, value: -1, wantErr: true},
		{name: "uint8 above max", typ: Uint8Type, value: 256, wantErr: true},
		{name: "uint32 max ok", typ: Uint32Type, value: 1<<32 - 1, wantErr: false},
		{name: "int64 unbounded", typ: Int64Type, value: -1 << 62, wantErr: false},
		{name: "uint64 unbounded", typ: Uint64Type, value: -1, wantErr: false},
		{name: "bool always ok", typ: BoolType, value: 42, wantErr: false},
		{name: "voffset above max", typ: VOffsetType, value: 1 << 16, wantErr: true},
		{name: "voffset max ok", typ: VOffsetType, value: 1<<16 - 1, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.typ.Validate(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				var typeErr *TypeError
				require.ErrorAs(t, err, &typeErr)
				require.Equal(t, tt.typ.Name, typeErr.Type)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestScalarTypeString(t *testing.T) {
	require.Equal(t, "int32", Int32Type.String())
	require.Equal(t, "uoffset", UOffsetType.String())
}
