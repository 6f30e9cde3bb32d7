package field

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kazzz-S/gogds/internal/stream"
)

func rec(dataType stream.DataType, data []byte) stream.Record {
	return stream.Record{Length: 4 + len(data), DataType: dataType, Data: data}
}

func TestDecodeInt16(t *testing.T) {
	v, err := Decode(rec(stream.Int16, []byte{0x02, 0x58, 0xFF, 0xFF, 0x80, 0x00, 0x7F, 0xFF}))
	require.NoError(t, err)
	require.Equal(t, stream.Int16, v.Kind)
	require.Equal(t, []int16{600, -1, -32768, 32767}, v.Int16)
}

func TestDecodeInt32(t *testing.T) {
	v, err := Decode(rec(stream.Int32, []byte{
		0x00, 0x00, 0x03, 0xE8,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x80, 0x00, 0x00, 0x00,
	}))
	require.NoError(t, err)
	require.Equal(t, []int32{1000, -1, -2147483648}, v.Int32)
}

func TestDecodeReal32(t *testing.T) {
	v, err := Decode(rec(stream.Real32, []byte{
		0x3F, 0x80, 0x00, 0x00, // 1.0
		0xC0, 0x20, 0x00, 0x00, // -2.5
	}))
	require.NoError(t, err)
	require.Equal(t, []float32{1.0, -2.5}, v.Float32)
}

func TestDecodeReal64Chunks(t *testing.T) {
	v, err := Decode(rec(stream.Real64, []byte{
		0x3E, 0x41, 0x89, 0x37, 0x4B, 0xC6, 0xA7, 0xF0,
		0x39, 0x44, 0xB8, 0x2F, 0xA0, 0x9B, 0x5A, 0x54,
	}))
	require.NoError(t, err)
	require.Len(t, v.Float64, 2)
	require.InEpsilon(t, 0.001, v.Float64[0], 1e-12)
	require.InEpsilon(t, 1e-9, v.Float64[1], 1e-12)
}

func TestDecodeASCII(t *testing.T) {
	v, err := Decode(rec(stream.ASCII, []byte("LIB.DB")))
	require.NoError(t, err)
	require.Equal(t, "LIB.DB", v.Text)
}

func TestDecodeASCIIKeepsPadding(t *testing.T) {
	v, err := Decode(rec(stream.ASCII, []byte{'T', 'O', 'P', 0x00}))
	require.NoError(t, err)
	require.Equal(t, "TOP\x00", v.Text)
}

func TestDecodeASCIIRejectsMultiByteUnits(t *testing.T) {
	_, err := Decode(rec(stream.ASCII, []byte{'A', 0xC3, 0xA9}))
	require.ErrorIs(t, err, ErrInvalidEncoding)
	require.Contains(t, err.Error(), "0xC3")
	require.Contains(t, err.Error(), "index 1")
}

func TestDecodeNoDataAndBitArray(t *testing.T) {
	v, err := Decode(rec(stream.NoData, nil))
	require.NoError(t, err)
	require.Equal(t, 0, v.Len())

	v, err = Decode(rec(stream.BitArray, []byte{0xFF, 0x01}))
	require.NoError(t, err)
	require.Equal(t, 0, v.Len())
}

func TestValuesMarshalJSON(t *testing.T) {
	cases := []struct {
		name   string
		record stream.Record
		want   string
	}{
		{"int16", rec(stream.Int16, []byte{0x02, 0x58}), "[600]"},
		{"int16 empty", rec(stream.Int16, nil), "[]"},
		{"int32", rec(stream.Int32, []byte{0x00, 0x00, 0x03, 0xE8}), "[1000]"},
		{"ascii", rec(stream.ASCII, []byte("TOP")), `["TOP"]`},
		{"ascii empty", rec(stream.ASCII, nil), "[]"},
		{"no data", rec(stream.NoData, nil), "[]"},
		{"bit array", rec(stream.BitArray, []byte{0x01}), "[]"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v, err := Decode(tc.record)
			require.NoError(t, err)
			data, err := json.Marshal(v)
			require.NoError(t, err)
			require.Equal(t, tc.want, string(data))
		})
	}
}
