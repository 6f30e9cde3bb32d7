// Package field interprets record payloads into typed values according to the
// record's data-type tag.
package field

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/Kazzz-S/gogds/internal/stream"
)

// ErrInvalidEncoding reports an ASCII payload byte that is not a standalone
// UTF-8 code unit.
var ErrInvalidEncoding = errors.New("invalid text encoding")

// Values is the decoded payload of one record. Kind mirrors the record's
// data-type tag; at most one of the typed fields is populated.
type Values struct {
	Kind    stream.DataType
	Int16   []int16
	Int32   []int32
	Float32 []float32
	Float64 []float64
	Text    string
}

// MarshalJSON renders the homogeneous value array: [] when empty, the number
// sequence for the numeric kinds, and a single-element ["text"] for ASCII.
func (v Values) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case stream.Int16:
		return json.Marshal(v.Int16)
	case stream.Int32:
		return json.Marshal(v.Int32)
	case stream.Real32:
		return json.Marshal(v.Float32)
	case stream.Real64:
		return json.Marshal(v.Float64)
	case stream.ASCII:
		if v.Text == "" {
			return []byte("[]"), nil
		}
		return json.Marshal([]string{v.Text})
	default:
		return []byte("[]"), nil
	}
}

// Len reports the number of decoded elements (characters for ASCII).
func (v Values) Len() int {
	switch v.Kind {
	case stream.Int16:
		return len(v.Int16)
	case stream.Int32:
		return len(v.Int32)
	case stream.Real32:
		return len(v.Float32)
	case stream.Real64:
		return len(v.Float64)
	case stream.ASCII:
		return len(v.Text)
	default:
		return 0
	}
}

// Decode interprets the record payload according to its data-type tag. The
// Reader guarantees the payload length is a whole number of elements, so the
// chunk arithmetic here cannot go out of bounds.
func Decode(rec stream.Record) (Values, error) {
	v := Values{Kind: rec.DataType}
	switch rec.DataType {
	case stream.NoData, stream.BitArray:
		// Bit-array payloads are not decoded; both tags yield no values.
		return v, nil
	case stream.Int16:
		v.Int16 = make([]int16, 0, len(rec.Data)/2)
		for i := 0; i < len(rec.Data); i += 2 {
			v.Int16 = append(v.Int16, int16(binary.BigEndian.Uint16(rec.Data[i:i+2])))
		}
	case stream.Int32:
		v.Int32 = make([]int32, 0, len(rec.Data)/4)
		for i := 0; i < len(rec.Data); i += 4 {
			v.Int32 = append(v.Int32, int32(binary.BigEndian.Uint32(rec.Data[i:i+4])))
		}
	case stream.Real32:
		v.Float32 = make([]float32, 0, len(rec.Data)/4)
		for i := 0; i < len(rec.Data); i += 4 {
			v.Float32 = append(v.Float32, math.Float32frombits(binary.BigEndian.Uint32(rec.Data[i:i+4])))
		}
	case stream.Real64:
		v.Float64 = make([]float64, 0, len(rec.Data)/8)
		for i := 0; i < len(rec.Data); i += 8 {
			var chunk [8]byte
			copy(chunk[:], rec.Data[i:i+8])
			v.Float64 = append(v.Float64, DecodeReal64(chunk))
		}
	default:
		// ASCII is the fall-through interpretation. Payloads are restricted
		// to single-byte code units; multi-byte codepoints cannot be carried
		// by the one-byte element framing.
		for i, b := range rec.Data {
			if b >= utf8.RuneSelf {
				return Values{}, fmt.Errorf("%w: byte 0x%02X at payload index %d", ErrInvalidEncoding, b, i)
			}
		}
		v.Text = string(rec.Data)
	}
	return v, nil
}
