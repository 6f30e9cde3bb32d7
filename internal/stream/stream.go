// Package stream reads the record framing of a GDSII stream file: a
// concatenation of length-prefixed records, each carrying a record-type tag, a
// data-type tag, and a payload of fixed-width elements.
package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// DataType is the 1-byte tag describing how a record payload is grouped and
// interpreted. The enumeration is closed; anything else is a stream error.
type DataType byte

const (
	NoData   DataType = 0x00
	BitArray DataType = 0x01
	Int16    DataType = 0x02
	Int32    DataType = 0x03
	Real32   DataType = 0x04
	Real64   DataType = 0x05
	ASCII    DataType = 0x06
)

// Width returns the element width in bytes for the data type. The boolean
// indicates whether the tag belongs to the enumeration.
func (d DataType) Width() (int, bool) {
	switch d {
	case NoData:
		return 0, true
	case BitArray:
		return 1, true
	case Int16:
		return 2, true
	case Int32:
		return 4, true
	case Real32:
		return 4, true
	case Real64:
		return 8, true
	case ASCII:
		return 1, true
	default:
		return 0, false
	}
}

// String names the tag for error messages.
func (d DataType) String() string {
	switch d {
	case NoData:
		return "NoData"
	case BitArray:
		return "BitArray"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Real32:
		return "Real32"
	case Real64:
		return "Real64"
	case ASCII:
		return "ASCII"
	default:
		return fmt.Sprintf("DataType(0x%02X)", byte(d))
	}
}

var (
	ErrMalformedHeader     = errors.New("malformed record header")
	ErrUnsupportedDataType = errors.New("unsupported data type")
	ErrCorruptRecordLength = errors.New("corrupt record length")
	ErrTruncatedPayload    = errors.New("truncated record payload")
)

const headerLen = 4

// Record is one framed unit of the stream. Length is the declared header
// value (header plus payload); Data holds the Length-4 payload bytes as
// consecutive fixed-width elements. Offset is the byte position of the record
// start within the source.
type Record struct {
	Offset   int64
	Length   int
	Type     byte
	DataType DataType
	Data     []byte
}

// Reader is a cursor over a finite in-memory byte source. One Reader serves
// exactly one linear decode pass; it must not be shared.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps a fully loaded stream. The slice is not copied; callers
// must not mutate it during the pass.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset reports the current byte position, i.e. the cumulative length of all
// records read so far.
func (r *Reader) Offset() int64 {
	return int64(r.pos)
}

// Next reads one record and advances the position by exactly the record's
// declared length. At a clean record boundary with no bytes left it returns
// io.EOF; every other failure is one of the sentinel errors above, wrapped
// with the offset of the record start. No resynchronization is attempted: a
// failed Reader must be discarded.
func (r *Reader) Next() (Record, error) {
	start := r.pos
	remaining := len(r.data) - r.pos
	if remaining == 0 {
		return Record{}, io.EOF
	}
	if remaining < headerLen {
		return Record{}, fmt.Errorf("%w: %d bytes left at offset %d", ErrMalformedHeader, remaining, start)
	}
	length := int(int16(binary.BigEndian.Uint16(r.data[start : start+2])))
	recType := r.data[start+2]
	dataType := DataType(r.data[start+3])
	if length < headerLen {
		return Record{}, fmt.Errorf("%w: declared length %d at offset %d", ErrCorruptRecordLength, length, start)
	}
	width, ok := dataType.Width()
	if !ok {
		return Record{}, fmt.Errorf("%w: tag 0x%02X at offset %d", ErrUnsupportedDataType, byte(dataType), start)
	}
	payloadLen := length - headerLen
	if width == 0 {
		if payloadLen != 0 {
			return Record{}, fmt.Errorf("%w: %s record carries %d payload bytes at offset %d", ErrCorruptRecordLength, dataType, payloadLen, start)
		}
	} else if payloadLen%width != 0 {
		return Record{}, fmt.Errorf("%w: payload of %d bytes is not a multiple of %s element width %d at offset %d", ErrCorruptRecordLength, payloadLen, dataType, width, start)
	}
	if remaining < length {
		return Record{}, fmt.Errorf("%w: record declares %d bytes but %d remain at offset %d", ErrTruncatedPayload, length, remaining, start)
	}
	r.pos = start + length
	return Record{
		Offset:   int64(start),
		Length:   length,
		Type:     recType,
		DataType: dataType,
		Data:     r.data[start+headerLen : start+length],
	}, nil
}
