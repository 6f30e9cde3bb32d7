// Package gogds decodes GDSII stream files into an ordered sequence of named,
// typed records.
package gogds

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/Kazzz-S/gogds/internal/field"
	"github.com/Kazzz-S/gogds/internal/rectype"
	"github.com/Kazzz-S/gogds/internal/stream"
)

// Error kinds surfaced by a decode run. The stream and payload kinds are the
// internal sentinels re-exported so callers can match with errors.Is.
var (
	ErrMalformedHeader     = stream.ErrMalformedHeader
	ErrUnsupportedDataType = stream.ErrUnsupportedDataType
	ErrCorruptRecordLength = stream.ErrCorruptRecordLength
	ErrTruncatedPayload    = stream.ErrTruncatedPayload
	ErrInvalidEncoding     = field.ErrInvalidEncoding
	ErrUnknownRecordType   = errors.New("unknown record type")
	ErrMissingTerminator   = errors.New("missing terminator record")
)

// EndLib is the record type that terminates a stream.
const EndLib = rectype.EndLib

// Entry pairs one record's name with its decoded values.
type Entry struct {
	Name   string
	Values field.Values
}

// MarshalJSON renders the entry as a ["NAME", [values...]] pair.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Name, e.Values})
}

// Result captures one complete decode run. ByteCount is the number of source
// bytes consumed through the terminator record.
type Result struct {
	Entries   []Entry
	ByteCount int
}

// MarshalJSON renders the array-of-pairs document.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Entries)
}

// String renders the indented JSON document.
func (r Result) String() string {
	data, err := json.MarshalIndent(r.Entries, "", "    ")
	if err != nil {
		return fmt.Sprintf("records:%d bytes:%d (marshal error: %v)", len(r.Entries), r.ByteCount, err)
	}
	return string(data)
}

// Decode runs one pass over a fully loaded stream with default options.
func Decode(ctx context.Context, data []byte) (Result, error) {
	return DecodeWithOptions(ctx, data, DecodeOptions{})
}

// DecodeWithOptions runs one pass over a fully loaded stream: records are
// read in order, decoded, named, and accumulated until the terminator record
// (ENDLIB, itself included in the output). Any failure aborts the whole run
// with a zero Result; there is no per-record recovery. Cancellation is
// honored only at record boundaries so a record's header-and-payload read
// stays atomic.
func DecodeWithOptions(ctx context.Context, data []byte, opts DecodeOptions) (Result, error) {
	names := opts.names()
	reader := stream.NewReader(data)
	entries := make([]Entry, 0, 32)
	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return Result{}, fmt.Errorf("%w: end of stream after %d records", ErrMissingTerminator, index)
		}
		if err != nil {
			return Result{}, fmt.Errorf("record %d: %w", index, err)
		}
		values, err := field.Decode(rec)
		if err != nil {
			return Result{}, fmt.Errorf("record %d at offset %d: %w", index, rec.Offset, err)
		}
		name, ok := names(rec.Type)
		if !ok {
			return Result{}, fmt.Errorf("record %d at offset %d: %w 0x%02X", index, rec.Offset, ErrUnknownRecordType, rec.Type)
		}
		entries = append(entries, Entry{Name: name, Values: values})
		if rec.Type == rectype.EndLib {
			return Result{Entries: entries, ByteCount: int(reader.Offset())}, nil
		}
	}
}

// DecodeHex decodes a hex-encoded stream with default options.
func DecodeHex(ctx context.Context, raw string) (Result, error) {
	return DecodeHexWithOptions(ctx, raw, DecodeOptions{})
}

// DecodeHexWithOptions decodes a hex-encoded stream. Whitespace and the
// separators | and _ are ignored; a 0x prefix is accepted.
func DecodeHexWithOptions(ctx context.Context, raw string, opts DecodeOptions) (Result, error) {
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	return DecodeWithOptions(ctx, data, opts)
}

func decodeHex(input string) ([]byte, error) {
	clean := stripSeparators(input)
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex stream must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripSeparators(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
