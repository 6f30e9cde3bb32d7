package gogds

import "github.com/Kazzz-S/gogds/internal/rectype"

// DecodeOptions configures a decode run.
type DecodeOptions struct {
	// Names resolves a record-type tag to its display name. The zero value
	// selects the built-in GDSII table. The driver treats the lookup as
	// immutable configuration; a miss aborts the run.
	Names func(tag byte) (string, bool)
}

func (opts DecodeOptions) names() func(byte) (string, bool) {
	if opts.Names != nil {
		return opts.Names
	}
	return rectype.Name
}
