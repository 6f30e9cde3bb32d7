// Package rectype holds the fixed table of GDSII record-type names. It is
// configuration for the decode driver, not decoding logic.
package rectype

// EndLib is the record type that terminates a stream.
const EndLib byte = 0x04

// Name returns the canonical record name for a type tag. The table is a
// closed enumeration; the boolean reports whether the tag is known. The tag
// space has gaps (e.g. 0x14, 0x18, 0x24) and ends at ENDMASKS 0x38.
func Name(tag byte) (string, bool) {
	switch tag {
	case 0x00:
		return "HEADER", true
	case 0x01:
		return "BGNLIB", true
	case 0x02:
		return "LIBNAME", true
	case 0x03:
		return "UNITS", true
	case 0x04:
		return "ENDLIB", true
	case 0x05:
		return "BGNSTR", true
	case 0x06:
		return "STRNAME", true
	case 0x07:
		return "ENDSTR", true
	case 0x08:
		return "BOUNDARY", true
	case 0x09:
		return "PATH", true
	case 0x0A:
		return "SREF", true
	case 0x0B:
		return "AREF", true
	case 0x0C:
		return "TEXT", true
	case 0x0D:
		return "LAYER", true
	case 0x0E:
		return "DATATYPE", true
	case 0x0F:
		return "WIDTH", true
	case 0x10:
		return "XY", true
	case 0x11:
		return "ENDEL", true
	case 0x12:
		return "SNAME", true
	case 0x13:
		return "COLROW", true
	case 0x15:
		return "NODE", true
	case 0x16:
		return "TEXTTYPE", true
	case 0x17:
		return "PRESENTATION", true
	case 0x19:
		return "STRING", true
	case 0x1A:
		return "STRANS", true
	case 0x1B:
		return "MAG", true
	case 0x1C:
		return "ANGLE", true
	case 0x1F:
		return "REFLIBS", true
	case 0x20:
		return "FONTS", true
	case 0x21:
		return "PATHTYPE", true
	case 0x22:
		return "GENERATIONS", true
	case 0x23:
		return "ATTRTABLE", true
	case 0x26:
		return "ELFLAGS", true
	case 0x2A:
		return "NODETYPE", true
	case 0x2B:
		return "PROPATTR", true
	case 0x2C:
		return "PROPVALUE", true
	case 0x2D:
		return "BOX", true
	case 0x2E:
		return "BOXTYPE", true
	case 0x2F:
		return "PLEX", true
	case 0x32:
		return "TAPENUM", true
	case 0x33:
		return "TAPECODE", true
	case 0x36:
		return "FORMAT", true
	case 0x37:
		return "MASK", true
	case 0x38:
		return "ENDMASKS", true
	default:
		return "", false
	}
}
