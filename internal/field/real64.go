package field

import (
	"encoding/binary"
	"math"
)

// DecodeReal64 converts the GDSII 8-byte real (IBM 370 style: sign bit,
// 7-bit excess-64 base-16 exponent, 56-bit fractional mantissa) to an IEEE
// 754 double. Pure and defined for every input; the all-zero pattern is true
// zero and falls out of the formula.
func DecodeReal64(b [8]byte) float64 {
	sign := 1.0
	if b[0]&0x80 != 0 {
		sign = -1.0
	}
	// 16^n == 2^(4n), so the base-16 exponent scales by 4 binary places.
	exp2 := 4 * (int(b[0]&0x7F) - 64)
	// Bytes 1..7 hold the fraction with the binary point left of bit 8:
	// mantissa = m / 2^56, a value in [0, 1).
	m := binary.BigEndian.Uint64(b[:]) & 0x00FF_FFFF_FFFF_FFFF
	// Ldexp keeps the exponent adjustment in the binary exponent field, so
	// the extremes (2^-312 .. 2^196) neither overflow nor round through an
	// intermediate power.
	return sign * math.Ldexp(float64(m), exp2-56)
}
