package bits

// Move relocates nbits consecutive bits from srcOff in src to dstOff in a
// value of type D. Source and destination types are chosen independently;
// named (enum) types move via their underlying representation through the
// generic instantiation.
//
// Unless skipMask is set, src is first masked down to exactly the addressed
// run. Callers that have already masked (or deliberately want adjacent bits
// carried along) pass skipMask true.
//
// The order of the conversion and the shift depends on the direction of
// travel:
//
//   - moving down (srcOff > dstOff): shift in the source representation
//     first, then convert — the bits start at positions that may not exist
//     in a narrower D, and converting first would truncate them;
//   - moving up (srcOff < dstOff): convert first, then shift in the
//     destination representation — the bits end at positions that may not
//     exist in a narrower S;
//   - no movement: convert only.
//
// Both spans must be valid for their scalars (see Check); Move itself does
// not re-validate.
func Move[D, S Uint](src S, nbits, srcOff, dstOff uint, skipMask bool) D {
	v := src
	if !skipMask {
		v &= Mask[S](srcOff, nbits)
	}
	shift := int(srcOff) - int(dstOff)
	switch {
	case shift == 0:
		return D(v)
	case shift > 0:
		return D(v >> uint(shift))
	default:
		return D(v) << uint(-shift)
	}
}

// Extract returns the bits addressed by s in src, moved down to offset 0 of
// a value of type D.
func Extract[D, S Uint](src S, s Span) D {
	return Move[D](src, s.Bits, s.Offset, 0, false)
}
