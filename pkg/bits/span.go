package bits

import "fmt"

// Span addresses a contiguous run of bits inside a scalar: Bits consecutive
// bits starting at the lsb-relative Offset.
type Span struct {
	Bits   uint
	Offset uint
}

// End returns the first bit position past the span.
func (s Span) End() uint {
	return s.Offset + s.Bits
}

func (s Span) String() string {
	return fmt.Sprintf("bits[%d,%d)", s.Offset, s.End())
}

// Check reports whether s is a valid span within a scalar of type T.
// The bounds are compared without computing Offset+Bits, which could wrap.
func Check[T Uint](s Span) error {
	if s.Bits == 0 {
		return fmt.Errorf("span %s has zero bits", s)
	}
	if w := Width[T](); s.Bits > w || s.Offset > w-s.Bits {
		return fmt.Errorf("span %s does not fit in %d-bit scalar", s, w)
	}
	return nil
}
