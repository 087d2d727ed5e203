package bits

import (
	"fmt"
	"unsafe"
)

// Uint is the set of scalar types a bit field can live in: any fixed-width
// unsigned integer, byte, or a named type (enum) with such an underlying
// representation.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Width returns the number of bits a value of type T occupies.
func Width[T Uint]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// Mask returns a value of type T with count consecutive bits set,
// starting at the lsb-relative offset start.
//
// An empty mask or one reaching past the width of T has no valid use and
// indicates a bug in the caller, so Mask panics rather than returning a
// silently wrong value. Field and layout constructors validate their spans
// up front and never trip this.
func Mask[T Uint](start, count uint) T {
	w := Width[T]()
	if count == 0 || count > w || start > w-count {
		panic(fmt.Sprintf("bits: invalid mask: start %d, count %d exceeds %d-bit scalar", start, count, w))
	}
	ones := ^T(0) >> (w - count)
	return ones << start
}
