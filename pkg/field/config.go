package field

import "fmt"

type offsetKind uint8

const (
	offsetUnspecified offsetKind = iota
	offsetKeep
	offsetAt
)

// Offset selects where, inside the value scalar, a field's bits sit on get
// and are expected on set. It has three distinct variants: the zero value
// defers to the next configuration layer, Keep pins the bits at the field's
// own storage offset (no shifting), and At places them at a literal
// position. Keep and "unspecified" are deliberately separate so a caller
// can request no-shift regardless of what a lower-priority layer defaults
// to.
type Offset struct {
	kind offsetKind
	pos  uint
}

// At returns an Offset placing the field's bits at the given lsb-relative
// position of the value scalar.
func At(pos uint) Offset {
	return Offset{kind: offsetAt, pos: pos}
}

// Keep returns an Offset pinning the field's bits at the field's storage
// offset, so gets and sets move nothing.
func Keep() Offset {
	return Offset{kind: offsetKeep}
}

// Specified reports whether o selects a position rather than deferring.
func (o Offset) Specified() bool {
	return o.kind != offsetUnspecified
}

func (o Offset) String() string {
	switch o.kind {
	case offsetKeep:
		return "keep"
	case offsetAt:
		return fmt.Sprintf("at %d", o.pos)
	}
	return "unspecified"
}

// Config carries the per-field or per-layout defaults a call site may
// override: the value-side offset and the set strategy. The zero value
// specifies nothing. Configs are merged attribute by attribute, higher
// priority first; they are never mutated.
type Config struct {
	Offset   Offset
	Strategy Strategy
}

// Merge returns c with any unspecified attribute filled in from lower.
func (c Config) Merge(lower Config) Config {
	if !c.Offset.Specified() {
		c.Offset = lower.Offset
	}
	if c.Strategy == StrategyUnspecified {
		c.Strategy = lower.Strategy
	}
	return c
}
