// Package field implements named, typed views over bit runs inside a
// fixed-width scalar. A Field is a pure descriptor: it holds a span and a
// default configuration, never the storage itself. Get and Set operate on
// caller-supplied storage and delegate the actual bit movement to pkg/bits.
package field

import (
	"fmt"

	"github.com/vexingcodes/bitfield/pkg/bits"
)

// Field is a stateless descriptor of Bits consecutive bits at Offset inside
// a storage scalar of type S, read and written as values of type V. V
// defaults to S (see New); NewAs picks a different value type, typically a
// narrower integer or an enum.
//
// A Field is fixed at construction and safe to copy and share.
type Field[S, V bits.Uint] struct {
	span bits.Span
	def  Config
}

// New builds a field of nbits bits at offset within S, valued as S itself.
// The optional cfg becomes the field default configuration.
//
// Construction fails if the span is empty or exceeds the width of S.
func New[S bits.Uint](nbits, offset uint, cfg ...Config) (Field[S, S], error) {
	return NewAs[S, S](nbits, offset, cfg...)
}

// NewAs builds a field of nbits bits at offset within S, read and written
// as values of type V.
//
// Construction fails if the span is empty, exceeds the width of S, or the
// field's bits do not fit in V at the default value offset.
func NewAs[S, V bits.Uint](nbits, offset uint, cfg ...Config) (Field[S, V], error) {
	f := Field[S, V]{span: bits.Span{Bits: nbits, Offset: offset}}
	if len(cfg) > 0 {
		f.def = cfg[0]
	}
	if err := f.check(); err != nil {
		return Field[S, V]{}, err
	}
	return f, nil
}

// As re-types the value side of a field, keeping its span and default
// configuration. It panics if the field's bits do not fit in V at the
// default value offset; use it for fields whose fit is known at
// declaration time.
func As[V bits.Uint, S, W bits.Uint](f Field[S, W]) Field[S, V] {
	g := Field[S, V]{span: f.span, def: f.def}
	if err := g.check(); err != nil {
		panic("field: " + err.Error())
	}
	return g
}

// Must returns f or panics on a non-nil construction error. Intended for
// package-level field declarations.
func Must[S, V bits.Uint](f Field[S, V], err error) Field[S, V] {
	if err != nil {
		panic(err)
	}
	return f
}

func (f Field[S, V]) check() error {
	if err := bits.Check[S](f.span); err != nil {
		return err
	}
	return bits.Check[V](bits.Span{Bits: f.span.Bits, Offset: f.valueOffset(Offset{})})
}

// Bits returns the field's width in bits.
func (f Field[S, V]) Bits() uint {
	return f.span.Bits
}

// Offset returns the field's lsb-relative offset within the storage scalar.
func (f Field[S, V]) Offset() uint {
	return f.span.Offset
}

// Span returns the field's span within the storage scalar.
func (f Field[S, V]) Span() bits.Span {
	return f.span
}

// Default returns the field's default configuration.
func (f Field[S, V]) Default() Config {
	return f.def
}

// valueOffset resolves where the field's bits sit inside V: the call-site
// override wins, then the field default, then position 0. A Keep at either
// layer resolves to the storage offset.
func (f Field[S, V]) valueOffset(o Offset) uint {
	if !o.Specified() {
		o = f.def.Offset
	}
	switch o.kind {
	case offsetKeep:
		return f.span.Offset
	case offsetAt:
		return o.pos
	}
	return 0
}

func (f Field[S, V]) strategy(s Strategy) Strategy {
	if s == StrategyUnspecified {
		s = f.def.Strategy
	}
	if s == StrategyUnspecified {
		s = DefaultStrategy
	}
	return s
}

// mustFit rejects a resolved value offset that puts the field's bits
// outside V. Field defaults are validated at construction; only a
// call-site override can reach this, and such an override is a programming
// error on par with an out-of-range slice index.
func (f Field[S, V]) mustFit(off uint) {
	if err := bits.Check[V](bits.Span{Bits: f.span.Bits, Offset: off}); err != nil {
		panic("field: " + err.Error())
	}
}

// Get extracts the field's bits from src and returns them at the merged
// value offset in a value of type V. Opts may override the offset; no
// strategy applies to reads.
func (f Field[S, V]) Get(src S, opts ...GetOption) V {
	var o Offset
	for _, opt := range opts {
		if opt.offset.Specified() {
			o = opt.offset
		}
	}
	off := f.valueOffset(o)
	f.mustFit(off)
	return bits.Move[V](src, f.span.Bits, f.span.Offset, off, false)
}

// Set writes v into the field's span of *into, first clearing the span and
// then ORing in the relocated bits. Opts may override the value offset and
// the strategy for this call.
//
// The return pair preserves the per-strategy contract: every successful
// write returns (true, nil); a StrategyReturnBool rejection returns
// (false, nil) with *into untouched; a StrategyError rejection returns
// false and an error wrapping ErrInvalidBits with *into untouched.
// StrategyUnchecked and StrategyMask never fail.
func (f Field[S, V]) Set(into *S, v V, opts ...SetOption) (bool, error) {
	var cfg Config
	for _, opt := range opts {
		cfg = opt.cfg.Merge(cfg)
	}
	off := f.valueOffset(cfg.Offset)
	f.mustFit(off)

	switch s := f.strategy(cfg.Strategy); s {
	case StrategyUnchecked:
		f.write(into, v, off, true)
	case StrategyMask:
		f.write(into, v, off, false)
	case StrategyReturnBool:
		if f.excess(v, off) {
			return false, nil
		}
		f.write(into, v, off, true)
	case StrategyError:
		if f.excess(v, off) {
			return false, fmt.Errorf("%w: value %#x does not fit %s of %d-bit storage",
				ErrInvalidBits, uint64(v), f.span, bits.Width[S]())
		}
		f.write(into, v, off, true)
	default:
		panic(fmt.Sprintf("field: unknown strategy %d", s))
	}
	return true, nil
}

// write clears the field's span and ORs in v relocated from off to the
// storage offset. The checked strategies have already validated v and the
// unchecked strategy wants the raw bits, so only the mask strategy leaves
// skipMask false.
func (f Field[S, V]) write(into *S, v V, off uint, skipMask bool) {
	*into = (*into &^ bits.Mask[S](f.span.Offset, f.span.Bits)) |
		bits.Move[S](v, f.span.Bits, off, f.span.Offset, skipMask)
}

// excess reports whether v has any bit set outside the field's width at
// the resolved value offset.
func (f Field[S, V]) excess(v V, off uint) bool {
	return v&^bits.Mask[V](off, f.span.Bits) != 0
}
