// Package layout assigns non-overlapping spans to an ordered sequence of
// named fields within one storage scalar. Offsets are allocated lsb to msb
// by a single pass over the declarations: each field starts where the
// previous one (or padding) ended. The resulting Layout is immutable; the
// only run-time state is the storage word inside each Record it creates.
package layout

import (
	"errors"
	"fmt"

	"github.com/vexingcodes/bitfield/pkg/bits"
	"github.com/vexingcodes/bitfield/pkg/field"
	"k8s.io/apimachinery/pkg/labels"
)

type decl[S bits.Uint] struct {
	name string
	fld  field.Field[S, S]
	lbls labels.Set
}

// Builder accumulates field declarations for one storage scalar type. Each
// Add places its field at the running offset and advances it; Pad advances
// it without producing a field. Declaration errors stick to the builder
// and surface joined from Build.
type Builder[S bits.Uint] struct {
	def    field.Config
	cursor uint
	decls  []decl[S]
	errs   []error
}

// New returns a builder for fields over a storage scalar of type S. The
// optional cfg is the layout-wide default configuration, merged under each
// field's own.
func New[S bits.Uint](cfg ...field.Config) *Builder[S] {
	b := &Builder[S]{}
	if len(cfg) > 0 {
		b.def = cfg[0]
	}
	return b
}

// Add declares a field of nbits bits at the current offset. The optional
// cfg overrides the layout default attribute by attribute.
func (b *Builder[S]) Add(name string, nbits uint, cfg ...field.Config) *Builder[S] {
	return b.add(name, nbits, nil, cfg...)
}

// AddLabeled declares a field like Add and attaches metadata labels to it,
// queryable through Layout.ByLabel.
func (b *Builder[S]) AddLabeled(name string, nbits uint, lbls labels.Set, cfg ...field.Config) *Builder[S] {
	return b.add(name, nbits, lbls, cfg...)
}

func (b *Builder[S]) add(name string, nbits uint, lbls labels.Set, cfg ...field.Config) *Builder[S] {
	if name == "" {
		b.errs = append(b.errs, fmt.Errorf("declaration %d has no name", len(b.decls)))
	}
	c := field.Config{}
	if len(cfg) > 0 {
		c = cfg[0]
	}
	fld, err := field.New[S](nbits, b.cursor, c.Merge(b.def))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("field %q: %w", name, err))
	} else {
		b.decls = append(b.decls, decl[S]{name: name, fld: fld, lbls: lbls})
	}
	b.cursor += nbits
	return b
}

// Pad advances the running offset by nbits without declaring a field.
func (b *Builder[S]) Pad(nbits uint) *Builder[S] {
	if w := bits.Width[S](); nbits > w || b.cursor > w-nbits {
		b.errs = append(b.errs, fmt.Errorf("%d padding bits at offset %d exceed %d-bit storage",
			nbits, b.cursor, w))
	}
	b.cursor += nbits
	return b
}

// Offset returns the running offset: the total bits declared so far,
// padding included, and the position the next declaration would get.
func (b *Builder[S]) Offset() uint {
	return b.cursor
}

// IsComplete reports whether the declarations cover every bit of the
// storage scalar.
func (b *Builder[S]) IsComplete() bool {
	return b.cursor == bits.Width[S]()
}

// Build resolves the declarations into an immutable Layout. It fails,
// reporting every accumulated declaration error, if any declaration was
// invalid, exceeded the storage width, or reused a name.
func (b *Builder[S]) Build() (Layout[S], error) {
	errs := b.errs
	index := make(map[string]int, len(b.decls))
	for i, d := range b.decls {
		if _, dup := index[d.name]; dup {
			errs = append(errs, fmt.Errorf("duplicate field %q", d.name))
			continue
		}
		index[d.name] = i
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	decls := make([]decl[S], len(b.decls))
	copy(decls, b.decls)
	return &layout[S]{decls: decls, index: index, allocated: b.cursor}, nil
}
