package layout

import (
	"fmt"

	"github.com/vexingcodes/bitfield/pkg/bits"
	"github.com/vexingcodes/bitfield/pkg/field"
	"k8s.io/apimachinery/pkg/labels"
)

// Layout is the resolved, immutable assignment of spans to named fields
// within one storage scalar of type S.
type Layout[S bits.Uint] interface {
	// Field returns the descriptor for the named field.
	Field(name string) (field.Field[S, S], error)
	// Labels returns the metadata labels attached to the named field.
	Labels(name string) (labels.Set, error)
	// Names returns the field names in declaration order.
	Names() []string
	// Count returns the number of declared fields, padding excluded.
	Count() int
	// AllocatedBits returns the total bits covered by declarations,
	// padding included.
	AllocatedBits() uint
	// IsComplete reports whether the declarations cover every bit of
	// the storage scalar.
	IsComplete() bool
	// ByLabel returns, in declaration order, the names of the fields
	// whose labels match the selector.
	ByLabel(selector labels.Selector) []string
	// NewRecord returns a record over a zero storage word.
	NewRecord() *Record[S]
	// Wrap returns a record over the given storage word.
	Wrap(raw S) *Record[S]
}

type layout[S bits.Uint] struct {
	decls     []decl[S]
	index     map[string]int
	allocated uint
}

func (r *layout[S]) Field(name string) (field.Field[S, S], error) {
	i, ok := r.index[name]
	if !ok {
		var zero field.Field[S, S]
		return zero, fmt.Errorf("no field named %q", name)
	}
	return r.decls[i].fld, nil
}

func (r *layout[S]) Labels(name string) (labels.Set, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("no field named %q", name)
	}
	return r.decls[i].lbls, nil
}

func (r *layout[S]) Names() []string {
	names := make([]string, 0, len(r.decls))
	for _, d := range r.decls {
		names = append(names, d.name)
	}
	return names
}

func (r *layout[S]) Count() int {
	return len(r.decls)
}

func (r *layout[S]) AllocatedBits() uint {
	return r.allocated
}

func (r *layout[S]) IsComplete() bool {
	return r.allocated == bits.Width[S]()
}

func (r *layout[S]) ByLabel(selector labels.Selector) []string {
	var names []string
	for _, d := range r.decls {
		if selector.Matches(d.lbls) {
			names = append(names, d.name)
		}
	}
	return names
}

func (r *layout[S]) NewRecord() *Record[S] {
	return &Record[S]{layout: r}
}

func (r *layout[S]) Wrap(raw S) *Record[S] {
	return &Record[S]{layout: r, raw: raw}
}
