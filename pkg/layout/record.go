package layout

import (
	"github.com/vexingcodes/bitfield/pkg/bits"
	"github.com/vexingcodes/bitfield/pkg/field"
)

// Record binds a layout to one storage word. The word is the record's only
// mutable state; sharing a record across goroutines without external
// synchronization is the caller's data race to manage, the same as any
// read-modify-write on a shared scalar.
type Record[S bits.Uint] struct {
	layout *layout[S]
	raw    S
}

// Get extracts the named field from the record's storage word. Opts may
// override the value offset for this call.
func (r *Record[S]) Get(name string, opts ...field.GetOption) (S, error) {
	fld, err := r.layout.Field(name)
	if err != nil {
		var zero S
		return zero, err
	}
	return fld.Get(r.raw, opts...), nil
}

// Set writes v into the named field of the record's storage word,
// preserving the field's strategy-dependent return contract (see
// field.Field.Set). An unknown name returns an error and writes nothing.
func (r *Record[S]) Set(name string, v S, opts ...field.SetOption) (bool, error) {
	fld, err := r.layout.Field(name)
	if err != nil {
		return false, err
	}
	return fld.Set(&r.raw, v, opts...)
}

// Raw returns the storage word.
func (r *Record[S]) Raw() S {
	return r.raw
}

// SetRaw replaces the storage word.
func (r *Record[S]) SetRaw(v S) {
	r.raw = v
}
