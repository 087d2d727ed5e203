package field

// GetOption overrides the value offset for a single Get call. There is
// deliberately no strategy option for reads: a strategy governs writes
// only, and accepting one here would be a silent no-op.
type GetOption struct {
	offset Offset
}

// GetAt places the extracted bits at the given lsb-relative position of
// the value scalar for this call.
func GetAt(pos uint) GetOption {
	return GetOption{offset: At(pos)}
}

// GetKeep keeps the extracted bits at the field's storage offset for this
// call, shifting nothing.
func GetKeep() GetOption {
	return GetOption{offset: Keep()}
}

// SetOption overrides the value offset or the strategy for a single Set
// call. The value's type is fixed by the field itself and cannot be
// overridden per call.
type SetOption struct {
	cfg Config
}

// SetAt expects the incoming value's bits at the given lsb-relative
// position for this call.
func SetAt(pos uint) SetOption {
	return SetOption{cfg: Config{Offset: At(pos)}}
}

// SetKeep expects the incoming value's bits at the field's storage offset
// for this call.
func SetKeep() SetOption {
	return SetOption{cfg: Config{Offset: Keep()}}
}

// WithStrategy applies the given strategy for this call.
func WithStrategy(s Strategy) SetOption {
	return SetOption{cfg: Config{Strategy: s}}
}
