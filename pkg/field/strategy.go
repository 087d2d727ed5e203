package field

// Strategy selects how a set call treats a value with bits set outside the
// field's width. It layers: a call-site override beats the field default,
// which beats DefaultStrategy.
type Strategy int

const (
	// StrategyUnspecified defers to the next configuration layer. It is
	// the zero value so an empty Config overrides nothing.
	StrategyUnspecified Strategy = iota

	// StrategyUnchecked writes the value as-is. Bits outside the field
	// corrupt whatever neighbours the field has.
	StrategyUnchecked

	// StrategyMask silently masks the value down to the field width
	// before writing.
	StrategyMask

	// StrategyReturnBool leaves the storage untouched and reports false
	// when the value has bits outside the field width.
	StrategyReturnBool

	// StrategyError leaves the storage untouched and returns an error
	// wrapping ErrInvalidBits when the value has bits outside the field
	// width.
	StrategyError
)

// DefaultStrategy is the process-wide fallback applied when neither the
// call site nor the field specifies a strategy.
const DefaultStrategy = StrategyMask

func (s Strategy) String() string {
	switch s {
	case StrategyUnspecified:
		return "unspecified"
	case StrategyUnchecked:
		return "unchecked"
	case StrategyMask:
		return "mask"
	case StrategyReturnBool:
		return "return-bool"
	case StrategyError:
		return "error"
	}
	return "unknown"
}
