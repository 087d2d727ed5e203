package field

import "errors"

// ErrInvalidBits is the error kind returned, wrapped with the field
// diagnostic, when a set under StrategyError is given a value with bits
// set outside the field's allocated width.
var ErrInvalidBits = errors.New("field value has bits set outside its allocated width")
