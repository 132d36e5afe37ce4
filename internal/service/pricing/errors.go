package pricing

import "errors"

var (
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrSelectionRequired = errors.New("variant selection required")
	ErrInvalidSelection  = errors.New("selection does not match product configuration")
	ErrInvalidAddon      = errors.New("unknown addon option or variant")
)
