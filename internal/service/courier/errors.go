package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidLocation       = errors.New("invalid location")

	ErrStateNotFound    = errors.New("courier state not found")
	ErrOfferNotFound    = errors.New("offer not found")
	ErrOfferNotYours    = errors.New("offer belongs to another courier")
	ErrOfferNotPending  = errors.New("offer is not pending")
	ErrOfferExpired     = errors.New("offer expired")
	ErrOrderTaken       = errors.New("order already taken by another courier")
	ErrCapacityExceeded = errors.New("courier capacity exceeded")
	ErrRouteMismatch    = errors.New("order does not share shop or customer with active orders")
)
