package order

import "errors"

var (
	ErrShopNotFound      = errors.New("shop not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderTerminal     = errors.New("order is in terminal status")
	ErrForbidden         = errors.New("actor is not allowed to perform operation")
	ErrReturnExceedsSold = errors.New("return quantity exceeds sold quantity")
	ErrAlreadyCancelled  = errors.New("order already cancelled")
	ErrNotACourier       = errors.New("user is not an active courier")
	ErrInvalidOrderData  = errors.New("invalid order data")
	ErrInvalidTransition = errors.New("status transition is not allowed")
)
