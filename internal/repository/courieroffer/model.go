package courieroffer

import "time"

type CourierOfferDB struct {
	ID          string
	OrderID     string
	CourierID   string
	Rank        int32
	Status      string
	ExpiresAt   time.Time
	RespondedAt *time.Time
	CreatedAt   time.Time
}
