package courierstate

import "time"

type CourierStateDB struct {
	UserID      string
	IsAvailable bool
	LastLat     *float64
	LastLng     *float64
	Accuracy    *float64
	LastSeenAt  *time.Time
	UpdatedAt   time.Time
}
