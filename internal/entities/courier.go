package entities

import "time"

// CourierState - последнее известное состояние курьера. Обновляется
// только самим курьером через heartbeat.
type CourierState struct {
	UserID      string
	IsAvailable bool
	LastLat     *float64
	LastLng     *float64
	Accuracy    *float64
	LastSeenAt  *time.Time
	UpdatedAt   time.Time
}

type CourierStateModify struct {
	UserID      *string
	IsAvailable *bool
	Lat         *float64
	Lng         *float64
	Accuracy    *float64
}

func (s *CourierState) HasLocation() bool {
	return s != nil && s.LastLat != nil && s.LastLng != nil
}

// User - минимальный срез аккаунта, нужный для проверок ролей.
type User struct {
	ID       string
	Name     string
	Role     RoleType
	IsActive bool
}
