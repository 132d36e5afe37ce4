package entities

import "time"

type Notification struct {
	ID        string
	ShopID    string
	UserID    *string
	OrderID   *string
	Title     string
	Content   string
	Type      NotificationType
	IsRead    bool
	CreatedAt time.Time
}

type NotificationType string

const (
	NotificationOrder       NotificationType = "ORDER"
	NotificationOrderStatus NotificationType = "ORDER_STATUS"
)

func (t NotificationType) String() string {
	return string(t)
}
