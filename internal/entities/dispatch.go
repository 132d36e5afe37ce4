package entities

import "time"

// CourierOffer - единица диспетчеризации: предложение заказа одному
// курьеру. Уникально по паре (OrderID, CourierID). Для одного заказа
// статус ACCEPTED может получить максимум одно предложение.
type CourierOffer struct {
	ID          string
	OrderID     string
	CourierID   string
	Rank        int32
	Status      CourierOfferStatusType
	ExpiresAt   time.Time
	RespondedAt *time.Time
	CreatedAt   time.Time
}

type CourierOfferStatusType string

const (
	CourierOfferPending  CourierOfferStatusType = "PENDING"
	CourierOfferAccepted CourierOfferStatusType = "ACCEPTED"
	CourierOfferRejected CourierOfferStatusType = "REJECTED"
	CourierOfferExpired  CourierOfferStatusType = "EXPIRED"
)

func (s CourierOfferStatusType) String() string {
	return string(s)
}

// CourierOfferUpsert - одна волна диспетчеризации для кандидата.
type CourierOfferUpsert struct {
	OrderID   string
	CourierID string
	Rank      int32
	ExpiresAt time.Time
}

// DispatchWave - результат одной волны: кому разосланы предложения.
type DispatchWave struct {
	OrderID    string
	CourierIDs []string
}
