package entities

// Actor описывает инициатора запроса. Передается явно в каждый метод
// бизнес-логики, никакого ambient-состояния.
type Actor struct {
	UserID string
	Role   RoleType
	ShopID string
}

type RoleType string

const (
	RoleAdmin    RoleType = "ADMIN"
	RoleMerchant RoleType = "MERCHANT"
	RoleCustomer RoleType = "CUSTOMER"
	RoleCourier  RoleType = "COURIER"
)

func (r RoleType) String() string {
	return string(r)
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleMerchant
}
