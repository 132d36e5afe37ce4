package entities

import "time"

type Product struct {
	ID       string
	ShopID   string
	Name     string
	Price    float64
	IsActive bool

	// Stock == nil означает "количество не отслеживается".
	Stock      *int64
	TrackStock bool

	// Схемы вариантов взаимоисключающие: у продукта осмысленна максимум одна.
	MenuVariants []MenuVariantType
	Colors       []ColorOption
	Sizes        []SizeOption
	PackOptions  []PackOption

	Addons []AddonGroup

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MenuVariantType - узел дерева "тип -> размеры" ресторанного продукта.
type MenuVariantType struct {
	ID    string
	Name  string
	Sizes []MenuVariantSize
}

type MenuVariantSize struct {
	ID    string
	Label string
	Price float64
}

type ColorOption struct {
	Name  string
	Value string
}

// SizeOption - размер fashion-продукта. Price == nil означает
// "по базовой цене продукта".
type SizeOption struct {
	Label string
	Price *float64
}

type PackOption struct {
	ID         string
	Label      string
	QtyPerPack int64
	Price      float64
}

func (p *Product) HasMenuVariants() bool {
	return p != nil && len(p.MenuVariants) > 0
}

func (p *Product) HasFashionVariants() bool {
	return p != nil && len(p.Colors) > 0 && len(p.Sizes) > 0
}

func (p *Product) FindPackOption(packID string) *PackOption {
	if p == nil {
		return nil
	}
	for i := range p.PackOptions {
		if p.PackOptions[i].ID == packID {
			return &p.PackOptions[i]
		}
	}
	return nil
}
