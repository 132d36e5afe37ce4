package entities

// Selection - выбор варианта продукта в позиции заказа. Закрытый набор
// реализаций: MenuVariantSelection, FashionSelection, PackSelection.
// Разбирается один раз на границе HTTP, дальше логика работает только
// с типизированными значениями.
type Selection interface {
	selectionKind() SelectionKind
}

type SelectionKind string

const (
	SelectionMenuVariant SelectionKind = "menu"
	SelectionFashion     SelectionKind = "fashion"
	SelectionPack        SelectionKind = "pack"
)

type MenuVariantSelection struct {
	TypeID string
	SizeID string
}

func (MenuVariantSelection) selectionKind() SelectionKind { return SelectionMenuVariant }

type FashionSelection struct {
	ColorName  string
	ColorValue string
	Size       string
}

func (FashionSelection) selectionKind() SelectionKind { return SelectionFashion }

type PackSelection struct {
	PackID string
}

func (PackSelection) selectionKind() SelectionKind { return SelectionPack }

// NormalizedSelection - денормализованная запись выбора, сохраняемая
// в позиции заказа. Kind определяет заполненную группу полей.
type NormalizedSelection struct {
	Kind SelectionKind `json:"kind"`

	TypeID    string  `json:"typeId,omitempty"`
	TypeName  string  `json:"typeName,omitempty"`
	SizeID    string  `json:"sizeId,omitempty"`
	SizeLabel string  `json:"sizeLabel,omitempty"`
	Price     float64 `json:"price,omitempty"`

	ColorName  string `json:"colorName,omitempty"`
	ColorValue string `json:"colorValue,omitempty"`
	Size       string `json:"size,omitempty"`

	PackID     string `json:"packId,omitempty"`
	PackLabel  string `json:"packLabel,omitempty"`
	QtyPerPack int64  `json:"qtyPerPack,omitempty"`
}

// AddonSelection - выбранная пара (опция, вариант) добавки.
type AddonSelection struct {
	OptionID  string
	VariantID string
}

// ResolvedAddon - добавка с ценой из каталога на момент заказа.
type ResolvedAddon struct {
	OptionID     string  `json:"optionId"`
	OptionName   string  `json:"optionName"`
	VariantID    string  `json:"variantId"`
	VariantLabel string  `json:"variantLabel"`
	Price        float64 `json:"price"`
}
