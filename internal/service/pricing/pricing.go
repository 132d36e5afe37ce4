package pricing

import (
	"fmt"
	"math"

	"marketplace/internal/entities"
)

// Input - все данные для разрешения цены одной позиции заказа.
// Пакет чистый: никаких обращений к хранилищам, только входные значения.
type Input struct {
	Product  *entities.Product
	Category entities.ShopCategoryType
	Quantity int64

	// Selection может быть nil для продуктов без схем вариантов.
	Selection entities.Selection
	Addons    []entities.AddonSelection

	// Catalogue - каталог добавок, по которому резолвятся Addons.
	// Для ресторанов это каталог магазина, иначе каталог продукта.
	Catalogue []entities.AddonGroup

	// Offer - активное промо-предложение для продукта или nil.
	Offer *entities.Offer
}

// Quote - авторитетная цена за единицу и нормализованный выбор для
// сохранения в позиции заказа.
type Quote struct {
	UnitPrice  float64
	StockDelta int64
	Normalized *entities.NormalizedSelection
	Addons     []entities.ResolvedAddon
}

// Resolve вычисляет цену за единицу по взаимоисключающим схемам:
// пак, дерево тип/размер, fashion цвет/размер, обычная цена.
// Любой промах по справочнику - ошибка клиента, а не цена по умолчанию.
func Resolve(in Input) (*Quote, error) {
	if in.Product == nil {
		return nil, fmt.Errorf("product is required: %w", ErrInvalidSelection)
	}
	if in.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var (
		base       float64
		normalized *entities.NormalizedSelection
		err        error
	)
	stockDelta := in.Quantity

	switch sel := in.Selection.(type) {
	case entities.PackSelection:
		base, stockDelta, normalized, err = resolvePack(in.Product, sel, in.Quantity)
	case entities.MenuVariantSelection:
		base, normalized, err = resolveMenuVariant(in.Product, sel, in.Offer)
	case entities.FashionSelection:
		base, normalized, err = resolveFashion(in.Product, sel, in.Offer)
	case nil:
		base, err = resolveWithoutSelection(in.Product, in.Category, in.Offer)
	default:
		err = fmt.Errorf("unsupported selection kind: %w", ErrInvalidSelection)
	}
	if err != nil {
		return nil, err
	}

	addons, addonsTotal, err := resolveAddons(in.Catalogue, in.Addons)
	if err != nil {
		return nil, err
	}

	return &Quote{
		UnitPrice:  round2(base + addonsTotal),
		StockDelta: stockDelta,
		Normalized: normalized,
		Addons:     addons,
	}, nil
}

func resolvePack(
	product *entities.Product,
	sel entities.PackSelection,
	quantity int64,
) (float64, int64, *entities.NormalizedSelection, error) {
	pack := product.FindPackOption(sel.PackID)
	if pack == nil {
		return 0, 0, nil, fmt.Errorf("pack %q: %w", sel.PackID, ErrInvalidSelection)
	}

	// Цена пака фиксированная, цена за единицу не участвует.
	// Списание склада идет в единицах, а не в паках.
	normalized := &entities.NormalizedSelection{
		Kind:       entities.SelectionPack,
		PackID:     pack.ID,
		PackLabel:  pack.Label,
		QtyPerPack: pack.QtyPerPack,
		Price:      pack.Price,
	}
	return pack.Price, quantity * pack.QtyPerPack, normalized, nil
}

func resolveMenuVariant(
	product *entities.Product,
	sel entities.MenuVariantSelection,
	offer *entities.Offer,
) (float64, *entities.NormalizedSelection, error) {
	if !product.HasMenuVariants() {
		return 0, nil, fmt.Errorf("product has no menu variants: %w", ErrInvalidSelection)
	}
	if sel.TypeID == "" || sel.SizeID == "" {
		return 0, nil, ErrSelectionRequired
	}

	var variantType *entities.MenuVariantType
	for i := range product.MenuVariants {
		if product.MenuVariants[i].ID == sel.TypeID {
			variantType = &product.MenuVariants[i]
			break
		}
	}
	if variantType == nil {
		return 0, nil, fmt.Errorf("type %q: %w", sel.TypeID, ErrInvalidSelection)
	}

	var size *entities.MenuVariantSize
	for i := range variantType.Sizes {
		if variantType.Sizes[i].ID == sel.SizeID {
			size = &variantType.Sizes[i]
			break
		}
	}
	if size == nil {
		return 0, nil, fmt.Errorf("size %q: %w", sel.SizeID, ErrInvalidSelection)
	}

	price := size.Price
	if override := offer.FindVariantPrice(sel.TypeID, sel.SizeID); override != nil {
		price = override.NewPrice
	}

	normalized := &entities.NormalizedSelection{
		Kind:      entities.SelectionMenuVariant,
		TypeID:    variantType.ID,
		TypeName:  variantType.Name,
		SizeID:    size.ID,
		SizeLabel: size.Label,
		Price:     price,
	}
	return price, normalized, nil
}

func resolveFashion(
	product *entities.Product,
	sel entities.FashionSelection,
	offer *entities.Offer,
) (float64, *entities.NormalizedSelection, error) {
	if !product.HasFashionVariants() {
		return 0, nil, fmt.Errorf("product has no color/size sets: %w", ErrInvalidSelection)
	}
	if sel.ColorValue == "" || sel.Size == "" {
		return 0, nil, ErrSelectionRequired
	}

	colorName := sel.ColorName
	colorFound := false
	for _, c := range product.Colors {
		if c.Value == sel.ColorValue {
			colorFound = true
			if colorName == "" {
				colorName = c.Name
			}
			break
		}
	}
	if !colorFound {
		return 0, nil, fmt.Errorf("color %q: %w", sel.ColorValue, ErrInvalidSelection)
	}

	var sizePrice *float64
	sizeFound := false
	for _, s := range product.Sizes {
		if s.Label == sel.Size {
			sizeFound = true
			sizePrice = s.Price
			break
		}
	}
	if !sizeFound {
		return 0, nil, fmt.Errorf("size %q: %w", sel.Size, ErrInvalidSelection)
	}

	price := product.Price
	if sizePrice != nil {
		price = *sizePrice
	}

	// Процент скидки имеет приоритет над фиксированной ценой:
	// он означает одну и ту же скидку на любой размер.
	if offer != nil {
		switch {
		case offer.Discount != nil && *offer.Discount > 0:
			price = round2(price * (1 - *offer.Discount/100))
		case offer.NewPrice != nil:
			price = *offer.NewPrice
		}
	}

	normalized := &entities.NormalizedSelection{
		Kind:       entities.SelectionFashion,
		ColorName:  colorName,
		ColorValue: sel.ColorValue,
		Size:       sel.Size,
		Price:      price,
	}
	return price, normalized, nil
}

func resolveWithoutSelection(
	product *entities.Product,
	category entities.ShopCategoryType,
	offer *entities.Offer,
) (float64, error) {
	// Схема вариантов настроена - выбор обязателен. Fashion-продукт без
	// непустых наборов цвета И размера требований не предъявляет.
	if product.HasMenuVariants() {
		return 0, fmt.Errorf("type and size: %w", ErrSelectionRequired)
	}
	if category == entities.ShopFashion && product.HasFashionVariants() {
		return 0, fmt.Errorf("color and size: %w", ErrSelectionRequired)
	}

	if offer != nil && offer.NewPrice != nil {
		return *offer.NewPrice, nil
	}
	return product.Price, nil
}

func resolveAddons(
	catalogue []entities.AddonGroup,
	selected []entities.AddonSelection,
) ([]entities.ResolvedAddon, float64, error) {
	if len(selected) == 0 {
		return nil, 0, nil
	}

	resolved := make([]entities.ResolvedAddon, 0, len(selected))
	var total float64

	for _, sel := range selected {
		option, variant := findAddonVariant(catalogue, sel.OptionID, sel.VariantID)
		if option == nil || variant == nil {
			return nil, 0, fmt.Errorf("addon %s/%s: %w", sel.OptionID, sel.VariantID, ErrInvalidAddon)
		}
		resolved = append(resolved, entities.ResolvedAddon{
			OptionID:     option.ID,
			OptionName:   option.Name,
			VariantID:    variant.ID,
			VariantLabel: variant.Label,
			Price:        variant.Price,
		})
		total += variant.Price
	}

	return resolved, total, nil
}

func findAddonVariant(
	catalogue []entities.AddonGroup,
	optionID, variantID string,
) (*entities.AddonOption, *entities.AddonVariant) {
	for gi := range catalogue {
		for oi := range catalogue[gi].Options {
			option := &catalogue[gi].Options[oi]
			if option.ID != optionID {
				continue
			}
			for vi := range option.Variants {
				if option.Variants[vi].ID == variantID {
					return option, &option.Variants[vi]
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
