package product

import (
	"encoding/json"
	"fmt"

	"marketplace/internal/entities"
)

func ToDomain(p *ProductDB) (*entities.Product, error) {
	if p == nil {
		return nil, nil
	}

	product := &entities.Product{
		ID:         p.ID,
		ShopID:     p.ShopID,
		Name:       p.Name,
		Price:      p.Price,
		IsActive:   p.IsActive,
		Stock:      p.Stock,
		TrackStock: p.TrackStock,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}

	if err := unmarshalInto(p.MenuVariants, &product.MenuVariants, menuVariantsToDomain); err != nil {
		return nil, fmt.Errorf("product %s menu variants: %w", p.ID, err)
	}
	if err := unmarshalInto(p.Colors, &product.Colors, colorsToDomain); err != nil {
		return nil, fmt.Errorf("product %s colors: %w", p.ID, err)
	}
	if err := unmarshalInto(p.Sizes, &product.Sizes, sizesToDomain); err != nil {
		return nil, fmt.Errorf("product %s sizes: %w", p.ID, err)
	}
	if err := unmarshalInto(p.PackOptions, &product.PackOptions, packOptionsToDomain); err != nil {
		return nil, fmt.Errorf("product %s pack options: %w", p.ID, err)
	}
	if err := unmarshalInto(p.Addons, &product.Addons, addonsToDomain); err != nil {
		return nil, fmt.Errorf("product %s addons: %w", p.ID, err)
	}

	return product, nil
}

func unmarshalInto[DB any, D any](raw []byte, dst *D, convert func([]DB) D) error {
	if len(raw) == 0 {
		return nil
	}

	var dbValues []DB
	if err := json.Unmarshal(raw, &dbValues); err != nil {
		return err
	}

	*dst = convert(dbValues)
	return nil
}

func menuVariantsToDomain(types []menuVariantTypeDB) []entities.MenuVariantType {
	result := make([]entities.MenuVariantType, 0, len(types))
	for _, t := range types {
		sizes := make([]entities.MenuVariantSize, 0, len(t.Sizes))
		for _, s := range t.Sizes {
			sizes = append(sizes, entities.MenuVariantSize{
				ID:    s.ID,
				Label: s.Label,
				Price: s.Price,
			})
		}
		result = append(result, entities.MenuVariantType{
			ID:    t.ID,
			Name:  t.Name,
			Sizes: sizes,
		})
	}
	return result
}

func colorsToDomain(colors []colorOptionDB) []entities.ColorOption {
	result := make([]entities.ColorOption, 0, len(colors))
	for _, c := range colors {
		result = append(result, entities.ColorOption{Name: c.Name, Value: c.Value})
	}
	return result
}

func sizesToDomain(sizes []sizeOptionDB) []entities.SizeOption {
	result := make([]entities.SizeOption, 0, len(sizes))
	for _, s := range sizes {
		result = append(result, entities.SizeOption{Label: s.Label, Price: s.Price})
	}
	return result
}

func packOptionsToDomain(packs []packOptionDB) []entities.PackOption {
	result := make([]entities.PackOption, 0, len(packs))
	for _, p := range packs {
		result = append(result, entities.PackOption{
			ID:         p.ID,
			Label:      p.Label,
			QtyPerPack: p.QtyPerPack,
			Price:      p.Price,
		})
	}
	return result
}

func addonsToDomain(groups []addonGroupDB) []entities.AddonGroup {
	result := make([]entities.AddonGroup, 0, len(groups))
	for _, g := range groups {
		options := make([]entities.AddonOption, 0, len(g.Options))
		for _, o := range g.Options {
			variants := make([]entities.AddonVariant, 0, len(o.Variants))
			for _, v := range o.Variants {
				variants = append(variants, entities.AddonVariant{
					ID:    v.ID,
					Label: v.Label,
					Price: v.Price,
				})
			}
			options = append(options, entities.AddonOption{
				ID:       o.ID,
				Name:     o.Name,
				Variants: variants,
			})
		}
		result = append(result, entities.AddonGroup{
			ID:      g.ID,
			Title:   g.Title,
			Options: options,
		})
	}
	return result
}
