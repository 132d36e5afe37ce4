package shop

import (
	"encoding/json"
	"fmt"

	"marketplace/internal/entities"
)

func ToDomain(s *ShopDB) (*entities.Shop, error) {
	if s == nil {
		return nil, nil
	}

	addons, err := addonsToDomain(s.Addons)
	if err != nil {
		return nil, fmt.Errorf("shop %s addons: %w", s.ID, err)
	}

	return &entities.Shop{
		ID:          s.ID,
		Name:        s.Name,
		Category:    entities.ShopCategoryType(s.Category),
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		DeliveryFee: s.DeliveryFee,
		Addons:      addons,
	}, nil
}

func addonsToDomain(raw []byte) ([]entities.AddonGroup, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var groupsDB []addonGroupDB
	if err := json.Unmarshal(raw, &groupsDB); err != nil {
		return nil, err
	}

	groups := make([]entities.AddonGroup, 0, len(groupsDB))
	for _, g := range groupsDB {
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
		groups = append(groups, entities.AddonGroup{
			ID:      g.ID,
			Title:   g.Title,
			Options: options,
		})
	}

	return groups, nil
}
