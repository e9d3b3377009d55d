// Package catalog holds the static ritual catalog the recommendation quiz
// scores against. Catalog order matters: it is the tie-breaker.
package catalog

import "github.com/dyncarl8-oss/herbal-roots/internal/entity"

var products = []entity.Product{
	{
		ID:          "sleep_classic",
		Name:        "Deep Rest Blend",
		PriceCents:  2800,
		Description: "A calming floral infusion of chamomile, valerian root and lavender to quiet the mind before sleep.",
		Goals:       []string{"sleep"},
		Flavors:     []string{"floral"},
		Caffeine:    entity.CaffeineNone,
	},
	{
		ID:          "sleep_island",
		Name:        "Island Dreams Soursop",
		PriceCents:  3000,
		Description: "Soursop leaves and lemongrass for a deep, heavy relaxation when rest feels impossible.",
		Goals:       []string{"sleep"},
		Flavors:     []string{"earthy"},
		Caffeine:    entity.CaffeineNone,
	},
	{
		ID:          "energy_focus",
		Name:        "Morning Focus Elixir",
		PriceCents:  3200,
		Description: "Yerba mate and guayusa brightened with dried citrus peel. Focus without the jittery crash.",
		Goals:       []string{"energy"},
		Flavors:     []string{"fruity"},
		Caffeine:    entity.CaffeineHigh,
	},
	{
		ID:          "energy_roots",
		Name:        "Vitality Roots Tonic",
		PriceCents:  3400,
		Description: "A slow-boiled decoction of sarsparilla, ginger and bissy in the island roots-drink tradition.",
		Goals:       []string{"energy"},
		Flavors:     []string{"earthy"},
		Caffeine:    entity.CaffeineLow,
	},
	{
		ID:          "digest_mint",
		Name:        "Gentle Digest Blend",
		PriceCents:  2600,
		Description: "Cooling peppermint with a gentle warming edge of ginger to settle the stomach.",
		Goals:       []string{"digest"},
		Flavors:     []string{"minty"},
		Caffeine:    entity.CaffeineNone,
	},
	{
		ID:          "immunity_hibiscus",
		Name:        "Crimson Immunity Blend",
		PriceCents:  2900,
		Description: "Tart hibiscus (sorrel) and rosehips packed with vitamin C for daily defense.",
		Goals:       []string{"immunity"},
		Flavors:     []string{"fruity", "floral"},
		Caffeine:    entity.CaffeineNone,
	},
}

func Products() []entity.Product {
	return products
}

func GetByID(id string) (*entity.Product, bool) {
	for i := range products {
		if products[i].ID == id {
			return &products[i], true
		}
	}
	return nil, false
}

var blendTypes = map[string]string{
	"sleep":    "Sleep",
	"energy":   "Energy",
	"digest":   "Digestion",
	"immunity": "Immunity",
}

// BlendType derives the saved-blend type label from a product's primary
// goal tag. Total: any product yields a defined label.
func BlendType(product *entity.Product) string {
	if product != nil && len(product.Goals) > 0 {
		if label, ok := blendTypes[product.Goals[0]]; ok {
			return label
		}
	}
	return "Wellness"
}
