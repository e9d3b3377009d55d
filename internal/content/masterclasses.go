// Package content holds the static masterclass library: video lessons and
// archive articles served read-only to members.
package content

import "github.com/dyncarl8-oss/herbal-roots/internal/entity"

var masterclasses = []entity.Masterclass{
	{
		ID:          "bush-tea-foundations",
		Title:       "Bush Tea Foundations",
		Type:        "Video Lesson",
		Duration:    "18 min",
		Category:    "Herbalism Basics",
		VideoURL:    "https://content.herbalroots.example/lessons/bush-tea-foundations.mp4",
		Description: "The difference between an infusion and a decoction, and why covering the vessel matters.",
		Content:     "Leaves and flowers give up their volatile oils to a covered infusion; roots and barks need a rolling simmer. This lesson walks both methods with the classic island cure-alls.",
	},
	{
		ID:          "soursop-traditions",
		Title:       "Soursop: The Heavy Sleeper's Leaf",
		Type:        "Archive Article",
		Duration:    "6 min read",
		Category:    "Plant Profiles",
		Description: "How graviola leaves earned their reputation as the islands' deepest sleep remedy.",
		Content:     "Soursop leaves have been brewed for generations to settle nerves and lower pressure. Crush the leaves lightly, pour boiling water, and cover immediately - the steam carries the potency.",
	},
	{
		ID:          "roots-tonic-masterclass",
		Title:       "Building a Roots Tonic",
		Type:        "Video Lesson",
		Duration:    "24 min",
		Category:    "Decoctions",
		VideoURL:    "https://content.herbalroots.example/lessons/roots-tonic.mp4",
		Description: "Sarsparilla, chainy root and bissy: the backbone of island vitality drinks.",
		Content:     "Root tonics are boiled long and slow until the liquid turns dark and mineral-rich. This class covers sourcing, ratios, and the street-stall traditions behind the blend.",
	},
	{
		ID:          "fire-cider-archive",
		Title:       "Fire Cider and Warming Remedies",
		Type:        "Archive Article",
		Duration:    "8 min read",
		Category:    "Seasonal Wellness",
		Description: "A pungent vinegar infusion for the cold season, adapted with scotch bonnet and ginger.",
		Content:     "Fire cider steeps horseradish, garlic, onion, ginger and hot pepper in apple cider vinegar for four to six weeks. Take it by the spoonful at the first sign of a chill.",
	},
}

func Masterclasses() []entity.Masterclass {
	return masterclasses
}

func GetMasterclassByID(id string) (*entity.Masterclass, bool) {
	for i := range masterclasses {
		if masterclasses[i].ID == id {
			return &masterclasses[i], true
		}
	}
	return nil, false
}
