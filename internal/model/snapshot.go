package model

// Snapshot is the full persisted state: every mutation rewrites the whole
// thing under a single storage key.
type Snapshot struct {
	Clothes        []ClothingItem  `json:"clothes"`
	Outfits        []Outfit        `json:"outfits"`
	OutfitsOfToday []OutfitOfToday `json:"outfitsOfToday"`
}
