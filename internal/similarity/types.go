package similarity

import "wardrobe/internal/model"

// Query describes a target garment to rank owned items against. Type is
// required; every other field is optional and only contributes to the score
// when set.
type Query struct {
	Type   model.ClothingType
	Brand  string
	Size   string
	Width  string
	Length string
}

// Match is one ranked result. Score 0 means the item matched nothing beyond
// the garment type.
type Match struct {
	ID    string
	Score int
}
