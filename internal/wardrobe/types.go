package wardrobe

import "wardrobe/internal/model"

// AddClothingInput holds the caller-supplied fields for a new garment.
// ID, CreatedAt and TimesWorn are assigned by the store.
type AddClothingInput struct {
	ImageURL string
	Color    string
	Size     string
	Width    string
	Length   string
	Brand    string
	Type     model.ClothingType
}

// ClothingPatch is an explicit per-field partial update: a nil field retains
// the stored value, a non-nil field overwrites it.
type ClothingPatch struct {
	ImageURL *string
	Color    *string
	Size     *string
	Width    *string
	Length   *string
	Brand    *string
	Type     *model.ClothingType
}

// AddOutfitInput holds the caller-supplied fields for a new outfit. Member
// ids are not validated against the clothing collection — items may be
// deleted later anyway.
type AddOutfitInput struct {
	Name        string
	ClothingIDs []string
}

// OutfitPatch is the outfit counterpart of ClothingPatch. ClothingIDs nil
// retains the stored member list; non-nil (even empty) replaces it.
type OutfitPatch struct {
	Name        *string
	ClothingIDs []string
}
