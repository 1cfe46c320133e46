package usecase

import (
	"context"

	"wardrobe/internal/model"
	"wardrobe/internal/wardrobe"
)

// AddClothing assigns a fresh id, stamps creation time, zeroes the worn
// counter and appends the garment. Never fails for a valid type.
func (uc *implUseCase) AddClothing(ctx context.Context, input wardrobe.AddClothingInput) (model.ClothingItem, error) {
	if !input.Type.Valid() {
		return model.ClothingItem{}, wardrobe.ErrInvalidType
	}

	item := model.ClothingItem{
		ID:        uc.newID(),
		ImageURL:  input.ImageURL,
		Color:     input.Color,
		Size:      input.Size,
		Width:     input.Width,
		Length:    input.Length,
		Brand:     input.Brand,
		Type:      input.Type,
		CreatedAt: uc.now(),
		TimesWorn: 0,
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.clothes = append(uc.clothes, item)
	uc.persistLocked(ctx)
	return item, nil
}

// UpdateClothing applies the patch field-by-field: nil retains, non-nil
// overwrites. Returns ErrClothingNotFound for an unknown id.
func (uc *implUseCase) UpdateClothing(ctx context.Context, id string, patch wardrobe.ClothingPatch) (model.ClothingItem, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return model.ClothingItem{}, wardrobe.ErrInvalidType
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.clothingIndexLocked(id)
	if idx < 0 {
		return model.ClothingItem{}, wardrobe.ErrClothingNotFound
	}

	item := &uc.clothes[idx]
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}
	if patch.Color != nil {
		item.Color = *patch.Color
	}
	if patch.Size != nil {
		item.Size = *patch.Size
	}
	if patch.Width != nil {
		item.Width = *patch.Width
	}
	if patch.Length != nil {
		item.Length = *patch.Length
	}
	if patch.Brand != nil {
		item.Brand = *patch.Brand
	}
	if patch.Type != nil {
		item.Type = *patch.Type
	}

	uc.persistLocked(ctx)
	return *item, nil
}

// DeleteClothing removes the item and prunes its id from every outfit's
// member list, atomically.
func (uc *implUseCase) DeleteClothing(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.clothingIndexLocked(id)
	if idx < 0 {
		return wardrobe.ErrClothingNotFound
	}

	uc.clothes = append(uc.clothes[:idx], uc.clothes[idx+1:]...)
	for i := range uc.outfits {
		uc.outfits[i].ClothingIDs = removeID(uc.outfits[i].ClothingIDs, id)
	}

	uc.persistLocked(ctx)
	return nil
}

// GetClothing returns a single item by id.
func (uc *implUseCase) GetClothing(ctx context.Context, id string) (model.ClothingItem, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.clothingIndexLocked(id)
	if idx < 0 {
		return model.ClothingItem{}, wardrobe.ErrClothingNotFound
	}
	return uc.clothes[idx], nil
}

// ListClothes returns a copy of the clothing collection in insertion order.
func (uc *implUseCase) ListClothes(ctx context.Context) []model.ClothingItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]model.ClothingItem, len(uc.clothes))
	copy(out, uc.clothes)
	return out
}

// clothingIndexLocked returns the index of id in the clothes slice, or -1.
// Callers must hold uc.mu.
func (uc *implUseCase) clothingIndexLocked(id string) int {
	for i := range uc.clothes {
		if uc.clothes[i].ID == id {
			return i
		}
	}
	return -1
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
