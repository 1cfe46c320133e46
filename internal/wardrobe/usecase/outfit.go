package usecase

import (
	"context"

	"wardrobe/internal/model"
	"wardrobe/internal/wardrobe"
)

// AddOutfit assigns a fresh id and creation time and appends. Member ids are
// not validated against the clothing collection: items may be deleted later
// and outfits survive that.
func (uc *implUseCase) AddOutfit(ctx context.Context, input wardrobe.AddOutfitInput) (model.Outfit, error) {
	if input.Name == "" {
		return model.Outfit{}, wardrobe.ErrEmptyName
	}

	outfit := model.Outfit{
		ID:          uc.newID(),
		Name:        input.Name,
		ClothingIDs: append([]string(nil), input.ClothingIDs...),
		CreatedAt:   uc.now(),
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.outfits = append(uc.outfits, outfit)
	uc.persistLocked(ctx)
	return outfit, nil
}

// UpdateOutfit applies the patch. A nil ClothingIDs retains the member list;
// a non-nil (even empty) one replaces it. Returns ErrOutfitNotFound for an
// unknown id.
func (uc *implUseCase) UpdateOutfit(ctx context.Context, id string, patch wardrobe.OutfitPatch) (model.Outfit, error) {
	if patch.Name != nil && *patch.Name == "" {
		return model.Outfit{}, wardrobe.ErrEmptyName
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.outfitIndexLocked(id)
	if idx < 0 {
		return model.Outfit{}, wardrobe.ErrOutfitNotFound
	}

	outfit := &uc.outfits[idx]
	if patch.Name != nil {
		outfit.Name = *patch.Name
	}
	if patch.ClothingIDs != nil {
		outfit.ClothingIDs = append([]string(nil), patch.ClothingIDs...)
	}

	uc.persistLocked(ctx)
	return *outfit, nil
}

// DeleteOutfit removes the outfit. It does not cascade into clothing.
func (uc *implUseCase) DeleteOutfit(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.outfitIndexLocked(id)
	if idx < 0 {
		return wardrobe.ErrOutfitNotFound
	}

	uc.outfits = append(uc.outfits[:idx], uc.outfits[idx+1:]...)
	uc.persistLocked(ctx)
	return nil
}

// ListOutfits returns a copy of the outfit collection in insertion order.
func (uc *implUseCase) ListOutfits(ctx context.Context) []model.Outfit {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]model.Outfit, len(uc.outfits))
	copy(out, uc.outfits)
	for i := range out {
		out[i].ClothingIDs = append([]string(nil), out[i].ClothingIDs...)
	}
	return out
}

// outfitIndexLocked returns the index of id in the outfits slice, or -1.
// Callers must hold uc.mu.
func (uc *implUseCase) outfitIndexLocked(id string) int {
	for i := range uc.outfits {
		if uc.outfits[i].ID == id {
			return i
		}
	}
	return -1
}
