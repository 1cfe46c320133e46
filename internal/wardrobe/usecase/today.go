package usecase

import (
	"context"

	"wardrobe/internal/model"
	"wardrobe/internal/wardrobe"
)

// SetOutfitOfToday records what was worn today. For every referenced item the
// worn counter increments and last-worn moves to now; any existing record for
// today's date key is replaced (remove-then-insert, not merge). Item updates
// and the record replacement land under one lock, so no reader can see them
// half applied. Unknown ids in the selection are skipped.
func (uc *implUseCase) SetOutfitOfToday(ctx context.Context, clothingIDs []string) (model.OutfitOfToday, error) {
	if len(clothingIDs) == 0 {
		return model.OutfitOfToday{}, wardrobe.ErrEmptySelection
	}

	now := uc.now()
	record := model.OutfitOfToday{
		Date:        model.DateKey(now),
		ClothingIDs: append([]string(nil), clothingIDs...),
	}

	worn := make(map[string]bool, len(clothingIDs))
	for _, id := range clothingIDs {
		worn[id] = true
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.clothes {
		if !worn[uc.clothes[i].ID] {
			continue
		}
		t := now
		uc.clothes[i].TimesWorn++
		uc.clothes[i].LastWorn = &t
	}

	kept := uc.today[:0]
	for _, rec := range uc.today {
		if rec.Date != record.Date {
			kept = append(kept, rec)
		}
	}
	uc.today = append(kept, record)

	uc.persistLocked(ctx)
	return record, nil
}

// GetOutfitOfToday returns the record for the current date key, if any.
func (uc *implUseCase) GetOutfitOfToday(ctx context.Context) (model.OutfitOfToday, bool) {
	key := model.DateKey(uc.now())

	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, rec := range uc.today {
		if rec.Date == key {
			out := rec
			out.ClothingIDs = append([]string(nil), rec.ClothingIDs...)
			return out, true
		}
	}
	return model.OutfitOfToday{}, false
}
