package usecase

import (
	"context"
	"sort"

	"wardrobe/internal/model"
	"wardrobe/internal/similarity"
	"wardrobe/internal/wardrobe"
)

// FindSimilar ranks owned items of the query's type against the query
// profile. The type is required; everything else is optional.
func (uc *implUseCase) FindSimilar(ctx context.Context, query similarity.Query) ([]similarity.Match, error) {
	if query.Type == "" {
		return nil, wardrobe.ErrMissingType
	}
	if !query.Type.Valid() {
		return nil, wardrobe.ErrInvalidType
	}

	matches := similarity.Rank(query, uc.ListClothes(ctx))
	uc.l.Debugf(ctx, "uc.FindSimilar: %d matches for type %q", len(matches), query.Type)
	return matches, nil
}

// BrandsForType returns the distinct non-empty brands among items of the
// given type, sorted, for query suggestions.
func (uc *implUseCase) BrandsForType(ctx context.Context, t model.ClothingType) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	seen := make(map[string]bool)
	var brands []string
	for i := range uc.clothes {
		if uc.clothes[i].Type != t || uc.clothes[i].Brand == "" {
			continue
		}
		if !seen[uc.clothes[i].Brand] {
			seen[uc.clothes[i].Brand] = true
			brands = append(brands, uc.clothes[i].Brand)
		}
	}
	sort.Strings(brands)
	return brands
}
