package wardrobe

import (
	"context"

	"wardrobe/internal/model"
	"wardrobe/internal/similarity"
)

// StorageKey is the single key the full wardrobe snapshot is persisted
// under, in both the current and the legacy storage locations.
const StorageKey = "wardrobe-storage"

// UseCase is the authoritative wardrobe store. All mutation of the three
// collections (clothes, outfits, daily records) goes through it; each
// operation is atomic with respect to in-memory state and schedules a durable
// snapshot write in the background.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Load reads the persisted snapshot and rebuilds in-memory state. Must be
	// called once before any other operation.
	Load(ctx context.Context) error

	// Clothing CRUD
	AddClothing(ctx context.Context, input AddClothingInput) (model.ClothingItem, error)
	UpdateClothing(ctx context.Context, id string, patch ClothingPatch) (model.ClothingItem, error)
	DeleteClothing(ctx context.Context, id string) error
	GetClothing(ctx context.Context, id string) (model.ClothingItem, error)
	ListClothes(ctx context.Context) []model.ClothingItem

	// Outfit CRUD
	AddOutfit(ctx context.Context, input AddOutfitInput) (model.Outfit, error)
	UpdateOutfit(ctx context.Context, id string, patch OutfitPatch) (model.Outfit, error)
	DeleteOutfit(ctx context.Context, id string) error
	ListOutfits(ctx context.Context) []model.Outfit

	// Day tracking
	SetOutfitOfToday(ctx context.Context, clothingIDs []string) (model.OutfitOfToday, error)
	GetOutfitOfToday(ctx context.Context) (model.OutfitOfToday, bool)

	// Queries
	FindSimilar(ctx context.Context, query similarity.Query) ([]similarity.Match, error)
	BrandsForType(ctx context.Context, t model.ClothingType) []string

	// Flush blocks until every snapshot enqueued so far is durably written
	// (or the context expires) and returns the last write error, if any.
	Flush(ctx context.Context) error
	// Close flushes and stops the background writer.
	Close() error
}
