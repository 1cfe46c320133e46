package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"wardrobe/internal/model"
	"wardrobe/internal/wardrobe"
	"wardrobe/internal/wardrobe/repository"
	"wardrobe/pkg/log"
)

// storageKey is the single key the full wardrobe snapshot is persisted under.
const storageKey = wardrobe.StorageKey

// Config tunes the background snapshot writer.
type Config struct {
	// WriteInterval is the minimum spacing between durable writes; bursts of
	// mutations coalesce into one write. Zero means 200ms.
	WriteInterval time.Duration
}

// implUseCase is the private implementation of wardrobe.UseCase: the single
// authoritative holder of the three collections. One mutex serializes every
// mutation so no caller can observe a half-applied operation.
type implUseCase struct {
	repo   repository.Store
	l      log.Logger
	writer *snapshotWriter

	now   func() time.Time
	newID func() string

	mu      sync.Mutex
	clothes []model.ClothingItem
	outfits []model.Outfit
	today   []model.OutfitOfToday
}

// New creates a new wardrobe UseCase implementation writing through repo.
func New(repo repository.Store, cfg Config, l log.Logger) *implUseCase {
	if repo == nil {
		panic("wardrobe/usecase: repo is required")
	}
	interval := cfg.WriteInterval
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return &implUseCase{
		repo:   repo,
		l:      l,
		writer: newSnapshotWriter(repo, storageKey, interval, l),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}
