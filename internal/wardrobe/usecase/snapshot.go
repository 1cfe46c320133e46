package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"wardrobe/internal/model"
)

// Load reads the persisted snapshot and rebuilds the in-memory collections.
// An absent snapshot is a fresh install, not an error.
func (uc *implUseCase) Load(ctx context.Context) error {
	data, ok, err := uc.repo.Get(ctx, storageKey)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load Get: %v", err)
		return err
	}
	if !ok {
		uc.l.Infof(ctx, "uc.Load: no snapshot under %q, starting empty", storageKey)
		return nil
	}

	var snap model.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		uc.l.Errorf(ctx, "uc.Load Unmarshal: %v", err)
		return fmt.Errorf("corrupt wardrobe snapshot: %w", err)
	}

	uc.mu.Lock()
	uc.clothes = snap.Clothes
	uc.outfits = snap.Outfits
	uc.today = snap.OutfitsOfToday
	uc.mu.Unlock()

	uc.l.Infof(ctx, "uc.Load: %d clothes, %d outfits, %d daily records",
		len(snap.Clothes), len(snap.Outfits), len(snap.OutfitsOfToday))
	return nil
}

// persistLocked serializes current state and hands it to the background
// writer. Callers must hold uc.mu.
func (uc *implUseCase) persistLocked(ctx context.Context) {
	snap := model.Snapshot{
		Clothes:        uc.clothes,
		Outfits:        uc.outfits,
		OutfitsOfToday: uc.today,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		uc.l.Errorf(ctx, "uc.persist Marshal: %v", err)
		return
	}
	uc.writer.enqueue(string(data))
}

// Flush blocks until every snapshot enqueued so far is durably written and
// returns the last write error, if any.
func (uc *implUseCase) Flush(ctx context.Context) error {
	return uc.writer.flush(ctx)
}

// Close flushes outstanding writes and stops the background writer.
func (uc *implUseCase) Close() error {
	return uc.writer.close(context.Background())
}
