package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"wardrobe/internal/model"
	"wardrobe/internal/wardrobe"
)

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	uc := newTestUseCase(store)
	a, _ := uc.AddClothing(ctx, wardrobe.AddClothingInput{
		Type: model.TypePantalon, Size: "32", Brand: "Acme", Width: "40", Length: "100",
	})
	b, _ := uc.AddClothing(ctx, wardrobe.AddClothingInput{Type: model.TypeCamiseta, Color: "negro"})
	uc.AddOutfit(ctx, wardrobe.AddOutfitInput{Name: "diario", ClothingIDs: []string{a.ID, b.ID}})
	uc.SetOutfitOfToday(ctx, []string{a.ID})

	if err := uc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// A second store over the same storage reconstructs equal state.
	restored := newTestUseCase(store)
	defer restored.Close()
	if err := restored.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	if !reflect.DeepEqual(uc.ListClothes(ctx), restored.ListClothes(ctx)) {
		t.Error("clothes did not survive the round trip")
	}
	if !reflect.DeepEqual(uc.ListOutfits(ctx), restored.ListOutfits(ctx)) {
		t.Error("outfits did not survive the round trip")
	}
	got, ok := restored.GetOutfitOfToday(ctx)
	if !ok || len(got.ClothingIDs) != 1 || got.ClothingIDs[0] != a.ID {
		t.Errorf("daily record did not survive the round trip: %+v ok=%v", got, ok)
	}
}

func TestSnapshotWriter(t *testing.T) {
	ctx := context.Background()

	t.Run("Flush Awaits Outstanding Writes", func(t *testing.T) {
		store := newMemStore()
		uc := newTestUseCase(store)
		defer uc.Close()

		uc.AddClothing(ctx, wardrobe.AddClothingInput{Type: model.TypeCamisa})
		if err := uc.Flush(ctx); err != nil {
			t.Fatalf("flush: %v", err)
		}

		if _, ok := store.get(storageKey); !ok {
			t.Error("expected snapshot written after Flush")
		}
	})

	t.Run("Burst Coalesces To Latest Snapshot", func(t *testing.T) {
		store := newMemStore()
		uc := newTestUseCase(store)
		defer uc.Close()

		for i := 0; i < 25; i++ {
			uc.AddClothing(ctx, wardrobe.AddClothingInput{Type: model.TypeCamiseta})
		}
		if err := uc.Flush(ctx); err != nil {
			t.Fatalf("flush: %v", err)
		}

		restored := newTestUseCase(store)
		defer restored.Close()
		if err := restored.Load(ctx); err != nil {
			t.Fatalf("load: %v", err)
		}
		if got := len(restored.ListClothes(ctx)); got != 25 {
			t.Errorf("durable snapshot must hold the latest state, got %d items", got)
		}
	})

	t.Run("Mutation Survives In Memory When Storage Exhausted", func(t *testing.T) {
		store := newMemStore()
		storageDown := errors.New("storage exhausted")
		store.setFunc = func(key, value string) error { return storageDown }

		uc := newTestUseCase(store)
		defer uc.Close()

		item, err := uc.AddClothing(ctx, wardrobe.AddClothingInput{Type: model.TypeAbrigo})
		if err != nil {
			t.Fatalf("mutation must not fail on durability problems: %v", err)
		}
		if _, err := uc.GetClothing(ctx, item.ID); err != nil {
			t.Error("in-memory state is the source of truth after a failed write")
		}
		if err := uc.Flush(ctx); !errors.Is(err, storageDown) {
			t.Errorf("expected Flush to surface the write failure, got %v", err)
		}
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Fresh Install Starts Empty", func(t *testing.T) {
		uc := newTestUseCase(newMemStore())
		defer uc.Close()

		if err := uc.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(uc.ListClothes(ctx)) != 0 || len(uc.ListOutfits(ctx)) != 0 {
			t.Error("expected empty collections on fresh install")
		}
	})

	t.Run("Corrupt Snapshot Error", func(t *testing.T) {
		store := newMemStore()
		store.data[storageKey] = "{not json"

		uc := newTestUseCase(store)
		defer uc.Close()
		if err := uc.Load(ctx); err == nil {
			t.Error("expected error for corrupt snapshot")
		}
	})
}
