package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestClothingType(t *testing.T) {
	t.Run("Catalogue Is Closed And Capable", func(t *testing.T) {
		for _, typ := range AllClothingTypes() {
			if !typ.Valid() {
				t.Errorf("%s must be valid", typ)
			}
			if typ.Label() == "" {
				t.Errorf("%s must have a label", typ)
			}
		}
		if ClothingType("sombrero").Valid() {
			t.Error("unknown type must not validate")
		}
	})

	t.Run("Sizing Capabilities", func(t *testing.T) {
		if !TypeZapatos.UsesShoeSizing() {
			t.Error("zapatos uses shoe sizing")
		}
		if !TypePantalon.UsesPantSizing() || !TypeShorts.UsesPantSizing() {
			t.Error("pantalon and shorts use pant sizing")
		}
		if TypeCamiseta.UsesShoeSizing() || TypeCamiseta.UsesPantSizing() {
			t.Error("camiseta uses the letter scale")
		}
	})

	t.Run("Size Options Follow Capabilities", func(t *testing.T) {
		if got := TypeZapatos.SizeOptions()[0]; got != "35" {
			t.Errorf("expected shoe scale, got first option %q", got)
		}
		if got := TypePantalon.SizeOptions()[0]; got != "28" {
			t.Errorf("expected pant scale, got first option %q", got)
		}
		if got := TypeAbrigo.SizeOptions()[0]; got != "XS" {
			t.Errorf("expected letter scale, got first option %q", got)
		}
	})
}

func TestDateKey(t *testing.T) {
	// The date key is the UTC calendar day regardless of the local zone.
	loc := time.FixedZone("UTC+9", 9*3600)
	late := time.Date(2026, 3, 15, 1, 30, 0, 0, loc) // still 2026-03-14 in UTC
	if got := DateKey(late); got != "2026-03-14" {
		t.Errorf("expected UTC date key, got %q", got)
	}
}

func TestSnapshotJSON(t *testing.T) {
	worn := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	snap := Snapshot{
		Clothes: []ClothingItem{{
			ID:        "c1",
			Type:      TypePantalon,
			Size:      "32",
			Brand:     "Acme",
			CreatedAt: worn,
			LastWorn:  &worn,
			TimesWorn: 3,
		}},
		Outfits:        []Outfit{{ID: "o1", Name: "diario", ClothingIDs: []string{"c1"}, CreatedAt: worn}},
		OutfitsOfToday: []OutfitOfToday{{Date: "2026-03-14", ClothingIDs: []string{"c1"}}},
	}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Date keys carry no time-of-day, item timestamps are RFC 3339.
	if !strings.Contains(string(data), `"date":"2026-03-14"`) {
		t.Errorf("daily record date must serialize as YYYY-MM-DD: %s", data)
	}
	if !strings.Contains(string(data), `"lastWorn":"2026-03-14T10:30:00Z"`) {
		t.Errorf("timestamps must serialize as RFC 3339: %s", data)
	}

	var back Snapshot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Clothes[0].TimesWorn != 3 || back.Clothes[0].Type != TypePantalon {
		t.Errorf("round trip lost data: %+v", back.Clothes[0])
	}
	if back.OutfitsOfToday[0].Date != "2026-03-14" {
		t.Errorf("round trip lost date key: %+v", back.OutfitsOfToday[0])
	}
}
