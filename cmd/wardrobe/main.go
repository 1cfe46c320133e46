package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wardrobe/config"
	"wardrobe/internal/model"
	"wardrobe/internal/similarity"
	"wardrobe/internal/wardrobe"
	fileRepo "wardrobe/internal/wardrobe/repository/file"
	"wardrobe/internal/wardrobe/repository/failover"
	sqliteRepo "wardrobe/internal/wardrobe/repository/sqlite"
	"wardrobe/internal/wardrobe/usecase"
	"wardrobe/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Stores: SQLite primary, plain-file fallback (also the legacy
	// location for the one-time migration).
	primary, err := sqliteRepo.New(cfg.Storage.Dir, cfg.Storage.Database, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open primary store: %v", err)
		os.Exit(1)
	}
	fallback, err := fileRepo.New(filepath.Join(cfg.Storage.Dir, "fallback"), logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open fallback store: %v", err)
		os.Exit(1)
	}
	store := failover.New(primary, fallback, failover.Config{
		CacheSize: cfg.Storage.CacheSize,
		CacheTTL:  cfg.Storage.CacheTTL,
	}, logger)
	defer store.Close()

	if err := store.MigrateLegacy(ctx, wardrobe.StorageKey); err != nil {
		logger.Warnf(ctx, "Legacy migration failed (continuing): %v", err)
	}

	// 4. Wardrobe store
	uc := usecase.New(store, usecase.Config{WriteInterval: cfg.Storage.WriteInterval}, logger)
	if err := uc.Load(ctx); err != nil {
		logger.Errorf(ctx, "Failed to load wardrobe: %v", err)
		os.Exit(1)
	}
	defer uc.Close()

	// 5. Dispatch the subcommand
	if err := run(ctx, uc, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, uc wardrobe.UseCase, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "list":
		return cmdList(ctx, uc)
	case "add":
		return cmdAdd(ctx, uc, args[1:])
	case "delete":
		return cmdDelete(ctx, uc, args[1:])
	case "outfits":
		return cmdOutfits(ctx, uc)
	case "outfit-add":
		return cmdOutfitAdd(ctx, uc, args[1:])
	case "wear":
		return cmdWear(ctx, uc, args[1:])
	case "today":
		return cmdToday(ctx, uc)
	case "match":
		return cmdMatch(ctx, uc, args[1:])
	case "types":
		for _, t := range model.AllClothingTypes() {
			fmt.Printf("%-12s %s\n", t, t.Label())
		}
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Println(`usage: wardrobe <command>

commands:
  list        print all clothing items
  add         add a clothing item (-type, -color, -size, -brand, -image, -width, -length)
  delete      delete a clothing item by id
  outfits     print all outfits
  outfit-add  create an outfit (-name, -items id,id,...)
  wear        record today's outfit: wear id[,id...]
  today       print today's outfit record
  match       rank similar items (-type, -brand, -size, -width, -length)
  types       print the clothing type catalogue`)
}

func cmdList(ctx context.Context, uc wardrobe.UseCase) error {
	for _, item := range uc.ListClothes(ctx) {
		fmt.Printf("%s  %-10s %-8s %-10s worn %d\n",
			item.ID, item.Type, item.Size, item.Brand, item.TimesWorn)
	}
	return nil
}

func cmdAdd(ctx context.Context, uc wardrobe.UseCase, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	typ := fs.String("type", "", "clothing type (required)")
	color := fs.String("color", "", "color")
	size := fs.String("size", "", "size")
	brand := fs.String("brand", "", "brand")
	image := fs.String("image", "", "image reference")
	width := fs.String("width", "", "width in cm")
	length := fs.String("length", "", "length in cm")
	fs.Parse(args)

	item, err := uc.AddClothing(ctx, wardrobe.AddClothingInput{
		ImageURL: *image,
		Color:    *color,
		Size:     *size,
		Width:    *width,
		Length:   *length,
		Brand:    *brand,
		Type:     model.ClothingType(*typ),
	})
	if err != nil {
		return err
	}
	if err := uc.Flush(ctx); err != nil {
		return err
	}
	fmt.Println("added", item.ID)
	return nil
}

func cmdDelete(ctx context.Context, uc wardrobe.UseCase, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: wardrobe delete <id>")
	}
	if err := uc.DeleteClothing(ctx, args[0]); err != nil {
		return err
	}
	return uc.Flush(ctx)
}

func cmdOutfits(ctx context.Context, uc wardrobe.UseCase) error {
	for _, outfit := range uc.ListOutfits(ctx) {
		fmt.Printf("%s  %-20s %d items\n", outfit.ID, outfit.Name, len(outfit.ClothingIDs))
	}
	return nil
}

func cmdOutfitAdd(ctx context.Context, uc wardrobe.UseCase, args []string) error {
	fs := flag.NewFlagSet("outfit-add", flag.ExitOnError)
	name := fs.String("name", "", "outfit name (required)")
	items := fs.String("items", "", "comma-separated clothing ids")
	fs.Parse(args)

	outfit, err := uc.AddOutfit(ctx, wardrobe.AddOutfitInput{
		Name:        *name,
		ClothingIDs: splitIDs(*items),
	})
	if err != nil {
		return err
	}
	if err := uc.Flush(ctx); err != nil {
		return err
	}
	fmt.Println("added", outfit.ID)
	return nil
}

func cmdWear(ctx context.Context, uc wardrobe.UseCase, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: wardrobe wear <id[,id...]>")
	}
	record, err := uc.SetOutfitOfToday(ctx, splitIDs(args[0]))
	if err != nil {
		return err
	}
	if err := uc.Flush(ctx); err != nil {
		return err
	}
	fmt.Printf("recorded %d items for %s\n", len(record.ClothingIDs), record.Date)
	return nil
}

func cmdToday(ctx context.Context, uc wardrobe.UseCase) error {
	record, ok := uc.GetOutfitOfToday(ctx)
	if !ok {
		fmt.Println("no outfit recorded today")
		return nil
	}
	fmt.Println(record.Date)
	for _, id := range record.ClothingIDs {
		item, err := uc.GetClothing(ctx, id)
		if err != nil {
			fmt.Printf("  %s (deleted)\n", id)
			continue
		}
		fmt.Printf("  %s  %s %s\n", item.ID, item.Type, item.Brand)
	}
	return nil
}

func cmdMatch(ctx context.Context, uc wardrobe.UseCase, args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	typ := fs.String("type", "", "clothing type (required)")
	brand := fs.String("brand", "", "brand")
	size := fs.String("size", "", "size")
	width := fs.String("width", "", "width in cm")
	length := fs.String("length", "", "length in cm")
	fs.Parse(args)

	matches, err := uc.FindSimilar(ctx, similarity.Query{
		Type:   model.ClothingType(*typ),
		Brand:  *brand,
		Size:   *size,
		Width:  *width,
		Length: *length,
	})
	if err != nil {
		return err
	}
	for _, m := range matches {
		item, err := uc.GetClothing(ctx, m.ID)
		if err != nil {
			continue
		}
		fmt.Printf("%3d  %s  %-8s %s\n", m.Score, item.ID, item.Size, item.Brand)
	}
	return nil
}

func splitIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
